package auth

import (
	"context"
	"errors"

	"careergps/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUserNotFound           = errors.New("user not found")
	ErrInternal               = errors.New("internal error")
)

type Credentials struct {
	Email    string
	Password string
}

// Service owns password hashing and account lookup. Every user it returns
// has an empty PasswordHash.
type Service struct {
	users user.Repository
	cost  int
	// compared against when the email is unknown so both failure paths
	// spend one bcrypt comparison
	decoy []byte
}

// NewService hashes with bcrypt.DefaultCost when cost is out of range.
func NewService(users user.Repository, cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	decoy, _ := bcrypt.GenerateFromPassword([]byte("careergps-decoy"), cost)
	return &Service{users: users, cost: cost, decoy: decoy}
}

func (s *Service) Register(ctx context.Context, in Credentials) (user.User, error) {
	email, ok := user.NormalizeEmail(in.Email)
	if !ok || !user.ValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return user.User{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	id := uuid.New()
	err = s.users.Create(ctx, user.User{ID: id, Email: email, PasswordHash: string(hash)})
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return user.User{}, ErrEmailAlreadyRegistered
	case err != nil:
		return user.User{}, ErrInternal
	}

	// reload for the database timestamps
	return s.Lookup(ctx, id)
}

// Authenticate checks the password of the account registered under email.
func (s *Service) Authenticate(ctx context.Context, in Credentials) (user.User, error) {
	email, ok := user.NormalizeEmail(in.Email)
	if !ok || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInternal
		}
		_ = bcrypt.CompareHashAndPassword(s.decoy, []byte(in.Password))
		return user.User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return u.Public(), nil
}

func (s *Service) Lookup(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	return u.Public(), nil
}
