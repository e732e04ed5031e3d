package usecase

import (
	"context"
	"errors"

	"careergps/internal/domain/user"
	ucauth "careergps/internal/usecase/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound = errors.New("user not found")

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type User struct {
	accounts *ucauth.Service
}

// NewUserUsecase only reads accounts; the cost only sizes the decoy hash.
func NewUserUsecase(users user.Repository) *User {
	return &User{accounts: ucauth.NewService(users, bcrypt.MinCost)}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.accounts.Lookup(ctx, userID)
	switch {
	case errors.Is(err, ucauth.ErrUserNotFound):
		return user.User{}, ErrUserNotFound
	case err != nil:
		return user.User{}, ErrInternal
	}
	return usr, nil
}
