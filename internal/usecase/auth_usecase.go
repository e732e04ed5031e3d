package usecase

import (
	"context"
	"errors"

	"careergps/internal/domain/user"
	"careergps/internal/pkg/jwt"
	ucauth "careergps/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

// Session is a signed-in account with a fresh token pair.
type Session struct {
	User         user.User
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.Credentials) (Session, error)
	Login(ctx context.Context, in ucauth.Credentials) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
}

type Auth struct {
	accounts *ucauth.Service
	jwt      jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, bcryptCost int) *Auth {
	return &Auth{accounts: ucauth.NewService(users, bcryptCost), jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.Credentials) (Session, error) {
	usr, err := u.accounts.Register(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.open(usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.Credentials) (Session, error) {
	usr, err := u.accounts.Authenticate(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.open(usr)
}

// Refresh rotates both tokens. Access tokens and tokens of deleted accounts
// are rejected with ErrInvalidRefreshToken.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if refreshToken == "" {
		return Session{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Session{}, ErrRefreshTokenExpired
	case err != nil, !u.jwt.IsRefreshToken(claims):
		return Session{}, ErrInvalidRefreshToken
	}

	usr, err := u.accounts.Lookup(ctx, claims.UserID)
	switch {
	case errors.Is(err, ucauth.ErrUserNotFound):
		return Session{}, ErrInvalidRefreshToken
	case err != nil:
		return Session{}, ErrInternal
	}
	return u.open(usr)
}

func (u *Auth) open(usr user.User) (Session, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return Session{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return Session{}, ErrInternal
	}
	return Session{User: usr, AccessToken: access, RefreshToken: refresh}, nil
}
