package usecase

import (
	"context"
	"testing"
	"time"

	"careergps/internal/pkg/jwt"
	ucauth "careergps/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) (*Auth, *memUsers) {
	t.Helper()
	users := newMemUsers()
	svc := jwt.NewHMACService(jwt.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		Issuer:        "careergps",
	})
	return NewAuthUsecase(users, svc, bcrypt.MinCost), users
}

func creds(email, pw string) ucauth.Credentials {
	return ucauth.Credentials{Email: email, Password: pw}
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	uc, users := newAuth(t)
	ctx := context.Background()

	s, err := uc.Register(ctx, creds(" Ana@Example.com ", "hunter22!"))
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", s.User.Email)
	assert.Empty(t, s.User.PasswordHash)
	assert.NotEmpty(t, s.AccessToken)
	assert.NotEmpty(t, s.RefreshToken)

	stored, err := users.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22!")))

	_, err = uc.Login(ctx, creds("ana@example.com", "wrong-password"))
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	s, err = uc.Login(ctx, creds("ANA@example.com", "hunter22!"))
	require.NoError(t, err)

	_, err = uc.Refresh(ctx, s.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	next, err := uc.Refresh(ctx, s.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, s.User.ID, next.User.ID)
	assert.NotEmpty(t, next.AccessToken)
	assert.NotEqual(t, s.RefreshToken, next.RefreshToken)
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	uc, _ := newAuth(t)

	_, err := uc.Login(context.Background(), creds("ghost@b.co", "whatever-pass"))
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), creds("ghost@b.co", ""))
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)
}

func TestAuth_RegisterRejects(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, creds("not-an-email", "hunter22!"))
	assert.ErrorIs(t, err, ucauth.ErrInvalidInput)

	_, err = uc.Register(ctx, creds("a@b.co", "short"))
	assert.ErrorIs(t, err, ucauth.ErrInvalidInput)

	_, err = uc.Register(ctx, creds("a@b.co", "long-enough"))
	require.NoError(t, err)
	_, err = uc.Register(ctx, creds("A@B.co", "long-enough"))
	assert.ErrorIs(t, err, ucauth.ErrEmailAlreadyRegistered)
}

func TestAuth_RefreshUnknownUser(t *testing.T) {
	uc, _ := newAuth(t)

	token, err := uc.jwt.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = uc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUser_GetMe(t *testing.T) {
	auth, users := newAuth(t)
	s, err := auth.Register(context.Background(), creds("me@b.co", "long-enough"))
	require.NoError(t, err)

	uc := NewUserUsecase(users)
	got, err := uc.GetMe(context.Background(), s.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@b.co", got.Email)
	assert.Empty(t, got.PasswordHash)

	_, err = uc.GetMe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
