package handler

import (
	"context"
	"errors"

	"careergps/internal/delivery/http/dto"
	"careergps/internal/delivery/http/middleware"
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"
	ucauth "careergps/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.credentials(h.uc.Register, fiber.StatusCreated, "created"))
	r.Post("/login", h.credentials(h.uc.Login, fiber.StatusOK, response.MessageOK))
	r.Post("/refresh", h.Refresh)
}

type credentialsFunc func(ctx context.Context, in ucauth.Credentials) (usecase.Session, error)

// credentials binds an email/password body and answers with a new session.
func (h *AuthHandler) credentials(open credentialsFunc, status int, msg string) fiber.Handler {
	return func(c fiber.Ctx) error {
		var req credentialsRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}

		s, err := open(c.Context(), ucauth.Credentials{Email: req.Email, Password: req.Password})
		if err != nil {
			return authError(err)
		}
		return response.Success(c, status, msg, dto.NewSessionResponse(s.User, s.AccessToken, s.RefreshToken))
	}
}

// Refresh takes the refresh token from the Authorization header.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := middleware.BearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	s, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return authError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(s.User, s.AccessToken, s.RefreshToken))
}

var authErrors = []struct {
	target  error
	status  int
	message string
}{
	{ucauth.ErrEmailAlreadyRegistered, fiber.StatusConflict, "Email already registered"},
	{ucauth.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
	{ucauth.ErrInvalidInput, fiber.StatusBadRequest, "A valid email and a password of at least 8 characters are required"},
	{usecase.ErrRefreshTokenExpired, fiber.StatusUnauthorized, "Refresh token expired"},
	{usecase.ErrInvalidRefreshToken, fiber.StatusUnauthorized, "Invalid refresh token"},
	{usecase.ErrUnauthorized, fiber.StatusUnauthorized, "Unauthorized"},
}

func authError(err error) error {
	for _, e := range authErrors {
		if errors.Is(err, e.target) {
			return middleware.NewAppError(e.status, e.message, nil, err)
		}
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
