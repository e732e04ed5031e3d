package dto

import (
	"time"

	"careergps/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func NewSessionResponse(u user.User, access, refresh string) SessionResponse {
	return SessionResponse{
		User:         NewUserResponse(u),
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}
}
