package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MinPasswordLength = 8

// User is an account. PasswordHash is a bcrypt hash and never leaves the
// usecase layer; see Public.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public returns a copy without the password hash.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// NormalizeEmail lowercases and trims email and reports whether the result
// is a bare address ("a@b.co", not "Ana <a@b.co>").
func NormalizeEmail(email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}
	return email, true
}

// ValidPassword counts characters after trimming surrounding spaces.
func ValidPassword(pw string) bool {
	return len([]rune(strings.TrimSpace(pw))) >= MinPasswordLength
}
