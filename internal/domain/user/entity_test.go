package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{" Ana@Example.COM ", "ana@example.com", true},
		{"a@b.co", "a@b.co", true},
		{"Ana <a@b.co>", "", false},
		{"not-an-email", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeEmail(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestValidPassword(t *testing.T) {
	assert.False(t, ValidPassword("short"))
	assert.False(t, ValidPassword("   seven  "))
	assert.True(t, ValidPassword("long-enough"))
	assert.True(t, ValidPassword("pässwörd"))
}

func TestPublicDropsHash(t *testing.T) {
	u := User{Email: "a@b.co", PasswordHash: "$2a$"}
	assert.Empty(t, u.Public().PasswordHash)
	assert.Equal(t, "$2a$", u.PasswordHash)
}
