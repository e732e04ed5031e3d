package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

type signingKey struct {
	secret []byte
	ttl    time.Duration
}

func (k signingKey) usable() bool { return len(k.secret) > 0 && k.ttl > 0 }

// HMACService signs HS256 tokens. Access and refresh tokens have their own
// secret and lifetime.
type HMACService struct {
	keys   map[string]signingKey
	issuer string
	now    func() time.Time
}

// validation order of ValidateToken
var tokenTypes = [...]string{TokenTypeAccess, TokenTypeRefresh}

func NewHMACService(cfg Config) *HMACService {
	return &HMACService{
		keys: map[string]signingKey{
			TokenTypeAccess:  {secret: []byte(cfg.AccessSecret), ttl: cfg.AccessTTL},
			TokenTypeRefresh: {secret: []byte(cfg.RefreshSecret), ttl: cfg.RefreshTTL},
		},
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *HMACService) WithClock(now func() time.Time) *HMACService {
	s.now = now
	return s
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.sign(TokenTypeAccess, userID, email)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(TokenTypeRefresh, userID, "")
}

// ValidateToken accepts either token type. A token only verifies against the
// secret of the type it claims, so sharing one secret between both types
// does not let a refresh token pass as an access token.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	expired := false
	for _, typ := range tokenTypes {
		c, err := s.parse(tokenString, typ)
		if err == nil {
			return c, nil
		}
		expired = expired || errors.Is(err, ErrTokenExpired)
	}
	if expired {
		return Claims{}, ErrTokenExpired
	}
	return Claims{}, ErrTokenInvalid
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) sign(typ string, userID uuid.UUID, email string) (string, error) {
	key := s.keys[typ]
	if !key.usable() {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: typ,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(key.ttl)),
			Subject:   userID.String(),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(key.secret)
}

func (s *HMACService) parse(tokenString, typ string) (Claims, error) {
	key := s.keys[typ]
	if len(key.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(s.issuer))
	}

	var c Claims
	tok, err := jwtlib.NewParser(opts...).ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return key.secret, nil
	})
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case err != nil, !tok.Valid, c.TokenType != typ:
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
