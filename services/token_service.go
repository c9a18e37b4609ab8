package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/malik-shaik/DevHub/config/environment"
)

// ErrInvalidToken covers bad signatures, expired tokens and malformed input.
var ErrInvalidToken = errors.New("invalid token")

type TokenUser struct {
	ID string `json:"id"`
}

// TokenClaims is the payload carried by every issued token:
// {"user":{"id":<userId>}} plus the registered expiry/issued-at claims.
type TokenClaims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *environment.Config) *TokenService {
	return &TokenService{secret: []byte(cfg.JWTSecret), ttl: cfg.JWTTTL}
}

// Issue signs a token asserting the given user id.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		User: TokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded user id.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.User.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.User.ID, nil
}
