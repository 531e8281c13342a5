package service

import (
	"errors"
	"time"

	"github.com/Alden-Crist/Planzee/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies bearer tokens. The signing secret is
// injected at construction and never changes afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue produces a signed HS256 token carrying the user id.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := s.now().Unix()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     s.now().Add(s.ttl).Unix(),
		"iat":     now,
		"nbf":     now,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns the embedded user id.
// An expired token is rejected unconditionally; there is no renewal.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, domain.ErrBadSignature
		default:
			return 0, domain.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return 0, domain.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrTokenMalformed
	}

	return int64(userID), nil
}
