// Package token issues and verifies the signed bearer tokens carrying a user
// identity claim. Tokens are never persisted: the payload is rebuilt from the
// stored user at issuance and trusted verbatim on every verified request.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/learnhub/course-enroll/internal/model"
)

// ErrInvalidToken covers malformed, tampered and expired tokens alike.
var ErrInvalidToken = errors.New("invalid token")

// claims keeps the identity under a `user` key so issued tokens stay
// interchangeable with earlier deployments of this API.
type claims struct {
	User model.Identity `json:"user"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	expiry time.Duration
}

func NewService(secret []byte, expiry time.Duration) *Service {
	return &Service{secret: secret, expiry: expiry}
}

// Issue signs a token encoding the identity with the configured expiry
// (7 days by default).
func (s *Service) Issue(identity model.Identity) (string, error) {
	now := time.Now()
	c := claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	tokenString, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token string and returns the decoded payload.
// Every failure mode (bad signature, malformed input, expiry) reports
// ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*model.JWTPayload, error) {
	var c claims
	parsedToken, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsedToken.Valid {
		return nil, ErrInvalidToken
	}
	if c.User.ID == "" || c.User.Email == "" {
		return nil, fmt.Errorf("%w: missing identity claim", ErrInvalidToken)
	}

	return &model.JWTPayload{User: c.User}, nil
}
