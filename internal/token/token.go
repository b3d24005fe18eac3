// Package token issues and verifies the signed, expiring tokens embedded in
// one-click email action links. A token is bound to a single goal id; the
// status-update endpoint refuses to mutate anything until the token checks out.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Signer struct {
	secret []byte
	expiry time.Duration
}

func NewSigner(secret string, expiry time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Sign mints an action token for the given goal.
func (s *Signer) Sign(goalID string) (string, error) {
	claims := jwt.MapClaims{
		"goal_id": goalID,
		"exp":     time.Now().Add(s.expiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the token's signature and expiry and that it was issued for
// the given goal. Any failure is reported as ErrInvalidToken.
func (s *Signer) Verify(tokenString, goalID string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}

	id, ok := claims["goal_id"].(string)
	if !ok || id != goalID {
		return ErrInvalidToken
	}

	return nil
}
