// Package auth guards the route-trigger endpoint with bearer tokens.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "github.com/routelabs/sweep-middleware/pkg/app/errors"
	apphttp "github.com/routelabs/sweep-middleware/pkg/app/http"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Validator validates HS256 bearer tokens against a shared secret.
type Validator struct {
	secret []byte
}

// NewValidator creates a token validator. An empty secret disables
// validation entirely, for local development setups.
func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

// IsConfigured returns true if a secret is set
func (v *Validator) IsConfigured() bool {
	return len(v.secret) > 0
}

// ValidateToken parses and verifies a token, returning its claims
func (v *Validator) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Middleware returns a chi-compatible middleware enforcing a bearer token on
// the wrapped handlers. With no secret configured it passes requests through.
func (v *Validator) Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !v.IsConfigured() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(ErrMissingToken, "missing bearer token"))
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if _, err := v.ValidateToken(token); err != nil {
				logger.Warn("Rejected bearer token", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
