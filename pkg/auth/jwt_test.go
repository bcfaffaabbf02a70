package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "route-trigger-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newGuardedServer(t *testing.T, secret string) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	})
	guard := NewValidator(secret).Middleware(zap.NewNop())
	server := httptest.NewServer(guard(handler))
	t.Cleanup(server.Close)
	return server, &hits
}

func doRequest(t *testing.T, url, authHeader string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	server, hits := newGuardedServer(t, testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	resp := doRequest(t, server.URL, "Bearer "+token)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, *hits)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	server, hits := newGuardedServer(t, testSecret)

	resp := doRequest(t, server.URL, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, server.URL, "Basic dXNlcjpwYXNz")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, *hits)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	server, hits := newGuardedServer(t, testSecret)

	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	resp := doRequest(t, server.URL, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, *hits)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	server, hits := newGuardedServer(t, testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	resp := doRequest(t, server.URL, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, *hits)
}

func TestMiddlewareDisabledWithoutSecret(t *testing.T) {
	server, hits := newGuardedServer(t, "")

	resp := doRequest(t, server.URL, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, *hits)
}

func TestValidateTokenRejectsUnexpectedAlgorithm(t *testing.T) {
	validator := NewValidator(testSecret)

	// An unsigned token must never pass, even with a matching payload.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = validator.ValidateToken(unsigned)
	require.ErrorIs(t, err, ErrInvalidToken)
}
