package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"memberdir-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	verifier := &stubVerifier{subjects: map[string]string{"good-token": "uid-1"}}
	var gotIdentity string
	handler := AuthMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("ValidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "uid-1", gotIdentity)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("test-secret-at-least-32-characters!!", time.Minute, time.Hour)
	var gotAdminID int32
	handler := AdminMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID = AdminFromContext(r.Context()).AdminID
		w.WriteHeader(http.StatusOK)
	}))

	request := func(token string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	t.Run("AccessTokenWithAdminRole", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(3, "admin@example.com", []string{security.RoleAdmin})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request(token))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int32(3), gotAdminID)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		token, err := tokens.GenerateRefreshToken(3, "admin@example.com")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request(token))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MissingAdminRoleIsForbidden", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(3, "admin@example.com", nil)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request(token))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, request("not-a-jwt"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
