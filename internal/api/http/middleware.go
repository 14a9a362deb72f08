package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"memberdir-backend/internal/logger"
	"memberdir-backend/internal/security"

	"github.com/go-chi/httprate"
)

type contextKey string

const (
	identityKey    contextKey = "identity"
	adminClaimsKey contextKey = "admin_claims"
)

// IdentityFromContext returns the verified external-auth subject id, or "".
func IdentityFromContext(ctx context.Context) string {
	identity, _ := ctx.Value(identityKey).(string)
	return identity
}

// AdminFromContext returns the authenticated admin claims, or nil.
func AdminFromContext(ctx context.Context) *security.Claims {
	claims, _ := ctx.Value(adminClaimsKey).(*security.Claims)
	return claims
}

// AuthMiddleware verifies the applicant bearer token and stores the resolved
// subject id on the request context.
func AuthMiddleware(verifier security.IdentityVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization token")
				return
			}
			subject, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid authorization token")
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware validates an admin access token and requires the admin role.
func AdminMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization token")
				return
			}
			claims, err := tokens.ValidateToken(token)
			if err != nil || claims.Type != security.TokenTypeAccess {
				writeError(w, http.StatusUnauthorized, "invalid authorization token")
				return
			}
			if !claims.HasRole(security.RoleAdmin) {
				writeError(w, http.StatusForbidden, "admin role required")
				return
			}
			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimit creates an IP-based rate limiter for an endpoint.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("Rate limit exceeded",
				"ip", r.RemoteAddr,
				"path", r.URL.Path,
				"method", r.Method,
			)
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
		}),
	)
}

// NoRateLimit returns a no-op middleware when rate limiting is disabled.
func NoRateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return next
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
