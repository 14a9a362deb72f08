package http

import (
	"database/sql"
	"net/http"
	"time"

	"memberdir-backend/internal/config"
	"memberdir-backend/internal/metrics"
	"memberdir-backend/internal/security"
	"memberdir-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	DB            *sql.DB
	Verifier      security.IdentityVerifier
	Tokens        security.TokenManager
	MembershipSvc service.MembershipService
	AdminSvc      service.AdminService
	Metrics       *metrics.Metrics
	RateLimit     config.RateLimitConfig
}

// NewRouter wires all routes, auth middleware and rate limits.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", healthHandler(deps.DB)).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	submitLimit := NoRateLimit()
	loginLimit := NoRateLimit()
	if deps.RateLimit.Enabled {
		submitLimit = RateLimit(deps.RateLimit.SubmitPerMinute, time.Minute)
		loginLimit = RateLimit(deps.RateLimit.LoginPerMinute, time.Minute)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	auth := AuthMiddleware(deps.Verifier)
	adminAuth := AdminMiddleware(deps.Tokens)

	mh := NewMembershipHandler(deps.MembershipSvc, deps.Metrics)
	api.Handle("/membership-request", submitLimit(auth(http.HandlerFunc(mh.Submit)))).Methods("POST")
	api.Handle("/membership-request/status/{identity}", auth(http.HandlerFunc(mh.Status))).Methods("GET")

	ah := NewAdminHandler(deps.AdminSvc, deps.Metrics)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Handle("/login", loginLimit(http.HandlerFunc(ah.Login))).Methods("POST")
	admin.Handle("/refresh", http.HandlerFunc(ah.Refresh)).Methods("POST")
	admin.Handle("/requests", adminAuth(http.HandlerFunc(ah.ListRequests))).Methods("GET")
	admin.Handle("/requests/{id}", adminAuth(http.HandlerFunc(ah.Decide))).Methods("PATCH")

	return router
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
