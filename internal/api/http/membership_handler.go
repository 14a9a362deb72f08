package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/logger"
	"memberdir-backend/internal/membership"
	"memberdir-backend/internal/metrics"
	"memberdir-backend/internal/service"

	"github.com/gorilla/mux"
)

// MembershipHandler serves the applicant-facing endpoints.
type MembershipHandler struct {
	svc     service.MembershipService
	metrics *metrics.Metrics
}

func NewMembershipHandler(svc service.MembershipService, m *metrics.Metrics) *MembershipHandler {
	return &MembershipHandler{svc: svc, metrics: m}
}

// Submit handles POST /membership-request. Validation failures get a single
// error string with 400; duplicates and conflicting active requests are
// successful responses, not errors.
func (h *MembershipHandler) Submit(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	identity := IdentityFromContext(r.Context())

	var req domain.MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveSubmission("invalid", started)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, outcome, err := h.svc.SubmitRequest(r.Context(), identity, &req)
	if err != nil {
		var vErr membership.ValidationError
		if errors.As(err, &vErr) {
			h.metrics.ObserveSubmission("invalid", started)
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		logger.ErrorContext(r.Context(), "Failed to process submission", "error", err, "identity", identity)
		h.metrics.ObserveSubmission("error", started)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch outcome {
	case service.OutcomeDuplicate:
		h.metrics.ObserveSubmission("duplicate", started)
		writeJSON(w, http.StatusOK, stored)
	case service.OutcomeConflict:
		h.metrics.ObserveSubmission("conflict", started)
		writeMessage(w, http.StatusOK, "a membership request already exists for this account")
	default:
		h.metrics.ObserveSubmission("created", started)
		writeJSON(w, http.StatusCreated, stored)
	}
}

// Status handles GET /membership-request/status/{identity}. Callers may only
// query their own lineage.
func (h *MembershipHandler) Status(w http.ResponseWriter, r *http.Request) {
	identity := mux.Vars(r)["identity"]
	if identity != IdentityFromContext(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	submitted, err := h.svc.HasSubmitted(r.Context(), identity)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to check submission status", "error", err, "identity", identity)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"submitted": submitted})
}
