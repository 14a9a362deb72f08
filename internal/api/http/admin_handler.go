package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/logger"
	"memberdir-backend/internal/membership"
	"memberdir-backend/internal/metrics"
	"memberdir-backend/internal/repository"
	"memberdir-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the admin review endpoints.
type AdminHandler struct {
	svc     service.AdminService
	metrics *metrics.Metrics
}

func NewAdminHandler(svc service.AdminService, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{svc: svc, metrics: m}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	access, refresh, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		logger.ErrorContext(r.Context(), "Admin login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	access, refresh, err := h.svc.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		logger.ErrorContext(r.Context(), "Token refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}

// ListRequests handles GET /admin/requests?state=, defaulting to pending.
func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	state := domain.LifecycleState(r.URL.Query().Get("state"))
	if state == "" {
		state = domain.StatePending
	}
	switch state {
	case domain.StatePending, domain.StateApproved, domain.StateNeedsUpdate:
	default:
		writeError(w, http.StatusBadRequest, "unknown lifecycle state")
		return
	}

	requests, err := h.svc.ListRequests(r.Context(), state)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list requests", "error", err, "state", state)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": requests})
}

type decisionRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes,omitempty"`
}

// Decide handles PATCH /admin/requests/{id} with action approve or update.
func (h *AdminHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "approve":
		member, err := h.svc.ApproveRequest(r.Context(), int32(id))
		if err != nil {
			h.writeDecisionError(w, r, err, int32(id))
			return
		}
		h.metrics.IncDecision("approve")
		writeJSON(w, http.StatusOK, member)
	case "update":
		if err := h.svc.RequestUpdate(r.Context(), int32(id), req.Notes); err != nil {
			h.writeDecisionError(w, r, err, int32(id))
			return
		}
		h.metrics.IncDecision("update")
		writeMessage(w, http.StatusOK, "request returned to applicant for update")
	default:
		writeError(w, http.StatusBadRequest, "action must be approve or update")
	}
}

func (h *AdminHandler) writeDecisionError(w http.ResponseWriter, r *http.Request, err error, id int32) {
	var vErr membership.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "membership request not found")
	case errors.Is(err, service.ErrRequestClosed):
		writeError(w, http.StatusConflict, "request is no longer open for this action")
	case errors.As(err, &vErr):
		// Defensive re-validation at approval failed; the request stays
		// pending and the admin sees why.
		writeError(w, http.StatusConflict, vErr.Error())
	default:
		logger.ErrorContext(r.Context(), "Decision failed", "error", err, "request_id", id)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
