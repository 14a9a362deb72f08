package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/membership"
	"memberdir-backend/internal/repository"
	"memberdir-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_Login(t *testing.T) {
	t.Run("ReturnsTokenPair", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("Login", mock.Anything, "admin@example.com", "pass").
			Return("access", "refresh", nil).Once()

		body := bytes.NewBufferString(`{"email":"admin@example.com","password":"pass"}`)
		rec := httptest.NewRecorder()
		handler.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"access","refreshToken":"refresh"}`, rec.Body.String())
	})

	t.Run("BadCredentialsIs401", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("Login", mock.Anything, "admin@example.com", "wrong").
			Return("", "", service.ErrInvalidCredentials).Once()

		body := bytes.NewBufferString(`{"email":"admin@example.com","password":"wrong"}`)
		rec := httptest.NewRecorder()
		handler.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", body))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminHandler_ListRequests(t *testing.T) {
	t.Run("DefaultsToPending", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("ListRequests", mock.Anything, domain.StatePending).
			Return([]domain.MembershipRequest{{ID: 1}, {ID: 2}}, nil).Once()

		rec := httptest.NewRecorder()
		handler.ListRequests(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/requests", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Requests []domain.MembershipRequest `json:"requests"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Requests, 2)
		svc.AssertExpectations(t)
	})

	t.Run("FiltersByState", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("ListRequests", mock.Anything, domain.StateNeedsUpdate).
			Return([]domain.MembershipRequest{}, nil).Once()

		rec := httptest.NewRecorder()
		handler.ListRequests(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/requests?state=NEEDS_UPDATE", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnknownStateIs400", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		rec := httptest.NewRecorder()
		handler.ListRequests(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/requests?state=BOGUS", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ListRequests", mock.Anything, mock.Anything)
	})
}

func decideRequest(id string, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/requests/"+id, bytes.NewBufferString(body))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestAdminHandler_Decide(t *testing.T) {
	t.Run("ApproveReturnsMember", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		member := &domain.Member{ID: "m-1", Identity: "uid-1"}
		svc.On("ApproveRequest", mock.Anything, int32(5)).Return(member, nil).Once()

		rec := httptest.NewRecorder()
		handler.Decide(rec, decideRequest("5", `{"action":"approve"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.Member
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "m-1", got.ID)
	})

	t.Run("UpdatePassesNotes", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("RequestUpdate", mock.Anything, int32(5), "missing phone").Return(nil).Once()

		rec := httptest.NewRecorder()
		handler.Decide(rec, decideRequest("5", `{"action":"update","notes":"missing phone"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("UnknownActionIs400", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		rec := httptest.NewRecorder()
		handler.Decide(rec, decideRequest("5", `{"action":"reject"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NonNumericIDIs400", func(t *testing.T) {
		handler := NewAdminHandler(new(MockAdminService), testMetrics())

		rec := httptest.NewRecorder()
		handler.Decide(rec, decideRequest("abc", `{"action":"approve"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingRequestIs404", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("ApproveRequest", mock.Anything, int32(99)).Return(nil, repository.ErrNotFound).Once()

		rec := httptest.NewRecorder()
		handler.Decide(rec, decideRequest("99", `{"action":"approve"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ClosedRequestIs409", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("ApproveRequest", mock.Anything, int32(5)).Return(nil, service.ErrRequestClosed).Once()

		rec := httptest.NewRecorder()
		handler.Decide(rec, decideRequest("5", `{"action":"approve"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("RevalidationFailureIs409", func(t *testing.T) {
		svc := new(MockAdminService)
		handler := NewAdminHandler(svc, testMetrics())

		svc.On("ApproveRequest", mock.Anything, int32(5)).
			Return(nil, membership.ValidationError("phone number is required")).Once()

		rec := httptest.NewRecorder()
		handler.Decide(rec, decideRequest("5", `{"action":"approve"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "phone number is required")
	})
}
