package http

import (
	"context"
	"errors"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) SubmitRequest(ctx context.Context, identity string, req *domain.MembershipRequest) (*domain.MembershipRequest, service.SubmissionOutcome, error) {
	args := m.Called(ctx, identity, req)
	var stored *domain.MembershipRequest
	if args.Get(0) != nil {
		stored = args.Get(0).(*domain.MembershipRequest)
	}
	return stored, args.Get(1).(service.SubmissionOutcome), args.Error(2)
}

func (m *MockMembershipService) HasSubmitted(ctx context.Context, identity string) (bool, error) {
	args := m.Called(ctx, identity)
	return args.Bool(0), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAdminService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAdminService) ListRequests(ctx context.Context, state domain.LifecycleState) ([]domain.MembershipRequest, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipRequest), args.Error(1)
}

func (m *MockAdminService) ApproveRequest(ctx context.Context, requestID int32) (*domain.Member, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockAdminService) RequestUpdate(ctx context.Context, requestID int32, notes string) error {
	args := m.Called(ctx, requestID, notes)
	return args.Error(0)
}

// stubVerifier resolves a fixed bearer token to a subject id.
type stubVerifier struct {
	subjects map[string]string
}

func (v *stubVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	if subject, ok := v.subjects[idToken]; ok {
		return subject, nil
	}
	return "", errors.New("unknown token")
}
