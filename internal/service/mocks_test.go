package service

import (
	"context"
	"time"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.MembershipRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.MembershipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipRequest), args.Error(1)
}

func (m *MockRequestRepo) FindByIdentity(ctx context.Context, identity string) ([]domain.MembershipRequest, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipRequest), args.Error(1)
}

func (m *MockRequestRepo) UpdateState(ctx context.Context, id int32, state domain.LifecycleState, notes string) error {
	args := m.Called(ctx, id, state, notes)
	return args.Error(0)
}

func (m *MockRequestRepo) ListByState(ctx context.Context, state domain.LifecycleState) ([]domain.MembershipRequest, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipRequest), args.Error(1)
}

func (m *MockRequestRepo) DeleteByStateBefore(ctx context.Context, state domain.LifecycleState, before time.Time) (int64, error) {
	args := m.Called(ctx, state, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) GetByIdentity(ctx context.Context, identity string) (*domain.Member, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.AdminAccount) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepo) GetByID(ctx context.Context, id int32) (*domain.AdminAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}

func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDecisionNotification(ctx context.Context, email, name, decision, notes string) error {
	args := m.Called(ctx, email, name, decision, notes)
	return args.Error(0)
}

func (m *MockEmailService) SendPendingDigest(ctx context.Context, adminEmail string, requests []domain.MembershipRequest) error {
	args := m.Called(ctx, adminEmail, requests)
	return args.Error(0)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(adminID int32, email string, roles []string) (string, error) {
	args := m.Called(adminID, email, roles)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) GenerateRefreshToken(adminID int32, email string) (string, error) {
	args := m.Called(adminID, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}
