package service

import (
	"context"

	"memberdir-backend/internal/domain"
)

// SubmissionOutcome classifies how a submission was resolved. Duplicate and
// conflict are successful outcomes, not errors.
type SubmissionOutcome int

const (
	OutcomeCreated SubmissionOutcome = iota
	OutcomeDuplicate
	OutcomeConflict
)

type MembershipService interface {
	SubmitRequest(ctx context.Context, identity string, req *domain.MembershipRequest) (*domain.MembershipRequest, SubmissionOutcome, error)
	HasSubmitted(ctx context.Context, identity string) (bool, error)
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	ListRequests(ctx context.Context, state domain.LifecycleState) ([]domain.MembershipRequest, error)
	ApproveRequest(ctx context.Context, requestID int32) (*domain.Member, error)
	RequestUpdate(ctx context.Context, requestID int32, notes string) error
}

type EmailService interface {
	SendDecisionNotification(ctx context.Context, email, name, decision, notes string) error
	SendPendingDigest(ctx context.Context, adminEmail string, requests []domain.MembershipRequest) error
}
