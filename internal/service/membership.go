package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/logger"
	"memberdir-backend/internal/membership"
	"memberdir-backend/internal/repository"
)

type membershipService struct {
	reqRepo     repository.RequestRepository
	dedupWindow time.Duration
}

func NewMembershipService(reqRepo repository.RequestRepository, dedupWindow time.Duration) MembershipService {
	return &membershipService{
		reqRepo:     reqRepo,
		dedupWindow: dedupWindow,
	}
}

// SubmitRequest runs the full intake pipeline: normalize, validate, resolve
// visibility defaults, consult the lineage for duplicates and persist. A
// validation failure returns a membership.ValidationError and nothing is
// persisted.
func (s *membershipService) SubmitRequest(ctx context.Context, identity string, req *domain.MembershipRequest) (*domain.MembershipRequest, SubmissionOutcome, error) {
	req.Identity = identity

	membership.NormalizeBusinesses(&req.Professional)
	if err := membership.Validate(req); err != nil {
		return nil, 0, err
	}
	vis := membership.ResolveVisibility(req.Consent, req.Visibility)
	req.Visibility = &vis

	existing, err := s.reqRepo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load request lineage: %w", err)
	}

	now := time.Now()
	decision, prior := membership.Deduplicate(existing, now, s.dedupWindow)
	switch decision {
	case membership.DecisionReturnExisting:
		logger.InfoContext(ctx, "Duplicate submission, returning prior request", "identity", identity, "request_id", prior.ID)
		return prior, OutcomeDuplicate, nil
	case membership.DecisionConflict:
		logger.InfoContext(ctx, "Active request already exists", "identity", identity, "request_id", prior.ID, "state", prior.State)
		return prior, OutcomeConflict, nil
	}

	req.State = domain.StatePending
	req.CreatedOn = now
	req.UpdatedOn = now
	req.SubmissionKey = membership.SubmissionKey(identity, now)

	// Same normalization again immediately before persistence; idempotent.
	membership.NormalizeBusinesses(&req.Professional)

	if err := s.reqRepo.Create(ctx, req); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Lost an insert race against a concurrent double-submit;
			// the winner's row is the record to hand back.
			rows, lerr := s.reqRepo.FindByIdentity(ctx, identity)
			if lerr == nil {
				if latest := membership.Latest(rows); latest != nil {
					return latest, OutcomeDuplicate, nil
				}
			}
		}
		return nil, 0, fmt.Errorf("failed to create membership request: %w", err)
	}

	logger.InfoContext(ctx, "Membership request created", "identity", identity, "request_id", req.ID)
	return req, OutcomeCreated, nil
}

// HasSubmitted reports whether the identity's lineage is awaiting a decision
// or already approved. A needs-update lineage invites resubmission and is
// reported as not submitted.
func (s *membershipService) HasSubmitted(ctx context.Context, identity string) (bool, error) {
	rows, err := s.reqRepo.FindByIdentity(ctx, identity)
	if err != nil {
		return false, fmt.Errorf("failed to load request lineage: %w", err)
	}
	latest := membership.Latest(rows)
	return latest != nil && latest.State != domain.StateNeedsUpdate, nil
}
