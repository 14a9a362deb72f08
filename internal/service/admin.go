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
	"memberdir-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrRequestClosed is returned when a decision targets a request whose
	// lifecycle state is already terminal for that action.
	ErrRequestClosed = errors.New("request is no longer open for this action")
)

type adminService struct {
	adminRepo  repository.AdminRepository
	reqRepo    repository.RequestRepository
	memberRepo repository.MemberRepository
	emailSvc   EmailService
	tokens     security.TokenManager
}

func NewAdminService(
	adminRepo repository.AdminRepository,
	reqRepo repository.RequestRepository,
	memberRepo repository.MemberRepository,
	emailSvc EmailService,
	tokens security.TokenManager,
) AdminService {
	return &adminService{
		adminRepo:  adminRepo,
		reqRepo:    reqRepo,
		memberRepo: memberRepo,
		emailSvc:   emailSvc,
		tokens:     tokens,
	}
}

func (s *adminService) Login(ctx context.Context, email, password string) (string, string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(admin.ID, admin.Email, []string{security.RoleAdmin})
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(admin.ID, admin.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *adminService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil || claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	access, err := s.tokens.GenerateAccessToken(claims.AdminID, claims.Email, []string{security.RoleAdmin})
	if err != nil {
		return "", "", err
	}
	next, err := s.tokens.GenerateRefreshToken(claims.AdminID, claims.Email)
	if err != nil {
		return "", "", err
	}
	return access, next, nil
}

func (s *adminService) ListRequests(ctx context.Context, state domain.LifecycleState) ([]domain.MembershipRequest, error) {
	return s.reqRepo.ListByState(ctx, state)
}

// ApproveRequest converts a pending request into a member record. The two
// writes (create member, flip request state) are not atomic across tables, so
// the conversion is re-entrant: an existing member for the identity short-
// circuits creation, and re-approving an already approved request is a no-op
// that returns the existing member.
func (s *adminService) ApproveRequest(ctx context.Context, requestID int32) (*domain.Member, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership request: %w", err)
	}

	if req.State == domain.StateNeedsUpdate {
		return nil, ErrRequestClosed
	}
	if req.State == domain.StateApproved {
		member, err := s.memberRepo.GetByIdentity(ctx, req.Identity)
		if err == nil {
			return member, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up member: %w", err)
		}
		// Approved state without a member means an earlier conversion was
		// interrupted after the flip; fall through and create the member.
	}

	// Approval must never produce an inconsistent member, so the submission
	// rules run again here even though they already ran at intake.
	membership.NormalizeBusinesses(&req.Professional)
	if err := membership.Validate(req); err != nil {
		return nil, fmt.Errorf("request failed re-validation at approval: %w", err)
	}
	set, err := membership.ParseStatusSet(req.Professional.EmploymentStatus)
	if err != nil {
		return nil, fmt.Errorf("request failed re-validation at approval: %w", err)
	}

	member, err := s.memberRepo.GetByIdentity(ctx, req.Identity)
	if errors.Is(err, repository.ErrNotFound) {
		now := time.Now()
		member = &domain.Member{
			ID:          uuid.NewString(),
			Identity:    req.Identity,
			Personal:    req.Personal,
			Contact:     req.Contact,
			Employments: membership.BuildEmployments(set, &req.Professional, now),
			Visibility:  membership.ResolveVisibility(req.Consent, req.Visibility),
			Status:      domain.MemberStatusActive,
			MemberSince: now,
			CreatedOn:   now,
			UpdatedOn:   now,
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			// Request stays pending; the approval can be retried.
			return nil, fmt.Errorf("failed to create member: %w", err)
		}
		logger.InfoContext(ctx, "Member created", "member_id", member.ID, "identity", member.Identity)
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	if err := s.reqRepo.UpdateState(ctx, req.ID, domain.StateApproved, ""); err != nil {
		// The member exists; retrying the approval heals the flip.
		return nil, fmt.Errorf("member created but failed to mark request approved: %w", err)
	}

	if nerr := s.emailSvc.SendDecisionNotification(ctx, req.Contact.Email, req.Personal.FirstName, "APPROVED", ""); nerr != nil {
		logger.WarnContext(ctx, "Failed to send approval notification", "error", nerr, "request_id", req.ID)
	}
	return member, nil
}

// RequestUpdate rejects a pending request back to the applicant with admin
// notes. The record stays in the lineage for audit and a fresh submission is
// permitted afterwards.
func (s *adminService) RequestUpdate(ctx context.Context, requestID int32, notes string) error {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to get membership request: %w", err)
	}
	if req.State != domain.StatePending {
		return ErrRequestClosed
	}

	if err := s.reqRepo.UpdateState(ctx, req.ID, domain.StateNeedsUpdate, notes); err != nil {
		return fmt.Errorf("failed to update request state: %w", err)
	}

	if nerr := s.emailSvc.SendDecisionNotification(ctx, req.Contact.Email, req.Personal.FirstName, "NEEDS_UPDATE", notes); nerr != nil {
		logger.WarnContext(ctx, "Failed to send rejection notification", "error", nerr, "request_id", req.ID)
	}
	return nil
}
