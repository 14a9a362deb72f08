package repository

import (
	"context"
	"errors"
	"time"

	"memberdir-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a uniqueness
	// constraint (submission idempotency key, member identity).
	ErrDuplicateKey = errors.New("duplicate key")
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.MembershipRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MembershipRequest, error)
	FindByIdentity(ctx context.Context, identity string) ([]domain.MembershipRequest, error)
	UpdateState(ctx context.Context, id int32, state domain.LifecycleState, notes string) error
	ListByState(ctx context.Context, state domain.LifecycleState) ([]domain.MembershipRequest, error)
	DeleteByStateBefore(ctx context.Context, state domain.LifecycleState, before time.Time) (int64, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByIdentity(ctx context.Context, identity string) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminAccount) error
	GetByID(ctx context.Context, id int32) (*domain.AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error)
}
