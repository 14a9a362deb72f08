package postgres

import (
	"database/sql"
	"errors"

	"memberdir-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db       *sql.DB
	Requests repository.RequestRepository
	Members  repository.MemberRepository
	Admins   repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		Requests: NewRequestRepository(db),
		Members:  NewMemberRepository(db),
		Admins:   NewAdminRepository(db),
	}
}

// translateError maps driver errors onto the repository sentinels so callers
// never depend on lib/pq directly.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicateKey
	}
	return err
}
