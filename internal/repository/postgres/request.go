package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, identity, submission_key, personal, contact, professional, social, consent, visibility, state, notes, created_on, updated_on`

func (r *requestRepository) Create(ctx context.Context, req *domain.MembershipRequest) error {
	personal, err := json.Marshal(req.Personal)
	if err != nil {
		return fmt.Errorf("failed to encode personal section: %w", err)
	}
	contact, err := json.Marshal(req.Contact)
	if err != nil {
		return fmt.Errorf("failed to encode contact section: %w", err)
	}
	professional, err := json.Marshal(req.Professional)
	if err != nil {
		return fmt.Errorf("failed to encode professional section: %w", err)
	}
	social, err := marshalOptional(req.Social)
	if err != nil {
		return fmt.Errorf("failed to encode social section: %w", err)
	}
	consent, err := json.Marshal(req.Consent)
	if err != nil {
		return fmt.Errorf("failed to encode consent section: %w", err)
	}
	visibility, err := marshalOptional(req.Visibility)
	if err != nil {
		return fmt.Errorf("failed to encode visibility: %w", err)
	}

	query := `INSERT INTO membership_requests
	          (identity, submission_key, personal, contact, professional, social, consent, visibility, state, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		req.Identity, req.SubmissionKey, personal, contact, professional, social,
		consent, visibility, req.State, req.Notes, req.CreatedOn, req.UpdatedOn,
	).Scan(&req.ID)
	return translateError(err)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.MembershipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM membership_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return req, nil
}

func (r *requestRepository) FindByIdentity(ctx context.Context, identity string) ([]domain.MembershipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM membership_requests WHERE identity = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, identity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *requestRepository) UpdateState(ctx context.Context, id int32, state domain.LifecycleState, notes string) error {
	query := `UPDATE membership_requests SET state = $1, notes = $2, updated_on = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, state, notes, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *requestRepository) ListByState(ctx context.Context, state domain.LifecycleState) ([]domain.MembershipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM membership_requests WHERE state = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *requestRepository) DeleteByStateBefore(ctx context.Context, state domain.LifecycleState, before time.Time) (int64, error) {
	query := `DELETE FROM membership_requests WHERE state = $1 AND updated_on < $2`
	res, err := r.db.ExecContext(ctx, query, state, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.MembershipRequest, error) {
	req := &domain.MembershipRequest{}
	var personal, contact, professional, social, consent, visibility []byte
	err := row.Scan(
		&req.ID, &req.Identity, &req.SubmissionKey, &personal, &contact,
		&professional, &social, &consent, &visibility, &req.State, &req.Notes,
		&req.CreatedOn, &req.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(personal, &req.Personal); err != nil {
		return nil, fmt.Errorf("failed to decode personal section: %w", err)
	}
	if err := json.Unmarshal(contact, &req.Contact); err != nil {
		return nil, fmt.Errorf("failed to decode contact section: %w", err)
	}
	if err := json.Unmarshal(professional, &req.Professional); err != nil {
		return nil, fmt.Errorf("failed to decode professional section: %w", err)
	}
	if err := json.Unmarshal(consent, &req.Consent); err != nil {
		return nil, fmt.Errorf("failed to decode consent section: %w", err)
	}
	if len(social) > 0 {
		req.Social = &domain.SocialPresence{}
		if err := json.Unmarshal(social, req.Social); err != nil {
			return nil, fmt.Errorf("failed to decode social section: %w", err)
		}
	}
	if len(visibility) > 0 {
		req.Visibility = &domain.Visibility{}
		if err := json.Unmarshal(visibility, req.Visibility); err != nil {
			return nil, fmt.Errorf("failed to decode visibility: %w", err)
		}
	}
	return req, nil
}

func collectRequests(rows *sql.Rows) ([]domain.MembershipRequest, error) {
	var reqs []domain.MembershipRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

// marshalOptional returns nil for a nil pointer so the column stays NULL.
func marshalOptional(v any) ([]byte, error) {
	switch p := v.(type) {
	case *domain.SocialPresence:
		if p == nil {
			return nil, nil
		}
	case *domain.Visibility:
		if p == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}
