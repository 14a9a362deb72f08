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

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, identity, personal, contact, employments, visibility, status, member_since, created_on, updated_on`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	personal, contact, employments, visibility, err := marshalMemberSections(m)
	if err != nil {
		return err
	}
	query := `INSERT INTO members
	          (id, identity, personal, contact, employments, visibility, status, member_since, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.ExecContext(ctx, query,
		m.ID, m.Identity, personal, contact, employments, visibility,
		m.Status, m.MemberSince, m.CreatedOn, m.UpdatedOn,
	)
	return translateError(err)
}

func (r *memberRepository) GetByIdentity(ctx context.Context, identity string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE identity = $1`
	m := &domain.Member{}
	var personal, contact, employments, visibility []byte
	err := r.db.QueryRowContext(ctx, query, identity).Scan(
		&m.ID, &m.Identity, &personal, &contact, &employments, &visibility,
		&m.Status, &m.MemberSince, &m.CreatedOn, &m.UpdatedOn,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if err := json.Unmarshal(personal, &m.Personal); err != nil {
		return nil, fmt.Errorf("failed to decode personal section: %w", err)
	}
	if err := json.Unmarshal(contact, &m.Contact); err != nil {
		return nil, fmt.Errorf("failed to decode contact section: %w", err)
	}
	if err := json.Unmarshal(employments, &m.Employments); err != nil {
		return nil, fmt.Errorf("failed to decode employments: %w", err)
	}
	if err := json.Unmarshal(visibility, &m.Visibility); err != nil {
		return nil, fmt.Errorf("failed to decode visibility: %w", err)
	}
	return m, nil
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	personal, contact, employments, visibility, err := marshalMemberSections(m)
	if err != nil {
		return err
	}
	query := `UPDATE members SET personal = $1, contact = $2, employments = $3, visibility = $4, status = $5, updated_on = $6 WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query, personal, contact, employments, visibility, m.Status, time.Now(), m.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func marshalMemberSections(m *domain.Member) (personal, contact, employments, visibility []byte, err error) {
	if personal, err = json.Marshal(m.Personal); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode personal section: %w", err)
	}
	if contact, err = json.Marshal(m.Contact); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode contact section: %w", err)
	}
	if employments, err = json.Marshal(m.Employments); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode employments: %w", err)
	}
	if visibility, err = json.Marshal(m.Visibility); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode visibility: %w", err)
	}
	return personal, contact, employments, visibility, nil
}
