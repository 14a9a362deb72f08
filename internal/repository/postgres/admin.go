package postgres

import (
	"context"
	"database/sql"
	"time"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.AdminAccount) error {
	query := `INSERT INTO admin_accounts (email, name, password_hash, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, admin.Email, admin.Name, admin.PasswordHash, time.Now()).Scan(&admin.ID)
	return translateError(err)
}

func (r *adminRepository) GetByID(ctx context.Context, id int32) (*domain.AdminAccount, error) {
	admin := &domain.AdminAccount{}
	query := `SELECT id, email, name, password_hash, created_on FROM admin_accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash, &admin.CreatedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	admin := &domain.AdminAccount{}
	query := `SELECT id, email, name, password_hash, created_on FROM admin_accounts WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash, &admin.CreatedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return admin, nil
}
