package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAdminRepository(db)
	now := time.Now()

	t.Run("CreateAssignsID", func(t *testing.T) {
		admin := &domain.AdminAccount{Email: "admin@example.com", Name: "Admin", PasswordHash: "hash"}
		mock.ExpectQuery(`INSERT INTO admin_accounts`).
			WithArgs(admin.Email, admin.Name, admin.PasswordHash, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(3)))

		require.NoError(t, repo.Create(context.Background(), admin))
		assert.Equal(t, int32(3), admin.ID)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_on"}).
			AddRow(int32(3), "admin@example.com", "Admin", "hash", now)
		mock.ExpectQuery(`SELECT .+ FROM admin_accounts WHERE email`).
			WithArgs("admin@example.com").
			WillReturnRows(rows)

		admin, err := repo.GetByEmail(context.Background(), "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, int32(3), admin.ID)
		assert.Equal(t, "hash", admin.PasswordHash)
	})

	t.Run("GetByEmailNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM admin_accounts WHERE email`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
