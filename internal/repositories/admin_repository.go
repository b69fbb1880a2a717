package repositories

import (
	"context"
	"database/sql"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admins (id, name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Name, a.Email, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, created_at, updated_at
		FROM admins WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByEmail returns the admin with the given email, or nil when none
// exists.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, created_at, updated_at
		FROM admins WHERE email = $1
	`, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
