package repositories

import (
	"context"
	"database/sql"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO companies (id, name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.Name, c.Email, c.PasswordHash, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	var c models.Company
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, created_at, updated_at
		FROM companies WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByEmail returns the company with the given email, or nil when none
// exists.
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*models.Company, error) {
	var c models.Company
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, created_at, updated_at
		FROM companies WHERE email = $1
	`, email).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
