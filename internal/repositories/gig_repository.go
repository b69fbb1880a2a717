package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

// locationDelta is the half-width of the bounding box used by the
// lat/lng gig filter, in degrees.
const locationDelta = 0.1

type GigRepository struct {
	db *sql.DB
}

func NewGigRepository(db *sql.DB) *GigRepository {
	return &GigRepository{db: db}
}

func (r *GigRepository) Create(ctx context.Context, g *models.Gig) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Status == "" {
		g.Status = models.GigStatusActive
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gigs (
			id, company_id, title, description, price,
			latitude, longitude, location, target, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		g.ID, g.CompanyID, g.Title, g.Description, g.Price,
		g.Latitude, g.Longitude, g.Location, g.Target, g.Status,
		g.CreatedAt, g.UpdatedAt,
	)
	return err
}

func (r *GigRepository) GetByID(ctx context.Context, id string) (*models.GigListItem, error) {
	var item models.GigListItem
	var company models.CompanySummary

	err := r.db.QueryRowContext(ctx, `
		SELECT g.id, g.company_id, g.title, g.description, g.price,
		       g.latitude, g.longitude, g.location, g.target, g.status,
		       g.created_at, g.updated_at,
		       c.id, c.name,
		       (SELECT COUNT(*) FROM reports rp WHERE rp.gig_id = g.id)
		FROM gigs g
		JOIN companies c ON c.id = g.company_id
		WHERE g.id = $1
	`, id).Scan(
		&item.ID, &item.CompanyID, &item.Title, &item.Description, &item.Price,
		&item.Latitude, &item.Longitude, &item.Location, &item.Target, &item.Status,
		&item.CreatedAt, &item.UpdatedAt,
		&company.ID, &company.Name,
		&item.ReportsCount,
	)
	if err != nil {
		return nil, err
	}
	item.CompanySummary = &company
	return &item, nil
}

// ListActive returns a page of ACTIVE gigs with their company summaries,
// most recent first.
func (r *GigRepository) ListActive(ctx context.Context, page int) ([]models.GigListItem, int, error) {
	return r.listActive(ctx, page, nil, nil)
}

// ListActiveByLocation filters ACTIVE gigs to a bounding box of ±0.1°
// around the given point.
func (r *GigRepository) ListActiveByLocation(ctx context.Context, lat, lng float64, page int) ([]models.GigListItem, int, error) {
	return r.listActive(ctx, page, &lat, &lng)
}

func (r *GigRepository) listActive(ctx context.Context, page int, lat, lng *float64) ([]models.GigListItem, int, error) {
	where := `WHERE g.status = 'ACTIVE'`
	args := []interface{}{}
	if lat != nil && lng != nil {
		where += ` AND g.latitude BETWEEN $1 AND $2 AND g.longitude BETWEEN $3 AND $4`
		args = append(args, *lat-locationDelta, *lat+locationDelta, *lng-locationDelta, *lng+locationDelta)
	}

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gigs g `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`
		SELECT g.id, g.company_id, g.title, g.description, g.price,
		       g.latitude, g.longitude, g.location, g.target, g.status,
		       g.created_at, g.updated_at,
		       c.id, c.name
		FROM gigs g
		JOIN companies c ON c.id = g.company_id
		%s
		ORDER BY g.created_at DESC
		LIMIT $%d OFFSET $%d`, where, limitPos, limitPos+1)
	args = append(args, PageSize, offset(page))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.GigListItem
	for rows.Next() {
		var item models.GigListItem
		var company models.CompanySummary
		err := rows.Scan(
			&item.ID, &item.CompanyID, &item.Title, &item.Description, &item.Price,
			&item.Latitude, &item.Longitude, &item.Location, &item.Target, &item.Status,
			&item.CreatedAt, &item.UpdatedAt,
			&company.ID, &company.Name,
		)
		if err != nil {
			return nil, 0, err
		}
		item.CompanySummary = &company
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// ListByCompany returns a page of the company's gigs with their application
// counts, most recent first.
func (r *GigRepository) ListByCompany(ctx context.Context, companyID string, page int) ([]models.GigListItem, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM gigs WHERE company_id = $1
	`, companyID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.company_id, g.title, g.description, g.price,
		       g.latitude, g.longitude, g.location, g.target, g.status,
		       g.created_at, g.updated_at,
		       (SELECT COUNT(*) FROM applications a WHERE a.gig_id = g.id)
		FROM gigs g
		WHERE g.company_id = $1
		ORDER BY g.created_at DESC
		LIMIT $2 OFFSET $3
	`, companyID, PageSize, offset(page))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.GigListItem
	for rows.Next() {
		var item models.GigListItem
		err := rows.Scan(
			&item.ID, &item.CompanyID, &item.Title, &item.Description, &item.Price,
			&item.Latitude, &item.Longitude, &item.Location, &item.Target, &item.Status,
			&item.CreatedAt, &item.UpdatedAt,
			&item.ApplicationsCount,
		)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// CountByCompany counts the company's gigs.
func (r *GigRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM gigs WHERE company_id = $1
	`, companyID).Scan(&count)
	return count, err
}

// Delete removes a gig. Administrative/seed use only; nothing in the API
// surface calls it.
func (r *GigRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM gigs WHERE id = $1`, id)
	return err
}
