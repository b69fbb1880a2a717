package repositories

import (
	"context"
	"database/sql"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (id, gig_id, rep_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, app.ID, app.GigID, app.RepID, app.Status, app.CreatedAt, app.UpdatedAt)
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.QueryRowContext(ctx, `
		SELECT id, gig_id, rep_id, status, created_at, updated_at
		FROM applications WHERE id = $1
	`, id).Scan(
		&app.ID, &app.GigID, &app.RepID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByGigAndRep returns the rep's application for a gig, or nil when none
// exists.
func (r *ApplicationRepository) GetByGigAndRep(ctx context.Context, gigID, repID string) (*models.Application, error) {
	var app models.Application
	err := r.db.QueryRowContext(ctx, `
		SELECT id, gig_id, rep_id, status, created_at, updated_at
		FROM applications WHERE gig_id = $1 AND rep_id = $2
	`, gigID, repID).Scan(
		&app.ID, &app.GigID, &app.RepID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Decide transitions a PENDING application to the given status. Both writes
// run in one transaction: on ACCEPTED the gig is flipped to INACTIVE with a
// conditional update, so a second accept on the same gig fails with
// ErrGigTaken instead of double-assigning it.
func (r *ApplicationRepository) Decide(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var app models.Application
	err = tx.QueryRowContext(ctx, `
		SELECT id, gig_id, rep_id, status, created_at, updated_at
		FROM applications WHERE id = $1
	`, id).Scan(
		&app.ID, &app.GigID, &app.RepID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	res, err := tx.ExecContext(ctx, `
		UPDATE applications SET status = $1, updated_at = $2
		WHERE id = $3 AND status = 'PENDING'
	`, status, now, id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrAlreadyDecided
	}

	if status == models.ApplicationStatusAccepted {
		res, err := tx.ExecContext(ctx, `
			UPDATE gigs SET status = 'INACTIVE', updated_at = $1
			WHERE id = $2 AND status = 'ACTIVE'
		`, now, app.GigID)
		if err != nil {
			return nil, err
		}
		if n, err := res.RowsAffected(); err != nil {
			return nil, err
		} else if n == 0 {
			// Another accept got here first; roll everything back.
			return nil, ErrGigTaken
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	app.Status = status
	app.UpdatedAt = now
	return &app, nil
}

// ListByGig returns a page of applications for a gig, PENDING rows first,
// then most recent first.
func (r *ApplicationRepository) ListByGig(ctx context.Context, gigID string, page int) ([]models.ApplicationListItem, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM applications WHERE gig_id = $1
	`, gigID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.gig_id, a.rep_id, a.status, a.created_at, a.updated_at,
		       rp.id, rp.name, rp.email
		FROM applications a
		JOIN reps rp ON rp.id = a.rep_id
		WHERE a.gig_id = $1
		ORDER BY CASE a.status WHEN 'PENDING' THEN 0 WHEN 'ACCEPTED' THEN 1 ELSE 2 END,
		         a.created_at DESC
		LIMIT $2 OFFSET $3
	`, gigID, PageSize, offset(page))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.ApplicationListItem
	for rows.Next() {
		var item models.ApplicationListItem
		var rep models.RepSummary
		err := rows.Scan(
			&item.ID, &item.GigID, &item.RepID, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&rep.ID, &rep.Name, &rep.Email,
		)
		if err != nil {
			return nil, 0, err
		}
		item.RepItem = &rep
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// ListByRep returns all of a rep's applications with their gigs, most recent
// first.
func (r *ApplicationRepository) ListByRep(ctx context.Context, repID string) ([]models.ApplicationListItem, error) {
	return r.listByRep(ctx, repID, false)
}

// ListAcceptedByRep returns the rep's ACCEPTED applications with their gigs.
func (r *ApplicationRepository) ListAcceptedByRep(ctx context.Context, repID string) ([]models.ApplicationListItem, error) {
	return r.listByRep(ctx, repID, true)
}

func (r *ApplicationRepository) listByRep(ctx context.Context, repID string, acceptedOnly bool) ([]models.ApplicationListItem, error) {
	query := `
		SELECT a.id, a.gig_id, a.rep_id, a.status, a.created_at, a.updated_at,
		       g.id, g.company_id, g.title, g.description, g.price,
		       g.latitude, g.longitude, g.location, g.target, g.status,
		       g.created_at, g.updated_at
		FROM applications a
		JOIN gigs g ON g.id = a.gig_id
		WHERE a.rep_id = $1`
	if acceptedOnly {
		query += ` AND a.status = 'ACCEPTED'`
	}
	query += ` ORDER BY a.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, repID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ApplicationListItem
	for rows.Next() {
		var item models.ApplicationListItem
		var gig models.Gig
		err := rows.Scan(
			&item.ID, &item.GigID, &item.RepID, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&gig.ID, &gig.CompanyID, &gig.Title, &gig.Description, &gig.Price,
			&gig.Latitude, &gig.Longitude, &gig.Location, &gig.Target, &gig.Status,
			&gig.CreatedAt, &gig.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.GigItem = &gig
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListByCompany returns a page of applications across all of a company's
// gigs, most recent first.
func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID string, page int) ([]models.ApplicationListItem, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM applications a
		JOIN gigs g ON g.id = a.gig_id
		WHERE g.company_id = $1
	`, companyID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.gig_id, a.rep_id, a.status, a.created_at, a.updated_at,
		       g.id, g.company_id, g.title, g.description, g.price,
		       g.latitude, g.longitude, g.location, g.target, g.status,
		       g.created_at, g.updated_at,
		       rp.id, rp.name, rp.email
		FROM applications a
		JOIN gigs g ON g.id = a.gig_id
		JOIN reps rp ON rp.id = a.rep_id
		WHERE g.company_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`, companyID, PageSize, offset(page))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.ApplicationListItem
	for rows.Next() {
		var item models.ApplicationListItem
		var gig models.Gig
		var rep models.RepSummary
		err := rows.Scan(
			&item.ID, &item.GigID, &item.RepID, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&gig.ID, &gig.CompanyID, &gig.Title, &gig.Description, &gig.Price,
			&gig.Latitude, &gig.Longitude, &gig.Location, &gig.Target, &gig.Status,
			&gig.CreatedAt, &gig.UpdatedAt,
			&rep.ID, &rep.Name, &rep.Email,
		)
		if err != nil {
			return nil, 0, err
		}
		item.GigItem = &gig
		item.RepItem = &rep
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// CountByCompany counts applications across all of a company's gigs.
func (r *ApplicationRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM applications a
		JOIN gigs g ON g.id = a.gig_id
		WHERE g.company_id = $1
	`, companyID).Scan(&count)
	return count, err
}
