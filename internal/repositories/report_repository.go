package repositories

import (
	"context"
	"database/sql"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *models.Report) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	rep.CreatedAt = now
	rep.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (
			id, gig_id, rep_id, company_id, reason,
			latitude, longitude, location, image_url,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		rep.ID, rep.GigID, rep.RepID, rep.CompanyID, rep.Reason,
		rep.Latitude, rep.Longitude, rep.Location, rep.ImageURL,
		rep.CreatedAt, rep.UpdatedAt,
	)
	return err
}

// ListByGig returns every report filed against a gig, with the reporting
// rep's summary.
func (r *ReportRepository) ListByGig(ctx context.Context, gigID string) ([]models.ReportListItem, error) {
	return r.list(ctx, `WHERE r.gig_id = $1`, gigID)
}

// ListByCompany returns the latest reports across the company's gigs.
func (r *ReportRepository) ListByCompany(ctx context.Context, companyID string) ([]models.ReportListItem, error) {
	return r.list(ctx, `WHERE r.company_id = $1 ORDER BY r.created_at DESC LIMIT 10`, companyID)
}

// ListByGigAndRep returns the rep's own reports for a gig.
func (r *ReportRepository) ListByGigAndRep(ctx context.Context, gigID, repID string) ([]models.ReportListItem, error) {
	return r.list(ctx, `WHERE r.gig_id = $1 AND r.rep_id = $2`, gigID, repID)
}

func (r *ReportRepository) list(ctx context.Context, clause string, args ...interface{}) ([]models.ReportListItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.gig_id, r.rep_id, r.company_id, r.reason,
		       r.latitude, r.longitude, r.location, r.image_url,
		       r.created_at, r.updated_at,
		       rp.id, rp.name, rp.email
		FROM reports r
		JOIN reps rp ON rp.id = r.rep_id
		`+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ReportListItem
	for rows.Next() {
		var item models.ReportListItem
		var rep models.RepSummary
		err := rows.Scan(
			&item.ID, &item.GigID, &item.RepID, &item.CompanyID, &item.Reason,
			&item.Latitude, &item.Longitude, &item.Location, &item.ImageURL,
			&item.CreatedAt, &item.UpdatedAt,
			&rep.ID, &rep.Name, &rep.Email,
		)
		if err != nil {
			return nil, err
		}
		item.RepItem = &rep
		items = append(items, item)
	}
	return items, rows.Err()
}

// CountRecentByRep counts the rep's reports created after the cutoff. This
// is the sliding-window input of the suspicious-activity heuristic; it is
// recomputed on every evaluation rather than kept as a counter.
func (r *ReportRepository) CountRecentByRep(ctx context.Context, repID string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reports WHERE rep_id = $1 AND created_at > $2
	`, repID, since).Scan(&count)
	return count, err
}

// CountByCompany counts reports filed against the company's gigs.
func (r *ReportRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reports WHERE company_id = $1
	`, companyID).Scan(&count)
	return count, err
}
