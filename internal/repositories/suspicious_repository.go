package repositories

import (
	"context"
	"database/sql"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

type SuspiciousActivityRepository struct {
	db *sql.DB
}

func NewSuspiciousActivityRepository(db *sql.DB) *SuspiciousActivityRepository {
	return &SuspiciousActivityRepository{db: db}
}

// Create appends one advisory flag. The trail is append-only; nothing ever
// updates or deletes these rows.
func (r *SuspiciousActivityRepository) Create(ctx context.Context, sa *models.SuspiciousActivity) error {
	if sa.ID == "" {
		sa.ID = uuid.New().String()
	}
	sa.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suspicious_activities (id, rep_id, reason, created_at)
		VALUES ($1, $2, $3, $4)
	`, sa.ID, sa.RepID, sa.Reason, sa.CreatedAt)
	return err
}

// List returns a page of flags, newest first, with the flagged rep attached.
func (r *SuspiciousActivityRepository) List(ctx context.Context, page int) ([]models.SuspiciousActivityItem, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM suspicious_activities`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT sa.id, sa.rep_id, sa.reason, sa.created_at,
		       rp.id, rp.name, rp.email, rp.is_fraud
		FROM suspicious_activities sa
		JOIN reps rp ON rp.id = sa.rep_id
		ORDER BY sa.created_at DESC
		LIMIT $1 OFFSET $2
	`, PageSize, offset(page))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanActivityRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListSince returns all flags created after the cutoff, newest first. Used
// by the digest worker.
func (r *SuspiciousActivityRepository) ListSince(ctx context.Context, since time.Time) ([]models.SuspiciousActivityItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sa.id, sa.rep_id, sa.reason, sa.created_at,
		       rp.id, rp.name, rp.email, rp.is_fraud
		FROM suspicious_activities sa
		JOIN reps rp ON rp.id = sa.rep_id
		WHERE sa.created_at > $1
		ORDER BY sa.created_at DESC
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivityRows(rows)
}

func scanActivityRows(rows *sql.Rows) ([]models.SuspiciousActivityItem, error) {
	var items []models.SuspiciousActivityItem
	for rows.Next() {
		var item models.SuspiciousActivityItem
		var rep models.FlaggedRep
		err := rows.Scan(
			&item.ID, &item.RepID, &item.Reason, &item.CreatedAt,
			&rep.ID, &rep.Name, &rep.Email, &rep.IsFraud,
		)
		if err != nil {
			return nil, err
		}
		item.RepItem = &rep
		items = append(items, item)
	}
	return items, rows.Err()
}
