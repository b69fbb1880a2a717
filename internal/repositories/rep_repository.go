package repositories

import (
	"context"
	"database/sql"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

type RepRepository struct {
	db *sql.DB
}

func NewRepRepository(db *sql.DB) *RepRepository {
	return &RepRepository{db: db}
}

const repColumns = `id, name, email, password, is_verified, is_passed, is_fraud,
	rating, rating_count, profile_pic, phone_no, bio, created_at, updated_at`

func scanRep(row *sql.Row) (*models.Rep, error) {
	var rep models.Rep
	err := row.Scan(
		&rep.ID, &rep.Name, &rep.Email, &rep.PasswordHash,
		&rep.IsVerified, &rep.IsPassed, &rep.IsFraud,
		&rep.Rating, &rep.RatingCount,
		&rep.ProfilePic, &rep.PhoneNo, &rep.Bio,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *RepRepository) Create(ctx context.Context, rep *models.Rep) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	rep.CreatedAt = now
	rep.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reps (
			id, name, email, password, is_verified, is_passed, is_fraud,
			rating, rating_count, profile_pic, phone_no, bio,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		rep.ID, rep.Name, rep.Email, rep.PasswordHash,
		rep.IsVerified, rep.IsPassed, rep.IsFraud,
		rep.Rating, rep.RatingCount, rep.ProfilePic, rep.PhoneNo, rep.Bio,
		rep.CreatedAt, rep.UpdatedAt,
	)
	return err
}

func (r *RepRepository) GetByID(ctx context.Context, id string) (*models.Rep, error) {
	return scanRep(r.db.QueryRowContext(ctx, `SELECT `+repColumns+` FROM reps WHERE id = $1`, id))
}

// GetByEmail returns the rep with the given email, or nil when none exists.
func (r *RepRepository) GetByEmail(ctx context.Context, email string) (*models.Rep, error) {
	rep, err := scanRep(r.db.QueryRowContext(ctx, `SELECT `+repColumns+` FROM reps WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rep, err
}

// UpdateProfile overwrites the mutable profile fields and returns the
// updated row.
func (r *RepRepository) UpdateProfile(ctx context.Context, id, name, phoneNo, bio, profilePic string) (*models.Rep, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reps SET name = $1, phone_no = $2, bio = $3, profile_pic = $4, updated_at = $5
		WHERE id = $6
	`, name, phoneNo, bio, profilePic, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Pass marks the rep as having passed vetting.
func (r *RepRepository) Pass(ctx context.Context, id string) (*models.Rep, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reps SET is_passed = TRUE, updated_at = $1 WHERE id = $2
	`, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// SetFraud flips the fraud flag. A flagged rep can no longer authenticate.
func (r *RepRepository) SetFraud(ctx context.Context, id string, isFraud bool) (*models.Rep, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reps SET is_fraud = $1, updated_at = $2 WHERE id = $3
	`, isFraud, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Rate folds one rating into the running mean in a single statement, so
// concurrent raters cannot lose each other's updates.
func (r *RepRepository) Rate(ctx context.Context, id string, rating float64) (*models.RepRating, error) {
	var out models.RepRating
	err := r.db.QueryRowContext(ctx, `
		UPDATE reps
		SET rating = (rating * rating_count + $1) / (rating_count + 1),
		    rating_count = rating_count + 1,
		    updated_at = $2
		WHERE id = $3
		RETURNING rating, rating_count
	`, rating, time.Now().UTC(), id).Scan(&out.Rating, &out.RatingCount)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
