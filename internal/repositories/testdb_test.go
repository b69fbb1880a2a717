package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"replink_backend/internal/models"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const testSchema = `
CREATE TABLE companies (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE reps (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	is_verified BOOLEAN NOT NULL DEFAULT FALSE,
	is_passed BOOLEAN NOT NULL DEFAULT FALSE,
	is_fraud BOOLEAN NOT NULL DEFAULT FALSE,
	rating REAL NOT NULL DEFAULT 0,
	rating_count INTEGER NOT NULL DEFAULT 0,
	profile_pic TEXT NOT NULL DEFAULT '',
	phone_no TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE admins (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE gigs (
	id TEXT PRIMARY KEY,
	company_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	price REAL NOT NULL,
	latitude REAL NOT NULL DEFAULT 0,
	longitude REAL NOT NULL DEFAULT 0,
	location TEXT NOT NULL DEFAULT '',
	target TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'ACTIVE',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE applications (
	id TEXT PRIMARY KEY,
	gig_id TEXT NOT NULL,
	rep_id TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'PENDING',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE UNIQUE INDEX idx_applications_gig_rep ON applications (gig_id, rep_id);

CREATE TABLE reports (
	id TEXT PRIMARY KEY,
	gig_id TEXT NOT NULL,
	rep_id TEXT NOT NULL,
	company_id TEXT NOT NULL,
	reason TEXT NOT NULL,
	latitude REAL NOT NULL DEFAULT 0,
	longitude REAL NOT NULL DEFAULT 0,
	location TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE suspicious_activities (
	id TEXT PRIMARY KEY,
	rep_id TEXT NOT NULL,
	reason TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

// newTestDB opens an in-memory database with the full schema. A single
// connection keeps every query on the same memory instance.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return db
}

func seedCompany(t *testing.T, db *sql.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewCompanyRepository(db).Create(context.Background(), company))
	return company
}

func seedRep(t *testing.T, db *sql.DB, name string) *models.Rep {
	t.Helper()
	rep := &models.Rep{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewRepRepository(db).Create(context.Background(), rep))
	return rep
}

func seedGig(t *testing.T, db *sql.DB, companyID string, status models.GigStatus) *models.Gig {
	t.Helper()
	gig := &models.Gig{
		CompanyID:   companyID,
		Title:       "Pharmacy visits downtown",
		Description: "Visit pharmacies and present the spring catalogue.",
		Price:       250,
		Latitude:    51.5,
		Longitude:   -0.1,
		Status:      status,
	}
	require.NoError(t, NewGigRepository(db).Create(context.Background(), gig))
	return gig
}

func seedReportAt(t *testing.T, db *sql.DB, gig *models.Gig, repID string, createdAt time.Time) *models.Report {
	t.Helper()
	report := &models.Report{
		GigID:     gig.ID,
		RepID:     repID,
		CompanyID: gig.CompanyID,
		Reason:    "Pharmacist reported the product was not stocked despite the listing claiming otherwise.",
	}
	require.NoError(t, NewReportRepository(db).Create(context.Background(), report))

	// Backdate for window tests.
	_, err := db.Exec(`UPDATE reports SET created_at = $1 WHERE id = $2`, createdAt, report.ID)
	require.NoError(t, err)
	report.CreatedAt = createdAt
	return report
}
