package repositories

import (
	"context"
	"testing"
	"time"

	"replink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuspiciousActivityRepository_ListWithRep(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSuspiciousActivityRepository(db)

	rep := seedRep(t, db, "alice")
	flag := &models.SuspiciousActivity{
		RepID:  rep.ID,
		Reason: "Mass Reported in 1 hour, total:5",
	}
	require.NoError(t, repo.Create(ctx, flag))

	items, total, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, flag.Reason, items[0].Reason)
	require.NotNil(t, items[0].RepItem)
	assert.Equal(t, rep.Email, items[0].RepItem.Email)
}

func TestSuspiciousActivityRepository_ListSince(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSuspiciousActivityRepository(db)

	rep := seedRep(t, db, "alice")

	old := &models.SuspiciousActivity{RepID: rep.ID, Reason: "Mass Reported in 1 hour, total:4"}
	require.NoError(t, repo.Create(ctx, old))
	_, err := db.Exec(`UPDATE suspicious_activities SET created_at = $1 WHERE id = $2`,
		time.Now().UTC().Add(-2*time.Hour), old.ID)
	require.NoError(t, err)

	recent := &models.SuspiciousActivity{RepID: rep.ID, Reason: "Mass Reported in 1 hour, total:6"}
	require.NoError(t, repo.Create(ctx, recent))

	items, err := repo.ListSince(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, recent.ID, items[0].ID)
}
