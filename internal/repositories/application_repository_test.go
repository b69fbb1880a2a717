package repositories

import (
	"context"
	"testing"

	"replink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	company := seedCompany(t, db, "acme")
	rep := seedRep(t, db, "alice")
	gig := seedGig(t, db, company.ID, models.GigStatusActive)

	app := &models.Application{GigID: gig.ID, RepID: rep.ID}
	require.NoError(t, repo.Create(ctx, app))
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	got, err := repo.GetByGigAndRep(ctx, gig.ID, rep.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, app.ID, got.ID)

	missing, err := repo.GetByGigAndRep(ctx, gig.ID, "no-such-rep")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApplicationRepository_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	company := seedCompany(t, db, "acme")
	rep := seedRep(t, db, "alice")
	gig := seedGig(t, db, company.ID, models.GigStatusActive)

	require.NoError(t, repo.Create(ctx, &models.Application{GigID: gig.ID, RepID: rep.ID}))
	err := repo.Create(ctx, &models.Application{GigID: gig.ID, RepID: rep.ID})
	assert.Error(t, err, "unique index must reject the second application")
}

func TestApplicationRepository_DecideAcceptDeactivatesGig(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	company := seedCompany(t, db, "acme")
	rep := seedRep(t, db, "alice")
	gig := seedGig(t, db, company.ID, models.GigStatusActive)

	app := &models.Application{GigID: gig.ID, RepID: rep.ID}
	require.NoError(t, repo.Create(ctx, app))

	decided, err := repo.Decide(ctx, app.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, decided.Status)

	got, err := NewGigRepository(db).GetByID(ctx, gig.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GigStatusInactive, got.Status)
}

func TestApplicationRepository_SecondAcceptConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	company := seedCompany(t, db, "acme")
	alice := seedRep(t, db, "alice")
	bob := seedRep(t, db, "bob")
	gig := seedGig(t, db, company.ID, models.GigStatusActive)

	first := &models.Application{GigID: gig.ID, RepID: alice.ID}
	second := &models.Application{GigID: gig.ID, RepID: bob.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	_, err := repo.Decide(ctx, first.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)

	_, err = repo.Decide(ctx, second.ID, models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, ErrGigTaken)

	// The losing application must still be PENDING after the rollback.
	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, got.Status)
}

func TestApplicationRepository_DecisionIsFinal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	company := seedCompany(t, db, "acme")
	rep := seedRep(t, db, "alice")
	gig := seedGig(t, db, company.ID, models.GigStatusActive)

	app := &models.Application{GigID: gig.ID, RepID: rep.ID}
	require.NoError(t, repo.Create(ctx, app))

	_, err := repo.Decide(ctx, app.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	_, err = repo.Decide(ctx, app.ID, models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestApplicationRepository_ListByGigPendingFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	company := seedCompany(t, db, "acme")
	gig := seedGig(t, db, company.ID, models.GigStatusActive)

	reps := []*models.Rep{
		seedRep(t, db, "alice"),
		seedRep(t, db, "bob"),
		seedRep(t, db, "carol"),
	}
	apps := make([]*models.Application, len(reps))
	for i, rep := range reps {
		apps[i] = &models.Application{GigID: gig.ID, RepID: rep.ID}
		require.NoError(t, repo.Create(ctx, apps[i]))
	}

	_, err := repo.Decide(ctx, apps[0].ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	items, total, err := repo.ListByGig(ctx, gig.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)

	assert.Equal(t, models.ApplicationStatusPending, items[0].Status)
	assert.Equal(t, models.ApplicationStatusPending, items[1].Status)
	assert.Equal(t, models.ApplicationStatusRejected, items[2].Status)
	require.NotNil(t, items[0].RepItem)
	assert.NotEmpty(t, items[0].RepItem.Name)
}

func TestApplicationRepository_ListByRep(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	company := seedCompany(t, db, "acme")
	rep := seedRep(t, db, "alice")
	gigA := seedGig(t, db, company.ID, models.GigStatusActive)
	gigB := seedGig(t, db, company.ID, models.GigStatusActive)

	appA := &models.Application{GigID: gigA.ID, RepID: rep.ID}
	appB := &models.Application{GigID: gigB.ID, RepID: rep.ID}
	require.NoError(t, repo.Create(ctx, appA))
	require.NoError(t, repo.Create(ctx, appB))

	_, err := repo.Decide(ctx, appB.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)

	all, err := repo.ListByRep(ctx, rep.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	require.NotNil(t, all[0].GigItem)

	accepted, err := repo.ListAcceptedByRep(ctx, rep.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, appB.ID, accepted[0].ID)
}
