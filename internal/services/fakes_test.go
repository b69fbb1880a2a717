package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"
	"time"

	"replink_backend/internal/models"

	"github.com/google/uuid"
)

// In-memory fakes for the store interfaces. They implement just enough for
// the service tests and fail loudly on anything unexpected.

type fakeReportCounter struct {
	count int
	err   error

	gotRepID string
	gotSince time.Time
}

func (f *fakeReportCounter) CountRecentByRep(_ context.Context, repID string, since time.Time) (int, error) {
	f.gotRepID = repID
	f.gotSince = since
	return f.count, f.err
}

type fakeActivityStore struct {
	mu      sync.Mutex
	created []*models.SuspiciousActivity
	err     error
}

func (f *fakeActivityStore) Create(_ context.Context, sa *models.SuspiciousActivity) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, sa)
	return nil
}

func (f *fakeActivityStore) List(context.Context, int) ([]models.SuspiciousActivityItem, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []models.SuspiciousActivityItem
	for _, sa := range f.created {
		items = append(items, models.SuspiciousActivityItem{SuspiciousActivity: *sa})
	}
	return items, len(items), nil
}

func (f *fakeActivityStore) ListSince(context.Context, time.Time) ([]models.SuspiciousActivityItem, error) {
	items, _, _ := f.List(context.Background(), 1)
	return items, nil
}

type fakeGigGetter struct {
	gigs map[string]*models.GigListItem
}

func (f *fakeGigGetter) GetByID(_ context.Context, id string) (*models.GigListItem, error) {
	gig, ok := f.gigs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return gig, nil
}

func newGigItem(id, companyID string, status models.GigStatus) *models.GigListItem {
	item := &models.GigListItem{}
	item.ID = id
	item.CompanyID = companyID
	item.Status = status
	return item
}

type fakeApplicationStore struct {
	apps      map[string]*models.Application
	decideErr error
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[string]*models.Application)}
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	for _, existing := range f.apps {
		if existing.GigID == app.GigID && existing.RepID == app.RepID {
			return fmt.Errorf("duplicate application")
		}
	}
	f.apps[app.ID] = app
	return nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id string) (*models.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return app, nil
}

func (f *fakeApplicationStore) GetByGigAndRep(_ context.Context, gigID, repID string) (*models.Application, error) {
	for _, app := range f.apps {
		if app.GigID == gigID && app.RepID == repID {
			return app, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationStore) Decide(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if f.decideErr != nil {
		return nil, f.decideErr
	}
	app, ok := f.apps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	app.Status = status
	return app, nil
}

func (f *fakeApplicationStore) ListByGig(context.Context, string, int) ([]models.ApplicationListItem, int, error) {
	return nil, 0, nil
}

func (f *fakeApplicationStore) ListByRep(context.Context, string) ([]models.ApplicationListItem, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListAcceptedByRep(context.Context, string) ([]models.ApplicationListItem, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByCompany(context.Context, string, int) ([]models.ApplicationListItem, int, error) {
	return nil, 0, nil
}

type fakeReportStore struct {
	created []*models.Report
	err     error
}

func (f *fakeReportStore) Create(_ context.Context, report *models.Report) error {
	if f.err != nil {
		return f.err
	}
	report.ID = uuid.New().String()
	f.created = append(f.created, report)
	return nil
}

func (f *fakeReportStore) ListByGig(context.Context, string) ([]models.ReportListItem, error) {
	return nil, nil
}

func (f *fakeReportStore) ListByCompany(context.Context, string) ([]models.ReportListItem, error) {
	return nil, nil
}

func (f *fakeReportStore) ListByGigAndRep(context.Context, string, string) ([]models.ReportListItem, error) {
	return nil, nil
}

type fakeDetector struct {
	dispatched []string
}

func (f *fakeDetector) Dispatch(repID string) {
	f.dispatched = append(f.dispatched, repID)
}

type fakeStorage struct {
	saved map[string][]byte
	err   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) Save(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved[objectPath] = data
	return "https://files.example/" + objectPath, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string // "to|subject"
}

func (f *fakeMailer) Send(to, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to+"|"+subject)
	return nil
}

type fakeRepStore struct {
	reps map[string]*models.Rep
}

func newFakeRepStore() *fakeRepStore {
	return &fakeRepStore{reps: make(map[string]*models.Rep)}
}

func (f *fakeRepStore) Create(_ context.Context, rep *models.Rep) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	f.reps[rep.ID] = rep
	return nil
}

func (f *fakeRepStore) GetByID(_ context.Context, id string) (*models.Rep, error) {
	rep, ok := f.reps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return rep, nil
}

func (f *fakeRepStore) GetByEmail(_ context.Context, email string) (*models.Rep, error) {
	for _, rep := range f.reps {
		if rep.Email == email {
			return rep, nil
		}
	}
	return nil, nil
}

func (f *fakeRepStore) UpdateProfile(_ context.Context, id, name, phoneNo, bio, profilePic string) (*models.Rep, error) {
	rep, ok := f.reps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	rep.Name = name
	rep.PhoneNo = phoneNo
	rep.Bio = bio
	rep.ProfilePic = profilePic
	return rep, nil
}

func (f *fakeRepStore) Pass(_ context.Context, id string) (*models.Rep, error) {
	rep, ok := f.reps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	rep.IsPassed = true
	return rep, nil
}

func (f *fakeRepStore) SetFraud(_ context.Context, id string, isFraud bool) (*models.Rep, error) {
	rep, ok := f.reps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	rep.IsFraud = isFraud
	return rep, nil
}

func (f *fakeRepStore) Rate(_ context.Context, id string, rating float64) (*models.RepRating, error) {
	rep, ok := f.reps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	total := rep.Rating*float64(rep.RatingCount) + rating
	rep.RatingCount++
	rep.Rating = total / float64(rep.RatingCount)
	return &models.RepRating{Rating: rep.Rating, RatingCount: rep.RatingCount}, nil
}

type fakeCompanyStore struct {
	companies map[string]*models.Company
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{companies: make(map[string]*models.Company)}
}

func (f *fakeCompanyStore) Create(_ context.Context, c *models.Company) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id string) (*models.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return company, nil
}

func (f *fakeCompanyStore) GetByEmail(_ context.Context, email string) (*models.Company, error) {
	for _, company := range f.companies {
		if company.Email == email {
			return company, nil
		}
	}
	return nil, nil
}

type fakeCounter struct {
	n   int64
	err error
}

func (f *fakeCounter) CountByCompany(context.Context, string) (int64, error) {
	return f.n, f.err
}
