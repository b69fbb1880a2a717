package services

import (
	"context"
	"database/sql"
	"errors"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/models"
	"replink_backend/internal/repositories"
)

type applicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	GetByGigAndRep(ctx context.Context, gigID, repID string) (*models.Application, error)
	Decide(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
	ListByGig(ctx context.Context, gigID string, page int) ([]models.ApplicationListItem, int, error)
	ListByRep(ctx context.Context, repID string) ([]models.ApplicationListItem, error)
	ListAcceptedByRep(ctx context.Context, repID string) ([]models.ApplicationListItem, error)
	ListByCompany(ctx context.Context, companyID string, page int) ([]models.ApplicationListItem, int, error)
}

type gigGetter interface {
	GetByID(ctx context.Context, id string) (*models.GigListItem, error)
}

type ApplicationService struct {
	applications applicationStore
	gigs         gigGetter
}

func NewApplicationService(applications applicationStore, gigs gigGetter) *ApplicationService {
	return &ApplicationService{applications: applications, gigs: gigs}
}

// Submit files a PENDING application. A rep can apply to a gig at most once,
// and only while the gig is ACTIVE.
func (s *ApplicationService) Submit(ctx context.Context, repID, gigID string) (*models.Application, error) {
	gig, err := s.gigs.GetByID(ctx, gigID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrGigNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if gig.Status != models.GigStatusActive {
		return nil, apperrors.ErrGigNotActive
	}

	existing, err := s.applications.GetByGigAndRep(ctx, gigID, repID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrApplicationExists
	}

	app := &models.Application{
		GigID:  gigID,
		RepID:  repID,
		Status: models.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		// The unique index closes the check-then-insert race.
		return nil, apperrors.ErrApplicationExists.WithError(err)
	}
	return app, nil
}

// Decide moves a PENDING application to ACCEPTED or REJECTED on behalf of
// the company that owns the gig. Accepting also deactivates the gig; if the
// gig was already claimed the decision fails with a conflict.
func (s *ApplicationService) Decide(ctx context.Context, companyID, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidDecision(status) {
		return nil, apperrors.ErrInvalidAppStatus
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrApplicationNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.authorizeGigOwner(ctx, companyID, app.GigID); err != nil {
		return nil, err
	}

	decided, err := s.applications.Decide(ctx, applicationID, status)
	switch {
	case errors.Is(err, repositories.ErrAlreadyDecided):
		return nil, apperrors.ErrApplicationDecided
	case errors.Is(err, repositories.ErrGigTaken):
		return nil, apperrors.ErrGigAlreadyAssigned
	case err != nil:
		return nil, apperrors.InternalError(err)
	}
	return decided, nil
}

// GetForRep returns the rep's own application for a gig.
func (s *ApplicationService) GetForRep(ctx context.Context, repID, gigID string) (*models.Application, error) {
	app, err := s.applications.GetByGigAndRep(ctx, gigID, repID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	return app, nil
}

// ListForGig returns a page of a gig's applications for its owning company,
// PENDING first.
func (s *ApplicationService) ListForGig(ctx context.Context, companyID, gigID string, page int) ([]models.ApplicationListItem, int, error) {
	if err := s.authorizeGigOwner(ctx, companyID, gigID); err != nil {
		return nil, 0, err
	}

	items, total, err := s.applications.ListByGig(ctx, gigID, page)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return items, total, nil
}

// ListForRep returns all of the rep's applications with their gigs.
func (s *ApplicationService) ListForRep(ctx context.Context, repID string) ([]models.ApplicationListItem, error) {
	items, err := s.applications.ListByRep(ctx, repID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

// ListAcceptedForRep returns the rep's ACCEPTED applications, which are the
// gigs the rep is working.
func (s *ApplicationService) ListAcceptedForRep(ctx context.Context, repID string) ([]models.ApplicationListItem, error) {
	items, err := s.applications.ListAcceptedByRep(ctx, repID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

// ListForCompany returns a page of applications across all of the company's
// gigs.
func (s *ApplicationService) ListForCompany(ctx context.Context, companyID string, page int) ([]models.ApplicationListItem, int, error) {
	items, total, err := s.applications.ListByCompany(ctx, companyID, page)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return items, total, nil
}

func (s *ApplicationService) authorizeGigOwner(ctx context.Context, companyID, gigID string) error {
	gig, err := s.gigs.GetByID(ctx, gigID)
	if err == sql.ErrNoRows {
		return apperrors.ErrGigNotFound
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	if gig.CompanyID != companyID {
		return apperrors.ErrForbidden
	}
	return nil
}
