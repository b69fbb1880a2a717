package services

import (
	"context"
	"database/sql"
	"io"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/geo"
	"replink_backend/internal/models"
	"replink_backend/internal/storage"
)

type reportStore interface {
	Create(ctx context.Context, report *models.Report) error
	ListByGig(ctx context.Context, gigID string) ([]models.ReportListItem, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.ReportListItem, error)
	ListByGigAndRep(ctx context.Context, gigID, repID string) ([]models.ReportListItem, error)
}

type applicationGetter interface {
	GetByGigAndRep(ctx context.Context, gigID, repID string) (*models.Application, error)
}

type detector interface {
	Dispatch(repID string)
}

type ReportService struct {
	reports      reportStore
	applications applicationGetter
	gigs         gigGetter
	files        storage.Storage
	geocoder     geo.Geocoder
	detector     detector
}

func NewReportService(
	reports reportStore,
	applications applicationGetter,
	gigs gigGetter,
	files storage.Storage,
	geocoder geo.Geocoder,
	detector detector,
) *ReportService {
	return &ReportService{
		reports:      reports,
		applications: applications,
		gigs:         gigs,
		files:        files,
		geocoder:     geocoder,
		detector:     detector,
	}
}

type CreateReportInput struct {
	GigID     string
	Reason    string
	Latitude  float64
	Longitude float64

	// Evidence image. Every report must carry one.
	ImageName        string
	ImageContentType string
	Image            io.Reader
}

// Create files a field report against a gig. Only the rep holding the
// ACCEPTED application for that gig may report on it, and an evidence image
// is mandatory. After the report is stored, the suspicious-activity detector
// is kicked off in the background.
func (s *ReportService) Create(ctx context.Context, repID string, in CreateReportInput) (*models.Report, error) {
	if len(in.Reason) < 50 {
		return nil, apperrors.NewBadRequestError("Reason must be at least 50 characters")
	}
	if in.Image == nil {
		return nil, apperrors.NewBadRequestError("At least one image is required")
	}

	gig, err := s.gigs.GetByID(ctx, in.GigID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrGigNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	app, err := s.applications.GetByGigAndRep(ctx, in.GigID, repID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if app == nil || app.Status != models.ApplicationStatusAccepted {
		return nil, apperrors.ErrNoAcceptedApplication
	}

	path := storage.ReportImagePath(repID, in.GigID, in.ImageName)
	imageURL, err := s.files.Save(ctx, path, in.ImageContentType, in.Image)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	report := &models.Report{
		GigID:     in.GigID,
		RepID:     repID,
		CompanyID: gig.CompanyID,
		Reason:    in.Reason,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Location:  s.geocoder.Reverse(ctx, in.Latitude, in.Longitude),
		ImageURL:  imageURL,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.detector.Dispatch(repID)
	return report, nil
}

// ListForGig returns a gig's reports for its owning company.
func (s *ReportService) ListForGig(ctx context.Context, companyID, gigID string) ([]models.ReportListItem, error) {
	gig, err := s.gigs.GetByID(ctx, gigID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrGigNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if gig.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}

	items, err := s.reports.ListByGig(ctx, gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

// ListForRepGig returns the rep's own reports for a gig.
func (s *ReportService) ListForRepGig(ctx context.Context, repID, gigID string) ([]models.ReportListItem, error) {
	items, err := s.reports.ListByGigAndRep(ctx, gigID, repID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

// ListForCompany returns the company's latest reports across all its gigs.
func (s *ReportService) ListForCompany(ctx context.Context, companyID string) ([]models.ReportListItem, error) {
	items, err := s.reports.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}
