package services

import (
	"context"
	"database/sql"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/geo"
	"replink_backend/internal/models"
)

type gigStore interface {
	Create(ctx context.Context, g *models.Gig) error
	GetByID(ctx context.Context, id string) (*models.GigListItem, error)
	ListActive(ctx context.Context, page int) ([]models.GigListItem, int, error)
	ListActiveByLocation(ctx context.Context, lat, lng float64, page int) ([]models.GigListItem, int, error)
	ListByCompany(ctx context.Context, companyID string, page int) ([]models.GigListItem, int, error)
}

type GigService struct {
	gigs     gigStore
	geocoder geo.Geocoder
}

func NewGigService(gigs gigStore, geocoder geo.Geocoder) *GigService {
	return &GigService{gigs: gigs, geocoder: geocoder}
}

type CreateGigInput struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	Target      string  `json:"target" validate:"max=500"`
}

// CreateGig creates an ACTIVE gig for the company. The location name is
// resolved from the coordinates on a best-effort basis.
func (s *GigService) CreateGig(ctx context.Context, companyID string, in CreateGigInput) (*models.Gig, error) {
	gig := &models.Gig{
		CompanyID:   companyID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Location:    s.geocoder.Reverse(ctx, in.Latitude, in.Longitude),
		Target:      in.Target,
		Status:      models.GigStatusActive,
	}
	if err := s.gigs.Create(ctx, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *GigService) GetGig(ctx context.Context, id string) (*models.GigListItem, error) {
	gig, err := s.gigs.GetByID(ctx, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrGigNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

// ListGigs returns a page of ACTIVE gigs. When lat and lng are both set the
// feed is narrowed to a bounding box around that point.
func (s *GigService) ListGigs(ctx context.Context, page int, lat, lng *float64) ([]models.GigListItem, int, error) {
	var (
		items []models.GigListItem
		total int
		err   error
	)
	if lat != nil && lng != nil {
		items, total, err = s.gigs.ListActiveByLocation(ctx, *lat, *lng, page)
	} else {
		items, total, err = s.gigs.ListActive(ctx, page)
	}
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return items, total, nil
}

// ListCompanyGigs returns a page of the company's own gigs, with
// per-gig application counts.
func (s *GigService) ListCompanyGigs(ctx context.Context, companyID string, page int) ([]models.GigListItem, int, error) {
	items, total, err := s.gigs.ListByCompany(ctx, companyID, page)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return items, total, nil
}
