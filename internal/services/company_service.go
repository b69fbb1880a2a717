package services

import (
	"context"
	"database/sql"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/auth"
	"replink_backend/internal/email"
	"replink_backend/internal/logger"
	"replink_backend/internal/models"

	"golang.org/x/sync/errgroup"
)

type companyStore interface {
	Create(ctx context.Context, c *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByEmail(ctx context.Context, email string) (*models.Company, error)
}

type companyCounter interface {
	CountByCompany(ctx context.Context, companyID string) (int64, error)
}

type CompanyService struct {
	companies    companyStore
	gigs         companyCounter
	applications companyCounter
	reports      companyCounter
	mailer       email.Provider
	jwtSecret    string
}

func NewCompanyService(
	companies companyStore,
	gigs, applications, reports companyCounter,
	mailer email.Provider,
	jwtSecret string,
) *CompanyService {
	return &CompanyService{
		companies:    companies,
		gigs:         gigs,
		applications: applications,
		reports:      reports,
		mailer:       mailer,
		jwtSecret:    jwtSecret,
	}
}

// Register creates a company account and issues a token.
func (s *CompanyService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := auth.ValidatePassword(in.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	existing, err := s.companies.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	company := &models.Company{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, apperrors.ErrEmailAlreadyExists.WithError(err)
	}

	token, err := auth.GenerateToken(company.ID, s.jwtSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	go func() {
		subject, body := email.WelcomeBody(company.Name)
		if err := s.mailer.Send(company.Email, subject, body); err != nil {
			logger.WithError(err).Warn("welcome email failed", "to", company.Email)
		}
	}()

	return &AuthResult{Token: token, User: company}, nil
}

// Login authenticates a company.
func (s *CompanyService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	company, err := s.companies.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if company == nil || !auth.CheckPasswordHash(in.Password, company.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(company.ID, s.jwtSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &AuthResult{Token: token, User: company}, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id string) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// Stats aggregates the company's gig, application and report counts. The
// three counts run concurrently.
func (s *CompanyService) Stats(ctx context.Context, companyID string) (*models.CompanyStats, error) {
	var stats models.CompanyStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.gigs.CountByCompany(ctx, companyID)
		stats.GigsCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.applications.CountByCompany(ctx, companyID)
		stats.ApplicationsCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.reports.CountByCompany(ctx, companyID)
		stats.ReportsCount = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &stats, nil
}
