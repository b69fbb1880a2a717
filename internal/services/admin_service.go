package services

import (
	"context"
	"database/sql"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/auth"
	"replink_backend/internal/logger"
	"replink_backend/internal/models"
)

type adminStore interface {
	Create(ctx context.Context, a *models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type AdminService struct {
	admins    adminStore
	jwtSecret string
}

func NewAdminService(admins adminStore, jwtSecret string) *AdminService {
	return &AdminService{admins: admins, jwtSecret: jwtSecret}
}

// Register creates an admin account and issues a token.
func (s *AdminService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := auth.ValidatePassword(in.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	existing, err := s.admins.GetByEmail(ctx, in.Email)
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

	admin := &models.Admin{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, apperrors.ErrEmailAlreadyExists.WithError(err)
	}

	token, err := auth.GenerateToken(admin.ID, s.jwtSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &AuthResult{Token: token, User: admin}, nil
}

// Login authenticates an admin.
func (s *AdminService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	admin, err := s.admins.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if admin == nil || !auth.CheckPasswordHash(in.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(admin.ID, s.jwtSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &AuthResult{Token: token, User: admin}, nil
}

func (s *AdminService) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrAdminNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return admin, nil
}

// EnsureSeedAdmin creates the configured admin account on boot when it does
// not exist yet. No-op when seeding is not configured.
func (s *AdminService) EnsureSeedAdmin(ctx context.Context, name, emailAddr, password string) error {
	if emailAddr == "" || password == "" {
		return nil
	}

	existing, err := s.admins.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if name == "" {
		name = "Admin"
	}

	admin := &models.Admin{
		Name:         name,
		Email:        emailAddr,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("seed admin created", "email", emailAddr)
	return nil
}
