package services

import (
	"context"
	"database/sql"
	"io"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/auth"
	"replink_backend/internal/email"
	"replink_backend/internal/logger"
	"replink_backend/internal/models"
	"replink_backend/internal/storage"
)

type repStore interface {
	Create(ctx context.Context, rep *models.Rep) error
	GetByID(ctx context.Context, id string) (*models.Rep, error)
	GetByEmail(ctx context.Context, email string) (*models.Rep, error)
	UpdateProfile(ctx context.Context, id, name, phoneNo, bio, profilePic string) (*models.Rep, error)
	Pass(ctx context.Context, id string) (*models.Rep, error)
	SetFraud(ctx context.Context, id string, isFraud bool) (*models.Rep, error)
	Rate(ctx context.Context, id string, rating float64) (*models.RepRating, error)
}

type RepService struct {
	reps      repStore
	files     storage.Storage
	mailer    email.Provider
	jwtSecret string
}

func NewRepService(reps repStore, files storage.Storage, mailer email.Provider, jwtSecret string) *RepService {
	return &RepService{
		reps:      reps,
		files:     files,
		mailer:    mailer,
		jwtSecret: jwtSecret,
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register creates a rep account and issues a token. A welcome email goes
// out in the background.
func (s *RepService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := auth.ValidatePassword(in.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	existing, err := s.reps.GetByEmail(ctx, in.Email)
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

	rep := &models.Rep{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.reps.Create(ctx, rep); err != nil {
		return nil, apperrors.ErrEmailAlreadyExists.WithError(err)
	}

	token, err := auth.GenerateToken(rep.ID, s.jwtSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcome(rep.Email, rep.Name)
	return &AuthResult{Token: token, User: rep}, nil
}

// Login authenticates a rep. Accounts flagged as fraudulent are locked out
// regardless of credentials being correct.
func (s *RepService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	rep, err := s.reps.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if rep == nil || !auth.CheckPasswordHash(in.Password, rep.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if rep.IsFraud {
		return nil, apperrors.ErrAccountFraud
	}

	token, err := auth.GenerateToken(rep.ID, s.jwtSecret)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &AuthResult{Token: token, User: rep}, nil
}

func (s *RepService) GetByID(ctx context.Context, id string) (*models.Rep, error) {
	rep, err := s.reps.GetByID(ctx, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrRepNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rep, nil
}

type UpdateProfileInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	PhoneNo string `json:"phoneNo" validate:"max=20"`
	Bio     string `json:"bio" validate:"max=1000"`

	// Optional new profile picture.
	AvatarName        string
	AvatarContentType string
	Avatar            io.Reader
}

// UpdateProfile overwrites the rep's profile fields, uploading the new
// avatar first when one is attached.
func (s *RepService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*models.Rep, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profilePic := current.ProfilePic
	if in.Avatar != nil {
		path := storage.ProfilePicPath(id, in.AvatarName)
		profilePic, err = s.files.Save(ctx, path, in.AvatarContentType, in.Avatar)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	rep, err := s.reps.UpdateProfile(ctx, id, in.Name, in.PhoneNo, in.Bio, profilePic)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rep, nil
}

// Pass marks the rep as having passed vetting.
func (s *RepService) Pass(ctx context.Context, id string) (*models.Rep, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	rep, err := s.reps.Pass(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rep, nil
}

type RateInput struct {
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

// Rate folds one rating into the rep's running average and returns the new
// aggregate.
func (s *RepService) Rate(ctx context.Context, id string, in RateInput) (*models.RepRating, error) {
	rating, err := s.reps.Rate(ctx, id, in.Rating)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrRepNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rating, nil
}

// SetFraud flips the rep's fraud flag. Flagged reps cannot log in and their
// existing tokens stop working at the middleware.
func (s *RepService) SetFraud(ctx context.Context, id string, isFraud bool) (*models.Rep, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	rep, err := s.reps.SetFraud(ctx, id, isFraud)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rep, nil
}

func (s *RepService) sendWelcome(to, name string) {
	go func() {
		subject, body := email.WelcomeBody(name)
		if err := s.mailer.Send(to, subject, body); err != nil {
			logger.WithError(err).Warn("welcome email failed", "to", to)
		}
	}()
}
