package middleware

import (
	"context"
	"strings"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/auth"
	"replink_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID  = "userId"
	CtxCompany = "company"
	CtxRep     = "rep"
	CtxAdmin   = "admin"
)

type companyLoader interface {
	GetByID(ctx context.Context, id string) (*models.Company, error)
}

type repLoader interface {
	GetByID(ctx context.Context, id string) (*models.Rep, error)
}

type adminLoader interface {
	GetByID(ctx context.Context, id string) (*models.Admin, error)
}

// AuthMiddleware guards routes per principal type. Each variant parses the
// bearer token and resolves the row, so revoked or flagged accounts are
// rejected even with a still-valid token.
type AuthMiddleware struct {
	companies companyLoader
	reps      repLoader
	admins    adminLoader
	jwtSecret string
}

func NewAuthMiddleware(companies companyLoader, reps repLoader, admins adminLoader, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		companies: companies,
		reps:      reps,
		admins:    admins,
		jwtSecret: jwtSecret,
	}
}

func (m *AuthMiddleware) userID(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), m.jwtSecret)
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}

func abortUnauthorized(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, gin.H{"error": err})
}

// CompanyAuth allows only authenticated companies.
func (m *AuthMiddleware) CompanyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := m.userID(c)
		if !ok {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		company, err := m.companies.GetByID(c.Request.Context(), id)
		if err != nil || company == nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(CtxUserID, company.ID)
		c.Set(CtxCompany, company)
		c.Next()
	}
}

// RepAuth allows only authenticated reps. Reps flagged as fraudulent are
// rejected here, which invalidates their outstanding tokens.
func (m *AuthMiddleware) RepAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := m.userID(c)
		if !ok {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		rep, err := m.reps.GetByID(c.Request.Context(), id)
		if err != nil || rep == nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}
		if rep.IsFraud {
			abortUnauthorized(c, apperrors.ErrAccountFraud)
			return
		}

		c.Set(CtxUserID, rep.ID)
		c.Set(CtxRep, rep)
		c.Next()
	}
}

// AnyAuth allows any authenticated principal. The ID is resolved against
// reps, companies and admins in that order; fraud-flagged reps are still
// rejected.
func (m *AuthMiddleware) AnyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := m.userID(c)
		if !ok {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		ctx := c.Request.Context()

		if rep, err := m.reps.GetByID(ctx, id); err == nil && rep != nil {
			if rep.IsFraud {
				abortUnauthorized(c, apperrors.ErrAccountFraud)
				return
			}
			c.Set(CtxUserID, rep.ID)
			c.Set(CtxRep, rep)
			c.Next()
			return
		}
		if company, err := m.companies.GetByID(ctx, id); err == nil && company != nil {
			c.Set(CtxUserID, company.ID)
			c.Set(CtxCompany, company)
			c.Next()
			return
		}
		if admin, err := m.admins.GetByID(ctx, id); err == nil && admin != nil {
			c.Set(CtxUserID, admin.ID)
			c.Set(CtxAdmin, admin)
			c.Next()
			return
		}

		abortUnauthorized(c, apperrors.ErrInvalidToken)
	}
}

// AdminAuth allows only authenticated admins.
func (m *AuthMiddleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := m.userID(c)
		if !ok {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		admin, err := m.admins.GetByID(c.Request.Context(), id)
		if err != nil || admin == nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(CtxUserID, admin.ID)
		c.Set(CtxAdmin, admin)
		c.Next()
	}
}
