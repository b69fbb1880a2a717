package routes

import (
	"net/http"

	"replink_backend/internal/handlers"
	"replink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Auth         *middleware.AuthMiddleware
	Companies    *handlers.CompanyHandler
	Reps         *handlers.RepHandler
	Gigs         *handlers.GigHandler
	Applications *handlers.ApplicationHandler
	Reports      *handlers.ReportHandler
	Admin        *handlers.AdminHandler
}

// Register mounts the full API under /api/v1.
func Register(r *gin.Engine, h *Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// Public auth endpoints.
	v1.POST("/companies/register", h.Companies.Register)
	v1.POST("/companies/login", h.Companies.Login)
	v1.POST("/reps/register", h.Reps.Register)
	v1.POST("/reps/login", h.Reps.Login)
	v1.POST("/admin/create", h.Admin.Create)
	v1.POST("/admin/login", h.Admin.Login)

	// Vetting hook for back-office tooling.
	v1.POST("/reps/pass", h.Reps.Pass)

	// Rep-facing routes.
	rep := v1.Group("", h.Auth.RepAuth())
	{
		rep.GET("/reps/me", h.Reps.Me)
		rep.PATCH("/reps/me/update", h.Reps.Update)
		rep.GET("/gigs", h.Gigs.List)
		rep.POST("/application", h.Applications.Submit)
		rep.GET("/application/:gigId", h.Applications.GetOwn)
		rep.GET("/rep/application", h.Applications.RepList)
		rep.GET("/rep/application/accepted", h.Applications.RepAccepted)
		rep.POST("/gigs/reports", h.Reports.Create)
		rep.GET("/rep/gigs/:gigId/reports", h.Reports.RepGigReports)
	}

	// Company-facing routes.
	company := v1.Group("", h.Auth.CompanyAuth())
	{
		company.GET("/company/stats", h.Companies.Stats)
		company.GET("/reps/:id", h.Reps.GetByID)
		company.POST("/reps/rate", h.Reps.Rate)
		company.POST("/gigs", h.Gigs.Create)
		company.GET("/company/gigs", h.Gigs.CompanyGigs)
		company.PUT("/application/update", h.Applications.Decide)
		company.GET("/company/application", h.Applications.CompanyList)
		company.GET("/company/application/gig/:id", h.Applications.CompanyListByGig)
		company.GET("/company/reports", h.Reports.CompanyReports)
		company.GET("/gigs/:id/reports", h.Reports.GigReports)
	}

	// Shared detail route: reps browse, companies review their own.
	v1.GET("/gigs/:id", h.Auth.AnyAuth(), h.Gigs.Get)

	// Admin routes.
	v1.POST("/reps/fraud", h.Auth.AdminAuth(), h.Reps.Fraud)
	v1.GET("/admin/activity", h.Auth.AdminAuth(), h.Admin.Activity)
}
