package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"replink_backend/internal/config"
	"replink_backend/internal/database"
	"replink_backend/internal/email"
	"replink_backend/internal/geo"
	"replink_backend/internal/handlers"
	"replink_backend/internal/logger"
	"replink_backend/internal/middleware"
	"replink_backend/internal/repositories"
	"replink_backend/internal/routes"
	"replink_backend/internal/services"
	"replink_backend/internal/storage"
	"replink_backend/internal/validator"
	"replink_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// App wires every layer together and owns the server lifecycle.
type App struct {
	cfg    *config.Config
	router *gin.Engine
	worker *workers.ActivityWorker
}

// New builds the application: database, external clients, repositories,
// services, handlers and routes.
func New() (*App, error) {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	_, sqlDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	// External clients.
	var geoOpts []geo.Option
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		geoOpts = append(geoOpts, geo.WithCache(rdb, time.Duration(cfg.Geo.CacheTTL)*time.Hour))
	}
	geocoder := geo.NewClient(cfg.Geo.BaseURL, geoOpts...)

	files, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, err
	}
	mailer := email.NewProvider(cfg)

	// Repositories.
	companyRepo := repositories.NewCompanyRepository(sqlDB)
	repRepo := repositories.NewRepRepository(sqlDB)
	adminRepo := repositories.NewAdminRepository(sqlDB)
	gigRepo := repositories.NewGigRepository(sqlDB)
	appRepo := repositories.NewApplicationRepository(sqlDB)
	reportRepo := repositories.NewReportRepository(sqlDB)
	activityRepo := repositories.NewSuspiciousActivityRepository(sqlDB)

	// Services.
	activitySvc := services.NewActivityService(reportRepo, activityRepo)
	companySvc := services.NewCompanyService(companyRepo, gigRepo, appRepo, reportRepo, mailer, cfg.JWT.Secret)
	repSvc := services.NewRepService(repRepo, files, mailer, cfg.JWT.Secret)
	adminSvc := services.NewAdminService(adminRepo, cfg.JWT.Secret)
	gigSvc := services.NewGigService(gigRepo, geocoder)
	appSvc := services.NewApplicationService(appRepo, gigRepo)
	reportSvc := services.NewReportService(reportRepo, appRepo, gigRepo, files, geocoder, activitySvc)

	if err := adminSvc.EnsureSeedAdmin(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.WithError(err).Warn("seed admin failed")
	}

	// HTTP layer.
	base := handlers.NewBaseHandler(validator.New())
	authMw := middleware.NewAuthMiddleware(companyRepo, repRepo, adminRepo, cfg.JWT.Secret)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	if cfg.Storage.Type == "local" {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	routes.Register(router, &routes.Handlers{
		Auth:         authMw,
		Companies:    handlers.NewCompanyHandler(base, companySvc),
		Reps:         handlers.NewRepHandler(base, repSvc),
		Gigs:         handlers.NewGigHandler(base, gigSvc),
		Applications: handlers.NewApplicationHandler(base, appSvc),
		Reports:      handlers.NewReportHandler(base, reportSvc),
		Admin:        handlers.NewAdminHandler(base, adminSvc, activitySvc),
	})

	return &App{
		cfg:    cfg,
		router: router,
		worker: workers.NewActivityWorker(activitySvc, mailer, cfg.Email.AdminEmail),
	}, nil
}

// Run starts the digest worker and the HTTP server, then blocks until an
// interrupt triggers a graceful shutdown.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.worker.Start(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", a.cfg.Server.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
