package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/hr-disciplinary-api/api/swagger"
	"github.com/noah-isme/hr-disciplinary-api/internal/handler"
	internalmiddleware "github.com/noah-isme/hr-disciplinary-api/internal/middleware"
	"github.com/noah-isme/hr-disciplinary-api/internal/notify"
	"github.com/noah-isme/hr-disciplinary-api/internal/repository"
	"github.com/noah-isme/hr-disciplinary-api/internal/service"
	"github.com/noah-isme/hr-disciplinary-api/pkg/cache"
	"github.com/noah-isme/hr-disciplinary-api/pkg/config"
	"github.com/noah-isme/hr-disciplinary-api/pkg/database"
	"github.com/noah-isme/hr-disciplinary-api/pkg/export"
	"github.com/noah-isme/hr-disciplinary-api/pkg/i18n"
	"github.com/noah-isme/hr-disciplinary-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/hr-disciplinary-api/pkg/middleware/cors"
	localemiddleware "github.com/noah-isme/hr-disciplinary-api/pkg/middleware/locale"
	reqidmiddleware "github.com/noah-isme/hr-disciplinary-api/pkg/middleware/requestid"
	"github.com/noah-isme/hr-disciplinary-api/pkg/storage"
)

// @title HR Disciplinary API
// @version 1.0.0
// @description Disciplinary cases, sanctions, appeals and employee exit workflows
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	var (
		redisClient  *redis.Client
		offenseCache *cache.Store
	)
	if cfg.Offenses.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, offense cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close() //nolint:errcheck
			offenseCache = cache.NewStore(redisClient, "hr:offenses")
		}
	}

	catalog, err := i18n.NewCatalog(cfg.Locale)
	if err != nil {
		logr.Fatal("failed to load message catalog", zap.Error(err))
	}

	letterStorage, err := storage.NewLocalStorage(cfg.Letters.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare letter storage", zap.Error(err))
	}
	documentStorage, err := storage.NewLocalStorage(cfg.Documents.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare document storage", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := notify.NewDispatcher(notify.LogSender(logr), notify.Config{
		Workers:    cfg.Notifications.Workers,
		BufferSize: cfg.Notifications.BufferSize,
		MaxRetries: cfg.Notifications.MaxRetries,
		RetryDelay: cfg.Notifications.RetryDelay,
		Logger:     logr,
	})
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	caseRepo := repository.NewCaseRepository(db)
	actionRepo := repository.NewActionRepository(db)
	appealRepo := repository.NewAppealRepository(db)
	investigationRepo := repository.NewInvestigationRepository(db)
	offenseRepo := repository.NewOffenseRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	resignationRepo := repository.NewResignationRepository(db)
	exitInterviewRepo := repository.NewExitInterviewRepository(db)

	deps := service.WorkflowDeps{
		Cases:     caseRepo,
		Offenses:  offenseRepo,
		Employees: employeeRepo,
		Store:     repository.NewStore(db),
		Metrics:   metricsSvc,
		Notifier:  dispatcher,
		Validator: validate,
		Logger:    logr,
	}

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		Expiry: cfg.JWT.Expiration,
	})
	caseSvc := service.NewCaseService(caseRepo, letterStorage, deps)
	actionSvc := service.NewActionService(actionRepo, deps)
	appealSvc := service.NewAppealService(appealRepo, actionRepo, deps)
	investigationSvc := service.NewInvestigationService(investigationRepo, deps)
	auditSvc := service.NewAuditService(caseRepo, eventRepo, catalog, logr)
	letterSvc := service.NewLetterService(
		export.NewLetterRenderer(),
		letterStorage,
		storage.NewSignedURLSigner(cfg.Letters.SignedURLSecret, cfg.Letters.SignedURLTTL),
		service.LetterConfig{
			Letterhead: export.Letterhead{
				Name:    cfg.Organization.Name,
				Address: cfg.Organization.Address,
				Phone:   cfg.Organization.Phone,
				Email:   cfg.Organization.Email,
			},
			DownloadPath: cfg.APIPrefix + "/letters/download",
		},
		deps,
	)
	offenseSvc := service.NewOffenseService(
		offenseRepo,
		offenseCache,
		service.OffenseCacheConfig{Enabled: offenseCache != nil, TTL: cfg.Offenses.CacheTTL},
		metricsSvc,
		validate,
		logr,
	)
	documentSvc := service.NewDocumentService(documentRepo, employeeRepo, documentStorage, service.DocumentConfig{
		MaxFileSize:       cfg.Documents.MaxFileSizeBytes,
		ExpiryWarningDays: cfg.Documents.ExpiryWarningDays,
		DownloadPrefix:    cfg.APIPrefix + "/documents",
	}, validate, logr)
	resignationSvc := service.NewResignationService(resignationRepo, exitInterviewRepo, employeeRepo, validate, logr)
	exitInterviewSvc := service.NewExitInterviewService(exitInterviewRepo, resignationRepo, employeeRepo, validate, logr)

	checks := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	metricsHandler := handler.NewMetricsHandler(metricsSvc, checks)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(localemiddleware.Middleware())
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(internalmiddleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r.Group(cfg.APIPrefix), handler.Handlers{
		Offenses:       handler.NewOffenseHandler(offenseSvc),
		Cases:          handler.NewCaseHandler(caseSvc, auditSvc),
		Actions:        handler.NewActionHandler(actionSvc),
		Appeals:        handler.NewAppealHandler(appealSvc),
		Investigations: handler.NewInvestigationHandler(investigationSvc),
		Letters:        handler.NewLetterHandler(letterSvc, logr),
		Documents:      handler.NewDocumentHandler(documentSvc, logr),
		Resignations:   handler.NewResignationHandler(resignationSvc),
		ExitInterviews: handler.NewExitInterviewHandler(exitInterviewSvc),
	}, internalmiddleware.JWT(authSvc), logr)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
