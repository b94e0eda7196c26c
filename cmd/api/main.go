package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"appealsapi/docs"
	"appealsapi/internal/cache"
	"appealsapi/internal/config"
	"appealsapi/internal/database"
	"appealsapi/internal/database/migration"
	handlers "appealsapi/internal/http/handler"
	"appealsapi/internal/http/middleware"
	"appealsapi/internal/ingest"
	applog "appealsapi/internal/logger"
	"appealsapi/internal/metrics"
	"appealsapi/internal/notify"
	"appealsapi/internal/otel"
	"appealsapi/internal/repository/postgres"
	"appealsapi/internal/schema"
	"appealsapi/internal/service"
	"appealsapi/internal/storage"
	"appealsapi/internal/transition"
)

// @title Appeals Integration API
// @version 1.0
// @description Ingests appellant cases, LPA questionnaires and representations from the front office.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := applog.New(cfg.Env, cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Blob store the upstream uploader writes document content into
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, folder cache disabled", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	notifier := notify.New(cfg.NATS, logger)
	defer notifier.Close()

	validator, err := schema.NewValidator()
	if err != nil {
		logger.Fatal("failed to compile submission schemas", zap.Error(err))
	}

	appMetrics, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("failed to register http metrics", zap.Error(err))
	}

	// Repositories and services
	caseRepo := postgres.NewCasePostgres(db)
	folderRepo := cache.NewFolderCache(postgres.NewFolderPostgres(db), redisClient, cfg.Redis.FolderTTL, logger)
	docRepo := postgres.NewDocumentPostgres(db)
	repRepo := postgres.NewRepresentationPostgres(db)
	guard := transition.NewGuard(transition.DefaultTable())

	submissionSvc := service.NewSubmissionService(service.SubmissionDeps{
		Validator:       validator,
		Assembler:       ingest.NewAssembler(ingest.NewVersionBuilder(cfg.Ingest.BlobContainer)),
		Guard:           guard,
		Cases:           caseRepo,
		Folders:         folderRepo,
		Documents:       docRepo,
		Representations: repRepo,
		Metrics:         appMetrics,
		Logger:          logger,
	})
	repSvc := service.NewRepresentationService(caseRepo, repRepo, guard, notifier, appMetrics, logger)
	docSvc := service.NewDocumentService(objStore, docRepo, cfg.MinIO.PresignTTL)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, submissionSvc, repSvc, docSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("http shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", zap.Error(err))
	}
}
