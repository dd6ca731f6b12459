package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"studyhub/internal/config"
	handlers "studyhub/internal/http/handler"
	"studyhub/internal/http/middleware"
	"studyhub/internal/otel"
	"studyhub/internal/record"
	"studyhub/internal/repository"
	"studyhub/internal/service"
	"studyhub/internal/storage"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	// Pick the record store backend once for the whole process.
	store, backend, err := record.Open(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open record store")
	}
	defer store.Close()
	log.Info().Str("backend", backend).Msg("record store ready")

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	// Initialize repositories and services
	semesterRepo := repository.NewSemesters(store, log)
	subjectRepo := repository.NewSubjects(store, log)
	resourceRepo := repository.NewResources(store, log)

	// Seed the default semesters before serving requests. A seeding
	// fault is logged, not fatal; the API still serves whatever exists.
	seeder := repository.NewSemesterSeeder(semesterRepo, log)
	if _, err := seeder.EnsureDefaults(ctx); err != nil {
		log.Error().Err(err).Msg("default semester seeding failed")
	}

	svcs := handlers.Services{
		Semesters: service.NewSemesterService(semesterRepo),
		Subjects:  service.NewSubjectService(subjectRepo),
		Resources: service.NewResourceService(objStore, resourceRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, store, backend, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
