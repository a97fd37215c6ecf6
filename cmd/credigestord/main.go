package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgkafka "github.com/hscHeric/credigestor-api/pkg/kafka"
	"github.com/hscHeric/credigestor-api/pkg/observability"
	pkgpostgres "github.com/hscHeric/credigestor-api/pkg/postgres"

	"github.com/hscHeric/credigestor-api/internal/application/usecase"
	"github.com/hscHeric/credigestor-api/internal/infrastructure/config"
	"github.com/hscHeric/credigestor-api/internal/infrastructure/kafka"
	pgRepo "github.com/hscHeric/credigestor-api/internal/infrastructure/postgres"
	grpcPresentation "github.com/hscHeric/credigestor-api/internal/presentation/grpc"
	"github.com/hscHeric/credigestor-api/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting credigestor-api",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without them", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort meter shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	saleRepo := pgRepo.NewSaleRepo(pool)
	noteRepo := pgRepo.NewNoteRepo(pool)
	customerRepo := pgRepo.NewCustomerRepo(pool)
	configRepo := pgRepo.NewSystemConfigRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Wire use cases.
	createSaleUC := usecase.NewCreateSaleUseCase(saleRepo, customerRepo, publisher)
	getSaleUC := usecase.NewGetSaleUseCase(saleRepo, noteRepo)
	updateSaleUC := usecase.NewUpdateSaleUseCase(saleRepo, noteRepo, customerRepo, publisher)
	deleteSaleUC := usecase.NewDeleteSaleUseCase(saleRepo, publisher)
	registerPaymentUC := usecase.NewRegisterPaymentUseCase(noteRepo, publisher)
	listPaymentsUC := usecase.NewListPaymentsUseCase(noteRepo)
	previewAccrualUC := usecase.NewPreviewAccrualUseCase(noteRepo, configRepo)
	listNotesUC := usecase.NewListNotesUseCase(noteRepo)
	getConfigUC := usecase.NewGetSystemConfigUseCase(configRepo)
	updateConfigUC := usecase.NewUpdateSystemConfigUseCase(configRepo, publisher)

	// gRPC server.
	handler := grpcPresentation.NewCredigestorHandler(
		createSaleUC, getSaleUC, updateSaleUC, deleteSaleUC,
		registerPaymentUC, listPaymentsUC, previewAccrualUC, listNotesUC,
		getConfigUC, updateConfigUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessChecker{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
	})
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credigestor-api stopped")
}
