package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/internal/api"
	"github.com/vfg2006/marketing-warehouse-api/internal/config"
	"github.com/vfg2006/marketing-warehouse-api/internal/scheduler"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/dimensioning"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/facts"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/geomapping"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/reconciling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	dimensionRepo := repository.NewDimensionRepository(pgConn)
	cityDMARepo := repository.NewCityDMARepository(pgConn)
	factRepo := repository.NewFactRepository(pgConn)
	stagingRepo := repository.NewStagingRepository(pgConn)
	metricRepo := repository.NewMetricAvailabilityRepository(pgConn)
	ingestionLogRepo := repository.NewIngestionLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	dimensioner := dimensioning.NewService(dimensionRepo, metricRepo)
	geoMapper := geomapping.NewService(dimensionRepo, cityDMARepo)
	factRecorder := facts.NewService(dimensionRepo, cityDMARepo, factRepo)

	reconciler := reconciling.NewService(
		pgConn,
		repository.NewDimensionRepository,
		repository.NewStagingRepository,
		stagingRepo,
		ingestionLogRepo,
	)

	reconciliationSyncService := scheduler.NewReconciliationSyncService(reconciler, cfg)
	dmaShareAuditService := scheduler.NewDMAShareAuditService(geoMapper, cfg)

	if err := reconciliationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start reconciliation scheduler")
	}
	if err := dmaShareAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start dma share audit scheduler")
	}

	server, err := api.New(
		cfg,
		authenticator,
		dimensioner,
		geoMapper,
		factRecorder,
		reconciler,
		reconciliationSyncService,
		dmaShareAuditService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
