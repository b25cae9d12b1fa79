package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/marketing-warehouse-api/internal/api/handler"
	"github.com/vfg2006/marketing-warehouse-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-warehouse-api/internal/config"
	"github.com/vfg2006/marketing-warehouse-api/internal/scheduler"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/dimensioning"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/facts"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/geomapping"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/reconciling"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
	"github.com/vfg2006/marketing-warehouse-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	dimensioner dimensioning.Dimensioner,
	geoMapper geomapping.GeoMapper,
	factRecorder facts.FactRecorder,
	reconciler reconciling.Reconciler,
	reconciliationSyncService *scheduler.ReconciliationSyncService,
	dmaShareAuditService *scheduler.DMAShareAuditService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ReconciliationSyncService: reconciliationSyncService,
		DMAShareAuditService:      dmaShareAuditService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Geo(geoMapper)...),
		router.WithRoutes(handler.Facts(factRecorder)...),
		router.WithRoutes(handler.Staging(reconciler)...),
		router.WithRoutes(handler.Dimensions(dimensioner)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server execution error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("interrupt signal received")
	case <-ctx.Done():
		log.L.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server shutdown error")
		return err
	}

	log.L.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
