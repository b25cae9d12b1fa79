package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/marketing-warehouse-api/internal/config"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/reconciling"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// ReconciliationSyncConfig is the scheduler's slice of the app config.
type ReconciliationSyncConfig struct {
	CronSchedule string
	BatchLimit   int
	SyncEnabled  bool
}

// ReconciliationSyncService periodically resolves pending staging rows into
// dimension references.
type ReconciliationSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReconciliationSyncConfig
	reconciler          reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReconciliationSyncService(reconciler reconciling.Reconciler, appConfig *config.Config) *ReconciliationSyncService {
	syncConfig := ReconciliationSyncConfig{
		CronSchedule: appConfig.ReconciliationSync.CronSchedule,
		BatchLimit:   appConfig.ReconciliationSync.BatchLimit,
		SyncEnabled:  appConfig.ReconciliationSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"batch_limit":   syncConfig.BatchLimit,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("reconciliation scheduler configuration loaded")

	return &ReconciliationSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		reconciler: reconciler,
	}
}

// Start schedules the reconciliation pass and stops the scheduler when the
// context is canceled.
func (s *ReconciliationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("reconciliation sync disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("starting reconciliation scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReconciliation(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reconciliation sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping reconciliation scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReconciliationSyncService) runReconciliation(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("reconciliation already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	log.L.Info("starting scheduled reconciliation pass")

	summary, err := s.reconciler.ReconcileBatch(ctx, s.config.BatchLimit)
	if err != nil {
		log.L.WithError(err).Error("scheduled reconciliation pass failed")
		return
	}

	log.L.WithFields(log.Fields{
		"run_id":    summary.RunID,
		"processed": summary.Processed,
		"resolved":  summary.Resolved,
		"partial":   summary.Partial,
		"duration":  time.Since(startTime).String(),
	}).Info("scheduled reconciliation pass completed")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync kicks off a reconciliation pass outside the schedule.
func (s *ReconciliationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("reconciliation already in progress, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("starting manual reconciliation pass")
	go s.runReconciliation(context.Background())
}

// GetStatus reports the scheduler's current state.
func (s *ReconciliationSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_batch_limit":       s.config.BatchLimit,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
