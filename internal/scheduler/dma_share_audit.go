package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/marketing-warehouse-api/internal/config"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/geomapping"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

// DMAShareAuditConfig is the audit scheduler's slice of the app config.
type DMAShareAuditConfig struct {
	CronSchedule string
	AuditEnabled bool
}

// DMAShareAuditService periodically sweeps the city to DMA mapping windows
// and reports intervals where a city's shares do not sum to 1.0. Shares are
// advisory, so the audit logs violations instead of blocking writes.
type DMAShareAuditService struct {
	scheduler           *gocron.Scheduler
	config              DMAShareAuditConfig
	geoMapper           geomapping.GeoMapper
	auditRunning        bool
	auditMutex          sync.Mutex
	lastAuditStartedAt  time.Time
	lastAuditFinishedAt time.Time
	lastViolationCount  int
}

func NewDMAShareAuditService(geoMapper geomapping.GeoMapper, appConfig *config.Config) *DMAShareAuditService {
	auditConfig := DMAShareAuditConfig{
		CronSchedule: appConfig.DMAShareAudit.CronSchedule,
		AuditEnabled: appConfig.DMAShareAudit.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": auditConfig.CronSchedule,
		"audit_enabled": auditConfig.AuditEnabled,
	}).Info("dma share audit scheduler configuration loaded")

	return &DMAShareAuditService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    auditConfig,
		geoMapper: geoMapper,
	}
}

func (s *DMAShareAuditService) Start(ctx context.Context) error {
	if !s.config.AuditEnabled {
		log.L.Info("dma share audit disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("starting dma share audit scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAudit(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dma share audit: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping dma share audit scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DMAShareAuditService) runAudit(ctx context.Context) {
	s.auditMutex.Lock()
	if s.auditRunning {
		s.auditMutex.Unlock()
		log.L.Info("dma share audit already in progress, skipping")
		return
	}
	s.auditRunning = true
	s.auditMutex.Unlock()

	startTime := time.Now()
	s.lastAuditStartedAt = startTime

	defer func() {
		s.auditMutex.Lock()
		s.auditRunning = false
		s.auditMutex.Unlock()
	}()

	log.L.Info("starting dma share audit")

	violations, err := s.geoMapper.AuditShares(ctx)
	if err != nil {
		log.L.WithError(err).Error("dma share audit failed")
		return
	}

	for _, v := range violations {
		log.L.WithFields(log.Fields{
			"country_id":   v.CountryID,
			"region_id":    v.RegionID,
			"city_id":      v.CityID,
			"window_start": v.WindowStart.Format("2006-01-02"),
			"window_end":   v.WindowEnd.Format("2006-01-02"),
			"share_sum":    v.ShareSum.String(),
		}).Warn("city dma shares do not sum to 1.0")
	}

	s.lastViolationCount = len(violations)
	s.lastAuditFinishedAt = time.Now()

	log.L.WithFields(log.Fields{
		"violations": len(violations),
		"duration":   time.Since(startTime).String(),
	}).Info("dma share audit completed")
}

// TriggerManualAudit runs the audit outside the schedule.
func (s *DMAShareAuditService) TriggerManualAudit() {
	s.auditMutex.Lock()
	if s.auditRunning {
		s.auditMutex.Unlock()
		log.L.Info("dma share audit already in progress, ignoring manual trigger")
		return
	}
	s.auditMutex.Unlock()

	log.L.Info("starting manual dma share audit")
	go s.runAudit(context.Background())
}

func (s *DMAShareAuditService) GetStatus() map[string]any {
	return map[string]any{
		"audit_enabled":           s.config.AuditEnabled,
		"audit_cron":              s.config.CronSchedule,
		"last_audit_started_at":   s.lastAuditStartedAt,
		"last_audit_completed_at": s.lastAuditFinishedAt,
		"last_violation_count":    s.lastViolationCount,
	}
}
