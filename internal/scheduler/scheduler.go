// internal/scheduler/scheduler.go
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Ayupanchal18/Renters-sub005/internal/config"
	"github.com/Ayupanchal18/Renters-sub005/internal/services"
)

// Scheduler runs the recurring background jobs: the nightly market snapshot
// aggregation and the sitemap rebuild.
type Scheduler struct {
	cron      *cron.Cron
	admin     *services.AdminService
	sitemap   *services.SitemapService
	cfg       config.SchedulerConfig
	isRunning bool
}

func New(admin *services.AdminService, sitemap *services.SitemapService, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		admin:   admin,
		sitemap: sitemap,
		cfg:     cfg,
	}
}

func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		logrus.Info("Scheduler disabled in configuration")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.MarketSnapshotAt, s.runMarketSnapshot); err != nil {
		return fmt.Errorf("invalid market snapshot cron %q: %w", s.cfg.MarketSnapshotAt, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.SitemapRefreshAt, s.runSitemapRefresh); err != nil {
		return fmt.Errorf("invalid sitemap cron %q: %w", s.cfg.SitemapRefreshAt, err)
	}

	s.cron.Start()
	s.isRunning = true
	logrus.WithFields(logrus.Fields{
		"market_snapshot": s.cfg.MarketSnapshotAt,
		"sitemap_refresh": s.cfg.SitemapRefreshAt,
	}).Info("Scheduler started")

	return nil
}

func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		logrus.Info("Scheduler stopped")
	}
}

// RunSnapshotNow triggers the market snapshot job outside its schedule.
func (s *Scheduler) RunSnapshotNow() error {
	return s.admin.CollectMarketSnapshot(time.Now().UTC())
}

func (s *Scheduler) runMarketSnapshot() {
	start := time.Now()
	if err := s.admin.CollectMarketSnapshot(time.Now().UTC()); err != nil {
		logrus.WithError(err).Error("Market snapshot job failed")
		return
	}
	logrus.WithField("duration", time.Since(start).String()).Info("Market snapshot job completed")
}

func (s *Scheduler) runSitemapRefresh() {
	if _, err := s.sitemap.Refresh(); err != nil {
		logrus.WithError(err).Error("Sitemap refresh job failed")
		return
	}
	logrus.Info("Sitemap refreshed")
}
