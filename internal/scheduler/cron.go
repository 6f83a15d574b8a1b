package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/adventcare/registry-backend/internal/services"
	"github.com/adventcare/registry-backend/pkg/metrics"
)

// CronScheduler runs periodic background work; currently a single job that
// keeps the registrations-by-status gauges current.
type CronScheduler struct {
	cron             *cron.Cron
	stats            *services.StatsService
	logger           *logrus.Logger
	statsRefreshSpec string
	jobTimeout       time.Duration
	activeJobs       sync.WaitGroup
	shutdownCtx      context.Context
	shutdownCancel   context.CancelFunc
}

func NewCronScheduler(stats *services.StatsService, statsRefreshSpec string, logger *logrus.Logger) *CronScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &CronScheduler{
		cron:             cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		stats:            stats,
		logger:           logger,
		statsRefreshSpec: statsRefreshSpec,
		jobTimeout:       time.Minute,
		shutdownCtx:      ctx,
		shutdownCancel:   cancel,
	}
}

func (s *CronScheduler) Start() {
	_, err := s.cron.AddFunc(s.statsRefreshSpec, s.createJobWrapper("Stats Refresh", func(ctx context.Context) error {
		return s.stats.RefreshMetrics(ctx)
	}))
	if err != nil {
		s.logger.WithError(err).WithField("spec", s.statsRefreshSpec).
			Error("Failed to schedule stats refresh")
	}

	s.cron.Start()
	s.logger.Info("Cron scheduler started")
}

// createJobWrapper wraps a job with context, timeout, logging, metrics and
// panic recovery
func (s *CronScheduler) createJobWrapper(jobName string, jobFunc func(context.Context) error) func() {
	return func() {
		s.activeJobs.Add(1)
		defer s.activeJobs.Done()

		ctx, cancel := context.WithTimeout(s.shutdownCtx, s.jobTimeout)
		defer cancel()

		startTime := time.Now()

		defer func() {
			if r := recover(); r != nil {
				s.logger.WithFields(logrus.Fields{
					"job":   jobName,
					"panic": r,
				}).Error("Job panicked")
				metrics.RecordSchedulerJob(jobName, false, time.Since(startTime))
			}
		}()

		err := jobFunc(ctx)
		duration := time.Since(startTime)

		metrics.RecordSchedulerJob(jobName, err == nil, duration)

		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"job":      jobName,
				"duration": duration.String(),
				"error":    err.Error(),
			}).Error("Job failed")
			return
		}

		s.logger.WithFields(logrus.Fields{
			"job":      jobName,
			"duration": duration.String(),
		}).Debug("Job completed")
	}
}

func (s *CronScheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")

	ctx := s.cron.Stop()
	s.shutdownCancel()

	done := make(chan struct{})
	go func() {
		s.activeJobs.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("All jobs completed, cron scheduler stopped")
	case <-ctx.Done():
		s.logger.Info("Cron scheduler stopped")
	case <-time.After(30 * time.Second):
		s.logger.Warn("Timeout waiting for jobs to complete, forcing shutdown")
	}
}
