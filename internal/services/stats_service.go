package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/adventcare/registry-backend/internal/models"
	"github.com/adventcare/registry-backend/internal/repositories"
	"github.com/adventcare/registry-backend/pkg/metrics"
)

// StatsService exposes per-status registration counts for the admin
// dashboard and keeps the Prometheus gauges current.
type StatsService struct {
	registrationRepo repositories.RegistrationRepository
	logger           *logrus.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(registrationRepo repositories.RegistrationRepository, logger *logrus.Logger) *StatsService {
	return &StatsService{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// GetStatusCounts returns current registration totals per status.
func (s *StatsService) GetStatusCounts(ctx context.Context) (*models.StatusCounts, error) {
	counts, err := s.registrationRepo.CountAllByStatus(ctx)
	if err != nil {
		return nil, storeError("Failed to count registrations", err)
	}
	return counts, nil
}

// RefreshMetrics recomputes the by-status gauges. Run periodically by the
// scheduler so the moderation backlog is visible without an admin request.
func (s *StatsService) RefreshMetrics(ctx context.Context) error {
	counts, err := s.registrationRepo.CountAllByStatus(ctx)
	if err != nil {
		return err
	}

	metrics.UpdateStatusCounts(counts.Pending, counts.Approved, counts.Rejected)

	s.logger.WithFields(logrus.Fields{
		"pending":  counts.Pending,
		"approved": counts.Approved,
		"rejected": counts.Rejected,
	}).Debug("Registration status gauges refreshed")

	return nil
}
