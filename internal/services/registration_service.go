package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adventcare/registry-backend/internal/models"
	"github.com/adventcare/registry-backend/internal/repositories"
	apperrors "github.com/adventcare/registry-backend/pkg/errors"
	"github.com/adventcare/registry-backend/pkg/metrics"
)

// Pagination bounds for list queries
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// RegistrationService implements the registration lifecycle: intake with
// duplicate detection, admin status transitions with audit logging, and
// paginated status queries.
type RegistrationService struct {
	registrationRepo repositories.RegistrationRepository
	adminLogRepo     repositories.AdminLogRepository
	logger           *logrus.Logger
	now              func() time.Time
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	adminLogRepo repositories.AdminLogRepository,
	logger *logrus.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		adminLogRepo:     adminLogRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Register validates an intake payload, rejects duplicates of active
// registrations, and stores a fresh pending record. An email whose only
// prior rows are rejected may register again; the new submission becomes
// a new row and the rejected history stays untouched.
func (s *RegistrationService) Register(ctx context.Context, req *models.RegistrationRequest) (*models.Registration, error) {
	if errs := ValidateRegistration(req); len(errs) > 0 {
		metrics.RegistrationsRejectedInputTotal.WithLabelValues("validation").Inc()
		return nil, models.NewValidationError(errs)
	}

	email := NormalizeEmail(req.Email)

	existing, err := s.registrationRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		return nil, storeError("Failed to check for existing registration", err)
	}
	if existing != nil {
		metrics.RegistrationsRejectedInputTotal.WithLabelValues("duplicate").Inc()
		return nil, models.NewDuplicateEmailError(existing.Status)
	}

	registration := &models.Registration{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Hospital:    strings.TrimSpace(req.Hospital),
		Role:        strings.TrimSpace(req.Role),
		Specialty:   req.Specialty,
		Bio:         req.Bio,
		SubmittedAt: s.now().UTC(),
		Status:      models.StatusPending,
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		// Two submissions can race past the duplicate check; the partial
		// unique index on active emails turns the loser into a conflict.
		if apperrors.IsConflict(err) {
			metrics.RegistrationsRejectedInputTotal.WithLabelValues("duplicate").Inc()
			return nil, models.NewDuplicateEmailError(models.StatusPending)
		}
		return nil, storeError("Failed to save registration", err)
	}

	metrics.RegistrationsSubmittedTotal.Inc()

	s.logger.WithFields(logrus.Fields{
		"id":       registration.ID,
		"email":    registration.Email,
		"hospital": registration.Hospital,
	}).Info("New registration submitted")

	return registration, nil
}

// SetStatus transitions a registration to approved or rejected. The
// identifier may be a registration id or an email; the id wins when both
// resolve. An audit entry is written after a successful transition, and a
// failure to write it is logged and swallowed.
func (s *RegistrationService) SetStatus(ctx context.Context, req *models.StatusUpdateRequest) (*models.Registration, error) {
	if req.ID == "" && req.Email == "" {
		return nil, models.NewMissingIdentifierError()
	}
	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		return nil, models.NewInvalidStatusError(req.Status)
	}

	target, err := s.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}

	updated, err := s.registrationRepo.UpdateStatus(ctx, target.ID, req.Status, req.Notes, s.now().UTC())
	if err != nil {
		return nil, storeError("Failed to update registration status", err)
	}
	if updated == nil {
		return nil, models.NewNotFoundError("Registration not found")
	}

	metrics.RecordStatusTransition(req.Status)
	s.writeAuditLog(ctx, updated.ID, req.Notes)

	s.logger.WithFields(logrus.Fields{
		"id":     updated.ID,
		"status": updated.Status,
	}).Info("Registration status updated")

	return updated, nil
}

// ListByStatus returns one page of registrations in the given status.
// Only pending and approved are exposed; rejected rows are history.
func (s *RegistrationService) ListByStatus(ctx context.Context, status string, limit, offset int) (*models.RegistrationPage, error) {
	if status != models.StatusPending && status != models.StatusApproved {
		return nil, models.NewInvalidStatusError(status)
	}
	if limit < 1 || limit > MaxPageLimit {
		return nil, models.NewInvalidLimitError()
	}
	if offset < 0 {
		return nil, models.NewInvalidOffsetError()
	}

	total, err := s.registrationRepo.CountByStatus(ctx, status)
	if err != nil {
		return nil, storeError("Failed to count registrations", err)
	}

	items, err := s.registrationRepo.GetByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, storeError("Failed to fetch registrations", err)
	}
	if items == nil {
		items = []*models.Registration{}
	}

	return &models.RegistrationPage{
		Items: items,
		Pagination: models.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+limit < total,
		},
	}, nil
}

// resolveTarget locates the registration a status update addresses. When
// only an email is given and it holds several rows (possible after a
// reject-then-reregister cycle), the earliest submitted row wins.
func (s *RegistrationService) resolveTarget(ctx context.Context, req *models.StatusUpdateRequest) (*models.Registration, error) {
	if req.ID != "" {
		target, err := s.registrationRepo.GetByID(ctx, req.ID)
		if err != nil {
			return nil, storeError("Failed to look up registration", err)
		}
		if target != nil {
			return target, nil
		}
		// The original resolved a single identifier against both columns,
		// so an id miss still falls through to the email lookup.
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.ID
	}

	target, err := s.registrationRepo.GetEarliestByEmail(ctx, NormalizeEmail(identifier))
	if err != nil {
		return nil, storeError("Failed to look up registration", err)
	}
	if target == nil {
		return nil, models.NewNotFoundError("Registration not found").
			WithDetails("No registration found with the provided identifier")
	}

	return target, nil
}

// writeAuditLog appends a moderation audit entry. Failures must never
// surface to the caller: the status write already happened.
func (s *RegistrationService) writeAuditLog(ctx context.Context, targetID, notes string) {
	entry := &models.AdminLogEntry{
		LogID:     uuid.New().String(),
		Action:    models.ActionUpdateStatus,
		TargetID:  targetID,
		Actor:     models.ActorAdminKey,
		CreatedAt: s.now().UTC(),
		Notes:     notes,
	}

	if err := s.adminLogRepo.Create(ctx, entry); err != nil {
		metrics.AuditLogFailuresTotal.Inc()
		s.logger.WithError(err).WithField("target_id", targetID).
			Warn("Failed to write admin log entry")
	}
}

// storeError translates repository failures into API errors: credential
// problems and resource exhaustion keep their own codes, the rest is a
// generic internal failure.
func storeError(message string, err error) *models.AppError {
	switch {
	case apperrors.IsAuth(err):
		return models.NewAuthError(err)
	case apperrors.IsTransient(err):
		return models.NewRateLimitError(err)
	default:
		return models.NewInternalError(message, err)
	}
}
