package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/adventcare/registry-backend/internal/models"
	apperrors "github.com/adventcare/registry-backend/pkg/errors"
)

// RegistrationRepository defines the interface for registration data access
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByID(ctx context.Context, id string) (*models.Registration, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.Registration, error)
	GetEarliestByEmail(ctx context.Context, email string) (*models.Registration, error)
	GetByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Registration, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountAllByStatus(ctx context.Context) (*models.StatusCounts, error)
	UpdateStatus(ctx context.Context, id, status, notes string, at time.Time) (*models.Registration, error)
}

type registrationRepository struct {
	db *sql.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

const registrationColumns = `id, name, email, hospital, role, specialty, bio, submitted_at, status, status_updated_at, notes`

func (r *registrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	query := `
		INSERT INTO registrations (id, name, email, hospital, role, specialty, bio, submitted_at, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		registration.ID, registration.Name, registration.Email,
		registration.Hospital, registration.Role, registration.Specialty,
		registration.Bio, registration.SubmittedAt, registration.Status,
		registration.Notes,
	)
	if err != nil {
		return classifyStoreError(err, "create registration")
	}

	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "get registration by id")
}

// GetActiveByEmail returns the pending or approved registration holding
// the given normalized email, if any. Rejected rows do not block re-use.
func (r *registrationRepository) GetActiveByEmail(ctx context.Context, email string) (*models.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE email = $1 AND status IN ($2, $3)
		LIMIT 1
	`
	return r.scanOne(
		r.db.QueryRowContext(ctx, query, email, models.StatusPending, models.StatusApproved),
		"get active registration by email",
	)
}

// GetEarliestByEmail returns the earliest submitted registration for an
// email regardless of status. After a reject-then-reregister cycle the
// same email can hold multiple rows; the earliest one wins, matching the
// original first-row-in-file-order resolution.
func (r *registrationRepository) GetEarliestByEmail(ctx context.Context, email string) (*models.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE email = $1
		ORDER BY submitted_at ASC
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email), "get registration by email")
}

func (r *registrationRepository) GetByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE status = $1
		ORDER BY submitted_at ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, classifyStoreError(err, "query registrations by status")
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

func (r *registrationRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, classifyStoreError(err, "count registrations by status")
	}

	return count, nil
}

func (r *registrationRepository) CountAllByStatus(ctx context.Context) (*models.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*)
		FROM registrations
	`

	counts := &models.StatusCounts{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&counts.Pending, &counts.Approved, &counts.Rejected, &counts.Total,
	)
	if err != nil {
		return nil, classifyStoreError(err, "count registrations")
	}

	return counts, nil
}

// UpdateStatus mutates exactly the addressed row. Only status,
// status_updated_at and notes change; everything else is preserved.
func (r *registrationRepository) UpdateStatus(ctx context.Context, id, status, notes string, at time.Time) (*models.Registration, error) {
	query := `
		UPDATE registrations
		SET status = $2, status_updated_at = $3, notes = $4
		WHERE id = $1
		RETURNING ` + registrationColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query, id, status, at, notes), "update registration status")
}

func (r *registrationRepository) scanOne(row *sql.Row, op string) (*models.Registration, error) {
	registration := &models.Registration{}
	err := row.Scan(
		&registration.ID, &registration.Name, &registration.Email,
		&registration.Hospital, &registration.Role, &registration.Specialty,
		&registration.Bio, &registration.SubmittedAt, &registration.Status,
		&registration.StatusUpdatedAt, &registration.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classifyStoreError(err, op)
	}

	return registration, nil
}

func (r *registrationRepository) scanRegistrations(rows *sql.Rows) ([]*models.Registration, error) {
	var registrations []*models.Registration

	for rows.Next() {
		registration := &models.Registration{}
		err := rows.Scan(
			&registration.ID, &registration.Name, &registration.Email,
			&registration.Hospital, &registration.Role, &registration.Specialty,
			&registration.Bio, &registration.SubmittedAt, &registration.Status,
			&registration.StatusUpdatedAt, &registration.Notes,
		)
		if err != nil {
			return nil, classifyStoreError(err, "scan registration")
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStoreError(err, "rows iteration")
	}

	return registrations, nil
}

// classifyStoreError maps driver failures onto the store error taxonomy:
// credential problems, retryable resource exhaustion, unique-index
// conflicts, and everything else.
func classifyStoreError(err error, op string) error {
	var pqErr *pq.Error
	if apperrors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505": // unique_violation
			return apperrors.Wrap(apperrors.ErrConflict, op)
		case pqErr.Code.Class() == "28": // invalid authorization / password
			return apperrors.Wrapf(apperrors.ErrAuth, "%s: %s", op, pqErr.Message)
		case pqErr.Code.Class() == "53": // insufficient resources
			return apperrors.Wrapf(apperrors.ErrTransient, "%s: %s", op, pqErr.Message)
		}
	}
	return apperrors.Wrapf(apperrors.ErrStore, "%s: %v", op, err)
}
