package repositories

import (
	"context"
	"database/sql"

	"github.com/adventcare/registry-backend/internal/models"
)

// AdminLogRepository defines the interface for the append-only audit trail
type AdminLogRepository interface {
	Create(ctx context.Context, entry *models.AdminLogEntry) error
}

type adminLogRepository struct {
	db *sql.DB
}

// NewAdminLogRepository creates a new admin log repository
func NewAdminLogRepository(db *sql.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Create(ctx context.Context, entry *models.AdminLogEntry) error {
	query := `
		INSERT INTO admin_logs (log_id, action, target_id, actor, created_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.LogID, entry.Action, entry.TargetID, entry.Actor,
		entry.CreatedAt, entry.Notes,
	)
	if err != nil {
		return classifyStoreError(err, "create admin log entry")
	}

	return nil
}
