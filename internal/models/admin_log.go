package models

import "time"

// Admin log actions
const (
	ActionUpdateStatus = "update_status"
)

// ActorAdminKey marks that the action was performed with the shared admin
// key. There are no individual admin identities in this system.
const ActorAdminKey = "admin_key_used"

// AdminLogEntry is one row of the append-only moderation audit trail.
// Writing an entry must never fail the operation that triggered it.
type AdminLogEntry struct {
	LogID     string    `json:"logId" db:"log_id"`
	Action    string    `json:"action" db:"action"`
	TargetID  string    `json:"targetId" db:"target_id"`
	Actor     string    `json:"actor" db:"actor"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Notes     string    `json:"notes" db:"notes"`
}
