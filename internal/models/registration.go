package models

import "time"

// Registration statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Registration represents one healthcare professional's submitted profile
// plus its moderation state. Rows are append-only: a rejected email may
// register again as a new row, the old one is kept for history.
type Registration struct {
	ID              string     `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Email           string     `json:"email" db:"email"`
	Hospital        string     `json:"hospital" db:"hospital"`
	Role            string     `json:"role" db:"role"`
	Specialty       string     `json:"specialty" db:"specialty"`
	Bio             string     `json:"bio" db:"bio"`
	SubmittedAt     time.Time  `json:"submittedAt" db:"submitted_at"`
	Status          string     `json:"status" db:"status"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt" db:"status_updated_at"`
	Notes           string     `json:"notes" db:"notes"`
}

// RegistrationRequest is the intake payload. Validation is done by
// services.ValidateRegistration so the caller gets every problem at once,
// not just the first binding failure.
type RegistrationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Hospital  string `json:"hospital"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
}

// StatusUpdateRequest is the admin moderation payload. Exactly one of
// ID or Email must be set; ID wins when both are present.
type StatusUpdateRequest struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// Pagination describes a slice of a filtered result set.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// RegistrationPage is a paginated list of registrations.
type RegistrationPage struct {
	Items      []*Registration
	Pagination Pagination
}

// StatusCounts holds per-status registration totals for the admin dashboard.
type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}
