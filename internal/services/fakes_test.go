package services

import (
	"context"
	"sort"
	"time"

	"github.com/adventcare/registry-backend/internal/models"
)

// fakeRegistrationRepo is an in-memory RegistrationRepository used to
// exercise the service without a database.
type fakeRegistrationRepo struct {
	records   []*models.Registration
	createErr error
	lookupErr error
	updateErr error
	writes    int
}

func (f *fakeRegistrationRepo) Create(_ context.Context, registration *models.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.writes++
	clone := *registration
	f.records = append(f.records, &clone)
	return nil
}

func (f *fakeRegistrationRepo) GetByID(_ context.Context, id string) (*models.Registration, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, r := range f.records {
		if r.ID == id {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrationRepo) GetActiveByEmail(_ context.Context, email string) (*models.Registration, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, r := range f.records {
		if r.Email == email && (r.Status == models.StatusPending || r.Status == models.StatusApproved) {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrationRepo) GetEarliestByEmail(_ context.Context, email string) (*models.Registration, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var matches []*models.Registration
	for _, r := range f.records {
		if r.Email == email {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].SubmittedAt.Before(matches[j].SubmittedAt)
	})
	clone := *matches[0]
	return &clone, nil
}

func (f *fakeRegistrationRepo) GetByStatus(_ context.Context, status string, limit, offset int) ([]*models.Registration, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var filtered []*models.Registration
	for _, r := range f.records {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (f *fakeRegistrationRepo) CountByStatus(_ context.Context, status string) (int, error) {
	if f.lookupErr != nil {
		return 0, f.lookupErr
	}
	count := 0
	for _, r := range f.records {
		if r.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrationRepo) CountAllByStatus(_ context.Context) (*models.StatusCounts, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	counts := &models.StatusCounts{Total: len(f.records)}
	for _, r := range f.records {
		switch r.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusApproved:
			counts.Approved++
		case models.StatusRejected:
			counts.Rejected++
		}
	}
	return counts, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(_ context.Context, id, status, notes string, at time.Time) (*models.Registration, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for _, r := range f.records {
		if r.ID == id {
			f.writes++
			r.Status = status
			r.Notes = notes
			updatedAt := at
			r.StatusUpdatedAt = &updatedAt
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

// fakeAdminLogRepo records audit entries and can be forced to fail.
type fakeAdminLogRepo struct {
	entries []*models.AdminLogEntry
	err     error
}

func (f *fakeAdminLogRepo) Create(_ context.Context, entry *models.AdminLogEntry) error {
	if f.err != nil {
		return f.err
	}
	clone := *entry
	f.entries = append(f.entries, &clone)
	return nil
}
