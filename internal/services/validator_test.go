package services

import (
	"testing"

	"github.com/adventcare/registry-backend/internal/models"
)

func TestValidateRegistration(t *testing.T) {
	valid := models.RegistrationRequest{
		Name:     "Dr. Amara Okafor",
		Email:    "amara.okafor@example.org",
		Hospital: "Hillside Medical Center",
		Role:     "Doctor",
	}

	tests := []struct {
		name       string
		mutate     func(r *models.RegistrationRequest)
		wantErrors []string
	}{
		{
			name:       "valid payload",
			mutate:     func(r *models.RegistrationRequest) {},
			wantErrors: nil,
		},
		{
			name:       "missing name",
			mutate:     func(r *models.RegistrationRequest) { r.Name = "   " },
			wantErrors: []string{"Name is required"},
		},
		{
			name:       "missing email",
			mutate:     func(r *models.RegistrationRequest) { r.Email = "" },
			wantErrors: []string{"Email is required"},
		},
		{
			name:       "malformed email",
			mutate:     func(r *models.RegistrationRequest) { r.Email = "not-an-email" },
			wantErrors: []string{"Invalid email format"},
		},
		{
			name:       "email without tld",
			mutate:     func(r *models.RegistrationRequest) { r.Email = "someone@host" },
			wantErrors: []string{"Invalid email format"},
		},
		{
			name:       "email with spaces",
			mutate:     func(r *models.RegistrationRequest) { r.Email = "some one@host.com" },
			wantErrors: []string{"Invalid email format"},
		},
		{
			name:       "email with surrounding whitespace is accepted",
			mutate:     func(r *models.RegistrationRequest) { r.Email = "  amara@example.org  " },
			wantErrors: nil,
		},
		{
			name:       "missing hospital",
			mutate:     func(r *models.RegistrationRequest) { r.Hospital = "" },
			wantErrors: []string{"Hospital is required"},
		},
		{
			name:       "missing role",
			mutate:     func(r *models.RegistrationRequest) { r.Role = "\t" },
			wantErrors: []string{"Role is required"},
		},
		{
			name: "everything missing",
			mutate: func(r *models.RegistrationRequest) {
				*r = models.RegistrationRequest{}
			},
			wantErrors: []string{
				"Name is required",
				"Email is required",
				"Hospital is required",
				"Role is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			errs := ValidateRegistration(&req)

			if len(errs) != len(tt.wantErrors) {
				t.Fatalf("Expected %d errors, got %d: %v", len(tt.wantErrors), len(errs), errs)
			}
			for i, want := range tt.wantErrors {
				if errs[i] != want {
					t.Errorf("Expected error %q at index %d, got %q", want, i, errs[i])
				}
			}
		})
	}
}

func TestValidateRegistrationDoesNotMutateInput(t *testing.T) {
	req := models.RegistrationRequest{
		Name:     "  Dr. Lee  ",
		Email:    " LEE@Example.COM ",
		Hospital: "General",
		Role:     "Nurse",
	}
	before := req

	ValidateRegistration(&req)

	if req != before {
		t.Errorf("Expected input to be unchanged, got %+v", req)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A@B.com ", "a@b.com"},
		{"  MiXeD@CaSe.Org", "mixed@case.org"},
		{"plain@example.org", "plain@example.org"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
