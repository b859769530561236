package user

import (
	"strings"
	"testing"

	domainUser "reservation-api/internal/domain/user"
)

func existingUsers() []domainUser.FileUser {
	return []domainUser.FileUser{
		{NumericID: 1, Name: "Ana Maria", Email: "ana@example.com", Phone: "+1 555-1234"},
		{NumericID: 2, Name: "Bruno Diaz", Email: "bruno@example.com", Phone: "+34 600 111 222"},
	}
}

func TestValidateUserDataOrder(t *testing.T) {
	tests := []struct {
		name      string
		candidate CandidateUser
		wantKind  string
	}{
		{"missing name", CandidateUser{Name: "", Email: "x@y.com", Phone: "5551234"}, "MissingFields"},
		{"missing email", CandidateUser{Name: "Carla", Email: "", Phone: "5551234"}, "MissingFields"},
		{"missing phone", CandidateUser{Name: "Carla", Email: "x@y.com", Phone: ""}, "MissingFields"},
		{"name too short", CandidateUser{Name: "Al", Email: "x@y.com", Phone: "5551234"}, "InvalidName"},
		{"name too long", CandidateUser{Name: strings.Repeat("a", 51), Email: "x@y.com", Phone: "5551234"}, "InvalidName"},
		{"bad email", CandidateUser{Name: "Carla", Email: "not-an-email", Phone: "5551234"}, "InvalidEmail"},
		{"email without tld", CandidateUser{Name: "Carla", Email: "x@y.c", Phone: "5551234"}, "InvalidEmail"},
		{"phone too short", CandidateUser{Name: "Carla", Email: "x@y.com", Phone: "123 456"}, "InvalidPhone"},
		{"phone with letters", CandidateUser{Name: "Carla", Email: "x@y.com", Phone: "555-CALL"}, "InvalidPhone"},
		{"duplicate email", CandidateUser{Name: "Carla", Email: "ana@example.com", Phone: "5559999"}, "DuplicateEmail"},
		{"duplicate phone", CandidateUser{Name: "Carla", Email: "carla@example.com", Phone: "+1 555-1234"}, "DuplicatePhone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iss := ValidateUserData(tt.candidate, existingUsers(), nil)
			if iss == nil {
				t.Fatalf("expected %s, got nil", tt.wantKind)
			}
			if iss.Kind != tt.wantKind {
				t.Fatalf("expected kind %s, got %s (%s)", tt.wantKind, iss.Kind, iss.Message)
			}
		})
	}
}

func TestValidateUserDataValid(t *testing.T) {
	c := CandidateUser{Name: "Carla", Email: "carla@example.com", Phone: "+1 (555) 987-6543"}
	if iss := ValidateUserData(c, existingUsers(), nil); iss != nil {
		t.Fatalf("expected valid candidate, got %s: %s", iss.Kind, iss.Message)
	}
}

func TestValidateUserDataExcludesOwnRecord(t *testing.T) {
	// Updating user 1 with its own email and phone must not count as a
	// duplicate.
	id := int64(1)
	c := CandidateUser{Name: "Ana Maria", Email: "ana@example.com", Phone: "+1 555-1234"}
	if iss := ValidateUserData(c, existingUsers(), &id); iss != nil {
		t.Fatalf("expected exclusion of own record, got %s: %s", iss.Kind, iss.Message)
	}

	// But another user's email is still a duplicate.
	c.Email = "bruno@example.com"
	iss := ValidateUserData(c, existingUsers(), &id)
	if iss == nil || iss.Kind != "DuplicateEmail" {
		t.Fatalf("expected DuplicateEmail, got %v", iss)
	}
}

func TestValidateFormatDigitBounds(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"seven digits", "555 1234", true},
		{"six digits", "55 1234", false},
		{"grouping outside pattern", "+355 (12) 345-6789", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iss := ValidateFormat(CandidateUser{Name: "Carla", Email: "x@y.com", Phone: tt.phone})
			if tt.valid && iss != nil {
				t.Fatalf("expected valid phone %q, got %s", tt.phone, iss.Message)
			}
			if !tt.valid && iss == nil {
				t.Fatalf("expected invalid phone %q", tt.phone)
			}
		})
	}
}
