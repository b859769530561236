package user

import (
	"regexp"
	"unicode/utf8"

	domainUser "reservation-api/internal/domain/user"
	appErrors "reservation-api/pkg/errors"
	"reservation-api/pkg/utils"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?(\d[\s\-]?)?(\(?\d{2,3}\)?[\s\-]?)?\d{3,4}[\s\-]?\d{3,4}$`)
)

const (
	minNameLength  = 3
	maxNameLength  = 50
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// CandidateUser holds the fields checked by the uniqueness validator.
type CandidateUser struct {
	Name  string
	Email string
	Phone string
}

// ValidationIssue describes the first rule a candidate failed.
type ValidationIssue struct {
	Kind    string
	Message string
}

func (v *ValidationIssue) Error() string {
	return v.Message
}

func issue(kind string, err error) *ValidationIssue {
	return &ValidationIssue{Kind: kind, Message: err.Error()}
}

// ValidateFormat runs the presence and format rules in order, stopping at
// the first failure. It is the format half of ValidateUserData and is also
// used on registration, where uniqueness is checked against the relational
// store instead of the file list.
func ValidateFormat(c CandidateUser) *ValidationIssue {
	if c.Name == "" || c.Email == "" || c.Phone == "" {
		return issue("MissingFields", appErrors.ErrMissingFields)
	}

	if n := utf8.RuneCountInString(c.Name); n < minNameLength || n > maxNameLength {
		return issue("InvalidName", appErrors.ErrInvalidName)
	}

	if !emailRegex.MatchString(c.Email) {
		return issue("InvalidEmail", appErrors.ErrInvalidEmail)
	}

	digits := utils.DigitsOnly(c.Phone)
	if !phoneRegex.MatchString(c.Phone) || len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return issue("InvalidPhone", appErrors.ErrInvalidPhone)
	}

	return nil
}

// ValidateUserData checks a candidate against format rules and then against
// the full existing user list for email and phone uniqueness. excludeID
// skips the record being updated. Purely advisory; callers decide
// persistence.
func ValidateUserData(c CandidateUser, existing []domainUser.FileUser, excludeID *int64) *ValidationIssue {
	if iss := ValidateFormat(c); iss != nil {
		return iss
	}

	for _, u := range existing {
		if excludeID != nil && u.NumericID == *excludeID {
			continue
		}
		if u.Email == c.Email {
			return issue("DuplicateEmail", appErrors.ErrDuplicateEmail)
		}
	}

	for _, u := range existing {
		if excludeID != nil && u.NumericID == *excludeID {
			continue
		}
		if u.Phone == c.Phone {
			return issue("DuplicatePhone", appErrors.ErrDuplicatePhone)
		}
	}

	return nil
}
