package utils

import (
	"strings"
	"unicode"
)

// SanitizeEmail lowercases and trims email input.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizePhone trims and strips characters that cannot appear in a phone
// number (digits, plus, dash, space and parentheses survive).
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var result strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || r == '+' || r == '-' || r == ' ' || r == '(' || r == ')' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// DigitsOnly keeps only the decimal digits of s.
func DigitsOnly(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
