package services

import (
	"strings"
	"unicode"
)

// PasswordViolation identifies the specific password rule that failed.
type PasswordViolation int

const (
	PasswordTooShort PasswordViolation = iota
	PasswordNoUpper
	PasswordNoLower
	PasswordNoDigit
	PasswordNoSymbol
)

// passwordSymbols is the accepted punctuation set.
const passwordSymbols = "!@#$%^&*()_+"

const minPasswordLength = 8

// Message returns the user-facing description of the violation.
func (v PasswordViolation) Message() string {
	switch v {
	case PasswordTooShort:
		return "Password must be at least 8 characters long"
	case PasswordNoUpper:
		return "Password must contain at least one uppercase letter"
	case PasswordNoLower:
		return "Password must contain at least one lowercase letter"
	case PasswordNoDigit:
		return "Password must contain at least one digit"
	case PasswordNoSymbol:
		return "Password must contain at least one symbol"
	default:
		return "Password is invalid"
	}
}

// ValidatePassword checks the registration password policy and returns every
// violated rule. An empty result means the password is acceptable.
func ValidatePassword(password string) []PasswordViolation {
	var violations []PasswordViolation

	if len(password) < minPasswordLength {
		violations = append(violations, PasswordTooShort)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		violations = append(violations, PasswordNoUpper)
	}
	if !hasLower {
		violations = append(violations, PasswordNoLower)
	}
	if !hasDigit {
		violations = append(violations, PasswordNoDigit)
	}
	if !hasSymbol {
		violations = append(violations, PasswordNoSymbol)
	}

	return violations
}
