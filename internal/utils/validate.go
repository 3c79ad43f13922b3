package utils

import (
	"regexp"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailValid reports whether the string looks like an email address
func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}

// IsPasswordValid enforces the password complexity policy:
// at least 8 characters with an upper-case letter, a lower-case letter and a digit.
func IsPasswordValid(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// IsFullNameValid checks the allowed full name length (2-100 characters)
func IsFullNameValid(fullName string) bool {
	n := len([]rune(fullName))
	return n >= 2 && n <= 100
}
