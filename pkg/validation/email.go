package validation

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidEmail is returned when an address does not match the email grammar.
var ErrInvalidEmail = errors.New("email address is not valid")

// emailRegex accepts one or more alphanumeric local segments separated by
// '.', '-' or '_', an alphanumeric-and-hyphen domain label, and at least one
// dot-separated top-level segment of two or more letters.
var emailRegex = regexp.MustCompile(`^([A-Za-z0-9]+[._-])*[A-Za-z0-9]+@[A-Za-z0-9-]+(\.[A-Za-z]{2,})+$`)

// ValidateEmail checks an address against the email grammar. The match is
// anchored: a valid substring inside a larger string does not pass.
func ValidateEmail(email string) error {
	if email == "" || !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail lowercases the domain portion of an address. The local part
// is case-preserving.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
