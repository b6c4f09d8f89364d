package domain

import (
	"regexp"
	"strings"
	"time"
)

const birthdayLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Accepts any string of 7+ allowed characters, digits not required.
	phoneRe = regexp.MustCompile(`^[0-9\s\-\+\(\)]{7,}$`)
)

func ValidName(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidBirthday accepts only real calendar dates written exactly as
// YYYY-MM-DD; parse-then-reformat must give the input back.
func ValidBirthday(s string) bool {
	t, err := time.Parse(birthdayLayout, s)
	return err == nil && t.Format(birthdayLayout) == s
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

func ValidAddress(s string) bool {
	return strings.TrimSpace(s) != ""
}

func ValidContactMethod(s string) bool {
	switch ContactMethod(s) {
	case ContactEmail, ContactPhone, ContactMail:
		return true
	}
	return false
}

// CheckAll runs every field check and returns one message per violation,
// in field order. All checks run; there is no short-circuit. An empty
// result means the input is acceptable as a whole.
func CheckAll(in FormInput) []string {
	var violations []string
	if !ValidName(in.Name) {
		violations = append(violations, "Name is required.")
	}
	if !ValidBirthday(in.Birthday) {
		violations = append(violations, "Birthday must be in YYYY-MM-DD format (e.g., 2001-04-09).")
	}
	if !ValidEmail(in.Email) {
		violations = append(violations, "Email appears invalid (e.g., name@example.com).")
	}
	if !ValidPhone(in.Phone) {
		violations = append(violations, "Phone appears invalid (allow digits, spaces, +, -, parentheses).")
	}
	if !ValidAddress(in.Address) {
		violations = append(violations, "Address is required.")
	}
	if !ValidContactMethod(in.PreferredContact) {
		violations = append(violations, "Preferred contact must be Email, Phone, or Mail.")
	}
	return violations
}
