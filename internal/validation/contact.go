// Package validation checks untrusted contact form payloads before they are
// persisted. Everything here is pure; callers pass the clock in.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bronsonbrode/backend/internal/model"
)

const (
	nameMinLength    = 2
	nameMaxLength    = 100
	messageMinLength = 10
	messageMaxLength = 1000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// accepted layouts for the contact date, tried in order
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Errors maps a form field name to the first rule it violated.
type Errors map[string]string

// Error implements error so a non-empty Errors can travel as one.
func (e Errors) Error() string {
	return "validation failed"
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// ValidateContact runs every field rule against form and collects the failures.
// now decides what "today" is; a date equal to today's calendar date is valid
// whatever the time of day.
func ValidateContact(form model.ContactForm, now time.Time) Errors {
	errs := Errors{}

	name := deref(form.Name)
	switch {
	case strings.TrimSpace(name) == "":
		errs["name"] = "Name is required"
	case length(strings.TrimSpace(name)) < nameMinLength:
		errs["name"] = "Name must be at least 2 characters"
	case length(name) > nameMaxLength:
		errs["name"] = "Name must be 100 characters or less"
	}

	email := deref(form.Email)
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !IsEmail(email):
		errs["email"] = "Invalid email format"
	}

	if phone := deref(form.Phone); phone != "" && !IsPhone(phone) {
		errs["phone"] = "Invalid phone format"
	}

	date := deref(form.Date)
	if strings.TrimSpace(date) == "" {
		errs["date"] = "Date is required"
	} else if d, ok := ParseDate(date, now.Location()); !ok {
		errs["date"] = "Invalid date format"
	} else if d.After(midnight(now)) {
		errs["date"] = "Date cannot be in the future"
	}

	category := deref(form.Category)
	switch {
	case strings.TrimSpace(category) == "":
		errs["category"] = "Category is required"
	case !model.IsContactCategory(category):
		errs["category"] = "Please select a valid category"
	}

	message := deref(form.Message)
	switch {
	case strings.TrimSpace(message) == "":
		errs["message"] = "Message is required"
	case length(strings.TrimSpace(message)) < messageMinLength:
		errs["message"] = "Message must be at least 10 characters"
	case length(message) > messageMaxLength:
		errs["message"] = "Message must be 1000 characters or less"
	}

	if !form.Terms {
		errs["terms"] = "You must agree to the terms"
	}

	return errs
}

// IsEmail reports whether s looks like local@domain.tld with no whitespace.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone reports whether s holds 10 or 11 digits once every non-digit is removed.
func IsPhone(s string) bool {
	n := len(Digits(s))
	return n == 10 || n == 11
}

// Digits returns only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseDate reads a calendar date and returns it at midnight in loc.
// Only the date part of an RFC 3339 timestamp is kept.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// ToSubmission trims a form that passed ValidateContact into the shape the
// store persists. The date is normalized to YYYY-MM-DD.
func ToSubmission(form model.ContactForm, loc *time.Location) model.NewContactSubmission {
	sub := model.NewContactSubmission{
		Name:          strings.TrimSpace(deref(form.Name)),
		Email:         strings.TrimSpace(deref(form.Email)),
		Category:      deref(form.Category),
		Message:       strings.TrimSpace(deref(form.Message)),
		TermsAccepted: bool(form.Terms),
	}
	if phone := strings.TrimSpace(deref(form.Phone)); phone != "" {
		sub.Phone = &phone
	}
	if d, ok := ParseDate(deref(form.Date), loc); ok {
		sub.ContactDate = d.Format("2006-01-02")
	}
	return sub
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func length(s string) int { return utf8.RuneCountInString(s) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
