package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ContactSubmission is a message submitted via the public contact form.
// Submissions are never updated after creation.
type ContactSubmission struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	ContactDate   string    `json:"contact_date"` // YYYY-MM-DD
	Category      string    `json:"category"`
	Message       string    `json:"message"`
	TermsAccepted bool      `json:"terms_accepted"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContactForm is the untrusted payload of POST /api/contact.
// Each field is nil when the client did not send it.
type ContactForm struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Date     *string `json:"date"`
	Category *string `json:"category"`
	Message  *string `json:"message"`
	Terms    Truthy  `json:"terms"`
}

// Truthy decodes a checkbox-like JSON value. Booleans are taken as is,
// numbers are true when non-zero, and strings are true for
// "true", "on", "yes" and "1" in any case. Anything else is false.
type Truthy bool

func (t *Truthy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = false
	case bytes.Equal(data, []byte("true")):
		*t = true
	case bytes.Equal(data, []byte("false")):
		*t = false
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "on", "yes", "1":
			*t = true
		default:
			*t = false
		}
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*t = false
			return nil
		}
		*t = n != 0
	}
	return nil
}

// ContactCategory is one option of the contact form's category select.
type ContactCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ContactCategories lists the accepted submission categories in display order.
var ContactCategories = []ContactCategory{
	{Value: "general", Label: "General Inquiry"},
	{Value: "project", Label: "Project Discussion"},
	{Value: "partnership", Label: "Partnership"},
	{Value: "support", Label: "Support"},
	{Value: "other", Label: "Other"},
}

// ContactCategoryLabel returns the display label for value, or value itself
// when it is not a known category.
func ContactCategoryLabel(value string) string {
	for _, c := range ContactCategories {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// IsContactCategory reports whether value is one of ContactCategories.
func IsContactCategory(value string) bool {
	for _, c := range ContactCategories {
		if c.Value == value {
			return true
		}
	}
	return false
}

// NewContactSubmission is a validated, trimmed submission ready to persist.
type NewContactSubmission struct {
	Name          string
	Email         string
	Phone         *string
	ContactDate   string
	Category      string
	Message       string
	TermsAccepted bool
}
