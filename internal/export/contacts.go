// Package export renders contact submissions as CSV for the admin console.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/bronsonbrode/backend/internal/model"
)

// ContactHeader is the first row of every contact export.
var ContactHeader = []string{
	"Name", "Email", "Phone", "Category", "Contact Date", "Message", "Terms Accepted", "Submitted At",
}

// WriteContacts writes a header row and one row per submission to w.
// Timestamps are rendered in loc. An empty subs still writes the header.
func WriteContacts(w io.Writer, subs []*model.ContactSubmission, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ContactHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, s := range subs {
		if err := cw.Write(contactRow(s, loc)); err != nil {
			return fmt.Errorf("export: write row %d: %w", s.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

func contactRow(s *model.ContactSubmission, loc *time.Location) []string {
	phone := ""
	if s.Phone != nil {
		phone = *s.Phone
	}
	terms := "No"
	if s.TermsAccepted {
		terms = "Yes"
	}
	return []string{
		s.Name,
		s.Email,
		phone,
		model.ContactCategoryLabel(s.Category),
		s.ContactDate,
		s.Message,
		terms,
		s.CreatedAt.In(loc).Format("2006-01-02 15:04:05"),
	}
}
