package utils

import (
	"fmt"
	"strings"
	"time"

	"hostel-desk/models"
)

// DateLayout is the canonical on-disk and display date format.
const DateLayout = "2006-01-02"

// entryLayouts are the formats accepted from user input. DD/MM/YYYY is
// kept for parity with older room sheets.
var entryLayouts = []string{DateLayout, "02/01/2006"}

// ParseDate parses a user-entered date in any accepted layout.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", models.ErrInvalidInput)
	}
	for _, layout := range entryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q (want YYYY-MM-DD or DD/MM/YYYY)", models.ErrInvalidInput, s)
}

// FormatDate renders a date in the canonical layout. The zero time renders
// as an empty string so vacant rooms serialize with empty date columns.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
