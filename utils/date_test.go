package utils

import (
	"errors"
	"testing"
	"time"

	"hostel-desk/models"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"canonical layout", "2024-01-03", "2024-01-03", false},
		{"legacy layout", "03/01/2024", "2024-01-03", false},
		{"surrounding whitespace", "  2024-01-03 ", "2024-01-03", false},
		{"empty", "", "", true},
		{"garbage", "next tuesday", "", true},
		{"us-ordered slashes", "01/31/2024", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error", tt.in)
				}
				if !errors.Is(err, models.ErrInvalidInput) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidInput", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.in, err)
			}
			if got.Format(DateLayout) != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format(DateLayout), tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
	d := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-01-03" {
		t.Errorf("FormatDate = %q, want 2024-01-03", got)
	}
}
