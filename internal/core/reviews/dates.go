package reviews

import (
	"fmt"
	"strings"
	"time"
)

// layouts tried in order after separator normalization
var submittedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseSubmitted parses a loosely ISO-like timestamp
// a single space between date and time is accepted in place of the T separator
// ok is false for anything that fails to parse
func ParseSubmitted(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if !strings.Contains(s, "T") {
		s = strings.Replace(s, " ", "T", 1)
	}
	for _, layout := range submittedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey renders t as a YYYY-MM bucket key
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// FormatDisplay renders a parsed instant for display, eg "Jan 2, 2006"
// nil yields the empty string
func FormatDisplay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
