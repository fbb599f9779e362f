package reviews

import (
	"testing"
	"time"
)

func TestParseSubmitted_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
		want string // RFC3339 of expected instant when ok
	}{
		{name: "space separator", in: "2024-03-15 10:30:00", ok: true, want: "2024-03-15T10:30:00Z"},
		{name: "t separator", in: "2024-03-15T10:30:00", ok: true, want: "2024-03-15T10:30:00Z"},
		{name: "rfc3339 with zone", in: "2024-03-15T10:30:00Z", ok: true, want: "2024-03-15T10:30:00Z"},
		{name: "date only", in: "2024-03-15", ok: true, want: "2024-03-15T00:00:00Z"},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "not a date", ok: false},
		{name: "partial", in: "2024-13-45 99:99:99", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseSubmitted(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseSubmitted(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if !ok {
				return
			}
			want, err := time.Parse(time.RFC3339, tc.want)
			if err != nil {
				t.Fatalf("bad want: %v", err)
			}
			if !got.Equal(want) {
				t.Fatalf("ParseSubmitted(%q) = %v, want %v", tc.in, got, want)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	tm, _ := ParseSubmitted("2024-03-15 10:30:00")
	if got := MonthKey(tm); got != "2024-03" {
		t.Fatalf("MonthKey = %q, want 2024-03", got)
	}
	jan := time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)
	if got := MonthKey(jan); got != "2021-01" {
		t.Fatalf("MonthKey zero pads = %q, want 2021-01", got)
	}
}

func TestFormatDisplay(t *testing.T) {
	if got := FormatDisplay(nil); got != "" {
		t.Fatalf("FormatDisplay(nil) = %q, want empty", got)
	}
	tm := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatDisplay(&tm); got != "Mar 5, 2024" {
		t.Fatalf("FormatDisplay = %q, want Mar 5, 2024", got)
	}
}
