package reviews

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"cleanliness", CategoryCleanliness},
		{" Communication ", CategoryCommunication},
		{"RESPECT_HOUSE_RULES", CategoryHouseRules},
		{"check_in", CategoryCheckIn},
		{"wifi_speed", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range tests {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if CategoryOther.Known() {
		t.Fatal("other must not be a known category")
	}
}
