package reviews

import "testing"

func fp(v float64) *float64 { return &v }

func cat(c Category, v float64) CategoryScore {
	return CategoryScore{Category: c, Rating: fp(v)}
}

func TestAverageScore_Table(t *testing.T) {
	tests := []struct {
		name string
		in   []CategoryScore
		want *float64
	}{
		{
			name: "whole number mean",
			in: []CategoryScore{
				cat(CategoryCleanliness, 8),
				cat(CategoryCommunication, 9),
				cat(CategoryHouseRules, 10),
			},
			want: fp(9),
		},
		{
			name: "half kept at one decimal",
			in:   []CategoryScore{cat(CategoryCleanliness, 7), cat(CategoryCommunication, 8)},
			want: fp(7.5),
		},
		{
			name: "rounds half up at the decimal boundary",
			in:   []CategoryScore{cat(CategoryCleanliness, 8), cat(CategoryCommunication, 8.5)},
			want: fp(8.3),
		},
		{
			name: "nil entries skipped",
			in:   []CategoryScore{{Category: CategoryCleanliness}, cat(CategoryCommunication, 6)},
			want: fp(6),
		},
		{name: "empty is nil", in: nil, want: nil},
		{
			name: "all non numeric is nil",
			in:   []CategoryScore{{Category: CategoryCleanliness}, {Category: CategoryValue}},
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AverageScore(tc.in)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("AverageScore = %v, want nil", *got)
			case tc.want != nil && got == nil:
				t.Fatalf("AverageScore = nil, want %v", *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Fatalf("AverageScore = %v, want %v", *got, *tc.want)
			}
		})
	}
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		in   *float64
		want Band
	}{
		{nil, BandUnknown},
		{fp(9), BandHigh},
		{fp(10), BandHigh},
		{fp(8.9), BandMedium},
		{fp(7), BandMedium},
		{fp(6.9), BandLow},
		{fp(0), BandLow},
	}
	for _, tc := range tests {
		if got := BandOf(tc.in); got != tc.want {
			t.Fatalf("BandOf(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
