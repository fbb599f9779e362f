package reviews

import "math"

// Band is a qualitative score classification for display
type Band string

// Score bands
const (
	BandHigh    Band = "high"
	BandMedium  Band = "medium"
	BandLow     Band = "low"
	BandUnknown Band = "unknown"
)

// round1 rounds to one decimal, half away from zero
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AverageScore returns the 1-decimal mean of the numeric category ratings
// nil when no entry carries a numeric rating
func AverageScore(categories []CategoryScore) *float64 {
	var sum float64
	n := 0
	for _, c := range categories {
		if c.Rating == nil {
			continue
		}
		sum += *c.Rating
		n++
	}
	if n == 0 {
		return nil
	}
	avg := round1(sum / float64(n))
	return &avg
}

// BandOf classifies a category average
// nil is unknown, >=9 high, >=7 medium, below that low
func BandOf(n *float64) Band {
	switch {
	case n == nil:
		return BandUnknown
	case *n >= 9:
		return BandHigh
	case *n >= 7:
		return BandMedium
	default:
		return BandLow
	}
}
