package reviews

import (
	"sort"
	"strings"
	"time"
)

// FilterAll is the neutral value for every enum filter
const FilterAll = "all"

// Score filter values
const (
	ScoreHigh = ">=9"
	ScoreGood = ">=7"
	ScoreLow  = "<7"
)

// Time window filter values
const (
	Time30d = "30d"
	Time90d = "90d"
	Time1y  = "1y"
)

// Sort orders
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

// Filters is the ephemeral view state applied to a normalized collection
// zero values mean all / newest
type Filters struct {
	Query    string
	Type     string
	Channel  string
	Category string
	Time     string
	Score    string
	Sort     string
}

func pick(v string) string {
	if v == "" {
		return FilterAll
	}
	return v
}

// Apply filters and sorts reviews against the current wall clock
func Apply(rs []Review, f Filters) []Review {
	return ApplyAt(rs, f, time.Now())
}

// ApplyAt filters and sorts reviews with an explicit now for the time window
// the input slice is never mutated, predicate stages are order-insensitive and
// the final sort is stable
func ApplyAt(rs []Review, f Filters, now time.Time) []Review {
	out := make([]Review, 0, len(rs))
	cutoff, timed := timeCutoff(pick(f.Time), now)
	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, r := range rs {
		if !matchExact(pick(f.Type), r.Type) {
			continue
		}
		if !matchExact(pick(f.Channel), r.Channel) {
			continue
		}
		if !matchCategory(pick(f.Category), r.ReviewCategory) {
			continue
		}
		if timed && !matchTime(r, cutoff) {
			continue
		}
		if !matchScore(pick(f.Score), r.CategoryAverage) {
			continue
		}
		if !matchQuery(query, r) {
			continue
		}
		out = append(out, r)
	}

	sortReviews(out, pick(f.Sort))
	return out
}

func matchExact(want, got string) bool {
	return want == FilterAll || want == got
}

func matchCategory(want string, cs []CategoryScore) bool {
	if want == FilterAll {
		return true
	}
	for _, c := range cs {
		if string(c.Category) == want {
			return true
		}
	}
	return false
}

func timeCutoff(window string, now time.Time) (time.Time, bool) {
	switch window {
	case Time30d:
		return now.AddDate(0, 0, -30), true
	case Time90d:
		return now.AddDate(0, 0, -90), true
	case Time1y:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// matchTime keeps reviews submitted at or after the cutoff
// unparseable dates are excluded whenever a window is active
func matchTime(r Review, cutoff time.Time) bool {
	return r.SubmittedAtDate != nil && !r.SubmittedAtDate.Before(cutoff)
}

// matchScore compares the category average against the selected band
// nil averages are excluded whenever a band is active
func matchScore(want string, avg *float64) bool {
	if want == FilterAll {
		return true
	}
	if avg == nil {
		return false
	}
	switch want {
	case ScoreHigh:
		return *avg >= 9
	case ScoreGood:
		return *avg >= 7
	case ScoreLow:
		return *avg < 7
	default:
		return true
	}
}

// matchQuery is a case-insensitive substring match over guest name,
// listing name and review text, any one hit qualifies
func matchQuery(q string, r Review) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.GuestName), q) ||
		strings.Contains(strings.ToLower(r.ListingName), q) ||
		strings.Contains(strings.ToLower(r.PublicReview), q)
}

// sortKeyDate treats unparseable dates as the epoch so they sort earliest
func sortKeyDate(r Review) int64 {
	if r.SubmittedAtDate == nil {
		return 0
	}
	return r.SubmittedAtDate.UnixMilli()
}

// sortKeyScore treats a nil average as zero
func sortKeyScore(r Review) float64 {
	if r.CategoryAverage == nil {
		return 0
	}
	return *r.CategoryAverage
}

func sortReviews(rs []Review, order string) {
	var less func(a, b Review) bool
	switch order {
	case SortOldest:
		less = func(a, b Review) bool { return sortKeyDate(a) < sortKeyDate(b) }
	case SortHighest:
		less = func(a, b Review) bool { return sortKeyScore(a) > sortKeyScore(b) }
	case SortLowest:
		less = func(a, b Review) bool { return sortKeyScore(a) < sortKeyScore(b) }
	default: // newest
		less = func(a, b Review) bool { return sortKeyDate(a) > sortKeyDate(b) }
	}
	sort.SliceStable(rs, func(i, j int) bool { return less(rs[i], rs[j]) })
}
