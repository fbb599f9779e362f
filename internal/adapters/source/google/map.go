package google

import (
	"hash/crc32"
	"strconv"
	"strings"

	core "reviewdeck/internal/core/reviews"
)

// starWords maps Business Profile star enums to a numeric rating
var starWords = map[string]float64{
	"ONE": 1, "TWO": 2, "THREE": 3, "FOUR": 4, "FIVE": 5,
}

// MapPayload maps a decoded batchGetReviews response onto source records
// google review names are strings, so ids are derived and kept negative
// to stay clear of the numeric id space other sources own
func MapPayload(data any) []core.Raw {
	var out []core.Raw
	for _, entry := range findLocations(data) {
		loc, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		listing, _ := loc["locationName"].(string)
		reviews, _ := loc["reviews"].([]any)
		if reviews == nil {
			reviews, _ = loc["review"].([]any)
		}
		for _, item := range reviews {
			it, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, mapReview(it, listing))
		}
	}
	return out
}

// findLocations locates the per-location groups in the payload
// a bare review list is wrapped as a single anonymous location
func findLocations(data any) []any {
	m, ok := data.(map[string]any)
	if !ok {
		return nil
	}
	for _, k := range []string{"locationReviews", "locations"} {
		if l, ok := m[k].([]any); ok {
			return l
		}
	}
	if _, ok := m["reviews"].([]any); ok {
		return []any{data}
	}
	return nil
}

func mapReview(it map[string]any, listing string) core.Raw {
	raw := core.Raw{
		ID:           reviewID(it),
		Type:         core.TypeGuestToHost,
		Status:       core.StatusPublished,
		Rating:       starRating(it["starRating"]),
		PublicReview: pickString(it, "", "comment", "text"),
		SubmittedAt:  pickString(it, "", "createTime", "updateTime"),
		GuestName:    "Google User",
		ListingName:  listing,
		Channel:      "Google",
	}
	if rv, ok := it["reviewer"].(map[string]any); ok {
		if s := pickString(rv, "", "displayName", "name"); s != "" {
			raw.GuestName = s
		}
	}
	return raw
}

// reviewID derives a stable negative id from the review name or id
func reviewID(it map[string]any) int64 {
	switch v := it["reviewId"].(type) {
	case float64:
		return -abs(int64(v))
	case string:
		return idFromString(v)
	}
	if name, ok := it["name"].(string); ok {
		return idFromString(name)
	}
	return 0
}

func idFromString(s string) int64 {
	tail := s
	if i := strings.LastIndex(s, "/"); i >= 0 {
		tail = s[i+1:]
	}
	if n, err := strconv.ParseInt(tail, 10, 64); err == nil {
		return -abs(n)
	}
	return -int64(crc32.ChecksumIEEE([]byte(s)))
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// starRating accepts the enum words as well as plain numbers
func starRating(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		if f, ok := starWords[strings.ToUpper(n)]; ok {
			return &f
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return &f
		}
	}
	return nil
}

func pickString(m map[string]any, def string, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return def
}
