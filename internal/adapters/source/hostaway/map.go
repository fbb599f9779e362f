package hostaway

import (
	"strconv"

	core "reviewdeck/internal/core/reviews"
)

// listKeys are the payload keys the review list commonly hides under
var listKeys = []string{"result", "results", "data", "reviews", "list"}

// fallbackCategoryKeys are flat item keys that carry a category score directly
var fallbackCategoryKeys = []string{
	"cleanliness", "communication", "respect_house_rules",
	"accuracy", "location", "value", "check_in",
}

// MapPayload maps a decoded Hostaway response of any shape onto source records
// items without a usable integer id are dropped, everything else degrades to defaults
func MapPayload(data any) []core.Raw {
	var out []core.Raw
	for _, item := range findList(data) {
		it, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if raw, ok := mapItem(it); ok {
			out = append(out, raw)
		}
	}
	return out
}

// findList locates the review list in the payload
// tries the common keys first, then any list-valued field, then the payload itself
func findList(data any) []any {
	switch v := data.(type) {
	case []any:
		return v
	case map[string]any:
		for _, k := range listKeys {
			if l, ok := v[k].([]any); ok {
				return l
			}
		}
		for _, val := range v {
			if l, ok := val.([]any); ok {
				return l
			}
		}
	}
	return nil
}

func mapItem(it map[string]any) (core.Raw, bool) {
	id, ok := asInt64(firstVal(it, "id", "reviewId", "reservationId"))
	if !ok {
		return core.Raw{}, false
	}

	raw := core.Raw{
		ID:             id,
		Type:           pickString(it, core.TypeHostToGuest, "type"),
		Status:         pickString(it, core.StatusPublished, "status"),
		Rating:         asRating(firstVal(it, "rating", "overall", "stars")),
		PublicReview:   pickString(it, "", "publicReview", "comment", "review", "text"),
		SubmittedAt:    pickString(it, "", "submittedAt", "createdAt", "createTime"),
		GuestName:      nestedName(it, "guestName", "guest", "reviewer"),
		ListingName:    nestedListing(it),
		Channel:        pickString(it, "Hostaway", "channel", "source"),
		ReviewCategory: mapCategories(it),
	}
	return raw, true
}

// mapCategories handles category payloads shaped as a list, a map, or flat keys
func mapCategories(it map[string]any) []core.CategoryScore {
	var out []core.CategoryScore

	rc := firstVal(it, "reviewCategory", "categories", "ratings", "scores")
	switch v := rc.(type) {
	case []any:
		for _, e := range v {
			c, ok := e.(map[string]any)
			if !ok {
				continue
			}
			name, _ := firstVal(c, "category", "name").(string)
			score := asRating(firstVal(c, "rating", "score", "value"))
			if name != "" && score != nil {
				out = append(out, core.CategoryScore{Category: core.ParseCategory(name), Rating: score})
			}
		}
	case map[string]any:
		// keep the known order stable rather than ranging the map
		for _, k := range fallbackCategoryKeys {
			if score := asRating(v[k]); score != nil {
				out = append(out, core.CategoryScore{Category: core.ParseCategory(k), Rating: score})
			}
		}
		for k, val := range v {
			if known(k) {
				continue
			}
			if score := asRating(val); score != nil {
				out = append(out, core.CategoryScore{Category: core.ParseCategory(k), Rating: score})
			}
		}
	}

	if len(out) > 0 {
		return out
	}

	// flat item keys as a last resort
	for _, k := range fallbackCategoryKeys {
		if score := asRating(it[k]); score != nil {
			out = append(out, core.CategoryScore{Category: core.ParseCategory(k), Rating: score})
		}
	}
	return out
}

func known(k string) bool {
	for _, f := range fallbackCategoryKeys {
		if f == k {
			return true
		}
	}
	return false
}

func firstVal(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
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

// nestedName resolves guest naming across flat and nested shapes
func nestedName(it map[string]any, flat string, containers ...string) string {
	if s, ok := it[flat].(string); ok && s != "" {
		return s
	}
	for _, c := range containers {
		if m, ok := it[c].(map[string]any); ok {
			if s := pickString(m, "", "name", "displayName"); s != "" {
				return s
			}
		}
	}
	return ""
}

func nestedListing(it map[string]any) string {
	if s := pickString(it, "", "listingName", "propertyName"); s != "" {
		return s
	}
	if m, ok := it["listing"].(map[string]any); ok {
		return pickString(m, "", "name")
	}
	return ""
}

// asInt64 coerces JSON numbers and numeric strings to an id
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// asRating coerces JSON numbers and numeric strings to a rating, nil otherwise
func asRating(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return &f
		}
	}
	return nil
}
