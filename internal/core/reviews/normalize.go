package reviews

// Normalize enriches raw reviews with derived fields
// output order matches input order, one output per input, duplicates preserved
func Normalize(raws []Raw) []Review {
	out := make([]Review, 0, len(raws))
	for _, raw := range raws {
		out = append(out, normalizeOne(raw))
	}
	return out
}

func normalizeOne(raw Raw) Review {
	r := Review{Raw: raw}

	if t, ok := ParseSubmitted(raw.SubmittedAt); ok {
		date := t
		key := MonthKey(t)
		r.SubmittedAtDate = &date
		r.MonthKey = &key
	}

	r.Property = raw.ListingName
	if r.Property == "" {
		r.Property = UnknownProperty
	}
	r.PropertySlug = Slugify(r.Property)

	// category mean with fallback to the overall rating
	// an all-non-numeric category list falls back the same way as an empty one
	r.CategoryAverage = AverageScore(raw.ReviewCategory)
	if r.CategoryAverage == nil && raw.Rating != nil {
		v := *raw.Rating
		r.CategoryAverage = &v
	}

	if r.Channel == "" {
		r.Channel = DefaultChannel
	}
	return r
}
