package reviews

import "sort"

// lowScoreMax is the highest category rating still counted as a recurring issue
const lowScoreMax = 6

// topIssuesCap bounds the ranked issue list per property
const topIssuesCap = 3

// Issue is a low-scoring category and how often it occurred
type Issue struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// PropertyMetrics are aggregate statistics over one property's reviews
// recomputed per request, never persisted
type PropertyMetrics struct {
	Slug     string         `json:"slug"`
	Name     string         `json:"name"`
	Total    int            `json:"total"`
	Visible  int            `json:"visible"`
	Avg      *float64       `json:"avg"`
	Channels map[string]int `json:"channels"`
	Types    map[string]int `json:"types"`
	Issues   []Issue        `json:"topIssues"`
}

// Aggregate groups normalized reviews by property slug and computes summary
// statistics per group
// groups appear keyed by first encounter, the result is stable-sorted by total
// descending, empty input yields an empty slice
func Aggregate(rs []Review) []PropertyMetrics {
	order := make([]string, 0)
	groups := make(map[string][]Review)
	for _, r := range rs {
		if _, ok := groups[r.PropertySlug]; !ok {
			order = append(order, r.PropertySlug)
		}
		groups[r.PropertySlug] = append(groups[r.PropertySlug], r)
	}

	out := make([]PropertyMetrics, 0, len(order))
	for _, slug := range order {
		out = append(out, aggregateGroup(slug, groups[slug]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

func aggregateGroup(slug string, group []Review) PropertyMetrics {
	m := PropertyMetrics{
		Slug:     slug,
		Name:     group[0].Property,
		Total:    len(group),
		Channels: make(map[string]int),
		Types:    make(map[string]int),
		Issues:   []Issue{},
	}

	var sum float64
	n := 0
	for _, r := range group {
		if !r.Hidden {
			m.Visible++
		}
		if r.CategoryAverage != nil {
			sum += *r.CategoryAverage
			n++
		}
		m.Channels[r.Channel]++
		m.Types[r.Type]++
	}
	if n > 0 {
		avg := round1(sum / float64(n))
		m.Avg = &avg
	}

	m.Issues = topIssues(group)
	return m
}

// topIssues counts category ratings at or below the low-score threshold and
// returns the most frequent categories, ties keep first-encounter order
func topIssues(group []Review) []Issue {
	counts := make(map[Category]int)
	order := make([]Category, 0)
	for _, r := range group {
		for _, c := range r.ReviewCategory {
			if c.Rating == nil || *c.Rating > lowScoreMax {
				continue
			}
			if _, ok := counts[c.Category]; !ok {
				order = append(order, c.Category)
			}
			counts[c.Category]++
		}
	}

	issues := make([]Issue, 0, len(order))
	for _, cat := range order {
		issues = append(issues, Issue{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Count > issues[j].Count })
	if len(issues) > topIssuesCap {
		issues = issues[:topIssuesCap]
	}
	return issues
}
