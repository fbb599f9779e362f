package reviews

import "strings"

// Category is one qualitative review dimension
// the set is closed, unrecognized source values map to CategoryOther at the boundary
type Category string

// Known category values across Hostaway and Google payloads
const (
	CategoryCleanliness   Category = "cleanliness"
	CategoryCommunication Category = "communication"
	CategoryHouseRules    Category = "respect_house_rules"
	CategoryAccuracy      Category = "accuracy"
	CategoryLocation      Category = "location"
	CategoryValue         Category = "value"
	CategoryCheckIn       Category = "check_in"
	CategoryOther         Category = "other"
)

var knownCategories = map[Category]struct{}{
	CategoryCleanliness:   {},
	CategoryCommunication: {},
	CategoryHouseRules:    {},
	CategoryAccuracy:      {},
	CategoryLocation:      {},
	CategoryValue:         {},
	CategoryCheckIn:       {},
}

// ParseCategory maps a free-form source value onto the closed category set
// empty or unrecognized values land in the other bucket
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := knownCategories[c]; ok {
		return c
	}
	return CategoryOther
}

// Known reports whether c is one of the recognized categories
func (c Category) Known() bool {
	_, ok := knownCategories[c]
	return ok
}
