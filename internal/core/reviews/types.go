// Package reviews is the pure normalization and analytics engine for guest reviews
// Every operation is total: malformed input degrades to defined defaults and
// nothing in this package performs IO or mutates its arguments
package reviews

import "time"

// ReviewType is the direction of a review
type ReviewType = string

// Review directions as supplied by upstream sources
const (
	TypeHostToGuest ReviewType = "host-to-guest"
	TypeGuestToHost ReviewType = "guest-to-host"
)

// Review statuses as supplied by upstream sources
// informational only, the hidden flag is the visibility source of truth
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusHidden    = "hidden"
)

// DefaultChannel is assumed when a source does not name one
const DefaultChannel = "Direct"

// UnknownProperty is assumed when a review carries no listing name
const UnknownProperty = "Unknown"

// CategoryScore is one qualitative rating attached to a review
// Rating is nil when the source value was not numeric
type CategoryScore struct {
	Category Category `json:"category"`
	Rating   *float64 `json:"rating"`
}

// Raw is an unmodified review record as supplied by a review source
// field names follow the upstream wire format
type Raw struct {
	ID             int64           `json:"id"`
	Type           ReviewType      `json:"type"`
	Status         string          `json:"status"`
	Rating         *float64        `json:"rating"`
	PublicReview   string          `json:"publicReview"`
	ReviewCategory []CategoryScore `json:"reviewCategory"`
	SubmittedAt    string          `json:"submittedAt"`
	GuestName      string          `json:"guestName"`
	ListingName    string          `json:"listingName"`
	Channel        string          `json:"channel"`
	Hidden         bool            `json:"hidden"`
}

// Review is a Raw enriched with derived, recomputable fields
type Review struct {
	Raw

	Property        string     `json:"property"`
	PropertySlug    string     `json:"propertySlug"`
	CategoryAverage *float64   `json:"categoryAverage"`
	MonthKey        *string    `json:"monthKey"`
	SubmittedAtDate *time.Time `json:"submittedAtDate"`
}
