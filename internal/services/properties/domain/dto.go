// Package domain holds DTOs for the properties http and service contracts
package domain

// MetricsInput controls the dashboard aggregation
type MetricsInput struct {
	// IncludeHidden keeps hidden reviews in the totals
	IncludeHidden bool `json:"include_hidden,omitempty" example:"true"`
}

// PublicInput selects one property's public feed
type PublicInput struct {
	Slug string `json:"slug" validate:"required,max=200" example:"2b-n1-a-29-shoreditch-heights"`
}
