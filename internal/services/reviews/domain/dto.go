// Package domain holds DTOs for the reviews http and service contracts
package domain

import core "reviewdeck/internal/core/reviews"

// ListInput carries dashboard filter state
// zero values mean all / newest, mirroring the core engine defaults
type ListInput struct {
	Query    string `json:"query,omitempty" validate:"omitempty,max=200" example:"shoreditch"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=all host-to-guest guest-to-host" example:"guest-to-host"`
	Channel  string `json:"channel,omitempty" validate:"omitempty,max=50" example:"Airbnb"`
	Category string `json:"category,omitempty" validate:"omitempty,max=50" example:"cleanliness"`
	Time     string `json:"time,omitempty" validate:"omitempty,oneof=all 30d 90d 1y" example:"90d"`
	Score    string `json:"score,omitempty" validate:"omitempty,oneof=all >=9 >=7 <7" example:">=9"`
	Sort     string `json:"sort,omitempty" validate:"omitempty,oneof=newest oldest highest lowest" example:"newest"`

	// IncludeHidden requires an authenticated caller
	IncludeHidden bool `json:"include_hidden,omitempty" example:"false"`
}

// Filters converts the wire input into the core filter state
func (in ListInput) Filters() core.Filters {
	return core.Filters{
		Query:    in.Query,
		Type:     in.Type,
		Channel:  in.Channel,
		Category: in.Category,
		Time:     in.Time,
		Score:    in.Score,
		Sort:     in.Sort,
	}
}

// ListOutput is the reviews list payload
type ListOutput struct {
	Total   int           `json:"total" example:"42"`
	Reviews []core.Review `json:"reviews"`
}

// VisibilityInput toggles the admin-owned hidden flag on one review
// Hidden is a pointer so that explicit false passes validation
type VisibilityInput struct {
	ID     int64 `json:"id" validate:"required" example:"7453"`
	Hidden *bool `json:"hidden" validate:"required" example:"true"`
}
