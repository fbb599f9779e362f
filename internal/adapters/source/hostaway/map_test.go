package hostaway

import (
	"encoding/json"
	"testing"

	core "reviewdeck/internal/core/reviews"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestMapPayloadStandardShape(t *testing.T) {
	t.Parallel()

	payload := decode(t, `{
		"status": "success",
		"result": [{
			"id": 7453,
			"type": "host-to-guest",
			"status": "published",
			"rating": null,
			"publicReview": "Shane and family are wonderful!",
			"reviewCategory": [
				{"category": "cleanliness", "rating": 10},
				{"category": "communication", "rating": 10}
			],
			"submittedAt": "2020-08-21 22:45:14",
			"guestName": "Shane Finkelstein",
			"listingName": "2B N1 A - 29 Shoreditch Heights"
		}]
	}`)

	out := MapPayload(payload)
	if len(out) != 1 {
		t.Fatalf("mapped %d items, want 1", len(out))
	}
	r := out[0]
	if r.ID != 7453 || r.Type != core.TypeHostToGuest || r.Status != core.StatusPublished {
		t.Fatalf("header fields wrong: %+v", r)
	}
	if r.Rating != nil {
		t.Fatalf("null rating mapped to %v", *r.Rating)
	}
	if r.Channel != "Hostaway" {
		t.Fatalf("channel = %q, want Hostaway", r.Channel)
	}
	if len(r.ReviewCategory) != 2 || r.ReviewCategory[0].Category != core.CategoryCleanliness {
		t.Fatalf("categories wrong: %+v", r.ReviewCategory)
	}
	if r.ReviewCategory[0].Rating == nil || *r.ReviewCategory[0].Rating != 10 {
		t.Fatalf("category rating wrong: %+v", r.ReviewCategory[0])
	}
}

func TestMapPayloadAlternateKeys(t *testing.T) {
	t.Parallel()

	payload := decode(t, `{"data": [{
		"reviewId": "99",
		"overall": "8.5",
		"comment": "nice place",
		"createdAt": "2021-02-03T10:00:00",
		"guest": {"name": "Dana"},
		"listing": {"name": "Flat 9"},
		"source": "Booking.com",
		"ratings": {"cleanliness": 9, "vibe": 8}
	}]}`)

	out := MapPayload(payload)
	if len(out) != 1 {
		t.Fatalf("mapped %d items, want 1", len(out))
	}
	r := out[0]
	if r.ID != 99 {
		t.Fatalf("id = %d, want 99 from string reviewId", r.ID)
	}
	if r.Rating == nil || *r.Rating != 8.5 {
		t.Fatalf("rating = %v, want 8.5 from overall", r.Rating)
	}
	if r.PublicReview != "nice place" || r.GuestName != "Dana" || r.ListingName != "Flat 9" {
		t.Fatalf("alternate keys not mapped: %+v", r)
	}
	if r.Channel != "Booking.com" {
		t.Fatalf("channel = %q", r.Channel)
	}
	if len(r.ReviewCategory) != 2 {
		t.Fatalf("categories = %+v, want 2", r.ReviewCategory)
	}
	// map-shaped categories keep known keys first
	if r.ReviewCategory[0].Category != core.CategoryCleanliness {
		t.Fatalf("first category = %q", r.ReviewCategory[0].Category)
	}
	// unknown names land in the other bucket
	if r.ReviewCategory[1].Category != core.CategoryOther {
		t.Fatalf("unknown category = %q, want other", r.ReviewCategory[1].Category)
	}
}

func TestMapPayloadFlatCategoryKeys(t *testing.T) {
	t.Parallel()

	payload := decode(t, `{"result": [{
		"id": 5,
		"cleanliness": 7,
		"location": 9
	}]}`)

	out := MapPayload(payload)
	if len(out) != 1 {
		t.Fatalf("mapped %d items, want 1", len(out))
	}
	cs := out[0].ReviewCategory
	if len(cs) != 2 || cs[0].Category != core.CategoryCleanliness || cs[1].Category != core.CategoryLocation {
		t.Fatalf("flat categories wrong: %+v", cs)
	}
}

func TestMapPayloadDropsUnusableItems(t *testing.T) {
	t.Parallel()

	payload := decode(t, `{"result": [
		{"id": "not-a-number", "publicReview": "skip me"},
		{"publicReview": "no id at all"},
		"not even an object",
		{"id": 1, "publicReview": "keep me"}
	]}`)

	out := MapPayload(payload)
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("mapped %+v, want only id 1", out)
	}
}

func TestMapPayloadListAtTopLevelAndUnknownListKey(t *testing.T) {
	t.Parallel()

	top := MapPayload(decode(t, `[{"id": 2}]`))
	if len(top) != 1 || top[0].ID != 2 {
		t.Fatalf("top-level list not handled: %+v", top)
	}

	other := MapPayload(decode(t, `{"whatever": [{"id": 3}]}`))
	if len(other) != 1 || other[0].ID != 3 {
		t.Fatalf("fallback list key not handled: %+v", other)
	}

	if out := MapPayload(decode(t, `{"count": 0}`)); len(out) != 0 {
		t.Fatalf("empty payload mapped to %+v", out)
	}
	if out := MapPayload(nil); len(out) != 0 {
		t.Fatalf("nil payload mapped to %+v", out)
	}
}

func TestMapPayloadDefaults(t *testing.T) {
	t.Parallel()

	out := MapPayload(decode(t, `{"result": [{"id": 10}]}`))
	if len(out) != 1 {
		t.Fatalf("mapped %d items", len(out))
	}
	r := out[0]
	if r.Type != core.TypeHostToGuest || r.Status != core.StatusPublished {
		t.Fatalf("defaults wrong: type=%q status=%q", r.Type, r.Status)
	}
	if r.Hidden {
		t.Fatalf("new records must not be hidden")
	}
}
