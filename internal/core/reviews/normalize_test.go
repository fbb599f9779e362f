package reviews

import "testing"

func TestNormalize_DerivedFields(t *testing.T) {
	raws := []Raw{
		{
			ID:          1,
			Type:        TypeGuestToHost,
			SubmittedAt: "2024-03-15 10:30:00",
			ListingName: "2B N1 A - 29 Shoreditch Heights",
			ReviewCategory: []CategoryScore{
				cat(CategoryCleanliness, 8),
				cat(CategoryCommunication, 9),
			},
		},
	}
	out := Normalize(raws)
	if len(out) != 1 {
		t.Fatalf("Normalize returned %d records, want 1", len(out))
	}
	r := out[0]
	if r.Property != "2B N1 A - 29 Shoreditch Heights" {
		t.Fatalf("property = %q", r.Property)
	}
	if r.PropertySlug != "2b-n1-a-29-shoreditch-heights" {
		t.Fatalf("slug = %q", r.PropertySlug)
	}
	if r.MonthKey == nil || *r.MonthKey != "2024-03" {
		t.Fatalf("monthKey = %v", r.MonthKey)
	}
	if r.SubmittedAtDate == nil {
		t.Fatal("submittedAtDate missing")
	}
	if r.CategoryAverage == nil || *r.CategoryAverage != 8.5 {
		t.Fatalf("categoryAverage = %v", r.CategoryAverage)
	}
	if r.Channel != DefaultChannel {
		t.Fatalf("channel = %q, want %q", r.Channel, DefaultChannel)
	}
}

func TestNormalize_TotalOnMalformedInput(t *testing.T) {
	raws := []Raw{
		{ID: 1}, // everything missing
		{ID: 2, SubmittedAt: "never"},
		{ID: 3, ListingName: ""},
	}
	out := Normalize(raws)
	if len(out) != 3 {
		t.Fatalf("Normalize returned %d records, want 3", len(out))
	}
	for _, r := range out {
		if r.Property != UnknownProperty {
			t.Fatalf("id %d property = %q, want %q", r.ID, r.Property, UnknownProperty)
		}
		if r.PropertySlug != "unknown" {
			t.Fatalf("id %d slug = %q", r.ID, r.PropertySlug)
		}
		if r.MonthKey != nil || r.SubmittedAtDate != nil {
			t.Fatalf("id %d expected nil date fields", r.ID)
		}
		if r.CategoryAverage != nil {
			t.Fatalf("id %d expected nil average", r.ID)
		}
		if r.Channel != DefaultChannel {
			t.Fatalf("id %d channel = %q", r.ID, r.Channel)
		}
	}
}

func TestNormalize_RatingFallback(t *testing.T) {
	out := Normalize([]Raw{
		{ID: 1, Rating: fp(6)},
		{ID: 2, Rating: fp(6), ReviewCategory: []CategoryScore{{Category: CategoryCleanliness}}},
		{ID: 3},
	})
	if out[0].CategoryAverage == nil || *out[0].CategoryAverage != 6 {
		t.Fatalf("empty categories should fall back to rating, got %v", out[0].CategoryAverage)
	}
	// all-non-numeric categories fall back the same way as empty ones
	if out[1].CategoryAverage == nil || *out[1].CategoryAverage != 6 {
		t.Fatalf("non numeric categories should fall back to rating, got %v", out[1].CategoryAverage)
	}
	if out[2].CategoryAverage != nil {
		t.Fatalf("no rating and no categories should stay nil, got %v", *out[2].CategoryAverage)
	}
}

func TestNormalize_PreservesOrderAndDuplicates(t *testing.T) {
	out := Normalize([]Raw{{ID: 7}, {ID: 7}, {ID: 3}})
	if len(out) != 3 || out[0].ID != 7 || out[1].ID != 7 || out[2].ID != 3 {
		t.Fatalf("order or duplicates not preserved: %+v", out)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raws := []Raw{{ID: 1, Channel: ""}}
	_ = Normalize(raws)
	if raws[0].Channel != "" {
		t.Fatalf("input mutated, channel = %q", raws[0].Channel)
	}
}
