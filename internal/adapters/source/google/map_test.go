package google

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

func TestMapPayloadBatchShape(t *testing.T) {
	t.Parallel()

	payload := decode(t, `{"locationReviews": [{
		"locationName": "2B N1 A - 29 Shoreditch Heights",
		"reviews": [{
			"name": "accounts/1/locations/2/reviews/555",
			"reviewer": {"displayName": "Priya"},
			"starRating": "FIVE",
			"comment": "Spotless flat, great host.",
			"createTime": "2024-05-02T09:00:00Z"
		}]
	}]}`)

	out := MapPayload(payload)
	if len(out) != 1 {
		t.Fatalf("mapped %d items, want 1", len(out))
	}
	r := out[0]
	if r.ID != -555 {
		t.Fatalf("id = %d, want -555 from review name tail", r.ID)
	}
	if r.Rating == nil || *r.Rating != 5 {
		t.Fatalf("rating = %v, want 5 from FIVE", r.Rating)
	}
	if r.Type != core.TypeGuestToHost || r.Status != core.StatusPublished {
		t.Fatalf("header fields wrong: %+v", r)
	}
	if r.Channel != "Google" || r.GuestName != "Priya" {
		t.Fatalf("channel/guest wrong: %+v", r)
	}
	if r.ListingName != "2B N1 A - 29 Shoreditch Heights" {
		t.Fatalf("listing = %q", r.ListingName)
	}
	if r.SubmittedAt != "2024-05-02T09:00:00Z" {
		t.Fatalf("submitted = %q", r.SubmittedAt)
	}
}

func TestMapPayloadNonNumericNameHashes(t *testing.T) {
	t.Parallel()

	payload := decode(t, `{"locationReviews": [{
		"locationName": "Flat 9",
		"reviews": [{"name": "accounts/1/locations/2/reviews/AbC-xyz", "starRating": "THREE"}]
	}]}`)

	out := MapPayload(payload)
	if len(out) != 1 {
		t.Fatalf("mapped %d items, want 1", len(out))
	}
	if out[0].ID >= 0 {
		t.Fatalf("hashed id = %d, want negative", out[0].ID)
	}
	if out[0].GuestName != "Google User" {
		t.Fatalf("guest = %q, want default", out[0].GuestName)
	}
	if len(out[0].ReviewCategory) != 0 {
		t.Fatalf("google reviews carry no categories, got %+v", out[0].ReviewCategory)
	}
}

func TestMapPayloadBareReviewList(t *testing.T) {
	t.Parallel()

	payload := decode(t, `{"reviews": [{"reviewId": 42, "starRating": 4.0, "text": "fine"}]}`)

	out := MapPayload(payload)
	if len(out) != 1 {
		t.Fatalf("mapped %d items, want 1", len(out))
	}
	r := out[0]
	if r.ID != -42 {
		t.Fatalf("id = %d, want -42", r.ID)
	}
	if r.Rating == nil || *r.Rating != 4 {
		t.Fatalf("rating = %v, want 4", r.Rating)
	}
	if r.PublicReview != "fine" {
		t.Fatalf("review = %q", r.PublicReview)
	}
}

func TestMapPayloadEmptyAndMalformed(t *testing.T) {
	t.Parallel()

	if out := MapPayload(nil); len(out) != 0 {
		t.Fatalf("nil payload mapped to %+v", out)
	}
	if out := MapPayload(decode(t, `{"locationReviews": []}`)); len(out) != 0 {
		t.Fatalf("empty payload mapped to %+v", out)
	}
	if out := MapPayload(decode(t, `{"locationReviews": ["junk", {"reviews": ["junk"]}]}`)); len(out) != 0 {
		t.Fatalf("malformed entries mapped to %+v", out)
	}
}

func TestStarRating(t *testing.T) {
	t.Parallel()

	for word, want := range map[string]float64{"ONE": 1, "two": 2, "FIVE": 5, "4": 4} {
		got := starRating(word)
		if got == nil || *got != want {
			t.Fatalf("starRating(%q) = %v, want %v", word, got, want)
		}
	}
	if got := starRating("STAR_RATING_UNSPECIFIED"); got != nil {
		t.Fatalf("unspecified rating = %v, want nil", got)
	}
	if got := starRating(nil); got != nil {
		t.Fatalf("nil rating = %v, want nil", got)
	}
}
