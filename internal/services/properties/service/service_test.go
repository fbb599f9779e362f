package service

import (
	"context"
	"testing"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/services/properties/domain"
)

type fakeReviews struct{ rs []core.Review }

func (f fakeReviews) All(context.Context) ([]core.Review, error) { return f.rs, nil }

func fp(v float64) *float64 { return &v }

func norm(raws ...core.Raw) []core.Review { return core.Normalize(raws) }

func raw(id int64, listing, status string, hidden bool, submitted string, catRating *float64) core.Raw {
	r := core.Raw{
		ID:          id,
		Type:        core.TypeGuestToHost,
		Status:      status,
		SubmittedAt: submitted,
		GuestName:   "Dana",
		ListingName: listing,
		Channel:     "Airbnb",
		Hidden:      hidden,
	}
	if catRating != nil {
		r.ReviewCategory = []core.CategoryScore{{Category: core.CategoryCleanliness, Rating: catRating}}
	}
	return r
}

func TestMetricsExcludesHiddenByDefault(t *testing.T) {
	t.Parallel()

	s := New(fakeReviews{rs: norm(
		raw(1, "Flat A", core.StatusPublished, false, "2024-05-01 10:00:00", fp(9)),
		raw(2, "Flat A", core.StatusPublished, true, "2024-05-02 10:00:00", fp(5)),
	)})

	out, err := s.Metrics(context.Background(), domain.MetricsInput{})
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("groups = %d, want 1", len(out))
	}
	if out[0].Total != 1 || out[0].Visible != 1 {
		t.Fatalf("total/visible = %d/%d, want 1/1", out[0].Total, out[0].Visible)
	}

	out, err = s.Metrics(context.Background(), domain.MetricsInput{IncludeHidden: true})
	if err != nil {
		t.Fatalf("Metrics include_hidden: %v", err)
	}
	if out[0].Total != 2 || out[0].Visible != 1 {
		t.Fatalf("total/visible = %d/%d, want 2/1", out[0].Total, out[0].Visible)
	}
}

func TestMetricsRankedByTotal(t *testing.T) {
	t.Parallel()

	s := New(fakeReviews{rs: norm(
		raw(1, "Flat A", core.StatusPublished, false, "2024-05-01 10:00:00", fp(9)),
		raw(2, "Flat B", core.StatusPublished, false, "2024-05-02 10:00:00", fp(8)),
		raw(3, "Flat B", core.StatusPublished, false, "2024-05-03 10:00:00", fp(7)),
	)})

	out, err := s.Metrics(context.Background(), domain.MetricsInput{})
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("groups = %d, want 2", len(out))
	}
	if out[0].Slug != "flat-b" || out[1].Slug != "flat-a" {
		t.Fatalf("order = %s,%s want flat-b,flat-a", out[0].Slug, out[1].Slug)
	}
}

func TestPublicFeedFiltersAndSorts(t *testing.T) {
	t.Parallel()

	s := New(fakeReviews{rs: norm(
		raw(1, "Flat A", core.StatusPublished, false, "2024-05-01 10:00:00", fp(9)),
		raw(2, "Flat A", core.StatusPublished, true, "2024-05-02 10:00:00", fp(9)),
		raw(3, "Flat A", core.StatusDraft, false, "2024-05-03 10:00:00", fp(9)),
		raw(4, "Flat B", core.StatusPublished, false, "2024-05-04 10:00:00", fp(9)),
		raw(5, "Flat A", core.StatusPublished, false, "2024-05-05 10:00:00", fp(9)),
	)})

	out, err := s.Public(context.Background(), domain.PublicInput{Slug: "flat-a"})
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("feed len = %d, want 2", len(out))
	}
	// newest first: id 5 then id 1
	if out[0].ID != 5 || out[1].ID != 1 {
		t.Fatalf("order = %d,%d want 5,1", out[0].ID, out[1].ID)
	}
}

func TestPublicFeedUnknownSlugIsEmpty(t *testing.T) {
	t.Parallel()

	s := New(fakeReviews{rs: norm(raw(1, "Flat A", core.StatusPublished, false, "2024-05-01 10:00:00", fp(9)))})

	out, err := s.Public(context.Background(), domain.PublicInput{Slug: "nope"})
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("feed len = %d, want 0", len(out))
	}
}
