// Package repo provides postgres upserts for ingested reviews
package repo

import (
	"context"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/modkit/repokit"
	perr "reviewdeck/internal/platform/errors"
)

// Repo is the persistence surface for ingestion
type Repo interface {
	// Upsert writes a batch of source records
	// existing rows keep their admin-owned hidden flag, category rows are replaced
	Upsert(ctx context.Context, rs []core.Raw) (created, updated int, err error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Upsert(ctx context.Context, rs []core.Raw) (created, updated int, err error) {
	const upsert = `
insert into reviews (id, type, status, rating, public_review, submitted_at, guest_name, listing_name, channel, hidden)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, false)
on conflict (id) do update set
	type = excluded.type,
	status = excluded.status,
	rating = excluded.rating,
	public_review = excluded.public_review,
	submitted_at = excluded.submitted_at,
	guest_name = excluded.guest_name,
	listing_name = excluded.listing_name,
	channel = excluded.channel
returning (xmax = 0) as inserted
`
	const clearCategories = `delete from review_categories where review_id = $1`
	const addCategory = `insert into review_categories (review_id, category, rating) values ($1, $2, $3)`

	seen := map[int64]struct{}{}
	for _, rec := range rs {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}

		var inserted bool
		err = r.q.QueryRow(ctx, upsert,
			rec.ID, rec.Type, rec.Status, rec.Rating, rec.PublicReview,
			rec.SubmittedAt, rec.GuestName, rec.ListingName, rec.Channel,
		).Scan(&inserted)
		if err != nil {
			return created, updated, perr.FromPg(err, "upsert review")
		}
		if inserted {
			created++
		} else {
			updated++
		}

		if _, err = r.q.Exec(ctx, clearCategories, rec.ID); err != nil {
			return created, updated, perr.FromPg(err, "clear review categories")
		}
		for _, c := range rec.ReviewCategory {
			if _, err = r.q.Exec(ctx, addCategory, rec.ID, string(c.Category), c.Rating); err != nil {
				return created, updated, perr.FromPg(err, "insert review category")
			}
		}
	}
	return created, updated, nil
}
