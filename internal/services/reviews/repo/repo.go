// Package repo provides postgres access for reviews
package repo

import (
	"context"
	"errors"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/modkit/repokit"
	perr "reviewdeck/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Repo is the minimal persistence surface for reviews
type Repo interface {
	// ListAll returns every stored review with its category rows attached
	ListAll(ctx context.Context) ([]core.Raw, error)

	// Get returns one review by id
	Get(ctx context.Context, id int64) (core.Raw, error)

	// SetHidden flips the admin-owned visibility flag
	SetHidden(ctx context.Context, id int64, hidden bool) error
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

func (r *queries) ListAll(ctx context.Context) ([]core.Raw, error) {
	const sql = `
select id, type, status, rating, public_review, submitted_at, guest_name, listing_name, channel, hidden
from reviews
order by id asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPg(err, "list reviews")
	}
	defer rows.Close()

	var out []core.Raw
	index := map[int64]int{}
	for rows.Next() {
		var rr core.Raw
		if err := rows.Scan(
			&rr.ID, &rr.Type, &rr.Status, &rr.Rating, &rr.PublicReview,
			&rr.SubmittedAt, &rr.GuestName, &rr.ListingName, &rr.Channel, &rr.Hidden,
		); err != nil {
			return nil, perr.FromPg(err, "scan review")
		}
		index[rr.ID] = len(out)
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err, "iterate reviews")
	}

	if err := r.attachCategories(ctx, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *queries) attachCategories(ctx context.Context, rs []core.Raw, index map[int64]int) error {
	if len(rs) == 0 {
		return nil
	}
	const sql = `
select review_id, category, rating
from review_categories
order by review_id asc, category asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return perr.FromPg(err, "list review categories")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reviewID int64
			category string
			rating   *float64
		)
		if err := rows.Scan(&reviewID, &category, &rating); err != nil {
			return perr.FromPg(err, "scan review category")
		}
		i, ok := index[reviewID]
		if !ok {
			continue
		}
		rs[i].ReviewCategory = append(rs[i].ReviewCategory, core.CategoryScore{
			Category: core.ParseCategory(category),
			Rating:   rating,
		})
	}
	return rows.Err()
}

func (r *queries) Get(ctx context.Context, id int64) (core.Raw, error) {
	const sql = `
select id, type, status, rating, public_review, submitted_at, guest_name, listing_name, channel, hidden
from reviews
where id = $1
`
	var rr core.Raw
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&rr.ID, &rr.Type, &rr.Status, &rr.Rating, &rr.PublicReview,
		&rr.SubmittedAt, &rr.GuestName, &rr.ListingName, &rr.Channel, &rr.Hidden,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.Raw{}, perr.NotFoundf("review %d not found", id)
		}
		return core.Raw{}, perr.FromPg(err, "get review")
	}

	out := []core.Raw{rr}
	if err := r.attachCategories(ctx, out, map[int64]int{rr.ID: 0}); err != nil {
		return core.Raw{}, err
	}
	return out[0], nil
}

func (r *queries) SetHidden(ctx context.Context, id int64, hidden bool) error {
	const sql = `update reviews set hidden = $2 where id = $1`
	tag, err := r.q.Exec(ctx, sql, id, hidden)
	if err != nil {
		return perr.FromPg(err, "set review visibility")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("review %d not found", id)
	}
	return nil
}
