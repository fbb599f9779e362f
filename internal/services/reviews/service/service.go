// Package service contains review listing and visibility workflows
package service

import (
	"context"
	"time"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/modkit/repokit"
	perr "reviewdeck/internal/platform/errors"
	"reviewdeck/internal/services/ingest/domain"
	rdomain "reviewdeck/internal/services/reviews/domain"
	"reviewdeck/internal/services/reviews/repo"
)

// Service defines the reviews service contract
type Service interface {
	rdomain.ServicePort
}

// Svc implements the reviews service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	syncer domain.SyncerPort

	// now is a seam so filter windows are testable
	now func() time.Time
}

// New constructs a reviews service
// syncer may be nil when no upstream sources are configured
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], syncer domain.SyncerPort) *Svc {
	if db == nil {
		panic("reviews.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reviews.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		syncer: syncer,
		now:    time.Now,
	}
}

// List returns normalized reviews filtered and sorted per the input
// hidden rows are dropped unless the caller asked for them
func (s *Svc) List(ctx context.Context, in rdomain.ListInput) (rdomain.ListOutput, error) {
	norm, err := s.All(ctx)
	if err != nil {
		return rdomain.ListOutput{}, err
	}

	if !in.IncludeHidden {
		visible := make([]core.Review, 0, len(norm))
		for _, r := range norm {
			if !r.Hidden {
				visible = append(visible, r)
			}
		}
		norm = visible
	}

	out := core.ApplyAt(norm, in.Filters(), s.now())
	return rdomain.ListOutput{Total: len(out), Reviews: out}, nil
}

// All returns every stored review normalized, hidden rows included
func (s *Svc) All(ctx context.Context) ([]core.Review, error) {
	raws, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return core.Normalize(raws), nil
}

// SetVisibility persists the hidden flag and returns the updated review
func (s *Svc) SetVisibility(ctx context.Context, in rdomain.VisibilityInput) (core.Review, error) {
	if in.Hidden == nil {
		return core.Review{}, perr.InvalidArgf("hidden flag is required")
	}

	var raw core.Raw
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.SetHidden(ctx, in.ID, *in.Hidden); err != nil {
			return err
		}
		var err error
		raw, err = r.Get(ctx, in.ID)
		return err
	})
	if err != nil {
		return core.Review{}, err
	}

	norm := core.Normalize([]core.Raw{raw})
	return norm[0], nil
}

// Sync pulls from the configured upstream sources
func (s *Svc) Sync(ctx context.Context) (domain.SyncOutput, error) {
	if s.syncer == nil {
		return domain.SyncOutput{}, perr.Unavailablef("no review sources configured")
	}
	return s.syncer.Sync(ctx)
}
