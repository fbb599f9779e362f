// Package service contains the upstream sync workflow
package service

import (
	"context"

	"reviewdeck/internal/modkit/repokit"
	"reviewdeck/internal/platform/logger"
	"reviewdeck/internal/services/ingest/domain"
	"reviewdeck/internal/services/ingest/repo"

	"github.com/google/uuid"
)

// Service defines the ingest service contract
type Service interface {
	domain.SyncerPort
}

// Svc implements the ingest service
type Svc struct {
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	sources []domain.SourcePort
}

// New constructs an ingest service over the given sources
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], sources []domain.SourcePort) *Svc {
	if db == nil {
		panic("ingest.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ingest.Service requires a non nil Repo binder")
	}
	return &Svc{binder: binder, db: db, sources: sources}
}

// Sync pulls every configured source and upserts its records
// a failing source is reported in its result, it does not abort the run
func (s *Svc) Sync(ctx context.Context) (domain.SyncOutput, error) {
	out := domain.SyncOutput{RunID: uuid.NewString()}
	log := logger.C(ctx).With().Str("run_id", out.RunID).Logger()

	for _, src := range s.sources {
		res := domain.SourceResult{Source: src.Name()}

		raws, err := src.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("source fetch failed")
			res.Error = err.Error()
			out.Results = append(out.Results, res)
			continue
		}
		res.Fetched = len(raws)

		err = s.db.Tx(ctx, func(q repokit.Queryer) error {
			created, updated, err := s.binder.Bind(q).Upsert(ctx, raws)
			res.Created, res.Updated = created, updated
			return err
		})
		if err != nil {
			log.Error().Err(err).Str("source", src.Name()).Msg("source upsert failed")
			res.Error = err.Error()
		} else {
			log.Info().
				Str("source", src.Name()).
				Int("fetched", res.Fetched).
				Int("created", res.Created).
				Int("updated", res.Updated).
				Msg("source synced")
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
