// Command reviewdeck-seed applies the schema and optionally loads a JSON
// fixture shaped like a Hostaway reviews payload
//
// existing rows keep their hidden flag, so reseeding is safe after
// managers have curated visibility
package main

import (
	"context"
	"encoding/json"
	"os"

	"reviewdeck/internal/platform/config"
	"reviewdeck/internal/platform/logger"
	"reviewdeck/internal/platform/store"

	"reviewdeck/internal/adapters/source/hostaway"
	"reviewdeck/internal/modkit/repokit"
	ingestrepo "reviewdeck/internal/services/ingest/repo"

	"github.com/joho/godotenv"
)

const schema = `
create table if not exists reviews (
	id            bigint primary key,
	type          text not null default '',
	status        text not null default '',
	rating        double precision,
	public_review text not null default '',
	submitted_at  text not null default '',
	guest_name    text not null default '',
	listing_name  text not null default '',
	channel       text not null default '',
	hidden        boolean not null default false
);

create table if not exists review_categories (
	review_id bigint not null references reviews(id) on delete cascade,
	category  text not null,
	rating    double precision
);

create index if not exists review_categories_review_id_idx
	on review_categories (review_id, category);
`

func main() {
	_ = godotenv.Load()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	pgCfg := root.Prefix("PG_")
	seedCfg := root.Prefix("SEED_")

	ctx := context.Background()

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "reviewdeck-seed",
			PG: store.PGConfig{
				Enabled:  true,
				URL:      pgCfg.MustString("DBURL"),
				MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 2)),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st)

	if _, err := st.PG.Exec(ctx, schema); err != nil {
		l.Fatal().Err(err).Msg("schema apply failed")
	}
	l.Info().Msg("schema applied")

	path := seedCfg.MayString("FILE", "")
	if path == "" {
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		l.Fatal().Err(err).Str("file", path).Msg("fixture read failed")
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		l.Fatal().Err(err).Str("file", path).Msg("fixture is not valid json")
	}
	records := hostaway.MapPayload(payload)
	if len(records) == 0 {
		l.Warn().Str("file", path).Msg("fixture contains no usable reviews")
		return
	}

	binder := ingestrepo.NewPG()
	var created, updated int
	err = st.PG.Tx(ctx, func(q store.RowQuerier) error {
		created, updated, err = binder.Bind(q).Upsert(ctx, records)
		return err
	})
	if err != nil {
		l.Fatal().Err(err).Msg("seed upsert failed")
	}
	l.Info().
		Str("file", path).
		Int("created", created).
		Int("updated", updated).
		Msg("fixture loaded")
}
