// Command reviewdeck-sync runs one sync pass against the configured
// review sources and exits, suitable for cron or a manual backfill
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"reviewdeck/internal/platform/config"
	"reviewdeck/internal/platform/logger"
	"reviewdeck/internal/platform/store"

	"reviewdeck/internal/modkit/repokit"
	"reviewdeck/internal/services/api"
	ingestrepo "reviewdeck/internal/services/ingest/repo"
	ingestsvc "reviewdeck/internal/services/ingest/service"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	pgCfg := root.Prefix("PG_")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "reviewdeck-sync",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
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

	srcs := api.Sources(root)
	if len(srcs) == 0 {
		l.Fatal().Msg("no review sources configured, set HOSTAWAY_* or GOOGLE_* credentials")
	}

	out, err := ingestsvc.New(st.PG, ingestrepo.NewPG(), srcs).Sync(ctx)
	if err != nil {
		l.Fatal().Err(err).Msg("sync failed")
	}

	failed := 0
	for _, res := range out.Results {
		ev := l.Info()
		if res.Error != "" {
			ev = l.Error().Str("error", res.Error)
			failed++
		}
		ev.Str("run_id", out.RunID).
			Str("source", res.Source).
			Int("fetched", res.Fetched).
			Int("created", res.Created).
			Int("updated", res.Updated).
			Msg("sync result")
	}
	if failed > 0 {
		os.Exit(1)
	}
}
