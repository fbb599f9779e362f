package pg

import (
	"context"
	"errors"
	"testing"

	"reviewdeck/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpenRejectsBadURL(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "not a dsn"}, nil, nil); err == nil {
		t.Fatalf("expected parse error for malformed url")
	}
}

func TestOpenAppliesConfigBeforeDialing(t *testing.T) {
	testkit.Serial(t)

	var got *pgxpool.Config
	boom := errors.New("no dialing in unit tests")
	testkit.Swap(t, &newPool, func(_ context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
		got = cfg
		return nil, boom
	})

	var mutated bool
	_, err := Open(
		context.Background(),
		Config{URL: "postgres://u:p@localhost:5432/reviews?sslmode=disable", MaxConns: 7},
		nil,
		func(c *pgxpool.Config) { mutated = true },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the seam error", err)
	}
	if got == nil || got.MaxConns != 7 {
		t.Fatalf("pool config not applied: %+v", got)
	}
	if !mutated {
		t.Fatalf("pool config mutator was not invoked")
	}
	if got.ConnConfig.Database != "reviews" {
		t.Fatalf("database = %q, want reviews", got.ConnConfig.Database)
	}
}
