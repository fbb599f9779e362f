package service

import (
	"context"
	"errors"
	"testing"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/modkit/repokit"
	"reviewdeck/internal/services/ingest/domain"
	"reviewdeck/internal/services/ingest/repo"
)

type stubTx struct{}

func (stubTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	panic("unexpected Exec")
}
func (stubTx) Query(context.Context, string, ...any) (repokit.Rows, error) {
	panic("unexpected Query")
}
func (stubTx) QueryRow(context.Context, string, ...any) repokit.Row { panic("unexpected QueryRow") }
func (s stubTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	return fn(s)
}

// fakeUpserter records what was written and simulates existing ids
type fakeUpserter struct {
	existing map[int64]bool
	got      [][]core.Raw
	fail     error
}

func (f *fakeUpserter) Upsert(_ context.Context, rs []core.Raw) (int, int, error) {
	if f.fail != nil {
		return 0, 0, f.fail
	}
	f.got = append(f.got, rs)
	created, updated := 0, 0
	for _, r := range rs {
		if f.existing[r.ID] {
			updated++
		} else {
			created++
			f.existing[r.ID] = true
		}
	}
	return created, updated, nil
}

type fakeSource struct {
	name string
	rs   []core.Raw
	err  error
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) Fetch(context.Context) ([]core.Raw, error) {
	return f.rs, f.err
}

func newSvc(up *fakeUpserter, sources ...domain.SourcePort) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return up })
	return New(stubTx{}, binder, sources)
}

func TestSyncCountsPerSource(t *testing.T) {
	t.Parallel()

	up := &fakeUpserter{existing: map[int64]bool{1: true}}
	s := newSvc(up,
		fakeSource{name: "hostaway", rs: []core.Raw{{ID: 1}, {ID: 2}}},
		fakeSource{name: "google", rs: []core.Raw{{ID: -3}}},
	)

	out, err := s.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if out.RunID == "" {
		t.Fatalf("missing run id")
	}
	if len(out.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(out.Results))
	}

	h := out.Results[0]
	if h.Source != "hostaway" || h.Fetched != 2 || h.Created != 1 || h.Updated != 1 {
		t.Fatalf("hostaway result = %+v", h)
	}
	g := out.Results[1]
	if g.Source != "google" || g.Fetched != 1 || g.Created != 1 || g.Updated != 0 {
		t.Fatalf("google result = %+v", g)
	}
}

func TestSyncFailingSourceDoesNotAbortRun(t *testing.T) {
	t.Parallel()

	up := &fakeUpserter{existing: map[int64]bool{}}
	s := newSvc(up,
		fakeSource{name: "hostaway", err: errors.New("token request failed")},
		fakeSource{name: "google", rs: []core.Raw{{ID: -1}}},
	)

	out, err := s.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if out.Results[0].Error == "" {
		t.Fatalf("expected hostaway error recorded")
	}
	if out.Results[1].Created != 1 {
		t.Fatalf("google should still sync, got %+v", out.Results[1])
	}
}

func TestSyncUpsertErrorRecorded(t *testing.T) {
	t.Parallel()

	up := &fakeUpserter{existing: map[int64]bool{}, fail: errors.New("db down")}
	s := newSvc(up, fakeSource{name: "hostaway", rs: []core.Raw{{ID: 1}}})

	out, err := s.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if out.Results[0].Error == "" {
		t.Fatalf("expected upsert error recorded")
	}
}
