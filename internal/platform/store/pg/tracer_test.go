package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"SELECT\t*\nFROM\r\treviews WHERE  a =  1", "SELECT * FROM reviews WHERE a = 1"},
		{"\n\nA\n\tB  C\r\nD", " A B C D"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

func TestTracerEmitsSlowAsWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := &zlTracer{log: zerolog.New(&buf)}

	tr.OnQuery(context.Background(), QueryEvent{SQL: "select 1", ElapsedUS: 1500, Slow: false})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "select pg_sleep(1)", ElapsedUS: 900000, Slow: true})

	dec := json.NewDecoder(&buf)

	var first map[string]any
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decode first line: %v", err)
	}
	if first["level"] != "info" {
		t.Fatalf("fast query level = %v, want info", first["level"])
	}
	if first["sql"] != "select 1" {
		t.Fatalf("sql = %v", first["sql"])
	}

	var second map[string]any
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decode second line: %v", err)
	}
	if second["level"] != "warn" {
		t.Fatalf("slow query level = %v, want warn", second["level"])
	}
	if second["slow"] != true {
		t.Fatalf("slow flag = %v, want true", second["slow"])
	}
}
