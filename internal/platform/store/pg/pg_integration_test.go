//go:build integration_pg
// +build integration_pg

package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestOpenAndBasicQueriesIntegration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	client, err := Open(ctx, Config{URL: dsn}, nil, func(pc *pgxpool.Config) {
		if pc.ConnConfig.RuntimeParams == nil {
			pc.ConnConfig.RuntimeParams = map[string]string{}
		}
		pc.ConnConfig.RuntimeParams["application_name"] = "reviewdeck-pg-integration"
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	if err := client.Pool.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	_, err = client.Pool.Exec(ctx, `
		CREATE TEMP TABLE reviews_smoke (
			id BIGINT PRIMARY KEY,
			listing TEXT NOT NULL,
			rating DOUBLE PRECISION
		)`)
	if err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	_, err = client.Pool.Exec(ctx,
		`INSERT INTO reviews_smoke (id, listing, rating) VALUES ($1, $2, $3)`,
		7453, "2B N1 A - 29 Shoreditch Heights", 9.5)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	var listing string
	var rating float64
	err = client.Pool.QueryRow(ctx,
		`SELECT listing, rating FROM reviews_smoke WHERE id = $1`, 7453).
		Scan(&listing, &rating)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if listing != "2B N1 A - 29 Shoreditch Heights" || rating != 9.5 {
		t.Fatalf("unexpected row: %q %v", listing, rating)
	}
}
