package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts-api/internal/repository/postgres/migrations"
)

// newLazyPool builds a pool without touching the network; connections
// are only established on first use, which these tests never do.
func newLazyPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	cfg, err := pgxpool.ParseConfig("postgres://localhost:5432/accounts_test?sslmode=disable")
	require.NoError(t, err)
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestMigrateRunsEmbeddedMigrations(t *testing.T) {
	pool := newLazyPool(t)

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var called bool
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if db == nil {
			return errors.New("nil db handle")
		}
		return nil
	}

	require.NoError(t, Migrate(context.Background(), pool))
	assert.True(t, called)
}

func TestMigrateError(t *testing.T) {
	pool := newLazyPool(t)

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err := Migrate(context.Background(), pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(migrations.FS, "00001_create_users.sql")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "CREATE TABLE users")
	assert.True(t, strings.Contains(content, "email TEXT NOT NULL UNIQUE"))
}
