package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/notequiz-api/internal/platform/postgres"
	"github.com/phrazzld/notequiz-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// Environment variables consulted for the test database, in order.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvTestDBURL   = "NOTEQUIZ_TEST_DB_URL"
)

// TestTimeout bounds connection and migration setup.
const TestTimeout = 30 * time.Second

// GetTestDatabaseURL returns the first non-empty test database URL.
func GetTestDatabaseURL() string {
	for _, key := range []string{EnvDatabaseURL, EnvTestDBURL} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// Open connects to the test database and applies all migrations.
func Open(ctx context.Context) (*sql.DB, error) {
	url := GetTestDatabaseURL()
	if url == "" {
		return nil, errors.New("no test database URL configured")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, errors.New(redact.Error(err))
	}

	ctx, cancel := context.WithTimeout(ctx, TestTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.New(redact.Error(err))
	}
	if err := postgres.Migrate(ctx, db, nil, postgres.MigrateUp); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// GetTestDBWithT opens the test database for t, skipping the test when no
// database is configured. The connection is closed on cleanup.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if !IsIntegrationTestEnvironment() {
		t.Skip("no test database configured; set " + EnvDatabaseURL)
	}

	db, err := Open(context.Background())
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// WithTx runs fn in a transaction that is always rolled back, so tests can
// write freely without affecting each other.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
