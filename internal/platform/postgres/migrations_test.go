package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesEmbedded(t *testing.T) {
	names, err := MigrationFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_notes.sql"}, names)

	for _, name := range names {
		body, err := migrationsFS.ReadFile(migrationsDir + "/" + name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMigrationsParse(t *testing.T) {
	goose.SetBaseFS(migrationsFS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, int64(1), migrations[0].Version)
	assert.Equal(t, int64(2), migrations[1].Version)
}

func TestMigrateRejectsBadCommands(t *testing.T) {
	ctx := context.Background()

	err := Migrate(ctx, nil, nil, "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")

	err = Migrate(ctx, nil, nil, MigrateUpTo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one version")

	err = Migrate(ctx, nil, nil, MigrateUpTo, "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid migration version")
}

func TestGooseLogger(t *testing.T) {
	var buf bytes.Buffer
	l := gooseLogger{log: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Printf("applied %d", 2)
	l.Fatalf("broken %s", "file")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"applied 2"`)
	assert.Contains(t, lines[1], `"level":"ERROR"`)
}
