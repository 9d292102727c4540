package migration_test

import (
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/saransh1220/flowart/migrations"
	"github.com/saransh1220/flowart/pkg/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunner_DefaultLogger(t *testing.T) {
	r := migration.NewRunner(&migration.Config{
		MigrationsPath: "migrations",
		DatabaseURL:    "postgres://invalid",
	})
	require.NotNil(t, r)
}

func TestRunnerMethods_InvalidConfig(t *testing.T) {
	r := migration.NewRunner(&migration.Config{
		MigrationsPath: "migrations",
		DatabaseURL:    "bad://url",
		Logger:         slog.Default(),
	})

	assert.Error(t, r.Up())
	assert.Error(t, r.Down())
	assert.Error(t, r.Force(1))
	_, _, err := r.Version()
	assert.Error(t, err)
}

func TestAutoMigrate_InvalidConfig(t *testing.T) {
	err := migration.AutoMigrate(&migration.Config{
		Source:      migrations.FS,
		DatabaseURL: "bad://url",
		Logger:      slog.Default(),
	})
	assert.Error(t, err)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	sort.Strings(entries)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, name := range entries {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", name)
		}
	}
	assert.Equal(t, ups, downs)

	users, err := fs.ReadFile(migrations.FS, "000001_create_users.up.sql")
	require.NoError(t, err)
	for _, col := range []string{"username", "password_hash", "cover_image_url", "instagram", "followers"} {
		assert.Contains(t, string(users), col)
	}
}
