package main

import (
	"os"
	"path/filepath"
	"testing"

	"booksapi/db"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureGoose_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	dir, err := configureGoose()
	require.NoError(t, err)
	assert.Equal(t, "/custom/migrations", dir)
}

func TestConfigureGoose_DefaultsToEmbedded(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	dir, err := configureGoose()
	require.NoError(t, err)
	assert.Equal(t, db.MigrationsDir, dir)
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("BOOKS_DB_DSN", "")
	assert.Equal(t, defaultDSN, databaseDSN())

	t.Setenv("BOOKS_DB_DSN", "postgres://db/other")
	assert.Equal(t, "postgres://db/other", databaseDSN())
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")
	require.NoError(t, os.WriteFile(p, []byte("BOOKS_DB_DSN=from_file\n"), 0644))

	t.Setenv("BOOKS_DB_DSN", "from_env")

	cwd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	loadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("BOOKS_DB_DSN"))
}
