package book

import (
	"context"
	"os"
	"testing"
	"time"

	"booksapi/db"
	"booksapi/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to BOOKS_TEST_DB_DSN, applies migrations and empties
// the books table. Tests are skipped when no database is available.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("BOOKS_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping integration test: BOOKS_TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, dsn, 4)
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	sqlDB := stdlib.OpenDBFromPool(pool)
	t.Cleanup(func() { _ = sqlDB.Close() })
	goose.SetBaseFS(db.Migrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, sqlDB, db.MigrationsDir))

	_, err = pool.Exec(ctx, "DELETE FROM books")
	require.NoError(t, err)
	return pool
}

func TestPostgresRepo_CreateThenGet(t *testing.T) {
	repo := NewPostgresRepo(setupTestDB(t), 2*time.Second)
	ctx := context.Background()

	created, err := repo.Create(ctx, gulag)
	require.NoError(t, err)
	assert.Equal(t, gulag, created)

	got, err := repo.GetByISBN(ctx, gulag.ISBN)
	require.NoError(t, err)
	assert.Equal(t, gulag, got)
}

func TestPostgresRepo_CreateDuplicate(t *testing.T) {
	repo := NewPostgresRepo(setupTestDB(t), 2*time.Second)
	ctx := context.Background()

	_, err := repo.Create(ctx, gulag)
	require.NoError(t, err)

	_, err = repo.Create(ctx, gulag)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPostgresRepo_ListIsOrdered(t *testing.T) {
	repo := NewPostgresRepo(setupTestDB(t), 2*time.Second)
	ctx := context.Background()

	// Insert out of order; listing sorts by title.
	_, err := repo.Create(ctx, odyssey)
	require.NoError(t, err)
	_, err = repo.Create(ctx, gulag)
	require.NoError(t, err)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Book{gulag, odyssey}, books)
}

func TestPostgresRepo_ListEmpty(t *testing.T) {
	repo := NewPostgresRepo(setupTestDB(t), 2*time.Second)

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestPostgresRepo_Update(t *testing.T) {
	repo := NewPostgresRepo(setupTestDB(t), 2*time.Second)
	ctx := context.Background()

	_, err := repo.Create(ctx, odyssey)
	require.NoError(t, err)

	revised := odyssey
	revised.Author = "Homer, Robert Fagles"
	revised.Pages = 543
	revised.Year = 2000

	updated, err := repo.Update(ctx, odyssey.ISBN, revised)
	require.NoError(t, err)
	assert.Equal(t, revised, updated)

	got, err := repo.GetByISBN(ctx, odyssey.ISBN)
	require.NoError(t, err)
	assert.Equal(t, revised, got)

	_, err = repo.Update(ctx, "999999999", revised)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresRepo_Delete(t *testing.T) {
	repo := NewPostgresRepo(setupTestDB(t), 2*time.Second)
	ctx := context.Background()

	_, err := repo.Create(ctx, odyssey)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, odyssey.ISBN))

	_, err = repo.GetByISBN(ctx, odyssey.ISBN)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, odyssey.ISBN), ErrNotFound)
}
