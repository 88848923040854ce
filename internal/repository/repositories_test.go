package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a named in-memory sqlite database shared across the
// connection pool, so concurrent access in tests sees one database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	return db
}

func setupRepositories(t *testing.T) Repositories {
	t.Helper()
	return NewRepositories(setupTestDB(t))
}

func testContext() context.Context {
	return context.Background()
}

func TestNewRepositoriesMigratesAndSeeds(t *testing.T) {
	repositories := setupRepositories(t)

	candidates, err := repositories.Candidate().List(testContext())
	require.NoError(t, err)
	require.Len(t, candidates, 3)
}
