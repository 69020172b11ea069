package repository

import (
	"path/filepath"
	"testing"

	"aaquestions/config"
	"aaquestions/internal/database"
	"aaquestions/internal/seed"
	"aaquestions/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB creates a store backed by sqlmock through the postgres dialector.
func setupMockDB(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return database.FromDB(gormDB), mock
}

// setupFixtureStore returns a read-only store over the reference fixtures.
func setupFixtureStore(t *testing.T) *database.Store {
	t.Helper()
	fx, err := seed.DefaultFixtures()
	require.NoError(t, err)
	return setupStore(t, fx)
}

// setupStore writes fx to a temp sqlite file and returns a read-only store over it.
func setupStore(t *testing.T, fx *seed.Fixtures) *database.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.db")
	require.NoError(t, seed.CreateDatabase(path, fx))

	store := database.NewStore(&config.Config{
		DBDriver:      config.DriverSQLite,
		DBPath:        path,
		DBReadOnly:    true,
		DBSlowQueryMS: 200,
	}, nil)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func questionIDs(qs []*models.Question) []int64 {
	ids := make([]int64, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

func userIDs(us []*models.User) []int64 {
	ids := make([]int64, 0, len(us))
	for _, u := range us {
		ids = append(ids, u.ID)
	}
	return ids
}

func replyIDs(rs []*models.Reply) []int64 {
	ids := make([]int64, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}
