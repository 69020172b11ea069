package database

import (
	"os"
	"path/filepath"
	"testing"

	"aaquestions/config"
	"aaquestions/internal/seed"
	"aaquestions/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func sqliteConfig(path string) *config.Config {
	return &config.Config{
		DBDriver:       config.DriverSQLite,
		DBPath:         path,
		DBReadOnly:     true,
		DBMaxOpenConns: 4,
		DBSlowQueryMS:  200,
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:questions.db?mode=ro", SQLiteDSN("questions.db", true))
	assert.Equal(t, "file:/tmp/q.db?mode=rw", SQLiteDSN("/tmp/q.db", false))
	assert.Equal(t, "file:odd%3fname%23.db?mode=ro", SQLiteDSN("odd?name#.db", true))
	assert.Equal(t, ":memory:", SQLiteDSN(":memory:", true))
	assert.Equal(t, "file:x.db?cache=shared", SQLiteDSN("file:x.db?cache=shared", true))
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "aa",
		DBPassword: "secret",
		DBName:     "questions",
	}
	assert.Equal(t, "host=db port=5433 user=aa password=secret dbname=questions sslmode=disable", PostgresDSN(cfg))

	cfg.DBSSLMode = "require"
	assert.Contains(t, PostgresDSN(cfg), "sslmode=require")

	cfg.DatabaseURL = "postgresql://aa@db:5432/questions"
	assert.Equal(t, "postgresql://aa@db:5432/questions", PostgresDSN(cfg))
}

func TestStore_LazyOpenSharesHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.db")
	require.NoError(t, seed.CreateDatabase(path, nil))

	store := NewStore(sqliteConfig(path), nil)
	defer store.Close()

	assert.Equal(t, config.DriverSQLite, store.Dialect())

	first, err := store.Conn()
	require.NoError(t, err)
	second, err := store.Conn()
	require.NoError(t, err)
	assert.Same(t, first, second)

	sqlDB, err := first.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Equal(t, "sqlite", store.Dialect())
}

func TestStore_ReadOnlyRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.db")
	require.NoError(t, seed.CreateDatabase(path, nil))

	store := NewStore(sqliteConfig(path), nil)
	defer store.Close()

	db, err := store.Conn()
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Table("users").Count(&n).Error)
	assert.Zero(t, n)

	err = db.Exec("INSERT INTO users (id, fname, lname) VALUES (1, 'a', 'b')").Error
	assert.Error(t, err)
}

func TestStore_OpenFailureIsNotRetried(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	store := NewStore(sqliteConfig(path), nil)

	_, err := store.Conn()
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeConnection))

	// The file appearing later does not revive the store.
	require.NoError(t, seed.CreateDatabase(path, nil))
	_, again := store.Conn()
	assert.Same(t, err, again)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestStore_Close(t *testing.T) {
	store := NewStore(sqliteConfig(filepath.Join(t.TempDir(), "never.db")), nil)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())

	_, err := store.Conn()
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.True(t, models.HasCode(err, models.CodeInternal))
}

func TestFromDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	store := FromDB(db)
	got, err := store.Conn()
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.Equal(t, "sqlite", store.Dialect())
	assert.NoError(t, store.Close())
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "mysql"}, nil)
	assert.True(t, models.HasCode(err, models.CodeConnection))
}

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{DBDriver: config.DriverPostgres, DBMaxOpenConns: 10}
	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)

	cfg.DBDriver = config.DriverSQLite
	require.NoError(t, configurePool(db, cfg))
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
