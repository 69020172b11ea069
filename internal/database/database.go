// Package database owns the connection to the questions database.
package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"aaquestions/config"
	"aaquestions/internal/observability"
	"aaquestions/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrStoreClosed is wrapped in an INTERNAL_ERROR returned by Conn after Close.
var ErrStoreClosed = errors.New("store is closed")

// Store owns the single handle to the questions database. The handle is
// opened on the first call to Conn and shared by every later caller. An open
// failure is kept and returned again; it is never retried.
type Store struct {
	cfg    *config.Config
	logger *observability.Logger

	mu     sync.Mutex
	opened bool
	closed bool
	db     *gorm.DB
	err    error
}

// NewStore returns an unopened store for cfg.
func NewStore(cfg *config.Config, logger *observability.Logger) *Store {
	if logger == nil {
		logger = observability.GlobalLogger
	}
	return &Store{cfg: cfg, logger: logger}
}

// FromDB wraps an already open gorm handle.
func FromDB(db *gorm.DB) *Store {
	return &Store{logger: observability.GlobalLogger, opened: true, db: db}
}

// Conn returns the shared handle, opening it on first use.
func (s *Store) Conn() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, models.NewInternalError(ErrStoreClosed)
	}
	if !s.opened {
		s.opened = true
		s.db, s.err = Connect(s.cfg, s.logger)
	}
	return s.db, s.err
}

// Dialect names the database system behind the store ("sqlite" or "postgres").
func (s *Store) Dialect() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Dialector.Name()
	}
	if s.cfg != nil {
		return s.cfg.DBDriver
	}
	return ""
}

// Close releases the handle. It is safe to call on a store that was never opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Connect opens a database connection using the provided configuration and returns the gorm DB instance.
func Connect(cfg *config.Config, logger *observability.Logger) (*gorm.DB, error) {
	if cfg == nil {
		return nil, models.NewConnectionError(errors.New("no configuration"))
	}
	if logger == nil {
		logger = observability.GlobalLogger
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		logger.Info("Connecting to SQLite database", slog.String("path", cfg.DBPath), slog.Bool("read_only", cfg.DBReadOnly))
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath, cfg.DBReadOnly))
	case config.DriverPostgres:
		logger.Info("Connecting to PostgreSQL database", slog.String("host", cfg.DBHost), slog.String("name", cfg.DBName))
		dialector = postgres.Open(PostgresDSN(cfg))
	default:
		return nil, models.NewConnectionError(fmt.Errorf("unsupported driver %q", cfg.DBDriver))
	}

	gormLogger := NewGormLogger(logger.Logger, time.Duration(cfg.DBSlowQueryMS)*time.Millisecond)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		logger.Error("Failed to connect to the database", slog.String("error", err.Error()))
		return nil, models.NewConnectionError(err)
	}

	if err := configurePool(db, cfg); err != nil {
		return nil, models.NewConnectionError(err)
	}

	logger.Info("Database connected successfully", slog.String("driver", cfg.DBDriver))
	return db, nil
}

// configurePool limits sqlite to one connection so every statement is
// serialized through a single owner.
func configurePool(db *gorm.DB, cfg *config.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	maxOpen := cfg.DBMaxOpenConns
	if cfg.DBDriver == config.DriverSQLite || maxOpen < 1 {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	return nil
}

var sqlitePathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// SQLiteDSN builds a URI filename for path. Both modes refuse to create a
// missing file, so the schema has to exist beforehand.
func SQLiteDSN(path string, readOnly bool) string {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return path
	}
	mode := "rw"
	if readOnly {
		mode = "ro"
	}
	return fmt.Sprintf("file:%s?mode=%s", sqlitePathEscaper.Replace(path), mode)
}

// PostgresDSN returns DATABASE_URL when set, otherwise a key/value
// connection string built from the individual settings.
func PostgresDSN(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	sslMode := cfg.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		sslMode,
	)
}
