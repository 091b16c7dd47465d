package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// initSQLiteTestDB opens a fresh migrated database file for each test
func initSQLiteTestDB(t *testing.T) Store {
	path := filepath.Join(t.TempDir(), "ledger.db")

	db, err := Open(DialectSQLite, path, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewSQLStore(db)
}

// cleanupSQLiteTestDB is a no-op; the database file lives in the test temp dir
func cleanupSQLiteTestDB(t *testing.T) {}

// TestSQLiteStore runs all store tests against SQLite
func TestSQLiteStore(t *testing.T) {
	RunStoreTests(t, initSQLiteTestDB, cleanupSQLiteTestDB)
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	db, err := Open(DialectSQLite, path, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
	assert.True(t, IsSQLite(db))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "root@tcp(localhost)/ledger", logger.Silent)
	assert.Error(t, err)

	_, err = Open(DialectSQLite, "  ", logger.Silent)
	assert.Error(t, err)
}

func TestEnsureSQLitePragmas(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "plain path",
			dsn:  "/tmp/ledger.db",
			want: "file:/tmp/ledger.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)",
		},
		{
			name: "file uri with params",
			dsn:  "file:ledger.db?cache=shared",
			want: "file:ledger.db?cache=shared&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)",
		},
		{
			name: "explicit pragmas are kept",
			dsn:  "file:ledger.db?_pragma=busy_timeout(100)",
			want: "file:ledger.db?_pragma=busy_timeout(100)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ensureSQLitePragmas(tt.dsn))
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", fmt.Errorf("failed to lock token: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), true},
		{"sqlite table locked", errors.New("database table is locked"), true},
		{"other", errors.New("syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: tokens.tenant_id, tokens.external_uid (2067)")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "40001"}))
	assert.False(t, IsUniqueViolation(nil))
}

func TestPoolConfig_Normalized(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := PoolConfig{}.Normalized()
		assert.Equal(t, PoolConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: 10 * time.Minute,
		}, cfg)
	})

	t.Run("idle clamped to open", func(t *testing.T) {
		cfg := PoolConfig{MaxOpenConns: 4, MaxIdleConns: 10, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: time.Minute}.Normalized()
		assert.Equal(t, 4, cfg.MaxOpenConns)
		assert.Equal(t, 4, cfg.MaxIdleConns)
		assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
	})

	t.Run("negative values fall back to defaults", func(t *testing.T) {
		cfg := PoolConfig{MaxOpenConns: -1, ConnMaxIdleTime: -time.Second}.Normalized()
		assert.Equal(t, DEFAULT_MAX_OPEN_CONNS, cfg.MaxOpenConns)
		assert.Equal(t, DEFAULT_CONN_MAX_IDLE_TIME, cfg.ConnMaxIdleTime)
	})
}

func TestConfigureConnectionPool(t *testing.T) {
	db, err := Open(DialectSQLite, filepath.Join(t.TempDir(), "ledger.db"), logger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg, err := ConfigureConnectionPool(db, PoolConfig{MaxOpenConns: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxOpenConns)
	assert.Equal(t, 3, cfg.MaxIdleConns)
	assert.Equal(t, 3, sqlDB.Stats().MaxOpenConnections)
}
