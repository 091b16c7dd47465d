package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// Dialect identifiers supported by the store
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// sqlitePragmas are appended to SQLite DSNs that don't set them
var sqlitePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

// Open opens a gorm connection for the given driver
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("empty dsn")
	}

	cfg := &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	switch strings.ToLower(driver) {
	case DialectPostgres, "":
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return db, nil
	case DialectSQLite:
		db, err := gorm.Open(sqlite.Open(ensureSQLitePragmas(dsn)), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// IsSQLite reports whether the connection uses SQLite
func IsSQLite(db *gorm.DB) bool {
	return db != nil && db.Dialector != nil && db.Dialector.Name() == DialectSQLite
}

// ensureSQLitePragmas adds the default pragmas when the DSN doesn't carry any
func ensureSQLitePragmas(dsn string) string {
	if strings.Contains(strings.ToLower(dsn), "_pragma=") {
		return dsn
	}

	params := make([]string, 0, len(sqlitePragmas))
	for _, p := range sqlitePragmas {
		params = append(params, "_pragma="+p)
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		dsn = "file:" + dsn
	}
	return dsn + separator + strings.Join(params, "&")
}

// Migrate creates or updates the ledger tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schema.SigningDevice{},
		&schema.Token{},
		&schema.Transaction{},
		&schema.MergeConflict{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// At most one adjustment transaction per token
	err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_one_adjustment
		ON transactions (token_id) WHERE kind = 'adjustment'`).Error
	if err != nil {
		return fmt.Errorf("failed to create adjustment index: %w", err)
	}

	return nil
}
