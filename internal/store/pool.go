package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	DEFAULT_MAX_OPEN_CONNS     = 20
	DEFAULT_MAX_IDLE_CONNS     = 5
	DEFAULT_CONN_MAX_LIFETIME  = 5 * time.Minute
	DEFAULT_CONN_MAX_IDLE_TIME = 10 * time.Minute
)

// PoolConfig sizes the connection pool behind the ledger store.
// Each merge holds one connection for the lifetime of its transaction, so
// MaxOpenConns bounds how many merges can wait on token row locks at once.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Normalized fills zero fields with defaults and keeps idle connections within the open limit
func (c PoolConfig) Normalized() PoolConfig {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = DEFAULT_MAX_OPEN_CONNS
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = DEFAULT_MAX_IDLE_CONNS
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = DEFAULT_CONN_MAX_LIFETIME
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = DEFAULT_CONN_MAX_IDLE_TIME
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		c.MaxIdleConns = c.MaxOpenConns
	}
	return c
}

// ConfigureConnectionPool applies the normalized pool settings to the underlying *sql.DB
// and returns the values in effect
func ConfigureConnectionPool(db *gorm.DB, cfg PoolConfig) (PoolConfig, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return PoolConfig{}, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	cfg = cfg.Normalized()
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return cfg, nil
}
