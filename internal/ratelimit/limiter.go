package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/logger"
)

// DEFAULT_IDLE_TTL is how long an unused bucket is kept before eviction
const DEFAULT_IDLE_TTL = 10 * time.Minute

// Config holds the per-key token bucket settings
type Config struct {
	RequestsPerSecond float64
	Burst             int
	IdleTTL           time.Duration
}

// Limiter decides whether a request for a key may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token from the bucket of key and reports whether it was available
	Allow(key string) bool
}

// keyLimiter holds one token bucket per key
type keyLimiter struct {
	config    Config
	clock     adapter.Clock
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// bucket is the rate limiting state of a single key
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter creates a keyed token bucket limiter
func NewLimiter(cfg Config, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Rate limiter initialized",
		zap.Float64("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Duration("idle_ttl", cfg.IdleTTL),
	)

	return &keyLimiter{
		config:    cfg,
		clock:     clock,
		buckets:   make(map[string]*bucket),
		lastSweep: clock.Now(),
	}, nil
}

func (l *keyLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.config.IdleTTL {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// sweep evicts buckets idle for longer than the TTL; callers hold mu
func (l *keyLimiter) sweep(now time.Time) {
	evicted := 0
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.config.IdleTTL {
			delete(l.buckets, key)
			evicted++
		}
	}
	l.lastSweep = now

	if evicted > 0 {
		logger.Debug("Evicted idle rate limit buckets",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(l.buckets)),
		)
	}
}

// validateConfig validates the configuration and fills defaults
func validateConfig(cfg *Config) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst < 1 {
		return fmt.Errorf("burst must be at least 1")
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DEFAULT_IDLE_TTL
	}
	return nil
}
