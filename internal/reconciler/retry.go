package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/store"
)

// withRetry runs fn, re-running it from the start while it fails with a transient storage error.
// A semantic domain.ErrorKind is never retried, nor is any non-transient error.
// After cfg.MaxAttempts transient failures the last error is wrapped in domain.ErrTransient.
func (r *reconciler) withRetry(ctx context.Context, operation string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.cfg.InitialInterval
	b.MaxInterval = r.cfg.MaxInterval
	b.MaxElapsedTime = 0

	//nolint:gosec,G115
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.cfg.MaxAttempts-1)), ctx)

	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		err := fn()
		if err == nil {
			return nil
		}
		if domain.KindOf(err).Semantic() || !store.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Retrying after transient storage failure",
			zap.String("operation", operation),
			zap.Int("attempt", attempts),
			zap.Duration("backoff", wait),
			zap.Error(err))
	})

	if err != nil && !domain.KindOf(err).Semantic() && store.IsTransient(err) {
		return fmt.Errorf("%w: %s failed after %d attempts: %v", domain.ErrTransient, operation, attempts, err)
	}
	return err
}
