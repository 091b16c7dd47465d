package reconciler

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/logger"
)

// publish stamps and publishes a committed ledger event.
// Failures are logged only; the merge is already committed.
func (r *reconciler) publish(ctx context.Context, event *domain.LedgerEvent) {
	now := r.clock.Now()
	event.EventID = ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	event.OccurredAt = now

	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish ledger event: %w", err),
			zap.String("event_id", event.EventID),
			zap.String("event_type", string(event.EventType)),
			zap.String("tenant_id", event.TenantID),
			zap.String("token_uid", event.TokenUID))
	}
}
