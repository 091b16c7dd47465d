package reconciler

import (
	"context"

	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/store"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// compensate moves the token's adjustment transaction so that the ordinary
// transactions plus the adjustment sum to externalTruth, and sets the token
// balance to externalTruth. It returns the resulting adjustment value.
//
// The adjustment row is created lazily, on the first non-zero compensation.
// The caller must hold the token row lock and persist the token afterwards.
func compensate(ctx context.Context, tx store.Store, token *schema.Token, externalTruth int64) (int64, error) {
	sum, err := tx.SumOrdinaryTransactionValues(ctx, token.ID)
	if err != nil {
		return 0, err
	}

	adjustment, err := tx.GetAdjustmentTransaction(ctx, token.ID)
	if err != nil {
		return 0, err
	}

	var current int64
	if adjustment != nil {
		current = adjustment.Value
	}
	target := externalTruth - sum

	if target != current {
		logger.DebugCtx(ctx, "Compensating token balance",
			zap.Int64("token_id", token.ID),
			zap.Int64("ordinary_sum", sum),
			zap.Int64("external_truth", externalTruth),
			zap.Int64("adjustment_from", current),
			zap.Int64("adjustment_to", target))

		if adjustment == nil {
			adjustment = &schema.Transaction{
				TokenID: token.ID,
				Value:   target,
				Kind:    domain.TransactionKindAdjustment,
			}
			if err := tx.CreateTransaction(ctx, adjustment); err != nil {
				return 0, err
			}
		} else if err := tx.UpdateTransactionValue(ctx, adjustment.ID, target, false); err != nil {
			return 0, err
		}
	}

	token.Balance = externalTruth
	return target, nil
}
