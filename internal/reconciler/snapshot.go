package reconciler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/store"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// MergeSnapshot merges a full token state read from the physical token
func (r *reconciler) MergeSnapshot(ctx context.Context, report *domain.SnapshotReport) (*SnapshotResult, error) {
	if report == nil || !report.Valid() {
		return nil, fmt.Errorf("%w: malformed snapshot report", domain.ErrInvalidReport)
	}

	device, err := r.verifier.VerifySnapshot(ctx, report)
	if err != nil {
		return nil, err
	}

	start := r.clock.Now()
	var result *SnapshotResult
	err = r.withRetry(ctx, "merge_snapshot", func() error {
		res, err := r.mergeSnapshot(ctx, report, device)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Merged token snapshot",
		zap.String("tenant_id", report.TenantID),
		zap.String("token_uid", report.TokenUID),
		zap.String("device_uid", report.DeviceUID),
		zap.Uint64("counter", result.Token.TransactionCount),
		zap.Int64("balance", result.Token.Balance),
		zap.Int64("adjustment", result.Adjustment),
		zap.Duration("duration", r.clock.Since(start)))

	r.publish(ctx, &domain.LedgerEvent{
		EventType:  domain.LedgerEventTokenReconciled,
		TenantID:   report.TenantID,
		TokenUID:   report.TokenUID,
		DeviceUID:  report.DeviceUID,
		Counter:    result.Token.TransactionCount,
		Balance:    result.Token.Balance,
		Adjustment: result.Adjustment,
	})

	return result, nil
}

// mergeSnapshot runs one attempt of a snapshot merge in a single transaction
func (r *reconciler) mergeSnapshot(ctx context.Context, report *domain.SnapshotReport, device *schema.SigningDevice) (*SnapshotResult, error) {
	var result *SnapshotResult

	err := r.store.Transaction(ctx, func(tx store.Store) error {
		token, err := tx.LockTokenByExternalUID(ctx, report.TenantID, report.TokenUID)
		if err != nil {
			return err
		}
		if token == nil {
			return fmt.Errorf("%w: %s", domain.ErrTokenNotFound, report.TokenUID)
		}
		if token.Archived() {
			return fmt.Errorf("%w: %s", domain.ErrTokenArchived, report.TokenUID)
		}

		if report.Counter < token.TransactionCount {
			logger.WarnCtx(ctx, "Rejected stale token snapshot",
				zap.String("tenant_id", report.TenantID),
				zap.String("token_uid", report.TokenUID),
				zap.String("device_uid", report.DeviceUID),
				zap.Uint64("reported_counter", report.Counter),
				zap.Uint64("known_counter", token.TransactionCount))
			return &domain.StaleStateError{
				TokenUID:        report.TokenUID,
				ReportedCounter: report.Counter,
				KnownCounter:    token.TransactionCount,
			}
		}

		// Most recent value sits at the reported counter, older ones below it
		transactions := make([]schema.Transaction, 0, len(report.RecentValues))
		for i, value := range report.RecentValues {
			if uint64(i) >= report.Counter {
				break
			}
			position := report.Counter - uint64(i)

			transaction, _, err := mergeTransaction(ctx, tx, token.ID, position, value, true)
			if err != nil {
				return err
			}
			transactions = append(transactions, *transaction)
		}

		adjustment, err := compensate(ctx, tx, token, report.Balance)
		if err != nil {
			return err
		}

		token.TransactionCount = report.Counter
		token.DiscountPercentage = report.DiscountPercentage
		token.LastSigningDeviceID = &device.ID

		err = tx.UpdateTokenState(ctx, token.ID, store.UpdateTokenStateInput{
			Balance:             token.Balance,
			TransactionCount:    token.TransactionCount,
			DiscountPercentage:  token.DiscountPercentage,
			LastSigningDeviceID: token.LastSigningDeviceID,
		})
		if err != nil {
			return err
		}

		result = &SnapshotResult{
			Token:        *token,
			Transactions: transactions,
			Adjustment:   adjustment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
