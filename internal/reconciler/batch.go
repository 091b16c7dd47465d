package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/store"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// batchToken tracks one locked token during a batch merge
type batchToken struct {
	token *schema.Token
	// knownCount is transaction_count as read under lock
	knownCount uint64
	// baseline starts at the locked balance and grows by every new transaction past knownCount
	baseline int64
	// highest is the highest accepted counter position, at least knownCount
	highest uint64
}

// MergeBatch merges individual transaction reports spanning many tokens
func (r *reconciler) MergeBatch(ctx context.Context, report *domain.BatchReport) (*BatchResult, error) {
	if report == nil || !report.Valid() {
		return nil, fmt.Errorf("%w: malformed batch report", domain.ErrInvalidReport)
	}

	device, err := r.verifier.VerifyBatch(ctx, report)
	if err != nil {
		return nil, err
	}

	start := r.clock.Now()
	var result *BatchResult
	err = r.withRetry(ctx, "merge_batch", func() error {
		res, err := r.mergeBatch(ctx, report, device)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Merged transaction batch",
		zap.String("tenant_id", report.TenantID),
		zap.String("device_uid", report.DeviceUID),
		zap.Int("entries", len(report.Entries)),
		zap.Int("accepted", len(result.Transactions)),
		zap.Int("conflicts", len(result.Conflicts)),
		zap.Int("tokens", len(result.Tokens)),
		zap.Duration("duration", r.clock.Since(start)))

	for _, conflict := range result.Conflicts {
		r.publish(ctx, &domain.LedgerEvent{
			EventType:       domain.LedgerEventTransactionConflict,
			TenantID:        report.TenantID,
			TokenUID:        conflict.TokenUID,
			DeviceUID:       report.DeviceUID,
			CounterPosition: conflict.CounterPosition,
			RecordedValue:   conflict.RecordedValue,
			ReportedValue:   conflict.ReportedValue,
		})
	}
	for _, token := range result.Tokens {
		r.publish(ctx, &domain.LedgerEvent{
			EventType:  domain.LedgerEventTokenReconciled,
			TenantID:   report.TenantID,
			TokenUID:   token.ExternalUID,
			DeviceUID:  report.DeviceUID,
			Counter:    token.TransactionCount,
			Balance:    token.Balance,
			Adjustment: result.Adjustments[token.ExternalUID],
		})
	}

	return result, nil
}

// mergeBatch runs one attempt of a batch merge in a single transaction
func (r *reconciler) mergeBatch(ctx context.Context, report *domain.BatchReport, device *schema.SigningDevice) (*BatchResult, error) {
	uids := distinctTokenUIDs(report.Entries)
	var result *BatchResult

	err := r.store.Transaction(ctx, func(tx store.Store) error {
		// Lock in a stable order so that overlapping batches cannot deadlock
		tokens := make(map[string]*batchToken, len(uids))
		for _, uid := range uids {
			token, err := tx.LockTokenByExternalUID(ctx, report.TenantID, uid)
			if err != nil {
				return err
			}
			if token == nil {
				return fmt.Errorf("%w: %s", domain.ErrTokenNotFound, uid)
			}
			if token.Archived() {
				return fmt.Errorf("%w: %s", domain.ErrTokenArchived, uid)
			}
			tokens[uid] = &batchToken{
				token:      token,
				knownCount: token.TransactionCount,
				baseline:   token.Balance,
				highest:    token.TransactionCount,
			}
		}

		res := &BatchResult{
			Transactions: make([]schema.Transaction, 0, len(report.Entries)),
			Adjustments:  make(map[string]int64, len(uids)),
		}

		for _, entry := range report.Entries {
			bt := tokens[entry.TokenUID]

			transaction, outcome, err := mergeTransaction(ctx, tx, bt.token.ID, entry.CounterPosition, entry.Value, true)
			if err != nil {
				var conflictErr *domain.TransactionConflictError
				if !errors.As(err, &conflictErr) {
					return err
				}
				if err := r.recordConflict(ctx, tx, transaction, conflictErr, device, entry.TokenUID); err != nil {
					return err
				}
				res.Conflicts = append(res.Conflicts, Conflict{
					TokenUID:        entry.TokenUID,
					CounterPosition: conflictErr.CounterPosition,
					RecordedValue:   conflictErr.RecordedValue,
					ReportedValue:   conflictErr.ReportedValue,
				})
				continue
			}

			if outcome == outcomeCreated && entry.CounterPosition > bt.knownCount {
				bt.baseline += entry.Value
			}
			if entry.CounterPosition > bt.highest {
				bt.highest = entry.CounterPosition
			}
			res.Transactions = append(res.Transactions, *transaction)
		}

		for _, uid := range uids {
			bt := tokens[uid]

			adjustment, err := compensate(ctx, tx, bt.token, bt.baseline)
			if err != nil {
				return err
			}

			bt.token.TransactionCount = bt.highest
			bt.token.LastSigningDeviceID = &device.ID

			err = tx.UpdateTokenState(ctx, bt.token.ID, store.UpdateTokenStateInput{
				Balance:             bt.token.Balance,
				TransactionCount:    bt.token.TransactionCount,
				DiscountPercentage:  bt.token.DiscountPercentage,
				LastSigningDeviceID: bt.token.LastSigningDeviceID,
			})
			if err != nil {
				return err
			}

			res.Tokens = append(res.Tokens, *bt.token)
			res.Adjustments[uid] = adjustment
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// recordConflict persists the audit row of a skipped batch entry
func (r *reconciler) recordConflict(ctx context.Context, tx store.Store, recorded *schema.Transaction, conflict *domain.TransactionConflictError, device *schema.SigningDevice, tokenUID string) error {
	logger.WarnCtx(ctx, "Skipped conflicting batch entry",
		zap.String("token_uid", tokenUID),
		zap.Uint64("counter_position", conflict.CounterPosition),
		zap.Int64("recorded_value", conflict.RecordedValue),
		zap.Int64("reported_value", conflict.ReportedValue),
		zap.String("device_uid", device.DeviceUID))

	err := tx.CreateMergeConflict(ctx, &schema.MergeConflict{
		TokenID:         conflict.TokenID,
		TransactionID:   recorded.ID,
		CounterPosition: conflict.CounterPosition,
		RecordedValue:   conflict.RecordedValue,
		ReportedValue:   conflict.ReportedValue,
		SigningDeviceID: &device.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to record merge conflict: %w", err)
	}
	return nil
}

// distinctTokenUIDs returns the sorted set of token uids referenced by entries
func distinctTokenUIDs(entries []domain.BatchEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	uids := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.TokenUID]; ok {
			continue
		}
		seen[e.TokenUID] = struct{}{}
		uids = append(uids, e.TokenUID)
	}
	sort.Strings(uids)
	return uids
}
