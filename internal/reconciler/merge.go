package reconciler

import (
	"context"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/store"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// mergeOutcome describes what mergeTransaction did to the ledger
type mergeOutcome int

const (
	// outcomeCreated means the counter position was unknown and a row was inserted
	outcomeCreated mergeOutcome = iota + 1
	// outcomeAdopted means an unconfirmed row took the reported value
	outcomeAdopted
	// outcomeUnchanged means a confirmed row already carried the reported value
	outcomeUnchanged
)

func (o mergeOutcome) String() string {
	switch o {
	case outcomeCreated:
		return "created"
	case outcomeAdopted:
		return "adopted"
	case outcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// mergeTransaction folds one reported (position, value) pair into the ledger.
// The caller must hold the token row lock.
//
// A confirmed row is never overwritten: a different value yields a
// *domain.TransactionConflictError carrying both values.
func mergeTransaction(ctx context.Context, tx store.Store, tokenID int64, position uint64, value int64, synced bool) (*schema.Transaction, mergeOutcome, error) {
	existing, err := tx.GetTransactionByPosition(ctx, tokenID, position)
	if err != nil {
		return nil, 0, err
	}

	if existing == nil {
		transaction := &schema.Transaction{
			TokenID:         tokenID,
			CounterPosition: &position,
			Value:           value,
			HasSynced:       synced,
			Kind:            domain.TransactionKindOrdinary,
		}
		if err := tx.CreateTransaction(ctx, transaction); err != nil {
			return nil, 0, err
		}
		return transaction, outcomeCreated, nil
	}

	if !existing.HasSynced {
		if existing.Value != value || synced {
			if err := tx.UpdateTransactionValue(ctx, existing.ID, value, synced); err != nil {
				return nil, 0, err
			}
		}
		existing.Value = value
		existing.HasSynced = synced
		return existing, outcomeAdopted, nil
	}

	if existing.Value != value {
		return existing, 0, &domain.TransactionConflictError{
			TokenID:         tokenID,
			CounterPosition: position,
			RecordedValue:   existing.Value,
			ReportedValue:   value,
		}
	}

	return existing, outcomeUnchanged, nil
}
