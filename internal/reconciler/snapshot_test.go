package reconciler_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/provenance"
)

func TestMergeSnapshot_FreshToken(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")

	result, err := f.reconciler.MergeSnapshot(context.Background(),
		f.snapshot("card-1", 3, []int64{-500, -300, 1000}, 200))
	require.NoError(t, err)

	assert.Equal(t, uint64(3), result.Token.TransactionCount)
	assert.Equal(t, int64(200), result.Token.Balance)
	assert.Equal(t, int64(0), result.Adjustment)
	require.Len(t, result.Transactions, 3)
	assert.Equal(t, uint64(3), result.Transactions[0].Position())
	assert.True(t, result.Transactions[0].HasSynced)

	assert.Equal(t, map[uint64]int64{3: -500, 2: -300, 1: 1000}, f.positions("card-1"))
	assert.Equal(t, int64(0), f.adjustment("card-1"))

	token := f.token("card-1")
	assert.Equal(t, uint64(3), token.TransactionCount)
	assert.Equal(t, int64(200), token.Balance)
	require.NotNil(t, token.LastSigningDeviceID)
	assert.Equal(t, f.device.ID, *token.LastSigningDeviceID)

	// No adjustment row is created when nothing needs compensating
	adj, err := f.store.GetAdjustmentTransaction(context.Background(), token.ID)
	require.NoError(t, err)
	assert.Nil(t, adj)

	f.assertBalanced("card-1")
}

func TestMergeSnapshot_FollowUpWindow(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")
	ctx := context.Background()

	_, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 3, []int64{-500, -300, 1000}, 200))
	require.NoError(t, err)

	result, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 4, []int64{-150, -500, -300}, 50))
	require.NoError(t, err)

	assert.Equal(t, uint64(4), result.Token.TransactionCount)
	assert.Equal(t, int64(50), result.Token.Balance)
	assert.Equal(t, int64(0), result.Adjustment)
	assert.Equal(t, map[uint64]int64{4: -150, 3: -500, 2: -300, 1: 1000}, f.positions("card-1"))
	f.assertBalanced("card-1")
}

func TestMergeSnapshot_StaleCounter(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")
	ctx := context.Background()

	_, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 4, []int64{-150, -500, -300, 1000}, 50))
	require.NoError(t, err)
	before := f.capture("card-1")

	_, err = f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 2, []int64{-300, 1000}, 700))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStaleState)
	assert.Equal(t, domain.KindStaleState, domain.KindOf(err))

	var stale *domain.StaleStateError
	require.True(t, errors.As(err, &stale))
	assert.Equal(t, uint64(2), stale.ReportedCounter)
	assert.Equal(t, uint64(4), stale.KnownCounter)

	assert.Equal(t, before, f.capture("card-1"))
}

func TestMergeSnapshot_SameCounterOnlyCompensates(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")
	ctx := context.Background()

	_, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 3, []int64{-500, -300, 1000}, 200))
	require.NoError(t, err)

	t.Run("identical report is idempotent", func(t *testing.T) {
		before := f.capture("card-1")

		_, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 3, []int64{-500, -300, 1000}, 200))
		require.NoError(t, err)

		after := f.capture("card-1")
		assert.Equal(t, before.Token.Balance, after.Token.Balance)
		assert.Equal(t, before.Token.TransactionCount, after.Token.TransactionCount)
		require.Len(t, after.Transactions, len(before.Transactions))
		for i := range before.Transactions {
			assert.Equal(t, before.Transactions[i].ID, after.Transactions[i].ID)
			assert.Equal(t, before.Transactions[i].Value, after.Transactions[i].Value)
		}
	})

	t.Run("different balance moves the adjustment", func(t *testing.T) {
		result, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 3, []int64{-500}, 230))
		require.NoError(t, err)

		assert.Equal(t, int64(30), result.Adjustment)
		assert.Equal(t, int64(230), f.token("card-1").Balance)
		assert.Equal(t, uint64(3), f.token("card-1").TransactionCount)
		assert.Equal(t, int64(30), f.adjustment("card-1"))
		f.assertBalanced("card-1")
	})

	t.Run("moving back to zero keeps a single adjustment row", func(t *testing.T) {
		result, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 3, nil, 200))
		require.NoError(t, err)

		assert.Equal(t, int64(0), result.Adjustment)
		assert.Equal(t, int64(0), f.adjustment("card-1"))
		f.assertBalanced("card-1")
	})
}

func TestMergeSnapshot_Compensation(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")
	ctx := context.Background()

	// Positions 1 and 2 fall outside the window; the adjustment absorbs them
	result, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 5, []int64{-20, -30}, 950))
	require.NoError(t, err)

	assert.Equal(t, int64(1000), result.Adjustment)
	assert.Equal(t, map[uint64]int64{5: -20, 4: -30}, f.positions("card-1"))
	assert.Equal(t, int64(1000), f.adjustment("card-1"))
	f.assertBalanced("card-1")

	// A later window that covers the missing history shrinks the adjustment
	result, err = f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 5, []int64{-20, -30, 0, -100, 1100}, 950))
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Adjustment)
	assert.Equal(t, int64(950), f.token("card-1").Balance)
	f.assertBalanced("card-1")
}

func TestMergeSnapshot_WindowLongerThanCounter(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")

	result, err := f.reconciler.MergeSnapshot(context.Background(),
		f.snapshot("card-1", 2, []int64{-5, 50, 999, 999}, 45))
	require.NoError(t, err)

	assert.Len(t, result.Transactions, 2)
	assert.Equal(t, map[uint64]int64{2: -5, 1: 50}, f.positions("card-1"))
	assert.Equal(t, int64(0), result.Adjustment)
	f.assertBalanced("card-1")
}

func TestMergeSnapshot_ZeroCounter(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")

	result, err := f.reconciler.MergeSnapshot(context.Background(), f.snapshot("card-1", 0, []int64{100}, 0))
	require.NoError(t, err)

	assert.Empty(t, result.Transactions)
	assert.Empty(t, f.positions("card-1"))
	assert.Equal(t, uint64(0), f.token("card-1").TransactionCount)
}

func TestMergeSnapshot_ConflictAborts(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")
	ctx := context.Background()

	_, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 3, []int64{-500, -300, 1000}, 200))
	require.NoError(t, err)
	before := f.capture("card-1")

	_, err = f.reconciler.MergeSnapshot(ctx, f.snapshot("card-1", 4, []int64{-10, -400}, 190))
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	var conflict *domain.TransactionConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(3), conflict.CounterPosition)
	assert.Equal(t, int64(-500), conflict.RecordedValue)
	assert.Equal(t, int64(-400), conflict.ReportedValue)

	// Position 4 was written before the conflict and rolled back with it
	assert.Equal(t, before, f.capture("card-1"))
}

func TestMergeSnapshot_UpdatesDiscount(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")

	report := f.snapshot("card-1", 1, []int64{500}, 500)
	report.DiscountPercentage = 15
	report.Signature = f.sign(provenance.NewSnapshotPayload(report))

	result, err := f.reconciler.MergeSnapshot(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, 15, result.Token.DiscountPercentage)
	assert.Equal(t, 15, f.token("card-1").DiscountPercentage)
}

func TestMergeSnapshot_Rejections(t *testing.T) {
	f := newFixture(t)
	f.createToken("card-1")
	ctx := context.Background()

	t.Run("tampered report", func(t *testing.T) {
		report := f.snapshot("card-1", 1, []int64{500}, 500)
		report.Balance = 5000

		_, err := f.reconciler.MergeSnapshot(ctx, report)
		assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
		assert.Equal(t, uint64(0), f.token("card-1").TransactionCount)
		assert.Empty(t, f.positions("card-1"))
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-missing", 1, []int64{500}, 500))
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
		assert.Equal(t, domain.KindUnknownToken, domain.KindOf(err))
	})

	t.Run("archived token", func(t *testing.T) {
		f.createToken("card-archived")
		require.NoError(t, f.store.ArchiveToken(ctx, tenantID, "card-archived"))

		_, err := f.reconciler.MergeSnapshot(ctx, f.snapshot("card-archived", 1, []int64{500}, 500))
		assert.ErrorIs(t, err, domain.ErrTokenArchived)
	})

	t.Run("invalid report", func(t *testing.T) {
		report := f.snapshot("card-1", 1, []int64{500}, 500)
		report.DiscountPercentage = 101

		_, err := f.reconciler.MergeSnapshot(ctx, report)
		assert.ErrorIs(t, err, domain.ErrInvalidReport)

		_, err = f.reconciler.MergeSnapshot(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidReport)
	})
}

func TestMergeSnapshot_ConcurrentMergesSerialize(t *testing.T) {
	f := newPooledFixture(t, openSQLiteLedger(t))
	f.createToken("card-1")
	ctx := context.Background()

	reports := []*domainReport{
		{report: f.snapshot("card-1", 1, []int64{1000}, 1000)},
		{report: f.snapshot("card-1", 2, []int64{-200, 1000}, 800)},
		{report: f.snapshot("card-1", 3, []int64{-300, -200, 1000}, 500)},
	}

	var wg sync.WaitGroup
	for _, r := range reports {
		wg.Add(1)
		go func(r *domainReport) {
			defer wg.Done()
			_, r.err = f.reconciler.MergeSnapshot(ctx, r.report)
		}(r)
	}
	wg.Wait()

	for _, r := range reports {
		if r.err != nil {
			// Losing a race against a newer report is the only acceptable failure
			assert.ErrorIs(t, r.err, domain.ErrStaleState)
		}
	}
	assert.NoError(t, reports[2].err, "the newest report can never be stale")

	token := f.token("card-1")
	assert.Equal(t, uint64(3), token.TransactionCount)
	assert.Equal(t, int64(500), token.Balance)
	assert.Equal(t, map[uint64]int64{3: -300, 2: -200, 1: 1000}, f.positions("card-1"))
	f.assertBalanced("card-1")
}

type domainReport struct {
	report *domain.SnapshotReport
	err    error
}
