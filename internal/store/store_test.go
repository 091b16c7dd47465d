package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const testTenant = "tenant-a"

// buildTestToken creates a test token input
func buildTestToken(uid string) CreateTokenInput {
	return CreateTokenInput{
		TenantID:    testTenant,
		ExternalUID: uid,
	}
}

// buildTestTransaction creates an ordinary transaction at the given position
func buildTestTransaction(tokenID int64, position uint64, value int64) *schema.Transaction {
	return &schema.Transaction{
		TokenID:         tokenID,
		CounterPosition: &position,
		Value:           value,
		Kind:            domain.TransactionKindOrdinary,
	}
}

// buildTestAdjustment creates an adjustment transaction
func buildTestAdjustment(tokenID int64, value int64) *schema.Transaction {
	return &schema.Transaction{
		TokenID: tokenID,
		Value:   value,
		Kind:    domain.TransactionKindAdjustment,
	}
}

func mustCreateToken(t *testing.T, store Store, uid string) *schema.Token {
	t.Helper()
	token, err := store.CreateToken(context.Background(), buildTestToken(uid))
	require.NoError(t, err)
	require.NotNil(t, token)
	return token
}

// =============================================================================
// Test: Tokens
// =============================================================================

func testCreateToken(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("new token starts empty", func(t *testing.T) {
		token := mustCreateToken(t, store, "card-create-1")

		assert.NotZero(t, token.ID)
		assert.Equal(t, testTenant, token.TenantID)
		assert.Equal(t, int64(0), token.Balance)
		assert.Equal(t, uint64(0), token.TransactionCount)
		assert.False(t, token.Archived())
	})

	t.Run("same uid in another tenant is allowed", func(t *testing.T) {
		_, err := store.CreateToken(ctx, CreateTokenInput{TenantID: "tenant-b", ExternalUID: "card-create-1"})
		require.NoError(t, err)
	})

	t.Run("duplicate uid within tenant is rejected", func(t *testing.T) {
		mustCreateToken(t, store, "card-create-2")

		// Savepoint keeps an outer test transaction usable after the violation
		err := store.Transaction(ctx, func(tx Store) error {
			_, err := tx.CreateToken(ctx, buildTestToken("card-create-2"))
			return err
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)
	})
}

func testGetToken(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		created := mustCreateToken(t, store, "card-get-1")

		token, err := store.GetTokenByExternalUID(ctx, testTenant, "card-get-1")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, created.ID, token.ID)
	})

	t.Run("missing returns nil", func(t *testing.T) {
		token, err := store.GetTokenByExternalUID(ctx, testTenant, "card-get-missing")
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("tenant scoped", func(t *testing.T) {
		mustCreateToken(t, store, "card-get-2")

		token, err := store.GetTokenByExternalUID(ctx, "tenant-other", "card-get-2")
		require.NoError(t, err)
		assert.Nil(t, token)
	})
}

func testLockToken(t *testing.T, store Store) {
	ctx := context.Background()
	created := mustCreateToken(t, store, "card-lock-1")

	err := store.Transaction(ctx, func(tx Store) error {
		token, err := tx.LockTokenByExternalUID(ctx, testTenant, "card-lock-1")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, created.ID, token.ID)

		missing, err := tx.LockTokenByExternalUID(ctx, testTenant, "card-lock-missing")
		require.NoError(t, err)
		assert.Nil(t, missing)
		return nil
	})
	require.NoError(t, err)
}

func testUpdateTokenState(t *testing.T, store Store) {
	ctx := context.Background()
	token := mustCreateToken(t, store, "card-update-1")

	device, err := store.CreateSigningDevice(ctx, CreateSigningDeviceInput{
		TenantID:  testTenant,
		DeviceUID: "reader-update-1",
		Curve:     domain.CurveSecp256k1,
		PublicKey: []byte{0x02, 0x01},
	})
	require.NoError(t, err)

	err = store.UpdateTokenState(ctx, token.ID, UpdateTokenStateInput{
		Balance:             1500,
		TransactionCount:    7,
		DiscountPercentage:  10,
		LastSigningDeviceID: &device.ID,
	})
	require.NoError(t, err)

	updated, err := store.GetTokenByExternalUID(ctx, testTenant, "card-update-1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, int64(1500), updated.Balance)
	assert.Equal(t, uint64(7), updated.TransactionCount)
	assert.Equal(t, 10, updated.DiscountPercentage)
	require.NotNil(t, updated.LastSigningDeviceID)
	assert.Equal(t, device.ID, *updated.LastSigningDeviceID)

	t.Run("zero balance is persisted", func(t *testing.T) {
		err := store.UpdateTokenState(ctx, token.ID, UpdateTokenStateInput{TransactionCount: 7})
		require.NoError(t, err)

		updated, err := store.GetTokenByExternalUID(ctx, testTenant, "card-update-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), updated.Balance)
		assert.Nil(t, updated.LastSigningDeviceID)
	})

	t.Run("missing token", func(t *testing.T) {
		err := store.UpdateTokenState(ctx, 999999, UpdateTokenStateInput{})
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})
}

func testArchiveToken(t *testing.T, store Store) {
	ctx := context.Background()
	mustCreateToken(t, store, "card-archive-1")

	require.NoError(t, store.ArchiveToken(ctx, testTenant, "card-archive-1"))

	token, err := store.GetTokenByExternalUID(ctx, testTenant, "card-archive-1")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.True(t, token.Archived())

	// Archiving twice is a no-op
	require.NoError(t, store.ArchiveToken(ctx, testTenant, "card-archive-1"))

	err = store.ArchiveToken(ctx, testTenant, "card-archive-missing")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

// =============================================================================
// Test: Transactions
// =============================================================================

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	token := mustCreateToken(t, store, "card-tx-1")

	require.NoError(t, store.CreateTransaction(ctx, buildTestTransaction(token.ID, 2, -300)))
	require.NoError(t, store.CreateTransaction(ctx, buildTestTransaction(token.ID, 1, 1000)))
	require.NoError(t, store.CreateTransaction(ctx, buildTestAdjustment(token.ID, 50)))

	t.Run("get by position", func(t *testing.T) {
		tx, err := store.GetTransactionByPosition(ctx, token.ID, 2)
		require.NoError(t, err)
		require.NotNil(t, tx)
		assert.Equal(t, int64(-300), tx.Value)
		assert.Equal(t, uint64(2), tx.Position())
		assert.False(t, tx.HasSynced)

		missing, err := store.GetTransactionByPosition(ctx, token.ID, 3)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update value", func(t *testing.T) {
		tx, err := store.GetTransactionByPosition(ctx, token.ID, 2)
		require.NoError(t, err)

		require.NoError(t, store.UpdateTransactionValue(ctx, tx.ID, -350, true))

		tx, err = store.GetTransactionByPosition(ctx, token.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(-350), tx.Value)
		assert.True(t, tx.HasSynced)
	})

	t.Run("sum excludes adjustment", func(t *testing.T) {
		sum, err := store.SumOrdinaryTransactionValues(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(650), sum)
	})

	t.Run("sum of empty token is zero", func(t *testing.T) {
		empty := mustCreateToken(t, store, "card-tx-empty")
		sum, err := store.SumOrdinaryTransactionValues(ctx, empty.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), sum)
	})

	t.Run("adjustment", func(t *testing.T) {
		adj, err := store.GetAdjustmentTransaction(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, adj)
		assert.Nil(t, adj.CounterPosition)
		assert.Equal(t, uint64(0), adj.Position())
		assert.Equal(t, int64(50), adj.Value)
	})

	t.Run("list orders by position with adjustment last", func(t *testing.T) {
		txs, total, err := store.GetTransactionsByTokenID(ctx, token.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, txs, 3)
		assert.Equal(t, uint64(1), txs[0].Position())
		assert.Equal(t, uint64(2), txs[1].Position())
		assert.Equal(t, domain.TransactionKindAdjustment, txs[2].Kind)

		page, total, err := store.GetTransactionsByTokenID(ctx, token.ID, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, page, 1)
		assert.Equal(t, uint64(2), page[0].Position())
	})

	t.Run("duplicate position is rejected", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.CreateTransaction(ctx, buildTestTransaction(token.ID, 1, 1000))
		})
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("second adjustment is rejected", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.CreateTransaction(ctx, buildTestAdjustment(token.ID, 1))
		})
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})
}

func testTransactionRollback(t *testing.T, store Store) {
	ctx := context.Background()
	token := mustCreateToken(t, store, "card-rollback-1")
	errBoom := errors.New("boom")

	err := store.Transaction(ctx, func(tx Store) error {
		if err := tx.CreateTransaction(ctx, buildTestTransaction(token.ID, 1, 500)); err != nil {
			return err
		}
		if err := tx.UpdateTokenState(ctx, token.ID, UpdateTokenStateInput{Balance: 500, TransactionCount: 1}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	tx, err := store.GetTransactionByPosition(ctx, token.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, tx)

	reloaded, err := store.GetTokenByExternalUID(ctx, testTenant, "card-rollback-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), reloaded.Balance)
	assert.Equal(t, uint64(0), reloaded.TransactionCount)
}

// =============================================================================
// Test: Merge conflicts
// =============================================================================

func testMergeConflicts(t *testing.T, store Store) {
	ctx := context.Background()
	token := mustCreateToken(t, store, "card-conflict-1")

	recorded := buildTestTransaction(token.ID, 1, 500)
	require.NoError(t, store.CreateTransaction(ctx, recorded))

	for _, reported := range []int64{700, 900} {
		require.NoError(t, store.CreateMergeConflict(ctx, &schema.MergeConflict{
			TokenID:         token.ID,
			TransactionID:   recorded.ID,
			CounterPosition: 1,
			RecordedValue:   500,
			ReportedValue:   reported,
		}))
	}

	conflicts, err := store.GetMergeConflictsByTokenID(ctx, token.ID)
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, int64(900), conflicts[0].ReportedValue)
	assert.Equal(t, int64(700), conflicts[1].ReportedValue)
	assert.Equal(t, recorded.ID, conflicts[0].TransactionID)

	none, err := store.GetMergeConflictsByTokenID(ctx, 999999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// Test: Signing devices
// =============================================================================

func testSigningDevices(t *testing.T, store Store) {
	ctx := context.Background()

	device, err := store.CreateSigningDevice(ctx, CreateSigningDeviceInput{
		TenantID:  testTenant,
		DeviceUID: "reader-1",
		Curve:     domain.CurveP256,
		PublicKey: []byte{0x30, 0x59},
	})
	require.NoError(t, err)
	assert.False(t, device.Approved)
	assert.Nil(t, device.ApprovedAt)

	require.NoError(t, store.ApproveSigningDevice(ctx, testTenant, "reader-1"))

	got, err := store.GetSigningDevice(ctx, testTenant, "reader-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Approved)
	assert.NotNil(t, got.ApprovedAt)
	assert.Equal(t, domain.CurveP256, got.Curve)
	assert.Equal(t, []byte{0x30, 0x59}, got.PublicKey)

	t.Run("missing device", func(t *testing.T) {
		got, err := store.GetSigningDevice(ctx, testTenant, "reader-missing")
		require.NoError(t, err)
		assert.Nil(t, got)

		err = store.ApproveSigningDevice(ctx, testTenant, "reader-missing")
		assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	})

	t.Run("duplicate device uid is rejected", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			_, err := tx.CreateSigningDevice(ctx, CreateSigningDeviceInput{
				TenantID:  testTenant,
				DeviceUID: "reader-1",
				Curve:     domain.CurveSecp256k1,
				PublicKey: []byte{0x02},
			})
			return err
		})
		assert.ErrorIs(t, err, domain.ErrDeviceAlreadyExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := store.CreateSigningDevice(ctx, CreateSigningDeviceInput{
			TenantID:  testTenant,
			DeviceUID: "reader-bad-curve",
			Curve:     "ed25519",
			PublicKey: []byte{0x01},
		})
		assert.Error(t, err)

		_, err = store.CreateSigningDevice(ctx, CreateSigningDeviceInput{
			TenantID:  testTenant,
			DeviceUID: "reader-no-key",
			Curve:     domain.CurveSecp256k1,
		})
		assert.Error(t, err)
	})
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateToken", testCreateToken},
		{"GetToken", testGetToken},
		{"LockToken", testLockToken},
		{"UpdateTokenState", testUpdateTokenState},
		{"ArchiveToken", testArchiveToken},
		{"Transactions", testTransactions},
		{"TransactionRollback", testTransactionRollback},
		{"MergeConflicts", testMergeConflicts},
		{"SigningDevices", testSigningDevices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
