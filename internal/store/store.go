package store

import (
	"context"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// Store defines the interface for database operations
//
// Lookups return (nil, nil) when the record does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Transaction runs fn inside a single database transaction with a store bound to it.
	// Row locks taken through the bound store are held until fn returns.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// CreateToken issues a new token with balance 0 and counter 0
	CreateToken(ctx context.Context, input CreateTokenInput) (*schema.Token, error)
	// GetTokenByExternalUID retrieves a token by its external uid within a tenant
	GetTokenByExternalUID(ctx context.Context, tenantID, externalUID string) (*schema.Token, error)
	// LockTokenByExternalUID retrieves a token and holds an exclusive row lock on it
	LockTokenByExternalUID(ctx context.Context, tenantID, externalUID string) (*schema.Token, error)
	// UpdateTokenState persists the mutable reconciliation fields of a token
	UpdateTokenState(ctx context.Context, tokenID int64, input UpdateTokenStateInput) error
	// ArchiveToken retires a token
	ArchiveToken(ctx context.Context, tenantID, externalUID string) error

	// GetTransactionByPosition retrieves the ordinary transaction occupying a counter position
	GetTransactionByPosition(ctx context.Context, tokenID int64, position uint64) (*schema.Transaction, error)
	// CreateTransaction inserts a transaction
	CreateTransaction(ctx context.Context, transaction *schema.Transaction) error
	// UpdateTransactionValue sets the value and synced flag of a transaction
	UpdateTransactionValue(ctx context.Context, transactionID int64, value int64, hasSynced bool) error
	// GetAdjustmentTransaction retrieves the adjustment transaction of a token
	GetAdjustmentTransaction(ctx context.Context, tokenID int64) (*schema.Transaction, error)
	// SumOrdinaryTransactionValues sums the values of all ordinary transactions of a token
	SumOrdinaryTransactionValues(ctx context.Context, tokenID int64) (int64, error)
	// GetTransactionsByTokenID retrieves transactions of a token ordered by counter position
	GetTransactionsByTokenID(ctx context.Context, tokenID int64, limit, offset int) ([]schema.Transaction, uint64, error)

	// CreateMergeConflict records a skipped conflicting report
	CreateMergeConflict(ctx context.Context, conflict *schema.MergeConflict) error
	// GetMergeConflictsByTokenID retrieves recorded conflicts of a token, newest first
	GetMergeConflictsByTokenID(ctx context.Context, tokenID int64) ([]schema.MergeConflict, error)

	// GetSigningDevice retrieves a registered signing device
	GetSigningDevice(ctx context.Context, tenantID, deviceUID string) (*schema.SigningDevice, error)
	// CreateSigningDevice registers a signing device key; it starts unapproved
	CreateSigningDevice(ctx context.Context, input CreateSigningDeviceInput) (*schema.SigningDevice, error)
	// ApproveSigningDevice marks a device key as trusted
	ApproveSigningDevice(ctx context.Context, tenantID, deviceUID string) error
}

// CreateTokenInput represents the input for issuing a token
type CreateTokenInput struct {
	TenantID           string
	ExternalUID        string
	DiscountPercentage int
}

// UpdateTokenStateInput represents the reconciliation fields written by a merge
type UpdateTokenStateInput struct {
	Balance             int64
	TransactionCount    uint64
	DiscountPercentage  int
	LastSigningDeviceID *int64
}

// CreateSigningDeviceInput represents the input for registering a signing device
type CreateSigningDeviceInput struct {
	TenantID  string
	DeviceUID string
	Curve     domain.Curve
	PublicKey []byte
}
