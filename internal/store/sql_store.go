package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

const defaultTransactionsPageSize = 100

type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore creates a new store backed by a gorm connection (PostgreSQL or SQLite)
func NewSQLStore(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

// Transaction runs fn inside a single database transaction
func (s *sqlStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&sqlStore{db: tx})
	})
}

// forUpdate adds SELECT ... FOR UPDATE where the dialect supports row locks.
// SQLite has a single writer per database, which already serializes the transaction.
func (s *sqlStore) forUpdate(q *gorm.DB) *gorm.DB {
	if IsSQLite(s.db) {
		return q
	}
	return q.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateToken issues a new token with balance 0 and counter 0
func (s *sqlStore) CreateToken(ctx context.Context, input CreateTokenInput) (*schema.Token, error) {
	token := schema.Token{
		TenantID:           input.TenantID,
		ExternalUID:        input.ExternalUID,
		DiscountPercentage: input.DiscountPercentage,
	}

	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&token).Error
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTokenAlreadyExists, input.ExternalUID)
		}
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &token, nil
}

// GetTokenByExternalUID retrieves a token by its external uid within a tenant
func (s *sqlStore) GetTokenByExternalUID(ctx context.Context, tenantID, externalUID string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND external_uid = ?", tenantID, externalUID).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &token, nil
}

// LockTokenByExternalUID retrieves a token with an exclusive row lock held until the
// enclosing transaction ends
func (s *sqlStore) LockTokenByExternalUID(ctx context.Context, tenantID, externalUID string) (*schema.Token, error) {
	var token schema.Token
	err := s.forUpdate(s.db.WithContext(ctx)).
		Where("tenant_id = ? AND external_uid = ?", tenantID, externalUID).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock token: %w", err)
	}

	return &token, nil
}

// UpdateTokenState persists the mutable reconciliation fields of a token
func (s *sqlStore) UpdateTokenState(ctx context.Context, tokenID int64, input UpdateTokenStateInput) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("id = ?", tokenID).
		Updates(map[string]interface{}{
			"balance":                input.Balance,
			"transaction_count":      input.TransactionCount,
			"discount_percentage":    input.DiscountPercentage,
			"last_signing_device_id": input.LastSigningDeviceID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update token state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}

	return nil
}

// ArchiveToken retires a token. Archiving an archived token is a no-op.
func (s *sqlStore) ArchiveToken(ctx context.Context, tenantID, externalUID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("tenant_id = ? AND external_uid = ? AND archived_at IS NULL", tenantID, externalUID).
		Update("archived_at", time.Now().UTC())
	if result.Error != nil {
		return fmt.Errorf("failed to archive token: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	token, err := s.GetTokenByExternalUID(ctx, tenantID, externalUID)
	if err != nil {
		return err
	}
	if token == nil {
		return fmt.Errorf("%w: %s", domain.ErrTokenNotFound, externalUID)
	}

	return nil
}

// GetTransactionByPosition retrieves the ordinary transaction occupying a counter position
func (s *sqlStore) GetTransactionByPosition(ctx context.Context, tokenID int64, position uint64) (*schema.Transaction, error) {
	var transaction schema.Transaction
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND counter_position = ? AND kind = ?", tokenID, position, domain.TransactionKindOrdinary).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &transaction, nil
}

// CreateTransaction inserts a transaction
func (s *sqlStore) CreateTransaction(ctx context.Context, transaction *schema.Transaction) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// UpdateTransactionValue sets the value and synced flag of a transaction
func (s *sqlStore) UpdateTransactionValue(ctx context.Context, transactionID int64, value int64, hasSynced bool) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("id = ?", transactionID).
		Updates(map[string]interface{}{
			"value":      value,
			"has_synced": hasSynced,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("transaction %d not found", transactionID)
	}

	return nil
}

// GetAdjustmentTransaction retrieves the adjustment transaction of a token
func (s *sqlStore) GetAdjustmentTransaction(ctx context.Context, tokenID int64) (*schema.Transaction, error) {
	var transaction schema.Transaction
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND kind = ?", tokenID, domain.TransactionKindAdjustment).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get adjustment transaction: %w", err)
	}

	return &transaction, nil
}

// SumOrdinaryTransactionValues sums the values of all ordinary transactions of a token
func (s *sqlStore) SumOrdinaryTransactionValues(ctx context.Context, tokenID int64) (int64, error) {
	var sum int64
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Select("CAST(COALESCE(SUM(value), 0) AS BIGINT)").
		Where("token_id = ? AND kind = ?", tokenID, domain.TransactionKindOrdinary).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return sum, nil
}

// GetTransactionsByTokenID retrieves transactions of a token ordered by counter position,
// with the adjustment transaction last
func (s *sqlStore) GetTransactionsByTokenID(ctx context.Context, tokenID int64, limit, offset int) ([]schema.Transaction, uint64, error) {
	if limit <= 0 {
		limit = defaultTransactionsPageSize
	}

	var total int64
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("token_id = ?", tokenID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var transactions []schema.Transaction
	err = s.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("CASE WHEN counter_position IS NULL THEN 1 ELSE 0 END").
		Order("counter_position ASC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, uint64(total), nil //nolint:gosec,G115
}

// CreateMergeConflict records a skipped conflicting report
func (s *sqlStore) CreateMergeConflict(ctx context.Context, conflict *schema.MergeConflict) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(conflict).Error; err != nil {
		return fmt.Errorf("failed to create merge conflict: %w", err)
	}
	return nil
}

// GetMergeConflictsByTokenID retrieves recorded conflicts of a token, newest first
func (s *sqlStore) GetMergeConflictsByTokenID(ctx context.Context, tokenID int64) ([]schema.MergeConflict, error) {
	var conflicts []schema.MergeConflict
	err := s.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("id DESC").
		Find(&conflicts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get merge conflicts: %w", err)
	}

	return conflicts, nil
}

// GetSigningDevice retrieves a registered signing device
func (s *sqlStore) GetSigningDevice(ctx context.Context, tenantID, deviceUID string) (*schema.SigningDevice, error) {
	var device schema.SigningDevice
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND device_uid = ?", tenantID, deviceUID).
		First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get signing device: %w", err)
	}

	return &device, nil
}

// CreateSigningDevice registers a signing device key; it starts unapproved
func (s *sqlStore) CreateSigningDevice(ctx context.Context, input CreateSigningDeviceInput) (*schema.SigningDevice, error) {
	if !domain.IsValidCurve(input.Curve) {
		return nil, fmt.Errorf("unsupported curve: %s", input.Curve)
	}
	if len(input.PublicKey) == 0 {
		return nil, errors.New("public key is required")
	}

	device := schema.SigningDevice{
		TenantID:  input.TenantID,
		DeviceUID: input.DeviceUID,
		Curve:     input.Curve,
		PublicKey: input.PublicKey,
	}
	if err := s.db.WithContext(ctx).Create(&device).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDeviceAlreadyExists, input.DeviceUID)
		}
		return nil, fmt.Errorf("failed to create signing device: %w", err)
	}

	return &device, nil
}

// ApproveSigningDevice marks a device key as trusted
func (s *sqlStore) ApproveSigningDevice(ctx context.Context, tenantID, deviceUID string) error {
	now := time.Now().UTC()
	result := s.db.WithContext(ctx).
		Model(&schema.SigningDevice{}).
		Where("tenant_id = ? AND device_uid = ?", tenantID, deviceUID).
		Updates(map[string]interface{}{
			"approved":    true,
			"approved_at": now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to approve signing device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, deviceUID)
	}

	return nil
}
