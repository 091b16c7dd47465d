package schema

import (
	"time"

	"github.com/offline-pay/token-ledger/internal/domain"
)

// Transaction represents the transactions table - one ledger movement of a token
//
// Ordinary transactions occupy exactly one counter position; the (token_id, counter_position)
// pair is unique. The adjustment transaction has no counter position and is unique per token
// through the partial index idx_transactions_one_adjustment created by Migrate.
type Transaction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the owning token
	TokenID int64 `gorm:"column:token_id;not null;uniqueIndex:idx_transactions_token_position,priority:1"`
	// CounterPosition is the token-local sequence number this transaction occupies (nil for adjustment)
	CounterPosition *uint64 `gorm:"column:counter_position;uniqueIndex:idx_transactions_token_position,priority:2"`
	// Value is the signed amount in minor currency units (positive top-up, negative spend)
	Value int64 `gorm:"column:value;not null"`
	// HasSynced is true once the token's own memory corroborated the value
	HasSynced bool `gorm:"column:has_synced;not null;default:false"`
	// Kind distinguishes ordinary movements from the compensation slot
	Kind domain.TransactionKind `gorm:"column:kind;not null;type:text"`
	// CreatedAt is the timestamp when the counter position was first referenced
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp of the last merge into this row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Position returns the counter position, zero for the adjustment transaction
func (t *Transaction) Position() uint64 {
	if t.CounterPosition == nil {
		return 0
	}
	return *t.CounterPosition
}
