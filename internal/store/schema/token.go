package schema

import (
	"time"
)

// Token represents the tokens table - the ledger-side mirror of a physical prepaid token
type Token struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TenantID identifies the organisation that issued the token
	TenantID string `gorm:"column:tenant_id;not null;type:text;uniqueIndex:idx_tokens_tenant_uid,priority:1"`
	// ExternalUID is the identity printed or encoded on the token, unique within a tenant
	ExternalUID string `gorm:"column:external_uid;not null;type:text;uniqueIndex:idx_tokens_tenant_uid,priority:2"`
	// Balance is the authoritative balance in minor currency units; always equals the sum of all
	// transaction values for this token, adjustment included
	Balance int64 `gorm:"column:balance;not null;default:0"`
	// TransactionCount is the highest counter value ever accepted for this token; never lowered
	TransactionCount uint64 `gorm:"column:transaction_count;not null;default:0"`
	// DiscountPercentage is the discount last reported from the token
	DiscountPercentage int `gorm:"column:discount_percentage;not null;default:0"`
	// LastSigningDeviceID references the device that last reported successfully
	LastSigningDeviceID *int64 `gorm:"column:last_signing_device_id"`
	// ArchivedAt is set when the token is retired
	ArchivedAt *time.Time `gorm:"column:archived_at"`
	// CreatedAt is the timestamp when the token was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp of the last merge
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	// Associations
	Transactions      []Transaction  `gorm:"foreignKey:TokenID;constraint:OnDelete:RESTRICT"`
	LastSigningDevice *SigningDevice `gorm:"foreignKey:LastSigningDeviceID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}

// Archived reports whether the token has been retired
func (t *Token) Archived() bool {
	return t.ArchivedAt != nil
}
