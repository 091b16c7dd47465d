package schema

import (
	"time"
)

// MergeConflict represents the merge_conflicts table - audit trail of batch entries skipped
// because they contradicted an already confirmed transaction
type MergeConflict struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the token whose transaction was contradicted
	TokenID int64 `gorm:"column:token_id;not null;index:idx_merge_conflicts_token_id"`
	// TransactionID references the confirmed transaction
	TransactionID int64 `gorm:"column:transaction_id;not null"`
	// CounterPosition is the contested counter slot
	CounterPosition uint64 `gorm:"column:counter_position;not null"`
	// RecordedValue is the confirmed value kept in the ledger
	RecordedValue int64 `gorm:"column:recorded_value;not null"`
	// ReportedValue is the rejected incoming value
	ReportedValue int64 `gorm:"column:reported_value;not null"`
	// SigningDeviceID references the device that submitted the rejected value
	SigningDeviceID *int64 `gorm:"column:signing_device_id"`
	// CreatedAt is the timestamp when the conflict was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the MergeConflict model
func (MergeConflict) TableName() string {
	return "merge_conflicts"
}
