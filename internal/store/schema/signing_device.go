package schema

import (
	"time"

	"github.com/offline-pay/token-ledger/internal/domain"
)

// SigningDevice represents the signing_devices table - the registry of reporting device keys
type SigningDevice struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TenantID identifies the organisation the device reports for
	TenantID string `gorm:"column:tenant_id;not null;type:text;uniqueIndex:idx_signing_devices_tenant_uid,priority:1"`
	// DeviceUID is the device identity within the tenant
	DeviceUID string `gorm:"column:device_uid;not null;type:text;uniqueIndex:idx_signing_devices_tenant_uid,priority:2"`
	// Curve is the elliptic curve of PublicKey
	Curve domain.Curve `gorm:"column:curve;not null;type:text"`
	// PublicKey is a compressed or uncompressed SEC1 point (secp256k1) or PKIX DER (p256)
	PublicKey []byte `gorm:"column:public_key;not null"`
	// Approved is set out-of-band; signatures of unapproved devices are never trusted
	Approved bool `gorm:"column:approved;not null;default:false"`
	// ApprovedAt is the timestamp of approval
	ApprovedAt *time.Time `gorm:"column:approved_at"`
	// CreatedAt is the timestamp when the device was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the SigningDevice model
func (SigningDevice) TableName() string {
	return "signing_devices"
}
