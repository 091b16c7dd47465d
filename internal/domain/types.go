package domain

import (
	"time"
)

// TransactionKind distinguishes genuine token movements from the compensation slot
type TransactionKind string

const (
	// TransactionKindOrdinary is a purchase or top-up occupying a counter position
	TransactionKindOrdinary TransactionKind = "ordinary"
	// TransactionKindAdjustment is the single per-token compensation entry
	TransactionKindAdjustment TransactionKind = "adjustment"
)

// Curve identifies the elliptic curve a signing device key lives on
type Curve string

const (
	// CurveSecp256k1 is the curve used by most card-reader secure elements
	CurveSecp256k1 Curve = "secp256k1"
	// CurveP256 is NIST P-256
	CurveP256 Curve = "p256"
)

// IsValidCurve checks if a curve is supported
func IsValidCurve(curve Curve) bool {
	return curve == CurveSecp256k1 || curve == CurveP256
}

// SnapshotReport is a full token state as read from the physical token by a signing device
type SnapshotReport struct {
	TenantID           string  `json:"tenant_id"`           // issuing organisation
	TokenUID           string  `json:"token_uid"`           // external uid printed or encoded on the token
	Counter            uint64  `json:"counter"`             // token-local transaction counter
	RecentValues       []int64 `json:"recent_values"`       // last K transaction values, most recent first
	Balance            int64   `json:"balance"`             // balance computed by the token itself
	DiscountPercentage int     `json:"discount_percentage"` // discount stored on the token
	DeviceUID          string  `json:"device_uid"`          // reporting device identity within the tenant
	Signature          []byte  `json:"-"`                   // 64-byte r||s signature over the canonical payload
}

// Valid checks the structural constraints of a snapshot report
func (r *SnapshotReport) Valid() bool {
	if r.TenantID == "" || r.TokenUID == "" || r.DeviceUID == "" {
		return false
	}
	if r.DiscountPercentage < 0 || r.DiscountPercentage > 100 {
		return false
	}
	if len(r.RecentValues) > MAX_RECENT_VALUES {
		return false
	}
	if r.Counter > MAX_SAFE_INTEGER || !safeInteger(r.Balance) {
		return false
	}
	for _, v := range r.RecentValues {
		if !safeInteger(v) {
			return false
		}
	}
	return true
}

// BatchEntry is one transaction descriptor recovered from a device's offline storage
type BatchEntry struct {
	TokenUID        string `json:"token_uid"`
	CounterPosition uint64 `json:"counter_position"`
	Value           int64  `json:"value"`
	Signature       []byte `json:"-"`
}

// BatchReport is a set of transaction descriptors from one device, possibly many tokens
type BatchReport struct {
	TenantID  string       `json:"tenant_id"`
	DeviceUID string       `json:"device_uid"`
	Entries   []BatchEntry `json:"entries"`
}

// Valid checks the structural constraints of a batch report
func (r *BatchReport) Valid() bool {
	if r.TenantID == "" || r.DeviceUID == "" {
		return false
	}
	if len(r.Entries) == 0 || len(r.Entries) > MAX_BATCH_ENTRIES {
		return false
	}
	for _, e := range r.Entries {
		if e.TokenUID == "" || e.CounterPosition < 1 {
			return false
		}
		if e.CounterPosition > MAX_SAFE_INTEGER || !safeInteger(e.Value) {
			return false
		}
	}
	return true
}

func safeInteger(v int64) bool {
	return v >= -MAX_SAFE_INTEGER && v <= MAX_SAFE_INTEGER
}

// LedgerEventType represents the type of ledger event published after a commit
type LedgerEventType string

const (
	// LedgerEventTokenReconciled is emitted once per token touched by a committed merge
	LedgerEventTokenReconciled LedgerEventType = "token.reconciled"
	// LedgerEventTransactionConflict is emitted for every batch entry skipped on conflict
	LedgerEventTransactionConflict LedgerEventType = "transaction.conflict"
)

// LedgerEvent is the message published to the event bus
type LedgerEvent struct {
	EventID         string          `json:"event_id"`
	EventType       LedgerEventType `json:"event_type"`
	TenantID        string          `json:"tenant_id"`
	TokenUID        string          `json:"token_uid"`
	DeviceUID       string          `json:"device_uid"`
	Counter         uint64          `json:"counter,omitempty"`          // token.reconciled only
	Balance         int64           `json:"balance,omitempty"`          // token.reconciled only
	Adjustment      int64           `json:"adjustment,omitempty"`       // token.reconciled only
	CounterPosition uint64          `json:"counter_position,omitempty"` // transaction.conflict only
	RecordedValue   int64           `json:"recorded_value,omitempty"`   // transaction.conflict only
	ReportedValue   int64           `json:"reported_value,omitempty"`   // transaction.conflict only
	OccurredAt      time.Time       `json:"occurred_at"`
}
