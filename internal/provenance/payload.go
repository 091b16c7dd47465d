package provenance

import (
	"crypto/sha256"
	"fmt"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/domain"
)

// SnapshotPayload is the signed content of a snapshot report
type SnapshotPayload struct {
	TenantID           string  `json:"tenant_id"`
	TokenUID           string  `json:"token_uid"`
	Counter            uint64  `json:"counter"`
	RecentValues       []int64 `json:"recent_values"`
	Balance            int64   `json:"balance"`
	DiscountPercentage int     `json:"discount_percentage"`
	DeviceUID          string  `json:"device_uid"`
}

// BatchEntryPayload is the signed content of one batch entry
type BatchEntryPayload struct {
	TenantID        string `json:"tenant_id"`
	TokenUID        string `json:"token_uid"`
	CounterPosition uint64 `json:"counter_position"`
	Value           int64  `json:"value"`
	DeviceUID       string `json:"device_uid"`
}

// NewSnapshotPayload builds the signed content of a snapshot report
func NewSnapshotPayload(r *domain.SnapshotReport) SnapshotPayload {
	values := r.RecentValues
	if values == nil {
		values = []int64{}
	}
	return SnapshotPayload{
		TenantID:           r.TenantID,
		TokenUID:           r.TokenUID,
		Counter:            r.Counter,
		RecentValues:       values,
		Balance:            r.Balance,
		DiscountPercentage: r.DiscountPercentage,
		DeviceUID:          r.DeviceUID,
	}
}

// NewBatchEntryPayload builds the signed content of one batch entry
func NewBatchEntryPayload(tenantID, deviceUID string, e domain.BatchEntry) BatchEntryPayload {
	return BatchEntryPayload{
		TenantID:        tenantID,
		TokenUID:        e.TokenUID,
		CounterPosition: e.CounterPosition,
		Value:           e.Value,
		DeviceUID:       deviceUID,
	}
}

// Digest returns the SHA-256 of the JCS canonical JSON form of payload
func Digest(jsonAdapter adapter.JSON, jcsAdapter adapter.JCS, payload interface{}) ([]byte, error) {
	raw, err := jsonAdapter.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	canonical, err := jcsAdapter.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return sum[:], nil
}
