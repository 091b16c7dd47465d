package dto

import (
	"time"

	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/reconciler"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// TokenResponse represents the ledger state of a token
type TokenResponse struct {
	TenantID           string     `json:"tenant_id"`
	TokenUID           string     `json:"token_uid"`
	Balance            int64      `json:"balance"`
	TransactionCount   uint64     `json:"transaction_count"`
	DiscountPercentage int        `json:"discount_percentage"`
	ArchivedAt         *time.Time `json:"archived_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TransactionResponse represents one ledger row
type TransactionResponse struct {
	CounterPosition *uint64                `json:"counter_position"` // null for the adjustment
	Value           int64                  `json:"value"`
	HasSynced       bool                   `json:"has_synced"`
	Kind            domain.TransactionKind `json:"kind"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// TransactionListResponse represents a page of ledger rows
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        uint64                `json:"total"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}

// SnapshotResponse represents the committed outcome of a snapshot merge
type SnapshotResponse struct {
	Token        TokenResponse         `json:"token"`
	Transactions []TransactionResponse `json:"transactions"`
	Adjustment   int64                 `json:"adjustment"`
}

// BatchResponse represents the committed outcome of a batch merge
type BatchResponse struct {
	Accepted    int                   `json:"accepted"`
	Conflicts   []reconciler.Conflict `json:"conflicts"`
	Tokens      []TokenResponse       `json:"tokens"`
	Adjustments map[string]int64      `json:"adjustments"`
}

// MergeConflictResponse represents a recorded conflict audit row
type MergeConflictResponse struct {
	CounterPosition uint64    `json:"counter_position"`
	RecordedValue   int64     `json:"recorded_value"`
	ReportedValue   int64     `json:"reported_value"`
	CreatedAt       time.Time `json:"created_at"`
}

// MergeConflictListResponse represents the recorded conflicts of a token
type MergeConflictListResponse struct {
	Conflicts []MergeConflictResponse `json:"conflicts"`
}

// DeviceResponse represents a registered signing device
type DeviceResponse struct {
	TenantID   string       `json:"tenant_id"`
	DeviceUID  string       `json:"device_uid"`
	Curve      domain.Curve `json:"curve"`
	Approved   bool         `json:"approved"`
	ApprovedAt *time.Time   `json:"approved_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// MapTokenToDTO maps a token row to its response
func MapTokenToDTO(token *schema.Token) TokenResponse {
	return TokenResponse{
		TenantID:           token.TenantID,
		TokenUID:           token.ExternalUID,
		Balance:            token.Balance,
		TransactionCount:   token.TransactionCount,
		DiscountPercentage: token.DiscountPercentage,
		ArchivedAt:         token.ArchivedAt,
		CreatedAt:          token.CreatedAt,
		UpdatedAt:          token.UpdatedAt,
	}
}

// MapTransactionsToDTO maps ledger rows to their responses
func MapTransactionsToDTO(transactions []schema.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = TransactionResponse{
			CounterPosition: t.CounterPosition,
			Value:           t.Value,
			HasSynced:       t.HasSynced,
			Kind:            t.Kind,
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
		}
	}
	return out
}

// MapSnapshotResultToDTO maps a snapshot merge result to its response
func MapSnapshotResultToDTO(result *reconciler.SnapshotResult) *SnapshotResponse {
	return &SnapshotResponse{
		Token:        MapTokenToDTO(&result.Token),
		Transactions: MapTransactionsToDTO(result.Transactions),
		Adjustment:   result.Adjustment,
	}
}

// MapBatchResultToDTO maps a batch merge result to its response
func MapBatchResultToDTO(result *reconciler.BatchResult) *BatchResponse {
	tokens := make([]TokenResponse, len(result.Tokens))
	for i := range result.Tokens {
		tokens[i] = MapTokenToDTO(&result.Tokens[i])
	}

	conflicts := result.Conflicts
	if conflicts == nil {
		conflicts = []reconciler.Conflict{}
	}

	return &BatchResponse{
		Accepted:    len(result.Transactions),
		Conflicts:   conflicts,
		Tokens:      tokens,
		Adjustments: result.Adjustments,
	}
}

// MapMergeConflictsToDTO maps conflict audit rows to their responses
func MapMergeConflictsToDTO(conflicts []schema.MergeConflict) *MergeConflictListResponse {
	out := make([]MergeConflictResponse, len(conflicts))
	for i, c := range conflicts {
		out[i] = MergeConflictResponse{
			CounterPosition: c.CounterPosition,
			RecordedValue:   c.RecordedValue,
			ReportedValue:   c.ReportedValue,
			CreatedAt:       c.CreatedAt,
		}
	}
	return &MergeConflictListResponse{Conflicts: out}
}

// MapDeviceToDTO maps a signing device row to its response
func MapDeviceToDTO(device *schema.SigningDevice) *DeviceResponse {
	return &DeviceResponse{
		TenantID:   device.TenantID,
		DeviceUID:  device.DeviceUID,
		Curve:      device.Curve,
		Approved:   device.Approved,
		ApprovedAt: device.ApprovedAt,
		CreatedAt:  device.CreatedAt,
	}
}
