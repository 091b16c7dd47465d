package dto

import (
	"fmt"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/api/shared/constants"
	apierrors "github.com/offline-pay/token-ledger/internal/api/shared/errors"
	"github.com/offline-pay/token-ledger/internal/domain"
)

// IssueTokenRequest represents the request body for issuing a token
type IssueTokenRequest struct {
	TokenUID           string `json:"token_uid"`
	DiscountPercentage int    `json:"discount_percentage"`
}

// Validate validates the request body
func (r *IssueTokenRequest) Validate() error {
	if r.TokenUID == "" {
		return apierrors.NewValidationError("token_uid is required")
	}
	if len(r.TokenUID) > constants.MAX_EXTERNAL_UID_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("token_uid must be at most %d characters", constants.MAX_EXTERNAL_UID_LENGTH))
	}
	if r.DiscountPercentage < 0 || r.DiscountPercentage > 100 {
		return apierrors.NewValidationError("discount_percentage must be between 0 and 100")
	}
	return nil
}

// SnapshotRequest represents a token state read by a signing device
type SnapshotRequest struct {
	Counter            uint64  `json:"counter"`
	RecentValues       []int64 `json:"recent_values"`
	Balance            int64   `json:"balance"`
	DiscountPercentage int     `json:"discount_percentage"`
	DeviceUID          string  `json:"device_uid"`
	Signature          string  `json:"signature"` // base64 r||s
}

// Validate validates the request body
func (r *SnapshotRequest) Validate() error {
	if r.DeviceUID == "" {
		return apierrors.NewValidationError("device_uid is required")
	}
	if r.Signature == "" {
		return apierrors.NewValidationError("signature is required")
	}
	if len(r.RecentValues) > domain.MAX_RECENT_VALUES {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d recent_values allowed", domain.MAX_RECENT_VALUES))
	}
	if r.DiscountPercentage < 0 || r.DiscountPercentage > 100 {
		return apierrors.NewValidationError("discount_percentage must be between 0 and 100")
	}
	return nil
}

// ToReport converts the request into a snapshot report
func (r *SnapshotRequest) ToReport(base64 adapter.Base64, tenantID, tokenUID string) (*domain.SnapshotReport, error) {
	signature, err := base64.Decode(r.Signature)
	if err != nil {
		return nil, apierrors.NewValidationError("signature must be base64 encoded")
	}

	return &domain.SnapshotReport{
		TenantID:           tenantID,
		TokenUID:           tokenUID,
		Counter:            r.Counter,
		RecentValues:       r.RecentValues,
		Balance:            r.Balance,
		DiscountPercentage: r.DiscountPercentage,
		DeviceUID:          r.DeviceUID,
		Signature:          signature,
	}, nil
}

// BatchEntryRequest represents one transaction descriptor of a batch
type BatchEntryRequest struct {
	TokenUID        string `json:"token_uid"`
	CounterPosition uint64 `json:"counter_position"`
	Value           int64  `json:"value"`
	Signature       string `json:"signature"` // base64 r||s
}

// BatchRequest represents transaction descriptors uploaded by one signing device
type BatchRequest struct {
	DeviceUID string              `json:"device_uid"`
	Entries   []BatchEntryRequest `json:"entries"`
}

// Validate validates the request body
func (r *BatchRequest) Validate() error {
	if r.DeviceUID == "" {
		return apierrors.NewValidationError("device_uid is required")
	}
	if len(r.Entries) == 0 {
		return apierrors.NewValidationError("entries is required")
	}
	if len(r.Entries) > domain.MAX_BATCH_ENTRIES {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d entries allowed", domain.MAX_BATCH_ENTRIES))
	}
	for i, e := range r.Entries {
		if e.TokenUID == "" {
			return apierrors.NewValidationError(fmt.Sprintf("entries[%d].token_uid is required", i))
		}
		if e.CounterPosition < 1 {
			return apierrors.NewValidationError(fmt.Sprintf("entries[%d].counter_position must be at least 1", i))
		}
		if e.Signature == "" {
			return apierrors.NewValidationError(fmt.Sprintf("entries[%d].signature is required", i))
		}
	}
	return nil
}

// ToReport converts the request into a batch report
func (r *BatchRequest) ToReport(base64 adapter.Base64, tenantID string) (*domain.BatchReport, error) {
	entries := make([]domain.BatchEntry, len(r.Entries))
	for i, e := range r.Entries {
		signature, err := base64.Decode(e.Signature)
		if err != nil {
			return nil, apierrors.NewValidationError(fmt.Sprintf("entries[%d].signature must be base64 encoded", i))
		}
		entries[i] = domain.BatchEntry{
			TokenUID:        e.TokenUID,
			CounterPosition: e.CounterPosition,
			Value:           e.Value,
			Signature:       signature,
		}
	}

	return &domain.BatchReport{
		TenantID:  tenantID,
		DeviceUID: r.DeviceUID,
		Entries:   entries,
	}, nil
}

// RegisterDeviceRequest represents the request body for registering a signing device key
type RegisterDeviceRequest struct {
	DeviceUID string       `json:"device_uid"`
	Curve     domain.Curve `json:"curve"`
	PublicKey string       `json:"public_key"` // base64 SEC1 point (secp256k1) or PKIX DER (p256)
}

// Validate validates the request body
func (r *RegisterDeviceRequest) Validate() error {
	if r.DeviceUID == "" {
		return apierrors.NewValidationError("device_uid is required")
	}
	if len(r.DeviceUID) > constants.MAX_DEVICE_UID_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("device_uid must be at most %d characters", constants.MAX_DEVICE_UID_LENGTH))
	}
	if !domain.IsValidCurve(r.Curve) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported curve: %s", r.Curve))
	}
	if r.PublicKey == "" {
		return apierrors.NewValidationError("public_key is required")
	}
	return nil
}
