package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offline-pay/token-ledger/internal/adapter"
	apierrors "github.com/offline-pay/token-ledger/internal/api/shared/errors"
	"github.com/offline-pay/token-ledger/internal/domain"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestIssueTokenRequest_Validate(t *testing.T) {
	assert.NoError(t, (&IssueTokenRequest{TokenUID: "card-1", DiscountPercentage: 10}).Validate())

	assertValidationError(t, (&IssueTokenRequest{}).Validate())
	assertValidationError(t, (&IssueTokenRequest{TokenUID: strings.Repeat("x", 129)}).Validate())
	assertValidationError(t, (&IssueTokenRequest{TokenUID: "card-1", DiscountPercentage: -1}).Validate())
	assertValidationError(t, (&IssueTokenRequest{TokenUID: "card-1", DiscountPercentage: 101}).Validate())
}

func TestSnapshotRequest_Validate(t *testing.T) {
	valid := SnapshotRequest{
		Counter:      3,
		RecentValues: []int64{-500, -300, 1000},
		Balance:      200,
		DeviceUID:    "reader-1",
		Signature:    "c2lnbmF0dXJl",
	}
	assert.NoError(t, valid.Validate())

	missingDevice := valid
	missingDevice.DeviceUID = ""
	assertValidationError(t, missingDevice.Validate())

	missingSignature := valid
	missingSignature.Signature = ""
	assertValidationError(t, missingSignature.Validate())

	tooMany := valid
	tooMany.RecentValues = make([]int64, domain.MAX_RECENT_VALUES+1)
	assertValidationError(t, tooMany.Validate())

	badDiscount := valid
	badDiscount.DiscountPercentage = 150
	assertValidationError(t, badDiscount.Validate())
}

func TestSnapshotRequest_ToReport(t *testing.T) {
	base64 := adapter.NewBase64()
	sig := make([]byte, domain.SIGNATURE_SIZE)
	sig[0] = 0xff

	req := SnapshotRequest{
		Counter:            3,
		RecentValues:       []int64{-500, -300, 1000},
		Balance:            200,
		DiscountPercentage: 5,
		DeviceUID:          "reader-1",
		Signature:          base64.Encode(sig),
	}

	report, err := req.ToReport(base64, "tenant-a", "card-1")
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", report.TenantID)
	assert.Equal(t, "card-1", report.TokenUID)
	assert.Equal(t, uint64(3), report.Counter)
	assert.Equal(t, []int64{-500, -300, 1000}, report.RecentValues)
	assert.Equal(t, int64(200), report.Balance)
	assert.Equal(t, 5, report.DiscountPercentage)
	assert.Equal(t, "reader-1", report.DeviceUID)
	assert.Equal(t, sig, report.Signature)

	req.Signature = "not base64!"
	_, err = req.ToReport(base64, "tenant-a", "card-1")
	assertValidationError(t, err)
}

func TestBatchRequest_Validate(t *testing.T) {
	entry := BatchEntryRequest{TokenUID: "card-1", CounterPosition: 1, Value: -100, Signature: "c2ln"}

	assert.NoError(t, (&BatchRequest{DeviceUID: "reader-1", Entries: []BatchEntryRequest{entry}}).Validate())

	assertValidationError(t, (&BatchRequest{Entries: []BatchEntryRequest{entry}}).Validate())
	assertValidationError(t, (&BatchRequest{DeviceUID: "reader-1"}).Validate())
	assertValidationError(t, (&BatchRequest{
		DeviceUID: "reader-1",
		Entries:   make([]BatchEntryRequest, domain.MAX_BATCH_ENTRIES+1),
	}).Validate())

	noToken := entry
	noToken.TokenUID = ""
	assertValidationError(t, (&BatchRequest{DeviceUID: "reader-1", Entries: []BatchEntryRequest{noToken}}).Validate())

	zeroPosition := entry
	zeroPosition.CounterPosition = 0
	assertValidationError(t, (&BatchRequest{DeviceUID: "reader-1", Entries: []BatchEntryRequest{zeroPosition}}).Validate())

	noSignature := entry
	noSignature.Signature = ""
	assertValidationError(t, (&BatchRequest{DeviceUID: "reader-1", Entries: []BatchEntryRequest{noSignature}}).Validate())
}

func TestBatchRequest_ToReport(t *testing.T) {
	base64 := adapter.NewBase64()
	req := BatchRequest{
		DeviceUID: "reader-1",
		Entries: []BatchEntryRequest{
			{TokenUID: "card-1", CounterPosition: 1, Value: -100, Signature: base64.Encode([]byte{1, 2})},
			{TokenUID: "card-2", CounterPosition: 4, Value: 250, Signature: base64.Encode([]byte{3, 4})},
		},
	}

	report, err := req.ToReport(base64, "tenant-a")
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", report.TenantID)
	assert.Equal(t, "reader-1", report.DeviceUID)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, domain.BatchEntry{TokenUID: "card-1", CounterPosition: 1, Value: -100, Signature: []byte{1, 2}}, report.Entries[0])
	assert.Equal(t, domain.BatchEntry{TokenUID: "card-2", CounterPosition: 4, Value: 250, Signature: []byte{3, 4}}, report.Entries[1])

	req.Entries[1].Signature = "***"
	_, err = req.ToReport(base64, "tenant-a")
	assertValidationError(t, err)
}

func TestRegisterDeviceRequest_Validate(t *testing.T) {
	valid := RegisterDeviceRequest{DeviceUID: "reader-1", Curve: domain.CurveSecp256k1, PublicKey: "AAAA"}
	assert.NoError(t, valid.Validate())

	p256 := valid
	p256.Curve = domain.CurveP256
	assert.NoError(t, p256.Validate())

	badCurve := valid
	badCurve.Curve = "ed25519"
	assertValidationError(t, badCurve.Validate())

	noKey := valid
	noKey.PublicKey = ""
	assertValidationError(t, noKey.Validate())

	longUID := valid
	longUID.DeviceUID = strings.Repeat("d", 129)
	assertValidationError(t, longUID.Validate())
}
