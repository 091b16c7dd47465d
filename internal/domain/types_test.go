package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCurve(t *testing.T) {
	tests := []struct {
		name     string
		curve    Curve
		expected bool
	}{
		{
			name:     "secp256k1",
			curve:    CurveSecp256k1,
			expected: true,
		},
		{
			name:     "p256",
			curve:    CurveP256,
			expected: true,
		},
		{
			name:     "empty curve",
			curve:    Curve(""),
			expected: false,
		},
		{
			name:     "unsupported curve",
			curve:    Curve("ed25519"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCurve(tt.curve))
		})
	}
}

func TestSnapshotReport_Valid(t *testing.T) {
	valid := func() SnapshotReport {
		return SnapshotReport{
			TenantID:     "org-1",
			TokenUID:     "04A1B2C3",
			Counter:      3,
			RecentValues: []int64{-500, -300, 1000},
			Balance:      200,
			DeviceUID:    "reader-1",
		}
	}

	tests := []struct {
		name     string
		mutate   func(r *SnapshotReport)
		expected bool
	}{
		{
			name:     "valid report",
			mutate:   func(r *SnapshotReport) {},
			expected: true,
		},
		{
			name:     "zero counter without values",
			mutate:   func(r *SnapshotReport) { r.Counter = 0; r.RecentValues = nil },
			expected: true,
		},
		{
			name:     "missing tenant",
			mutate:   func(r *SnapshotReport) { r.TenantID = "" },
			expected: false,
		},
		{
			name:     "missing token uid",
			mutate:   func(r *SnapshotReport) { r.TokenUID = "" },
			expected: false,
		},
		{
			name:     "missing device",
			mutate:   func(r *SnapshotReport) { r.DeviceUID = "" },
			expected: false,
		},
		{
			name:     "negative discount",
			mutate:   func(r *SnapshotReport) { r.DiscountPercentage = -1 },
			expected: false,
		},
		{
			name:     "discount above 100",
			mutate:   func(r *SnapshotReport) { r.DiscountPercentage = 101 },
			expected: false,
		},
		{
			name:     "too many recent values",
			mutate:   func(r *SnapshotReport) { r.RecentValues = make([]int64, MAX_RECENT_VALUES+1) },
			expected: false,
		},
		{
			name:     "largest safe balance",
			mutate:   func(r *SnapshotReport) { r.Balance = -MAX_SAFE_INTEGER },
			expected: true,
		},
		{
			name:     "balance beyond double precision",
			mutate:   func(r *SnapshotReport) { r.Balance = MAX_SAFE_INTEGER + 1 },
			expected: false,
		},
		{
			name:     "recent value beyond double precision",
			mutate:   func(r *SnapshotReport) { r.RecentValues[1] = -(MAX_SAFE_INTEGER + 1) },
			expected: false,
		},
		{
			name:     "counter beyond double precision",
			mutate:   func(r *SnapshotReport) { r.Counter = MAX_SAFE_INTEGER + 1 },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)
			assert.Equal(t, tt.expected, r.Valid())
		})
	}
}

func TestBatchReport_Valid(t *testing.T) {
	valid := func() BatchReport {
		return BatchReport{
			TenantID:  "org-1",
			DeviceUID: "reader-1",
			Entries: []BatchEntry{
				{TokenUID: "04A1B2C3", CounterPosition: 1, Value: 1000},
				{TokenUID: "04D4E5F6", CounterPosition: 7, Value: -250},
			},
		}
	}

	tests := []struct {
		name     string
		mutate   func(r *BatchReport)
		expected bool
	}{
		{
			name:     "valid report",
			mutate:   func(r *BatchReport) {},
			expected: true,
		},
		{
			name:     "no entries",
			mutate:   func(r *BatchReport) { r.Entries = nil },
			expected: false,
		},
		{
			name:     "too many entries",
			mutate:   func(r *BatchReport) { r.Entries = make([]BatchEntry, MAX_BATCH_ENTRIES+1) },
			expected: false,
		},
		{
			name:     "position zero",
			mutate:   func(r *BatchReport) { r.Entries[1].CounterPosition = 0 },
			expected: false,
		},
		{
			name:     "value beyond double precision",
			mutate:   func(r *BatchReport) { r.Entries[0].Value = MAX_SAFE_INTEGER + 1 },
			expected: false,
		},
		{
			name:     "entry without token",
			mutate:   func(r *BatchReport) { r.Entries[0].TokenUID = "" },
			expected: false,
		},
		{
			name:     "missing device",
			mutate:   func(r *BatchReport) { r.DeviceUID = "" },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)
			assert.Equal(t, tt.expected, r.Valid())
		})
	}
}
