package reconciler

import (
	"context"
	"time"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/messaging"
	"github.com/offline-pay/token-ledger/internal/provenance"
	"github.com/offline-pay/token-ledger/internal/store"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

const (
	DEFAULT_MAX_ATTEMPTS     = 5
	DEFAULT_INITIAL_INTERVAL = 20 * time.Millisecond
	DEFAULT_MAX_INTERVAL     = 500 * time.Millisecond
)

// Reconciler merges reports from signing devices into the ledger
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// MergeSnapshot merges a full token state read from the physical token.
	// A contradicted confirmed transaction aborts the merge.
	MergeSnapshot(ctx context.Context, report *domain.SnapshotReport) (*SnapshotResult, error)

	// MergeBatch merges individual transaction reports spanning many tokens.
	// Contradicting entries are recorded and skipped; an unknown or archived token aborts the batch.
	MergeBatch(ctx context.Context, report *domain.BatchReport) (*BatchResult, error)
}

// Config holds the reconciler configuration
type Config struct {
	// MaxAttempts bounds how many times a merge transaction runs on transient failures
	MaxAttempts int
	// InitialInterval is the first backoff between attempts
	InitialInterval time.Duration
	// MaxInterval caps the backoff between attempts
	MaxInterval time.Duration
}

// SnapshotResult is the committed outcome of a snapshot merge
type SnapshotResult struct {
	// Token is the token state after the merge
	Token schema.Token
	// Transactions are the rows at the reported window positions, most recent first
	Transactions []schema.Transaction
	// Adjustment is the adjustment transaction value after compensation
	Adjustment int64
}

// Conflict is a batch entry skipped because it contradicted a confirmed transaction
type Conflict struct {
	TokenUID        string `json:"token_uid"`
	CounterPosition uint64 `json:"counter_position"`
	RecordedValue   int64  `json:"recorded_value"`
	ReportedValue   int64  `json:"reported_value"`
}

// BatchResult is the committed outcome of a batch merge
type BatchResult struct {
	// Transactions are the accepted rows, in entry order
	Transactions []schema.Transaction
	// Conflicts are the skipped entries, in entry order
	Conflicts []Conflict
	// Tokens are the touched tokens after the merge, ordered by external uid
	Tokens []schema.Token
	// Adjustments maps a token external uid to its adjustment value after compensation
	Adjustments map[string]int64
}

type reconciler struct {
	cfg       Config
	store     store.Store
	verifier  provenance.Verifier
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewReconciler creates a new reconciler
func NewReconciler(cfg Config, st store.Store, verifier provenance.Verifier, publisher messaging.Publisher, clock adapter.Clock) Reconciler {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DEFAULT_MAX_ATTEMPTS
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = DEFAULT_INITIAL_INTERVAL
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = DEFAULT_MAX_INTERVAL
	}
	if cfg.MaxInterval < cfg.InitialInterval {
		cfg.MaxInterval = cfg.InitialInterval
	}
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	if clock == nil {
		clock = adapter.NewClock()
	}

	return &reconciler{
		cfg:       cfg,
		store:     st,
		verifier:  verifier,
		publisher: publisher,
		clock:     clock,
	}
}
