package messaging

import (
	"context"

	"github.com/offline-pay/token-ledger/internal/domain"
)

// Publisher defines the interface for publishing ledger events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a committed ledger event
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close closes the connection
	Close()
}

// nopPublisher drops every event
type nopPublisher struct{}

// NewNopPublisher returns a publisher used when no broker is configured
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishEvent(ctx context.Context, event *domain.LedgerEvent) error {
	return nil
}

func (nopPublisher) Close() {}
