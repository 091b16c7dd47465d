package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/messaging"
)

// SUBJECT_PREFIX is the root of every ledger event subject
const SUBJECT_PREFIX = "ledger"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishEvent publishes a ledger event to NATS JetStream
func (p *publisher) PublishEvent(ctx context.Context, event *domain.LedgerEvent) error {
	logger.DebugCtx(ctx, "Publishing ledger event",
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.EventType)))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	var opts []jetstream.PublishOpt
	if event.EventID != "" {
		// Broker-side deduplication of re-published events
		opts = append(opts, jetstream.WithMsgID(event.EventID))
	}
	if p.streamName != "" {
		opts = append(opts, jetstream.WithExpectStream(p.streamName))
	}

	_, err = p.js.Publish(ctx, BuildSubject(event), data, opts...)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// BuildSubject constructs the NATS subject of an event
//
// Format: ledger.{tenant}.{event_type}, e.g. ledger.acme.token.reconciled.
// Subject-reserved characters in the tenant id are replaced with '_'.
func BuildSubject(event *domain.LedgerEvent) string {
	tenant := strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, event.TenantID)

	return fmt.Sprintf("%s.%s.%s", SUBJECT_PREFIX, tenant, event.EventType)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
