package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bet-settlement-gateway/config"
	"bet-settlement-gateway/pkg/contracts/events"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher implements ports.EventPublisher on a kafka-go Writer.
// Messages are keyed by trace id so a trace's lifecycle stays ordered
// within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

// NewKafkaPublisher creates a publisher for the settlement events topic.
func NewKafkaPublisher(cfg config.KafkaConfig, log zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		log: log,
	}
}

// PublishSettlementConfirmed emits a settlement confirmation event.
func (p *KafkaPublisher) PublishSettlementConfirmed(ctx context.Context, e events.SettlementConfirmed) error {
	return p.write(ctx, "SETTLEMENT_CONFIRMED", e.TraceID, e)
}

// PublishSettlementRevoked emits a settlement revocation event.
func (p *KafkaPublisher) PublishSettlementRevoked(ctx context.Context, e events.SettlementRevoked) error {
	return p.write(ctx, "SETTLEMENT_REVOKED", e.TraceID, e)
}

func (p *KafkaPublisher) write(ctx context.Context, eventType, traceID string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(traceID),
		Value: b,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event: %w", eventType, err)
	}

	p.log.Debug().
		Str("event_type", eventType).
		Str("trace_id", traceID).
		Msg("settlement event published")
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
