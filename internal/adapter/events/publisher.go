// Package events publishes telemetry ingestion events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/telemetry-backend/internal/config"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes one Kafka message per TelemetryEvent, keyed by user id so
// a user's events stay on one partition in order.
type Publisher struct {
	writer  messageWriter
	timeout time.Duration
	log     *slog.Logger
}

// NewPublisher creates a synchronous Kafka publisher for cfg.Topic.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.BrokerList()...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		Async:        false,
	}
	return newPublisher(w, cfg.WriteTimeout, logger)
}

func newPublisher(w messageWriter, timeout time.Duration, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer:  w,
		timeout: timeout,
		log:     logger.With("adapter", "kafka"),
	}
}

// Publish encodes ev and writes it to the topic. Events with an unknown
// signal are rejected before anything is written.
func (p *Publisher) Publish(ctx context.Context, ev domain.TelemetryEvent) error {
	if !ev.Signal.IsValid() {
		return fmt.Errorf("events: unknown signal %q", ev.Signal)
	}

	value, err := json.Marshal(toMessage(ev))
	if err != nil {
		return fmt.Errorf("events: encode %s event: %w", ev.Signal, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(ev.UserID.String()),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "signal", Value: []byte(ev.Signal)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: write %s event: %w", ev.Signal, err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("signal", ev.Signal.String()),
		slog.String("user_id", ev.UserID.String()),
		slog.Int("count", ev.Count),
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

type message struct {
	Signal     string      `json:"signal"`
	UserID     uuid.UUID   `json:"user_id"`
	IDs        []uuid.UUID `json:"ids"`
	Count      int         `json:"count"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func toMessage(ev domain.TelemetryEvent) message {
	ids := ev.IDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return message{
		Signal:     ev.Signal.String(),
		UserID:     ev.UserID,
		IDs:        ids,
		Count:      ev.Count,
		OccurredAt: ev.OccurredAt.UTC(),
	}
}
