package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"appointment-agent/internal/pkg/config"
	"appointment-agent/internal/pkg/errs"
	"appointment-agent/internal/usecase"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
)

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer MessageWriter
}

// Events are written from the request path: flush each one immediately.
const (
	writerBatchSize    = 1
	writerBatchTimeout = 10 * time.Millisecond
)

func NewKafkaPublisher(cfg config.EventsConfig) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(newKafkaWriter(cfg))
}

func newKafkaWriter(cfg config.EventsConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              writerBatchSize,
		BatchTimeout:           writerBatchTimeout,
		WriteTimeout:           cfg.Timeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish keys messages by appointment id so events of one appointment
// stay ordered within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event usecase.AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode appointment event")
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(event.Type)},
		},
	}
	msg.Headers = injectTraceHeaders(ctx, msg.Headers)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to write appointment event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, usecase.AppointmentEvent) error { return nil }

func (NopPublisher) Close() error { return nil }

// Publisher is an EventPublisher that owns a connection.
type Publisher interface {
	usecase.EventPublisher
	Close() error
}

// NewPublisher returns a NopPublisher when no brokers are configured.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) Publisher {
	if len(cfg.Brokers) == 0 {
		logger.Warn("appointment events disabled (no kafka brokers configured)")
		return NopPublisher{}
	}
	logger.Info("appointment events enabled", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return NewKafkaPublisher(cfg)
}
