package events

import (
	"context"
	"log/slog"
	"time"

	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const headerEventTopic = "event-topic"

// KafkaPublisher writes every event to one topic, keyed by aggregate id so that
// events of one booking stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errs.New("kafka: at least one broker is required")
	}
	if topic == "" {
		return nil, errs.New("kafka: topic cannot be empty")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  3,
			BatchTimeout: 50 * time.Millisecond,
			Logger:       kafka.LoggerFunc(func(string, ...any) {}),
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
				slog.Error("kafka writer error", "message", msg, "args", args)
			}),
		},
	}, nil
}

var _ shared.EventPublisher = (*KafkaPublisher)(nil)

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: headerEventTopic, Value: []byte(topic)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "kafka: write failed")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
