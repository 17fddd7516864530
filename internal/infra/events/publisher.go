package events

import (
	"log/slog"

	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/shared"
)

const (
	BrokerLog      = "log"
	BrokerRabbitMQ = "rabbitmq"
	BrokerKafka    = "kafka"
)

func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (shared.EventPublisher, error) {
	switch cfg.Broker {
	case "", BrokerLog:
		return NewLogPublisher(logger), nil
	case BrokerRabbitMQ:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange), nil
	case BrokerKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	default:
		return nil, errs.Newf("unknown events broker %q", cfg.Broker)
	}
}
