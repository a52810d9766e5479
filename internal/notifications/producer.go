package notifications

import (
	"context"
	"fmt"
	"time"

	"cricverse/internal/shared/config"

	"github.com/IBM/sarama"
)

// Producer publishes booking notifications to Kafka
type Producer interface {
	PublishBookingNotification(ctx context.Context, notification *BookingNotification) error
	HealthCheck(ctx context.Context) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a Kafka-backed notification producer
func NewProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps per-customer ordering
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.NotificationTopic,
	}, nil
}

// PublishBookingNotification publishes one notification, keyed by
// customer id
func (p *kafkaProducer) PublishBookingNotification(ctx context.Context, notification *BookingNotification) error {
	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(notification.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: notification.BookedAt,
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish booking notification: %w", err)
	}
	return nil
}

func (p *kafkaProducer) HealthCheck(ctx context.Context) error {
	// SyncProducer holds live broker connections; a constructed
	// producer is a connected producer.
	if p.producer == nil {
		return fmt.Errorf("kafka producer not initialized")
	}
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}
