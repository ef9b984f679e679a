package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinebook/internal/shared/config"

	"github.com/IBM/sarama"
)

// Producer publishes reservation lifecycle events to Kafka. A nil *Producer
// is valid and publishes nothing, which is how deployments without Kafka run.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a Kafka producer, or nil when no brokers are
// configured. Callers treat nil as "publishing disabled".
func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		log.Println("Kafka brokers not configured, event publishing disabled")
		return nil, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps all events for one reservation on one partition.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Println("Kafka reservation event producer created successfully")
	return &Producer{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

func (p *Producer) PublishReservationConfirmed(ctx context.Context, reservationID string, seats int) error {
	return p.publish(&ReservationEvent{
		Type:          EventTypeReservationConfirmed,
		ReservationID: reservationID,
		Seats:         seats,
		OccurredAt:    time.Now().UTC(),
	})
}

func (p *Producer) PublishReservationCancelled(ctx context.Context, reservationID string, seatsReleased int) error {
	return p.publish(&ReservationEvent{
		Type:          EventTypeReservationCancelled,
		ReservationID: reservationID,
		Seats:         seatsReleased,
		OccurredAt:    time.Now().UTC(),
	})
}

func (p *Producer) publish(event *ReservationEvent) error {
	if p == nil {
		return nil
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal reservation event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send reservation event: %w", err)
	}

	log.Printf("Reservation event published - Topic: %s, Partition: %d, Offset: %d, Type: %s",
		p.topic, partition, offset, event.Type)
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	log.Println("Kafka reservation event producer closed")
	return nil
}
