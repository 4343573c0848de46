package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"datagen-service/internal/models"
	"datagen-service/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Batch size for WriteMessages calls; kafka-go batches internally but a
// bounded slice keeps memory flat for multi-hundred-thousand event runs.
const publishBatchSize = 500

// Producer publishes generated user events to a Kafka topic, as an optional
// streaming feed alongside the file-based document export.
type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewProducer creates a Kafka producer for the user-event topic.
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	return &Producer{writer: writer, logger: util.GetLogger()}
}

// PublishUserEvents streams the behavioral event collection, keyed by user
// so a consumer partitions each user's activity together.
func (p *Producer) PublishUserEvents(ctx context.Context, events []models.UserEvent) error {
	batch := make([]kafka.Message, 0, publishBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := p.writer.WriteMessages(ctx, batch...); err != nil {
			return fmt.Errorf("failed to write messages to kafka: %w", err)
		}
		util.EventsPublishedTotal.Add(float64(len(batch)))
		batch = batch[:0]
		return nil
	}

	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		batch = append(batch, kafka.Message{
			Key:   []byte(fmt.Sprintf("user-%d", event.UserID)),
			Value: value,
			Time:  event.Timestamp,
		})
		if len(batch) == publishBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	p.logger.Info("Published user events", zap.Int("count", len(events)))
	return nil
}

// Close closes the producer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
