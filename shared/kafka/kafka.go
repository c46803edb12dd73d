package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// TopicOrderCreated carries one event per accepted order, keyed by the order
// id so events for the same order land on the same partition.
const TopicOrderCreated = "order-created"

// NewOrderWriter creates a kafka writer for the order-created topic.
func NewOrderWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicOrderCreated,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewOrderReader creates a kafka reader for the order-created topic within
// the given consumer group.
func NewOrderReader(brokers []string, groupId string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   TopicOrderCreated,
		GroupID: groupId,
	})
}

// WriteMessage publishes a single keyed message through the given writer.
func WriteMessage(ctx context.Context, writer *kafka.Writer, key []byte, value []byte) error {
	message := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}

	if err := writer.WriteMessages(ctx, message); err != nil {
		zap.S().Errorf("failed to write message to kafka: %v", err)
		return err
	}
	return nil
}
