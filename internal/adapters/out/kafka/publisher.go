// Package kafka publishes order domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"orderdesk/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// eventMessage is the wire form of an order event.
type eventMessage struct {
	ID         string            `json:"id"`
	OrderID    string            `json:"order_id"`
	Name       string            `json:"name"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes"`
}

// OrderEventPublisher writes order events keyed by order id, so all events of
// one order land on the same partition in the order they were relayed.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher creates a publisher writing to topic on the given brokers.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return NewOrderEventPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	})
}

// NewOrderEventPublisherWithWriter creates a publisher on top of an existing writer.
func NewOrderEventPublisherWithWriter(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// Publish writes one event and waits for the broker acknowledgement.
func (p *OrderEventPublisher) Publish(ctx context.Context, event order.Event) error {
	data, err := json.Marshal(eventMessage{
		ID:         event.ID().String(),
		OrderID:    event.OrderID().String(),
		Name:       string(event.Name()),
		OccurredAt: event.OccurredAt().UTC(),
		Attributes: event.Attributes(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID().String()),
		Value: data,
		Time:  event.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "event_name", Value: []byte(event.Name())},
		},
	})
}

// Close flushes pending writes and releases the connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
