// Package events publishes order lifecycle events to Kafka. Publication
// happens after the order's unit of work commits and is best-effort: a
// broker failure is logged by the caller, never surfaced to the customer.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/localmart/storefront/internal/config"
	"github.com/localmart/storefront/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	TypeOrderPlaced        = "order.placed"
	TypeOrderCancelled     = "order.cancelled"
	TypeOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	UserID      int64           `json:"user_id"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// NewOrderEvent builds an event from an order's current state.
func NewOrderEvent(eventType string, o entities.Order) OrderEvent {
	return OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      string(o.Status),
		Total:       o.Total,
		OccurredAt:  time.Now().UTC(),
	}
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev OrderEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderNumber),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
