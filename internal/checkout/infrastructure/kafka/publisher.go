package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/segmentio/kafka-go"
)

const (
	DefaultOrdersTopic = "checkout.orders.confirmed"
	publishTimeLimit   = 3 * time.Second
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type orderConfirmedMessage struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	TotalCents    int64     `json:"totalCents"`
	PaymentMethod string    `json:"paymentMethod"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}

type EventPublisher struct {
	writer messageWriter
}

func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

// PublishOrderConfirmed keys messages by order id, so every event of an order lands on one partition.
func (p *EventPublisher) PublishOrderConfirmed(ctx context.Context, event domain.OrderConfirmedEvent) error {
	payload, err := json.Marshal(orderConfirmedMessage{
		Type:          "order.confirmed",
		OrderID:       event.OrderID,
		UserID:        event.UserID,
		TotalCents:    int64(event.Total),
		PaymentMethod: string(event.PaymentMethod),
		ConfirmedAt:   event.ConfirmedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}

	limitCtx, cancel := context.WithTimeout(ctx, publishTimeLimit)
	defer cancel()

	err = p.writer.WriteMessages(limitCtx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
