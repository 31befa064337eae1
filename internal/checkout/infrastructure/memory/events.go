package memory

import (
	"context"
	"sync"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
)

// EventLog keeps published events in memory. Used by the standalone setup and in tests.
type EventLog struct {
	mu     sync.Mutex
	events []domain.OrderConfirmedEvent
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) PublishOrderConfirmed(_ context.Context, event domain.OrderConfirmedEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
	return nil
}

func (l *EventLog) Events() []domain.OrderConfirmedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.OrderConfirmedEvent, len(l.events))
	copy(out, l.events)
	return out
}
