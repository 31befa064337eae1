package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
)

type OrderLedger struct {
	mu             sync.RWMutex
	orders         map[string]domain.Order
	idempotencyIdx map[string]string
}

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{
		orders:         make(map[string]domain.Order),
		idempotencyIdx: make(map[string]string),
	}
}

func (l *OrderLedger) CommitOrder(_ context.Context, order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if order.IdempotencyKey != "" {
		idxKey := idempotencyIndexKey(order.UserID, order.IdempotencyKey)
		if _, exists := l.idempotencyIdx[idxKey]; exists {
			return &domain.DuplicateOrderError{Key: order.IdempotencyKey}
		}
		l.idempotencyIdx[idxKey] = order.ID
	}

	order.Items = slices.Clone(order.Items)
	l.orders[order.ID] = order

	return nil
}

func (l *OrderLedger) FindByIdempotencyKey(_ context.Context, userID, key string) (domain.Order, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	orderID, ok := l.idempotencyIdx[idempotencyIndexKey(userID, key)]
	if !ok {
		return domain.Order{}, false, nil
	}

	return l.get(orderID)
}

func (l *OrderLedger) FindOrder(_ context.Context, orderID string) (domain.Order, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.get(orderID)
}

func (l *OrderLedger) get(orderID string) (domain.Order, bool, error) {
	order, ok := l.orders[orderID]
	if !ok {
		return domain.Order{}, false, nil
	}

	order.Items = slices.Clone(order.Items)
	return order, true, nil
}

func idempotencyIndexKey(userID, key string) string {
	return userID + "\x00" + key
}
