package domain

//go:generate mockgen -source=ports.go -destination=../../../gen/mocks/checkout/ports.go -package=checkoutmocks

import (
	"context"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
)

type IdentityResolver interface {
	// ResolveUserID fails with UnauthorizedError for missing, invalid or expired tokens.
	ResolveUserID(ctx context.Context, token string) (string, error)
}

type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}

type OrderConfirmedEvent struct {
	OrderID       string
	UserID        string
	Total         money.Cents
	PaymentMethod PaymentMethod
	ConfirmedAt   time.Time
}

type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event OrderConfirmedEvent) error
}

type CheckoutProcessor interface {
	Checkout(ctx context.Context, userID string, req CheckoutRequest) (Receipt, error)
}

type OrderFetcher interface {
	GetOrder(ctx context.Context, userID, orderID string) (Receipt, error)
}
