package domain

//go:generate mockgen -source=order.go -destination=../../../gen/mocks/checkout/order.go -package=checkoutmocks

import (
	"context"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDeclined  OrderStatus = "declined"
)

type OrderItem struct {
	ProductID int64
	Quantity  int64
	UnitPrice money.Cents
}

type Order struct {
	ID                 string
	UserID             string
	Items              []OrderItem
	Freight            money.Cents
	Total              money.Cents
	PaymentMethod      PaymentMethod
	ChargeID           string
	Status             OrderStatus
	IdempotencyKey     string
	RequestFingerprint string
	CreatedAt          time.Time
}

func (o Order) Receipt() Receipt {
	return Receipt{
		OrderID:    o.ID,
		UserID:     o.UserID,
		ValorFinal: o.Total,
		Status:     o.Status,
	}
}

type Receipt struct {
	OrderID    string
	UserID     string
	ValorFinal money.Cents
	Status     OrderStatus
}

type OrderLedger interface {
	// CommitOrder stores the order with its items atomically. It fails with
	// DuplicateOrderError when the user already has an order under the same idempotency key.
	CommitOrder(ctx context.Context, order Order) error
	FindByIdempotencyKey(ctx context.Context, userID, key string) (Order, bool, error)
	FindOrder(ctx context.Context, orderID string) (Order, bool, error)
}
