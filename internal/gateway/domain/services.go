package domain

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/gateway/services.go -package=gatewaymocks

import (
	"context"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CartItem struct {
	ProductID int64
	Quantity  int64
}

type CardData struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}

type CheckoutRequest struct {
	Items          []CartItem
	FreightCents   int64
	PaymentMethod  string
	Card           *CardData
	IdempotencyKey string
}

type Receipt struct {
	OrderID         string
	UserID          string
	ValorFinalCents int64
	Status          string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (string, error)
	// Verify resolves a bearer token to the id of its user.
	Verify(ctx context.Context, token string) (string, error)
}

// CheckoutService calls are authorized by the token stored in ctx under jwt.TokenContextKey.
type CheckoutService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (Receipt, error)
	GetOrder(ctx context.Context, orderID string) (Receipt, error)
}
