package domain

//go:generate mockgen -source=payment.go -destination=../../../gen/mocks/checkout/payment.go -package=checkoutmocks

import (
	"context"

	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
	PaymentMethodPix        PaymentMethod = "pix"
)

type paymentMethodRules struct {
	requiresCard bool
}

var paymentMethods = map[PaymentMethod]paymentMethodRules{
	PaymentMethodCreditCard: {requiresCard: true},
	PaymentMethodBoleto:     {},
	PaymentMethodPix:        {},
}

func (m PaymentMethod) IsKnown() bool {
	_, ok := paymentMethods[m]
	return ok
}

func (m PaymentMethod) RequiresCard() bool {
	return paymentMethods[m].requiresCard
}

// Charge is a single settlement attempt. Key identifies the charge at the gateway:
// repeated attempts with the same key must never settle twice.
type Charge struct {
	Key    string
	UserID string
	Amount money.Cents
	Method PaymentMethod
	Card   *Card
}

type ChargeResult struct {
	ChargeID string
}

type PaymentGateway interface {
	// Charge fails with PaymentDeclinedError for a terminal rejection and with
	// PaymentGatewayUnavailableError when the outcome is unknown or transient.
	Charge(ctx context.Context, charge Charge) (ChargeResult, error)
	// Void cancels or refunds whatever was settled under key. Voiding an unknown key is not an error.
	Void(ctx context.Context, key string) error
}
