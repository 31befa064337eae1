package payment

import (
	"context"
	"strings"
	"sync"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/google/uuid"
)

// Card numbers ending with these suffixes trigger gateway failures.
const (
	DeclineSuffix     = "0002"
	UnavailableSuffix = "0119"
)

// SimulatedGateway settles charges in memory. Charges are idempotent by key,
// so retrying a key never settles twice.
type SimulatedGateway struct {
	mu      sync.Mutex
	charges map[string]domain.ChargeResult
	voided  map[string]struct{}

	newID func() string
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{
		charges: make(map[string]domain.ChargeResult),
		voided:  make(map[string]struct{}),
		newID:   uuid.NewString,
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, charge domain.Charge) (domain.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChargeResult{}, &domain.PaymentGatewayUnavailableError{Err: err}
	}

	if charge.Card != nil {
		number := charge.Card.NormalizedNumber()
		switch {
		case strings.HasSuffix(number, DeclineSuffix):
			return domain.ChargeResult{}, &domain.PaymentDeclinedError{Reason: "card declined by issuer"}
		case strings.HasSuffix(number, UnavailableSuffix):
			return domain.ChargeResult{}, &domain.PaymentGatewayUnavailableError{}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if result, ok := g.charges[charge.Key]; ok {
		return result, nil
	}

	result := domain.ChargeResult{ChargeID: "sim_" + g.newID()}
	g.charges[charge.Key] = result
	delete(g.voided, charge.Key)

	return result, nil
}

func (g *SimulatedGateway) Void(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.charges[key]; ok {
		delete(g.charges, key)
		g.voided[key] = struct{}{}
	}

	return nil
}

// Settled reports whether key holds a charge that was not voided.
func (g *SimulatedGateway) Settled(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.charges[key]
	return ok
}

func (g *SimulatedGateway) Voided(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.voided[key]
	return ok
}
