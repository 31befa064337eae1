package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
)

const orderMetadataKey = "order_id"

type StripeSettings struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
	Currency  string `env:"STRIPE_CURRENCY" envDefault:"brl"`
	// BaseURL overrides the Stripe API host. Empty means api.stripe.com.
	BaseURL string `env:"STRIPE_BASE_URL"`
}

// StripeGateway charges through Stripe payment intents. The charge key doubles as the
// Stripe idempotency key, so a retried attempt resolves to the same intent.
type StripeGateway struct {
	api      *client.API
	currency string
	logger   logging.Logger

	mu      sync.Mutex
	intents map[string]string
}

func NewStripeGateway(settings StripeSettings, logger logging.Logger) *StripeGateway {
	var backends *stripe.Backends
	if settings.BaseURL != "" {
		backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(settings.BaseURL),
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		})
		backends = &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
	}

	return &StripeGateway{
		api:      client.New(settings.SecretKey, backends),
		currency: settings.Currency,
		logger:   logger,
		intents:  make(map[string]string),
	}
}

func (g *StripeGateway) Charge(ctx context.Context, charge domain.Charge) (domain.ChargeResult, error) {
	if charge.Method != domain.PaymentMethodCreditCard {
		// Boleto and pix intents wait for the customer to pay the voucher, so they never settle inside a checkout call.
		return domain.ChargeResult{}, &domain.PaymentDeclinedError{Reason: fmt.Sprintf("%s cannot be settled synchronously", charge.Method)}
	}
	if charge.Card == nil {
		return domain.ChargeResult{}, &domain.ValidationError{Msg: "card data is required"}
	}

	paymentMethodID, err := g.createCardMethod(ctx, charge.Key, *charge.Card)
	if err != nil {
		return domain.ChargeResult{}, err
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(int64(charge.Amount)),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{string(stripe.PaymentMethodTypeCard)}),
		PaymentMethod:      stripe.String(paymentMethodID),
		Confirm:            stripe.Bool(true),
	}
	params.SetIdempotencyKey(charge.Key)
	params.AddMetadata(orderMetadataKey, charge.Key)
	params.AddMetadata("user_id", charge.UserID)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return domain.ChargeResult{}, classifyStripeError(err)
	}

	g.remember(charge.Key, intent.ID)

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusRequiresCapture:
		return domain.ChargeResult{ChargeID: intent.ID}, nil
	case stripe.PaymentIntentStatusProcessing:
		return domain.ChargeResult{}, &domain.PaymentGatewayUnavailableError{Err: fmt.Errorf("payment intent %s is still processing", intent.ID)}
	case stripe.PaymentIntentStatusCanceled:
		return domain.ChargeResult{}, &domain.PaymentDeclinedError{Reason: "payment canceled"}
	case stripe.PaymentIntentStatusRequiresAction:
		g.cancel(ctx, intent.ID)
		return domain.ChargeResult{}, &domain.PaymentDeclinedError{Reason: "card requires authentication"}
	default:
		g.cancel(ctx, intent.ID)
		return domain.ChargeResult{}, &domain.PaymentDeclinedError{Reason: fmt.Sprintf("payment not approved (%s)", intent.Status)}
	}
}

func (g *StripeGateway) createCardMethod(ctx context.Context, key string, card domain.Card) (string, error) {
	month, year, err := card.ExpiryDate()
	if err != nil {
		return "", err
	}

	params := &stripe.PaymentMethodParams{
		Params: stripe.Params{Context: ctx},
		Type:   stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.NormalizedNumber()),
			ExpMonth: stripe.Int64(int64(month)),
			ExpYear:  stripe.Int64(int64(year)),
			CVC:      stripe.String(card.CVV),
		},
		BillingDetails: &stripe.PaymentMethodBillingDetailsParams{
			Name: stripe.String(card.Name),
		},
	}
	params.SetIdempotencyKey(key + ":payment_method")

	method, err := g.api.PaymentMethods.New(params)
	if err != nil {
		return "", classifyStripeError(err)
	}

	return method.ID, nil
}

// Void cancels an unsettled intent or refunds a settled one.
func (g *StripeGateway) Void(ctx context.Context, key string) error {
	intentIDs, err := g.lookupIntents(ctx, key)
	if err != nil {
		return err
	}

	for _, intentID := range intentIDs {
		intent, err := g.api.PaymentIntents.Get(intentID, &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}})
		if err != nil {
			return fmt.Errorf("failed to get payment intent %s: %w", intentID, err)
		}

		switch intent.Status {
		case stripe.PaymentIntentStatusCanceled:
			continue
		case stripe.PaymentIntentStatusSucceeded:
			params := &stripe.RefundParams{
				Params:        stripe.Params{Context: ctx},
				PaymentIntent: stripe.String(intentID),
			}
			params.SetIdempotencyKey("void:" + key)

			if _, err := g.api.Refunds.New(params); err != nil {
				return fmt.Errorf("failed to refund payment intent %s: %w", intentID, err)
			}
		default:
			if _, err := g.api.PaymentIntents.Cancel(intentID, &stripe.PaymentIntentCancelParams{Params: stripe.Params{Context: ctx}}); err != nil {
				return fmt.Errorf("failed to cancel payment intent %s: %w", intentID, err)
			}
		}
	}

	g.forget(key)
	return nil
}

// lookupIntents falls back to a metadata search when the intent was created by another process
// or the response never arrived.
func (g *StripeGateway) lookupIntents(ctx context.Context, key string) ([]string, error) {
	g.mu.Lock()
	intentID, ok := g.intents[key]
	g.mu.Unlock()

	if ok {
		return []string{intentID}, nil
	}

	iter := g.api.PaymentIntents.Search(&stripe.PaymentIntentSearchParams{
		SearchParams: stripe.SearchParams{
			Context: ctx,
			Query:   fmt.Sprintf("metadata['%s']:'%s'", orderMetadataKey, key),
		},
	})

	ids := make([]string, 0, 1)
	for iter.Next() {
		ids = append(ids, iter.PaymentIntent().ID)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to search payment intents: %w", err)
	}

	return ids, nil
}

func (g *StripeGateway) cancel(ctx context.Context, intentID string) {
	_, err := g.api.PaymentIntents.Cancel(intentID, &stripe.PaymentIntentCancelParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		g.logger.Error("failed to cancel payment intent", "intentId", intentID, "error", err.Error())
	}
}

func (g *StripeGateway) remember(key, intentID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.intents[key] = intentID
}

func (g *StripeGateway) forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.intents, key)
}

func classifyStripeError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &domain.PaymentGatewayUnavailableError{Err: err}
	}

	switch {
	case stripeErr.Type == stripe.ErrorTypeCard:
		return &domain.PaymentDeclinedError{Reason: stripeErr.Msg}
	case stripeErr.HTTPStatusCode == http.StatusConflict,
		stripeErr.HTTPStatusCode == http.StatusTooManyRequests,
		stripeErr.HTTPStatusCode >= http.StatusInternalServerError,
		stripeErr.Type == stripe.ErrorTypeAPI:
		return &domain.PaymentGatewayUnavailableError{Err: err}
	}

	return fmt.Errorf("stripe rejected the request: %w", err)
}
