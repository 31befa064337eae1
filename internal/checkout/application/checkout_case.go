package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

type SettlementPolicy struct {
	MaxRetries     uint64
	RetryBase      time.Duration
	AttemptTimeout time.Duration
	VoidTimeout    time.Duration
}

var DefaultSettlementPolicy = SettlementPolicy{
	MaxRetries:     3,
	RetryBase:      100 * time.Millisecond,
	AttemptTimeout: 5 * time.Second,
	VoidTimeout:    5 * time.Second,
}

type CheckoutCase struct {
	catalog   domain.Catalog
	gateway   domain.PaymentGateway
	ledger    domain.OrderLedger
	locker    domain.Locker
	publisher domain.EventPublisher
	policy    SettlementPolicy
	logger    logging.Logger

	newID func() string
	now   func() time.Time
}

func NewCheckoutCase(
	catalog domain.Catalog,
	gateway domain.PaymentGateway,
	ledger domain.OrderLedger,
	locker domain.Locker,
	publisher domain.EventPublisher,
	policy SettlementPolicy,
	logger logging.Logger,
) *CheckoutCase {
	return &CheckoutCase{
		catalog:   catalog,
		gateway:   gateway,
		ledger:    ledger,
		locker:    locker,
		publisher: publisher,
		policy:    policy,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Checkout prices the cart from the catalog, settles the payment and commits the order.
// Either the order is committed with a settled charge or nothing is kept.
func (c *CheckoutCase) Checkout(ctx context.Context, userID string, req domain.CheckoutRequest) (domain.Receipt, error) {
	if userID == "" {
		return domain.Receipt{}, &domain.UnauthorizedError{Msg: "missing user identity"}
	}

	if err := req.ValidateCart(); err != nil {
		return domain.Receipt{}, err
	}

	products, err := c.catalog.GetProducts(ctx, req.ProductIDs())
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to load products: %w", err)
	}

	priced, err := domain.PriceCart(req.Items, products, req.Freight)
	if err != nil {
		return domain.Receipt{}, err
	}

	if err := req.ValidatePayment(c.now()); err != nil {
		return domain.Receipt{}, err
	}

	fingerprint := req.Fingerprint()

	if req.IdempotencyKey != "" {
		unlock, err := c.locker.Lock(ctx, idempotencyLockKey(userID, req.IdempotencyKey))
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("failed to lock idempotency key: %w", err)
		}
		defer unlock()

		existing, found, err := c.ledger.FindByIdempotencyKey(ctx, userID, req.IdempotencyKey)
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("failed to look up idempotency key: %w", err)
		}

		if found {
			return replay(existing, fingerprint, req.IdempotencyKey)
		}
	}

	order := domain.Order{
		ID:                 c.newID(),
		UserID:             userID,
		Items:              priced.Lines,
		Freight:            priced.Freight,
		Total:              priced.Total,
		PaymentMethod:      req.PaymentMethod,
		IdempotencyKey:     req.IdempotencyKey,
		RequestFingerprint: fingerprint,
	}

	result, err := c.settle(ctx, domain.Charge{
		Key:    order.ID,
		UserID: userID,
		Amount: order.Total,
		Method: order.PaymentMethod,
		Card:   req.Card,
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	order.ChargeID = result.ChargeID
	order.Status = domain.OrderStatusConfirmed
	order.CreatedAt = c.now().UTC()

	// The charge is settled at this point, so the commit must not be abandoned with the caller.
	commitCtx := context.WithoutCancel(ctx)
	if err := c.ledger.CommitOrder(commitCtx, order); err != nil {
		c.void(commitCtx, order.ID)

		if errors.Is(err, &domain.DuplicateOrderError{}) {
			existing, found, findErr := c.ledger.FindByIdempotencyKey(commitCtx, userID, req.IdempotencyKey)
			if findErr == nil && found {
				return replay(existing, fingerprint, req.IdempotencyKey)
			}
		}

		return domain.Receipt{}, fmt.Errorf("failed to commit order: %w", err)
	}

	c.publish(commitCtx, order)

	return order.Receipt(), nil
}

func (c *CheckoutCase) settle(ctx context.Context, charge domain.Charge) (domain.ChargeResult, error) {
	settleCtx := context.WithoutCancel(ctx)
	backoff := retry.WithMaxRetries(c.policy.MaxRetries, retry.NewExponential(c.policy.RetryBase))

	var (
		result  domain.ChargeResult
		attempt int
	)

	err := retry.Do(settleCtx, backoff, func(ctx context.Context) error {
		attempt++

		attemptCtx, cancel := context.WithTimeout(ctx, c.policy.AttemptTimeout)
		defer cancel()

		res, err := c.gateway.Charge(attemptCtx, charge)
		if err == nil {
			result = res
			return nil
		}

		if errors.Is(err, context.DeadlineExceeded) {
			err = &domain.PaymentGatewayUnavailableError{Err: err}
		}

		if errors.Is(err, &domain.PaymentGatewayUnavailableError{}) {
			c.logger.Warn("payment gateway unavailable, retrying", "orderId", charge.Key, "attempt", attempt, "error", err.Error())
			return retry.RetryableError(err)
		}

		return err
	})

	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, &domain.PaymentDeclinedError{}):
		return domain.ChargeResult{}, err
	case errors.Is(err, &domain.PaymentGatewayUnavailableError{}):
		c.logger.Error("payment settlement gave up", "orderId", charge.Key, "attempts", attempt, "error", err.Error())
		c.void(settleCtx, charge.Key)
		return domain.ChargeResult{}, err
	default:
		c.void(settleCtx, charge.Key)
		return domain.ChargeResult{}, fmt.Errorf("failed to settle payment: %w", err)
	}
}

// void releases whatever may have been settled under key. Failures are logged for reconciliation.
func (c *CheckoutCase) void(ctx context.Context, key string) {
	voidCtx, cancel := context.WithTimeout(ctx, c.policy.VoidTimeout)
	defer cancel()

	if err := c.gateway.Void(voidCtx, key); err != nil {
		c.logger.Error("failed to void charge", "orderId", key, "error", err.Error())
	}
}

func (c *CheckoutCase) publish(ctx context.Context, order domain.Order) {
	err := c.publisher.PublishOrderConfirmed(ctx, domain.OrderConfirmedEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		ConfirmedAt:   order.CreatedAt,
	})
	if err != nil {
		c.logger.Warn("failed to publish order confirmed event", "orderId", order.ID, "error", err.Error())
	}
}

func replay(existing domain.Order, fingerprint, key string) (domain.Receipt, error) {
	if existing.RequestFingerprint != fingerprint {
		return domain.Receipt{}, &domain.IdempotencyConflictError{Key: key}
	}

	return existing.Receipt(), nil
}

func idempotencyLockKey(userID, key string) string {
	return "checkout:idempotency:" + userID + ":" + key
}
