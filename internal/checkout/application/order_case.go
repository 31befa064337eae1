package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
)

type OrderCase struct {
	ledger domain.OrderLedger
}

func NewOrderCase(ledger domain.OrderLedger) *OrderCase {
	return &OrderCase{
		ledger: ledger,
	}
}

// GetOrder hides orders of other users behind OrderNotFoundError.
func (c *OrderCase) GetOrder(ctx context.Context, userID, orderID string) (domain.Receipt, error) {
	if userID == "" {
		return domain.Receipt{}, &domain.UnauthorizedError{Msg: "missing user identity"}
	}

	order, found, err := c.ledger.FindOrder(ctx, orderID)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to find order: %w", err)
	}

	if !found || order.UserID != userID {
		return domain.Receipt{}, &domain.OrderNotFoundError{OrderID: orderID}
	}

	return order.Receipt(), nil
}
