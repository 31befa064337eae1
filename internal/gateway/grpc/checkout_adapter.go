package grpc

import (
	"context"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	"github.com/Lexv0lk/checkout-store/internal/gateway/domain"
)

type CheckoutAdapter struct {
	client checkoutv1.CheckoutServiceClient
}

func NewCheckoutAdapter(client checkoutv1.CheckoutServiceClient) *CheckoutAdapter {
	return &CheckoutAdapter{
		client: client,
	}
}

func (a *CheckoutAdapter) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.Receipt, error) {
	limitCtx, cancel := context.WithTimeout(ctx, checkoutTimeLimit)
	defer cancel()

	resp, err := a.client.Checkout(limitCtx, convertToCheckoutRequest(req))
	if err != nil {
		return domain.Receipt{}, err
	}

	return convertToReceipt(resp), nil
}

func (a *CheckoutAdapter) GetOrder(ctx context.Context, orderID string) (domain.Receipt, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	resp, err := a.client.GetOrder(limitCtx, &checkoutv1.GetOrderRequest{OrderId: orderID})
	if err != nil {
		return domain.Receipt{}, err
	}

	return convertToReceipt(resp), nil
}

func convertToCheckoutRequest(req domain.CheckoutRequest) *checkoutv1.CheckoutRequest {
	out := &checkoutv1.CheckoutRequest{
		Items:          make([]*checkoutv1.CartItem, 0, len(req.Items)),
		FreightCents:   req.FreightCents,
		PaymentMethod:  req.PaymentMethod,
		IdempotencyKey: req.IdempotencyKey,
	}

	for _, item := range req.Items {
		out.Items = append(out.Items, &checkoutv1.CartItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if req.Card != nil {
		out.Card = &checkoutv1.CardData{
			Number: req.Card.Number,
			Name:   req.Card.Name,
			Expiry: req.Card.Expiry,
			Cvv:    req.Card.CVV,
		}
	}

	return out
}

func convertToReceipt(resp *checkoutv1.Receipt) domain.Receipt {
	return domain.Receipt{
		OrderID:         resp.OrderId,
		UserID:          resp.UserId,
		ValorFinalCents: resp.ValorFinalCents,
		Status:          resp.Status,
	}
}
