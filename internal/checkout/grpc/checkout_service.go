package grpc

import (
	"context"
	"errors"

	checkoutv1 "github.com/Lexv0lk/checkout-store/api/checkout/v1"
	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CheckoutServerGRPC struct {
	checkoutv1.UnimplementedCheckoutServiceServer

	checkoutProcessor domain.CheckoutProcessor
	orderFetcher      domain.OrderFetcher
	logger            logging.Logger
}

func NewCheckoutServerGRPC(
	checkoutProcessor domain.CheckoutProcessor,
	orderFetcher domain.OrderFetcher,
	logger logging.Logger,
) *CheckoutServerGRPC {
	return &CheckoutServerGRPC{
		checkoutProcessor: checkoutProcessor,
		orderFetcher:      orderFetcher,
		logger:            logger,
	}
}

func (s *CheckoutServerGRPC) Checkout(ctx context.Context, in *checkoutv1.CheckoutRequest) (*checkoutv1.Receipt, error) {
	receipt, err := s.checkoutProcessor.Checkout(ctx, userIDFromContext(ctx), toDomainRequest(in))
	if err != nil {
		return nil, s.toStatus("failed to checkout", err)
	}

	return toReceiptResponse(receipt), nil
}

func (s *CheckoutServerGRPC) GetOrder(ctx context.Context, in *checkoutv1.GetOrderRequest) (*checkoutv1.Receipt, error) {
	receipt, err := s.orderFetcher.GetOrder(ctx, userIDFromContext(ctx), in.GetOrderId())
	if err != nil {
		return nil, s.toStatus("failed to get order", err)
	}

	return toReceiptResponse(receipt), nil
}

func (s *CheckoutServerGRPC) toStatus(msg string, err error) error {
	switch {
	case errors.Is(err, &domain.ValidationError{}):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, &domain.UnauthorizedError{}):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, &domain.PaymentDeclinedError{}):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, &domain.PaymentGatewayUnavailableError{}):
		s.logger.Warn(msg, "error", err.Error())
		return status.Error(codes.Unavailable, "payment gateway unavailable, try again later")
	case errors.Is(err, &domain.IdempotencyConflictError{}):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, &domain.OrderNotFoundError{}):
		return status.Error(codes.NotFound, err.Error())
	}

	s.logger.Error(msg, "error", err.Error())
	return status.Error(codes.Internal, "internal error")
}

func toDomainRequest(in *checkoutv1.CheckoutRequest) domain.CheckoutRequest {
	req := domain.CheckoutRequest{
		Items:          make([]domain.CartItem, 0, len(in.GetItems())),
		Freight:        money.Cents(in.FreightCents),
		PaymentMethod:  domain.PaymentMethod(in.PaymentMethod),
		IdempotencyKey: in.IdempotencyKey,
	}

	for _, item := range in.GetItems() {
		if item == nil {
			continue
		}
		req.Items = append(req.Items, domain.CartItem{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		})
	}

	if card := in.GetCard(); card != nil {
		req.Card = &domain.Card{
			Number: card.Number,
			Name:   card.Name,
			Expiry: card.Expiry,
			CVV:    card.Cvv,
		}
	}

	return req
}

func toReceiptResponse(receipt domain.Receipt) *checkoutv1.Receipt {
	return &checkoutv1.Receipt{
		OrderId:         receipt.OrderID,
		UserId:          receipt.UserID,
		ValorFinalCents: int64(receipt.ValorFinal),
		Status:          string(receipt.Status),
	}
}
