package http

import (
	"net/http"

	"github.com/Lexv0lk/checkout-store/internal/gateway/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
	"github.com/gin-gonic/gin"
)

const (
	OrderIDKey = "orderId"

	idempotencyKeyHeader = "Idempotency-Key"
)

type cartItemBody struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type cardDataBody struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// Field rules live in the checkout service; the gateway only shapes the request.
type checkoutRequestBody struct {
	Items         []cartItemBody `json:"items"`
	Freight       float64        `json:"freight"`
	PaymentMethod string         `json:"paymentMethod"`
	CardData      *cardDataBody  `json:"cardData"`
}

type receiptResponse struct {
	OrderID    string  `json:"orderId"`
	UserID     string  `json:"userId"`
	ValorFinal float64 `json:"valorFinal"`
	Status     string  `json:"status"`
}

type CheckoutHandler struct {
	service domain.CheckoutService
	logger  logging.Logger
}

func NewCheckoutHandler(service domain.CheckoutService, logger logging.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var body checkoutRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	freight, err := money.FromDecimal(body.Freight)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "freight is invalid")
		return
	}

	req := domain.CheckoutRequest{
		Items:          make([]domain.CartItem, 0, len(body.Items)),
		FreightCents:   int64(freight),
		PaymentMethod:  body.PaymentMethod,
		IdempotencyKey: c.GetHeader(idempotencyKeyHeader),
	}

	for _, item := range body.Items {
		req.Items = append(req.Items, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if body.CardData != nil {
		req.Card = &domain.CardData{
			Number: body.CardData.Number,
			Name:   body.CardData.Name,
			Expiry: body.CardData.Expiry,
			CVV:    body.CardData.CVV,
		}
	}

	receipt, err := h.service.Checkout(c.Request.Context(), req)
	if err != nil {
		handleGRPCError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toReceiptResponse(receipt))
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	receipt, err := h.service.GetOrder(c.Request.Context(), c.Param(OrderIDKey))
	if err != nil {
		handleGRPCError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toReceiptResponse(receipt))
}

func toReceiptResponse(receipt domain.Receipt) receiptResponse {
	return receiptResponse{
		OrderID:    receipt.OrderID,
		UserID:     receipt.UserID,
		ValorFinal: money.Cents(receipt.ValorFinalCents).Decimal(),
		Status:     receipt.Status,
	}
}
