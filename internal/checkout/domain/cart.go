package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
	"github.com/go-playground/validator/v10"
)

const MaxItemQuantity = 1000

var validate = validator.New(validator.WithRequiredStructEnabled())

type CartItem struct {
	ProductID int64 `validate:"gt=0"`
	Quantity  int64 `validate:"gt=0,lte=1000"`
}

type CheckoutRequest struct {
	Items          []CartItem    `validate:"required,min=1,max=100,dive"`
	Freight        money.Cents   `validate:"gte=0,lte=10000000000000"`
	PaymentMethod  PaymentMethod `validate:"required"`
	Card           *Card
	IdempotencyKey string `validate:"max=255"`
}

// ValidateCart checks the shape of the cart and the freight.
func (r CheckoutRequest) ValidateCart() error {
	if err := validate.Struct(r); err != nil {
		return toValidationError(err)
	}

	return nil
}

// ValidatePayment checks the payment method and card data against the time now.
func (r CheckoutRequest) ValidatePayment(now time.Time) error {
	if !r.PaymentMethod.IsKnown() {
		return &ValidationError{Msg: fmt.Sprintf("unsupported payment method %q", r.PaymentMethod)}
	}

	if !r.PaymentMethod.RequiresCard() {
		if r.Card != nil {
			return &ValidationError{Msg: fmt.Sprintf("card data is not accepted for %s", r.PaymentMethod)}
		}

		return nil
	}

	if r.Card == nil {
		return &ValidationError{Msg: fmt.Sprintf("card data is required for %s", r.PaymentMethod)}
	}

	return r.Card.Validate(now)
}

func (r CheckoutRequest) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(r.Items))
	ids := make([]int64, 0, len(r.Items))

	for _, item := range r.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}

// Fingerprint identifies the request content for idempotent replays. Only the last
// four digits of a card take part in it.
func (r CheckoutRequest) Fingerprint() string {
	var b strings.Builder

	for _, item := range r.Items {
		b.WriteString(strconv.FormatInt(item.ProductID, 10))
		b.WriteByte('x')
		b.WriteString(strconv.FormatInt(item.Quantity, 10))
		b.WriteByte(';')
	}

	b.WriteString("freight=")
	b.WriteString(strconv.FormatInt(int64(r.Freight), 10))
	b.WriteString(";method=")
	b.WriteString(string(r.PaymentMethod))

	if r.Card != nil {
		b.WriteString(";card=")
		b.WriteString(r.Card.LastFour())
		b.WriteByte('/')
		b.WriteString(strings.TrimSpace(r.Card.Expiry))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

type PricedCart struct {
	Lines    []OrderItem
	Subtotal money.Cents
	Freight  money.Cents
	Total    money.Cents
}

// PriceCart computes the total from catalog prices only. Repeated product lines are merged.
func PriceCart(items []CartItem, products map[int64]Product, freight money.Cents) (PricedCart, error) {
	lines := make([]OrderItem, 0, len(items))
	index := make(map[int64]int, len(items))

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return PricedCart{}, &ValidationError{Msg: fmt.Sprintf("product %d does not exist", item.ProductID)}
		}

		if i, ok := index[item.ProductID]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}

		index[item.ProductID] = len(lines)
		lines = append(lines, OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	var subtotal money.Cents
	for _, line := range lines {
		lineTotal, err := line.UnitPrice.Mul(line.Quantity)
		if err != nil {
			return PricedCart{}, &ValidationError{Msg: "cart total is too large"}
		}

		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return PricedCart{}, &ValidationError{Msg: "cart total is too large"}
		}
	}

	total, err := subtotal.Add(freight)
	if err != nil || total > money.MaxAmount {
		return PricedCart{}, &ValidationError{Msg: "cart total is too large"}
	}

	return PricedCart{
		Lines:    lines,
		Subtotal: subtotal,
		Freight:  freight,
		Total:    total,
	}, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Msg: "invalid checkout request"}
	}

	fe := fieldErrs[0]

	switch fe.StructField() {
	case "Items":
		if fe.Tag() == "max" {
			return &ValidationError{Msg: "cart has too many items"}
		}
		return &ValidationError{Msg: "cart must contain at least one item"}
	case "ProductID":
		return &ValidationError{Msg: "productId must be positive"}
	case "Quantity":
		return &ValidationError{Msg: fmt.Sprintf("quantity must be between 1 and %d", MaxItemQuantity)}
	case "Freight":
		if fe.Tag() == "lte" {
			return &ValidationError{Msg: "freight is too large"}
		}
		return &ValidationError{Msg: "freight must not be negative"}
	case "PaymentMethod":
		return &ValidationError{Msg: "paymentMethod is required"}
	case "IdempotencyKey":
		return &ValidationError{Msg: "idempotency key is too long"}
	default:
		return &ValidationError{Msg: fmt.Sprintf("%s is invalid", fe.Field())}
	}
}
