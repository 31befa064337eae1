package domain

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProducts = map[int64]Product{
	1: {ID: 1, Name: "T-shirt", Price: 5990},
	2: {ID: 2, Name: "Mug", Price: 2990},
}

func TestCheckoutRequest_ValidateCart(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		req         CheckoutRequest
		expectedMsg string
	}

	tests := []testCase{
		{
			name: "valid cart",
			req:  CheckoutRequest{Items: []CartItem{{ProductID: 1, Quantity: 2}}, PaymentMethod: PaymentMethodPix},
		},
		{
			name:        "empty cart",
			req:         CheckoutRequest{PaymentMethod: PaymentMethodPix},
			expectedMsg: "cart must contain at least one item",
		},
		{
			name:        "zero quantity",
			req:         CheckoutRequest{Items: []CartItem{{ProductID: 1, Quantity: 0}}, PaymentMethod: PaymentMethodPix},
			expectedMsg: "quantity must be between 1 and 1000",
		},
		{
			name:        "negative product id",
			req:         CheckoutRequest{Items: []CartItem{{ProductID: -1, Quantity: 1}}, PaymentMethod: PaymentMethodPix},
			expectedMsg: "productId must be positive",
		},
		{
			name:        "negative freight",
			req:         CheckoutRequest{Items: []CartItem{{ProductID: 1, Quantity: 1}}, Freight: -1, PaymentMethod: PaymentMethodPix},
			expectedMsg: "freight must not be negative",
		},
		{
			name:        "freight above limit",
			req:         CheckoutRequest{Items: []CartItem{{ProductID: 1, Quantity: 1}}, Freight: money.MaxAmount + 1, PaymentMethod: PaymentMethodPix},
			expectedMsg: "freight is too large",
		},
		{
			name:        "missing payment method",
			req:         CheckoutRequest{Items: []CartItem{{ProductID: 1, Quantity: 1}}},
			expectedMsg: "paymentMethod is required",
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.ValidateCart()

			if tt.expectedMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, &ValidationError{})
			assert.EqualError(t, err, tt.expectedMsg)
		})
	}
}

func TestCheckoutRequest_ValidatePayment(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	card := &Card{Number: "4111111111111111", Name: "Test", Expiry: "12/2030", CVV: "123"}

	assert.NoError(t, CheckoutRequest{PaymentMethod: PaymentMethodCreditCard, Card: card}.ValidatePayment(now))
	assert.NoError(t, CheckoutRequest{PaymentMethod: PaymentMethodBoleto}.ValidatePayment(now))
	assert.NoError(t, CheckoutRequest{PaymentMethod: PaymentMethodPix}.ValidatePayment(now))

	assert.ErrorIs(t, CheckoutRequest{PaymentMethod: "cash"}.ValidatePayment(now), &ValidationError{})
	assert.ErrorIs(t, CheckoutRequest{PaymentMethod: PaymentMethodCreditCard}.ValidatePayment(now), &ValidationError{})
	assert.ErrorIs(t, CheckoutRequest{PaymentMethod: PaymentMethodBoleto, Card: card}.ValidatePayment(now), &ValidationError{})

	expired := *card
	expired.Expiry = "01/2020"
	assert.ErrorIs(t, CheckoutRequest{PaymentMethod: PaymentMethodCreditCard, Card: &expired}.ValidatePayment(now), &ValidationError{})
}

func TestPriceCart(t *testing.T) {
	t.Parallel()

	t.Run("computes total from catalog prices", func(t *testing.T) {
		t.Parallel()

		priced, err := PriceCart([]CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}, testProducts, 2050)
		require.NoError(t, err)

		assert.Equal(t, money.Cents(14970), priced.Subtotal)
		assert.Equal(t, money.Cents(17020), priced.Total)
		assert.Len(t, priced.Lines, 2)
	})

	t.Run("merges repeated lines", func(t *testing.T) {
		t.Parallel()

		priced, err := PriceCart([]CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 2}}, testProducts, 0)
		require.NoError(t, err)

		require.Len(t, priced.Lines, 1)
		assert.Equal(t, int64(3), priced.Lines[0].Quantity)
		assert.Equal(t, money.Cents(17970), priced.Total)
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()

		_, err := PriceCart([]CartItem{{ProductID: 99, Quantity: 1}}, testProducts, 0)
		assert.ErrorIs(t, err, &ValidationError{})
	})

	t.Run("total above exact decimal range", func(t *testing.T) {
		t.Parallel()

		_, err := PriceCart([]CartItem{{ProductID: 1, Quantity: 1}}, testProducts, money.MaxAmount)
		assert.ErrorIs(t, err, &ValidationError{})
	})

	t.Run("overflow", func(t *testing.T) {
		t.Parallel()

		huge := map[int64]Product{1: {ID: 1, Price: money.Cents(1 << 62)}}
		_, err := PriceCart([]CartItem{{ProductID: 1, Quantity: 4}}, huge, 0)
		assert.ErrorIs(t, err, &ValidationError{})
	})
}

func TestPriceCart_RandomCarts(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		seed     uint64
		products int
		lines    int
	}

	tests := []testCase{
		{name: "single product", seed: 1, products: 1, lines: 5},
		{name: "small catalog with repeats", seed: 7, products: 3, lines: 20},
		{name: "wide catalog", seed: 42, products: 50, lines: 100},
		{name: "one line", seed: 2026, products: 10, lines: 1},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(tt.seed, tt.seed^0x9e3779b97f4a7c15))

			for round := 0; round < 50; round++ {
				catalog := make(map[int64]Product, tt.products)
				for id := int64(1); id <= int64(tt.products); id++ {
					catalog[id] = Product{ID: id, Price: money.Cents(rng.Int64N(1_000_000))}
				}

				items := make([]CartItem, tt.lines)
				var expected int64
				for i := range items {
					items[i] = CartItem{ProductID: rng.Int64N(int64(tt.products)) + 1, Quantity: rng.Int64N(MaxItemQuantity) + 1}
					expected += int64(catalog[items[i].ProductID].Price) * items[i].Quantity
				}
				freight := money.Cents(rng.Int64N(100_000))
				expected += int64(freight)

				first, err := PriceCart(items, catalog, freight)
				require.NoError(t, err)
				assert.Equal(t, money.Cents(expected), first.Total)
				assert.Equal(t, first.Total-freight, first.Subtotal)

				var quantity int64
				for _, line := range first.Lines {
					assert.Equal(t, catalog[line.ProductID].Price, line.UnitPrice)
					quantity += line.Quantity
				}
				var requested int64
				for _, item := range items {
					requested += item.Quantity
				}
				assert.Equal(t, requested, quantity)

				second, err := PriceCart(items, catalog, freight)
				require.NoError(t, err)
				assert.Equal(t, first, second)
			}
		})
	}
}

func TestCheckoutRequest_Fingerprint(t *testing.T) {
	t.Parallel()

	base := CheckoutRequest{
		Items:         []CartItem{{ProductID: 1, Quantity: 2}},
		Freight:       2050,
		PaymentMethod: PaymentMethodCreditCard,
		Card:          &Card{Number: "4111111111111111", Expiry: "12/2030", CVV: "123"},
	}

	same := base
	same.IdempotencyKey = "other-key"
	same.Card = &Card{Number: "4111 1111 1111 1111", Expiry: "12/2030", CVV: "999"}
	assert.Equal(t, base.Fingerprint(), same.Fingerprint())

	differentFreight := base
	differentFreight.Freight = 1000
	assert.NotEqual(t, base.Fingerprint(), differentFreight.Fingerprint())

	differentItems := base
	differentItems.Items = []CartItem{{ProductID: 1, Quantity: 3}}
	assert.NotEqual(t, base.Fingerprint(), differentItems.Fingerprint())
}

func TestCheckoutRequest_ProductIDs(t *testing.T) {
	t.Parallel()

	req := CheckoutRequest{Items: []CartItem{{ProductID: 2}, {ProductID: 1}, {ProductID: 2}}}
	assert.Equal(t, []int64{2, 1}, req.ProductIDs())
}
