package money

import (
	"errors"
	"fmt"
	"math"
)

// Cents is an amount of money in the smallest currency unit.
type Cents int64

// MaxAmount is the largest amount whose Decimal form survives a JSON round trip without losing cents.
const MaxAmount Cents = 10_000_000_000_000

var ErrOverflow = errors.New("money amount overflows")

// FromDecimal converts a decimal amount to cents, rounding half away from zero.
func FromDecimal(amount float64) (Cents, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid amount %v", amount)
	}

	scaled := math.Round(amount * 100)
	if scaled >= math.MaxInt64 || scaled < math.MinInt64 {
		return 0, ErrOverflow
	}

	return Cents(scaled), nil
}

// Decimal returns the amount in whole currency units.
func (c Cents) Decimal() float64 {
	return float64(c) / 100
}

// Add returns c+other, failing instead of wrapping around.
func (c Cents) Add(other Cents) (Cents, error) {
	if (other > 0 && c > math.MaxInt64-other) || (other < 0 && c < math.MinInt64-other) {
		return 0, ErrOverflow
	}

	return c + other, nil
}

// Mul returns c*quantity, failing instead of wrapping around.
func (c Cents) Mul(quantity int64) (Cents, error) {
	if c == 0 || quantity == 0 {
		return 0, nil
	}

	result := int64(c) * quantity
	if result/quantity != int64(c) {
		return 0, ErrOverflow
	}

	return Cents(result), nil
}

func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
