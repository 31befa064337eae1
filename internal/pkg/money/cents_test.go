package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		amount   float64
		expected Cents
		wantErr  bool
	}

	tests := []testCase{
		{name: "whole", amount: 20, expected: 2000},
		{name: "fraction", amount: 20.5, expected: 2050},
		{name: "binary imprecision", amount: 0.1 + 0.2, expected: 30},
		{name: "half cent rounds away from zero", amount: 0.125, expected: 13},
		{name: "negative half cent", amount: -0.125, expected: -13},
		{name: "zero", amount: 0, expected: 0},
		{name: "nan", amount: math.NaN(), wantErr: true},
		{name: "infinity", amount: math.Inf(1), wantErr: true},
		{name: "too large", amount: 1e20, wantErr: true},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := FromDecimal(tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestCents_Arithmetic(t *testing.T) {
	t.Parallel()

	sum, err := Cents(5990).Add(2050)
	require.NoError(t, err)
	assert.Equal(t, Cents(8040), sum)

	_, err = Cents(math.MaxInt64).Add(1)
	assert.ErrorIs(t, err, ErrOverflow)

	product, err := Cents(5990).Mul(2)
	require.NoError(t, err)
	assert.Equal(t, Cents(11980), product)

	_, err = Cents(math.MaxInt64 / 2).Mul(3)
	assert.ErrorIs(t, err, ErrOverflow)

	assert.Equal(t, 169.4, Cents(16940).Decimal())
	assert.Equal(t, "169.40", Cents(16940).String())
	assert.Equal(t, "-0.05", Cents(-5).String())
}

func TestCents_DecimalRoundTrip(t *testing.T) {
	t.Parallel()

	amounts := []Cents{0, 1, 17020, 6990, MaxAmount - 1, MaxAmount}

	for _, amount := range amounts {
		encoded, err := json.Marshal(amount.Decimal())
		require.NoError(t, err)

		var decoded float64
		require.NoError(t, json.Unmarshal(encoded, &decoded))

		back, err := FromDecimal(decoded)
		require.NoError(t, err)
		assert.Equal(t, amount, back, "amount %s encoded as %s", amount, encoded)
	}
}
