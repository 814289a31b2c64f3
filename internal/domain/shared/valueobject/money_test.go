package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(12.50), BRL)
		require.NoError(t, err)
		assert.Equal(t, BRL, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(12.50)))
	})

	t.Run("empty currency rejected", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(1), "")
		assert.Error(t, err)
	})

	t.Run("from string", func(t *testing.T) {
		m, err := NewMoneyFromString("99.90", BRL)
		require.NoError(t, err)
		assert.Equal(t, "99.90", m.StringFixed(2))

		_, err = NewMoneyFromString("not-a-number", BRL)
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyBRLFromFloat(100.00)
	b := NewMoneyBRLFromFloat(15.00)

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "115.00", sum.StringFixed(2))
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "85.00", diff.StringFixed(2))
	})

	t.Run("multiply by int", func(t *testing.T) {
		m := NewMoneyBRLFromFloat(12.00).MultiplyByInt(3)
		assert.Equal(t, "36.00", m.StringFixed(2))
	})

	t.Run("currency mismatch", func(t *testing.T) {
		usd, err := NewMoneyFromFloat(5, USD)
		require.NoError(t, err)
		_, err = a.Add(usd)
		assert.Error(t, err)
		_, err = a.Subtract(usd)
		assert.Error(t, err)
	})

	t.Run("negate and abs", func(t *testing.T) {
		n := b.Negate()
		assert.True(t, n.IsNegative())
		assert.True(t, n.Abs().Equals(b))
	})
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyBRLFromFloat(10)
	b := NewMoneyBRLFromFloat(20)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, a.Equals(NewMoneyBRLFromFloat(10)))
	assert.False(t, a.Equals(b))
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyBRLFromFloat(42.50)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"42.5","currency":"BRL"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equals(m))
}

func TestZeroBRL(t *testing.T) {
	z := ZeroBRL()
	assert.True(t, z.IsZero())
	assert.Equal(t, BRL, z.Currency())
}
