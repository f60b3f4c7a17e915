package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_OrderAndTotal(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add("Mortgage", 1796.18))
	require.NoError(t, l.Add("Food", 1200))
	require.NoError(t, l.Add("Savings", 500))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []Expense{
		{Category: "Mortgage", Amount: 1796.18},
		{Category: "Food", Amount: 1200},
		{Category: "Savings", Amount: 500},
	}, l.Items())
	assert.InDelta(t, 3496.18, l.Total(), 1e-9)

	got, ok := l.Amount("Food")
	assert.True(t, ok)
	assert.Equal(t, 1200.0, got)
	_, ok = l.Amount("Travel")
	assert.False(t, ok)
}

func TestLedger_RejectsDuplicates(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add("Fuel", 200))
	err := l.Add("Fuel", 100)
	assert.ErrorIs(t, err, ErrDuplicateCategory)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 200.0, l.Total())
}

func TestLedger_RejectsInvalidLines(t *testing.T) {
	l := NewLedger()
	assert.ErrorIs(t, l.Add("", 10), ErrInvalidArgument)
	assert.ErrorIs(t, l.Add("Travel", -1), ErrInvalidArgument)
	assert.ErrorIs(t, l.Add("Travel", math.Inf(1)), ErrInvalidArgument)
	assert.Zero(t, l.Len())
}

func TestLedger_ZeroValue(t *testing.T) {
	var l Ledger
	require.NoError(t, l.Add("Utilities", 250))
	assert.Equal(t, 250.0, l.Total())
}

func TestLedger_Columns(t *testing.T) {
	l := NewLedger()
	for i, name := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, l.Add(name, float64(i)))
	}
	left, right := l.Columns()
	assert.Len(t, left, 2)
	assert.Len(t, right, 3)
	assert.Equal(t, "A", left[0].Category)
	assert.Equal(t, "C", right[0].Category)

	empty := NewLedger()
	left, right = empty.Columns()
	assert.Empty(t, left)
	assert.Empty(t, right)
}

func TestLedger_Shares(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add("Mortgage", 750))
	require.NoError(t, l.Add("Food", 250))

	shares := l.Shares()
	require.Len(t, shares, 2)
	assert.InDelta(t, 0.75, shares[0].Fraction, 1e-12)
	assert.InDelta(t, 0.25, shares[1].Fraction, 1e-12)

	zero := NewLedger()
	require.NoError(t, zero.Add("Travel", 0))
	assert.Equal(t, []Share{{Category: "Travel"}}, zero.Shares())
}

func TestLedger_ItemsIsACopy(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add("Fuel", 200))
	items := l.Items()
	items[0].Amount = 0
	assert.Equal(t, 200.0, l.Total())
}
