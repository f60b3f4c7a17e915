package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizedPayment_Mortgage(t *testing.T) {
	// 500k house, 20% down, 3.5% over 30 years.
	got, err := AmortizedPayment(400000, 0.035/12, 360)
	require.NoError(t, err)
	assert.InDelta(t, 1796.18, got, 0.01)
}

func TestAmortizedPayment_ZeroRate(t *testing.T) {
	got, err := AmortizedPayment(12000, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	for _, n := range []int{1, 7, 60, 360} {
		got, err := AmortizedPayment(35000, 0, n)
		require.NoError(t, err)
		assert.Equal(t, 35000/float64(n), got, "n=%d", n)
	}
}

func TestAmortizedPayment_ZeroPrincipal(t *testing.T) {
	for _, tc := range []struct {
		rate    float64
		periods int
	}{
		{0, 1},
		{0.035 / 12, 360},
		{0.15 / 12, 12},
	} {
		got, err := AmortizedPayment(0, tc.rate, tc.periods)
		require.NoError(t, err)
		assert.Zero(t, got)
	}
}

func TestAmortizedPayment_PositiveForPositivePrincipal(t *testing.T) {
	for _, p := range []float64{1, 1500, 400000, 1e9} {
		for _, r := range []float64{0.0001, 0.03 / 12, 0.15 / 12} {
			for _, n := range []int{1, 12, 84, 360} {
				got, err := AmortizedPayment(p, r, n)
				require.NoError(t, err)
				assert.Greater(t, got, 0.0)
				assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
			}
		}
	}
}

func TestAmortizedPayment_SinglePeriod(t *testing.T) {
	// One period repays principal plus one period of interest.
	got, err := AmortizedPayment(1000, 0.01, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1010, got, 1e-9)
}

func TestAmortizedPayment_MonotonicInRate(t *testing.T) {
	prev := -1.0
	for bp := 0; bp <= 1500; bp += 25 {
		rate := float64(bp) / 10000 / 12
		got, err := AmortizedPayment(400000, rate, 360)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "rate=%v", rate)
		prev = got
	}
}

func TestAmortizedPayment_MonotonicInPrincipal(t *testing.T) {
	prev := -1.0
	for p := 0.0; p <= 2_000_000; p += 50_000 {
		got, err := AmortizedPayment(p, 0.07/12, 240)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "principal=%v", p)
		prev = got
	}
}

func TestAmortizedPayment_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		periods   int
	}{
		{"negative principal", -1, 0.01, 12},
		{"negative rate", 1000, -0.01, 12},
		{"zero periods", 1000, 0.01, 0},
		{"negative periods", 1000, 0.01, -5},
		{"nan principal", math.NaN(), 0.01, 12},
		{"inf rate", 1000, math.Inf(1), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AmortizedPayment(tt.principal, tt.rate, tt.periods)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestAmortizedPayment_TinyRates(t *testing.T) {
	for _, r := range []float64{1e-17, 1e-14, 1e-12} {
		got, err := AmortizedPayment(1000, r, 12)
		require.NoError(t, err)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got), "rate=%v", r)
		assert.InDelta(t, 1000.0/12, got, 1e-6, "rate=%v", r)
	}

	// Any positive rate costs more than the interest-free P / n.
	got, err := AmortizedPayment(12000, 1e-12, 12)
	require.NoError(t, err)
	assert.Greater(t, got, 1000.0)
}

func TestAmortizedPayment_MonotonicFromZeroRate(t *testing.T) {
	prev, err := AmortizedPayment(12000, 0, 12)
	require.NoError(t, err)
	for _, r := range []float64{1e-12, 1e-10, 1e-8, 1e-6, 1e-4, 1e-2, 1} {
		got, err := AmortizedPayment(12000, r, 12)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "rate=%v", r)
		prev = got
	}
}

func TestAmortizedPayment_ManyPeriods(t *testing.T) {
	// Over a very long term the payment approaches interest only.
	for _, n := range []int{100_000, 1_000_000} {
		got, err := AmortizedPayment(1000, 0.01, n)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, got, 1e-9, "n=%d", n)
	}

	got, err := AmortizedPayment(1000, 1e-9, 100_000)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
	assert.Greater(t, got, 1000.0/100_000)
}
