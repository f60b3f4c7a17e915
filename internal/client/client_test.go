package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/lifecost/internal/config"
	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/pipeline"
	"github.com/theirongolddev/lifecost/internal/server"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	profiles, err := config.DefaultProfiles()
	require.NoError(t, err)

	ts := httptest.NewServer(server.New(server.Config{Profiles: profiles}).Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestNew(t *testing.T) {
	assert.Nil(t, New("  "))
	assert.Equal(t, "http://localhost:8788", New("localhost:8788/").baseURL)
	assert.Equal(t, "https://calc.example", New("https://calc.example").baseURL)
}

func TestHealthAndCountries(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	countries, err := c.Countries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 4)
	assert.Equal(t, "us", countries[0].Code)
	assert.Equal(t, "€", countries[1].CurrencySymbol)
}

func TestEstimate(t *testing.T) {
	c := newTestClient(t)

	est, err := c.Estimate(context.Background(), "us", nil)
	require.NoError(t, err)
	assert.InDelta(t, 11531.58, est.MonthlyIncome, 0.01)
	assert.Equal(t, est.MonthlyIncome*12, est.AnnualIncome)
	assert.Equal(t, "Mortgage", est.Expenses[0].Category)

	est, err = c.Estimate(context.Background(), "South Africa", model.Values{model.FieldTaxRate: 0})
	require.NoError(t, err)
	assert.Equal(t, est.TotalMonthly, est.MonthlyIncome)
}

func TestEstimateErrors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Estimate(ctx, "atlantis", nil)
	assert.ErrorIs(t, err, pipeline.ErrUnknownCountry)

	_, err = c.Estimate(ctx, "us", model.Values{model.FieldTaxRate: 100})
	assert.ErrorIs(t, err, finance.ErrInvalidArgument)

	_, err = c.Estimate(ctx, "us", model.Values{"pool_cleaning": 50})
	assert.ErrorIs(t, err, finance.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "pool_cleaning")
}

func TestServerFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	err := New(ts.URL).Health(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "boom")

	ts.Close()
	err = New(ts.URL).Health(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
