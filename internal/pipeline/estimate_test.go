package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/lifecost/internal/config"
	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/model"
)

func loadProfile(t *testing.T, code string) model.Profile {
	t.Helper()
	profiles, err := config.DefaultProfiles()
	require.NoError(t, err)
	p, err := FindProfile(profiles, code)
	require.NoError(t, err)
	return p
}

func TestEstimateUSADefaults(t *testing.T) {
	est, err := Estimate(loadProfile(t, "us"), nil)
	require.NoError(t, err)

	assert.Equal(t, "us", est.Country)
	assert.Equal(t, "$", est.CurrencySymbol)
	require.Len(t, est.Expenses, 20)

	assert.Equal(t, CategoryMortgage, est.Expenses[0].Category)
	assert.InDelta(t, 1796.18, est.Expenses[0].Amount, 0.01)
	assert.InDelta(t, 500.0, est.Expenses[1].Amount, 1e-9, "property tax")
	assert.InDelta(t, 652.51, est.Expenses[4].Amount, 0.01, "vehicle payment")
	assert.Equal(t, finance.Expense{Category: CategoryFood, Amount: 1200}, est.Expenses[8])
	assert.Equal(t, finance.Expense{Category: CategoryTransport, Amount: 300}, est.Expenses[9])

	assert.InDelta(t, 8648.68, est.TotalMonthly, 0.01)
	assert.Equal(t, 25.0, est.TaxRate)
	assert.InDelta(t, 11531.58, est.MonthlyIncome, 0.01)
	assert.Equal(t, est.MonthlyIncome*12, est.AnnualIncome)
}

func TestEstimateCategoryOrderWithExtras(t *testing.T) {
	est, err := Estimate(loadProfile(t, "za"), nil)
	require.NoError(t, err)

	var cats []string
	for _, e := range est.Expenses {
		cats = append(cats, e.Category)
	}
	assert.Equal(t, []string{
		CategoryMortgage, CategoryPropertyTax, CategoryHouseMaintenance, CategoryHomeownersInsurance,
		CategoryVehiclePayment, CategoryVehicleInsurance, CategoryVehicleMaintenance, CategoryFuel,
		CategoryFood, CategoryTransport, CategoryEntertainment, CategoryPersonalCare,
		CategoryUtilities, CategoryHealthInsurance, CategoryLifeInsurance, CategoryTravel, CategoryMisc,
		"Private Security",
		CategorySavings, CategoryInvestments, CategoryRetirement,
	}, cats)

	assert.InDelta(t, 57682.89, est.TotalMonthly, 0.01)
	assert.InDelta(t, 82404.12, est.MonthlyIncome, 0.01)
}

func TestEstimateOverridesValues(t *testing.T) {
	p := loadProfile(t, "us")

	est, err := Estimate(p, model.Values{model.FieldDownPaymentPct: 100, model.FieldVehicleCost: 0, model.FieldTaxRate: 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, est.Expenses[0].Amount, "no loan, no mortgage")
	assert.Equal(t, 0.0, est.Expenses[4].Amount)
	assert.Equal(t, est.TotalMonthly, est.MonthlyIncome)
}

func TestEstimateZeroRateLoan(t *testing.T) {
	p := loadProfile(t, "us")

	est, err := Estimate(p, model.Values{model.FieldVehicleCost: 12000, model.FieldVehicleLoanRate: 0, model.FieldVehicleLoanYears: 1})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, est.Expenses[4].Amount)
}

func TestEstimateRejectsBadValues(t *testing.T) {
	p := loadProfile(t, "us")

	tests := []struct {
		name   string
		values model.Values
	}{
		{"negative", model.Values{model.FieldFuel: -1}},
		{"nan", model.Values{model.FieldFuel: math.NaN()}},
		{"unknown key", model.Values{"private_security": 10}},
		{"tax 100", model.Values{model.FieldTaxRate: 100}},
		{"zero term", model.Values{model.FieldMortgageYears: 0}},
		{"down payment above 100", model.Values{model.FieldDownPaymentPct: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(p, tt.values)
			assert.ErrorIs(t, err, finance.ErrInvalidArgument)
		})
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	p := loadProfile(t, "kr")
	a, err := Estimate(p, nil)
	require.NoError(t, err)
	b, err := Estimate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "Public Transportation", a.Expenses[17].Category)
}

func TestResolveFillsDefaults(t *testing.T) {
	p := loadProfile(t, "nl")
	in := model.Values{model.FieldFuel: 99}

	v, err := Resolve(p, in)
	require.NoError(t, err)
	assert.Equal(t, 99.0, v[model.FieldFuel])
	assert.Equal(t, 400000.0, v[model.FieldHouseCost])
	assert.Len(t, in, 1, "input not mutated")
}

func TestBuildLedgerColumns(t *testing.T) {
	ledger, err := BuildLedger(loadProfile(t, "us"), nil)
	require.NoError(t, err)

	left, right := ledger.Columns()
	assert.Len(t, left, 10)
	assert.Len(t, right, 10)
	assert.Equal(t, CategoryUtilities, right[2].Category)
}

func TestFindProfile(t *testing.T) {
	profiles, err := config.DefaultProfiles()
	require.NoError(t, err)

	for _, s := range []string{"za", "ZA", "South Africa", " south africa "} {
		p, err := FindProfile(profiles, s)
		require.NoError(t, err, s)
		assert.Equal(t, "za", p.Code)
	}

	_, err = FindProfile(profiles, "atlantis")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestEstimateNearZeroMortgageRate(t *testing.T) {
	p := loadProfile(t, "us")

	est, err := Estimate(p, model.Values{model.FieldMortgageRate: 1e-14})
	require.NoError(t, err)
	assert.InDelta(t, 400000.0/360, est.Expenses[0].Amount, 1e-6)

	zero, err := Estimate(p, model.Values{model.FieldMortgageRate: 0})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, est.MonthlyIncome, zero.MonthlyIncome)
}

func TestLedgerUsesStandardCategories(t *testing.T) {
	ledger, err := BuildLedger(loadProfile(t, "us"), nil)
	require.NoError(t, err)

	var cats []string
	for _, e := range ledger.Items() {
		cats = append(cats, e.Category)
	}
	assert.Equal(t, config.StandardCategories(), cats)
}
