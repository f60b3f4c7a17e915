// Package pipeline turns a country profile and user inputs into an income estimate.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/model"
)

// ErrUnknownCountry is returned when no profile matches a code or name.
var ErrUnknownCountry = errors.New("unknown country")

// Expense categories, in ledger order.
const (
	CategoryMortgage            = "Mortgage"
	CategoryPropertyTax         = "Property Tax"
	CategoryHouseMaintenance    = "House Maintenance"
	CategoryHomeownersInsurance = "Homeowners Insurance"
	CategoryVehiclePayment      = "Vehicle Payment"
	CategoryVehicleInsurance    = "Vehicle Insurance"
	CategoryVehicleMaintenance  = "Vehicle Maintenance"
	CategoryFuel                = "Fuel"
	CategoryFood                = "Food"
	CategoryTransport           = "Transport"
	CategoryEntertainment       = "Entertainment"
	CategoryPersonalCare        = "Personal Care"
	CategoryUtilities           = "Utilities"
	CategoryHealthInsurance     = "Health Insurance"
	CategoryLifeInsurance       = "Life Insurance"
	CategoryTravel              = "Travel"
	CategoryMisc                = "Miscellaneous"
	CategorySavings             = "Savings"
	CategoryInvestments         = "Investments"
	CategoryRetirement          = "Retirement Savings"
)

// FindProfile returns the profile whose code or name matches s, ignoring case.
func FindProfile(profiles []model.Profile, s string) (model.Profile, error) {
	for _, p := range profiles {
		if p.Matches(s) {
			return p, nil
		}
	}
	return model.Profile{}, fmt.Errorf("%w: %q", ErrUnknownCountry, s)
}

// Resolve merges values over the profile defaults. Keys the profile does not
// define and negative or non-finite values are rejected.
func Resolve(p model.Profile, values model.Values) (model.Values, error) {
	out := p.Defaults()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := values[k]
		if _, ok := p.Field(k); !ok {
			return nil, fmt.Errorf("%w: %s has no field %q", finance.ErrInvalidArgument, p.Code, k)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative number, got %v", finance.ErrInvalidArgument, k, v)
		}
		out[k] = v
	}
	return out, nil
}

// BuildLedger computes every monthly expense line for the profile.
func BuildLedger(p model.Profile, values model.Values) (*finance.Ledger, error) {
	v, err := Resolve(p, values)
	if err != nil {
		return nil, err
	}
	return buildLedger(p, v)
}

func buildLedger(p model.Profile, v model.Values) (*finance.Ledger, error) {
	loan := v[model.FieldHouseCost] * (1 - v[model.FieldDownPaymentPct]/100)
	if loan < 0 {
		return nil, fmt.Errorf("%w: down payment above 100%%", finance.ErrInvalidArgument)
	}
	mortgage, err := monthlyLoanPayment(loan, v[model.FieldMortgageRate], v[model.FieldMortgageYears])
	if err != nil {
		return nil, fmt.Errorf("mortgage: %w", err)
	}
	vehicle, err := monthlyLoanPayment(v[model.FieldVehicleCost], v[model.FieldVehicleLoanRate], v[model.FieldVehicleLoanYears])
	if err != nil {
		return nil, fmt.Errorf("vehicle loan: %w", err)
	}

	lines := []finance.Expense{
		{Category: CategoryMortgage, Amount: mortgage},
		{Category: CategoryPropertyTax, Amount: finance.MonthlyPropertyTax(v[model.FieldHouseCost], v[model.FieldPropertyTaxRate])},
		{Category: CategoryHouseMaintenance, Amount: v[model.FieldHouseMaintenance]},
		{Category: CategoryHomeownersInsurance, Amount: v[model.FieldHomeownersInsurance]},
		{Category: CategoryVehiclePayment, Amount: vehicle},
		{Category: CategoryVehicleInsurance, Amount: v[model.FieldVehicleInsurance]},
		{Category: CategoryVehicleMaintenance, Amount: v[model.FieldVehicleMaintenance]},
		{Category: CategoryFuel, Amount: v[model.FieldFuel]},
		{Category: CategoryFood, Amount: finance.MonthlyFromDaily(v[model.FieldDailyFood])},
		{Category: CategoryTransport, Amount: finance.MonthlyFromDaily(v[model.FieldDailyTransport])},
		{Category: CategoryEntertainment, Amount: v[model.FieldEntertainment]},
		{Category: CategoryPersonalCare, Amount: v[model.FieldPersonalCare]},
		{Category: CategoryUtilities, Amount: v[model.FieldUtilities]},
		{Category: CategoryHealthInsurance, Amount: v[model.FieldHealthInsurance]},
		{Category: CategoryLifeInsurance, Amount: v[model.FieldLifeInsurance]},
		{Category: CategoryTravel, Amount: v[model.FieldTravel]},
		{Category: CategoryMisc, Amount: v[model.FieldMisc]},
	}
	for _, x := range p.Extras {
		lines = append(lines, finance.Expense{Category: x.Category, Amount: v[x.Key]})
	}
	lines = append(lines,
		finance.Expense{Category: CategorySavings, Amount: v[model.FieldSavings]},
		finance.Expense{Category: CategoryInvestments, Amount: v[model.FieldInvestments]},
		finance.Expense{Category: CategoryRetirement, Amount: v[model.FieldRetirement]},
	)

	ledger := finance.NewLedger()
	for _, e := range lines {
		if err := ledger.Add(e.Category, e.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(e.Category), err)
		}
	}
	return ledger, nil
}

// Estimate computes the required income for the profile and values. Nothing
// is cached; every call recomputes from scratch.
func Estimate(p model.Profile, values model.Values) (model.Estimate, error) {
	v, err := Resolve(p, values)
	if err != nil {
		return model.Estimate{}, err
	}
	ledger, err := buildLedger(p, v)
	if err != nil {
		return model.Estimate{}, err
	}

	taxRate := v[model.FieldTaxRate]

	total := ledger.Total()
	monthly, err := finance.MonthlyIncome(total, taxRate)
	if err != nil {
		return model.Estimate{}, fmt.Errorf("income: %w", err)
	}

	return model.Estimate{
		Country:        p.Code,
		CountryName:    p.Name,
		CurrencySymbol: p.CurrencySymbol,
		Decimals:       p.Decimals,
		Expenses:       ledger.Items(),
		TotalMonthly:   total,
		TaxRate:        taxRate,
		MonthlyIncome:  monthly,
		AnnualIncome:   finance.AnnualIncome(monthly),
	}, nil
}

// monthlyLoanPayment amortizes principal at an annual percentage rate over
// a term in years, paid monthly.
func monthlyLoanPayment(principal, annualRatePct, years float64) (float64, error) {
	periods := int(math.Round(years * finance.MonthsPerYear))
	return finance.AmortizedPayment(principal, annualRatePct/100/finance.MonthsPerYear, periods)
}
