package finance

import "fmt"

// Conversion conventions. Both are approximations and are applied as-is.
const (
	// DaysPerMonth converts daily costs (food, local transport) to monthly.
	DaysPerMonth = 30

	// MonthsPerYear annualizes monthly income.
	MonthsPerYear = 12
)

// MonthlyIncome grosses up total monthly expenses by a flat tax rate given in
// percent, returning the pre-tax income needed to cover them.
func MonthlyIncome(totalExpenses, taxRatePct float64) (float64, error) {
	if !isFinite(totalExpenses) || totalExpenses < 0 {
		return 0, fmt.Errorf("%w: total expenses %v must be a non-negative number", ErrInvalidArgument, totalExpenses)
	}
	if !isFinite(taxRatePct) || taxRatePct < 0 || taxRatePct >= 100 {
		return 0, fmt.Errorf("%w: tax rate %v%% must be in [0, 100)", ErrInvalidArgument, taxRatePct)
	}
	return totalExpenses / (1 - taxRatePct/100), nil
}

// AnnualIncome scales a monthly figure to a year. No rounding is applied.
func AnnualIncome(monthly float64) float64 {
	return monthly * MonthsPerYear
}

// MonthlyPropertyTax spreads an annual property tax rate (percent of the
// house cost) across twelve months.
func MonthlyPropertyTax(houseCost, annualRatePct float64) float64 {
	return houseCost * (annualRatePct / 100) / MonthsPerYear
}

// MonthlyFromDaily approximates a month as DaysPerMonth days.
func MonthlyFromDaily(daily float64) float64 {
	return daily * DaysPerMonth
}
