package model

import "github.com/theirongolddev/lifecost/internal/finance"

// Estimate is the result of one computation pass for a country.
type Estimate struct {
	Country        string            `json:"country"`
	CountryName    string            `json:"country_name"`
	CurrencySymbol string            `json:"currency_symbol"`
	Decimals       int               `json:"decimals"`
	Expenses       []finance.Expense `json:"expenses"`
	TotalMonthly   float64           `json:"total_monthly_expenses"`
	TaxRate        float64           `json:"tax_rate"`
	MonthlyIncome  float64           `json:"required_monthly_income"`
	AnnualIncome   float64           `json:"required_annual_income"`
}

// Columns splits the expenses into the two display columns.
func (e Estimate) Columns() (left, right []finance.Expense) {
	return finance.SplitColumns(e.Expenses)
}

// Shares returns each expense's fraction of the monthly total.
func (e Estimate) Shares() []finance.Share {
	return finance.SharesOf(e.Expenses)
}
