// Package model defines the plain data types shared across lifecost.
package model

import "strings"

// FieldKind tells the presentation layer how to label and format a field.
type FieldKind int

const (
	KindMoney      FieldKind = iota // monthly or one-off amount in local currency
	KindDailyMoney                  // per-day amount, converted to monthly
	KindPercent
	KindYears
)

// Standard field keys shared by every country profile.
const (
	FieldHouseCost           = "house_cost"
	FieldDownPaymentPct      = "down_payment_pct"
	FieldMortgageYears       = "mortgage_years"
	FieldMortgageRate        = "mortgage_rate"
	FieldPropertyTaxRate     = "property_tax_rate"
	FieldHouseMaintenance    = "house_maintenance"
	FieldHomeownersInsurance = "homeowners_insurance"
	FieldVehicleCost         = "vehicle_cost"
	FieldVehicleLoanYears    = "vehicle_loan_years"
	FieldVehicleLoanRate     = "vehicle_loan_rate"
	FieldVehicleInsurance    = "vehicle_insurance"
	FieldVehicleMaintenance  = "vehicle_maintenance"
	FieldFuel                = "fuel"
	FieldDailyFood           = "daily_food"
	FieldDailyTransport      = "daily_transport"
	FieldEntertainment       = "entertainment"
	FieldPersonalCare        = "personal_care"
	FieldSavings             = "savings"
	FieldInvestments         = "investments"
	FieldRetirement          = "retirement"
	FieldUtilities           = "utilities"
	FieldHealthInsurance     = "health_insurance"
	FieldLifeInsurance       = "life_insurance"
	FieldTravel              = "travel"
	FieldMisc                = "misc"
	FieldTaxRate             = "tax_rate"
)

// Field describes one user input: its label, where it is shown, and its
// default and UI range. Max only applies when HasMax is set, so a field can
// be capped at zero.
type Field struct {
	Key     string    `json:"key"`
	Label   string    `json:"label"`
	Section string    `json:"section"`
	Kind    FieldKind `json:"kind"`
	Default float64   `json:"default"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	HasMax  bool      `json:"has_max"`
	Step    float64   `json:"step"`
}

// Clamp limits v to the field's range.
func (f Field) Clamp(v float64) float64 {
	if v < f.Min {
		v = f.Min
	}
	if f.HasMax && v > f.Max {
		v = f.Max
	}
	return v
}

// ExtraExpense is a country-specific monthly expense line backed by a field.
type ExtraExpense struct {
	Key      string `json:"key"`
	Category string `json:"category"`
}

// Profile is one row set of the country configuration table.
type Profile struct {
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	CurrencySymbol string         `json:"currency_symbol"`
	Decimals       int            `json:"decimals"`
	Fields         []Field        `json:"fields"`
	Extras         []ExtraExpense `json:"extras,omitempty"`
}

// Field returns the field with the given key.
func (p Profile) Field(key string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns the default value of every field.
func (p Profile) Defaults() Values {
	v := make(Values, len(p.Fields))
	for _, f := range p.Fields {
		v[f.Key] = f.Default
	}
	return v
}

// Sections returns section names in first-appearance order.
func (p Profile) Sections() []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range p.Fields {
		if !seen[f.Section] {
			seen[f.Section] = true
			out = append(out, f.Section)
		}
	}
	return out
}

// Matches reports whether s names this profile by code or display name.
func (p Profile) Matches(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, p.Code) || strings.EqualFold(s, p.Name)
}

// Values holds user inputs by field key. Missing keys take the default.
type Values map[string]float64
