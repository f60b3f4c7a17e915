package config

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/theirongolddev/lifecost/internal/model"
)

// Section names, in display order.
const (
	SectionHousing   = "Housing Costs"
	SectionVehicle   = "Vehicle Expenses"
	SectionDaily     = "Daily Expenses"
	SectionGoals     = "Financial Goals"
	SectionOther     = "Other Expenses"
	SectionIncomeTax = "Income Tax"
)

type fieldTemplate struct {
	key     string
	label   string
	section string
	kind    model.FieldKind
}

// standardFields is the catalogue every profile must provide numbers for.
// Country extras are inserted before the income tax field.
var standardFields = []fieldTemplate{
	{model.FieldHouseCost, "Cost of desired house", SectionHousing, model.KindMoney},
	{model.FieldDownPaymentPct, "Down payment percentage", SectionHousing, model.KindPercent},
	{model.FieldMortgageYears, "Mortgage term (years)", SectionHousing, model.KindYears},
	{model.FieldMortgageRate, "Mortgage interest rate (%)", SectionHousing, model.KindPercent},
	{model.FieldPropertyTaxRate, "Annual property tax rate (%)", SectionHousing, model.KindPercent},
	{model.FieldHouseMaintenance, "Monthly house maintenance costs", SectionHousing, model.KindMoney},
	{model.FieldHomeownersInsurance, "Monthly homeowners insurance", SectionHousing, model.KindMoney},

	{model.FieldVehicleCost, "Total vehicle costs", SectionVehicle, model.KindMoney},
	{model.FieldVehicleLoanYears, "Vehicle loan term (years)", SectionVehicle, model.KindYears},
	{model.FieldVehicleLoanRate, "Vehicle loan interest rate (%)", SectionVehicle, model.KindPercent},
	{model.FieldVehicleInsurance, "Monthly vehicle insurance", SectionVehicle, model.KindMoney},
	{model.FieldVehicleMaintenance, "Monthly vehicle maintenance", SectionVehicle, model.KindMoney},
	{model.FieldFuel, "Monthly fuel costs", SectionVehicle, model.KindMoney},

	{model.FieldDailyFood, "Daily food expenses", SectionDaily, model.KindDailyMoney},
	{model.FieldDailyTransport, "Daily transport expenses", SectionDaily, model.KindDailyMoney},
	{model.FieldEntertainment, "Monthly entertainment expenses", SectionDaily, model.KindMoney},
	{model.FieldPersonalCare, "Monthly personal care expenses", SectionDaily, model.KindMoney},

	{model.FieldSavings, "Monthly savings goal", SectionGoals, model.KindMoney},
	{model.FieldInvestments, "Monthly investment goal", SectionGoals, model.KindMoney},
	{model.FieldRetirement, "Monthly retirement savings", SectionGoals, model.KindMoney},

	{model.FieldUtilities, "Monthly utilities", SectionOther, model.KindMoney},
	{model.FieldHealthInsurance, "Monthly health insurance", SectionOther, model.KindMoney},
	{model.FieldLifeInsurance, "Monthly life insurance", SectionOther, model.KindMoney},
	{model.FieldTravel, "Monthly travel budget", SectionOther, model.KindMoney},
	{model.FieldMisc, "Miscellaneous monthly expenses", SectionOther, model.KindMoney},

	{model.FieldTaxRate, "Estimated income tax rate (%)", SectionIncomeTax, model.KindPercent},
}

// StandardFieldKeys returns the keys every profile defines, in display order.
func StandardFieldKeys() []string {
	keys := make([]string, len(standardFields))
	for i, f := range standardFields {
		keys[i] = f.key
	}
	return keys
}

// standardCategories are the ledger lines every country produces, in ledger
// order. Country extras are placed before the last three and must use other
// names.
var standardCategories = []string{
	"Mortgage", "Property Tax", "House Maintenance", "Homeowners Insurance",
	"Vehicle Payment", "Vehicle Insurance", "Vehicle Maintenance", "Fuel",
	"Food", "Transport", "Entertainment", "Personal Care",
	"Utilities", "Health Insurance", "Life Insurance", "Travel", "Miscellaneous",
	"Savings", "Investments", "Retirement Savings",
}

// StandardCategories returns the expense categories every country produces.
func StandardCategories() []string {
	return slices.Clone(standardCategories)
}

func isStandardCategory(name string) bool {
	name = strings.TrimSpace(name)
	return lo.ContainsBy(standardCategories, func(c string) bool { return strings.EqualFold(c, name) })
}
