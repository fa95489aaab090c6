package domain

import (
	"github.com/rpgo/compound-interest/pkg/money"
	"github.com/shopspring/decimal"
)

// YearSteps are the horizons offered by the investment period selector.
var YearSteps = []int{1, 2, 3, 4, 5, 10, 15, 20, 25, 30, 35, 40}

// MaxYears is the longest supported horizon.
const MaxYears = 40

// Investment is a named scenario as entered by the user. Amounts accept
// free text in configuration files and are coerced to zero when malformed.
type Investment struct {
	ID                  string        `yaml:"id,omitempty" json:"id,omitempty"`
	Name                string        `yaml:"name" json:"name"`
	InitialInvestment   money.Money   `yaml:"initial_investment" json:"initial_investment"`
	IsYearly            bool          `yaml:"is_yearly" json:"is_yearly"`
	RecurringInvestment money.Money   `yaml:"recurring_investment" json:"recurring_investment"`
	PercentageReturn    money.Percent `yaml:"percentage_return" json:"percentage_return"`
}

// Cadence returns "yearly" or "monthly".
func (inv Investment) Cadence() string {
	if inv.IsYearly {
		return "yearly"
	}
	return "monthly"
}

// Input builds the projection input for the given horizon in years.
func (inv Investment) Input(years int) ProjectionInput {
	return inv.InputMonths(years * MonthsPerYear)
}

// InputMonths builds the projection input for the given horizon in months.
func (inv Investment) InputMonths(months int) ProjectionInput {
	return ProjectionInput{
		InitialInvestment:   inv.InitialInvestment.Decimal,
		IsYearly:            inv.IsYearly,
		RecurringInvestment: inv.RecurringInvestment.Decimal,
		PercentageReturn:    inv.PercentageReturn.Decimal,
		Months:              months,
	}
}

// DefaultInvestments returns the starter scenarios shown on first use.
func DefaultInvestments() []Investment {
	return []Investment{
		{Name: "Stocks", InitialInvestment: money.FromInt(1000), RecurringInvestment: money.FromInt(100), PercentageReturn: money.Percent{Decimal: decimal.NewFromInt(10)}},
		{Name: "Bonds", InitialInvestment: money.FromInt(500), RecurringInvestment: money.FromInt(50), PercentageReturn: money.Percent{Decimal: decimal.NewFromInt(5)}},
		{Name: "Gold", InitialInvestment: money.FromInt(200), RecurringInvestment: money.FromInt(25), PercentageReturn: money.Percent{Decimal: decimal.NewFromInt(3)}},
	}
}

// IsYearStep reports whether years is one of the selector positions.
func IsYearStep(years int) bool {
	for _, y := range YearSteps {
		if y == years {
			return true
		}
	}
	return false
}
