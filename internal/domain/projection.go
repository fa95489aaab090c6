package domain

import "github.com/shopspring/decimal"

// MonthsPerYear is the number of compounding periods in a year.
const MonthsPerYear = 12

// ProjectionInput holds the already-parsed parameters of one projection.
type ProjectionInput struct {
	InitialInvestment   decimal.Decimal `json:"initial_investment"`
	IsYearly            bool            `json:"is_yearly"`
	RecurringInvestment decimal.Decimal `json:"recurring_investment"`
	PercentageReturn    decimal.Decimal `json:"percentage_return"` // nominal annual rate, 10 means 10%
	Months              int             `json:"months"`
}

// ProjectionRow is the state of the portfolio at the end of one month.
// Month 0 is the initial balance before any compounding.
type ProjectionRow struct {
	Month           int             `json:"month"`
	Invested        decimal.Decimal `json:"invested"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	Value           decimal.Decimal `json:"value"`
}

// Gain returns the growth above the contributed capital.
func (r ProjectionRow) Gain() decimal.Decimal {
	return r.Value.Sub(r.TotalInvestment)
}

// IsYearBoundary reports whether the row closes a full year (including month 0).
func (r ProjectionRow) IsYearBoundary() bool {
	return r.Month%MonthsPerYear == 0
}

// Year returns the number of whole years elapsed at this row.
func (r ProjectionRow) Year() int {
	return r.Month / MonthsPerYear
}

// ScenarioResult is the projection of one investment.
type ScenarioResult struct {
	Investment Investment      `json:"investment"`
	Rows       []ProjectionRow `json:"rows"`
}

// Final returns the last row of the projection.
func (sr ScenarioResult) Final() ProjectionRow {
	if len(sr.Rows) == 0 {
		return ProjectionRow{}
	}
	return sr.Rows[len(sr.Rows)-1]
}

// ChartPoint is one x-axis position of the comparison chart: the portfolio
// value of every scenario at the end of Year, keyed by scenario name.
type ChartPoint struct {
	Year   int                        `json:"year"`
	Values map[string]decimal.Decimal `json:"values"`
}

// ScenarioComparison groups the independent projections of several investments.
type ScenarioComparison struct {
	Years     int              `json:"years"`
	Months    int              `json:"months"`
	Currency  string           `json:"currency"`
	Scenarios []ScenarioResult `json:"scenarios"`
	Chart     []ChartPoint     `json:"chart"`
}
