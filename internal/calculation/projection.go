package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrRateOutOfDomain is returned when the annual return is below -100%:
// the 12th root of a negative growth factor has no real value.
var ErrRateOutOfDomain = errors.New("annual return below -100% has no monthly equivalent")

const (
	// coefficientPrecision is the number of decimal places kept for the
	// monthly interest coefficient.
	coefficientPrecision int32 = 20
	// workingPrecision bounds the digits carried by the running balance so
	// 480 multiply-accumulate steps stay exact to far below a cent.
	workingPrecision int32 = 16
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(domain.MonthsPerYear)
)

// MonthlyCoefficient converts a nominal annual return in percent into the
// monthly rate that compounds to it over 12 months: (1 + p/100)^(1/12) - 1.
func MonthlyCoefficient(percentageReturn decimal.Decimal) (decimal.Decimal, error) {
	if percentageReturn.IsZero() {
		return decimal.Zero, nil
	}
	growth := one.Add(percentageReturn.DivRound(hundred, coefficientPrecision))
	switch {
	case growth.IsNegative():
		return decimal.Decimal{}, fmt.Errorf("%w: %s%%", ErrRateOutOfDomain, percentageReturn.String())
	case growth.IsZero():
		// -100%: everything is lost in the first month.
		return one.Neg(), nil
	}

	ln, err := growth.Ln(coefficientPrecision + 4)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("monthly coefficient for %s%%: %w", percentageReturn.String(), err)
	}
	root, err := ln.DivRound(twelve, coefficientPrecision+4).ExpTaylor(coefficientPrecision)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("monthly coefficient for %s%%: %w", percentageReturn.String(), err)
	}
	return root.Sub(one), nil
}

// IsContributionPeriod reports whether the recurring amount is added in
// month t (t >= 1). Yearly contributions land on months 12, 24, ...
func IsContributionPeriod(t int, isYearly bool) bool {
	if t < 1 {
		return false
	}
	if !isYearly {
		return true
	}
	return t%domain.MonthsPerYear == 0
}

// Project computes the month-by-month trajectory of an investment. The result
// always holds months+1 rows; row 0 is the initial balance. Interest for a
// month accrues on the previous balance, before that month's contribution.
//
// Project holds no state and is safe for concurrent use.
func Project(input domain.ProjectionInput) ([]domain.ProjectionRow, error) {
	coefficient, err := MonthlyCoefficient(input.PercentageReturn)
	if err != nil {
		return nil, err
	}

	months := input.Months
	if months < 0 {
		months = 0
	}

	rows := make([]domain.ProjectionRow, 0, months+1)
	rows = append(rows, domain.ProjectionRow{
		Month:           0,
		Invested:        input.InitialInvestment,
		TotalInvestment: input.InitialInvestment,
		Value:           input.InitialInvestment,
	})

	value := input.InitialInvestment
	total := input.InitialInvestment
	for t := 1; t <= months; t++ {
		invested := decimal.Zero
		if IsContributionPeriod(t, input.IsYearly) {
			invested = input.RecurringInvestment
		}
		interest := value.Mul(coefficient)
		value = value.Add(interest).Add(invested).Round(workingPrecision)
		total = total.Add(invested)

		rows = append(rows, domain.ProjectionRow{
			Month:           t,
			Invested:        invested,
			TotalInvestment: total,
			Value:           value,
		})
	}
	return rows, nil
}

// YearlySnapshots keeps the rows that close a full year, starting with row 0.
func YearlySnapshots(rows []domain.ProjectionRow) []domain.ProjectionRow {
	out := make([]domain.ProjectionRow, 0, len(rows)/domain.MonthsPerYear+1)
	for _, r := range rows {
		if r.IsYearBoundary() {
			out = append(out, r)
		}
	}
	return out
}
