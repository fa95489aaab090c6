package output

import (
	"strconv"
	"strings"

	calc "github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal amount in the given currency, e.g. "$1,234.57".
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return money.FromDecimal(amount).Format(currency)
}

// FormatMultiple formats a value / invested ratio, e.g. "2.35x".
func FormatMultiple(m decimal.Decimal) string { return m.StringFixed(2) + "x" }

func intToString(i int) string { return strconv.Itoa(i) }

// plural renders a count with its unit, e.g. "1 year" or "10 years".
func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return intToString(n) + " " + unit + "s"
}

// escapeCell keeps a value from splitting a markdown table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// tableRows returns the rows shown in a scenario table: year boundaries, or every month.
func tableRows(rows []domain.ProjectionRow, monthly bool) []domain.ProjectionRow {
	if monthly {
		return rows
	}
	return calc.YearlySnapshots(rows)
}

// periodLabel is the first column of a table row.
func periodLabel(r domain.ProjectionRow, monthly bool) string {
	if monthly {
		return intToString(r.Month)
	}
	return intToString(r.Year())
}

func periodHeader(monthly bool) string {
	if monthly {
		return "Month"
	}
	return "Year"
}
