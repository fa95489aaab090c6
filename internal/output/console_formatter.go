package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	calc "github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/domain"
)

// ConsoleFormatter prints a plain-text summary followed by one table per scenario.
type ConsoleFormatter struct {
	Monthly bool
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency

	fmt.Fprintln(&buf, "COMPOUND INTEREST PROJECTION")
	fmt.Fprintln(&buf, "============================")
	fmt.Fprintf(&buf, "Horizon: %s (%s)\n\n", plural(results.Years, "year"), plural(results.Months, "month"))

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Rank\tInvestment\tTotal Invested\tValue\tGain\tMultiple\t")
	for i, r := range calc.RankScenarios(results.Scenarios) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n", i+1, r.Name,
			FormatCurrency(r.TotalInvestment, cur), FormatCurrency(r.FinalValue, cur),
			FormatCurrency(r.Gain, cur), FormatMultiple(r.Multiple))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	for _, sc := range results.Scenarios {
		inv := sc.Investment
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s: %s initial, %s %s at %s\n", inv.Name,
			FormatCurrency(inv.InitialInvestment.Decimal, cur), FormatCurrency(inv.RecurringInvestment.Decimal, cur),
			inv.Cadence(), inv.PercentageReturn)

		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "%s\tInvested\tTotal Invested\tValue\tGain\t\n", periodHeader(c.Monthly))
		for _, row := range tableRows(sc.Rows, c.Monthly) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", periodLabel(row, c.Monthly),
				FormatCurrency(row.Invested, cur), FormatCurrency(row.TotalInvestment, cur),
				FormatCurrency(row.Value, cur), FormatCurrency(row.Gain(), cur))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
