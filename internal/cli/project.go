package cli

import (
	"fmt"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/pkg/money"
	"github.com/spf13/cobra"
)

func newProjectCommand(a *app) *cobra.Command {
	var (
		name      string
		initial   string
		recurring string
		rate      string
		yearly    bool
		years     int
		months    int
		report    reportFlags
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single investment",
		Long: `Project a single investment month by month.

Amounts are read as typed: empty or unreadable values count as zero.`,
		Example: `  compound project --initial 1000 --recurring 100 --rate 10 --years 20
  compound project --initial 0 --recurring 1200 --yearly --rate 5 --months 36 --all-months`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv := domain.Investment{
				Name:                name,
				InitialInvestment:   money.ParseLenient(initial),
				IsYearly:            yearly,
				RecurringInvestment: money.ParseLenient(recurring),
				PercentageReturn:    money.ParsePercentLenient(rate),
			}

			horizon := a.defaults.Years * domain.MonthsPerYear
			switch {
			case cmd.Flags().Changed("months"):
				horizon = months
			case cmd.Flags().Changed("years"):
				horizon = years * domain.MonthsPerYear
			}
			if horizon < 0 {
				return fmt.Errorf("horizon cannot be negative, got %d months", horizon)
			}

			results, err := a.engine.Compare(cmd.Context(), []domain.Investment{inv}, horizon, a.currency)
			if err != nil {
				return err
			}
			return a.emit(cmd, report, results)
		},
	}
	cmd.Flags().StringVar(&name, "name", "Investment", "label of the investment")
	cmd.Flags().StringVar(&initial, "initial", "", "initial investment")
	cmd.Flags().StringVar(&recurring, "recurring", "", "amount added at every contribution")
	cmd.Flags().StringVar(&rate, "rate", "", "annual return in percent")
	cmd.Flags().BoolVar(&yearly, "yearly", false, "contribute once a year instead of every month")
	cmd.Flags().IntVar(&years, "years", 0, "horizon in years (default from COMPOUND_YEARS or 10)")
	cmd.Flags().IntVar(&months, "months", 0, "horizon in months, overrides --years")
	report.register(cmd)
	return cmd
}
