package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/compound-interest/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ErrNoInvestments is returned when a comparison is requested without scenarios.
var ErrNoInvestments = errors.New("no investments to project")

// CalculationEngine runs projections for one or more investments.
type CalculationEngine struct {
	// MaxParallel bounds the number of scenarios projected at once; 0 means no limit.
	MaxParallel int
	Logger      Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunScenario projects a single investment over the given horizon in months.
func (ce *CalculationEngine) RunScenario(ctx context.Context, inv domain.Investment, months int) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := withScenario(ce.logger(), inv.Name)
	input := inv.InputMonths(months)
	log.Debugf("projecting initial=%s recurring=%s (%s) rate=%s%% months=%d",
		input.InitialInvestment, input.RecurringInvestment, inv.Cadence(), input.PercentageReturn, input.Months)

	rows, err := Project(input)
	if err != nil {
		return nil, fmt.Errorf("investment %q: %w", inv.Name, err)
	}
	result := &domain.ScenarioResult{Investment: inv, Rows: rows}
	final := result.Final()
	log.Infof("value %s after %d months (invested %s)",
		final.Value.StringFixed(2), final.Month, final.TotalInvestment.StringFixed(2))
	return result, nil
}

// RunScenarios projects every investment of the configuration independently
// and builds the comparison. Results keep the configuration order.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	return ce.Compare(ctx, config.Investments, config.Years*domain.MonthsPerYear, config.Currency)
}

// Compare projects the investments over the given horizon in months,
// concurrently, and aligns them for charting.
func (ce *CalculationEngine) Compare(ctx context.Context, investments []domain.Investment, months int, currency string) (*domain.ScenarioComparison, error) {
	if len(investments) == 0 {
		return nil, ErrNoInvestments
	}
	results := make([]domain.ScenarioResult, len(investments))

	g, gctx := errgroup.WithContext(ctx)
	if ce.MaxParallel > 0 {
		g.SetLimit(ce.MaxParallel)
	}
	for i, inv := range investments {
		i, inv := i, inv
		g.Go(func() error {
			res, err := ce.RunScenario(gctx, inv, months)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RunScenarios failed: %w", err)
	}

	return &domain.ScenarioComparison{
		Years:     months / domain.MonthsPerYear,
		Months:    months,
		Currency:  currency,
		Scenarios: results,
		Chart:     BuildChartSeries(results),
	}, nil
}
