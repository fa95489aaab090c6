package calculation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.record("DEBUG", format, args...)
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.record("INFO", format, args...)
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.record("WARN", format, args...)
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.record("ERROR", format, args...)
}

func TestScenarioLoggerPrefixesEveryLevel(t *testing.T) {
	rec := &recordingLogger{}
	l := withScenario(rec, "Fund 100%")
	l.Debugf("a=%d", 1)
	l.Infof("b")
	l.Warnf("c=%s", "x")
	l.Errorf("d")

	assert.Equal(t, []string{
		"DEBUG [Fund 100%] a=1",
		"INFO [Fund 100%] b",
		"WARN [Fund 100%] c=x",
		"ERROR [Fund 100%] d",
	}, rec.lines)

	assert.Equal(t, NopLogger{}, withScenario(NopLogger{}, "ignored"))
}

func TestRunScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	cfg := domain.DefaultConfiguration()
	cfg.Years = 5
	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, results.Scenarios, 3)
	for i, sc := range results.Scenarios {
		assert.Equal(t, cfg.Investments[i].Name, sc.Investment.Name, "order preserved")
		assert.Len(t, sc.Rows, 61)
	}
	assert.Equal(t, 5, results.Years)
	assert.Equal(t, 60, results.Months)
	assert.Equal(t, "USD", results.Currency)
	require.Len(t, results.Chart, 6)
	assert.Len(t, logger.lines, 6)
	assert.Contains(t, logger.lines, "DEBUG [Gold] projecting initial=200 recurring=25 (monthly) rate=3% months=60")

	// Each scenario must match an independent single projection.
	for i, inv := range cfg.Investments {
		rows, err := Project(inv.Input(cfg.Years))
		require.NoError(t, err)
		assert.True(t, rows[60].Value.Equal(results.Scenarios[i].Final().Value))
	}
}

func TestRunScenariosLimitedParallelism(t *testing.T) {
	engine := NewCalculationEngine()
	engine.MaxParallel = 1
	cfg := domain.DefaultConfiguration()
	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, results.Scenarios, len(cfg.Investments))
}

func TestRunScenariosErrors(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.RunScenarios(context.Background(), &domain.Configuration{Years: 10})
	assert.ErrorIs(t, err, ErrNoInvestments)

	cfg := domain.DefaultConfiguration()
	cfg.Investments[1].PercentageReturn = money.NewPercent(-200)
	_, err = engine.RunScenarios(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrRateOutOfDomain)
	assert.Contains(t, err.Error(), "Bonds")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.RunScenario(ctx, cfg.Investments[0], 12)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareArbitraryHorizon(t *testing.T) {
	results, err := NewCalculationEngine().Compare(context.Background(), domain.DefaultInvestments()[:1], 30, "EUR")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Years)
	assert.Equal(t, 30, results.Months)
	assert.Equal(t, "EUR", results.Currency)
	assert.Len(t, results.Scenarios[0].Rows, 31)
	assert.Len(t, results.Chart, 3)
}

func TestSetLoggerNil(t *testing.T) {
	engine := &CalculationEngine{}
	engine.SetLogger(nil)
	assert.Equal(t, NopLogger{}, engine.Logger)

	// A zero-value engine still runs.
	res, err := (&CalculationEngine{}).RunScenario(context.Background(), domain.DefaultInvestments()[0], 12)
	require.NoError(t, err)
	assert.Len(t, res.Rows, 13)
}

func TestBuildChartSeries(t *testing.T) {
	a, err := Project(domain.ProjectionInput{InitialInvestment: decimal.NewFromInt(100), PercentageReturn: decimal.Zero, RecurringInvestment: decimal.NewFromInt(1), Months: 24})
	require.NoError(t, err)
	b, err := Project(domain.ProjectionInput{InitialInvestment: decimal.NewFromInt(50), PercentageReturn: decimal.Zero, RecurringInvestment: decimal.NewFromInt(2), Months: 36})
	require.NoError(t, err)

	points := BuildChartSeries([]domain.ScenarioResult{
		{Investment: domain.Investment{Name: "A"}, Rows: a},
		{Investment: domain.Investment{Name: "B"}, Rows: b},
	})
	require.Len(t, points, 4)
	for i, p := range points {
		assert.Equal(t, i, p.Year)
	}
	assert.Equal(t, "112", points[1].Values["A"].String())
	assert.Equal(t, "74", points[1].Values["B"].String())
	_, ok := points[3].Values["A"]
	assert.False(t, ok, "A stops after two years")
	assert.Equal(t, "122", points[3].Values["B"].String())
}

func TestRankScenarios(t *testing.T) {
	results, err := NewCalculationEngine().RunScenarios(context.Background(), domain.DefaultConfiguration())
	require.NoError(t, err)

	ranks := RankScenarios(results.Scenarios)
	require.Len(t, ranks, 3)
	assert.Equal(t, []string{"Stocks", "Bonds", "Gold"}, []string{ranks[0].Name, ranks[1].Name, ranks[2].Name})
	for _, r := range ranks {
		assert.True(t, r.Gain.Equal(r.FinalValue.Sub(r.TotalInvestment)))
		assert.True(t, r.Multiple.GreaterThan(decimal.NewFromInt(1)))
	}

	empty := RankScenarios([]domain.ScenarioResult{{Investment: domain.Investment{Name: "Nothing"}, Rows: []domain.ProjectionRow{{}}}})
	assert.True(t, empty[0].Multiple.IsZero())
}
