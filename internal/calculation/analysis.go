package calculation

import (
	"sort"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildChartSeries aligns the yearly snapshots of every scenario by month,
// producing one point per year with the value of each scenario.
func BuildChartSeries(results []domain.ScenarioResult) []domain.ChartPoint {
	byYear := map[int]*domain.ChartPoint{}
	var years []int
	for _, res := range results {
		for _, row := range YearlySnapshots(res.Rows) {
			p, ok := byYear[row.Year()]
			if !ok {
				p = &domain.ChartPoint{Year: row.Year(), Values: map[string]decimal.Decimal{}}
				byYear[row.Year()] = p
				years = append(years, row.Year())
			}
			p.Values[res.Investment.Name] = row.Value
		}
	}
	sort.Ints(years)
	points := make([]domain.ChartPoint, 0, len(years))
	for _, y := range years {
		points = append(points, *byYear[y])
	}
	return points
}

// ScenarioRanking summarizes the end state of one scenario.
type ScenarioRanking struct {
	Name            string
	FinalValue      decimal.Decimal
	TotalInvestment decimal.Decimal
	Gain            decimal.Decimal
	// Multiple is FinalValue / TotalInvestment, zero when nothing was invested.
	Multiple decimal.Decimal
}

// RankScenarios orders scenarios by final value, highest first. Ties keep
// the input order.
func RankScenarios(results []domain.ScenarioResult) []ScenarioRanking {
	ranks := make([]ScenarioRanking, 0, len(results))
	for _, res := range results {
		final := res.Final()
		multiple := decimal.Zero
		if !final.TotalInvestment.IsZero() {
			multiple = final.Value.DivRound(final.TotalInvestment, 4)
		}
		ranks = append(ranks, ScenarioRanking{
			Name:            res.Investment.Name,
			FinalValue:      final.Value,
			TotalInvestment: final.TotalInvestment,
			Gain:            final.Gain(),
			Multiple:        multiple,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].FinalValue.GreaterThan(ranks[j].FinalValue) })
	return ranks
}
