package calculation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func within(t *testing.T, want float64, got decimal.Decimal, tolerance float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want, got.InexactFloat64(), tolerance, msgAndArgs...)
}

func TestMonthlyCoefficient(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want float64
	}{
		{"zero", 0, 0},
		{"twelve percent", 12, math.Pow(1.12, 1.0/12) - 1},
		{"ten percent", 10, math.Pow(1.10, 1.0/12) - 1},
		{"negative", -20, math.Pow(0.80, 1.0/12) - 1},
		{"total loss", -100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyCoefficient(dec(tt.rate))
			require.NoError(t, err)
			within(t, tt.want, got, 1e-12)
		})
	}

	t.Run("compounds back to the annual rate", func(t *testing.T) {
		c, err := MonthlyCoefficient(decimal.NewFromInt(7))
		require.NoError(t, err)
		annual := one.Add(c).Pow(twelve).Sub(one)
		assert.True(t, annual.Sub(dec(0.07)).Abs().LessThan(dec(1e-15)), "annual rate %s", annual)
	})

	t.Run("below -100%", func(t *testing.T) {
		_, err := MonthlyCoefficient(dec(-150))
		assert.ErrorIs(t, err, ErrRateOutOfDomain)
	})
}

func TestIsContributionPeriod(t *testing.T) {
	for m := 1; m <= 36; m++ {
		assert.True(t, IsContributionPeriod(m, false), "monthly, month %d", m)
		assert.Equal(t, m%12 == 0, IsContributionPeriod(m, true), "yearly, month %d", m)
	}
	assert.False(t, IsContributionPeriod(0, false))
	assert.False(t, IsContributionPeriod(0, true))
}

func TestProjectShape(t *testing.T) {
	inputs := []domain.ProjectionInput{
		{InitialInvestment: dec(1000), RecurringInvestment: dec(100), PercentageReturn: dec(10), Months: 120},
		{InitialInvestment: dec(500), IsYearly: true, RecurringInvestment: dec(1200), PercentageReturn: dec(5), Months: 37},
		{InitialInvestment: dec(0), RecurringInvestment: dec(0), PercentageReturn: dec(3), Months: 1},
		{InitialInvestment: dec(250), RecurringInvestment: dec(10), PercentageReturn: dec(-5), Months: 480},
	}
	for _, in := range inputs {
		rows, err := Project(in)
		require.NoError(t, err)
		require.Len(t, rows, in.Months+1)

		assert.Equal(t, domain.ProjectionRow{
			Month:           0,
			Invested:        in.InitialInvestment,
			TotalInvestment: in.InitialInvestment,
			Value:           in.InitialInvestment,
		}, rows[0])

		sum := in.InitialInvestment
		for i := 1; i < len(rows); i++ {
			assert.Equal(t, i, rows[i].Month)
			sum = sum.Add(rows[i].Invested)
			assert.True(t, rows[i].TotalInvestment.Equal(sum), "month %d total", i)
			assert.True(t, rows[i].TotalInvestment.GreaterThanOrEqual(rows[i-1].TotalInvestment), "month %d monotonic", i)

			want := decimal.Zero
			if IsContributionPeriod(i, in.IsYearly) {
				want = in.RecurringInvestment
			}
			assert.True(t, rows[i].Invested.Equal(want), "month %d invested %s", i, rows[i].Invested)
		}
	}
}

func TestProjectZeroHorizon(t *testing.T) {
	for _, months := range []int{0, -3} {
		rows, err := Project(domain.ProjectionInput{InitialInvestment: dec(42), RecurringInvestment: dec(10), PercentageReturn: dec(8), Months: months})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Value.Equal(dec(42)))
	}
}

func TestProjectNoGrowth(t *testing.T) {
	rows, err := Project(domain.ProjectionInput{InitialInvestment: dec(300), RecurringInvestment: dec(25.5), PercentageReturn: decimal.Zero, Months: 60})
	require.NoError(t, err)
	for _, r := range rows {
		assert.True(t, r.Value.Equal(r.TotalInvestment), "month %d: value %s total %s", r.Month, r.Value, r.TotalInvestment)
	}
	assert.Equal(t, "1830", rows[60].Value.String())
}

func TestProjectNoContributions(t *testing.T) {
	in := domain.ProjectionInput{InitialInvestment: dec(10000), PercentageReturn: dec(6), Months: 480}
	rows, err := Project(in)
	require.NoError(t, err)

	c, err := MonthlyCoefficient(in.PercentageReturn)
	require.NoError(t, err)
	for _, r := range rows {
		want := in.InitialInvestment.Mul(one.Add(c).Pow(decimal.NewFromInt(int64(r.Month))))
		assert.True(t, r.Value.Sub(want).Abs().LessThan(dec(0.000001)), "month %d: got %s want %s", r.Month, r.Value, want)
	}
	// 40 years at 6%: 10000 * 1.06^40
	within(t, 10000*math.Pow(1.06, 40), rows[480].Value, 0.01)
}

func TestProjectTwelvePercentYear(t *testing.T) {
	rows, err := Project(domain.ProjectionInput{InitialInvestment: dec(1000), RecurringInvestment: decimal.Zero, PercentageReturn: dec(12), Months: 12})
	require.NoError(t, err)
	assert.Equal(t, "1120.00", rows[12].Value.StringFixed(2))
	assert.True(t, rows[12].TotalInvestment.Equal(dec(1000)))
}

func TestProjectYearlyContributions(t *testing.T) {
	rows, err := Project(domain.ProjectionInput{InitialInvestment: decimal.Zero, IsYearly: true, RecurringInvestment: dec(100), PercentageReturn: decimal.Zero, Months: 24})
	require.NoError(t, err)
	for m := 1; m <= 24; m++ {
		if m == 12 || m == 24 {
			assert.True(t, rows[m].Invested.Equal(dec(100)), "month %d", m)
		} else {
			assert.True(t, rows[m].Invested.IsZero(), "month %d", m)
		}
	}
	assert.True(t, rows[24].Value.Equal(dec(200)))
	assert.True(t, rows[24].TotalInvestment.Equal(dec(200)))
}

func TestProjectInterestBeforeContribution(t *testing.T) {
	in := domain.ProjectionInput{InitialInvestment: dec(1000), RecurringInvestment: dec(100), PercentageReturn: dec(12), Months: 2}
	rows, err := Project(in)
	require.NoError(t, err)

	c, _ := MonthlyCoefficient(in.PercentageReturn)
	v1 := dec(1000).Add(dec(1000).Mul(c)).Add(dec(100))
	v2 := v1.Add(v1.Mul(c)).Add(dec(100))
	within(t, v1.InexactFloat64(), rows[1].Value, 1e-9)
	within(t, v2.InexactFloat64(), rows[2].Value, 1e-9)
}

func TestProjectMatchesClosedForm(t *testing.T) {
	// Future value of an ordinary annuity plus the grown initial balance.
	in := domain.ProjectionInput{InitialInvestment: dec(1000), RecurringInvestment: dec(100), PercentageReturn: dec(10), Months: 480}
	rows, err := Project(in)
	require.NoError(t, err)

	r := math.Pow(1.10, 1.0/12) - 1
	growth := math.Pow(1+r, 480)
	want := 1000*growth + 100*(growth-1)/r
	within(t, want, rows[480].Value, 0.01)
}

func TestProjectRateOutOfDomain(t *testing.T) {
	rows, err := Project(domain.ProjectionInput{InitialInvestment: dec(1000), PercentageReturn: dec(-120), Months: 12})
	assert.ErrorIs(t, err, ErrRateOutOfDomain)
	assert.Nil(t, rows)
}

func TestProjectTotalLoss(t *testing.T) {
	rows, err := Project(domain.ProjectionInput{InitialInvestment: dec(1000), RecurringInvestment: dec(50), PercentageReturn: dec(-100), Months: 3})
	require.NoError(t, err)
	for _, r := range rows[1:] {
		assert.True(t, r.Value.Equal(dec(50)), "month %d value %s", r.Month, r.Value)
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	in := domain.ProjectionInput{InitialInvestment: dec(1234.56), IsYearly: true, RecurringInvestment: dec(789.01), PercentageReturn: dec(7.3), Months: 240}
	a, err := Project(in)
	require.NoError(t, err)
	b, err := Project(in)
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
}

func TestYearlySnapshots(t *testing.T) {
	rows, err := Project(domain.ProjectionInput{InitialInvestment: dec(100), RecurringInvestment: dec(10), PercentageReturn: dec(4), Months: 30})
	require.NoError(t, err)
	snaps := YearlySnapshots(rows)
	require.Len(t, snaps, 3)
	assert.Equal(t, []int{0, 12, 24}, []int{snaps[0].Month, snaps[1].Month, snaps[2].Month})
	assert.Empty(t, YearlySnapshots(nil))
}
