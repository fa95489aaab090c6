package output

import (
	"bytes"
	_ "embed"
	"text/template"

	calc "github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/pkg/money"
	"github.com/shopspring/decimal"
)

//go:embed templates/comparison.md.tmpl
var markdownTemplateSource string

// MarkdownFormatter renders the comparison as GitHub flavored markdown.
type MarkdownFormatter struct {
	Monthly bool
}

func (m MarkdownFormatter) Name() string      { return "markdown" }
func (m MarkdownFormatter) Extension() string { return "md" }

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return renderMarkdown(results, m.Monthly)
}

func renderMarkdown(results *domain.ScenarioComparison, monthly bool) ([]byte, error) {
	cur := results.Currency
	tmpl, err := template.New("comparison").Funcs(template.FuncMap{
		"curr":     func(d decimal.Decimal) string { return FormatCurrency(d, cur) },
		"multiple": FormatMultiple,
		"compact":  func(d decimal.Decimal) string { return money.FromDecimal(d).Compact() },
		"cell":     escapeCell,
		"plural":   plural,
		"inc":      func(i int) int { return i + 1 },
		"rows":     func(rows []domain.ProjectionRow) []domain.ProjectionRow { return tableRows(rows, monthly) },
		"label":    func(r domain.ProjectionRow) string { return periodLabel(r, monthly) },
	}).Parse(markdownTemplateSource)
	if err != nil {
		return nil, err
	}

	data := struct {
		*domain.ScenarioComparison
		Ranking []calc.ScenarioRanking
		Period  string
	}{
		ScenarioComparison: results,
		Ranking:            calc.RankScenarios(results.Scenarios),
		Period:             periodHeader(monthly),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
