package output

import (
	"github.com/charmbracelet/glamour"
	"github.com/rpgo/compound-interest/internal/domain"
)

// DefaultPrettyStyle is the glamour style used when none is configured.
const DefaultPrettyStyle = "dark"

// PrettyFormatter renders the markdown report for terminals with glamour.
type PrettyFormatter struct {
	Monthly bool
	// Style is a glamour style name ("dark", "light", "notty", ...) or a JSON style path.
	Style string
}

func (p PrettyFormatter) Name() string      { return "pretty" }
func (p PrettyFormatter) Extension() string { return "txt" }

func (p PrettyFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	md, err := renderMarkdown(results, p.Monthly)
	if err != nil {
		return nil, err
	}
	style := p.Style
	if style == "" {
		style = DefaultPrettyStyle
	}
	out, err := glamour.Render(string(md), style)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
