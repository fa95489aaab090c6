package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/compound-interest/internal/domain"
)

var csvHeader = []string{"Scenario", "Year", "Month", "Invested", "TotalInvestment", "Value", "Gain"}

// CSVFormatter exports the year-boundary rows of every scenario.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return writeRowsCSV(results, false)
}

// CSVDetailedExporter exports every month of every scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return writeRowsCSV(results, true)
}

func writeRowsCSV(results *domain.ScenarioComparison, monthly bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, row := range tableRows(sc.Rows, monthly) {
			record := []string{
				sc.Investment.Name,
				intToString(row.Year()),
				intToString(row.Month),
				row.Invested.StringFixed(2),
				row.TotalInvestment.StringFixed(2),
				row.Value.StringFixed(2),
				row.Gain().StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ChartCSVFormatter exports the chart dataset: one line per year, one
// column per scenario, aligned by month.
type ChartCSVFormatter struct{}

func (c ChartCSVFormatter) Name() string      { return "chart-csv" }
func (c ChartCSVFormatter) Extension() string { return "csv" }

func (c ChartCSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year"}
	for _, sc := range results.Scenarios {
		header = append(header, sc.Investment.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range results.Chart {
		record := []string{intToString(p.Year)}
		for _, sc := range results.Scenarios {
			v, ok := p.Values[sc.Investment.Name]
			if !ok {
				record = append(record, "")
				continue
			}
			record = append(record, v.StringFixed(2))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
