package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/compound-interest/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is saved.
	Extension() string
}

// Options tune the table-based formatters.
type Options struct {
	// Monthly lists every month instead of one row per year.
	Monthly bool
	// Style is the glamour style used by the pretty formatter.
	Style string
}

// builtInFormatters returns the available formatters configured with opts.
func builtInFormatters(opts Options) []Formatter {
	return []Formatter{
		ConsoleFormatter{Monthly: opts.Monthly},
		MarkdownFormatter{Monthly: opts.Monthly},
		PrettyFormatter{Monthly: opts.Monthly, Style: opts.Style},
		HTMLFormatter{Monthly: opts.Monthly},
		CSVFormatter{},
		CSVDetailedExporter{},
		ChartCSVFormatter{},
		JSONFormatter{},
	}
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
// It returns nil when the name is unknown.
func GetFormatterByName(name string, opts Options) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters(opts) {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// Lookup is GetFormatterByName returning ErrUnsupportedFormat, enriched with
// the available names, for unknown formats.
func Lookup(name string, opts Options) (Formatter, error) {
	if f := GetFormatterByName(name, opts); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"md":          "markdown",
	"terminal":    "pretty",
	"csv-yearly":  "csv",
	"csv-monthly": "detailed-csv",
	"chart":       "chart-csv",
	"html-report": "html",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	all := builtInFormatters(Options{})
	names := make([]string, 0, len(all))
	for _, f := range all {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Write formats the results and writes them to w.
func Write(w io.Writer, f Formatter, results *domain.ScenarioComparison) error {
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("compound_report_%s.%s", time.Now().Format("20060102_150405"), f.Extension()))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
