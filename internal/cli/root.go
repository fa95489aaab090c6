// Package cli implements the compound command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/config"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/internal/output"
	"github.com/spf13/cobra"
)

// app holds the state shared by all subcommands.
type app struct {
	verbose  bool
	envFile  string
	currency string
	defaults config.Defaults
	engine   *calculation.CalculationEngine
}

// report flags shared by project and compare.
type reportFlags struct {
	format    string
	allMonths bool
	style     string
	out       string
	outDir    string
	query     string
}

// NewRootCommand builds the compound command tree.
func NewRootCommand() *cobra.Command {
	a := &app{engine: calculation.NewCalculationEngine()}

	root := &cobra.Command{
		Use:           "compound",
		Short:         "Project investment growth under compound interest",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnv(a.envFile); err != nil {
				return fmt.Errorf("loading %s: %w", a.envFile, err)
			}
			a.defaults = config.DefaultsFromEnv()
			if a.currency == "" {
				a.currency = a.defaults.Currency
			}
			a.engine.SetLogger(newLogger(cmd.ErrOrStderr(), a.verbose))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every projection")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with COMPOUND_* defaults")
	root.PersistentFlags().StringVar(&a.currency, "currency", "", "ISO currency code used for amounts (default from COMPOUND_CURRENCY or USD)")

	root.AddCommand(newProjectCommand(a), newCompareCommand(a), newInitCommand(), newFormatsCommand())
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format (default from COMPOUND_FORMAT or console)")
	cmd.Flags().BoolVar(&f.allMonths, "all-months", false, "list every month instead of one row per year")
	cmd.Flags().StringVar(&f.style, "style", output.DefaultPrettyStyle, "glamour style for the pretty format")
	cmd.Flags().StringVarP(&f.out, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&f.outDir, "output-dir", "", "write the report to a timestamped file in this directory")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "print only the result of a JSONPath query, e.g. $.scenarios[0].rows[12].value")
}

// emit renders results according to the report flags.
func (a *app) emit(cmd *cobra.Command, f reportFlags, results *domain.ScenarioComparison) error {
	if f.query != "" {
		v, err := output.Query(results, f.query)
		if err != nil {
			return err
		}
		if s, ok := v.(string); ok {
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}

	name := f.format
	if name == "" {
		name = a.defaults.Format
	}
	formatter, err := output.Lookup(name, output.Options{Monthly: f.allMonths, Style: f.style})
	if err != nil {
		return err
	}
	if f.outDir != "" {
		path, err := output.WriteFormatted(formatter, results, f.outDir)
		if err != nil {
			return err
		}
		a.engine.Logger.Infof("wrote %s report to %s", formatter.Name(), path)
		return nil
	}
	if f.out == "" {
		return output.Write(cmd.OutOrStdout(), formatter, results)
	}
	file, err := os.Create(f.out)
	if err != nil {
		return err
	}
	if err := output.Write(file, formatter, results); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	a.engine.Logger.Infof("wrote %s report to %s", formatter.Name(), f.out)
	return nil
}
