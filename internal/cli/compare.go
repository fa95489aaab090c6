package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/compound-interest/internal/config"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCommand(a *app) *cobra.Command {
	var (
		file   string
		years  int
		report reportFlags
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare several investments side by side",
		Long: `Compare the investments of a configuration file (YAML, JSON or HJSON).
Without --config the Stocks, Bonds and Gold starter scenarios are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			var cfg *domain.Configuration
			if file == "" {
				cfg = domain.DefaultConfiguration()
				cfg.Years = a.defaults.Years
				parser.ApplyDefaults(cfg)
			} else {
				var err error
				if cfg, err = parser.LoadFromFile(file); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("years") {
				cfg.Years = years
			}
			if err := parser.ValidateConfiguration(cfg); err != nil {
				return err
			}
			if !domain.IsYearStep(cfg.Years) {
				a.engine.Logger.Warnf("%d years is not one of the usual steps %v", cfg.Years, domain.YearSteps)
			}
			if cmd.Flags().Changed("currency") || file == "" {
				cfg.Currency = strings.ToUpper(a.currency)
			}

			results, err := a.engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.emit(cmd, report, results)
		},
	}
	cmd.Flags().StringVarP(&file, "config", "c", "", "configuration file")
	cmd.Flags().IntVar(&years, "years", 0, "override the horizon in years")
	report.register(cmd)
	return cmd
}

func newInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the starter configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "compound.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.SaveConfiguration(domain.DefaultConfiguration(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, n := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", n)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
