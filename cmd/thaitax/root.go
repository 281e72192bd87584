package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thaitax/pit-estimator/internal/calculation"
	"github.com/thaitax/pit-estimator/internal/config"
	"github.com/thaitax/pit-estimator/internal/domain"
	"github.com/thaitax/pit-estimator/internal/output"
	"github.com/thaitax/pit-estimator/internal/server"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "thaitax",
		Short: "Thai personal income tax estimator",
		Long: `thaitax estimates Thai personal income tax and the related filing
obligations (PND94 mid-year filing, VAT registration) for salaried
employees, freelancers, sole proprietors and company owners.`,
		SilenceUsage: true,
	}
	root.AddCommand(newCalculateCmd(), newServeCmd())
	return root
}

// loadRules resolves the rule set: a --rules file when given, otherwise the
// compiled-in defaults.
func loadRules(rulesPath string) (domain.RuleSet, error) {
	if rulesPath == "" {
		return domain.DefaultRules(), nil
	}
	return config.LoadRules(rulesPath)
}

func newCalculateCmd() *cobra.Command {
	var (
		inputPath  string
		rulesPath  string
		formatName string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute a tax assessment from a wizard snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to read snapshot %s: %w", inputPath, err)
			}
			snapshot, err := config.DecodeSnapshot(data)
			if err != nil {
				return err
			}

			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}

			resolver := calculation.NewTaxResolver(rules)
			resolver.SetLogger(calculation.StdLogger{Verbose: verbose})
			assessment := resolver.Resolve(snapshot.Profile)

			formatter, err := output.GetFormatterByName(formatName)
			if err != nil {
				return err
			}
			rendered, err := formatter.Format(&assessment)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "snapshot JSON file (required)")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule-set YAML overriding the built-in tables")
	cmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console, json or csv")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		port      string
		rulesPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the assessment API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env; absence is not an error.
			_ = godotenv.Load()
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}
			return server.Run(rules, port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $PORT or 8080)")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule-set YAML overriding the built-in tables")
	return cmd
}
