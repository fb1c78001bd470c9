package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ontovet/ontovet/am"
	"github.com/ontovet/ontovet/cmd/ontovet/commands"
	"github.com/ontovet/ontovet/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ontovet",
	Short: "ontovet - Ontology-backed table validation",
	Long: `ontovet - Validate tabular data against an ontology.

Given a CSV/TSV/XLSX table whose header row names ontology properties and
whose second row encodes per-column validation rules, ontovet checks every
data cell against the declared rules through a description-logic reasoner
and reports every failing cell.

Available commands:
  validate - Validate a table against an ontology snapshot
  am       - Show the effective configuration
  version  - Show version information

Examples:
  ontovet validate cells.csv --ontology cl.yaml
  ontovet validate cells.csv --ontology cl.yaml --output report.xlsx
  ontovet validate cells.tsv --ontology cl.yaml --output report.html --standalone`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		if err := logger.Initialize(cfg.Log.JSON, verbose || cfg.Log.Verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug-level logging")

	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
