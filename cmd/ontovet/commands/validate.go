// Package commands implements the ontovet CLI subcommands.
package commands

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ontovet/ontovet/am"
	"github.com/ontovet/ontovet/errors"
	"github.com/ontovet/ontovet/logger"
	"github.com/ontovet/ontovet/ontology"
	"github.com/ontovet/ontovet/reasoner"
	"github.com/ontovet/ontovet/report"
	"github.com/ontovet/ontovet/tableio"
	"github.com/ontovet/ontovet/validate"
)

var (
	validateOntologyPath string
	validateOutputPath   string
	validateStandalone   bool
)

// ValidateCmd validates a table against an ontology snapshot
var ValidateCmd = &cobra.Command{
	Use:   "validate <table>",
	Short: "Validate a table against an ontology",
	Long: `Validate a CSV/TSV/XLSX table against an ontology snapshot.

Row 1 of the table names the columns, row 2 declares per-column rules,
and every following row is data. Each failing cell is written to the
report; the report format follows the output path's extension (.xlsx,
.html, or plain text). Without --output the report goes to standard
output.

Examples:
  ontovet validate cells.csv --ontology cl.yaml
  ontovet validate cells.csv --ontology cl.yaml --output report.xlsx
  ontovet validate cells.tsv --ontology cl.yaml --output report.html --standalone`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0], validateOntologyPath, validateOutputPath, validateStandalone)
	},
}

func init() {
	ValidateCmd.Flags().StringVarP(&validateOntologyPath, "ontology", "i", "", "Path to the ontology snapshot (required)")
	ValidateCmd.Flags().StringVarP(&validateOutputPath, "output", "o", "", "Report destination (default: standard output)")
	ValidateCmd.Flags().BoolVar(&validateStandalone, "standalone", false, "Wrap HTML reports in a full document")
	_ = ValidateCmd.MarkFlagRequired("ontology")
}

// countingSink counts failures on their way to the underlying sink.
type countingSink struct {
	report.Sink
	failures int
}

func (s *countingSink) Report(c report.Coords, message string) error {
	s.failures++
	return s.Sink.Report(c, message)
}

func runValidate(tablePath, ontologyPath, outputPath string, standalone bool) error {
	cfg, err := am.Load()
	if err != nil {
		return err
	}

	onto, err := ontology.LoadSnapshot(ontologyPath)
	if err != nil {
		return errors.Wrapf(err, "loading ontology %s", ontologyPath)
	}
	rsn, err := reasoner.NewMangle(onto)
	if err != nil {
		return errors.Wrap(err, "building reasoner")
	}
	rows, err := tableio.ReadTable(tablePath)
	if err != nil {
		return err
	}

	validator := validate.New(onto, rsn)

	sink, err := report.ForPath(outputPath, report.Options{
		TableName:  filepath.Base(tablePath),
		Author:     cfg.Report.Author,
		Standalone: standalone || cfg.Report.Standalone,
		RenderCell: validator.RenderCell,
	})
	if err != nil {
		return err
	}
	counting := &countingSink{Sink: sink}

	runErr := validator.Validate(rows, counting)
	if closeErr := sink.Close(); runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		logger.Logger.Errorw("validation aborted", "table", tablePath, "error", runErr)
		return runErr
	}

	if outputPath != "" {
		if counting.failures > 0 {
			pterm.Warning.Printf("%d failing cell(s), report written to %s\n", counting.failures, outputPath)
		} else {
			pterm.Success.Printf("No failures, report written to %s\n", outputPath)
		}
	}
	return nil
}
