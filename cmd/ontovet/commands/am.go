package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontovet/ontovet/am"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage ontovet configuration",
	Long: `am — Manage ontovet configuration ("I am")

Configuration sources (in order of precedence):
1. Environment variables (ONTOVET_* prefix)
2. Project config (./ontovet.toml, searched upward)
3. User config (~/.ontovet/config.toml)
4. System config (/etc/ontovet/config.toml)
5. Default values

Examples:
  ontovet am show                 # Show current configuration
  ontovet am show --format json   # Show configuration in JSON format
  ontovet am get report.author    # Get specific config value`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current ontovet configuration from all sources",
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., report.author, log.json)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

func init() {
	amShowCmd.Flags().String("format", "text", "Output format: text or json")
	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("log.json = %v\n", cfg.Log.JSON)
	fmt.Printf("log.verbose = %v\n", cfg.Log.Verbose)
	fmt.Printf("report.author = %s\n", cfg.Report.Author)
	fmt.Printf("report.standalone = %v\n", cfg.Report.Standalone)
	return nil
}

func runAmGet(cmd *cobra.Command, args []string) error {
	v := am.GetViper()
	key := args[0]
	if !v.IsSet(key) {
		return fmt.Errorf("unknown configuration key %q", key)
	}
	fmt.Println(v.Get(key))
	return nil
}
