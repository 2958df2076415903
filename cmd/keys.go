package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/zwm/internal/config"
	"github.com/mj1618/zwm/internal/output"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the resolved key binding table",
	Long:  "Load the configuration the window manager would use and print every key chord with its action.",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func init() {
	keysCmd.Flags().String("format", "", "Output format: yaml, json (default yaml, json when piped)")
	keysCmd.Flags().Bool("pretty", false, "Indent JSON output")
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := setFormat(format); err != nil {
		return err
	}
	output.PrettyOutput, _ = cmd.Flags().GetBool("pretty")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return printKeys(cfg)
}

// setFormat selects the output format. An empty format picks json when
// stdout is piped and yaml on a terminal.
func setFormat(format string) error {
	if format == "" {
		if output.IsOutputPiped() {
			format = "json"
		} else {
			format = "yaml"
		}
	}
	switch format {
	case "yaml":
		output.OutputFormat = output.FormatYAML
	case "json":
		output.OutputFormat = output.FormatJSON
	default:
		return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
	}
	return nil
}

func printKeys(cfg *config.Config) error {
	return output.Print(output.NewKeysResult(cfg.Modifier, cfg.Bindings))
}
