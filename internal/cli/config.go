package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/projectboard/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration serve would start with, after reading the
PROJECTBOARD_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return printConfig(cmd.OutOrStdout(), cfg)
}

func printConfig(out io.Writer, cfg *app.Config) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Address", cfg.Addr},
		{"Shutdown timeout", cfg.ShutdownTimeout.String()},
		{"Log level", cfg.Log.Level},
		{"Log format", cfg.Log.Format},
		{"Prometheus", enabled(cfg.Metrics.Enabled, cfg.Metrics.Path)},
		{"OTEL", enabled(cfg.OTEL.Active(), cfg.OTEL.Endpoint)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
	}
	return w.Flush()
}

func enabled(on bool, detail string) string {
	if !on {
		return "disabled"
	}
	return "enabled (" + detail + ")"
}
