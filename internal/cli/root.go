package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "projectboard",
	Short: "Track projects on a small web board",
	Long: `projectboard serves a web page where projects are submitted through a form
and listed as active or finished.

Projects live in memory for the lifetime of the process.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
