package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/app"
	"github.com/emiliopalmerini/projectboard/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the project board",
	Long: `Start the project board web server.

Configuration is read from PROJECTBOARD_* environment variables; flags
override them.

Examples:
  projectboard serve                    # Start on default port 8080
  projectboard serve --port 3000        # Start on port 3000
  projectboard serve --log-level debug  # Verbose logging`,
	RunE: runServe,
}

var (
	servePort     int
	serveLogLevel string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*app.Config, error) {
	cfg, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Addr = fmt.Sprintf(":%d", servePort)
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Log.Level = serveLogLevel
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal", zap.String("signal", sig.String()))
		cancel()
	}()

	return app.Build(ctx, cfg, logger).Run(ctx)
}
