package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/usebeehiiv/beehiiv-mcp/internal/config"
	"github.com/usebeehiiv/beehiiv-mcp/internal/logging"
	"github.com/usebeehiiv/beehiiv-mcp/internal/mcp"
	"github.com/usebeehiiv/beehiiv-mcp/internal/mcp/tools"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "beehiiv-mcp",
	Short: "MCP server for Beehiiv newsletter analytics",
	Long: `beehiiv-mcp serves read-only Beehiiv analytics tools over stdio:
publications, posts, aggregate post stats, and segments.

Configuration comes from environment variables, optionally layered over a
YAML file passed with --config. The BEEHIIV_API_KEY environment variable
supplies the API credential and is never read from the file.`,
	Version:      "1.0.0",
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to optional YAML config file")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return err
	}

	logCleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logCleanup()

	server, err := mcp.NewServer(tools.NewDeps(cfg))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Run the server with stdio transport
	slog.Info("starting beehiiv MCP server on stdio")
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
