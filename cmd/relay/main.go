package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version    = "1.0.0"
	logger     *slog.Logger
	configPath string
)

func main() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Optional; remote URLs and the like may live in a .env file.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "relay",
		Short: "Relay: a multi-agent routing demo",
		Long: "Relay wires a router, weather, calculator, and advanced-calculator agent\n" +
			"together with keyword-rule delegation, either in one process or across\n" +
			"HTTP, and exports per-hop telemetry for offline evaluation.",
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to relay.yaml (default: built-in local config)")

	root.AddCommand(serveCmd())
	root.AddCommand(askCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(toolsCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(reportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
