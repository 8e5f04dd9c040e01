package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"trade-search/internal/logger"
	"trade-search/internal/ui"
)

const version = "0.1.0"

var (
	configPath string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:     "tradesearch",
	Short:   "Trade search dashboard",
	Long:    `tradesearch browses generated trades in a sortable, filterable grid and opens search results for a trade or counterparty.`,
	Version: version,
	RunE:    runUI,
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the terminal dashboard (default)",
	Long: `Open the terminal dashboard. Logs go to LOG_FILE, or tradesearch.log when unset.

Examples:
  tradesearch
  tradesearch ui --config config.yaml --seed 42`,
	RunE: runUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for generated trades (0 picks one from the clock)")
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	if err := initializeSystem("tradesearch.log"); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer shutdownSystem(context.Background())

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	trades := initializeTrades(ctx, cfg, newGenerator(seed), cfg.Grid.Rows)
	page := initializeSearchPage(ctx, cfg)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info(ctx, "Starting dashboard", "version", version, "rows", cfg.Grid.Rows)
	if _, err := tea.NewProgram(ui.New(ctx, cfg, page, trades), opts...).Run(); err != nil {
		logger.ErrorWithErr(ctx, "Dashboard exited with error", err)
		return fmt.Errorf("run dashboard: %w", err)
	}
	logger.Info(ctx, "Dashboard closed")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
