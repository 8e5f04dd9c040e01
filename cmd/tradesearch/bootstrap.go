package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"trade-search/internal/columns"
	"trade-search/internal/grid"
	"trade-search/internal/grid/gridobs"
	"trade-search/internal/interfaces"
	"trade-search/internal/logger"
	"trade-search/internal/mockdata"
	"trade-search/internal/search"
	"trade-search/internal/search/searchobs"
	"trade-search/internal/store"
	"trade-search/internal/trace"
	"trade-search/internal/types"
)

// initializeSystem loads .env and starts the logger and tracer. defaultLogFile
// is used when LOG_FILE is unset; the terminal UI passes one so logs stay off
// the screen.
func initializeSystem(defaultLogFile string) error {
	_ = godotenv.Load()

	logCfg := logger.LoadConfigFromEnv()
	if logCfg.File == "" {
		logCfg.File = defaultLogFile
	}
	if err := logger.InitWithConfig(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(version); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

func shutdownSystem(ctx context.Context) {
	if err := trace.Shutdown(ctx); err != nil {
		logger.Warn(ctx, "Failed to flush traces", "error", err)
	}
	_ = logger.Shutdown()
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

func gridOptions(cfg *store.Config) []grid.Option {
	return []grid.Option{
		grid.WithMinWidth(cfg.Grid.MinWidth),
		grid.WithRowsPerPage(cfg.Grid.RowsPerPage),
	}
}

// initializeTrades builds the trades grid over n generated rows, with observability.
func initializeTrades(ctx context.Context, cfg *store.Config, gen interfaces.TradeGenerator, n int) grid.Grid[types.TradeRow] {
	rows := gen.GenerateTrades(n)
	logger.Info(ctx, "Generated trades", "rows", len(rows))

	ctrl := grid.New(columns.TradeRegistry(), rows, gridOptions(cfg)...)
	return gridobs.Wrap[types.TradeRow](ctx, "trades", ctrl)
}

// initializeSearchPage wires the searcher and the results grid decorator.
func initializeSearchPage(ctx context.Context, cfg *store.Config) *search.Page {
	searcher := searchobs.Wrap(mockdata.NewStaticSearcher())

	return search.NewPage(searcher,
		search.WithSourceSystems(cfg.Search.SourceSystems),
		search.WithGridOptions(gridOptions(cfg)...),
		search.WithGridWrapper(func(g grid.Grid[types.SearchResult]) grid.Grid[types.SearchResult] {
			return gridobs.Wrap(ctx, "results", g)
		}),
	)
}

func newGenerator(seed int64) interfaces.TradeGenerator {
	if seed != 0 {
		return mockdata.NewSeededGenerator(seed)
	}
	return mockdata.NewGenerator()
}
