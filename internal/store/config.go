package store

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"trade-search/internal/grid"
)

type Config struct {
	Grid struct {
		Rows          int `yaml:"rows"`
		MinWidth      int `yaml:"min_width"`
		RowsPerPage   int `yaml:"rows_per_page"`
		PixelsPerCell int `yaml:"pixels_per_cell"`
	} `yaml:"grid"`
	Search struct {
		SourceSystems []string `yaml:"source_systems"`
	} `yaml:"search"`
	UI struct {
		SidebarWidth int  `yaml:"sidebar_width"`
		Mouse        bool `yaml:"mouse"`
	} `yaml:"ui"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var c Config
	c.applyDefaults()
	c.UI.Mouse = true
	return &c
}

func (c *Config) applyDefaults() {
	if c.Grid.Rows == 0 {
		c.Grid.Rows = 50
	}
	if c.Grid.MinWidth == 0 {
		c.Grid.MinWidth = grid.DefaultMinWidth
	}
	if c.Grid.RowsPerPage == 0 {
		c.Grid.RowsPerPage = grid.DefaultRowsPerPage
	}
	if c.Grid.PixelsPerCell == 0 {
		c.Grid.PixelsPerCell = 8
	}
	if len(c.Search.SourceSystems) == 0 {
		c.Search.SourceSystems = []string{"System A", "System B", "System C"}
	}
	if c.UI.SidebarWidth == 0 {
		c.UI.SidebarWidth = 22
	}
}

func (c *Config) Validate() error {
	if c.Grid.Rows < 0 {
		return fmt.Errorf("grid.rows must be >= 0, got %d", c.Grid.Rows)
	}
	if c.Grid.MinWidth <= 0 {
		return fmt.Errorf("grid.min_width must be > 0, got %d", c.Grid.MinWidth)
	}
	if !slices.Contains(grid.RowsPerPageOptions, c.Grid.RowsPerPage) {
		return fmt.Errorf("grid.rows_per_page must be one of %v, got %d", grid.RowsPerPageOptions, c.Grid.RowsPerPage)
	}
	if c.Grid.PixelsPerCell <= 0 {
		return fmt.Errorf("grid.pixels_per_cell must be > 0, got %d", c.Grid.PixelsPerCell)
	}
	if c.UI.SidebarWidth < 0 {
		return fmt.Errorf("ui.sidebar_width must be >= 0, got %d", c.UI.SidebarWidth)
	}
	return nil
}

// LoadConfig reads path if it exists, falls back to defaults when it does not,
// then applies TRADESEARCH_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		c = &Config{}
		c.UI.Mouse = true
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		c.applyDefaults()
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	overrides := []struct {
		key string
		dst *int
	}{
		{"TRADESEARCH_ROWS", &c.Grid.Rows},
		{"TRADESEARCH_MIN_WIDTH", &c.Grid.MinWidth},
		{"TRADESEARCH_ROWS_PER_PAGE", &c.Grid.RowsPerPage},
	}
	for _, o := range overrides {
		v := os.Getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = n
	}
	return nil
}
