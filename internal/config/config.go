// Package config provides YAML-based settings loading for the game:
// colours, board layout, PNG export and the SSH server.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Settings contains everything that can be set in the settings file.
type Settings struct {
	Theme  ThemeSettings  `yaml:"theme"`
	Layout LayoutSettings `yaml:"layout"`
	Export ExportSettings `yaml:"export"`
}

// ThemeSettings names the colour of each board element. Values are core
// colour names such as "bright-cyan".
type ThemeSettings struct {
	X              string `yaml:"x"`
	O              string `yaml:"o"`
	Grid           string `yaml:"grid"`
	Cursor         string `yaml:"cursor"`
	Win            string `yaml:"win"`
	Status         string `yaml:"status"`
	History        string `yaml:"history"`
	HistoryCurrent string `yaml:"history_current"`
}

// LayoutSettings defines the size of one board cell in terminal characters,
// borders excluded.
type LayoutSettings struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// ExportSettings controls PNG export of board snapshots.
type ExportSettings struct {
	Dir       string  `yaml:"dir"`
	CellSize  int     `yaml:"cell_size"`  // Pixels per board cell
	LineWidth float64 `yaml:"line_width"` // Stroke width for grid and marks
	FontSize  float64 `yaml:"font_size"`  // Caption font size in points
}

// ServerConfig holds the SSH server settings. It is read with cleanenv so
// each field can be overridden from the environment.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"TICTACTOE_SSH_ADDR" env-default:":23234"`
	HostKeyPath string        `yaml:"host_key" env:"TICTACTOE_HOST_KEY"`
	DBPath      string        `yaml:"db" env:"TICTACTOE_DB" env-default:"~/.tictactoe/results.db"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"TICTACTOE_IDLE_TIMEOUT" env-default:"30m"`
	LogLevel    string        `yaml:"log_level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
}

// serverFile is the shape cleanenv reads the server section from.
type serverFile struct {
	Server ServerConfig `yaml:"server"`
}

// Theme is ThemeSettings resolved to screen colours.
type Theme struct {
	X              core.Color
	O              core.Color
	Grid           core.Color
	Cursor         core.Color
	Win            core.Color
	Status         core.Color
	History        core.Color
	HistoryCurrent core.Color
}

// Resolve converts colour names to core colours.
func (t ThemeSettings) Resolve() (Theme, error) {
	var theme Theme
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"x", t.X, &theme.X},
		{"o", t.O, &theme.O},
		{"grid", t.Grid, &theme.Grid},
		{"cursor", t.Cursor, &theme.Cursor},
		{"win", t.Win, &theme.Win},
		{"status", t.Status, &theme.Status},
		{"history", t.History, &theme.History},
		{"history_current", t.HistoryCurrent, &theme.HistoryCurrent},
	}

	for _, f := range fields {
		c, err := core.ParseColor(f.src)
		if err != nil {
			return Theme{}, fmt.Errorf("config: theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return theme, nil
}

// Validate checks numeric settings are usable.
func (s Settings) Validate() error {
	if s.Layout.CellWidth < 3 || s.Layout.CellHeight < 1 {
		return fmt.Errorf("config: layout cell must be at least 3x1, got %dx%d",
			s.Layout.CellWidth, s.Layout.CellHeight)
	}
	if s.Export.CellSize < 16 {
		return fmt.Errorf("config: export.cell_size must be at least 16, got %d", s.Export.CellSize)
	}
	if s.Export.LineWidth <= 0 {
		return fmt.Errorf("config: export.line_width must be positive")
	}
	return nil
}
