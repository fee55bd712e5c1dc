package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in settings.
// Kept in sync with defaults/tictactoe.yaml.
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeSettings{
			X:              "bright-cyan",
			O:              "bright-magenta",
			Grid:           "gray",
			Cursor:         "bright-yellow",
			Win:            "bright-green",
			Status:         "white",
			History:        "gray",
			HistoryCurrent: "bright-yellow",
		},
		Layout: LayoutSettings{
			CellWidth:  7,
			CellHeight: 3,
		},
		Export: ExportSettings{
			Dir:       "~/.tictactoe/exports",
			CellSize:  120,
			LineWidth: 6,
			FontSize:  18,
		},
	}
}
