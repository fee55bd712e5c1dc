package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a two-player game in this terminal.

Controls:
  Click a cell        - Play it
  Click a move entry  - Jump to that board
  Arrows/hjkl         - Move the cursor
  Enter/Space         - Play the cursor cell
  1-9                 - Play a cell directly (1 is top-left)
  [ / ]               - Step back / forward through history
  g                   - Jump to game start
  n                   - New game
  e                   - Export the board as PNG
  y                   - Copy the move list to the clipboard
  ?                   - Toggle full help
  Q/Ctrl+C            - Quit

Examples:
  tictactoe play
  tictactoe play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger("play")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts, err := gameOptions(store, logger)
	if err != nil {
		return err
	}

	logger.Info("game started", "session", opts.Session)
	_, err = tui.Run(opts, terminalConfig())
	return err
}
