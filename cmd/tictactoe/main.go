// tictactoe is a terminal tic-tac-toe game with move history and time travel.
//
// Usage:
//
//	tictactoe play             - Play a game in this terminal
//	tictactoe menu             - Start menu (new game / results / quit)
//	tictactoe serve            - Start SSH server for remote play
//	tictactoe results          - Print the results ledger
//	tictactoe replay <moves>   - Replay a move list, e.g. "0,3,1,4,2"
//
// Global flags:
//
//	--config <path>     - Settings YAML (default: ~/.tictactoe/config.yaml)
//	--db <path>         - Results database (default: ~/.tictactoe/results.db)
//	--log-file <path>   - Write debug logs here while the game runs
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe with time travel, in your terminal",
	Long: `Two players share one terminal and take turns placing X and O.
Every move is kept in a history list; jump back to any earlier board and
play on from there.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  results  - Print the results ledger
  replay   - Replay a move list without a terminal UI

Examples:
  tictactoe play
  tictactoe menu --log-file /tmp/ttt.log --log-level debug
  tictactoe serve --ssh :2222
  tictactoe replay 0,3,1,4,2 --png win.png`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tictactoe/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadSettings reads the settings file and resolves the colour theme.
func loadSettings() (config.Settings, config.Theme, string, error) {
	settings, path, err := config.Load(flagConfig)
	if err != nil {
		return settings, config.Theme{}, path, err
	}
	theme, err := settings.Theme.Resolve()
	if err != nil {
		return settings, theme, path, err
	}
	return settings, theme, path, nil
}

// newFileLogger returns a logger for interactive commands. The alt screen
// owns the terminal, so logs go to --log-file or nowhere.
func newFileLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(config.ExpandPath(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the results ledger. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalConfig returns the size of the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// localSession names the local player in the ledger.
func localSession() string {
	if user := os.Getenv("USER"); user != "" {
		return "local:" + user
	}
	return "local"
}

// gameOptions bundles everything a game screen needs.
func gameOptions(store *storage.Store, logger *log.Logger) (tui.Options, error) {
	settings, theme, path, err := loadSettings()
	if err != nil {
		return tui.Options{}, err
	}
	if path != "" {
		logger.Debug("settings loaded", "path", path)
	}
	return tui.Options{
		Settings: settings,
		Theme:    theme,
		Store:    store,
		Logger:   logger,
		Session:  localSession(),
	}, nil
}
