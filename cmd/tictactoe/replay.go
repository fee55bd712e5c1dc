package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/export"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

var (
	flagReplayPNG  string
	flagReplayStep int
)

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Replay a move list without the terminal UI",
	Long: `Apply a comma-separated list of cell indices (0-8, row by row) to a
new game and print the board, the status and the move list.

The list is a transcript as stored in the results ledger. Moves the
game would ignore (occupied cell, game already won) are errors.

Examples:
  tictactoe replay 0,3,1,4,2
  tictactoe replay 0,3,1,4,2 --step 3
  tictactoe replay 0,3,1,4,2 --png win.png`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayPNG, "png", "", "Also write the board to this PNG file")
	replayCmd.Flags().IntVar(&flagReplayStep, "step", -1, "Show the board at this history step instead of the last")
}

func runReplay(cmd *cobra.Command, args []string) error {
	moves, err := tictactoe.ParseMoves(args[0])
	if err != nil {
		return err
	}

	game, err := tictactoe.Replay(moves...)
	if err != nil {
		return err
	}
	if flagReplayStep >= game.Len() {
		return fmt.Errorf("step %d out of range 0..%d", flagReplayStep, game.Len()-1)
	}
	if flagReplayStep >= 0 {
		game.JumpTo(flagReplayStep)
	}

	printGame(cmd.OutOrStdout(), game)

	if flagReplayPNG == "" {
		return nil
	}

	settings, _, _, err := loadSettings()
	if err != nil {
		return err
	}
	path := config.ExpandPath(flagReplayPNG)
	if err := export.SavePNG(path, game.Current(), game.Status(), settings.Export); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s\n", path)
	return nil
}

func printGame(w io.Writer, g *tictactoe.Game) {
	fmt.Fprint(w, g.Current().String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, g.Status())
	fmt.Fprintln(w)
	for _, m := range g.Moves() {
		marker := "  "
		if m.Current {
			marker = "> "
		}
		fmt.Fprintf(w, "%s%d. %s\n", marker, m.Step+1, m.Label)
	}
}
