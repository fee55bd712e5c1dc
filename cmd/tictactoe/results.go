package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the results ledger",
	Long: `Print the most recent won games and the overall tally.

Examples:
  tictactoe results
  tictactoe results --limit 50
  tictactoe results --clear`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of results to show")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete every recorded result")
}

func runResults(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open results database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagResultsClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Results cleared.")
		return nil
	}

	results, err := store.RecentResults(flagResultsLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Results")
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tictactoe play' and win a game to fill the ledger!")
		return nil
	}

	fmt.Fprintf(out, "  %-5s  %-6s  %-5s  %-18s  %-16s  %s\n", "ID", "Winner", "Moves", "Transcript", "Player", "Date")
	fmt.Fprintf(out, "  %-5s  %-6s  %-5s  %-18s  %-16s  %s\n", "--", "------", "-----", "----------", "------", "----")
	for _, r := range results {
		fmt.Fprintf(out, "  %-5d  %-6s  %-5d  %-18s  %-16s  %s\n",
			r.ID, r.Winner, r.Moves, r.Transcript, r.Session,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	tally, err := store.Tally()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d   X wins: %d   O wins: %d   Avg moves: %.1f\n",
		tally.Games, tally.XWins, tally.OWins, tally.AvgMoves)
	return nil
}
