package tictactoe

// Snapshot captures the full controller state plus its derived values.
// It shares nothing with the Game it was taken from.
type Snapshot struct {
	Step    int
	History []Board
	Current Board
	Winner  Mark
	Next    Mark
	Status  string
}

// Snapshot returns a copy of the game state for tests, export and logging.
func (g *Game) Snapshot() Snapshot {
	history := make([]Board, len(g.history))
	copy(history, g.history)

	return Snapshot{
		Step:    g.step,
		History: history,
		Current: g.Current(),
		Winner:  g.Winner(),
		Next:    g.Next(),
		Status:  g.Status(),
	}
}
