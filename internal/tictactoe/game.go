package tictactoe

import "fmt"

// Game is the controller for a single game. It stores only the history of
// snapshots and the step pointer; the turn and the winner are derived from
// them on every read.
//
// A Game is not safe for concurrent use. The terminal host drives it from a
// single update loop.
type Game struct {
	history []Board
	step    int
}

// New creates a game positioned at an empty board.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Replay creates a game and plays the given cell indices in order.
// It returns an error naming the first move that was rejected.
func Replay(moves ...int) (*Game, error) {
	g := New()
	for n, i := range moves {
		if !g.Move(i) {
			return g, fmt.Errorf("tictactoe: move %d (cell %d) rejected", n+1, i)
		}
	}
	return g, nil
}

// Reset discards all history and starts a new game.
func (g *Game) Reset() {
	g.history = []Board{{}}
	g.step = 0
}

// Move plays cell i for the player whose turn it is.
// The move is ignored when the current board already has a winner, when the
// cell is occupied or when i is not a cell index. If the step pointer is
// behind the end of history, the later entries are dropped before the new
// snapshot is appended. Move reports whether state changed.
func (g *Game) Move(i int) bool {
	if !ValidIndex(i) {
		return false
	}

	current := g.history[g.step]
	if Winner(current) != Empty || current[i] != Empty {
		return false
	}

	next := current.With(i, g.Next())
	g.history = append(g.history[:g.step+1:g.step+1], next)
	g.step = len(g.history) - 1
	return true
}

// JumpTo moves the step pointer to an existing history entry without
// changing history. Targets outside the history are ignored.
// JumpTo reports whether the step pointer moved.
func (g *Game) JumpTo(step int) bool {
	if step < 0 || step >= len(g.history) {
		return false
	}
	changed := step != g.step
	g.step = step
	return changed
}

// Step returns the index of the displayed snapshot.
func (g *Game) Step() int {
	return g.step
}

// Len returns the number of snapshots in history.
func (g *Game) Len() int {
	return len(g.history)
}

// Current returns the displayed snapshot.
func (g *Game) Current() Board {
	return g.history[g.step]
}

// XIsNext reports whether the first player moves next.
func (g *Game) XIsNext() bool {
	return g.step%2 == 0
}

// Next returns the mark of the player whose turn it is.
func (g *Game) Next() Mark {
	if g.XIsNext() {
		return X
	}
	return O
}

// Winner returns the winner of the displayed snapshot, or Empty.
func (g *Game) Winner() Mark {
	return Winner(g.Current())
}

// Status returns the status line for the displayed snapshot.
func (g *Game) Status() string {
	if w := g.Winner(); w != Empty {
		return "Winner: " + w.String()
	}
	return "Next player: " + g.Next().String()
}

// MoveEntry is one row of the move list.
type MoveEntry struct {
	Step    int
	Label   string
	Current bool
}

// MoveLabel returns the move-list label for a history index.
func MoveLabel(step int) string {
	if step == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d", step)
}

// Moves returns one entry per history snapshot.
func (g *Game) Moves() []MoveEntry {
	entries := make([]MoveEntry, len(g.history))
	for step := range g.history {
		entries[step] = MoveEntry{
			Step:    step,
			Label:   MoveLabel(step),
			Current: step == g.step,
		}
	}
	return entries
}

// Transcript returns the cell index played to reach each snapshot after the
// first, in history order.
func (g *Game) Transcript() []int {
	plays := make([]int, 0, len(g.history)-1)
	for step := 1; step < len(g.history); step++ {
		prev, cur := g.history[step-1], g.history[step]
		for i := range cur {
			if prev[i] != cur[i] {
				plays = append(plays, i)
				break
			}
		}
	}
	return plays
}
