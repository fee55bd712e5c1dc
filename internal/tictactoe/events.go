package tictactoe

// Event is a message travelling from the view layer up to the controller.
// Views never mutate game state; they only produce events.
type Event interface {
	gameEvent()
}

// CellClicked is produced when the cell at Index is activated.
type CellClicked struct {
	Index int
}

func (CellClicked) gameEvent() {}

// JumpRequested is produced when a move-list entry is activated.
type JumpRequested struct {
	Step int
}

func (JumpRequested) gameEvent() {}

// Apply runs the transition for ev and reports whether state changed.
// Unknown events are ignored.
func (g *Game) Apply(ev Event) bool {
	switch e := ev.(type) {
	case CellClicked:
		return g.Move(e.Index)
	case JumpRequested:
		return g.JumpTo(e.Step)
	default:
		return false
	}
}
