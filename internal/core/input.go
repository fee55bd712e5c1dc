package core

// Action represents a semantic input, abstracted from physical key presses.
// Mouse input does not go through actions; it is hit-tested against the
// view layout instead.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Move the cell cursor up
	ActionDown               // Move the cell cursor down
	ActionLeft               // Move the cell cursor left
	ActionRight              // Move the cell cursor right
	ActionPlay               // Play the cell under the cursor
	ActionStepBack           // Jump one step back in history
	ActionStepForward        // Jump one step forward in history
	ActionGameStart          // Jump to the empty board
	ActionNewGame            // Discard history and start over
	ActionExport             // Export the displayed board as PNG
	ActionCopy               // Copy the move transcript to the clipboard
	ActionHelp               // Toggle the full help view
	ActionBack               // Back to menu
	ActionQuit               // Exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlay:
		return "Play"
	case ActionStepBack:
		return "StepBack"
	case ActionStepForward:
		return "StepForward"
	case ActionGameStart:
		return "GameStart"
	case ActionNewGame:
		return "NewGame"
	case ActionExport:
		return "Export"
	case ActionCopy:
		return "Copy"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
