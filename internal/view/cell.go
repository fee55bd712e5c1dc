// Package view draws the game into a core.Screen and maps pointer positions
// back to game events. Views are stateless: they read a board or a game and
// return tictactoe events; they never change game state themselves.
package view

import (
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Cell renders one board position.
type Cell struct {
	Index int
	Rect  core.Rect // Interior, borders excluded
}

// CellStyle selects how a cell is highlighted.
type CellStyle struct {
	Color       core.Color // Colour of the mark
	Cursor      bool       // Draw cursor brackets
	CursorColor core.Color
}

// Draw writes the cell value centred in its rectangle. Empty cells stay blank.
func (c Cell) Draw(dst *core.Screen, value tictactoe.Mark, style CellStyle) {
	cx, cy := c.Rect.Center()

	if value != tictactoe.Empty {
		dst.DrawTextColored(cx, cy, value.String(), style.Color)
	}

	if style.Cursor {
		dst.SetColored(c.Rect.X, cy, '[', style.CursorColor)
		dst.SetColored(c.Rect.Right()-1, cy, ']', style.CursorColor)
	}
}

// Click returns the event for activating this cell. Occupied cells still
// produce it; the controller decides whether it is a no-op.
func (c Cell) Click() tictactoe.CellClicked {
	return tictactoe.CellClicked{Index: c.Index}
}
