package view

import (
	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// NoCursor hides the keyboard cursor.
const NoCursor = -1

// Grid lays out nine cells row-major inside a box with inner dividers.
type Grid struct {
	bounds core.Rect
	cells  [tictactoe.CellCount]Cell
}

// NewGrid creates a grid whose top-left border corner is at (x, y).
// cellW and cellH are the interior size of one cell.
func NewGrid(x, y, cellW, cellH int) Grid {
	g := Grid{
		bounds: core.NewRect(x, y,
			tictactoe.BoardSize*(cellW+1)+1,
			tictactoe.BoardSize*(cellH+1)+1),
	}
	for i := range g.cells {
		row, col := tictactoe.Coords(i)
		g.cells[i] = Cell{
			Index: i,
			Rect: core.NewRect(
				x+1+col*(cellW+1),
				y+1+row*(cellH+1),
				cellW, cellH),
		}
	}
	return g
}

// GridSize returns the outer size of a grid with the given cell interior.
func GridSize(cellW, cellH int) (w, h int) {
	return tictactoe.BoardSize*(cellW+1) + 1, tictactoe.BoardSize*(cellH+1) + 1
}

// Bounds returns the outer rectangle including borders.
func (g Grid) Bounds() core.Rect {
	return g.bounds
}

// Cell returns the cell at index i.
func (g Grid) Cell(i int) Cell {
	return g.cells[i]
}

// Draw renders the borders and every cell of board. The cell at cursor gets
// brackets; cells on a winning line use the win colour.
func (g Grid) Draw(dst *core.Screen, board tictactoe.Board, cursor int, theme config.Theme) {
	g.drawBorders(dst, theme.Grid)

	win := map[int]bool{}
	if line, ok := tictactoe.WinningLine(board); ok {
		for _, i := range line {
			win[i] = true
		}
	}

	for i, c := range g.cells {
		style := CellStyle{
			Color:       markColor(board[i], theme),
			Cursor:      i == cursor,
			CursorColor: theme.Cursor,
		}
		if win[i] {
			style.Color = theme.Win
		}
		c.Draw(dst, board[i], style)
	}
}

// HitTest returns the click event for the cell under (x, y).
// Borders belong to no cell.
func (g Grid) HitTest(x, y int) (tictactoe.CellClicked, bool) {
	if !g.bounds.Contains(x, y) {
		return tictactoe.CellClicked{}, false
	}
	for _, c := range g.cells {
		if c.Rect.Contains(x, y) {
			return c.Click(), true
		}
	}
	return tictactoe.CellClicked{}, false
}

func (g Grid) drawBorders(dst *core.Screen, color core.Color) {
	b := g.bounds
	dst.DrawBox(b, color)

	cellW := g.cells[0].Rect.W
	cellH := g.cells[0].Rect.H

	for k := 1; k < tictactoe.BoardSize; k++ {
		// Inner horizontal divider
		y := b.Y + k*(cellH+1)
		dst.DrawHLine(b.X+1, y, b.W-2, '─', color)
		dst.SetColored(b.X, y, '├', color)
		dst.SetColored(b.Right()-1, y, '┤', color)

		// Inner vertical divider
		x := b.X + k*(cellW+1)
		for yy := b.Y + 1; yy < b.Bottom()-1; yy++ {
			dst.SetColored(x, yy, '│', color)
		}
		dst.SetColored(x, b.Y, '┬', color)
		dst.SetColored(x, b.Bottom()-1, '┴', color)
	}

	// Crossings last so dividers do not overwrite them
	for r := 1; r < tictactoe.BoardSize; r++ {
		for c := 1; c < tictactoe.BoardSize; c++ {
			dst.SetColored(b.X+c*(cellW+1), b.Y+r*(cellH+1), '┼', color)
		}
	}
}

func markColor(m tictactoe.Mark, theme config.Theme) core.Color {
	switch m {
	case tictactoe.X:
		return theme.X
	case tictactoe.O:
		return theme.O
	default:
		return core.ColorDefault
	}
}
