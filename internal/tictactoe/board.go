// Package tictactoe contains the pure game logic: board snapshots, win
// evaluation and the history-keeping game controller. It has no terminal or
// storage dependencies so every transition can be tested directly.
package tictactoe

import "strings"

// Mark is the value held by a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	X          // First player
	O          // Second player
)

// String returns the glyph for the mark, or an empty string for Empty.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// BoardSize is the number of cells on a side.
const BoardSize = 3

// CellCount is the number of cells in a snapshot.
const CellCount = BoardSize * BoardSize

// Board is one immutable snapshot of the nine cells, indexed row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [CellCount]Mark

// lines are the winning index triples in evaluation order:
// rows, then columns, then diagonals.
var lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner returns the mark holding a complete line, or Empty if there is none.
// When several lines are complete the first one in evaluation order decides.
func Winner(b Board) Mark {
	if line, ok := WinningLine(b); ok {
		return b[line[0]]
	}
	return Empty
}

// WinningLine returns the first complete line on the board.
func WinningLine(b Board) ([3]int, bool) {
	for _, l := range lines {
		a := b[l[0]]
		if a != Empty && a == b[l[1]] && a == b[l[2]] {
			return l, true
		}
	}
	return [3]int{}, false
}

// With returns a copy of the board with cell i set to m.
// The receiver is never modified.
func (b Board) With(i int, m Mark) Board {
	b[i] = m
	return b
}

// Row returns the three cells of row r.
func (b Board) Row(r int) [BoardSize]Mark {
	return [BoardSize]Mark{b[r*BoardSize], b[r*BoardSize+1], b[r*BoardSize+2]}
}

// String renders the board as three text rows using "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, m := range b.Row(r) {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if m == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(m.String())
			}
		}
	}
	return sb.String()
}

// IndexOf converts a row/column pair to a cell index.
func IndexOf(row, col int) int {
	return row*BoardSize + col
}

// Coords converts a cell index to its row/column pair.
func Coords(i int) (row, col int) {
	return i / BoardSize, i % BoardSize
}

// ValidIndex reports whether i addresses a cell.
func ValidIndex(i int) bool {
	return i >= 0 && i < CellCount
}
