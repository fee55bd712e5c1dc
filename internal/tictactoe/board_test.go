package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinnerEveryLine(t *testing.T) {
	for _, mark := range []Mark{X, O} {
		for _, line := range lines {
			var b Board
			for _, i := range line {
				b[i] = mark
			}
			assert.Equal(t, mark, Winner(b), "line %v filled with %s", line, mark)

			got, ok := WinningLine(b)
			assert.True(t, ok)
			assert.Equal(t, line, got)
		}
	}
}

func TestWinnerNoLine(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{name: "empty board", board: Board{}},
		{name: "mixed row", board: Board{X, X, O}},
		{name: "two in a column", board: Board{O, Empty, Empty, O}},
		{
			name: "full board without a line",
			board: Board{
				X, O, X,
				X, O, O,
				O, X, X,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Empty, Winner(tt.board))
			_, ok := WinningLine(tt.board)
			assert.False(t, ok)
		})
	}
}

func TestWinnerFirstLineDecides(t *testing.T) {
	// Row 0 and column 0 are both complete; rows come first.
	b := Board{
		X, X, X,
		X, O, O,
		X, O, O,
	}
	line, ok := WinningLine(b)
	assert.True(t, ok)
	assert.Equal(t, [3]int{0, 1, 2}, line)

	// Rows 1 (O) and 2 (X) are complete; row 1 is evaluated first.
	b = Board{
		Empty, Empty, Empty,
		O, O, O,
		X, X, X,
	}
	assert.Equal(t, O, Winner(b))
}

func TestBoardWithCopies(t *testing.T) {
	var b Board
	next := b.With(4, X)

	assert.Equal(t, Empty, b[4], "original must not change")
	assert.Equal(t, X, next[4])
	assert.Equal(t, 1, filled(next))
}

func TestBoardString(t *testing.T) {
	b := Board{X, Empty, O, Empty, X}
	assert.Equal(t, "X . O\n. X .\n. . .", b.String())
}

func TestCoords(t *testing.T) {
	for i := 0; i < CellCount; i++ {
		r, c := Coords(i)
		assert.Equal(t, i, IndexOf(r, c))
	}
	assert.False(t, ValidIndex(-1))
	assert.False(t, ValidIndex(CellCount))
}

func TestMarkString(t *testing.T) {
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, "", Empty.String())
}

func filled(b Board) int {
	n := 0
	for _, m := range b {
		if m != Empty {
			n++
		}
	}
	return n
}
