package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

func testTheme(t *testing.T) config.Theme {
	t.Helper()
	theme, err := config.DefaultSettings().Theme.Resolve()
	require.NoError(t, err)
	return theme
}

func TestGridGeometry(t *testing.T) {
	g := NewGrid(0, 0, 7, 3)

	assert.Equal(t, core.NewRect(0, 0, 25, 13), g.Bounds())
	assert.Equal(t, core.NewRect(1, 1, 7, 3), g.Cell(0).Rect)
	assert.Equal(t, core.NewRect(9, 5, 7, 3), g.Cell(4).Rect)
	assert.Equal(t, core.NewRect(17, 9, 7, 3), g.Cell(8).Rect)
}

func TestGridHitTestEveryCell(t *testing.T) {
	g := NewGrid(4, 2, 5, 1)

	for i := 0; i < tictactoe.CellCount; i++ {
		r := g.Cell(i).Rect
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				ev, ok := g.HitTest(x, y)
				require.True(t, ok, "(%d,%d) should hit cell %d", x, y, i)
				assert.Equal(t, tictactoe.CellClicked{Index: i}, ev)
			}
		}
	}
}

func TestGridHitTestMisses(t *testing.T) {
	g := NewGrid(0, 0, 7, 3)

	misses := [][2]int{
		{0, 0},   // corner
		{8, 2},   // vertical divider
		{3, 4},   // horizontal divider
		{30, 30}, // outside
		{-1, 2},
	}
	for _, p := range misses {
		_, ok := g.HitTest(p[0], p[1])
		assert.False(t, ok, "(%d,%d) should not hit a cell", p[0], p[1])
	}
}

func TestCellClickOnOccupiedCell(t *testing.T) {
	c := NewGrid(0, 0, 3, 1).Cell(4)
	assert.Equal(t, tictactoe.CellClicked{Index: 4}, c.Click())
}

func TestGridDraw(t *testing.T) {
	theme := testTheme(t)
	s := core.NewScreen(25, 13)
	g := NewGrid(0, 0, 7, 3)

	board := tictactoe.Board{tictactoe.X, tictactoe.Empty, tictactoe.O}
	g.Draw(s, board, 4, theme)

	assert.Equal(t, 'X', s.Get(4, 2))
	assert.Equal(t, theme.X, s.GetCell(4, 2).Color)
	assert.Equal(t, 'O', s.Get(20, 2))
	assert.Equal(t, ' ', s.Get(12, 2), "empty cells stay blank")

	// Cursor brackets on cell 4
	assert.Equal(t, '[', s.Get(9, 6))
	assert.Equal(t, ']', s.Get(15, 6))

	// Borders
	assert.Equal(t, '┌', s.Get(0, 0))
	assert.Equal(t, '┬', s.Get(8, 0))
	assert.Equal(t, '├', s.Get(0, 4))
	assert.Equal(t, '┼', s.Get(8, 4))
	assert.Equal(t, '┘', s.Get(24, 12))
}

func TestGridDrawHighlightsWinningLine(t *testing.T) {
	theme := testTheme(t)
	s := core.NewScreen(25, 13)
	g := NewGrid(0, 0, 7, 3)

	game, err := tictactoe.Replay(0, 3, 1, 4, 2)
	require.NoError(t, err)
	g.Draw(s, game.Current(), NoCursor, theme)

	for _, i := range []int{0, 1, 2} {
		x, y := g.Cell(i).Rect.Center()
		assert.Equal(t, theme.Win, s.GetCell(x, y).Color, "cell %d", i)
	}
	x, y := g.Cell(3).Rect.Center()
	assert.Equal(t, theme.O, s.GetCell(x, y).Color)
}

func movesOf(t *testing.T, steps int, current int) []tictactoe.MoveEntry {
	t.Helper()
	g := tictactoe.New()
	for i := 0; i < steps; i++ {
		// This order fills the board without a winner
		require.True(t, g.Move([]int{0, 1, 3, 4, 7, 6, 2, 5, 8}[i]))
	}
	g.JumpTo(current)
	return g.Moves()
}

func TestInfoHitTest(t *testing.T) {
	p := Info{X: 30, Y: 2, Width: 24, MaxRows: 10}
	moves := movesOf(t, 3, 3)

	ev, ok := p.HitTest(31, 4, moves)
	require.True(t, ok)
	assert.Equal(t, tictactoe.JumpRequested{Step: 0}, ev)

	ev, ok = p.HitTest(40, 7, moves)
	require.True(t, ok)
	assert.Equal(t, tictactoe.JumpRequested{Step: 3}, ev)

	_, ok = p.HitTest(31, 8, moves)
	assert.False(t, ok, "below the last entry")
	_, ok = p.HitTest(31, 2, moves)
	assert.False(t, ok, "status line is not a move entry")
	_, ok = p.HitTest(10, 4, moves)
	assert.False(t, ok, "left of the panel")
}

func TestInfoScrollKeepsCurrentVisible(t *testing.T) {
	p := Info{X: 0, Y: 0, Width: 24, MaxRows: 4}
	moves := movesOf(t, 8, 8)

	start, end := p.visible(moves)
	assert.Equal(t, 5, start)
	assert.Equal(t, 9, end)

	ev, ok := p.HitTest(1, 2, moves)
	require.True(t, ok)
	assert.Equal(t, tictactoe.JumpRequested{Step: 5}, ev)

	moves = movesOf(t, 8, 0)
	start, end = p.visible(moves)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
}

func TestInfoDraw(t *testing.T) {
	theme := testTheme(t)
	s := core.NewScreen(30, 8)
	p := Info{X: 0, Y: 0, Width: 30, MaxRows: 6}

	p.Draw(s, "Next player: O", movesOf(t, 1, 1), theme)

	assert.Equal(t, "Next player: O", strings.TrimRight(s.Row(0), " "))
	assert.Equal(t, "  1. Go to game start", strings.TrimRight(s.Row(2), " "))
	assert.Equal(t, "> 2. Go to move #1", strings.TrimRight(s.Row(3), " "))
	assert.Equal(t, theme.HistoryCurrent, s.GetCell(2, 3).Color)
}

func TestLayoutWideAndNarrow(t *testing.T) {
	cells := config.DefaultSettings().Layout

	wide := NewLayout(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, cells)
	require.False(t, wide.TooSmall)
	assert.Equal(t, wide.Grid.Bounds().Y, wide.Info.Y)
	assert.Greater(t, wide.Info.X, wide.Grid.Bounds().Right())

	narrow := NewLayout(core.RuntimeConfig{ScreenW: 30, ScreenH: 30}, cells)
	require.False(t, narrow.TooSmall)
	assert.Greater(t, narrow.Info.Y, narrow.Grid.Bounds().Bottom()-1)

	// Grid fits but the panel below it would have no room for a move entry
	for h := 16; h <= 18; h++ {
		l := NewLayout(core.RuntimeConfig{ScreenW: 40, ScreenH: h}, cells)
		assert.True(t, l.TooSmall, "40x%d", h)
	}

	theme := testTheme(t)
	game, err := tictactoe.Replay(0, 3, 1, 4, 2)
	require.NoError(t, err)
	fits := NewLayout(core.RuntimeConfig{ScreenW: 40, ScreenH: 19}, cells)
	require.False(t, fits.TooSmall)
	assert.Equal(t, 1, fits.Info.MaxRows)
	s := core.NewScreen(40, 19)
	fits.Draw(s, game, NoCursor, theme)
	assert.Contains(t, s.Row(fits.Info.Y), "Winner: X")
	assert.Contains(t, s.Row(fits.Info.Y+2), "Go to move #5")

	tiny := NewLayout(core.RuntimeConfig{ScreenW: 10, ScreenH: 5}, cells)
	assert.True(t, tiny.TooSmall)
	_, ok := tiny.HitTest(0, 0, tictactoe.New())
	assert.False(t, ok)
}

func TestLayoutClickDrivesGame(t *testing.T) {
	theme := testTheme(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	l := NewLayout(cfg, config.DefaultSettings().Layout)
	s := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g := tictactoe.New()

	click := func(x, y int) {
		ev, ok := l.HitTest(x, y, g)
		require.True(t, ok)
		g.Apply(ev)
	}

	x, y := l.Grid.Cell(0).Rect.Center()
	click(x, y)
	x, y = l.Grid.Cell(4).Rect.Center()
	click(x, y)
	assert.Equal(t, 2, g.Step())

	// Jump back to move #1 through the move list
	click(l.Info.X, l.Info.Y+2+1)
	assert.Equal(t, 1, g.Step())

	l.Draw(s, g, NoCursor, theme)
	assert.Contains(t, s.Row(l.Info.Y), "Next player: O")
	assert.Contains(t, s.Row(0), titleText)
}
