package view

import (
	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

const (
	titleText = "T I C - T A C - T O E"
	infoWidth = 24 // Wide enough for "> 10. Go to move #9"
	panelGap  = 3
	topMargin = 2 // Title row plus one blank row
	minInfoH  = 3 // Status, blank row, one move entry
)

// Layout positions the grid and the info panel for a screen size.
// Wide screens put the panel right of the grid, narrow ones below it.
type Layout struct {
	Width, Height int
	Grid          Grid
	Info          Info
	TooSmall      bool
}

// NewLayout computes the layout for the given screen and cell size.
func NewLayout(cfg core.RuntimeConfig, cells config.LayoutSettings) Layout {
	gridW, gridH := GridSize(cells.CellWidth, cells.CellHeight)
	l := Layout{Width: cfg.ScreenW, Height: cfg.ScreenH}

	if cfg.ScreenW < gridW || cfg.ScreenH < topMargin+gridH+1 {
		l.TooSmall = true
		return l
	}

	if side := gridW + panelGap + infoWidth; cfg.ScreenW >= side {
		x := (cfg.ScreenW - side) / 2
		l.Grid = NewGrid(x, topMargin, cells.CellWidth, cells.CellHeight)
		l.Info = Info{
			X:       x + gridW + panelGap,
			Y:       topMargin,
			Width:   infoWidth,
			MaxRows: cfg.ScreenH - topMargin - 2,
		}
		return l
	}

	infoY := topMargin + gridH + 1
	if cfg.ScreenH < infoY+minInfoH {
		l.TooSmall = true
		return l
	}

	x := (cfg.ScreenW - gridW) / 2
	l.Grid = NewGrid(x, topMargin, cells.CellWidth, cells.CellHeight)
	l.Info = Info{
		X:       x,
		Y:       infoY,
		Width:   cfg.ScreenW - x,
		MaxRows: cfg.ScreenH - infoY - 2,
	}
	return l
}

// Draw renders the whole game: title, grid of the displayed snapshot and
// the info panel. Nothing is drawn but a notice if the screen is too small.
func (l Layout) Draw(dst *core.Screen, g *tictactoe.Game, cursor int, theme config.Theme) {
	dst.Clear()

	if l.TooSmall {
		dst.DrawTextCentered(l.Height/2, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(l.Height/2+1, "Please resize terminal", core.ColorGray)
		return
	}

	dst.DrawTextCentered(0, titleText, theme.Status)
	l.Grid.Draw(dst, g.Current(), cursor, theme)
	l.Info.Draw(dst, g.Status(), g.Moves(), theme)
}

// HitTest maps a pointer position to the event of the cell or move entry
// under it.
func (l Layout) HitTest(x, y int, g *tictactoe.Game) (tictactoe.Event, bool) {
	if l.TooSmall {
		return nil, false
	}
	if ev, ok := l.Grid.HitTest(x, y); ok {
		return ev, true
	}
	if ev, ok := l.Info.HitTest(x, y, g.Moves()); ok {
		return ev, true
	}
	return nil, false
}
