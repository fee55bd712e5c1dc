package view

import (
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Info renders the status line and the numbered move list below it.
// When history is longer than the available rows the list scrolls so the
// current entry stays visible.
type Info struct {
	X, Y    int
	Width   int
	MaxRows int // Rows available for move entries
}

// listTop is the row of the first move entry: status, blank line, list.
func (p Info) listTop() int {
	return p.Y + 2
}

// visible returns the half-open range of move entries that fit.
func (p Info) visible(moves []tictactoe.MoveEntry) (start, end int) {
	n := len(moves)
	if p.MaxRows <= 0 {
		return 0, 0
	}
	if n <= p.MaxRows {
		return 0, n
	}

	current := 0
	for _, m := range moves {
		if m.Current {
			current = m.Step
		}
	}

	start = current - p.MaxRows/2
	start = core.Clamp(start, 0, n-p.MaxRows)
	return start, start + p.MaxRows
}

// entryText formats a move-list row, numbered from 1 like an ordered list.
func entryText(m tictactoe.MoveEntry) string {
	marker := "  "
	if m.Current {
		marker = "> "
	}
	return fmt.Sprintf("%s%d. %s", marker, m.Step+1, m.Label)
}

// Draw renders the status and the visible part of the move list.
func (p Info) Draw(dst *core.Screen, status string, moves []tictactoe.MoveEntry, theme config.Theme) {
	dst.DrawTextColored(p.X, p.Y, clip(status, p.Width), theme.Status)

	start, end := p.visible(moves)
	for row, m := range moves[start:end] {
		color := theme.History
		if m.Current {
			color = theme.HistoryCurrent
		}
		dst.DrawTextColored(p.X, p.listTop()+row, clip(entryText(m), p.Width), color)
	}

	if start > 0 {
		dst.DrawTextColored(p.X+p.Width-1, p.listTop(), "↑", theme.History)
	}
	if end < len(moves) && p.MaxRows > 0 {
		dst.DrawTextColored(p.X+p.Width-1, p.listTop()+p.MaxRows-1, "↓", theme.History)
	}
}

// HitTest returns the jump event for the move entry under (x, y).
func (p Info) HitTest(x, y int, moves []tictactoe.MoveEntry) (tictactoe.JumpRequested, bool) {
	if x < p.X || x >= p.X+p.Width {
		return tictactoe.JumpRequested{}, false
	}

	start, end := p.visible(moves)
	row := y - p.listTop()
	if row < 0 || start+row >= end {
		return tictactoe.JumpRequested{}, false
	}
	return tictactoe.JumpRequested{Step: moves[start+row].Step}, true
}

func clip(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) > width {
		return string(r[:width])
	}
	return s
}
