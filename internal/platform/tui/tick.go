// Package tui provides the Bubble Tea front end of the game: the game
// screen, the menu, the results table and the SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a status notice stays under the board.
const noticeTTL = 4 * time.Second

// noticeExpiredMsg clears the notice with the given id if it is still shown.
type noticeExpiredMsg struct {
	id int
}

// expireNoticeCmd returns a command that fires once the notice has been
// visible for the given duration.
func expireNoticeCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
