package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/export"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/view"
)

// footerRows is the space under the board: a notice line and the help bar.
const footerRows = 2

// Options carries the dependencies of a game screen.
type Options struct {
	Settings config.Settings
	Theme    config.Theme
	Store    *storage.Store // Optional; nil disables the results ledger
	Logger   *log.Logger    // Optional; nil discards
	Session  string         // Recorded with every result

	// Clipboard writes the move transcript. Defaults to the system clipboard.
	Clipboard func(string) error
	// Now returns the current time for export file names.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Clipboard == nil {
		o.Clipboard = clipboard.WriteAll
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Model is the Bubble Tea model of one game screen. It owns the controller
// and feeds it events decoded from keys and mouse clicks.
type Model struct {
	opts       Options
	game       *tictactoe.Game
	layout     view.Layout
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	cursor     int
	notice     string
	noticeID   int
	quitting   bool
	backToMenu bool
}

// NewModel creates a game screen with an empty board.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	cfg = cfg.Sanitize()
	m := Model{
		opts:   opts.withDefaults(),
		game:   tictactoe.New(),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cursor: tictactoe.IndexOf(1, 1),
	}
	m.help.Width = cfg.ScreenW
	m.relayout()
	return m
}

// relayout recomputes the layout and screen buffer for the current size.
func (m *Model) relayout() {
	boardCfg := m.config
	boardCfg.ScreenH = max(boardCfg.ScreenH-footerRows, 1)
	m.layout = view.NewLayout(boardCfg, m.opts.Settings.Layout)
	if m.screen == nil {
		m.screen = core.NewScreen(boardCfg.ScreenW, boardCfg.ScreenH)
		return
	}
	m.screen.Resize(boardCfg.ScreenW, boardCfg.ScreenH)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.config = m.config.Sanitize()
		m.help.Width = m.config.ScreenW
		m.relayout()
		return m, nil

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if i, ok := m.keys.CellKey(msg); ok {
		m.cursor = i
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.notice = ""
	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.moveCursor(action)
	case core.ActionPlay:
		m.apply(tictactoe.CellClicked{Index: m.cursor})
	case core.ActionStepBack:
		m.apply(tictactoe.JumpRequested{Step: m.game.Step() - 1})
	case core.ActionStepForward:
		m.apply(tictactoe.JumpRequested{Step: m.game.Step() + 1})
	case core.ActionGameStart:
		m.apply(tictactoe.JumpRequested{Step: 0})
	case core.ActionNewGame:
		m.game.Reset()
		m.opts.Logger.Debug("new game")
	case core.ActionExport:
		m.exportPNG()
	case core.ActionCopy:
		m.copyTranscript()
	}

	if m.notice != "" {
		m.noticeID++
		return m, expireNoticeCmd(m.noticeID, noticeTTL)
	}
	return m, nil
}

// handleMouse turns left clicks into events by hit-testing the layout.
// The wheel walks through history.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev, ok := m.layout.HitTest(msg.X, msg.Y, m.game)
		if !ok {
			return m, nil
		}
		if click, isCell := ev.(tictactoe.CellClicked); isCell {
			m.cursor = click.Index
		}
		m.notice = ""
		m.apply(ev)
	case tea.MouseButtonWheelUp:
		m.apply(tictactoe.JumpRequested{Step: m.game.Step() - 1})
	case tea.MouseButtonWheelDown:
		m.apply(tictactoe.JumpRequested{Step: m.game.Step() + 1})
	}
	return m, nil
}

// apply hands an event to the controller. A move that produces a winner is
// recorded in the ledger; jumps to an already won snapshot are not.
func (m *Model) apply(ev tictactoe.Event) {
	if !m.game.Apply(ev) {
		m.opts.Logger.Debug("event ignored", "event", fmt.Sprintf("%T%+v", ev, ev), "step", m.game.Step())
		return
	}
	m.opts.Logger.Debug("event applied", "event", fmt.Sprintf("%T%+v", ev, ev), "step", m.game.Step())

	if _, isMove := ev.(tictactoe.CellClicked); isMove && m.game.Winner() != tictactoe.Empty {
		m.recordResult()
	}
}

func (m *Model) recordResult() {
	winner := m.game.Winner()
	m.opts.Logger.Info("game won", "winner", winner, "moves", m.game.Step(), "session", m.opts.Session)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveResult(storage.Result{
		Winner:     winner,
		Moves:      m.game.Step(),
		Transcript: tictactoe.FormatMoves(m.game.Transcript()),
		Session:    m.opts.Session,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save result", "error", err)
	}
}

func (m *Model) moveCursor(action core.Action) {
	row, col := tictactoe.Coords(m.cursor)
	switch action {
	case core.ActionUp:
		row--
	case core.ActionDown:
		row++
	case core.ActionLeft:
		col--
	case core.ActionRight:
		col++
	}
	last := tictactoe.BoardSize - 1
	m.cursor = tictactoe.IndexOf(core.Clamp(row, 0, last), core.Clamp(col, 0, last))
}

// exportPNG saves the displayed snapshot as an image.
func (m *Model) exportPNG() {
	path, err := export.Save(m.game.Current(), m.game.Status(), m.opts.Settings.Export, m.opts.Now())
	if err != nil {
		m.opts.Logger.Warn("export failed", "error", err)
		m.notice = "Export failed: " + err.Error()
		return
	}
	m.opts.Logger.Info("board exported", "path", path)
	m.notice = "Saved " + path
}

// copyTranscript puts the moves of the current history on the clipboard.
func (m *Model) copyTranscript() {
	moves := tictactoe.FormatMoves(m.game.Transcript())
	if moves == "" {
		m.notice = "No moves to copy"
		return
	}
	if err := m.opts.Clipboard(moves); err != nil {
		m.opts.Logger.Warn("clipboard write failed", "error", err)
		m.notice = "Copy failed: " + err.Error()
		return
	}
	m.notice = "Copied " + moves
}

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.layout.Draw(m.screen, m.game, m.cursor, m.opts.Theme)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(noticeStyle.Render(m.notice))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Game returns the controller driven by this screen.
func (m Model) Game() *tictactoe.Game {
	return m.game
}

// Cursor returns the index of the cell under the keyboard cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the last status message shown under the board.
func (m Model) Notice() string {
	return m.notice
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game screen. It returns true if the user asked to
// go back to the menu rather than quit.
func Run(opts Options, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		backQuitter{model},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	bq, ok := finalModel.(backQuitter)
	if !ok {
		return false, nil
	}
	return bq.BackToMenu(), nil
}

// backQuitter ends the program when the game screen asks for the menu.
// Inside an SSH session the session model switches screens instead.
type backQuitter struct {
	Model
}

func (b backQuitter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := b.Model.Update(msg)
	b.Model = next.(Model)
	if b.BackToMenu() {
		return b, tea.Quit
	}
	return b, cmd
}

func (b backQuitter) View() string {
	if b.BackToMenu() {
		return ""
	}
	return b.Model.View()
}
