package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/destboard/internal/board"
	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case boardLoadedMsg:
		return m.handleLoaded(msg), nil
	case boardFailedMsg:
		util.LogError(m.log, "load board", msg.err)
		m.req.alert = config.MsgFetchFailed
		m.failed = true
		return m, nil
	case cellUpdatedMsg:
		return m.handleUpdated(msg)
	case refreshTickMsg:
		return m, tea.Batch(fetchCmd(m.ctx, m.svc, m.now), refreshTickCmd(m.refresh))
	case exportDoneMsg:
		if msg.err != nil {
			util.LogError(m.log, "export board", msg.err)
			m.req.notice = "export failed"
		} else {
			m.req.notice = "exported " + msg.path
		}
		return m, nil
	case spinner.TickMsg:
		if !m.req.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.editor.Editing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	if m.mode() == modeEditing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.editor.SetText(m.input.Value())
		return m, cmd
	}
	return m, nil
}

// handleLoaded replaces the whole board with the fetched one.
func (m BoardModel) handleLoaded(msg boardLoadedMsg) BoardModel {
	m.board = msg.board
	m.refreshed = msg.at
	m.loaded = true
	m.failed = false
	m.view.clamp(m.board)
	m.log.WithFields(log.Fields{"columns": m.board.Columns(), "rows": m.board.Rows()}).Debug("board loaded")
	return m
}

// handleUpdated settles one update request. Success reloads the board;
// failure only alerts, the board stays as it was.
func (m BoardModel) handleUpdated(msg cellUpdatedMsg) (BoardModel, tea.Cmd) {
	m.req.settle()
	if msg.err != nil {
		util.LogError(m.log, fmt.Sprintf("update cell %d/%d", msg.at.Col, msg.at.Row), msg.err)
		m.req.alert = config.MsgUpdateFailed
		return m, nil
	}
	return m, fetchCmd(m.ctx, m.svc, m.now)
}

// startUpdate marks a request in flight and sends it.
func (m BoardModel) startUpdate(at models.Coord, u models.CellUpdate) (BoardModel, tea.Cmd) {
	m.req.begin()
	m.req.notice = ""
	return m, tea.Batch(updateCmd(m.ctx, m.svc, at, u), m.spinner.Tick)
}

func handleDismissAlert(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	m.req.alert = ""
	return m, nil, true
}

func handleMove(m BoardModel, key string) (BoardModel, tea.Cmd, bool) {
	if m.board.Columns() == 0 {
		return m, nil, true
	}
	c := m.view.cursor
	switch key {
	case "up", "k":
		c.Row--
	case "down", "j":
		c.Row++
	case "left", "h":
		c.Col--
	case "right", "l":
		c.Col++
	}
	m.view.cursor = c
	m.view.clamp(m.board)
	return m, nil, true
}

func handleTogglePresence(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	at := m.view.cursor
	u, err := board.TogglePresence(m.board, at)
	if errors.Is(err, board.ErrNoSuchCell) {
		return m, nil, true
	}
	next, cmd := m.startUpdate(at, u)
	return next, cmd, true
}

func handleBeginEdit(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	st, err := m.editor.Begin(m.board, m.view.cursor)
	if err != nil {
		return m, nil, true
	}
	m.input.SetValue(st.Staged)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, tea.Batch(cmd, textinput.Blink), true
}

// handleConfirmEdit closes the editor right away; the request settles later.
// The staged text only changes on keystrokes, so an untouched status is sent
// back exactly as loaded.
func handleConfirmEdit(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	at, u, ok := m.editor.Submit()
	m.input.Blur()
	m.input.Reset()
	if !ok {
		return m, nil, true
	}
	next, cmd := m.startUpdate(at, u)
	return next, cmd, true
}

func handleCancelEdit(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	m.editor.Cancel()
	m.input.Blur()
	m.input.Reset()
	return m, nil, true
}

func handleReload(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	m.failed = false
	return m, fetchCmd(m.ctx, m.svc, m.now), true
}

func handleExport(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	if !m.loaded {
		return m, nil, true
	}
	m.req.notice = "exporting..."
	return m, exportCmd(m.exportDir, m.board.Clone(), m.refreshed), true
}

func handleToggleHelp(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	m.showHelp = !m.showHelp
	return m, nil, true
}

func handleQuit(m BoardModel, _ string) (BoardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}
