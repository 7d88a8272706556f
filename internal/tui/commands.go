package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/destboard/internal/board"
	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type boardLoadedMsg struct {
	board models.Board
	at    time.Time
}

type boardFailedMsg struct {
	err error
}

type cellUpdatedMsg struct {
	at  models.Coord
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type refreshTickMsg time.Time

func fetchCmd(ctx context.Context, svc board.Service, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		b, err := svc.Fetch(ctx)
		if err != nil {
			return boardFailedMsg{err: err}
		}
		return boardLoadedMsg{board: b, at: now()}
	}
}

func updateCmd(ctx context.Context, svc board.Service, at models.Coord, u models.CellUpdate) tea.Cmd {
	return func() tea.Msg {
		return cellUpdatedMsg{at: at, err: svc.Update(ctx, at, u)}
	}
}

func refreshTickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return refreshTickMsg(t) })
}

func exportCmd(dir string, b models.Board, refreshed time.Time) tea.Cmd {
	return func() tea.Msg {
		name := fmt.Sprintf("%s-%s.pdf", config.AppName, refreshed.Format("20060102-150405"))
		path := filepath.Join(dir, name)
		return exportDoneMsg{path: path, err: report.SaveBoardPDF(path, b, config.Title, refreshed)}
	}
}
