package tui

import (
	"context"

	"github.com/akyairhashvil/destboard/internal/board"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive board and blocks until the user quits.
func Run(ctx context.Context, svc board.Service, opts Options) error {
	m := NewBoardModel(ctx, svc, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
