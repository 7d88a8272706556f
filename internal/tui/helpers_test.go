package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/destboard/internal/mocks"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/mock/gomock"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetLevel(log.PanicLevel)
	return l
}

func newTestModel(t *testing.T, svc *mocks.MockService, opts Options) BoardModel {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	opts.Logger = quietLogger()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	return NewBoardModel(context.Background(), svc, opts)
}

// loadedModel returns a model that has completed its initial fetch of b.
func loadedModel(t *testing.T, b models.Board) (BoardModel, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Fetch(gomock.Any()).Return(b.Clone(), nil)
	m := newTestModel(t, svc, Options{})
	m = drain(t, m, m.Init())
	if !m.loaded {
		t.Fatalf("expected board to be loaded")
	}
	return m, svc
}

func oneCellBoard() models.Board {
	return testutil.NewBoard().Column(testutil.NewCell("A").WithStatus("out")).Build()
}

// drain runs cmd and feeds every board message back into the model until
// nothing is left. Timers and spinner ticks are dropped.
func drain(t *testing.T, m BoardModel, cmd tea.Cmd) BoardModel {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case boardLoadedMsg, boardFailedMsg, cellUpdatedMsg, exportDoneMsg:
			next, more := m.Update(msg)
			m = next.(BoardModel)
			queue = append(queue, more)
		}
	}
	return m
}

func press(t *testing.T, m BoardModel, key tea.KeyMsg) (BoardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	updated, ok := next.(BoardModel)
	if !ok {
		t.Fatalf("expected BoardModel, got %T", next)
	}
	return updated, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
