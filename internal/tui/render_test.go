package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestViewShowsHeaderAndCells(t *testing.T) {
	m, _ := loadedModel(t, testutil.SampleBoard())
	view := m.View()
	for _, want := range []string{
		config.Title,
		"Last updated: 2026-10-19 09:30:00",
		"present 3",
		"Column 1", "Column 2",
		"Aiko", "meeting room 2", "Emi", "remote",
		glyphEdit,
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewBeforeLoad(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := NewBoardModel(context.Background(), nil, Options{Logger: quietLogger()})
	view := m.View()
	if !strings.Contains(view, "Loading board...") || !strings.Contains(view, "Last updated: -") {
		t.Fatalf("unexpected view before load:\n%s", view)
	}
}

func TestViewHidesEditMarkersWhileEditing(t *testing.T) {
	m, _ := loadedModel(t, testutil.SampleBoard())
	m, _ = press(t, m, runes("e"))
	view := m.View()
	if strings.Contains(view, glyphEdit) {
		t.Fatalf("edit affordance should be hidden while editing:\n%s", view)
	}
	if !strings.Contains(view, "[enter]save") || !strings.Contains(view, "[esc]cancel") {
		t.Fatalf("expected editing help in footer:\n%s", view)
	}
}

func TestViewShowsBusyIndicator(t *testing.T) {
	m, _ := loadedModel(t, testutil.SampleBoard())
	m, _ = press(t, m, runes("p"))
	if !strings.Contains(m.View(), "Updating...") {
		t.Fatalf("expected busy indicator while a request is in flight")
	}
}

func TestRenderBoardStatic(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	out := RenderBoard(testutil.SampleBoard(), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), 0, "")
	if !strings.Contains(out, "Last updated: 2026-01-02 03:04:05") {
		t.Fatalf("missing timestamp:\n%s", out)
	}
	if strings.Contains(out, glyphEdit) || strings.Contains(out, glyphCursor) {
		t.Fatalf("static render must not show edit or cursor glyphs:\n%s", out)
	}
	if !strings.Contains(out, vacantName) {
		t.Fatalf("expected vacant seat marker:\n%s", out)
	}
}

func TestRenderBoardEmpty(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	if out := RenderBoard(models.Board{}, time.Time{}, 80, "dracula"); !strings.Contains(out, "The board is empty.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestStatusIsTruncatedToColumn(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	long := strings.Repeat("x", 200)
	b := testutil.NewBoard().Column(testutil.NewCell("A").WithStatus(long)).Build()
	out := RenderBoard(b, time.Time{}, 60, "")
	if strings.Contains(out, long) {
		t.Fatalf("status was not truncated")
	}
	if !strings.Contains(out, config.TruncationSuffix) {
		t.Fatalf("expected truncation suffix")
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 60 {
			t.Fatalf("line wider than terminal (%d): %q", w, line)
		}
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if ThemeByName("nope").Name != "Default" {
		t.Fatalf("unknown theme should fall back to default")
	}
	if ThemeByName("dracula").Name != "Dracula" {
		t.Fatalf("expected dracula theme")
	}
}
