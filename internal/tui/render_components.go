package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/destboard/internal/board"
	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	glyphDot    = "●"
	glyphEdit   = "✎"
	glyphCursor = "›"
	vacantName  = "—"
)

// boardLayout carries what the column renderer needs from the caller.
type boardLayout struct {
	theme     Theme
	width     int
	cursor    *models.Coord
	edit      *board.EditState
	inputView string
	editable  bool
}

func (l boardLayout) columnWidth(cols int) int {
	if l.width <= 0 || cols == 0 {
		return config.MinColumnWidth + 16
	}
	// margin of the base style plus border and padding of each column
	per := (l.width-4)/cols - 4
	if per < config.MinColumnWidth {
		return config.MinColumnWidth
	}
	return per
}

func padRight(s string, w int) string {
	gap := w - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, config.TruncationSuffix)
}

func renderPresence(t Theme, c models.Cell) string {
	if c.Named() && c.Present {
		return t.Present.Render(glyphDot)
	}
	return t.Absent.Render(glyphDot)
}

func renderColumn(l boardLayout, idx int, col []models.Cell, width int) string {
	statusWidth := width - config.NameWidth - 6
	if statusWidth < config.MinStatusWidth {
		statusWidth = config.MinStatusWidth
	}
	t := l.theme
	lines := []string{
		t.Header.Render(fmt.Sprintf("Column %d", idx+1)),
		t.Dim.Render("    " + padRight("Name", config.NameWidth) + " Destination"),
	}
	for r, cell := range col {
		at := models.Coord{Col: idx, Row: r}
		focused := l.cursor != nil && *l.cursor == at
		editing := l.edit != nil && l.edit.At == at

		prefix := " "
		if focused {
			prefix = t.Focused.Render(glyphCursor)
		}
		name := t.Cell.Render(padRight(truncate(cell.Name, config.NameWidth), config.NameWidth))
		if !cell.Named() {
			name = t.Vacant.Render(padRight(vacantName, config.NameWidth))
		} else if focused {
			name = t.Focused.Render(padRight(truncate(cell.Name, config.NameWidth), config.NameWidth))
		}

		var status, marker string
		if editing {
			status = t.Input.Render(l.inputView)
		} else {
			status = t.Cell.Render(padRight(truncate(cell.Status, statusWidth), statusWidth))
			if l.editable && l.edit == nil {
				marker = " " + t.Dim.Render(glyphEdit)
			}
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %s%s", prefix, renderPresence(t, cell), name, status, marker))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func renderColumns(l boardLayout, b models.Board) string {
	if b.Columns() == 0 {
		return l.theme.Dim.Render("The board is empty.")
	}
	width := l.columnWidth(b.Columns())
	cols := make([]string, 0, b.Columns())
	for i, col := range b {
		cols = append(cols, renderColumn(l, i, col, width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderHeader(t Theme, b models.Board, refreshed time.Time, loaded bool) string {
	title := t.Title.Render(config.Title)
	updated := "Last updated: -"
	if !refreshed.IsZero() {
		updated = "Last updated: " + refreshed.Format(config.TimestampLayout)
	}
	line := t.Dim.Render(updated)
	if loaded {
		line += t.Dim.Render(fmt.Sprintf("  |  present %d", b.Present()))
	}
	return title + "\n" + line
}

// RenderBoard renders a board without cursor or edit affordances, for
// one-shot output.
func RenderBoard(b models.Board, refreshed time.Time, width int, themeName string) string {
	t := ThemeByName(themeName)
	l := boardLayout{theme: t, width: width}
	return renderHeader(t, b, refreshed, true) + "\n\n" + renderColumns(l, b) + "\n"
}

func (m BoardModel) renderFooter() string {
	var parts []string
	if m.req.InFlight() {
		parts = append(parts, m.spinner.View()+" "+m.theme.Busy.Render("Updating..."))
	}
	if m.req.notice != "" {
		parts = append(parts, m.theme.Dim.Render(m.req.notice))
	}
	mode := m.mode()
	if mode == modeEditing || m.showHelp {
		parts = append(parts, m.theme.Dim.Render(m.keys.HelpFor(mode)))
	} else {
		parts = append(parts, m.theme.Dim.Render("[?]help | [q]quit  v"+VersionLabel()))
	}
	return strings.Join(parts, "\n")
}

func (m BoardModel) renderAlert() string {
	box := m.theme.Alert.Render(m.req.alert + "\n\n" + m.theme.Dim.Render(m.keys.HelpFor(modeAlert)))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m BoardModel) View() string {
	if m.req.alert != "" {
		return m.renderAlert()
	}
	sections := []string{renderHeader(m.theme, m.board, m.refreshed, m.loaded), ""}
	switch {
	case !m.loaded && m.failed:
		sections = append(sections, m.theme.Dim.Render("Could not load the board. Press r to retry."))
	case !m.loaded:
		sections = append(sections, m.theme.Dim.Render("Loading board..."))
	default:
		l := boardLayout{
			theme:    m.theme,
			width:    m.width,
			cursor:   &m.view.cursor,
			editable: true,
		}
		if st, ok := m.editor.Current(); ok {
			l.edit = &st
			l.inputView = m.input.View()
		}
		sections = append(sections, renderColumns(l, m.board))
	}
	sections = append(sections, "", m.renderFooter())
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
