package board

import (
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/util"
)

// TogglePresence builds the update that flips the presence flag of the cell
// at the given position. Nothing else is set.
func TogglePresence(b models.Board, at models.Coord) (models.CellUpdate, error) {
	cell, ok := b.Cell(at)
	if !ok {
		return models.CellUpdate{}, ErrNoSuchCell
	}
	return models.CellUpdate{Present: util.Ptr(!cell.Present)}, nil
}

// StatusUpdate builds the update that replaces a cell's status text.
func StatusUpdate(text string) models.CellUpdate {
	return models.CellUpdate{Status: util.Ptr(text)}
}

// EditState is an open status edit: the target cell and the staged text.
type EditState struct {
	At       models.Coord
	Original string
	Staged   string
}

// Editor is the inline status editor. It is either viewing (no edit) or
// editing exactly one cell.
type Editor struct {
	current *EditState
}

// Begin opens an edit on the cell at the given position, staging its current
// status. An edit already open is replaced and its staged text dropped.
func (e *Editor) Begin(b models.Board, at models.Coord) (EditState, error) {
	cell, ok := b.Cell(at)
	if !ok {
		return EditState{}, ErrNoSuchCell
	}
	e.current = &EditState{At: at, Original: cell.Status, Staged: cell.Status}
	return *e.current, nil
}

// Editing reports whether an edit is open.
func (e *Editor) Editing() bool {
	return e.current != nil
}

// EditingCell reports whether the open edit targets the given cell.
func (e *Editor) EditingCell(at models.Coord) bool {
	return e.current != nil && e.current.At == at
}

// Current returns the open edit, if any.
func (e *Editor) Current() (EditState, bool) {
	if e.current == nil {
		return EditState{}, false
	}
	return *e.current, true
}

// SetText replaces the staged text. It is ignored while viewing.
func (e *Editor) SetText(text string) bool {
	if e.current == nil {
		return false
	}
	next := *e.current
	next.Staged = text
	e.current = &next
	return true
}

// Submit closes the edit and returns the update to send for it. The editor is
// back to viewing before the caller sends anything.
func (e *Editor) Submit() (models.Coord, models.CellUpdate, bool) {
	if e.current == nil {
		return models.Coord{}, models.CellUpdate{}, false
	}
	at, text := e.current.At, e.current.Staged
	e.current = nil
	return at, StatusUpdate(text), true
}

// Cancel drops the open edit without producing an update.
func (e *Editor) Cancel() bool {
	if e.current == nil {
		return false
	}
	e.current = nil
	return true
}
