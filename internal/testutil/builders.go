package testutil

import "github.com/akyairhashvil/destboard/internal/models"

// CellBuilder provides fluent API for creating test cells.
type CellBuilder struct {
	cell models.Cell
}

func NewCell(name string) *CellBuilder {
	return &CellBuilder{cell: models.Cell{Name: name}}
}

func (b *CellBuilder) WithStatus(s string) *CellBuilder {
	b.cell.Status = s
	return b
}

func (b *CellBuilder) Present() *CellBuilder {
	b.cell.Present = true
	return b
}

func (b *CellBuilder) Build() models.Cell {
	return b.cell
}

// BoardBuilder assembles a board column by column.
type BoardBuilder struct {
	board models.Board
}

func NewBoard() *BoardBuilder {
	return &BoardBuilder{board: models.Board{}}
}

func (b *BoardBuilder) Column(cells ...*CellBuilder) *BoardBuilder {
	col := make([]models.Cell, 0, len(cells))
	for _, c := range cells {
		col = append(col, c.Build())
	}
	b.board = append(b.board, col)
	return b
}

func (b *BoardBuilder) Build() models.Board {
	return b.board.Clone()
}

// SampleBoard is a 2x3 board with a mix of present, absent and vacant seats.
func SampleBoard() models.Board {
	return NewBoard().
		Column(
			NewCell("Aiko").WithStatus("meeting room 2").Present(),
			NewCell("Ben").WithStatus("out until 3pm"),
			NewCell("").WithStatus(""),
		).
		Column(
			NewCell("Chika").Present(),
			NewCell("Dai").WithStatus("lunch"),
			NewCell("Emi").WithStatus("remote").Present(),
		).
		Build()
}
