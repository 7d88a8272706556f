package models

import "errors"

var (
	ErrRaggedBoard = errors.New("board columns have different lengths")
)

// Cell represents one seat on the board.
type Cell struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // free-text destination
	Present bool   `json:"present"`
}

// Named reports whether the seat is assigned to someone.
func (c Cell) Named() bool {
	return c.Name != ""
}

// Coord addresses a cell by position. Position is the only key a cell has.
type Coord struct {
	Col int
	Row int
}

// Board is the full matrix of cells, indexed [column][row].
type Board [][]Cell

// Columns returns the number of columns.
func (b Board) Columns() int {
	return len(b)
}

// Rows returns the length of the longest column.
func (b Board) Rows() int {
	rows := 0
	for _, col := range b {
		if len(col) > rows {
			rows = len(col)
		}
	}
	return rows
}

// Cell looks up the cell at c, reporting false when c is out of range.
func (b Board) Cell(c Coord) (Cell, bool) {
	if c.Col < 0 || c.Col >= len(b) {
		return Cell{}, false
	}
	col := b[c.Col]
	if c.Row < 0 || c.Row >= len(col) {
		return Cell{}, false
	}
	return col[c.Row], true
}

// Rectangular reports whether every column has the same number of rows.
func (b Board) Rectangular() bool {
	for _, col := range b {
		if len(col) != len(b[0]) {
			return false
		}
	}
	return true
}

// Present counts named cells whose presence flag is set.
func (b Board) Present() int {
	n := 0
	for _, col := range b {
		for _, c := range col {
			if c.Named() && c.Present {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for i, col := range b {
		out[i] = append([]Cell(nil), col...)
	}
	return out
}

// Transpose swaps the outer and inner index so that out[c][r] == b[r][c].
// A board without cells, whether it has no outer slices or only empty ones,
// transposes to an empty board, so [[]] does not survive a round trip.
func Transpose(b Board) (Board, error) {
	if len(b) == 0 {
		return Board{}, nil
	}
	if !b.Rectangular() {
		return nil, ErrRaggedBoard
	}
	inner := len(b[0])
	out := make(Board, inner)
	for c := 0; c < inner; c++ {
		out[c] = make([]Cell, len(b))
		for r := range b {
			out[c][r] = b[r][c]
		}
	}
	return out, nil
}

// CellUpdate is a partial update. Nil fields are left unchanged by the server.
type CellUpdate struct {
	Name    *string `json:"name,omitempty"`
	Status  *string `json:"status,omitempty"`
	Present *bool   `json:"present,omitempty"`
}

// Apply returns c with the set fields of u written over it.
func (u CellUpdate) Apply(c Cell) Cell {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Present != nil {
		c.Present = *u.Present
	}
	return c
}
