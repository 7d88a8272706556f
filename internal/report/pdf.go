// Package report renders board snapshots for printing.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	colPresenceW = 18.0
	colNameW     = 60.0
	colStatusW   = 0.0 // rest of the line
	rowH         = 8.0
)

// WriteBoardPDF writes the board as one table per column.
func WriteBoardPDF(w io.Writer, b models.Board, title string, refreshed time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	stamp := "-"
	if !refreshed.IsZero() {
		stamp = refreshed.Format("2006-01-02 15:04:05")
	}
	pdf.Cell(0, 6, fmt.Sprintf("Last updated: %s    Present: %d", stamp, b.Present()))
	pdf.Ln(10)

	if b.Columns() == 0 {
		pdf.Cell(0, rowH, "The board is empty.")
	}

	for i, col := range b {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, rowH, fmt.Sprintf("Column %d", i+1))
		pdf.Ln(rowH)

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(colPresenceW, rowH, "", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colNameW, rowH, "Name", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colStatusW, rowH, "Destination", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, cell := range col {
			presence := "out"
			if cell.Named() && cell.Present {
				presence = "in"
			}
			pdf.CellFormat(colPresenceW, rowH, presence, "1", 0, "C", false, 0, "")
			pdf.CellFormat(colNameW, rowH, tr(cell.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(colStatusW, rowH, tr(cell.Status), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// SaveBoardPDF writes the board to path, creating its directory.
func SaveBoardPDF(path string, b models.Board, title string, refreshed time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBoardPDF(f, b, title, refreshed); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
