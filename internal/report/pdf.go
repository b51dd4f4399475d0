package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	lineHeight    = 5.0
	headingGap    = 4.0
	tableGap      = 8.0
	headerRowFill = 230
)

// RenderPDF renders the block sequence into a single-document PDF.
func RenderPDF(blocks []Block) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; translate the marker glyphs in feedback text.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - left - right
	colWidth := contentWidth / 2

	for _, block := range blocks {
		switch block.Kind {
		case BlockHeading:
			writeHeading(pdf, tr, block)
		case BlockParagraph:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(contentWidth, lineHeight, tr(block.Text), "", "L", false)
			pdf.Ln(2)
		case BlockTable:
			writeTable(pdf, tr, block, left, colWidth)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, block Block) {
	size := 12.0
	switch block.Level {
	case 1:
		size = 24
	case 2:
		size = 14
	}
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size/2, tr(block.Text), "", "L", false)
	pdf.Ln(headingGap)
}

// writeTable draws a two-column table: a filled header row, then the two
// cells side by side with the row height equalized to the taller cell.
func writeTable(pdf *fpdf.Fpdf, tr func(string) string, block Block, left, colWidth float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(headerRowFill, headerRowFill, headerRowFill)
	pdf.CellFormat(colWidth, 8, tr(block.Header[0]), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidth, 8, tr(block.Header[1]), "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	top := pdf.GetY()

	pdf.SetXY(left, top)
	pdf.MultiCell(colWidth, lineHeight, tr(block.Cells[0]), "1", "L", false)
	leftBottom := pdf.GetY()

	pdf.SetXY(left+colWidth, top)
	pdf.MultiCell(colWidth, lineHeight, tr(block.Cells[1]), "1", "L", false)
	rightBottom := pdf.GetY()

	bottom := leftBottom
	if rightBottom > bottom {
		bottom = rightBottom
	}
	pdf.SetY(bottom)
	pdf.Ln(tableGap)
}
