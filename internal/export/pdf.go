package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"gardenplan/internal/model"
)

// stripColor represents an RGB color for a placed strip.
type stripColor struct {
	R, G, B int
}

// stripColors cycles through a fixed palette so adjacent strips stay
// distinguishable.
var stripColors = []stripColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	barHeight    = 10.0
	barGap       = 4.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF generates a PDF diagram of the packed garden rows: one
// horizontal bar per row with its strips drawn to scale, plus a summary
// line. Long plans continue on additional pages.
func ExportPDF(path string, res model.PlanResult) error {
	if len(res.Rows) == 0 {
		return fmt.Errorf("no rows to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / res.Settings.RowLength
	drawAreaHeight := float64(pageHeight - drawAreaTop - marginBottom)
	rowsPerPage := int(drawAreaHeight / (barHeight + barGap))
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}

	for i, row := range res.Rows {
		if i%rowsPerPage == 0 {
			pdf.AddPage()
			renderPageHeader(pdf, res, i+1)
		}
		y := drawAreaTop + float64(i%rowsPerPage)*(barHeight+barGap)
		renderRowBar(pdf, row, i+1, scale, y)
	}

	return pdf.OutputFileAndClose(path)
}

// renderPageHeader draws the title and summary stats at the top of a page.
func renderPageHeader(pdf *fpdf.Fpdf, res model.PlanResult, firstRow int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Garden layout - %d rows x %.0f in", res.RowsUsed(), res.Settings.RowLength)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Rows from %d | Waste: %.2f in (%.2f%%) | Utilization: %.2f%%",
		firstRow, res.TotalWaste(), res.WastePercent(), res.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")
}

// renderRowBar draws a single garden row as a scaled horizontal bar.
func renderRowBar(pdf *fpdf.Fpdf, row model.Row, rowNum int, scale, y float64) {
	// Row background: full capacity in a soil tone
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.3)
	pdf.Rect(marginLeft, y, row.Capacity*scale, barHeight, "FD")

	// Row number to the left of the bar
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft-13, y+barHeight/2-2)
	pdf.CellFormat(12, 4, fmt.Sprintf("Row %d", rowNum), "", 0, "R", false, 0, "")

	x := marginLeft
	for i, strip := range row.Strips {
		col := stripColors[i%len(stripColors)]
		w := strip.Width * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, w, barHeight, "FD")

		// Label strips that are wide enough to hold readable text
		label := fmt.Sprintf("%s (%.0f in)", strip.Label, strip.Width)
		pdf.SetFont("Helvetica", "", 6)
		if pdf.GetStringWidth(label)+2 <= w {
			pdf.SetXY(x+1, y+barHeight/2-1.5)
			pdf.CellFormat(w-2, 3, label, "", 0, "C", false, 0, "")
		}
		x += w
	}
}
