// Package export renders plan results to the console report and to XLSX,
// PDF, label, and DXF files.
package export

import (
	"fmt"
	"io"

	"gardenplan/internal/engine"
	"gardenplan/internal/model"
)

// WriteReport prints the full console report: one block per crop with the
// winning arrangement, the adjusted strip widths, the row-packing summary,
// and the per-row packing details.
func WriteReport(w io.Writer, res model.PlanResult) {
	fmt.Fprintln(w, "Best strip widths for each crop:")
	for _, cr := range res.Crops {
		WriteCropLine(w, cr)
	}

	fmt.Fprintln(w, "\nAdjusted strip widths for packing:")
	for _, strip := range res.Strips {
		fmt.Fprintf(w, "%.2f ", strip.Width)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\nTotal rows used: %d\n", res.RowsUsed())
	fmt.Fprintf(w, "Total wasted space: %.2f (%.2f%%)\n", res.TotalWaste(), res.WastePercent())

	fmt.Fprintln(w, "\nPacking details:")
	for _, row := range res.Rows {
		for _, strip := range row.Strips {
			fmt.Fprintf(w, "%.2f ", strip.Width)
		}
		fmt.Fprintln(w)
	}
}

// WriteCropLine prints the per-crop result block. It is also usable as a
// Solver progress callback for streaming output while solving.
func WriteCropLine(w io.Writer, cr model.CropResult) {
	fmt.Fprintf(w, "\n%s - Radius: %.2f, Plants: %d\n", cr.Crop.Name, cr.Crop.Radius, cr.Crop.Count)
	fmt.Fprintf(w, "%s packing: width=%.3f\n", cr.Strategy, cr.Width)
}

// WriteComparison prints a side-by-side summary of the packing heuristics.
func WriteComparison(w io.Writer, comparisons []engine.PackComparison) {
	fmt.Fprintln(w, "\nPacking heuristic comparison:")
	for _, c := range comparisons {
		fmt.Fprintf(w, "%s: rows=%d waste=%.2f (%.2f%%)\n",
			c.Algorithm, c.RowsUsed, c.Waste, c.WastePercent)
	}
	if best, ok := engine.BestComparison(comparisons); ok {
		fmt.Fprintf(w, "best: %s\n", best.Algorithm)
	}
}
