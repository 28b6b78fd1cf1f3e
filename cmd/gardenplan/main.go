// gardenplan — garden row planner
//
// Computes the narrowest bed strip for each crop's planting circles under
// grid, flat-topped hex, and pointy-topped hex arrangements, then packs the
// strips into fixed-length garden rows and reports usage and waste.
//
// Build:
//   go build -o gardenplan ./cmd/gardenplan
//
// Run with the built-in plan:
//   ./gardenplan
//
// Run a saved plan and export the layout:
//   ./gardenplan -plan myplan.json -pdf layout.pdf -xlsx layout.xlsx

package main

import (
	"flag"
	"fmt"
	"os"

	"gardenplan/internal/engine"
	"gardenplan/internal/export"
	"gardenplan/internal/model"
	"gardenplan/internal/project"
)

func main() {
	planPath := flag.String("plan", "", "plan JSON file (default: built-in plan)")
	algorithm := flag.String("algorithm", "", "row packing heuristic: firstfit or bestfit")
	height := flag.Float64("height", 0, "bed height in inches (overrides plan)")
	rowLen := flag.Float64("rowlen", 0, "row length in inches (overrides plan)")
	compare := flag.Bool("compare", false, "also report both packing heuristics side by side")
	xlsxPath := flag.String("xlsx", "", "write results to this XLSX file")
	pdfPath := flag.String("pdf", "", "write a layout diagram to this PDF file")
	labelsPath := flag.String("labels", "", "write QR strip labels to this PDF file")
	dxfPath := flag.String("dxf", "", "write the layout to this DXF file")
	flag.Parse()

	plan := model.DefaultPlan()
	if *planPath != "" {
		var err error
		plan, err = project.LoadPlan(*planPath)
		if err != nil {
			fatal(err)
		}
	}
	if *height > 0 {
		plan.Settings.BedHeight = *height
	}
	if *rowLen > 0 {
		plan.Settings.RowLength = *rowLen
	}
	switch model.Algorithm(*algorithm) {
	case model.AlgorithmFirstFit, model.AlgorithmBestFit:
		plan.Settings.Algorithm = model.Algorithm(*algorithm)
	case "":
	default:
		fatal(fmt.Errorf("unknown algorithm %q", *algorithm))
	}

	solver := engine.New(plan.Settings)
	result, err := solver.Plan(plan.Crops)
	if err != nil {
		fatal(err)
	}

	export.WriteReport(os.Stdout, result)

	if *compare {
		export.WriteComparison(os.Stdout, engine.CompareAlgorithms(result.Strips, result.Settings.RowLength))
	}

	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, result); err != nil {
			fatal(err)
		}
	}
	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, result); err != nil {
			fatal(err)
		}
	}
	if *labelsPath != "" {
		if err := export.ExportLabels(*labelsPath, result); err != nil {
			fatal(err)
		}
	}
	if *dxfPath != "" {
		if err := export.ExportDXF(*dxfPath, result); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gardenplan:", err)
	os.Exit(1)
}
