package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gardenplan/internal/model"
)

// ExportXLSX writes the plan result to an Excel workbook with a Crops sheet
// (per-crop solver results) and a Rows sheet (strip-to-row assignments).
func ExportXLSX(path string, res model.PlanResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const cropsSheet = "Crops"
	if err := f.SetSheetName("Sheet1", cropsSheet); err != nil {
		return fmt.Errorf("failed to create crops sheet: %w", err)
	}

	cropHeaders := []string{"Crop", "Radius (in)", "Plants", "Strategy", "Width (in)"}
	for col, h := range cropHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(cropsSheet, cell, h); err != nil {
			return err
		}
	}
	for i, cr := range res.Crops {
		row := i + 2
		values := []interface{}{cr.Crop.Name, cr.Crop.Radius, cr.Crop.Count, cr.Strategy.String(), cr.Width}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(cropsSheet, cell, v); err != nil {
				return err
			}
		}
	}

	const rowsSheet = "Rows"
	if _, err := f.NewSheet(rowsSheet); err != nil {
		return fmt.Errorf("failed to create rows sheet: %w", err)
	}

	rowHeaders := []string{"Row", "Strip", "Crop", "Width (in)", "Row remaining (in)"}
	for col, h := range rowHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(rowsSheet, cell, h); err != nil {
			return err
		}
	}
	line := 2
	for rowIdx, row := range res.Rows {
		for _, strip := range row.Strips {
			values := []interface{}{rowIdx + 1, strip.Label, strip.CropName, strip.Width, row.Remaining()}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, line)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(rowsSheet, cell, v); err != nil {
					return err
				}
			}
			line++
		}
	}

	return f.SaveAs(path)
}
