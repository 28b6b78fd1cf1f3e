package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"gardenplan/internal/model"
)

// rowPitch is the vertical distance between row baselines in the DXF
// drawing, in drawing units (inches). Rows are drawn as 36 in deep beds
// with a walking gap between them.
const (
	dxfBedDepth = 36.0
	dxfRowGap   = 24.0
	rowPitch    = dxfBedDepth + dxfRowGap
)

// ExportDXF writes the packed layout as a DXF drawing for use in garden CAD
// tools. Each row outline goes on the ROWS layer and the dividers between
// strips go on the STRIPS layer. Row 1 is at the top.
func ExportDXF(path string, res model.PlanResult) error {
	if len(res.Rows) == 0 {
		return fmt.Errorf("no rows to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("ROWS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add ROWS layer: %w", err)
	}
	if _, err := d.AddLayer("STRIPS", dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add STRIPS layer: %w", err)
	}

	for i, row := range res.Rows {
		top := -float64(i) * rowPitch
		bottom := top - dxfBedDepth

		if err := d.ChangeLayer("ROWS"); err != nil {
			return err
		}
		if err := drawRect(d, 0, bottom, row.Capacity, top); err != nil {
			return err
		}

		if err := d.ChangeLayer("STRIPS"); err != nil {
			return err
		}
		// Vertical dividers at each interior strip boundary
		x := 0.0
		for j, strip := range row.Strips {
			x += strip.Width
			if j == len(row.Strips)-1 {
				break
			}
			if _, err := d.Line(x, bottom, 0, x, top, 0); err != nil {
				return err
			}
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four lines on the current
// layer.
func drawRect(d *drawing.Drawing, x1, y1, x2, y2 float64) error {
	lines := [][4]float64{
		{x1, y1, x2, y1},
		{x2, y1, x2, y2},
		{x2, y2, x1, y2},
		{x1, y2, x1, y1},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
