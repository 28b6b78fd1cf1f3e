// Package engine computes minimum strip widths for circle-packed crops and
// bin-packs the resulting strips into fixed-length garden rows.
package engine

import (
	"errors"
	"fmt"
	"math"

	"gardenplan/internal/model"
)

var (
	// ErrInvalidInput marks a radius, height, or count that fails the
	// solver's preconditions.
	ErrInvalidInput = errors.New("invalid packing input")

	// ErrInfeasible marks a bed too small to ever reach the requested
	// plant count under a given arrangement.
	ErrInfeasible = errors.New("no feasible width")
)

// maxGrowthSteps bounds the hex width searches. The structural zero-row case
// is rejected before the loop; the cap is a backstop against pathological
// inputs that grow capacity too slowly.
const maxGrowthSteps = 1000000

// Solver computes minimum strip widths for crops within a bed.
type Solver struct {
	Settings model.PlanSettings

	// Progress, when set, is called once per solved crop in input order.
	Progress func(model.CropResult)
}

func New(settings model.PlanSettings) *Solver {
	return &Solver{Settings: settings}
}

// MinWidth returns the minimum strip width that fits count circles of the
// given radius within Settings.BedHeight, evaluated under the grid,
// flat-topped, and pointy-topped arrangements.
func (s *Solver) MinWidth(radius float64, count int) (model.PackingResult, error) {
	height := s.Settings.BedHeight
	if err := validateInput(radius, height, count); err != nil {
		return model.PackingResult{}, err
	}

	grid := gridWidth(radius, height, count)
	flat, err := flatHexWidth(radius, height, count)
	if err != nil {
		return model.PackingResult{}, err
	}
	pointy, err := pointyHexWidth(radius, height, count)
	if err != nil {
		return model.PackingResult{}, err
	}

	result := model.PackingResult{
		Width:          math.Min(grid, math.Min(flat, pointy)),
		Strategy:       model.StrategyGrid,
		GridWidth:      grid,
		FlatHexWidth:   flat,
		PointyHexWidth: pointy,
	}
	// A hex arrangement wins only when strictly narrower than both
	// alternatives; exact ties fall back to the grid.
	if flat < pointy && flat < grid {
		result.Strategy = model.StrategyFlatHex
	} else if pointy < flat && pointy < grid {
		result.Strategy = model.StrategyPointyHex
	}
	return result, nil
}

func validateInput(radius, height float64, count int) error {
	if radius <= 0 {
		return fmt.Errorf("%w: radius must be > 0, got %g", ErrInvalidInput, radius)
	}
	if height <= 0 {
		return fmt.Errorf("%w: bed height must be > 0, got %g", ErrInvalidInput, height)
	}
	if count < 1 {
		return fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidInput, count)
	}
	return nil
}

// gridWidth packs circles in plain rows and columns. The row count is
// clamped to 1 so an over-tall circle still occupies a single row.
func gridWidth(radius, height float64, count int) float64 {
	rows := int(height / (2 * radius))
	if rows < 1 {
		rows = 1
	}
	columns := (count + rows - 1) / rows
	return 2 * radius * float64(columns)
}

// flatHexWidth grows the strip one diameter at a time until the flat-topped
// arrangement holds count circles. Odd rows are offset by one radius and may
// lose a column when space is tight. Rows are stacked on full-diameter
// spacing, matching the grid row count.
func flatHexWidth(radius, height float64, count int) (float64, error) {
	rows := int(height / (2 * radius))
	if rows < 1 {
		return 0, fmt.Errorf("%w: bed height %g fits no flat-topped rows at radius %g", ErrInfeasible, height, radius)
	}

	width := 0.0
	for step := 0; step < maxGrowthSteps; step++ {
		width += 2 * radius
		total := 0
		for i := 0; i < rows; i++ {
			if i%2 == 0 {
				total += int(width / (2 * radius))
			} else {
				total += int((width - radius) / (2 * radius))
			}
		}
		if total >= count {
			return width, nil
		}
	}
	return 0, fmt.Errorf("%w: flat-topped search exceeded %d steps", ErrInfeasible, maxGrowthSteps)
}

// pointyHexWidth adds columns until the pointy-topped arrangement holds
// count circles. Odd columns are vertically offset and hold one circle
// fewer. Column pitch is radius*sqrt(3), with a full radius on each side.
func pointyHexWidth(radius, height float64, count int) (float64, error) {
	rows := int(height / (radius * math.Sqrt(3)))
	if rows < 1 {
		return 0, fmt.Errorf("%w: bed height %g fits no pointy-topped column at radius %g", ErrInfeasible, height, radius)
	}

	columns := 0
	total := 0
	for total < count {
		if columns >= maxGrowthSteps {
			return 0, fmt.Errorf("%w: pointy-topped search exceeded %d columns", ErrInfeasible, maxGrowthSteps)
		}
		if columns%2 == 0 {
			total += rows
		} else {
			total += rows - 1
		}
		columns++
	}
	if columns == 1 {
		return 2 * radius, nil
	}
	return 2*radius + float64(columns-2)*radius*math.Sqrt(3), nil
}
