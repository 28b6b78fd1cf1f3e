package model

import "github.com/google/uuid"

// Strategy identifies the packing arrangement that produced a strip width.
type Strategy int

const (
	StrategyGrid      Strategy = iota // plain rows and columns
	StrategyFlatHex                   // flat-topped hex, odd rows offset by one radius
	StrategyPointyHex                 // pointy-topped hex, odd columns one plant short
	StrategyTrellis                   // trellised crop, plants in a single line
)

func (s Strategy) String() string {
	switch s {
	case StrategyFlatHex:
		return "flat-topped"
	case StrategyPointyHex:
		return "pointy-topped"
	case StrategyTrellis:
		return "trellised"
	default:
		return "regular"
	}
}

// Crop represents one plant type needing Count circular planting spots of
// Radius. Radius is half the recommended spacing, in inches.
type Crop struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Radius    float64 `json:"radius"`
	Count     int     `json:"count"`
	Trellised bool    `json:"trellised,omitempty"` // grows up a trellis, occupies a straight run
}

func NewCrop(name string, radius float64, count int) Crop {
	return Crop{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Radius: radius,
		Count:  count,
	}
}

// Algorithm selects the row-packing heuristic.
type Algorithm string

const (
	AlgorithmFirstFit Algorithm = "firstfit" // first-fit decreasing (default)
	AlgorithmBestFit  Algorithm = "bestfit"  // best-fit decreasing
)

// PlanSettings holds the bed geometry and packing configuration.
type PlanSettings struct {
	BedHeight float64   `json:"bed_height"` // usable depth of a bed in inches
	RowLength float64   `json:"row_length"` // length of one garden row in inches
	Algorithm Algorithm `json:"algorithm"`
}

func DefaultSettings() PlanSettings {
	return PlanSettings{
		BedHeight: 36.0,
		RowLength: 360.0,
		Algorithm: AlgorithmFirstFit,
	}
}

// PackingResult holds the minimum-width answer for a single crop, along with
// the width each arrangement would have needed.
type PackingResult struct {
	Width    float64  `json:"width"` // winning width in inches
	Strategy Strategy `json:"strategy"`

	GridWidth      float64 `json:"grid_width"`
	FlatHexWidth   float64 `json:"flat_hex_width"`
	PointyHexWidth float64 `json:"pointy_hex_width"`
}

// CropResult pairs a crop with its solved packing.
type CropResult struct {
	Crop Crop `json:"crop"`
	PackingResult
}

// Strip is a single width value to be placed into a garden row. Crops wider
// than one row are split into several strips, labelled "name#1", "name#2", ...
type Strip struct {
	Label    string  `json:"label"`
	CropName string  `json:"crop"`
	Width    float64 `json:"width"`
}

// Row is a fixed-capacity garden row that strips are packed into.
// Strips are kept in placement order.
type Row struct {
	Capacity float64 `json:"capacity"`
	Strips   []Strip `json:"strips"`
}

// Used returns the total width occupied by placed strips.
func (r Row) Used() float64 {
	var total float64
	for _, s := range r.Strips {
		total += s.Width
	}
	return total
}

// Remaining returns the unoccupied width. Never negative for rows produced
// by the packers.
func (r Row) Remaining() float64 {
	return r.Capacity - r.Used()
}

// PlanResult holds the full solution for one plan.
type PlanResult struct {
	Settings PlanSettings `json:"settings"`
	Crops    []CropResult `json:"crops"`
	Strips   []Strip      `json:"strips"` // post-split, in crop order
	Rows     []Row        `json:"rows"`
}

func (pr PlanResult) RowsUsed() int {
	return len(pr.Rows)
}

// TotalWaste returns the summed unoccupied width across all rows.
func (pr PlanResult) TotalWaste() float64 {
	var waste float64
	for _, r := range pr.Rows {
		waste += r.Remaining()
	}
	return waste
}

// WastePercent returns waste as a percentage of the total capacity of the
// rows in use.
func (pr PlanResult) WastePercent() float64 {
	var capacity float64
	for _, r := range pr.Rows {
		capacity += r.Capacity
	}
	if capacity == 0 {
		return 0
	}
	return 100.0 * pr.TotalWaste() / capacity
}

// Utilization returns the occupied percentage of the rows in use.
func (pr PlanResult) Utilization() float64 {
	return 100.0 - pr.WastePercent()
}
