package engine

import (
	"fmt"

	"gardenplan/internal/model"
)

// Plan runs the full pipeline over the crop list: width solving per crop,
// splitting against the row length, and row packing with the configured
// heuristic. Crop results are reported in input order.
func (s *Solver) Plan(crops []model.Crop) (model.PlanResult, error) {
	if s.Settings.RowLength <= 0 {
		return model.PlanResult{}, fmt.Errorf("%w: row length must be > 0, got %g", ErrInvalidInput, s.Settings.RowLength)
	}

	results := make([]model.CropResult, 0, len(crops))
	for _, crop := range crops {
		cr, err := s.solveCrop(crop)
		if err != nil {
			return model.PlanResult{}, fmt.Errorf("crop %q: %w", crop.Name, err)
		}
		if s.Progress != nil {
			s.Progress(cr)
		}
		results = append(results, cr)
	}

	strips := SplitStrips(results, s.Settings.RowLength)

	var rows []model.Row
	if s.Settings.Algorithm == model.AlgorithmBestFit {
		rows = PackBestFit(strips, s.Settings.RowLength)
	} else {
		rows = PackFirstFit(strips, s.Settings.RowLength)
	}

	return model.PlanResult{
		Settings: s.Settings,
		Crops:    results,
		Strips:   strips,
		Rows:     rows,
	}, nil
}

// solveCrop picks the width for a single crop. Trellised crops skip the
// strategy search: the plants stand in one line along the trellis, so the
// run is simply count diameters long.
func (s *Solver) solveCrop(crop model.Crop) (model.CropResult, error) {
	if crop.Trellised {
		if err := validateInput(crop.Radius, s.Settings.BedHeight, crop.Count); err != nil {
			return model.CropResult{}, err
		}
		return model.CropResult{
			Crop: crop,
			PackingResult: model.PackingResult{
				Width:    2 * crop.Radius * float64(crop.Count),
				Strategy: model.StrategyTrellis,
			},
		}, nil
	}

	pr, err := s.MinWidth(crop.Radius, crop.Count)
	if err != nil {
		return model.CropResult{}, err
	}
	return model.CropResult{Crop: crop, PackingResult: pr}, nil
}
