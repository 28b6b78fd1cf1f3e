package engine

import "gardenplan/internal/model"

// PackComparison holds the rows produced by one packing heuristic plus its
// computed statistics.
type PackComparison struct {
	Algorithm    model.Algorithm
	Rows         []model.Row
	RowsUsed     int
	Waste        float64
	WastePercent float64
}

// CompareAlgorithms packs the same strips with every heuristic and returns
// the results in a fixed order, enabling side-by-side comparison of row
// counts and waste.
func CompareAlgorithms(strips []model.Strip, rowLen float64) []PackComparison {
	packers := []struct {
		algorithm model.Algorithm
		pack      func([]model.Strip, float64) []model.Row
	}{
		{model.AlgorithmFirstFit, PackFirstFit},
		{model.AlgorithmBestFit, PackBestFit},
	}

	results := make([]PackComparison, 0, len(packers))
	for _, p := range packers {
		rows := p.pack(strips, rowLen)

		var waste, capacity float64
		for _, r := range rows {
			waste += r.Remaining()
			capacity += r.Capacity
		}
		wastePercent := 0.0
		if capacity > 0 {
			wastePercent = 100.0 * waste / capacity
		}

		results = append(results, PackComparison{
			Algorithm:    p.algorithm,
			Rows:         rows,
			RowsUsed:     len(rows),
			Waste:        waste,
			WastePercent: wastePercent,
		})
	}
	return results
}

// BestComparison returns the comparison with the fewest rows, breaking ties
// by lower waste and then by listed order.
func BestComparison(comparisons []PackComparison) (PackComparison, bool) {
	if len(comparisons) == 0 {
		return PackComparison{}, false
	}
	best := comparisons[0]
	for _, c := range comparisons[1:] {
		if c.RowsUsed < best.RowsUsed || (c.RowsUsed == best.RowsUsed && c.Waste < best.Waste) {
			best = c
		}
	}
	return best, true
}
