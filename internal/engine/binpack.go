package engine

import (
	"fmt"
	"sort"

	"gardenplan/internal/model"
)

// SplitStrips converts solved crop widths into strips no wider than rowLen.
// A width larger than rowLen becomes full-length strips plus one remainder
// strip when the remainder is strictly positive. Input order is preserved
// and split pieces are labelled "name#1", "name#2", ...
func SplitStrips(crops []model.CropResult, rowLen float64) []model.Strip {
	strips := make([]model.Strip, 0, len(crops))
	for _, cr := range crops {
		name := cr.Crop.Name
		if cr.Width <= rowLen {
			strips = append(strips, model.Strip{Label: name, CropName: name, Width: cr.Width})
			continue
		}
		full := int(cr.Width / rowLen)
		remainder := cr.Width - float64(full)*rowLen
		for i := 0; i < full; i++ {
			strips = append(strips, model.Strip{
				Label:    fmt.Sprintf("%s#%d", name, i+1),
				CropName: name,
				Width:    rowLen,
			})
		}
		if remainder > 0 {
			strips = append(strips, model.Strip{
				Label:    fmt.Sprintf("%s#%d", name, full+1),
				CropName: name,
				Width:    remainder,
			})
		}
	}
	return strips
}

// PackFirstFit packs strips into rows of capacity rowLen using first-fit
// decreasing: strips are sorted by width descending (equal widths keep their
// input order) and each goes into the earliest row with enough space,
// opening a new row when none fits.
func PackFirstFit(strips []model.Strip, rowLen float64) []model.Row {
	var rows []model.Row
	for _, strip := range sortedByWidthDesc(strips) {
		placed := false
		for i := range rows {
			if rows[i].Remaining() >= strip.Width {
				rows[i].Strips = append(rows[i].Strips, strip)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, model.Row{Capacity: rowLen, Strips: []model.Strip{strip}})
		}
	}
	return rows
}

// PackBestFit packs strips into rows of capacity rowLen using best-fit
// decreasing: each strip goes into the fitting row that would be left with
// the least space, opening a new row when none fits. Ties go to the earliest
// row.
func PackBestFit(strips []model.Strip, rowLen float64) []model.Row {
	var rows []model.Row
	for _, strip := range sortedByWidthDesc(strips) {
		best := -1
		bestLeft := 0.0
		for i := range rows {
			left := rows[i].Remaining() - strip.Width
			if left < 0 {
				continue
			}
			if best < 0 || left < bestLeft {
				best = i
				bestLeft = left
			}
		}
		if best >= 0 {
			rows[best].Strips = append(rows[best].Strips, strip)
		} else {
			rows = append(rows, model.Row{Capacity: rowLen, Strips: []model.Strip{strip}})
		}
	}
	return rows
}

// sortedByWidthDesc returns a copy sorted by width descending. The sort is
// stable so equal widths keep their original relative order, which keeps
// packing reproducible.
func sortedByWidthDesc(strips []model.Strip) []model.Strip {
	ordered := make([]model.Strip, len(strips))
	copy(ordered, strips)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Width > ordered[j].Width
	})
	return ordered
}
