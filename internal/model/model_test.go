package model

import (
	"math"
	"testing"
)

func TestStrategyString(t *testing.T) {
	cases := map[Strategy]string{
		StrategyGrid:      "regular",
		StrategyFlatHex:   "flat-topped",
		StrategyPointyHex: "pointy-topped",
		StrategyTrellis:   "trellised",
	}
	for strategy, want := range cases {
		if got := strategy.String(); got != want {
			t.Errorf("Strategy(%d).String() = %q, want %q", strategy, got, want)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.BedHeight != 36.0 {
		t.Errorf("expected 36 in bed height, got %g", s.BedHeight)
	}
	if s.RowLength != 360.0 {
		t.Errorf("expected 360 in row length, got %g", s.RowLength)
	}
	if s.Algorithm != AlgorithmFirstFit {
		t.Errorf("expected first-fit default, got %q", s.Algorithm)
	}
}

func TestNewCrop(t *testing.T) {
	crop := NewCrop("cabbage", 6.0, 10)
	if len(crop.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", crop.ID)
	}
	if crop.Name != "cabbage" || crop.Radius != 6.0 || crop.Count != 10 {
		t.Errorf("unexpected crop fields: %+v", crop)
	}
	if crop.Trellised {
		t.Error("new crops should not be trellised by default")
	}
}

func TestRowUsedAndRemaining(t *testing.T) {
	row := Row{
		Capacity: 360,
		Strips: []Strip{
			{Label: "a", Width: 72},
			{Label: "b", Width: 30},
			{Label: "c", Width: 18},
		},
	}
	if got := row.Used(); math.Abs(got-120) > 1e-9 {
		t.Errorf("expected used 120, got %g", got)
	}
	if got := row.Remaining(); math.Abs(got-240) > 1e-9 {
		t.Errorf("expected remaining 240, got %g", got)
	}
}

func TestPlanResultWasteStats(t *testing.T) {
	res := PlanResult{
		Settings: DefaultSettings(),
		Rows: []Row{
			{Capacity: 360, Strips: []Strip{{Width: 360}}},
			{Capacity: 360, Strips: []Strip{{Width: 360}}},
			{Capacity: 360, Strips: []Strip{{Width: 72}, {Width: 30}, {Width: 18}}},
		},
	}
	if res.RowsUsed() != 3 {
		t.Errorf("expected 3 rows, got %d", res.RowsUsed())
	}
	if got := res.TotalWaste(); math.Abs(got-240) > 1e-9 {
		t.Errorf("expected waste 240, got %g", got)
	}
	wantPercent := 100.0 * 240.0 / 1080.0
	if got := res.WastePercent(); math.Abs(got-wantPercent) > 1e-9 {
		t.Errorf("expected waste %% %g, got %g", wantPercent, got)
	}
	if got := res.Utilization(); math.Abs(got-(100-wantPercent)) > 1e-9 {
		t.Errorf("expected utilization %g, got %g", 100-wantPercent, got)
	}
}

func TestPlanResultEmptyRows(t *testing.T) {
	res := PlanResult{}
	if res.WastePercent() != 0 {
		t.Errorf("expected 0 waste %% with no rows, got %g", res.WastePercent())
	}
}

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan()
	if len(plan.Crops) != 22 {
		t.Fatalf("expected 22 crops, got %d", len(plan.Crops))
	}
	if plan.Settings != DefaultSettings() {
		t.Errorf("expected default settings, got %+v", plan.Settings)
	}

	byName := map[string]Crop{}
	for _, c := range plan.Crops {
		if c.Radius <= 0 || c.Count < 1 {
			t.Errorf("crop %q has invalid radius/count: %+v", c.Name, c)
		}
		byName[c.Name] = c
	}

	// Spot checks against the planting list: radius is half the spacing
	if c := byName["asparagus"]; c.Radius != 4.5 || c.Count != 25 {
		t.Errorf("unexpected asparagus entry: %+v", c)
	}
	if c := byName["carrots"]; c.Radius != 1.5 || c.Count != 120 {
		t.Errorf("unexpected carrots entry: %+v", c)
	}

	trellised := []string{"cucumbers", "dried beans", "shelling peas", "snap peas", "tomatoes"}
	for _, name := range trellised {
		if !byName[name].Trellised {
			t.Errorf("expected %q to be trellised", name)
		}
	}
	if byName["cabbage"].Trellised {
		t.Error("cabbage should not be trellised")
	}
}
