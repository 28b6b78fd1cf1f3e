package project

import (
	"os"
	"path/filepath"
	"testing"

	"gardenplan/internal/model"
)

func TestSaveAndLoadPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "plan.json")

	plan := model.Plan{
		Name: "Test garden",
		Crops: []model.Crop{
			{ID: "c1", Name: "cabbage", Radius: 6.0, Count: 10},
			{ID: "c2", Name: "tomatoes", Radius: 6.0, Count: 12, Trellised: true},
		},
		Settings: model.PlanSettings{BedHeight: 48, RowLength: 240, Algorithm: model.AlgorithmBestFit},
	}

	if err := SavePlan(path, plan); err != nil {
		t.Fatalf("SavePlan returned error: %v", err)
	}

	loaded, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan returned error: %v", err)
	}
	if loaded.Name != plan.Name {
		t.Errorf("expected name %q, got %q", plan.Name, loaded.Name)
	}
	if len(loaded.Crops) != 2 {
		t.Fatalf("expected 2 crops, got %d", len(loaded.Crops))
	}
	if !loaded.Crops[1].Trellised {
		t.Error("trellised flag lost in round trip")
	}
	if loaded.Settings != plan.Settings {
		t.Errorf("settings changed in round trip: %+v", loaded.Settings)
	}
}

func TestLoadPlanMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(plan.Crops) != 22 {
		t.Errorf("expected the built-in plan, got %d crops", len(plan.Crops))
	}
}

func TestLoadPlanInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPlan(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadPlanFillsMissingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	data := []byte(`{"name":"Old plan","crops":[{"id":"c1","name":"kale","radius":6,"count":40}]}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan returned error: %v", err)
	}
	if plan.Settings != model.DefaultSettings() {
		t.Errorf("expected defaults filled in, got %+v", plan.Settings)
	}
}

func TestDefaultPlanPath(t *testing.T) {
	path := DefaultPlanPath()
	if filepath.Base(path) != "plan.json" {
		t.Errorf("unexpected plan file name in %q", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".gardenplan" {
		t.Errorf("unexpected config dir in %q", path)
	}
}
