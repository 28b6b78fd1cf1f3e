// Package project persists garden plans as JSON files.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gardenplan/internal/model"
)

// DefaultConfigDir returns the default directory for saved plans.
// On all platforms this is ~/.gardenplan/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gardenplan")
}

// DefaultPlanPath returns the default path for the saved plan file.
func DefaultPlanPath() string {
	return filepath.Join(DefaultConfigDir(), "plan.json")
}

// SavePlan persists a plan to the given path as JSON.
// It creates any missing parent directories automatically.
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan reads a plan from the given path.
// If the file does not exist, it returns DefaultPlan with no error.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultPlan(), nil
		}
		return model.Plan{}, err
	}
	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, err
	}
	// Saved plans may predate some settings; fill in zero values
	if plan.Settings.BedHeight == 0 {
		plan.Settings.BedHeight = model.DefaultSettings().BedHeight
	}
	if plan.Settings.RowLength == 0 {
		plan.Settings.RowLength = model.DefaultSettings().RowLength
	}
	if plan.Settings.Algorithm == "" {
		plan.Settings.Algorithm = model.AlgorithmFirstFit
	}
	return plan, nil
}
