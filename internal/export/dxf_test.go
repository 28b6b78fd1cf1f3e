package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gardenplan/internal/model"
)

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")

	if err := ExportDXF(path, buildTestResult()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	content := string(data)

	for _, want := range []string{"LINE", "ROWS", "STRIPS"} {
		if !strings.Contains(content, want) {
			t.Errorf("drawing missing %q", want)
		}
	}
}

func TestExportDXFEmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")

	if err := ExportDXF(path, model.PlanResult{}); err == nil {
		t.Error("expected error for plan with no rows")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written for an empty plan")
	}
}
