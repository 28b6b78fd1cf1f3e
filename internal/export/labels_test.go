package export

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gardenplan/internal/model"
)

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())
	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.StripLabel != "sweetcorn#1" || first.RowIndex != 1 || first.Offset != 0 {
		t.Errorf("unexpected first label: %+v", first)
	}

	// Offsets within row 2 accumulate strip widths
	if labels[1].StripLabel != "tomatoes" || labels[1].RowIndex != 2 || labels[1].Offset != 0 {
		t.Errorf("unexpected second label: %+v", labels[1])
	}
	if labels[2].StripLabel != "cabbage" || math.Abs(labels[2].Offset-144) > 1e-9 {
		t.Errorf("unexpected third label: %+v", labels[2])
	}
	if labels[3].StripLabel != "sweetcorn#2" || math.Abs(labels[3].Offset-192) > 1e-9 {
		t.Errorf("unexpected fourth label: %+v", labels[3])
	}
}

func TestCollectLabelInfosEmpty(t *testing.T) {
	if labels := CollectLabelInfos(model.PlanResult{}); len(labels) != 0 {
		t.Errorf("expected no labels for empty result, got %d", len(labels))
	}
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("output file suspiciously small: %d bytes", info.Size())
	}
}

func TestExportLabelsEmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, model.PlanResult{}); err == nil {
		t.Error("expected error when there are no placed strips")
	}
}
