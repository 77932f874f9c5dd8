package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "head_on")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "COLLISION") {
		t.Errorf("expected collision in output:\n%s", out)
	}

	out, err = execute(t, "check", "diagonal")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "NO COLLISION") {
		t.Errorf("expected no collision in output:\n%s", out)
	}
}

func TestCheck_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	if _, err := execute(t, "check", "heavy", "--svg", path); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected svg content")
	}
}

func TestCheck_UnknownPreset(t *testing.T) {
	if _, err := execute(t, "check", "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestCheck_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := config.Save(path, config.GetPreset("contained")); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "check", "--config", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "DEGENERATE") {
		t.Errorf("expected degenerate report:\n%s", out)
	}
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("missing preset %s", name)
		}
	}

	out, err = execute(t, "presets", "heavy")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "name: heavy") || !strings.Contains(out, "arena:") {
		t.Errorf("unexpected yaml:\n%s", out)
	}
}

func TestSweepListPlotExport(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--data", dir, "sweep", "head_on", "--samples", "41")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if !strings.Contains(out, "samples: 41") || !strings.Contains(out, "run id:") {
		t.Fatalf("unexpected sweep output:\n%s", out)
	}

	runs, err := storage.New(dir).List()
	if err != nil || len(runs) != 1 {
		t.Fatalf("expected one stored run, got %d (%v)", len(runs), err)
	}
	runID := runs[0].ID

	out, err = execute(t, "--data", dir, "list")
	if err != nil || !strings.Contains(out, runID) {
		t.Errorf("list missing run %s:\n%s (%v)", runID, out, err)
	}

	out, err = execute(t, "--data", dir, "plot", runID)
	if err != nil || !strings.Contains(out, "kinetic energy after impact") {
		t.Errorf("unexpected plot output:\n%s (%v)", out, err)
	}

	svg := filepath.Join(dir, "curve.svg")
	if _, err := execute(t, "--data", dir, "plot", runID, "--svg", svg); err != nil {
		t.Errorf("plot --svg failed: %v", err)
	}
	if _, err := os.Stat(svg); err != nil {
		t.Errorf("curve svg not written: %v", err)
	}

	out, err = execute(t, "--data", dir, "export-json", runID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var data storage.ExportData
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(data.Samples) != 41 {
		t.Errorf("expected 41 samples, got %d", len(data.Samples))
	}
}

func TestSweep_NoSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if _, err := execute(t, "--data", dir, "sweep", "miss", "--no-save"); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("expected no data directory with --no-save")
	}
}

func TestList_Empty(t *testing.T) {
	out, err := execute(t, "--data", t.TempDir(), "list")
	if err != nil || !strings.Contains(out, "no runs found") {
		t.Errorf("unexpected output %q (%v)", out, err)
	}
}
