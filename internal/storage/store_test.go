package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/dialnav/internal/automation"
)

func sampleTrace() *automation.Trace {
	return &automation.Trace{
		Name: "demo",
		Dt:   1.0 / 60,
		Samples: []automation.Sample{
			{Time: 0.016667, Menu: "home", Angle: 0.1, Index: 0},
			{Time: 0.033333, Menu: "home", Angle: 1.5, Index: 1, Depth: 0},
			{Time: 0.05, Menu: "settings", Angle: 0, Index: 0, Depth: 1},
		},
		Events: []automation.ItemEvent{
			{Time: 0.4, Menu: "home", Item: "stats", Event: "select"},
			{Time: 0.5, Menu: "home", Item: "stats", Event: "activate"},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("snappy", sampleTrace())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scenario != "demo" || meta.Preset != "snappy" {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Frames != 3 || meta.Selections != 1 {
		t.Errorf("expected 3 frames and 1 selection, got %d and %d", meta.Frames, meta.Selections)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(trace.Samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(trace.Samples))
	}
	if trace.Samples[2].Menu != "settings" || trace.Samples[2].Depth != 1 {
		t.Errorf("unexpected sample %+v", trace.Samples[2])
	}
	if trace.Samples[1].Angle != 1.5 {
		t.Errorf("expected angle 1.5, got %f", trace.Samples[1].Angle)
	}
	if len(trace.Events) != 2 || trace.Events[1].Event != "activate" {
		t.Errorf("unexpected events %+v", trace.Events)
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save("default", sampleTrace()); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v %v", runs, err)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, sampleTrace()); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatal(err)
	}
	if data.Scenario != "demo" || data.Frames != 3 || len(data.Events) != 2 {
		t.Errorf("unexpected export %+v", data)
	}
}
