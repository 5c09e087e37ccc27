package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/dialnav/internal/automation"
)

// Store keeps scenario traces on disk, one directory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Scenario   string    `json:"scenario"`
	Preset     string    `json:"preset"`
	Timestamp  time.Time `json:"timestamp"`
	Dt         float64   `json:"dt"`
	Frames     int       `json:"frames"`
	Selections int       `json:"selections"`
}

func (s *Store) Save(preset string, trace *automation.Trace) (string, error) {
	name := trace.Name
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   trace.Name,
		Preset:     preset,
		Timestamp:  time.Now(),
		Dt:         trace.Dt,
		Frames:     len(trace.Samples),
		Selections: len(trace.Selections()),
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	samples := [][]string{{"time", "menu", "angle", "index", "depth"}}
	for _, smp := range trace.Samples {
		samples = append(samples, []string{
			formatFloat(smp.Time),
			smp.Menu,
			formatFloat(smp.Angle),
			strconv.Itoa(smp.Index),
			strconv.Itoa(smp.Depth),
		})
	}
	if err := writeCSV(filepath.Join(runDir, "samples.csv"), samples); err != nil {
		return "", err
	}

	events := [][]string{{"time", "menu", "item", "event"}}
	for _, e := range trace.Events {
		events = append(events, []string{formatFloat(e.Time), e.Menu, e.Item, e.Event})
	}
	if err := writeCSV(filepath.Join(runDir, "events.csv"), events); err != nil {
		return "", err
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

// List returns saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}
	return records[1:], nil
}

// LoadTrace rebuilds the trace of a saved run. Malformed rows are skipped.
func (s *Store) LoadTrace(runID string) (*automation.Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	trace := &automation.Trace{Name: meta.Scenario, Dt: meta.Dt}

	samples, err := readCSV(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	for _, rec := range samples {
		if len(rec) != 5 {
			continue
		}
		t, err1 := strconv.ParseFloat(rec[0], 64)
		angle, err2 := strconv.ParseFloat(rec[2], 64)
		index, err3 := strconv.Atoi(rec[3])
		depth, err4 := strconv.Atoi(rec[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		trace.Samples = append(trace.Samples, automation.Sample{
			Time: t, Menu: rec[1], Angle: angle, Index: index, Depth: depth,
		})
	}

	events, err := readCSV(filepath.Join(s.baseDir, runID, "events.csv"))
	if err != nil {
		return nil, err
	}
	for _, rec := range events {
		if len(rec) != 4 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		trace.Events = append(trace.Events, automation.ItemEvent{
			Time: t, Menu: rec[1], Item: rec[2], Event: rec[3],
		})
	}

	return trace, nil
}

// ExportData is the JSON form of a trace.
type ExportData struct {
	Scenario string                 `json:"scenario"`
	Dt       float64                `json:"dt"`
	Frames   int                    `json:"frames"`
	Samples  []automation.Sample    `json:"samples"`
	Events   []automation.ItemEvent `json:"events"`
}

func ExportJSON(w io.Writer, trace *automation.Trace) error {
	data := ExportData{
		Scenario: trace.Name,
		Dt:       trace.Dt,
		Frames:   len(trace.Samples),
		Samples:  trace.Samples,
		Events:   trace.Events,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
