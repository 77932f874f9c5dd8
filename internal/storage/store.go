package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/sweep"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Start      float64            `json:"start"`
	End        float64            `json:"end"`
	Samples    int                `json:"samples"`
	Direction  float64            `json:"direction"`
	Collisions int                `json:"collisions"`
	Degenerate int                `json:"degenerate"`
	Metrics    map[string]float64 `json:"metrics"`
}

// SampleRow is one line of samples.csv.
type SampleRow struct {
	Separation float64
	Collided   bool
	Degenerate bool
	V1x, V1y   float64
	V2x, V2y   float64
	Energy     float64
}

var header = []string{"separation", "collided", "degenerate", "v1x", "v1y", "v2x", "v2y", "energy"}

func (s *Store) Save(scenario *config.Scenario, result *sweep.Result) (_ string, err error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%d", scenario.Name, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario.Name,
		Timestamp:  ts,
		Start:      scenario.Sweep.Start,
		End:        scenario.Sweep.End,
		Samples:    len(result.Samples),
		Direction:  scenario.Sweep.Direction,
		Collisions: result.Collisions,
		Degenerate: result.Degenerate,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, row := range Rows(result) {
		record := []string{
			formatFloat(row.Separation),
			strconv.FormatBool(row.Collided),
			strconv.FormatBool(row.Degenerate),
			formatFloat(row.V1x),
			formatFloat(row.V1y),
			formatFloat(row.V2x),
			formatFloat(row.V2y),
			formatFloat(row.Energy),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// Rows flattens sweep samples into storable rows.
func Rows(result *sweep.Result) []SampleRow {
	rows := make([]SampleRow, len(result.Samples))
	for i, smp := range result.Samples {
		res := smp.Resolution
		v1x, v1y := res.After[0].Linear()
		v2x, v2y := res.After[1].Linear()
		rows[i] = SampleRow{
			Separation: smp.Separation,
			Collided:   res.Collided,
			Degenerate: smp.Degenerate(),
			V1x:        v1x,
			V1y:        v1y,
			V2x:        v2x,
			V2y:        v2y,
			Energy:     res.EnergyAfter(),
		}
	}
	return rows
}

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

func (s *Store) LoadSamples(runID string) ([]SampleRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
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

	if len(records) < 2 {
		return []SampleRow{}, nil
	}

	rows := make([]SampleRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(header) {
			continue
		}
		row, err := parseRow(record)
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(record []string) (SampleRow, error) {
	var row SampleRow
	var err error

	floats := []*float64{&row.Separation, nil, nil, &row.V1x, &row.V1y, &row.V2x, &row.V2y, &row.Energy}
	for i, dst := range floats {
		if dst == nil {
			continue
		}
		if *dst, err = strconv.ParseFloat(record[i], 64); err != nil {
			return row, err
		}
	}
	if row.Collided, err = strconv.ParseBool(record[1]); err != nil {
		return row, err
	}
	if row.Degenerate, err = strconv.ParseBool(record[2]); err != nil {
		return row, err
	}
	return row, nil
}

type ExportData struct {
	Run     RunMetadata `json:"run"`
	Samples []ExportRow `json:"samples"`
}

// ExportRow is a SampleRow with non-finite values encoded as null.
type ExportRow struct {
	Separation *float64   `json:"separation"`
	Collided   bool       `json:"collided"`
	Degenerate bool       `json:"degenerate"`
	V1         []*float64 `json:"v1"`
	V2         []*float64 `json:"v2"`
	Energy     *float64   `json:"energy"`
}

func exportRow(row SampleRow) ExportRow {
	return ExportRow{
		Separation: finiteOrNil(row.Separation),
		Collided:   row.Collided,
		Degenerate: row.Degenerate,
		V1:         []*float64{finiteOrNil(row.V1x), finiteOrNil(row.V1y)},
		V2:         []*float64{finiteOrNil(row.V2x), finiteOrNil(row.V2y)},
		Energy:     finiteOrNil(row.Energy),
	}
}

func finiteOrNil(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ExportJSON writes a run's metadata and samples to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	rows, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	data := ExportData{Run: *meta, Samples: make([]ExportRow, len(rows))}
	for i, row := range rows {
		data.Samples[i] = exportRow(row)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// formatFloat keeps NaN and Inf readable by strconv.ParseFloat.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
