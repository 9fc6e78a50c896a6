package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hg7643/reentrycool/internal/sweep"
	"github.com/hg7643/reentrycool/internal/thermo"
)

// Store keeps one directory per saved run under a base data dir. Every run
// has a metadata.json; sweep runs add a sweep.csv with the sampled points.
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
	ID         string             `json:"id"`
	Vehicle    string             `json:"vehicle"`
	Timestamp  time.Time          `json:"timestamp"`
	Params     map[string]float64 `json:"params"`
	Breakdown  thermo.Breakdown   `json:"breakdown"`
	SweepParam string             `json:"sweep_param,omitempty"`
	SweepOut   string             `json:"sweep_output,omitempty"`
}

// Save persists a single estimate run and returns its run id.
func (s *Store) Save(vehicle string, p thermo.Parameters, b thermo.Breakdown) (string, error) {
	meta := RunMetadata{
		ID:        fmt.Sprintf("%s_%d", vehicle, time.Now().Unix()),
		Vehicle:   vehicle,
		Timestamp: time.Now(),
		Params:    p.GetParams(),
		Breakdown: b,
	}
	if err := s.writeMeta(meta); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// SaveSweep persists a sweep run: metadata for the base constants plus a CSV
// of the sampled parameter values and the selected output.
func (s *Store) SaveSweep(vehicle string, p thermo.Parameters, r sweep.Range, output string, points []sweep.Point) (string, error) {
	extract, ok := sweep.Outputs[output]
	if !ok {
		return "", fmt.Errorf("storage: unknown sweep output: %s", output)
	}

	meta := RunMetadata{
		ID:         fmt.Sprintf("sweep_%s_%d", r.Param, time.Now().Unix()),
		Vehicle:    vehicle,
		Timestamp:  time.Now(),
		Params:     p.GetParams(),
		SweepParam: r.Param,
		SweepOut:   output,
	}
	if err := s.writeMeta(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(s.baseDir, meta.ID, "sweep.csv")
	file, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{r.Param, output}); err != nil {
		return "", err
	}
	for _, pt := range points {
		row := []string{
			strconv.FormatFloat(pt.Value, 'f', 6, 64),
			strconv.FormatFloat(extract(pt.Breakdown), 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return meta.ID, nil
}

func (s *Store) writeMeta(meta RunMetadata) error {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSweep reads back the sampled values and outputs of a saved sweep.
func (s *Store) LoadSweep(runID string) ([]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "sweep.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	values := make([]float64, 0, len(records)-1)
	outputs := make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		out, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		values = append(values, v)
		outputs = append(outputs, out)
	}

	return values, outputs, nil
}

// ExportJSONStdout dumps a run's metadata as indented JSON.
func ExportJSONStdout(meta *RunMetadata) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
