package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/cansim/internal/solver"
)

// Store persists runs under a data directory: one subdirectory per run
// holding metadata.json and series.csv.
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
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	CdA          float64   `json:"cda"`
	Dt           float64   `json:"dt"`
	MaxTime      float64   `json:"max_time"`
	Target       float64   `json:"target"`
	BaseMass     float64   `json:"base_mass"`
	Message      string    `json:"message"`
	Reached      bool      `json:"reached"`
	TimeToTarget float64   `json:"time_to_target,omitempty"`
	TopSpeed     float64   `json:"top_speed"`
	TopSpeedTime float64   `json:"top_speed_time"`
	Clamped      int       `json:"clamped,omitempty"`
	Samples      int       `json:"samples"`
}

var seriesHeader = []string{"time", "velocity", "displacement", "thrust", "drag", "net_force", "acceleration", "mass"}

func (s *Store) Save(cfg solver.Config, res *solver.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		CdA:          res.CdA,
		Dt:           cfg.Dt,
		MaxTime:      cfg.MaxTime,
		Target:       cfg.Target,
		BaseMass:     cfg.BaseMass,
		Message:      res.Message,
		Reached:      res.Reached,
		TopSpeed:     res.TopSpeed,
		TopSpeedTime: res.TopSpeedTime,
		Clamped:      res.Clamped,
		Samples:      len(res.T),
	}
	if res.Reached {
		meta.TimeToTarget = res.TimeToTarget
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(res.T) == 0 {
		return runID, nil
	}

	if err := w.Write(seriesHeader); err != nil {
		return "", err
	}

	for i := range res.T {
		row := []string{
			strconv.FormatFloat(res.T[i], 'f', 6, 64),
			strconv.FormatFloat(res.V[i], 'f', 6, 64),
			strconv.FormatFloat(res.S[i], 'f', 6, 64),
			strconv.FormatFloat(res.Thrust[i], 'f', 6, 64),
			strconv.FormatFloat(res.Drag[i], 'f', 6, 64),
			strconv.FormatFloat(res.NetForce[i], 'f', 6, 64),
			strconv.FormatFloat(res.Accel[i], 'f', 6, 64),
			strconv.FormatFloat(res.Mass[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

// LoadSeries reads series.csv back into a partially populated result
// (series and metadata-derived values only).
func (s *Store) LoadSeries(runID string) (*solver.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &solver.Result{
		Success:      true,
		Message:      meta.Message,
		CdA:          meta.CdA,
		Reached:      meta.Reached,
		TimeToTarget: meta.TimeToTarget,
		TopSpeed:     meta.TopSpeed,
		TopSpeedTime: meta.TopSpeedTime,
		HasTopSpeed:  meta.Samples > 0,
		Clamped:      meta.Clamped,
	}

	if len(records) < 2 {
		return res, nil
	}

	n := len(records) - 1
	res.T = make([]float64, 0, n)
	res.V = make([]float64, 0, n)
	res.S = make([]float64, 0, n)
	res.Thrust = make([]float64, 0, n)
	res.Drag = make([]float64, 0, n)
	res.NetForce = make([]float64, 0, n)
	res.Accel = make([]float64, 0, n)
	res.Mass = make([]float64, 0, n)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < len(seriesHeader) {
			continue
		}
		vals := make([]float64, len(seriesHeader))
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		res.T = append(res.T, vals[0])
		res.V = append(res.V, vals[1])
		res.S = append(res.S, vals[2])
		res.Thrust = append(res.Thrust, vals[3])
		res.Drag = append(res.Drag, vals[4])
		res.NetForce = append(res.NetForce, vals[5])
		res.Accel = append(res.Accel, vals[6])
		res.Mass = append(res.Mass, vals[7])
	}

	return res, nil
}
