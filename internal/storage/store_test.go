package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/cansim/internal/solver"
)

func testResult() (*solver.Result, solver.Config) {
	cfg := solver.DefaultConfig()
	cfg.Dt = 1e-3
	cfg.MaxTime = 0.01

	res := &solver.Result{
		Success:      true,
		Message:      "reached 20m in 1.2345 seconds",
		CdA:          0.5,
		T:            []float64{0, 0.001, 0.002},
		V:            []float64{0, 0.5, 1.0},
		S:            []float64{0, 0.00025, 0.001},
		Reached:      true,
		TimeToTarget: 1.2345,
		TopSpeed:     1.0,
		TopSpeedTime: 0.002,
		HasTopSpeed:  true,
		Thrust:       []float64{1, 1, 1},
		Drag:         []float64{0, 0.1, 0.2},
		NetForce:     []float64{1, 0.9, 0.8},
		Accel:        []float64{13, 12, 11},
		Mass:         []float64{0.077, 0.077, 0.077},
	}
	return res, cfg
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res, cfg := testResult()
	runID, err := st.Save(cfg, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.CdA != 0.5 {
		t.Errorf("expected cda 0.5, got %f", meta.CdA)
	}
	if !meta.Reached || meta.TimeToTarget != 1.2345 {
		t.Errorf("crossing time not persisted: %+v", meta)
	}
	if meta.Samples != 3 {
		t.Errorf("expected 3 samples, got %d", meta.Samples)
	}

	loaded, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(loaded.T) != 3 || len(loaded.Mass) != 3 {
		t.Fatalf("expected 3-sample series, got %d", len(loaded.T))
	}
	if loaded.V[2] != 1.0 {
		t.Errorf("velocity not round-tripped, got %v", loaded.V[2])
	}
	if loaded.TopSpeed != 1.0 {
		t.Errorf("top speed not round-tripped, got %v", loaded.TopSpeed)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	res, cfg := testResult()
	if _, err := st.Save(cfg, res); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New("/nonexistent/cansim-data")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing data dir should list empty, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	res, _ := testResult()

	var buf bytes.Buffer
	if err := ExportJSON(&buf, "run_1", res); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if data.ID != "run_1" || data.Samples != 3 {
		t.Errorf("unexpected export %+v", data)
	}
	if len(data.Velocity) != 3 {
		t.Errorf("expected 3 velocity samples, got %d", len(data.Velocity))
	}
}

func TestExportCSV(t *testing.T) {
	res, _ := testResult()

	var buf bytes.Buffer
	if err := ExportCSV(&buf, res); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "time,velocity,displacement") {
		t.Errorf("unexpected header %q", lines[0])
	}
}
