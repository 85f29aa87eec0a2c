package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/cansim/internal/solver"
)

type ExportData struct {
	ID           string    `json:"id"`
	CdA          float64   `json:"cda"`
	Message      string    `json:"message"`
	Reached      bool      `json:"reached"`
	TimeToTarget float64   `json:"time_to_target,omitempty"`
	TopSpeed     float64   `json:"top_speed"`
	TopSpeedTime float64   `json:"top_speed_time"`
	Samples      int       `json:"samples"`
	Times        []float64 `json:"times"`
	Velocity     []float64 `json:"velocity"`
	Displacement []float64 `json:"displacement"`
	Thrust       []float64 `json:"thrust"`
	Drag         []float64 `json:"drag"`
	NetForce     []float64 `json:"net_force"`
	Acceleration []float64 `json:"acceleration"`
	Mass         []float64 `json:"mass"`
}

// ExportJSON writes the full run as indented JSON.
func ExportJSON(w io.Writer, id string, res *solver.Result) error {
	data := ExportData{
		ID:           id,
		CdA:          res.CdA,
		Message:      res.Message,
		Reached:      res.Reached,
		TopSpeed:     res.TopSpeed,
		TopSpeedTime: res.TopSpeedTime,
		Samples:      len(res.T),
		Times:        res.T,
		Velocity:     res.V,
		Displacement: res.S,
		Thrust:       res.Thrust,
		Drag:         res.Drag,
		NetForce:     res.NetForce,
		Acceleration: res.Accel,
		Mass:         res.Mass,
	}
	if res.Reached {
		data.TimeToTarget = res.TimeToTarget
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the run series as CSV rows.
func ExportCSV(w io.Writer, res *solver.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(seriesHeader); err != nil {
		return err
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
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
