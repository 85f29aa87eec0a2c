package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cansim/internal/config"
	"github.com/san-kum/cansim/internal/export"
	"github.com/san-kum/cansim/internal/metrics"
	"github.com/san-kum/cansim/internal/optim"
	"github.com/san-kum/cansim/internal/physics"
	"github.com/san-kum/cansim/internal/solver"
	"github.com/san-kum/cansim/internal/storage"
	"github.com/san-kum/cansim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	cda        float64
	dt         float64
	maxTime    float64
	target     float64
	baseMass   float64
	configFile string
	preset     string
	noSave     bool
	// svg output
	outFile  string
	svgStyle string
	// fit
	fitDt     float64
	fitPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cansim",
		Short: "gas-canister car track-time simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cansim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&cda, "cda", physics.DefaultCdA, "drag area CdA (m^2)")
	runCmd.Flags().Float64Var(&dt, "dt", 1e-6, "timestep (s)")
	runCmd.Flags().Float64Var(&maxTime, "time", 5.0, "integration horizon (s)")
	runCmd.Flags().Float64Var(&target, "target", physics.TargetDisplacement, "target displacement (m)")
	runCmd.Flags().Float64Var(&baseMass, "mass", physics.BaseMass, "dry mass of the car (kg)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "render the velocity profile as an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  svgRun,
	}
	svgCmd.Flags().StringVar(&outFile, "out", "velocity.svg", "output file")
	svgCmd.Flags().StringVar(&svgStyle, "style", "line", "render style: line or dots")

	playCmd := &cobra.Command{
		Use:   "play [run_id]",
		Short: "replay a run as an animated track view",
		Args:  cobra.ExactArgs(1),
		RunE:  playRun,
	}

	fitCmd := &cobra.Command{
		Use:   "fit [seconds]",
		Short: "estimate CdA from an observed track time",
		Args:  cobra.ExactArgs(1),
		RunE:  fitRun,
	}
	fitCmd.Flags().Float64Var(&fitDt, "dt", 1e-4, "timestep for fit evaluations (s)")
	fitCmd.Flags().Float64Var(&maxTime, "time", 5.0, "integration horizon (s)")
	fitCmd.Flags().Float64Var(&baseMass, "mass", physics.BaseMass, "dry mass of the car (kg)")
	fitCmd.Flags().IntVar(&fitPoints, "points", 32, "grid points per refinement stage")

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "summary statistics for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  statsRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-12s cda=%.4f dt=%g max_time=%.1fs\n", p, cfg.CdA, cfg.Dt, cfg.MaxTime)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, svgCmd, playCmd, fitCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	scfg := solver.Config{
		CdA:      cda,
		MaxTime:  maxTime,
		Dt:       dt,
		Target:   target,
		BaseMass: baseMass,
	}

	if preset != "" {
		pc := config.GetPreset(preset)
		if pc == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		scfg = pc.SolverConfig()
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		scfg = fc.SolverConfig()
	}

	// CLI flags override preset and file values
	if cmd.Flags().Changed("cda") {
		scfg.CdA = cda
	}
	if cmd.Flags().Changed("dt") {
		scfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		scfg.MaxTime = maxTime
	}
	if cmd.Flags().Changed("target") {
		scfg.Target = target
	}
	if cmd.Flags().Changed("mass") {
		scfg.BaseMass = baseMass
	}

	fmt.Printf("running simulation (cda=%.4f, dt=%g)...\n", scfg.CdA, scfg.Dt)
	start := time.Now()
	res := solver.Solve(scfg)
	elapsed := time.Since(start)

	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("samples: %d\n\n", len(res.T))
	fmt.Println(res.Message)
	if res.HasTopSpeed {
		fmt.Printf("top speed: %.3f m/s at %.4fs\n", res.TopSpeed, res.TopSpeedTime)
	}
	if res.Clamped > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d non-finite acceleration samples were clamped\n", res.Clamped)
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(scfg, res)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCDA\tREACHED\tTRACK TIME\tTOP SPEED")

	for _, run := range runs {
		trackTime := "-"
		if run.Reached {
			trackTime = fmt.Sprintf("%.4fs", run.TimeToTarget)
		}
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%t\t%s\t%.3f m/s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.CdA,
			run.Reached,
			trackTime,
			run.TopSpeed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	res, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(res.T) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("cda: %.4f\n", meta.CdA)
	fmt.Printf("samples: %d\n\n", len(res.T))

	// Downsample to chart resolution so dense grids stay readable.
	hist := solver.Resample(res, 160)
	if hist == nil {
		return fmt.Errorf("no data to plot")
	}

	series := []struct {
		name string
		data []float64
	}{
		{"velocity (m/s)", hist.V},
		{"thrust (N)", hist.Thrust},
		{"drag (N)", hist.Drag},
	}

	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	// Displacement gets the braille chart so the crossing marker can be
	// drawn on it.
	chart := viz.NewChart(90, 14)
	if res.Reached {
		chart = chart.WithMark(res.TimeToTarget)
	}
	fmt.Println(chart.Render(hist.T, hist.S))
	fmt.Println("displacement (m)")

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, runID, res)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(res.T) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, res)
}

func svgRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(res.T) == 0 {
		return fmt.Errorf("no data to render")
	}

	var svg string
	switch svgStyle {
	case "dots":
		canvas := viz.NewCanvas(200, 96)
		plotOnCanvas(canvas, res.T, res.V)
		svg = export.CanvasToSVG(canvas, 6)
	default:
		svg = export.SeriesSVG(res.T, res.V, 800, 400, fmt.Sprintf("%s velocity (m/s)", runID))
	}

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

// plotOnCanvas scales a series onto the braille canvas with connected
// segments.
func plotOnCanvas(c *viz.Canvas, ts, ys []float64) {
	if len(ts) < 2 {
		return
	}
	yMin, yMax := ys[0], ys[0]
	for _, y := range ys {
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	if yMax == yMin {
		yMax = yMin + 1
	}
	w, h := 200, 96
	tSpan := ts[len(ts)-1] - ts[0]
	if tSpan <= 0 {
		return
	}
	prevX, prevY := 0, 0
	for i := range ts {
		x := int(float64(w-1) * (ts[i] - ts[0]) / tSpan)
		y := h - 1 - int(float64(h-1)*(ys[i]-yMin)/(yMax-yMin))
		if i > 0 {
			c.DrawLine(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}
}

func playRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	res, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(res.T) == 0 {
		return fmt.Errorf("no data to replay")
	}

	m := viz.NewPlayModel(res, meta.Target)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func statsRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(res.T) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("run: %s\n\n", runID)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range metrics.Default() {
		fmt.Fprintf(w, "%s\t%.6f\n", m.Name(), m.Compute(res))
	}
	return w.Flush()
}

func fitRun(cmd *cobra.Command, args []string) error {
	observed, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid observed time: %s", args[0])
	}

	fmt.Printf("fitting CdA to an observed track time of %.4fs (dt=%g)...\n", observed, fitDt)
	start := time.Now()

	eval := func(c float64) (float64, bool) {
		res := solver.Solve(solver.Config{
			CdA:      c,
			MaxTime:  maxTime,
			Dt:       fitDt,
			Target:   physics.TargetDisplacement,
			BaseMass: baseMass,
		})
		if !res.Success || !res.Reached {
			return 0, false
		}
		return res.TimeToTarget, true
	}

	fit := optim.NewFitCdA(physics.MinCdA, physics.MaxCdA)
	fit.Points = fitPoints
	best, residual, err := fit.Search(context.Background(), observed, eval)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))
	fmt.Printf("best CdA: %.5f\n", best)
	fmt.Printf("residual: %.5fs\n", residual)
	return nil
}
