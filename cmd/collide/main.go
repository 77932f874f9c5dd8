package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/export"
	"github.com/san-kum/collide/internal/logging"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/storage"
	"github.com/san-kum/collide/internal/sweep"
	"github.com/san-kum/collide/internal/viz"
)

var (
	dataDir    string
	configFile string
	// Sweep overrides
	start     float64
	end       float64
	samples   int
	direction float64
	noSave    bool
	svgPath   string

	logger = logging.Default()
)

// main registers the collide commands and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "collide",
		Short:        "circle collision inspector",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".collide", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file path (yaml)")

	checkCmd := &cobra.Command{
		Use:   "check [preset]",
		Short: "resolve a single collision query",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkScenario,
	}
	checkCmd.Flags().StringVar(&svgPath, "svg", "", "write the scene to an SVG file")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or print one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "resolve the pair over a range of separations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&start, "start", config.DefaultStart, "first separation")
	sweepCmd.Flags().Float64Var(&end, "end", config.DefaultEnd, "last separation")
	sweepCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	sweepCmd.Flags().Float64Var(&direction, "direction", 0, "angle from body2 to body1 (radians)")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "write the energy curve to an SVG file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored sweep to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [preset]",
		Short: "interactive collision inspector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(args)
			if err != nil {
				return err
			}
			return viz.RunInspector(scenario)
		},
	}

	rootCmd.AddCommand(checkCmd, presetsCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, tuiCmd)
	return rootCmd
}

// loadScenario resolves the scenario from --config, a preset name, or the default.
func loadScenario(args []string) (*config.Scenario, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	if len(args) == 0 {
		return config.DefaultConfig(), nil
	}
	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}
	return cfg, nil
}

func checkScenario(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(args)
	if err != nil {
		return err
	}
	log := logger.WithScenario(scenario.Name)

	b1, b2 := scenario.Circles()
	res, resErr := collision.New(b1, b2).Resolve()
	if resErr != nil {
		log.Warn("resolution is degenerate; velocities should not be applied", "err", resErr)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render(scenario.Name))
	fmt.Fprintln(out, viz.Panel.Render(viz.Report(res, resErr)))

	if svgPath == "" {
		return nil
	}
	scene := export.Scene{Body1: b1, Body2: b2, Resolution: res}
	if arena, ok := scenario.Rectangle(); ok {
		scene.Arena = &arena
	}
	if err := os.WriteFile(svgPath, []byte(export.SceneToSVG(scene, 400)), 0644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	fmt.Fprintf(out, "scene written to %s\n", svgPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "presets:")
		for _, p := range config.ListPresets() {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return nil
	}

	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s", args[0])
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

type sampleLogger struct {
	log *logging.Logger
}

func (s sampleLogger) OnSample(i int, smp sweep.Sample) {
	if smp.Err != nil {
		s.log.Debug("degenerate sample", "index", i, "separation", smp.Separation, "err", smp.Err)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(args)
	if err != nil {
		return err
	}
	log := logger.WithScenario(scenario.Name)

	// CLI flags override the scenario file
	if cmd.Flags().Changed("start") {
		scenario.Sweep.Start = start
	}
	if cmd.Flags().Changed("end") {
		scenario.Sweep.End = end
	}
	if cmd.Flags().Changed("samples") {
		scenario.Sweep.Samples = samples
	}
	if cmd.Flags().Changed("direction") {
		scenario.Sweep.Direction = direction
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b1, b2 := scenario.Circles()
	sw := sweep.New(b1, b2)
	for _, m := range metrics.Defaults() {
		sw.AddMetric(m)
	}
	sw.AddObserver(sampleLogger{log: log})

	began := time.Now()
	result, err := sw.Run(ctx, sweep.Config{
		Start:     scenario.Sweep.Start,
		End:       scenario.Sweep.End,
		Samples:   scenario.Sweep.Samples,
		Direction: scenario.Sweep.Direction,
	})
	if err != nil {
		return err
	}
	log.Debug("sweep finished", "samples", len(result.Samples), "elapsed", time.Since(began))

	if result.Degenerate > 0 {
		log.Warn("sweep contains degenerate samples", "count", result.Degenerate)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "samples: %d\n", len(result.Samples))
	fmt.Fprintf(out, "collisions: %d\n", result.Collisions)
	fmt.Fprintf(out, "degenerate: %d\n", result.Degenerate)
	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range metrics.Defaults() {
		fmt.Fprintf(out, "  %s: %.6f\n", m.Name(), result.Metrics[m.Name()])
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(scenario, result)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nrun id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tRANGE\tSAMPLES\tHITS\tDEGEN")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f..%.2f\t%d\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Start,
			run.End,
			run.Samples,
			run.Collisions,
			run.Degenerate,
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

	rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "scenario: %s\n", meta.Scenario)
	fmt.Fprintf(out, "samples: %d\n\n", len(rows))

	series := []struct {
		caption string
		value   func(storage.SampleRow) float64
	}{
		{"body1 vx after impact", func(r storage.SampleRow) float64 { return r.V1x }},
		{"body2 vx after impact", func(r storage.SampleRow) float64 { return r.V2x }},
		{"kinetic energy after impact", func(r storage.SampleRow) float64 { return r.Energy }},
		{"collided (1) / apart (0)", func(r storage.SampleRow) float64 {
			if r.Collided {
				return 1
			}
			return 0
		}},
	}

	for _, s := range series {
		data, skipped := plottable(rows, s.value)
		if len(data) == 0 {
			logger.Warn("nothing to plot", "series", s.caption)
			continue
		}
		if skipped > 0 {
			logger.Warn("skipped non-finite samples", "series", s.caption, "count", skipped)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	if svgPath == "" {
		return nil
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i], ys[i] = r.Separation, r.Energy
	}
	svg := export.CurveToSVG(xs, ys, 640, 320, "#00ccff")
	if svg == "" {
		return fmt.Errorf("not enough finite samples for svg")
	}
	if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	fmt.Fprintf(out, "curve written to %s\n", svgPath)
	return nil
}

// plottable drops NaN/Inf values, which asciigraph cannot scale.
func plottable(rows []storage.SampleRow, value func(storage.SampleRow) float64) ([]float64, int) {
	data := make([]float64, 0, len(rows))
	skipped := 0
	for _, r := range rows {
		v := value(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			skipped++
			continue
		}
		data = append(data, v)
	}
	return data, skipped
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(cmd.OutOrStdout(), args[0])
}
