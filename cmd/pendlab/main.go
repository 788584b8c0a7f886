package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avekker/pendlab/internal/analysis"
	"github.com/avekker/pendlab/internal/config"
	"github.com/avekker/pendlab/internal/export"
	"github.com/avekker/pendlab/internal/logging"
	"github.com/avekker/pendlab/internal/pendulum"
	"github.com/avekker/pendlab/internal/storage"
	"github.com/avekker/pendlab/internal/sweep"
	"github.com/avekker/pendlab/internal/viz"
)

var (
	storePath string
	logLevel  string
	logFile   string

	length   float64
	gravity  float64
	drag     float64
	dt       float64
	duration float64
	phi      float64
	omega    float64
	theta    float64
	psi      float64
	thetaDot float64
	psiDot   float64
	kickX    float64
	kickY    float64
	kickZ    float64

	configFile string
	preset     string
	save       bool

	fps       int
	themeName string
	trailLen  int
	kickSize  float64
	noVectors bool
	noEnergy  bool

	xCol int
	yCol int
	col  int

	format  string
	outPath string

	sweepFile    string
	sweepWorkers int
	sweepOut     string

	comparePhi  float64
	compareTime float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pendlab",
		Short: "pendulum simulation lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Options{Level: logLevel, File: logFile})
		},
		// No subcommand drops into the live view with defaults.
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			req, err := cfg.Run.Request()
			if err != nil {
				return err
			}
			return viz.Run(req, cfg.View)
		},
	}
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "pendlab.db", "run archive (sqlite)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "optional rotating log file")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&save, "save", false, "archive the run")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "interactive live view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringVar(&themeName, "theme", config.Default().View.Theme,
		"one of: "+strings.Join(viz.ThemeNames(), ", "))
	liveCmd.Flags().IntVar(&trailLen, "trail", config.DefaultTrail, "trail length in samples")
	liveCmd.Flags().Float64Var(&kickSize, "kick-size", 0.5, "impulse magnitude per keypress (m/s)")
	liveCmd.Flags().BoolVar(&noVectors, "no-vectors", false, "hide force vectors")
	liveCmd.Flags().BoolVar(&noEnergy, "no-energy", false, "hide the energy chart")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "run metadata and energy summary",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot state columns in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase portrait of two state columns",
		Args:  cobra.ExactArgs(1),
		RunE:  phaseRun,
	}
	phaseCmd.Flags().IntVar(&xCol, "x", 0, "state column for the x axis")
	phaseCmd.Flags().IntVar(&yCol, "y", 1, "state column for the y axis")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "power spectrum of a state column",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().IntVar(&col, "column", 0, "state column")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "csv", "csv, json, svg, png or energy")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout or <id>.<ext>)")

	rmCmd := &cobra.Command{
		Use:   "rm [run_id]",
		Short: "delete an archived run",
		Args:  cobra.ExactArgs(1),
		RunE:  removeRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "parameter sweep over initial conditions",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepFile, "config", "", "sweep spec (yaml)")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "concurrent runs, 0 = one per cpu")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "", "write outcomes to a csv file")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "rk4 accuracy against the small-angle solution",
		RunE:  compareSteps,
	}
	compareCmd.Flags().Float64Var(&comparePhi, "phi", 0.05, "initial angle (rad)")
	compareCmd.Flags().Float64Var(&compareTime, "time", 10, "duration (s)")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "integration throughput",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list run presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, showCmd, plotCmd, phaseCmd,
		spectrumCmd, exportCmd, rmCmd, sweepCmd, compareCmd, benchCmd, presetsCmd)

	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&length, "length", config.DefaultLength, "rod length (m)")
	f.Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s^2)")
	f.Float64Var(&drag, "drag", 0, "quadratic drag coefficient")
	f.Float64Var(&dt, "dt", config.DefaultStep, "integration step (s)")
	f.Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	f.Float64Var(&phi, "phi", config.DefaultTheta, "initial angle (planar)")
	f.Float64Var(&omega, "omega", 0, "initial angular velocity (planar)")
	f.Float64Var(&theta, "theta", config.DefaultTheta, "initial polar angle (spherical)")
	f.Float64Var(&psi, "psi", 0, "initial azimuth (spherical)")
	f.Float64Var(&thetaDot, "theta-dot", 0, "initial polar rate (spherical)")
	f.Float64Var(&psiDot, "psi-dot", 0, "initial azimuthal rate (spherical)")
	f.Float64Var(&kickX, "kick-x", 0, "t=0 impulse, x component (m/s)")
	f.Float64Var(&kickY, "kick-y", 0, "t=0 impulse, y component (m/s)")
	f.Float64Var(&kickZ, "kick-z", 0, "t=0 impulse, z component (m/s)")
	f.StringVar(&configFile, "config", "", "config file (yaml)")
	f.StringVar(&preset, "preset", "", "preset name (see: pendlab presets)")
}

// buildRequest layers configuration: defaults, then preset, then config
// file, then any flag the user actually set. The positional model
// argument always wins.
func buildRequest(cmd *cobra.Command, model string) (pendulum.Request, error) {
	rc := config.Default().Run

	if preset != "" {
		p, ok := config.Preset(preset)
		if !ok {
			return pendulum.Request{}, fmt.Errorf("unknown preset %q (available: %s)",
				preset, strings.Join(config.PresetNames(), ", "))
		}
		rc = p
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return pendulum.Request{}, fmt.Errorf("load config: %w", err)
		}
		rc = cfg.Run
	}

	f := cmd.Flags()
	if f.Changed("length") {
		rc.Length = length
	}
	if f.Changed("gravity") {
		rc.Gravity = gravity
	}
	if f.Changed("drag") {
		rc.Drag = drag
	}
	if f.Changed("dt") {
		rc.Step = dt
	}
	if f.Changed("time") {
		rc.Duration = duration
	}
	if f.Changed("phi") {
		rc.Init.Phi = phi
	}
	if f.Changed("omega") {
		rc.Init.Omega = omega
	}
	if f.Changed("theta") {
		rc.Init.Theta = theta
	}
	if f.Changed("psi") {
		rc.Init.Psi = psi
	}
	if f.Changed("theta-dot") {
		rc.Init.ThetaDot = thetaDot
	}
	if f.Changed("psi-dot") {
		rc.Init.PsiDot = psiDot
	}
	if f.Changed("kick-x") {
		rc.Impulse.X = kickX
	}
	if f.Changed("kick-y") {
		rc.Impulse.Y = kickY
	}
	if f.Changed("kick-z") {
		rc.Impulse.Z = kickZ
	}

	if model != "" {
		rc.Model = model
	}
	return rc.Request()
}

func buildView(cmd *cobra.Command) (config.ViewConfig, error) {
	view := config.Default().View
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return view, fmt.Errorf("load config: %w", err)
		}
		view = cfg.View
	}

	f := cmd.Flags()
	if f.Changed("fps") {
		view.FPS = fps
	}
	if f.Changed("theme") {
		view.Theme = themeName
	}
	if f.Changed("trail") {
		view.Trail = trailLen
	}
	if f.Changed("kick-size") {
		view.KickSize = kickSize
	}
	if noVectors {
		view.ShowVectors = false
	}
	if noEnergy {
		view.ShowEnergy = false
	}
	return view, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args[0])
	if err != nil {
		return err
	}

	log := logging.L()
	log.Info("run starting",
		zap.Stringer("model", req.Kind),
		zap.Float64("dt", req.Params.Step),
		zap.Float64("duration", req.Params.Duration))

	start := time.Now()
	tr, err := pendulum.Simulate(req)

	unstable := false
	var ie *pendulum.InstabilityError
	switch {
	case errors.As(err, &ie):
		unstable = true
		log.Warn("integration went unstable",
			zap.Int("step", ie.Step),
			zap.Float64("t", ie.Time))
	case err != nil:
		return err
	}
	elapsed := time.Since(start)

	if tr.Fallback {
		log.Warn("pole fallback: run integrated in the cartesian representation")
	}

	fmt.Printf("completed in %v\n", elapsed.Round(time.Microsecond))
	fmt.Printf("model: %s\n", req.Kind)
	fmt.Printf("samples: %d\n", tr.Len())
	if energy := finitePrefix(tr.Energy); len(energy) > 0 {
		fmt.Printf("energy: %.6f -> %.6f (drift %.3e)\n",
			energy[0], energy[len(energy)-1], drift(tr))
	}

	if !unstable {
		last := tr.At(tr.Len() - 1)
		fmt.Println("\nfinal state:")
		for i, label := range tr.Labels() {
			fmt.Printf("  %-10s %12.6f\n", label, last.State[i])
		}
	}

	if save {
		st, err := storage.Open(storePath)
		if err != nil {
			return err
		}
		defer st.Close()
		id, err := st.SaveRun(req.Params, tr, unstable)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", id)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args[0])
	if err != nil {
		return err
	}
	view, err := buildView(cmd)
	if err != nil {
		return err
	}
	return viz.Run(req, view)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tCREATED\tSAMPLES\tDT\tDURATION\tFLAGS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%.2fs\t%s\n",
			run.ID,
			run.Kind,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Params.Step,
			run.Params.Duration,
			runFlags(run),
		)
	}
	return w.Flush()
}

func runFlags(meta storage.RunMeta) string {
	var flags []string
	if meta.Fallback {
		flags = append(flags, "fallback")
	}
	if meta.Unstable {
		flags = append(flags, "unstable")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

func showRun(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, tr, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", meta.ID)
	fmt.Fprintf(w, "model\t%s\n", meta.Kind)
	fmt.Fprintf(w, "created\t%s\n", meta.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "length\t%g m\n", meta.Params.Length)
	fmt.Fprintf(w, "gravity\t%g m/s^2\n", meta.Params.Gravity)
	fmt.Fprintf(w, "drag\t%g\n", meta.Params.Drag)
	fmt.Fprintf(w, "dt\t%g s\n", meta.Params.Step)
	fmt.Fprintf(w, "duration\t%g s\n", meta.Params.Duration)
	fmt.Fprintf(w, "samples\t%d\n", meta.Samples)
	fmt.Fprintf(w, "fallback\t%t\n", meta.Fallback)
	fmt.Fprintf(w, "unstable\t%t\n", meta.Unstable)
	if energy := finitePrefix(tr.Energy); len(energy) > 0 {
		fmt.Fprintf(w, "energy\t%.6f -> %.6f (drift %.3e)\n",
			energy[0], energy[len(energy)-1], drift(tr))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, tr, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Kind)
	fmt.Printf("samples: %d\n\n", tr.Len())

	for i, label := range tr.Labels() {
		data := finitePrefix(tr.Series(i))
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(label),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if energy := finitePrefix(tr.Energy); len(energy) >= 2 {
		graph := asciigraph.Plot(energy,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("energy"),
		)
		fmt.Println(graph)
	}
	return nil
}

func phaseRun(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, tr, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	portrait, err := analysis.Phase(tr, xCol, yCol)
	if err != nil {
		return err
	}

	fmt.Printf("phase portrait: %s (%s)\n", meta.ID, meta.Kind)
	fmt.Printf("x: %s  y: %s\n\n", portrait.XLabel, portrait.YLabel)
	fmt.Println(portrait.Render(70, 20))
	return nil
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, tr, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	labels := tr.Labels()
	if col < 0 || col >= len(labels) {
		return fmt.Errorf("column %d out of range for %s state", col, meta.Kind)
	}

	series := finitePrefix(tr.Series(col))
	if len(series) < tr.Len() {
		fmt.Printf("note: truncated at first non-finite sample (%d of %d)\n\n",
			len(series), tr.Len())
	}

	ps, err := analysis.Spectrum(series, meta.Params.Step)
	if err != nil {
		return err
	}

	// The interesting peaks live in the bottom of the band.
	power := ps.Power
	if len(power) >= 8 {
		power = power[:len(power)/4]
	}
	graph := asciigraph.Plot(power,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", labels[col])),
	)
	fmt.Println(graph)
	fmt.Println()

	peak := ps.Dominant()
	fmt.Printf("dominant frequency: %.4f hz\n", peak)
	if peak > 0 {
		fmt.Printf("period: %.3f s\n", 1/peak)
	}
	if len(ps.Freqs) > 1 {
		fmt.Printf("resolution: %.4f hz/bin\n", ps.Freqs[1])
	}
	if meta.Kind == pendulum.KindPlanar {
		ref := analysis.SmallAngleFrequency(meta.Params.Gravity, meta.Params.Length)
		fmt.Printf("small-angle reference: %.4f hz\n", ref)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, tr, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	path := outPath
	switch format {
	case "csv":
		if path == "" {
			return export.WriteCSV(os.Stdout, tr)
		}
		err = export.CSVFile(path, tr)
	case "json":
		if path == "" {
			return export.WriteJSON(os.Stdout, meta.Params, tr)
		}
		err = export.JSONFile(path, meta.Params, tr)
	case "svg":
		if path == "" {
			path = meta.ID + ".svg"
		}
		err = export.SVGFile(path, tr, meta.Params.Length)
	case "png":
		if path == "" {
			path = meta.ID + ".png"
		}
		err = export.PlotPNG(path, tr)
	case "energy":
		if path == "" {
			path = meta.ID + "-energy.png"
		}
		err = export.EnergyPNG(path, tr)
	default:
		return fmt.Errorf("unknown format %q (csv, json, svg, png, energy)", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func removeRun(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteRun(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	spec := sweep.Default()
	if sweepFile != "" {
		var err error
		spec, err = sweep.Load(sweepFile)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("workers") {
		spec.Workers = sweepWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logging.L()
	log.Info("sweep starting",
		zap.String("model", spec.Model),
		zap.Int("points", spec.Points()))

	start := time.Now()
	outcomes, err := sweep.Run(ctx, spec)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tTHETA\tPSI_DOT\tDRAG\tDRIFT\tFLAGS")
	unstable, fallback := 0, 0
	for _, o := range outcomes {
		var flags []string
		if o.Fallback {
			flags = append(flags, "fallback")
			fallback++
		}
		if o.Unstable {
			flags = append(flags, "unstable")
			unstable++
		}
		fl := "-"
		if len(flags) > 0 {
			fl = strings.Join(flags, ",")
		}
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.3e\t%s\n",
			o.Index, o.Theta, o.PsiDot, o.Drag, o.EnergyDrift, fl)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d points in %v (%d unstable, %d fallback)\n",
		len(outcomes), elapsed.Round(time.Millisecond), unstable, fallback)

	if sweepOut != "" {
		if err := writeSweepCSV(sweepOut, outcomes); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", sweepOut)
	}
	return nil
}

func writeSweepCSV(path string, outcomes []sweep.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"idx", "theta", "psi_dot", "drag", "energy_drift", "fallback", "unstable"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, o := range outcomes {
		rec := []string{
			strconv.Itoa(o.Index),
			strconv.FormatFloat(o.Theta, 'f', 6, 64),
			strconv.FormatFloat(o.PsiDot, 'f', 6, 64),
			strconv.FormatFloat(o.Drag, 'f', 6, 64),
			strconv.FormatFloat(o.EnergyDrift, 'e', 6, 64),
			strconv.FormatBool(o.Fallback),
			strconv.FormatBool(o.Unstable),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func compareSteps(cmd *cobra.Command, args []string) error {
	fmt.Printf("rk4 against phi0*cos(sqrt(g/l)*t), phi0=%g over %gs\n\n", comparePhi, compareTime)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tMAX_ERR\tENERGY_DRIFT\tTIME")

	for _, h := range []float64{0.1, 0.05, 0.01, 0.005, 0.001} {
		p := pendulum.Params{Length: 1, Gravity: 9.81, Step: h, Duration: compareTime}
		start := time.Now()
		tr, err := pendulum.SimulatePlanar(p, pendulum.PlanarInit{Phi: comparePhi})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		w0 := math.Sqrt(p.Gravity / p.Length)
		maxErr := 0.0
		for i, t := range tr.Times {
			want := comparePhi * math.Cos(w0*t)
			if e := math.Abs(tr.States[i][0] - want); e > maxErr {
				maxErr = e
			}
		}
		fmt.Fprintf(w, "%.4g\t%d\t%.3e\t%.3e\t%v\n",
			h, tr.Len()-1, maxErr, drift(tr), elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}

func benchModel(cmd *cobra.Command, args []string) error {
	kind, err := pendulum.ParseKind(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s\n\n", kind)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range []float64{1, 5, 10} {
		for _, h := range []float64{0.001, 0.01, 0.1} {
			req := pendulum.Request{
				Kind:      kind,
				Params:    pendulum.Params{Length: 1, Gravity: 9.81, Step: h, Duration: dur},
				Planar:    pendulum.PlanarInit{Phi: 0.5},
				Spherical: pendulum.SphericalInit{Theta: 0.5, PsiDot: 1},
			}
			start := time.Now()
			tr, err := pendulum.Simulate(req)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			n := tr.Len() - 1
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, h, n, elapsed.Round(time.Microsecond), float64(n)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODEL\tLENGTH\tDRAG\tDT\tDURATION\tINIT")
	for _, name := range config.PresetNames() {
		rc, _ := config.Preset(name)
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%s\n",
			name, rc.Model, rc.Length, rc.Drag, rc.Step, rc.Duration, describeInit(rc))
	}
	return w.Flush()
}

func describeInit(rc config.RunConfig) string {
	var parts []string
	add := func(name string, v float64) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s=%g", name, v))
		}
	}
	add("phi", rc.Init.Phi)
	add("omega", rc.Init.Omega)
	add("theta", rc.Init.Theta)
	add("psi", rc.Init.Psi)
	add("theta_dot", rc.Init.ThetaDot)
	add("psi_dot", rc.Init.PsiDot)
	if rc.Impulse.X != 0 || rc.Impulse.Y != 0 || rc.Impulse.Z != 0 {
		parts = append(parts, fmt.Sprintf("kick=(%g,%g,%g)",
			rc.Impulse.X, rc.Impulse.Y, rc.Impulse.Z))
	}
	if len(parts) == 0 {
		return "rest"
	}
	return strings.Join(parts, " ")
}

// finitePrefix cuts a series at its first non-finite entry, so unstable
// tails do not poison plots or summaries.
func finitePrefix(series []float64) []float64 {
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return series[:i]
		}
	}
	return series
}

// drift is the largest departure from the initial energy over the
// finite prefix of a run.
func drift(tr *pendulum.Trajectory) float64 {
	energy := finitePrefix(tr.Energy)
	if len(energy) == 0 {
		return math.NaN()
	}
	d := 0.0
	for _, e := range energy[1:] {
		if dev := math.Abs(e - energy[0]); dev > d {
			d = dev
		}
	}
	return d
}
