package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/dialnav/internal/audio"
	"github.com/san-kum/dialnav/internal/audio/output"
	"github.com/san-kum/dialnav/internal/automation"
	"github.com/san-kum/dialnav/internal/config"
	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/gui"
	"github.com/san-kum/dialnav/internal/logger"
	"github.com/san-kum/dialnav/internal/metrics"
	"github.com/san-kum/dialnav/internal/mode"
	"github.com/san-kum/dialnav/internal/physics"
	"github.com/san-kum/dialnav/internal/storage"
	"github.com/san-kum/dialnav/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	logJSON    bool
	journal    bool
	theme      string

	metricsAddr string
	withAudio   bool
	zoom        int

	renderOut   string
	renderSteps int
	renderTime  float64

	randomSeed int64
	duration   float64
	rate       float64
	saveTrace  bool
	jsonOut    bool
	workers    int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:          "dialnav",
		Short:        "rotary dial carousel menu",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".dialnav", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "dial tuning preset")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&logFile, "log-file", "", "log file (interactive modes default to <data>/dialnav.log)")
	pf.BoolVar(&logJSON, "log-json", false, "write JSON log records")
	pf.BoolVar(&journal, "journal", false, "also log to the systemd journal")
	pf.StringVar(&theme, "theme", "minimal", "terminal theme ("+strings.Join(tui.ThemeNames(), ", ")+")")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the menu in the terminal",
		RunE:  runTUI,
	}
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
		c.Flags().BoolVar(&withAudio, "audio", false, "play a click on every detent")
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the menu in a window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&zoom, "zoom", 4, "screen pixels per viewport unit")
	guiCmd.Flags().BoolVar(&withAudio, "audio", false, "play a click on every detent")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to SVG",
		RunE:  renderFrame,
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "dial.svg", "output file")
	renderCmd.Flags().IntVar(&renderSteps, "steps", 0, "detents to turn before rendering")
	renderCmd.Flags().Float64Var(&renderTime, "time", 1.0, "seconds to settle before rendering")

	traceCmd := &cobra.Command{
		Use:   "trace [scenario.yaml...]",
		Short: "replay scripted scenarios headless",
		RunE:  runTrace,
	}
	traceCmd.Flags().Int64Var(&randomSeed, "random", 0, "generate a random scenario with this seed")
	traceCmd.Flags().Float64Var(&duration, "time", 10.0, "duration of a random scenario")
	traceCmd.Flags().Float64Var(&rate, "rate", 2.0, "inputs per second of a random scenario")
	traceCmd.Flags().BoolVar(&saveTrace, "save", false, "store the trace under the data directory")
	traceCmd.Flags().BoolVar(&jsonOut, "json", false, "print the trace as JSON")
	traceCmd.Flags().IntVar(&workers, "parallel", 0, "scenarios replayed at once (0 = all)")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored traces",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list dial tuning presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDEBOUNCE\tSETTLE\tFRICTION\tTRANSITION\tEASE")
			for _, name := range config.ListPresets() {
				t := config.Presets[name]
				fmt.Fprintf(w, "%s\t%.2fs\t%.2f\t%.2f/%.2f\t%.2fs\t%s\n",
					name, t.DebounceWindow, t.SettleFactor, t.FrictionIdle, t.FrictionActive, t.Transition, t.Ease)
			}
			w.Flush()
		},
	}

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list menu item kinds",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range mode.NewRegistry().ListKinds() {
				fmt.Println(k)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("")
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, guiCmd, renderCmd, traceCmd, runsCmd, plotCmd, exportCmd, presetsCmd, kindsCmd, configCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config, then applies the --preset flag or, failing
// that, fallback.
func loadConfig(fallback string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	name := preset
	if name == "" {
		name = fallback
	}
	if name != "" {
		t, ok := config.Presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (have %s)", name, strings.Join(config.ListPresets(), ", "))
		}
		t.Apply(cfg)
	}

	return cfg, cfg.Validate()
}

// openLogger builds the process logger. Interactive front-ends own the
// terminal, so they log to a file by default.
func openLogger(interactive bool) (*slog.Logger, func(), error) {
	path := logFile
	if path == "" && interactive {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dataDir, "dialnav.log")
	}

	opts := logger.Options{Level: logLevel, JSON: logJSON, Journal: journal}
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		opts.Writer = f
		closeFn = func() { f.Close() }
	}
	return logger.New(opts), closeFn, nil
}

// startAudio opens the click synth when --audio is set. The returned stop
// function is always safe to call.
func startAudio(log *slog.Logger) (*audio.Synth, func()) {
	if !withAudio {
		return nil, func() {}
	}
	synth := audio.NewSynth()
	player, err := output.Start(synth)
	if err != nil {
		log.Warn("audio disabled", "error", err)
		return nil, func() {}
	}
	return synth, func() {
		if err := player.Stop(); err != nil {
			log.Warn("audio stop", "error", err)
		}
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	log, closeLog, err := openLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	deps := mode.Deps{Log: log}
	reg, collector := metrics.NewRegistry()
	if metricsAddr != "" {
		deps.Observer = collector
	}

	m, err := mode.New(cfg, deps)
	if err != nil {
		return err
	}
	m.Init()
	defer m.Shutdown()

	opts := tui.Options{Theme: theme}
	synth, stopAudio := startAudio(log)
	defer stopAudio()
	if synth != nil {
		opts.Clicker = synth
	}

	var background []func(context.Context) error
	if metricsAddr != "" {
		background = append(background, func(ctx context.Context) error {
			return metrics.Serve(ctx, metricsAddr, reg, log)
		})
	}

	return runAlongside(cmd.Context(), func(ctx context.Context) error {
		return tui.Run(ctx, m, opts)
	}, background...)
}

// runAlongside runs fg until it returns, with each of bg serving in the
// meantime. bg is stopped once fg returns, and a failing bg stops fg. The
// first error wins; errors after ctx itself is cancelled are dropped.
func runAlongside(ctx context.Context, fg func(context.Context) error, bg ...func(context.Context) error) error {
	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		err := fg(gCtx)
		stop()
		return err
	})
	for _, fn := range bg {
		g.Go(func() error { return fn(gCtx) })
	}

	err := g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	log, closeLog, err := openLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	m, err := mode.New(cfg, mode.Deps{Log: log})
	if err != nil {
		return err
	}
	m.Init()
	defer m.Shutdown()

	opts := gui.Options{Zoom: zoom}
	synth, stopAudio := startAudio(log)
	defer stopAudio()
	if synth != nil {
		opts.Clicker = synth
	}

	if err := gui.Run(cmd.Context(), m, opts); err != nil && cmd.Context().Err() == nil {
		return err
	}
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	log, closeLog, err := openLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	m, err := mode.New(cfg, mode.Deps{Log: log})
	if err != nil {
		return err
	}
	m.Init()
	defer m.Shutdown()

	m.TurnSteps(renderSteps)
	for m.Timeline().Now() < renderTime {
		m.Update(cfg.FrameDt())
	}

	svg := gfx.NewSVG(cfg.Viewport.Width, cfg.Viewport.Height, gfx.Black)
	m.Draw(svg)
	if err := os.WriteFile(renderOut, []byte(svg.Document()), 0644); err != nil {
		return err
	}

	active := m.System().ActiveMenu()
	fmt.Printf("wrote %s (%s, slot %d, %.3f rad)\n", renderOut, active.Name, active.CurrentIndex(), active.Rotation.Angle)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	log, closeLog, err := openLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	var scenarios []*automation.Scenario
	switch {
	case len(args) > 0:
		for _, path := range args {
			s, err := automation.LoadScenario(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			scenarios = append(scenarios, s)
		}
	case cmd.Flags().Changed("random"):
		scenarios = append(scenarios, automation.RandomScenario(randomSeed, duration, rate))
	default:
		scenarios = append(scenarios, automation.RandomScenario(time.Now().UnixNano(), duration, rate))
	}

	jobs := make([]automation.Job, len(scenarios))
	for i, s := range scenarios {
		cfg, err := loadConfig(s.Preset)
		if err != nil {
			return err
		}
		jobs[i] = automation.Job{Config: cfg, Scenario: s}
	}

	start := time.Now()
	traces, err := automation.RunAll(cmd.Context(), jobs, workers, log)
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Round(time.Millisecond)

	if jsonOut {
		for _, trace := range traces {
			if err := storage.ExportJSON(os.Stdout, trace); err != nil {
				return err
			}
		}
		return nil
	}

	if len(traces) == 1 {
		trace := traces[0]
		fmt.Printf("scenario: %s\n", trace.Name)
		fmt.Printf("frames: %d (%.1fs simulated in %s)\n", len(trace.Samples), scenarios[0].End(), elapsed)
		if final, ok := trace.Final(); ok {
			fmt.Printf("final: %s slot %d depth %d\n", final.Menu, final.Index, final.Depth)
		}
		fmt.Println()
		printTrace(trace)
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SCENARIO\tFRAMES\tSELECTIONS\tFINAL MENU\tSLOT\tDEPTH")
		for _, trace := range traces {
			final, _ := trace.Final()
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%d\n",
				trace.Name, len(trace.Samples), len(trace.Selections()), final.Menu, final.Index, final.Depth)
		}
		w.Flush()
		fmt.Printf("\n%d scenarios in %s\n", len(traces), elapsed)
	}

	if saveTrace {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		fmt.Println()
		for i, trace := range traces {
			presetName := preset
			if presetName == "" {
				presetName = scenarios[i].Preset
			}
			runID, err := st.Save(presetName, trace)
			if err != nil {
				return err
			}
			fmt.Printf("saved: %s\n", runID)
		}
	}
	return nil
}

func printTrace(trace *automation.Trace) {
	if len(trace.Samples) == 0 {
		fmt.Println("no samples")
		return
	}

	fmt.Println(asciigraph.Plot(trace.Angles(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(physics.TwoPi),
		asciigraph.Caption("dial angle (rad)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(trace.Indices(),
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("selected slot"),
	))
	fmt.Println()

	if len(trace.Events) == 0 {
		fmt.Println("no item events")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tMENU\tITEM\tEVENT")
	for _, e := range trace.Events {
		fmt.Fprintf(w, "%.3fs\t%s\t%s\t%s\n", e.Time, e.Menu, e.Item, e.Event)
	}
	w.Flush()
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tFRAMES\tDT\tPRESET\tSELECTIONS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%s\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Dt,
			run.Preset,
			run.Selections,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(trace.Samples))
	printTrace(trace)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, trace)
}
