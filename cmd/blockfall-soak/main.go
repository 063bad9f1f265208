package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/rules"
)

func main() {
	duration := pflag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	step := pflag.Duration("step", 16*time.Millisecond, "The simulated time between frames.")
	seed := pflag.Uint64("seed", 1, "Seed for the piece generator and the random input.")
	randomizer := pflag.String("randomizer", piece.RandomizerBag, "Piece randomizer (uniform or bag).")
	lineClear := pflag.String("line-clear", rules.LineClearBoundary, "Line clear rule (boundary or cascade).")
	pressRate := pflag.Float64("press-rate", 0.2, "Probability of a key press in each frame.")
	gcPauseMetrics := pflag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := pflag.String("log-level", "info", "Log level.")
	pflag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	report, err := soak(soakOptions{
		Duration:   *duration,
		Step:       *step,
		Seed:       *seed,
		Randomizer: *randomizer,
		LineClear:  *lineClear,
		PressRate:  *pressRate,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("soak failed", zap.Error(err))
	}
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

type soakOptions struct {
	Duration   time.Duration
	Step       time.Duration
	Seed       uint64
	Randomizer string
	LineClear  string
	PressRate  float64
	Logger     *zap.Logger
}

// soak plays headless games with random input until opts.Duration of wall
// time has passed.
func soak(opts soakOptions) (*Report, error) {
	gen, err := piece.NewGenerator(opts.Randomizer, opts.Seed)
	if err != nil {
		return nil, err
	}
	lineClear, err := rules.ParseLineClear(opts.LineClear)
	if err != nil {
		return nil, err
	}
	settings := game.DefaultSettings()
	settings.LineClear = lineClear

	t := &tally{}
	g := game.New(game.Options{
		Settings:  settings,
		Generator: gen,
		Observers: []game.Observer{t},
		Logger:    opts.Logger.Named("game"),
	})
	driver := &game.Driver{
		Game:  g,
		Input: newRandomInput(opts.Seed, opts.PressRate),
		Clock: game.FixedClock{Step: opts.Step},
	}

	report := &Report{
		Duration:   opts.Duration,
		Step:       opts.Step,
		Seed:       opts.Seed,
		Randomizer: opts.Randomizer,
		LineClear:  opts.LineClear,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	opts.Logger.Info("running soak", zap.Duration("duration", opts.Duration), zap.Uint64("seed", opts.Seed))
	ctx, cancel := context.WithTimeout(context.Background(), opts.Duration)
	defer cancel()

	startTime := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()
			if err := driver.Frame(); err != nil {
				return nil, err
			}
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Frames = int64(len(report.FrameTime.Samples))
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Tally = *t
	report.Systems = g.Stats().Systems
	opts.Logger.Info("soak finished", zap.Int64("frames", report.Frames), zap.Int("sessions", t.Sessions))
	return report, nil
}
