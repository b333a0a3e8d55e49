package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

var log = logrus.New()

// Each frame advances the clock by one gravity interval so every frame steps once.
const (
	gravity    = 10 * time.Millisecond
	sampleRate = 16
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	variant := flag.String("variant", "colour", "Game variant: classic, colour or horizontal.")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of games played in parallel.")
	columns := flag.Int("columns", 0, "Board width in cells. 0 keeps the variant's width.")
	rows := flag.Int("rows", 0, "Board height in cells. 0 keeps the variant's height.")
	inputRate := flag.Float64("input-rate", 0.5, "Chance of a random input on each frame.")
	seed := flag.Uint64("seed", 1, "Base seed. Worker n plays with seed+n.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := board.Variant(*variant)
	if err != nil {
		log.WithError(err).Fatal("Unknown variant")
	}
	if *columns > 0 || *rows > 0 {
		cfg = cfg.Resize(orDefault(*columns, cfg.Columns), orDefault(*rows, cfg.Rows))
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid board configuration")
	}
	if *workers < 1 {
		log.WithField("workers", *workers).Fatal("Need at least one worker")
	}

	report := &Report{
		Duration:       *duration,
		Variant:        *variant,
		Columns:        cfg.Columns,
		Rows:           cfg.Rows,
		Clearing:       cfg.Clearing.Name(),
		Workers:        *workers,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.WithFields(logrus.Fields{
		"variant":  *variant,
		"workers":  *workers,
		"duration": *duration,
	}).Info("Starting soak run")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	results := make([]workerResult, *workers)
	g, ctx := errgroup.WithContext(ctx)
	startTime := time.Now()
	for i := range *workers {
		wcfg := cfg
		wcfg.Rand = rand.New(rand.NewPCG(*seed+uint64(i), uint64(i)))
		g.Go(func() error {
			res, err := play(ctx, wcfg, rand.New(rand.NewPCG(*seed, uint64(i)+1000)), *inputRate)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("Soak run failed")
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	for _, res := range results {
		report.add(res)
	}
	report.finalize()

	log.WithFields(logrus.Fields{
		"games":  report.Games,
		"frames": report.Frames,
	}).Info("Soak run finished")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.WithError(err).Fatal("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

type gameResult struct {
	score int
	stats board.Stats
}

type workerResult struct {
	frames    int64
	games     []gameResult
	frameTime []time.Duration
}

// randomInputSystem queues a uniformly chosen input with the given probability.
type randomInputSystem struct {
	rng  *rand.Rand
	rate float64
}

func (s *randomInputSystem) Execute(frame *loop.Frame) {
	if s.rng.Float64() >= s.rate {
		return
	}
	inputs := board.Inputs()
	frame.Commands.Input(inputs[s.rng.IntN(len(inputs))])
}

// restartSystem records every finished game and starts the next one.
type restartSystem struct {
	games []gameResult
}

func (s *restartSystem) Execute(frame *loop.Frame) {
	engine := frame.Session.Engine()
	if !engine.Ended() {
		return
	}
	s.games = append(s.games, gameResult{score: engine.Score(), stats: engine.Stats()})
	frame.Commands.Restart()
}

// play runs one session until ctx is done. The game in progress when time runs out is
// not counted.
func play(ctx context.Context, cfg board.Config, rng *rand.Rand, inputRate float64) (workerResult, error) {
	var res workerResult

	session, err := loop.NewSession(cfg)
	if err != nil {
		return res, err
	}

	restarts := &restartSystem{}
	scheduler := loop.NewScheduler(session)
	scheduler.Register(&randomInputSystem{rng: rng, rate: inputRate})
	scheduler.Register(&loop.GravitySystem{Interval: gravity})
	scheduler.Register(restarts)

	dt := gravity.Seconds()
	for ctx.Err() == nil {
		start := time.Now()
		if err := scheduler.Once(dt); err != nil {
			return res, err
		}
		if res.frames%sampleRate == 0 {
			res.frameTime = append(res.frameTime, time.Since(start))
		}
		res.frames++
	}

	res.games = restarts.games
	return res, nil
}
