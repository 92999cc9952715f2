// Package main provides the ladders binary: a Snakes-and-Ladders
// throughput benchmark for comparing dice-rolling strategies.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/leonmatthews/ladders/internal/config"
	"github.com/leonmatthews/ladders/internal/game/board"
	"github.com/leonmatthews/ladders/internal/game/dice"
	"github.com/leonmatthews/ladders/internal/observability"
	"github.com/leonmatthews/ladders/internal/report"
	"github.com/leonmatthews/ladders/internal/sim"
	"github.com/leonmatthews/ladders/internal/stats"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; built-in defaults when empty")
	trials := flag.Int("n", 0, "number of games to play, overrides the config")
	seconds := flag.Int("s", 0, "play for at least this many seconds instead of a fixed count")
	workers := flag.Int("j", 0, "worker goroutines, each with its own dice source")
	source := flag.String("source", "", "dice source strategy: pcg, chacha, or crypto")
	seed := flag.Uint64("seed", 0, "seed for the pcg source; 0 seeds from crypto/rand")
	jsonOut := flag.Bool("json", false, "dump the full result to stdout as JSON")
	verbose := flag.Bool("verbose", false, "play one game logging every roll, then exit")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the file. flag.Visit reports only flags actually set,
	// so untouched settings keep their configured values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Simulation.Trials = *trials
			cfg.Simulation.Seconds = 0
		case "s":
			cfg.Simulation.Seconds = *seconds
		case "j":
			cfg.Simulation.Workers = *workers
		case "source":
			cfg.Dice.Source = *source
		case "seed":
			cfg.Dice.Seed = *seed
		case "json":
			cfg.Report.JSON = *jsonOut
		case "verbose":
			cfg.Report.Verbose = *verbose
		}
	})
	if cfg.Report.Verbose {
		// The traced rolls log at debug level.
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	factory, err := dice.NewFactory(cfg.Dice)
	if err != nil {
		logger.Fatal("building dice source", zap.Error(err))
	}

	brd := board.Standard()
	runner := sim.NewRunner(brd, factory, cfg.Simulation, logger)
	// The JSON document dumps the extreme games, so collect their traces
	// whenever it is requested.
	runner.CollectTraces = cfg.Report.JSON

	if cfg.Report.Verbose {
		traceGame(runner, factory(), logger)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting benchmark",
		zap.Int("trials", cfg.Simulation.Trials),
		zap.Int("seconds", cfg.Simulation.Seconds),
		zap.Int("workers", cfg.Simulation.Workers),
		zap.String("timing", cfg.Simulation.Timing),
		zap.String("source", cfg.Dice.Source),
		zap.Int("sides", cfg.Dice.Sides),
	)

	var result sim.Result
	if budget := cfg.Simulation.Budget(); budget > 0 {
		result = runner.RunFor(ctx, budget)
	} else {
		result = runner.RunCount(ctx, cfg.Simulation.Trials)
	}

	summary, hasTiming := stats.Summarize(result.Samples)
	logger.Info("benchmark complete",
		zap.Int("games", result.Games),
		zap.Duration("wall", result.Wall),
		zap.Duration("cpu", result.Elapsed),
		zap.Float64("rate", result.Rate()),
	)

	// Summary on stderr keeps stdout clean for the JSON document.
	report.WriteSummary(os.Stderr, result, summary, hasTiming)
	if cfg.Report.JSON {
		if err := report.WriteJSON(os.Stdout, report.NewDocument(result, summary)); err != nil {
			logger.Fatal("writing JSON report", zap.Error(err))
		}
	}
}

// traceGame plays a single game with every roll logged at debug level.
func traceGame(runner *sim.Runner, src dice.Source, logger *zap.Logger) {
	roller := dice.NewTracingRoller(src, logger)
	start := time.Now()
	moves := runner.RunTrace(roller)
	logger.Info("traced game finished",
		zap.Int("turns", len(moves)),
		zap.Int("final_square", moves[len(moves)-1].Square),
		zap.Duration("elapsed", time.Since(start)),
	)
	for i, m := range moves {
		logger.Debug("move",
			zap.Int("turn", i+1),
			zap.Int("roll", m.Roll),
			zap.Int("square", m.Square),
		)
	}
}
