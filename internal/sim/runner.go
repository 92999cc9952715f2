// Package sim implements the trial driver: it runs the game engine many
// times over, collects timing, and aggregates results across workers.
package sim

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/leonmatthews/ladders/internal/config"
	"github.com/leonmatthews/ladders/internal/game/board"
	"github.com/leonmatthews/ladders/internal/game/dice"
	"github.com/leonmatthews/ladders/internal/game/engine"
)

// Runner drives repeated games over one board.
//
// Each worker owns an independent dice.Source produced by NewSource;
// sharing one generator across workers would race on its internal state.
type Runner struct {
	// Board is the fixed board every game is played on.
	Board *board.Board
	// NewSource yields an independent Source per worker.
	NewSource func() dice.Source
	// Workers is the fan-out width. 1 runs everything inline on the
	// calling goroutine.
	Workers int
	// PerGame selects per-game timing samples instead of one whole-batch
	// sample per worker.
	PerGame bool
	// CollectTraces records the full move history of the shortest and
	// longest games. Costs an allocation per game; off for throughput runs.
	CollectTraces bool
	// Logger receives progress events. Must be non-nil; use zap.NewNop to
	// discard.
	Logger *zap.Logger
}

// NewRunner builds a Runner from configuration.
//
// Precondition: b, newSource, and logger must be non-nil; cfg must have
// passed config validation.
func NewRunner(b *board.Board, newSource func() dice.Source, cfg config.SimulationConfig, logger *zap.Logger) *Runner {
	if b == nil || newSource == nil || logger == nil {
		panic("sim: NewRunner requires a non-nil board, source factory, and logger")
	}
	return &Runner{
		Board:     b,
		NewSource: newSource,
		Workers:   cfg.Workers,
		PerGame:   cfg.Timing == "per-game",
		Logger:    logger,
	}
}

// RunCount plays n games and returns the aggregated result.
//
// n <= 0 yields the defined empty result, not an error. A started batch
// always runs to completion; ctx is only consulted before work begins.
//
// Postcondition: result.Games == n for n >= 0; result.Samples is non-empty
// whenever n > 0.
func (r *Runner) RunCount(ctx context.Context, n int) Result {
	if n <= 0 || ctx.Err() != nil {
		return emptyResult()
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	start := time.Now()

	var result Result
	if workers == 1 {
		result = r.runWorker(n, r.NewSource())
	} else {
		// Spread the remainder over the first n%workers workers.
		share := n / workers
		extra := n % workers

		results := make([]Result, workers)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			count := share
			if w < extra {
				count++
			}
			src := r.NewSource()
			wg.Add(1)
			go func(w, count int, src dice.Source) {
				defer wg.Done()
				results[w] = r.runWorker(count, src)
			}(w, count, src)
		}
		wg.Wait()

		result = emptyResult()
		for _, res := range results {
			result = result.Add(res)
		}
	}

	result.Wall = time.Since(start)
	r.Logger.Debug("batch complete",
		zap.Int("games", result.Games),
		zap.Int("workers", workers),
		zap.Duration("wall", result.Wall),
		zap.Duration("measured", result.Elapsed),
	)
	return result
}

// RunFor keeps playing until at least budget wall-clock time has elapsed,
// growing the game total along the 1, 2, 5, 10, 20, 50... series so the
// final count is a round number. Cancelling ctx stops the run at the next
// batch boundary.
func (r *Runner) RunFor(ctx context.Context, budget time.Duration) Result {
	const minimum = 100

	start := time.Now()
	next := currencySeries(minimum)
	result := emptyResult()

	for {
		total := next()
		count := total - result.Games

		batch := r.RunCount(ctx, count)
		wall := batch.Wall
		result = result.Add(batch)
		result.Wall = time.Since(start)

		r.Logger.Debug("timed run extended",
			zap.Int("total_games", result.Games),
			zap.Duration("batch_wall", wall),
			zap.Duration("elapsed", result.Wall),
		)

		if result.Wall > budget || ctx.Err() != nil {
			return result
		}
	}
}

// RunTrace plays a single game with full move history, independent of the
// measurement configuration.
func (r *Runner) RunTrace(src dice.Source) []engine.Move {
	return engine.PlayTrace(r.Board, src)
}

// runWorker plays count games on one goroutine with its own source.
func (r *Runner) runWorker(count int, src dice.Source) Result {
	res := emptyResult()
	res.Games = count

	record := func(turns int, moves []engine.Move) {
		res.Counts[turns]++
		if moves == nil {
			return
		}
		if res.Shortest == nil || turns < len(res.Shortest) {
			res.Shortest = moves
		}
		if turns > len(res.Longest) {
			res.Longest = moves
		}
	}

	play := func() (int, []engine.Move) {
		if r.CollectTraces {
			moves := engine.PlayTrace(r.Board, src)
			return len(moves), moves
		}
		return engine.Play(r.Board, src), nil
	}

	if r.PerGame {
		res.Samples = make([]time.Duration, 0, count)
		for i := 0; i < count; i++ {
			gameStart := time.Now()
			turns, moves := play()
			d := time.Since(gameStart)
			res.Samples = append(res.Samples, d)
			res.Elapsed += d
			record(turns, moves)
		}
		return res
	}

	batchStart := time.Now()
	for i := 0; i < count; i++ {
		turns, moves := play()
		record(turns, moves)
	}
	elapsed := time.Since(batchStart)
	res.Elapsed = elapsed
	res.Samples = []time.Duration{elapsed}
	return res
}

// currencySeries yields successive values of the readable, roughly
// exponential 1, 2, 5, 10, 20, 50... series, starting with the first value
// >= start.
func currencySeries(start int) func() int {
	steps := [...]int{1, 2, 5}
	multiplier := 1
	idx := 0
	return func() int {
		for {
			v := steps[idx] * multiplier
			idx++
			if idx == len(steps) {
				idx = 0
				multiplier *= 10
			}
			if v >= start {
				return v
			}
		}
	}
}
