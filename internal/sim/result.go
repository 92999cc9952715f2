package sim

import (
	"time"

	"github.com/leonmatthews/ladders/internal/game/engine"
)

// Result aggregates the outcome of a batch of games.
type Result struct {
	// Games is the number of games played.
	Games int
	// Elapsed is the summed measurement time across workers (CPU time,
	// not wall clock, when Workers > 1).
	Elapsed time.Duration
	// Wall is the wall-clock duration of the run. Set by the Runner on the
	// final merged result; zero on intermediate worker results.
	Wall time.Duration
	// Samples holds the recorded timing samples: one per batch or one per
	// game, depending on the configured granularity. Never mutated after
	// recording.
	Samples []time.Duration
	// Counts is the game-length histogram: turns taken -> number of games.
	Counts map[int]int
	// Shortest and Longest hold full move traces of the extreme games.
	// Populated only when trace collection is enabled.
	Shortest []engine.Move
	Longest  []engine.Move
}

// emptyResult returns the defined zero-trial result.
func emptyResult() Result {
	return Result{Counts: make(map[int]int)}
}

// Add merges two results into a new one. The merge is commutative and
// associative, so worker results combine correctly regardless of
// completion order.
func (r Result) Add(other Result) Result {
	counts := make(map[int]int, len(r.Counts)+len(other.Counts))
	for k, v := range r.Counts {
		counts[k] += v
	}
	for k, v := range other.Counts {
		counts[k] += v
	}

	samples := make([]time.Duration, 0, len(r.Samples)+len(other.Samples))
	samples = append(samples, r.Samples...)
	samples = append(samples, other.Samples...)

	return Result{
		Games:    r.Games + other.Games,
		Elapsed:  r.Elapsed + other.Elapsed,
		Samples:  samples,
		Counts:   counts,
		Shortest: shorterTrace(r.Shortest, other.Shortest),
		Longest:  longerTrace(r.Longest, other.Longest),
	}
}

// Rate returns games per second of wall-clock time, or per measured time
// when no wall-clock duration was recorded. Zero when nothing ran.
func (r Result) Rate() float64 {
	d := r.Wall
	if d == 0 {
		d = r.Elapsed
	}
	if d == 0 {
		return 0
	}
	return float64(r.Games) / d.Seconds()
}

// shorterTrace picks the shorter of two traces, ignoring empty ones.
func shorterTrace(a, b []engine.Move) []engine.Move {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	case len(a) <= len(b):
		return a
	default:
		return b
	}
}

func longerTrace(a, b []engine.Move) []engine.Move {
	if len(a) >= len(b) {
		return a
	}
	return b
}
