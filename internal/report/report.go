// Package report renders benchmark results for humans and for tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/leonmatthews/ladders/internal/game/engine"
	"github.com/leonmatthews/ladders/internal/sim"
	"github.com/leonmatthews/ladders/internal/stats"
)

// LengthCount is one histogram bucket: how many games took Length turns.
type LengthCount struct {
	Length int `json:"length"`
	Games  int `json:"games"`
}

// Document is the machine-readable form of a benchmark run, stable enough
// to feed plotting tools.
type Document struct {
	RunID          string        `json:"run_id"`
	GeneratedAt    time.Time     `json:"generated_at"`
	Games          int           `json:"games"`
	WallSeconds    float64       `json:"wall_seconds"`
	CPUSeconds     float64       `json:"cpu_seconds"`
	Rate           float64       `json:"rate"`
	TimingSamples  int           `json:"timing_samples"`
	MeanSeconds    float64       `json:"mean_seconds"`
	StdDevSeconds  float64       `json:"stddev_seconds"`
	Counts         []LengthCount `json:"counts"`
	ShortestLength int           `json:"shortest_length"`
	LongestLength  int           `json:"longest_length"`
	MedianLength   int           `json:"median_length"`
	Shortest       []engine.Move `json:"shortest,omitempty"`
	Longest        []engine.Move `json:"longest,omitempty"`
}

// NewDocument assembles a Document from a result and its timing summary.
// Each call stamps a fresh run ID.
func NewDocument(res sim.Result, sum stats.Summary) Document {
	counts := make([]LengthCount, 0, len(res.Counts))
	for length, games := range res.Counts {
		counts = append(counts, LengthCount{Length: length, Games: games})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Length < counts[j].Length })

	shortest, longest := lengthExtremes(res.Counts)
	median, _ := stats.MultisetMedian(res.Counts)

	return Document{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Games:          res.Games,
		WallSeconds:    res.Wall.Seconds(),
		CPUSeconds:     res.Elapsed.Seconds(),
		Rate:           res.Rate(),
		TimingSamples:  sum.Count,
		MeanSeconds:    sum.Mean.Seconds(),
		StdDevSeconds:  sum.StdDev.Seconds(),
		Counts:         counts,
		ShortestLength: shortest,
		LongestLength:  longest,
		MedianLength:   median,
		Shortest:       res.Shortest,
		Longest:        res.Longest,
	}
}

// WriteJSON writes doc to w as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteSummary writes the human-readable report lines to w. hasTiming is
// false when no timing samples were collected (zero trials), in which case
// an explicit "no timing data" line is printed instead of statistics.
func WriteSummary(w io.Writer, res sim.Result, sum stats.Summary, hasTiming bool) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Played %d games in %.2f seconds (%.2fs CPU) = %.0f games per second\n",
		res.Games, res.Wall.Seconds(), res.Elapsed.Seconds(), res.Rate())

	if !hasTiming {
		fmt.Fprintln(w, "No timing data collected.")
		return
	}
	p.Fprintf(w, "Timing over %d samples: mean %v, stddev %v\n",
		sum.Count, sum.Mean.Round(time.Microsecond), sum.StdDev.Round(time.Microsecond))

	if median, ok := stats.MultisetMedian(res.Counts); ok {
		shortest, longest := lengthExtremes(res.Counts)
		p.Fprintf(w, "The shortest game took %d moves, the longest %d, while the median was %d.\n",
			shortest, longest, median)
	}
}

// lengthExtremes returns the smallest and largest keys of the histogram,
// zeros when it is empty. Zero is a safe empty sentinel only because no
// game can finish in zero turns, so 0 is never a real histogram key.
func lengthExtremes(counts map[int]int) (shortest, longest int) {
	for length, games := range counts {
		if games == 0 {
			continue
		}
		if shortest == 0 || length < shortest {
			shortest = length
		}
		if length > longest {
			longest = length
		}
	}
	return shortest, longest
}
