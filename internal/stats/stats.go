// Package stats computes the summary statistics the benchmark reports.
package stats

import (
	"math"
	"sort"
	"time"
)

// Summary holds timing statistics over a set of duration samples.
type Summary struct {
	// Count is the number of samples summarized.
	Count int
	// Mean is the arithmetic mean of the samples.
	Mean time.Duration
	// StdDev is the population standard deviation of the samples.
	StdDev time.Duration
}

// Summarize computes mean and standard deviation over samples in a single
// sum/sum-of-squares pass. The reduction is commutative, so it gives the
// same answer however worker results were ordered.
//
// Postcondition: ok is false, and the Summary zero, when samples is empty
// ("no data" rather than a divide-by-zero). A single sample yields
// Mean == that sample and StdDev == 0.
func Summarize(samples []time.Duration) (Summary, bool) {
	n := len(samples)
	if n == 0 {
		return Summary{}, false
	}

	var sum, sumSq float64
	for _, s := range samples {
		v := float64(s)
		sum += v
		sumSq += v * v
	}

	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		// Floating-point cancellation on near-identical samples.
		variance = 0
	}

	return Summary{
		Count:  n,
		Mean:   time.Duration(mean),
		StdDev: time.Duration(math.Sqrt(variance)),
	}, true
}

// MultisetMedian returns the high median of a histogram whose keys are
// values and whose entries are occurrence counts. "High" means the value
// returned is always a member of the multiset, even for an even total.
//
// Postcondition: ok is false when the histogram holds no occurrences.
func MultisetMedian(counts map[int]int) (int, bool) {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, false
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	// Position of the high median, counting from one.
	pos := (total + 2) / 2
	cum := 0
	for _, k := range keys {
		cum += counts[k]
		if cum >= pos {
			return k, true
		}
	}
	// Unreachable: cum reaches total >= pos.
	panic("stats: multiset median walk overran the histogram")
}
