package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/leonmatthews/ladders/internal/stats"
)

func TestSummarize_Empty(t *testing.T) {
	sum, ok := stats.Summarize(nil)
	assert.False(t, ok, "zero samples must report no data, not fail")
	assert.Equal(t, stats.Summary{}, sum)
}

func TestSummarize_SingleSample(t *testing.T) {
	sum, ok := stats.Summarize([]time.Duration{42 * time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, 1, sum.Count)
	assert.Equal(t, 42*time.Millisecond, sum.Mean)
	assert.Equal(t, time.Duration(0), sum.StdDev)
}

func TestSummarize_IdenticalSamples(t *testing.T) {
	samples := []time.Duration{time.Second, time.Second, time.Second}
	sum, ok := stats.Summarize(samples)
	require.True(t, ok)
	assert.Equal(t, time.Second, sum.Mean)
	assert.Equal(t, time.Duration(0), sum.StdDev)
}

func TestSummarize_KnownSpread(t *testing.T) {
	// Mean 2s, population stddev 1s.
	samples := []time.Duration{time.Second, 3 * time.Second}
	sum, ok := stats.Summarize(samples)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, sum.Mean)
	assert.InDelta(t, float64(time.Second), float64(sum.StdDev), float64(time.Millisecond))
}

// TestSummarize_Property checks the mean is bracketed by the extremes and
// the deviation is never negative, for arbitrary sample sets.
func TestSummarize_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.SliceOfN(rapid.Int64Range(1, int64(time.Minute)), 1, 200).Draw(rt, "samples")
		samples := make([]time.Duration, len(raw))
		lo, hi := time.Duration(raw[0]), time.Duration(raw[0])
		for i, v := range raw {
			d := time.Duration(v)
			samples[i] = d
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}

		sum, ok := stats.Summarize(samples)
		require.True(rt, ok)
		assert.Equal(rt, len(samples), sum.Count)
		assert.GreaterOrEqual(rt, sum.Mean, lo)
		assert.LessOrEqual(rt, sum.Mean, hi)
		assert.GreaterOrEqual(rt, sum.StdDev, time.Duration(0))
	})
}

func TestMultisetMedian_Empty(t *testing.T) {
	_, ok := stats.MultisetMedian(nil)
	assert.False(t, ok)

	_, ok = stats.MultisetMedian(map[int]int{10: 0})
	assert.False(t, ok)
}

func TestMultisetMedian_SingleValue(t *testing.T) {
	m, ok := stats.MultisetMedian(map[int]int{5: 3})
	require.True(t, ok)
	assert.Equal(t, 5, m)
}

func TestMultisetMedian_OddTotal(t *testing.T) {
	// Multiset {1, 2, 2, 3, 9}: median is 2.
	m, ok := stats.MultisetMedian(map[int]int{1: 1, 2: 2, 3: 1, 9: 1})
	require.True(t, ok)
	assert.Equal(t, 2, m)
}

func TestMultisetMedian_EvenTotalTakesHigh(t *testing.T) {
	// Multiset {1, 2, 3, 4}: the high median is 3, a member of the set.
	m, ok := stats.MultisetMedian(map[int]int{1: 1, 2: 1, 3: 1, 4: 1})
	require.True(t, ok)
	assert.Equal(t, 3, m)
}

// TestMultisetMedian_Property: the high median is always a key of the
// histogram and at least half the occurrences are <= it.
func TestMultisetMedian_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		counts := rapid.MapOfN(
			rapid.IntRange(1, 500),
			rapid.IntRange(1, 20),
			1, 50,
		).Draw(rt, "counts")

		m, ok := stats.MultisetMedian(counts)
		require.True(rt, ok)

		_, isKey := counts[m]
		assert.True(rt, isKey, "median %d is not a member of the multiset", m)

		total, atOrBelow := 0, 0
		for k, c := range counts {
			total += c
			if k <= m {
				atOrBelow += c
			}
		}
		assert.GreaterOrEqual(rt, atOrBelow*2, total,
			"fewer than half the occurrences are <= the median")
	})
}
