// Package dice provides the randomness capability that drives the game
// engine's hot loop.
//
// A Source is constructed once per batch (or once per worker) and passed by
// reference into the loop. Reconstructing a generator per roll or per game
// is the single biggest throughput regression the tuning history of this
// benchmark found, so every constructor here returns a long-lived instance
// and nothing in this package re-seeds on the roll path.
package dice

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/leonmatthews/ladders/internal/config"
)

// Source produces die face values.
//
// Implementations are NOT required to be safe for concurrent use: each
// worker owns exactly one Source.
type Source interface {
	// Roll returns the next die face value, uniformly distributed in
	// [1, sides]. It never fails; entropy exhaustion is handled (or
	// treated as fatal) by the implementation.
	Roll() int
}

// NewFactory returns a constructor for the strategy named by cfg. Each call
// to the returned function yields an independent Source, so the trial driver
// can hand one to every worker.
//
// The factory itself is stateful (successive calls yield decorrelated
// streams) and is not safe for concurrent use: call it from a single
// goroutine and distribute only the Sources it returns.
//
// Precondition: cfg.Sides >= 2.
// Postcondition: Returns a non-nil factory or an error for an unknown strategy.
func NewFactory(cfg config.DiceConfig) (func() Source, error) {
	if cfg.Sides < 2 {
		return nil, fmt.Errorf("dice: sides must be >= 2, got %d", cfg.Sides)
	}

	switch cfg.Source {
	case "pcg":
		// A strong seed feeds the fast generator; per-worker streams are
		// decorrelated by a Weyl increment on the seed.
		seed := cfg.Seed
		if seed == 0 {
			seed = strongSeed()
		}
		var n uint64
		return func() Source {
			s := NewPCG(seed+n*0x9e3779b97f4a7c15, cfg.Sides)
			n++
			return s
		}, nil
	case "chacha":
		sides := cfg.Sides
		return func() Source { return NewChaCha(sides) }, nil
	case "crypto":
		sides := cfg.Sides
		return func() Source { return NewCryptoSource(sides) }, nil
	default:
		return nil, fmt.Errorf("dice: unknown source strategy %q", cfg.Source)
	}
}

// FromConfig builds a single Source for the strategy named by cfg.
//
// Postcondition: Returns a non-nil Source or an error for an unknown strategy.
func FromConfig(cfg config.DiceConfig) (Source, error) {
	factory, err := NewFactory(cfg)
	if err != nil {
		return nil, err
	}
	return factory(), nil
}

// strongSeed draws a 64-bit seed from the operating system entropy source.
//
// Panics on entropy failure; there is no sensible way to benchmark without
// randomness.
func strongSeed() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		panic("dice: reading seed from crypto/rand: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
