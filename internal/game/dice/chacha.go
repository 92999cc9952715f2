package dice

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
)

// chachaSource wraps a ChaCha8-backed math/rand/v2 generator with a
// range-restricted (rejection-sampled) extraction. This is the
// "gen_range"-style strategy: statistically unbiased, measurably slower
// than the raw-draw-modulo extraction of the PCG source.
type chachaSource struct {
	r     *rand.Rand
	sides int
}

// NewChaCha returns a Source backed by a freshly keyed ChaCha8 generator.
//
// Precondition: sides >= 2. Panics otherwise.
func NewChaCha(sides int) Source {
	if sides < 2 {
		panic("dice: NewChaCha called with sides < 2")
	}
	var key [32]byte
	if _, err := cryptorand.Read(key[:]); err != nil {
		panic("dice: keying chacha from crypto/rand: " + err.Error())
	}
	return &chachaSource{r: rand.New(rand.NewChaCha8(key)), sides: sides}
}

// Roll returns the next face value in [1, sides].
func (s *chachaSource) Roll() int {
	return s.r.IntN(s.sides) + 1
}
