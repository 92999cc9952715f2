package dice

import (
	"crypto/rand"
	"math/big"
)

// cryptoSource implements Source using crypto/rand. The slowest strategy
// by orders of magnitude; it exists as the baseline the fast generators
// are compared against.
//
// Invariant: all values produced are uniformly distributed in [1, sides].
type cryptoSource struct {
	sides *big.Int
}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Precondition: sides >= 2. Panics otherwise.
// Postcondition: Every value returned by Roll is in [1, sides].
func NewCryptoSource(sides int) Source {
	if sides < 2 {
		panic("dice: NewCryptoSource called with sides < 2")
	}
	return &cryptoSource{sides: big.NewInt(int64(sides))}
}

// Roll returns a cryptographically secure face value in [1, sides].
//
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Roll() int {
	val, err := rand.Int(rand.Reader, c.sides)
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64()) + 1
}
