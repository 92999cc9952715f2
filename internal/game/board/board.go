// Package board provides the immutable Snakes-and-Ladders board: a fixed
// mapping from square to destination square plus the finish line.
package board

import "fmt"

// Board maps each square to the square actually landed on after applying
// any snake or ladder at that position. Immutable after construction.
//
// Invariant: dest[i] is a valid square for every i; square 0 and the finish
// square map to themselves; no chain of jumps cycles.
type Board struct {
	finish int
	dest   []int
}

// standardJumps is the classic 100-square layout the benchmark measures:
// nine ladders and ten snakes.
var standardJumps = map[int]int{
	// Ladders
	1:  38,
	4:  14,
	9:  31,
	21: 42,
	28: 84,
	36: 44,
	51: 67,
	71: 91,
	80: 100,

	// Snakes
	98: 78,
	95: 75,
	93: 73,
	87: 24,
	64: 60,
	62: 19,
	56: 53,
	49: 11,
	48: 26,
	16: 6,
}

var standard = MustNew(100, standardJumps)

// Standard returns the fixed 100-square board. The same instance is shared
// by all callers; Board is immutable so this is safe.
func Standard() *Board {
	return standard
}

// New builds a board with the given finish square and jump table, validating
// every invariant. A board that fails validation is a configuration defect:
// the caller must refuse to run.
//
// Precondition: finish >= 1.
// Postcondition: Returns a board whose Resolve is total over [0, finish],
// or an error naming the violated invariant.
func New(finish int, jumps map[int]int) (*Board, error) {
	if finish < 1 {
		return nil, fmt.Errorf("board: finish must be >= 1, got %d", finish)
	}

	dest := make([]int, finish+1)
	for i := range dest {
		dest[i] = i
	}
	for from, to := range jumps {
		if from <= 0 || from >= finish {
			return nil, fmt.Errorf("board: jump source %d outside (0, %d)", from, finish)
		}
		if to < 0 || to > finish {
			return nil, fmt.Errorf("board: jump %d -> %d lands outside [0, %d]", from, to, finish)
		}
		if to == from {
			return nil, fmt.Errorf("board: jump %d -> %d is a self-cycle", from, to)
		}
		dest[from] = to
	}

	// Reject jump cycles: following destinations from any square must reach
	// a fixed point within finish+1 hops.
	for start := range dest {
		sq := start
		for hops := 0; dest[sq] != sq; hops++ {
			if hops > finish {
				return nil, fmt.Errorf("board: jump chain starting at %d cycles", start)
			}
			sq = dest[sq]
		}
	}

	return &Board{finish: finish, dest: dest}, nil
}

// MustNew builds a board and panics on an invalid layout. Used for the
// build-time standard board, where a violation is unrecoverable.
func MustNew(finish int, jumps map[int]int) *Board {
	b, err := New(finish, jumps)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// Resolve returns the square landed on after applying any snake or ladder
// at square. Identity for plain squares. Pure.
//
// Precondition: 0 <= square <= Finish(). Out-of-range input is a
// programming error (the engine clamps before lookup) and panics.
func (b *Board) Resolve(square int) int {
	if square < 0 || square > b.finish {
		panic(fmt.Sprintf("board: Resolve(%d) out of range [0, %d]", square, b.finish))
	}
	return b.dest[square]
}

// Finish returns the finish-line square.
func (b *Board) Finish() int {
	return b.finish
}
