package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/leonmatthews/ladders/internal/game/board"
)

func TestStandard(t *testing.T) {
	b := board.Standard()
	assert.Equal(t, 100, b.Finish())

	// A ladder, a snake, and a plain square.
	assert.Equal(t, 38, b.Resolve(1))
	assert.Equal(t, 78, b.Resolve(98))
	assert.Equal(t, 50, b.Resolve(50))

	// Start and finish are never jump sources.
	assert.Equal(t, 0, b.Resolve(0))
	assert.Equal(t, 100, b.Resolve(100))
}

// TestStandard_Idempotent verifies resolve(x) == x for every non-jump
// square, and that resolve(resolve(x)) is well-defined everywhere.
func TestStandard_Idempotent(t *testing.T) {
	b := board.Standard()
	for sq := 0; sq <= b.Finish(); sq++ {
		once := b.Resolve(sq)
		assert.Equal(t, once, b.Resolve(once),
			"square %d resolves to %d, which must be a fixed point", sq, once)
	}
}

func TestNew_CustomBoard(t *testing.T) {
	b, err := board.New(20, map[int]int{3: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, b.Resolve(3))
	assert.Equal(t, 7, b.Resolve(7))
}

func TestNew_RejectsBadFinish(t *testing.T) {
	_, err := board.New(0, nil)
	assert.Error(t, err)
}

func TestNew_RejectsOutOfRangeDestination(t *testing.T) {
	_, err := board.New(20, map[int]int{5: 21})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside")
}

func TestNew_RejectsJumpFromStartOrFinish(t *testing.T) {
	_, err := board.New(20, map[int]int{0: 5})
	assert.Error(t, err, "square 0 must never be a jump source")

	_, err = board.New(20, map[int]int{20: 5})
	assert.Error(t, err, "the finish square must never be a jump source")
}

func TestNew_RejectsSelfCycle(t *testing.T) {
	_, err := board.New(20, map[int]int{5: 5})
	assert.Error(t, err)
}

func TestNew_RejectsTwoSquareCycle(t *testing.T) {
	_, err := board.New(20, map[int]int{3: 7, 7: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycles")
}

func TestNew_AllowsAcyclicChain(t *testing.T) {
	// 3 -> 7 -> 12 is a chain, not a cycle.
	b, err := board.New(20, map[int]int{3: 7, 7: 12})
	require.NoError(t, err)
	// Resolve applies a single jump; landing on 3 leaves you on 7.
	assert.Equal(t, 7, b.Resolve(3))
	assert.Equal(t, 12, b.Resolve(7))
}

func TestMustNew_PanicsOnInvalidLayout(t *testing.T) {
	assert.Panics(t, func() { board.MustNew(10, map[int]int{2: 99}) })
}

func TestResolve_PanicsOutOfRange(t *testing.T) {
	b := board.Standard()
	assert.Panics(t, func() { b.Resolve(-1) })
	assert.Panics(t, func() { b.Resolve(101) })
}

// TestNew_Property builds random acyclic jump tables and checks every
// resolved destination stays on the board.
func TestNew_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		finish := rapid.IntRange(5, 200).Draw(rt, "finish")

		// Forward-only jumps cannot cycle.
		jumps := make(map[int]int)
		n := rapid.IntRange(0, 10).Draw(rt, "jumps")
		for i := 0; i < n; i++ {
			from := rapid.IntRange(1, finish-1).Draw(rt, "from")
			to := rapid.IntRange(from+1, finish).Draw(rt, "to")
			jumps[from] = to
		}

		b, err := board.New(finish, jumps)
		require.NoError(rt, err)
		for sq := 0; sq <= finish; sq++ {
			dst := b.Resolve(sq)
			assert.GreaterOrEqual(rt, dst, 0)
			assert.LessOrEqual(rt, dst, finish)
		}
	})
}
