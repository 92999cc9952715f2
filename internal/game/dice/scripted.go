package dice

// ScriptedSource replays a fixed roll sequence. It makes the engine
// deterministic for regression tests and for replaying interesting games.
type ScriptedSource struct {
	rolls []int
	next  int
}

// NewScripted returns a Source that yields the given rolls in order.
//
// Precondition: every roll must be a valid face value for the board's die.
func NewScripted(rolls ...int) *ScriptedSource {
	return &ScriptedSource{rolls: rolls}
}

// Roll returns the next scripted value.
//
// Panics with "dice: scripted source exhausted" once the sequence runs out;
// a test that rolls past its script is a defective test.
func (s *ScriptedSource) Roll() int {
	if s.next >= len(s.rolls) {
		panic("dice: scripted source exhausted")
	}
	v := s.rolls[s.next]
	s.next++
	return v
}

// Remaining returns how many scripted rolls have not been consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.rolls) - s.next
}
