package dice

import "go.uber.org/zap"

// TracingRoller wraps a Source and logs every roll at debug level. It is
// used by the verbose single-game mode, never by the hot loop.
type TracingRoller struct {
	src    Source
	logger *zap.Logger
	count  int
}

// NewTracingRoller creates a TracingRoller that rolls with src and logs
// each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewTracingRoller(src Source, logger *zap.Logger) *TracingRoller {
	if src == nil || logger == nil {
		panic("dice: NewTracingRoller requires a non-nil src and logger")
	}
	return &TracingRoller{src: src, logger: logger}
}

// Roll draws from the wrapped Source and logs the value.
func (t *TracingRoller) Roll() int {
	v := t.src.Roll()
	t.count++
	t.logger.Debug("dice roll",
		zap.Int("turn", t.count),
		zap.Int("face", v),
	)
	return v
}

// Count returns the number of rolls made so far.
func (t *TracingRoller) Count() int {
	return t.count
}
