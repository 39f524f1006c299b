package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged die rolls.
// Every d20 roll is logged at debug level. Roller is itself a Source, so it can
// be handed to anything that only needs uniform draws.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil {
		panic("dice: NewLoggedRoller precondition violated: src must be non-nil")
	}
	if logger == nil {
		panic("dice: NewLoggedRoller precondition violated: logger must be non-nil")
	}
	return &Roller{src: src, logger: logger}
}

// D20 rolls a twenty-sided die.
//
// Postcondition: 1 <= result <= 20.
func (r *Roller) D20() int {
	result := r.src.Intn(D20) + 1
	r.logger.Debug("dice roll",
		zap.String("expression", "d20"),
		zap.Int("total", result),
	)
	return result
}

// Intn delegates to the wrapped Source without logging.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}
