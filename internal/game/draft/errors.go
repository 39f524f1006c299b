package draft

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a team size is outside {3, 4}.
	ErrInvalidConfiguration = errors.New("invalid draft configuration")
	// ErrDraftExhausted is returned by ChooseHero when none of the team's
	// eligible classes has a hero left. Callers sequencing picks should treat
	// it as a contract violation unless the roster is known to be small.
	ErrDraftExhausted = errors.New("no eligible hero remains")
	// ErrTeamFull is returned by ChooseHero when the roster is already at team size.
	ErrTeamFull = errors.New("team is full")
)

// Team sizes allowed by the PvP rules.
const (
	MinTeamSize = 3
	MaxTeamSize = 4
)

// ValidateTeamSize reports whether n is a legal team size.
//
// Postcondition: returns nil for 3 and 4, otherwise an error wrapping
// ErrInvalidConfiguration.
func ValidateTeamSize(n int) error {
	if n < MinTeamSize || n > MaxTeamSize {
		return fmt.Errorf("%w: team size must be %d or %d, got %d", ErrInvalidConfiguration, MinTeamSize, MaxTeamSize, n)
	}
	return nil
}
