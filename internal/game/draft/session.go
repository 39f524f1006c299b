package draft

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/catalog"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

// Options are the session-wide draft settings, fixed before any team exists.
type Options struct {
	// TeamSize is the number of heroes each team drafts: 3 or 4.
	TeamSize int
	// AllowSpecial keeps catalog.SpecialClass in the pool when true.
	AllowSpecial bool
}

// Pick records one successful draft.
type Pick struct {
	Round int
	Team  string
	Hero  string
}

// Session owns the state shared by both teams of one draft: the roster loader
// and its catalog, the roller, and the options.
type Session struct {
	id     uuid.UUID
	opts   Options
	loader *catalog.Loader
	roller *dice.Roller
	logger *zap.Logger
}

// NewSession validates opts and prepares a session over loader.
//
// Precondition: loader, roller, and logger must be non-nil.
// Postcondition: returns an error wrapping ErrInvalidConfiguration when
// opts.TeamSize is not 3 or 4. When opts.AllowSpecial is false the loader is
// told to exclude the special class before any team is built.
func NewSession(loader *catalog.Loader, roller *dice.Roller, opts Options, logger *zap.Logger) (*Session, error) {
	if loader == nil || roller == nil || logger == nil {
		panic("draft: NewSession precondition violated: loader, roller, and logger must be non-nil")
	}
	if err := ValidateTeamSize(opts.TeamSize); err != nil {
		return nil, err
	}
	if !opts.AllowSpecial {
		loader.ExcludeSpecialClass()
	}
	id := uuid.New()
	return &Session{
		id:     id,
		opts:   opts,
		loader: loader,
		roller: roller,
		logger: logger.With(zap.String("session_id", id.String())),
	}, nil
}

// ID returns the session identifier used in log output.
func (s *Session) ID() uuid.UUID { return s.id }

// Options returns the session options.
func (s *Session) Options() Options { return s.opts }

// NewTeam builds a team named name, loading the roster on first use.
//
// Postcondition: the team's eligible classes never include the special class
// when the session disallows it.
func (s *Session) NewTeam(name string) (*Team, error) {
	pool, err := s.loader.EnsureLoaded()
	if err != nil {
		return nil, fmt.Errorf("loading hero catalog: %w", err)
	}
	if !s.opts.AllowSpecial {
		pool.RemoveClass(catalog.SpecialClass)
	}
	t := NewTeam(name, s.opts.TeamSize, pool, s.roller)
	s.logger.Debug("team created",
		zap.String("team", t.Name()),
		zap.Int("roll", t.Roll()),
		zap.Strings("classes", t.EligibleClasses()),
		zap.Bool("special_excluded", s.loader.SpecialExcluded()),
	)
	return t, nil
}

// ResolveOrder rerolls both teams until their rolls differ, calling onTie (if
// non-nil) before each reroll, and returns them highest roll first.
//
// Precondition: a and b must be non-nil.
// Postcondition: first.Roll() > second.Roll().
func ResolveOrder(a, b *Team, onTie func(a, b *Team)) (first, second *Team) {
	for a.Tied(b) {
		if onTie != nil {
			onTie(a, b)
		}
		a.Reroll()
		b.Reroll()
	}
	if a.Less(b) {
		return b, a
	}
	return a, b
}

// Run drafts TeamSize rounds; in each round first picks and then second picks.
//
// A team whose eligible classes are all empty is skipped for that pick so the
// other team can keep drafting from a small roster; the skip is logged at warn.
//
// Postcondition: returns every successful pick in order. Any error other than
// ErrDraftExhausted aborts the draft and is returned with the picks made so far.
func (s *Session) Run(first, second *Team) ([]Pick, error) {
	var picks []Pick
	for round := 1; round <= s.opts.TeamSize; round++ {
		for _, t := range []*Team{first, second} {
			hero, err := t.ChooseHero()
			if errors.Is(err, ErrDraftExhausted) {
				s.logger.Warn("team skipped: no eligible hero remains",
					zap.String("team", t.Name()),
					zap.Int("round", round),
				)
				continue
			}
			if err != nil {
				return picks, fmt.Errorf("round %d: %w", round, err)
			}
			s.logger.Debug("hero drafted",
				zap.Int("round", round),
				zap.String("team", t.Name()),
				zap.String("hero", hero),
			)
			picks = append(picks, Pick{Round: round, Team: t.Name(), Hero: hero})
		}
	}
	s.logger.Info("draft complete",
		zap.Int("picks", len(picks)),
		zap.String("first", first.Name()),
		zap.Strings("first_heroes", first.Heroes()),
		zap.String("second", second.Name()),
		zap.Strings("second_heroes", second.Heroes()),
	)
	return picks, nil
}
