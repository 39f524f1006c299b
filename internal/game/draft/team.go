// Package draft implements the two-team hero draft: per-team rolls, weighted
// random hero selection against a shared catalog, and the alternating pick order.
package draft

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/cory-johannsen/arena/internal/game/catalog"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

// Team is one player's side of the draft.
//
// Invariant: len(Heroes()) <= size; a class leaves the eligible list when a hero
// is drafted from it and never comes back.
type Team struct {
	name    string
	roll    int
	size    int
	classes []string
	heroes  []string
	pool    *catalog.Catalog
	roller  *dice.Roller
}

// NewTeam builds a team against pool and rolls its initial d20.
//
// Precondition: pool and roller must be non-nil; size must pass ValidateTeamSize.
// Postcondition: 1 <= Roll() <= 20; EligibleClasses() equals pool.Classes() at
// call time; Heroes() is empty.
func NewTeam(name string, size int, pool *catalog.Catalog, roller *dice.Roller) *Team {
	if pool == nil {
		panic("draft: NewTeam precondition violated: pool must be non-nil")
	}
	if roller == nil {
		panic("draft: NewTeam precondition violated: roller must be non-nil")
	}
	return &Team{
		name:    name,
		roll:    roller.D20(),
		size:    size,
		classes: pool.Classes(),
		pool:    pool,
		roller:  roller,
	}
}

// Name returns the team's name.
func (t *Team) Name() string { return t.name }

// Roll returns the team's current d20 roll.
func (t *Team) Roll() int { return t.roll }

// Size returns the configured team size.
func (t *Team) Size() int { return t.size }

// Heroes returns a copy of the drafted heroes in pick order.
func (t *Team) Heroes() []string { return slices.Clone(t.heroes) }

// EligibleClasses returns a copy of the classes this team may still draft from.
func (t *Team) EligibleClasses() []string { return slices.Clone(t.classes) }

// Full reports whether the roster has reached the team size.
func (t *Team) Full() bool { return len(t.heroes) >= t.size }

// Reroll replaces the roll with a fresh d20. Nothing else changes.
//
// Postcondition: 1 <= Roll() <= 20.
func (t *Team) Reroll() int {
	t.roll = t.roller.D20()
	return t.roll
}

// ChooseHero drafts one random hero onto the team.
//
// A class is picked with probability proportional to the number of heroes it
// still has in the shared pool, then a hero is picked uniformly from that class.
// The hero leaves the pool and the class leaves this team's eligible list.
//
// Postcondition: on success the roster grows by one; on ErrTeamFull or
// ErrDraftExhausted neither the team nor the pool is modified.
func (t *Team) ChooseHero() (string, error) {
	if t.Full() {
		return "", fmt.Errorf("%s: %w", t.name, ErrTeamFull)
	}

	total := 0
	for _, class := range t.classes {
		total += t.pool.Remaining(class)
	}
	if total == 0 {
		return "", fmt.Errorf("%s: %w", t.name, ErrDraftExhausted)
	}

	class := t.pickClass(t.roller.Intn(total))
	hero := t.pool.HeroAt(class, t.roller.Intn(t.pool.Remaining(class)))

	t.heroes = append(t.heroes, hero)
	t.classes = slices.DeleteFunc(t.classes, func(c string) bool { return c == class })
	t.pool.Remove(class, hero)
	return hero, nil
}

// pickClass maps a draw in [0, total) onto the cumulative remaining-hero
// weights of the eligible classes. Classes with no heroes left have zero width
// and can never be selected.
func (t *Team) pickClass(draw int) string {
	for _, class := range t.classes {
		w := t.pool.Remaining(class)
		if draw < w {
			return class
		}
		draw -= w
	}
	panic("draft: pickClass draw exceeds total weight")
}

// Compare orders teams by roll alone.
//
// Postcondition: returns -1, 0, or +1 as t.Roll() is less than, equal to, or
// greater than other.Roll().
func (t *Team) Compare(other *Team) int {
	return cmp.Compare(t.roll, other.roll)
}

// Less reports whether t rolled lower than other.
func (t *Team) Less(other *Team) bool { return t.Compare(other) < 0 }

// Tied reports whether t and other hold the same roll.
func (t *Team) Tied(other *Team) bool { return t.Compare(other) == 0 }

// RollPhrase returns e.g. "Alice rolled a 12" or "Bob rolled an 8".
func (t *Team) RollPhrase() string {
	article := "a"
	switch t.roll {
	case 8, 11, 18:
		article = "an"
	}
	return fmt.Sprintf("%s rolled %s %d", t.name, article, t.roll)
}

// String renders the team name followed by its heroes, one per line.
func (t *Team) String() string {
	var b strings.Builder
	b.WriteString(t.name)
	b.WriteString("'s team:")
	for _, h := range t.heroes {
		b.WriteString("\n")
		b.WriteString(h)
	}
	return b.String()
}
