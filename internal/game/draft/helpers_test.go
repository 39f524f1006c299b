package draft_test

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/catalog"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

// scriptedSource replays vals in order, reducing each modulo n.
type scriptedSource struct {
	vals []int
	i    int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func scripted(vals ...int) *dice.Roller {
	return dice.NewLoggedRoller(&scriptedSource{vals: vals}, zap.NewNop())
}

func seeded(seed uint64) *dice.Roller {
	return dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop())
}

func newPool(pairs ...[2]string) *catalog.Catalog {
	c := catalog.New()
	for _, p := range pairs {
		c.Add(p[0], p[1])
	}
	return c
}

// bigPool returns five classes of three heroes each.
func bigPool() *catalog.Catalog {
	c := catalog.New()
	for _, class := range []string{"Warrior", "Mage", "Rogue", "Cleric", "Ranger"} {
		for _, n := range []string{"1", "2", "3"} {
			c.Add(class, class+n)
		}
	}
	return c
}

func heroOwners(c *catalog.Catalog) map[string]string {
	owners := map[string]string{}
	for _, class := range c.Classes() {
		for _, h := range c.Heroes(class) {
			owners[h] = class
		}
	}
	return owners
}
