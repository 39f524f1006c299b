// Package catalog holds the shared hero pool a draft consumes and the loader
// that builds it from a roster file.
package catalog

import "slices"

// SpecialClass is the class name that may be excluded from a session.
const SpecialClass = "Special"

// Catalog maps class names to the heroes still available in that class.
//
// Invariant: Classes() lists every class in first-seen order; a class whose
// heroes have all been drafted keeps its key and reports Remaining() == 0.
//
// Catalog is not safe for concurrent use. Teams of a session share it and take
// turns mutating it.
type Catalog struct {
	order  []string
	heroes map[string][]string
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{heroes: make(map[string][]string)}
}

// Add appends hero to class, registering class on first sight.
//
// Postcondition: Heroes(class) ends with hero.
func (c *Catalog) Add(class, hero string) {
	if _, ok := c.heroes[class]; !ok {
		c.order = append(c.order, class)
	}
	c.heroes[class] = append(c.heroes[class], hero)
}

// Classes returns a copy of the class names in first-seen order.
func (c *Catalog) Classes() []string {
	return slices.Clone(c.order)
}

// Has reports whether class is a key of the catalog.
func (c *Catalog) Has(class string) bool {
	_, ok := c.heroes[class]
	return ok
}

// Heroes returns a copy of the heroes still available in class.
func (c *Catalog) Heroes(class string) []string {
	return slices.Clone(c.heroes[class])
}

// Remaining returns how many heroes are still available in class.
func (c *Catalog) Remaining(class string) int {
	return len(c.heroes[class])
}

// Total returns the number of available heroes across all classes.
func (c *Catalog) Total() int {
	n := 0
	for _, hs := range c.heroes {
		n += len(hs)
	}
	return n
}

// Remove deletes the first occurrence of hero from class.
//
// Postcondition: returns false and leaves the catalog untouched when hero is
// not available in class.
func (c *Catalog) Remove(class, hero string) bool {
	hs := c.heroes[class]
	i := slices.Index(hs, hero)
	if i < 0 {
		return false
	}
	c.heroes[class] = slices.Delete(hs, i, i+1)
	return true
}

// RemoveClass drops class and all of its heroes.
//
// Postcondition: Has(class) == false; returns whether class was present.
func (c *Catalog) RemoveClass(class string) bool {
	if _, ok := c.heroes[class]; !ok {
		return false
	}
	delete(c.heroes, class)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == class })
	return true
}

// HeroAt returns the i-th available hero of class.
//
// Precondition: 0 <= i < Remaining(class).
func (c *Catalog) HeroAt(class string, i int) string {
	return c.heroes[class][i]
}
