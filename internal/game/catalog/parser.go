package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedLine is returned when a roster line is not "<hero>, <class>".
var ErrMalformedLine = errors.New("malformed roster line")

// delimiter separates the hero name from its class on a roster line.
const delimiter = ", "

// Parse reads a line-oriented roster in the "<hero name>, <class name>" format.
//
// The hero is everything before the first ", " and is kept verbatim. The class
// is the second ", "-separated field with surrounding whitespace stripped; any
// further fields are ignored. Blank lines are skipped.
//
// Postcondition: class order and per-class hero order match the input, or a
// non-nil error wrapping ErrMalformedLine names the offending line number.
func Parse(r io.Reader) (*Catalog, error) {
	c := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		hero, rest, ok := strings.Cut(line, delimiter)
		if !ok {
			return nil, fmt.Errorf("line %d: %w: missing %q delimiter", lineNo, ErrMalformedLine, delimiter)
		}
		class, _, _ := strings.Cut(rest, delimiter)
		class = strings.TrimSpace(class)
		if class == "" {
			return nil, fmt.Errorf("line %d: %w: empty class", lineNo, ErrMalformedLine)
		}
		c.Add(class, hero)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	return c, nil
}

// yamlRoster is the on-disk shape of a YAML roster file.
type yamlRoster struct {
	Classes []yamlClass `yaml:"classes"`
}

type yamlClass struct {
	Name   string   `yaml:"name"`
	Heroes []string `yaml:"heroes"`
}

// ParseYAML reads a YAML roster:
//
//	classes:
//	  - name: Warrior
//	    heroes: [Aria, Brutus]
//
// Postcondition: class order and hero order follow list order; a class listed
// twice is merged into its first position.
func ParseYAML(data []byte) (*Catalog, error) {
	var roster yamlRoster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parsing yaml roster: %w", err)
	}
	c := New()
	for i, cl := range roster.Classes {
		name := strings.TrimSpace(cl.Name)
		if name == "" {
			return nil, fmt.Errorf("class %d: %w: empty class", i+1, ErrMalformedLine)
		}
		for _, h := range cl.Heroes {
			c.Add(name, h)
		}
	}
	return c, nil
}
