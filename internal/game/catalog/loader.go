package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a roster path does not reference an existing file.
var ErrNotFound = errors.New("roster file not found")

// ErrPathNotConfigured is returned when Load is called before SetSourcePath.
var ErrPathNotConfigured = errors.New("roster path not configured")

// Loader builds a session's Catalog from a roster file.
//
// Lifecycle: SetSourcePath, optionally ExcludeSpecialClass, then Load or
// EnsureLoaded. The Catalog it returns is the single shared pool for the session.
type Loader struct {
	path           string
	excludeSpecial bool
	catalog        *Catalog
	logger         *zap.Logger
}

// NewLoader returns a Loader with no source path configured.
//
// Precondition: logger must be non-nil.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		panic("catalog: NewLoader precondition violated: logger must be non-nil")
	}
	return &Loader{logger: logger}
}

// SetSourcePath records path as the roster to load. No file is read.
//
// Postcondition: on error (wrapping ErrNotFound) the previously configured path
// is left unchanged.
func (l *Loader) SetSourcePath(path string) error {
	if err := checkFile(path); err != nil {
		return err
	}
	l.path = path
	return nil
}

// SourcePath returns the configured roster path, or "" if none is set.
func (l *Loader) SourcePath() string {
	return l.path
}

// ExcludeSpecialClass suppresses SpecialClass for the rest of the session.
// If the catalog is already loaded the class is removed immediately.
//
// Postcondition: idempotent; the loaded catalog, now or later, has no SpecialClass.
func (l *Loader) ExcludeSpecialClass() {
	l.excludeSpecial = true
	if l.catalog != nil && l.catalog.RemoveClass(SpecialClass) {
		l.logger.Info("excluded special class", zap.String("class", SpecialClass))
	}
}

// SpecialExcluded reports whether ExcludeSpecialClass has been called.
func (l *Loader) SpecialExcluded() bool {
	return l.excludeSpecial
}

// Load reads the configured roster and replaces the loader's catalog.
// Paths ending in .yaml or .yml are parsed as YAML rosters; anything else as
// "<hero>, <class>" lines.
//
// Postcondition: returns the new Catalog, or an error wrapping
// ErrPathNotConfigured, ErrNotFound, or ErrMalformedLine.
func (l *Loader) Load() (*Catalog, error) {
	if l.path == "" {
		return nil, ErrPathNotConfigured
	}
	if err := checkFile(l.path); err != nil {
		return nil, err
	}

	var (
		c   *Catalog
		err error
	)
	if isYAML(l.path) {
		c, err = loadYAML(l.path)
	} else {
		c, err = loadLines(l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", l.path, err)
	}

	if l.excludeSpecial {
		c.RemoveClass(SpecialClass)
	}
	l.catalog = c
	l.logger.Info("roster loaded",
		zap.String("path", l.path),
		zap.Int("classes", len(c.Classes())),
		zap.Int("heroes", c.Total()),
		zap.Bool("special_excluded", l.excludeSpecial),
	)
	return c, nil
}

// EnsureLoaded returns the loaded catalog, loading it on first use.
//
// Postcondition: the roster file is read at most once per Loader unless Load
// is called explicitly.
func (l *Loader) EnsureLoaded() (*Catalog, error) {
	if l.catalog != nil {
		return l.catalog, nil
	}
	return l.Load()
}

// Catalog returns the loaded catalog, or nil before the first successful load.
func (l *Loader) Catalog() *Catalog {
	return l.catalog
}

func loadLines(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func loadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}
	return nil
}
