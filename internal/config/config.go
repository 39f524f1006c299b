// Package config provides Viper-based configuration loading for the arena draft tool.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/arena/internal/game/draft"
)

// Special-class policies for DraftConfig.Special.
const (
	SpecialAsk = "ask"
	SpecialYes = "yes"
	SpecialNo  = "no"
)

// HeroesConfig locates the roster file.
type HeroesConfig struct {
	// File is the path to a "<hero>, <class>" roster or a YAML roster.
	File string `mapstructure:"file"`
}

// DraftConfig holds the session-wide draft settings.
type DraftConfig struct {
	// TeamSize is 3 or 4, or 0 to ask interactively.
	TeamSize int `mapstructure:"team_size"`
	// Special is "ask", "yes", or "no".
	Special string `mapstructure:"special"`
	// Seed fixes the random sequence when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

// AskTeamSize reports whether the team size must be prompted for.
func (d DraftConfig) AskTeamSize() bool { return d.TeamSize == 0 }

// AskSpecial reports whether special-class inclusion must be prompted for.
func (d DraftConfig) AskSpecial() bool { return d.Special == SpecialAsk }

// AllowSpecial reports whether the special class is fixed as included.
//
// Precondition: AskSpecial() is false.
func (d DraftConfig) AllowSpecial() bool { return d.Special == SpecialYes }

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Heroes  HeroesConfig  `mapstructure:"heroes"`
	Draft   DraftConfig   `mapstructure:"draft"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Heroes.File == "" {
		errs = append(errs, "heroes.file must not be empty")
	}
	if err := validateDraft(c.Draft); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDraft(d DraftConfig) error {
	var errs []string
	if !d.AskTeamSize() {
		if err := draft.ValidateTeamSize(d.TeamSize); err != nil {
			errs = append(errs, fmt.Sprintf("draft.team_size must be 0, %d or %d, got %d", draft.MinTeamSize, draft.MaxTeamSize, d.TeamSize))
		}
	}
	validSpecial := map[string]bool{SpecialAsk: true, SpecialYes: true, SpecialNo: true}
	if !validSpecial[d.Special] {
		errs = append(errs, fmt.Sprintf("draft.special must be one of [ask, yes, no], got %q", d.Special))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// New returns a Viper instance with defaults and ARENA_ environment overrides
// applied. Callers may bind flags to it before calling LoadFromViper.
//
// Postcondition: Returns a non-nil *viper.Viper.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
//
// Postcondition: Returns nil or an error wrapping the read failure.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Draft.Special = strings.ToLower(cfg.Draft.Special)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("heroes.file", "res/heroes.txt")

	v.SetDefault("draft.team_size", 0)
	v.SetDefault("draft.special", SpecialAsk)
	v.SetDefault("draft.seed", 0)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
