package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/brayton/pkg/cycle"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// DefaultListenAddr is the default address for `brayton serve`.
const DefaultListenAddr = ":8080"

// Config holds CLI configuration for brayton.
//
// The cycle inputs are kept as the raw text the user typed, in form units
// (kPa, K, MW), so that non-numeric values surface as cycle.InvalidInputError
// from cycle.ParseForm rather than as flag parsing failures.
type Config struct {
	P1    string
	T1    string
	RP    string
	Power string
	Tmax  string
	Regen string

	// Cp and Cv override the working fluid. Zero means "use cycle.Air".
	Cp float64
	Cv float64

	Format   string
	SVGDir   string
	CaseFile string
	LogLevel string

	Watch    bool
	Debounce time.Duration

	ListenAddr      string
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Regen:           "none",
		Format:          FormatText,
		LogLevel:        zerolog.LevelInfoValue,
		Debounce:        200 * time.Millisecond,
		ListenAddr:      DefaultListenAddr,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate checks the non-cycle settings. Cycle inputs are validated by the
// solver so that every caller reports them the same way.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatTOML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or toml)", c.Format)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Cp < 0 || c.Cv < 0 {
		return fmt.Errorf("cp and cv must not be negative")
	}
	if c.Watch && c.CaseFile == "" {
		return fmt.Errorf("watch requires a case file (--case)")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}

// Form returns the cycle inputs as a form.
func (c *Config) Form() cycle.Form {
	return cycle.Form{
		P1:    c.P1,
		T1:    c.T1,
		RP:    c.RP,
		Power: c.Power,
		Tmax:  c.Tmax,
		Regen: c.Regen,
	}
}

// Gas returns the working fluid. With neither cp nor cv set it is cycle.Air;
// otherwise the unset one is taken from air and k and R are derived.
func (c *Config) Gas() (cycle.Gas, error) {
	if c.Cp == 0 && c.Cv == 0 {
		return cycle.Air, nil
	}
	cp, cv := c.Cp, c.Cv
	if cp == 0 {
		cp = cycle.Air.Cp
	}
	if cv == 0 {
		cv = cycle.Air.Cv
	}
	return cycle.NewGas(cp, cv)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setValue sets a cycle input from a TOML value. Numbers are formatted back
// to text; strings are kept verbatim for cycle.ParseForm to judge.
func (s *configSetter) setValue(flag string, value any, dst *string) error {
	if value == nil || s.changed[flag] {
		return nil
	}
	switch v := value.(type) {
	case string:
		*dst = v
	case int64:
		*dst = strconv.FormatInt(v, 10)
	case float64:
		*dst = strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Errorf("parse %s: unsupported value %v (%T)", flag, value, value)
	}
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
