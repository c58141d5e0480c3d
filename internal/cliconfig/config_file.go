package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML layout shared by the config file and case files.
// Durations are strings to keep the file TOML friendly.
type FileConfig struct {
	Format   string `toml:"format"`
	SVGDir   string `toml:"svg_dir"`
	LogLevel string `toml:"log_level"`

	Cycle  FileCycle  `toml:"cycle"`
	Gas    FileGas    `toml:"gas"`
	Watch  FileWatch  `toml:"watch"`
	Server FileServer `toml:"server"`
}

// FileCycle holds the cycle inputs in form units. Values may be TOML numbers
// or strings; regen also accepts "none".
type FileCycle struct {
	P1    any `toml:"p1_kpa"`
	T1    any `toml:"t1_k"`
	RP    any `toml:"pressure_ratio"`
	Power any `toml:"power_mw"`
	Tmax  any `toml:"tmax_k"`
	Regen any `toml:"regen"`
}

// FileGas holds the specific heats in kJ/kg·K.
type FileGas struct {
	Cp float64 `toml:"cp"`
	Cv float64 `toml:"cv"`
}

// FileWatch configures watch mode.
type FileWatch struct {
	Enabled  *bool  `toml:"enabled"`
	Debounce string `toml:"debounce"`
}

// FileServer configures `brayton serve`.
type FileServer struct {
	Listen          string `toml:"listen"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.brayton/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".brayton", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", fc.Format, &cfg.Format)
	s.setString("svg-dir", fc.SVGDir, &cfg.SVGDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("listen", fc.Server.Listen, &cfg.ListenAddr)

	for _, v := range []struct {
		flag  string
		value any
		dst   *string
	}{
		{"p1", fc.Cycle.P1, &cfg.P1},
		{"t1", fc.Cycle.T1, &cfg.T1},
		{"rp", fc.Cycle.RP, &cfg.RP},
		{"power", fc.Cycle.Power, &cfg.Power},
		{"tmax", fc.Cycle.Tmax, &cfg.Tmax},
		{"regen", fc.Cycle.Regen, &cfg.Regen},
	} {
		if err := s.setValue(v.flag, v.value, v.dst); err != nil {
			return err
		}
	}

	s.setFloat("cp", fc.Gas.Cp, &cfg.Cp)
	s.setFloat("cv", fc.Gas.Cv, &cfg.Cv)

	s.setBool("watch", fc.Watch.Enabled, &cfg.Watch)
	if err := s.setDuration("debounce", fc.Watch.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", fc.Server.ShutdownTimeout, &cfg.ShutdownTimeout); err != nil {
		return err
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
