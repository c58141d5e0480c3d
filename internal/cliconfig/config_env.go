package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BRAYTON_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("p1", os.Getenv("BRAYTON_P1"), &cfg.P1)
	s.setString("t1", os.Getenv("BRAYTON_T1"), &cfg.T1)
	s.setString("rp", os.Getenv("BRAYTON_RP"), &cfg.RP)
	s.setString("power", os.Getenv("BRAYTON_POWER"), &cfg.Power)
	s.setString("tmax", os.Getenv("BRAYTON_TMAX"), &cfg.Tmax)
	s.setString("regen", os.Getenv("BRAYTON_REGEN"), &cfg.Regen)

	s.setString("format", os.Getenv("BRAYTON_FORMAT"), &cfg.Format)
	s.setString("svg-dir", os.Getenv("BRAYTON_SVG_DIR"), &cfg.SVGDir)
	s.setString("case", os.Getenv("BRAYTON_CASE"), &cfg.CaseFile)
	s.setString("log-level", os.Getenv("BRAYTON_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("listen", os.Getenv("BRAYTON_LISTEN"), &cfg.ListenAddr)

	if err := s.setFloatFromString("cp", os.Getenv("BRAYTON_CP"), &cfg.Cp); err != nil {
		return err
	}
	if err := s.setFloatFromString("cv", os.Getenv("BRAYTON_CV"), &cfg.Cv); err != nil {
		return err
	}

	if err := s.setDuration("debounce", os.Getenv("BRAYTON_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", os.Getenv("BRAYTON_SHUTDOWN_TIMEOUT"), &cfg.ShutdownTimeout); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("BRAYTON_WATCH"), &cfg.Watch)

	return nil
}
