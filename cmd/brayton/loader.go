package main

import (
	"fmt"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/brayton/internal/cliconfig"
)

// loader layers defaults, config file, case file, environment and flags.
// It starts from the flag-bound config on every call so watch mode sees a
// case file as it is now, not merged with what it used to be.
type loader struct {
	base    cliconfig.Config
	cfgPath string
	changed map[string]bool
}

func newLoader(base cliconfig.Config, cfgPath string, changed map[string]bool) *loader {
	if cfgPath == "" {
		cfgPath = cliconfig.DefaultConfigPath()
	}
	return &loader{base: base, cfgPath: cfgPath, changed: changed}
}

func (l *loader) load() (cliconfig.Config, error) {
	cfg := l.base

	if l.cfgPath != "" && cliconfig.FileExists(l.cfgPath) {
		fc, err := cliconfig.LoadFileConfig(l.cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, l.changed); err != nil {
			return cfg, fmt.Errorf("config %s: %w", l.cfgPath, err)
		}
	}

	// BRAYTON_CASE may name the case file, so look at the environment once
	// before reading it and again afterwards so env still beats the case.
	if err := cliconfig.ApplyEnvConfig(&cfg, l.changed); err != nil {
		return cfg, err
	}
	if cfg.CaseFile != "" {
		fc, err := cliconfig.LoadFileConfig(cfg.CaseFile)
		if err != nil {
			return cfg, fmt.Errorf("load case: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, l.changed); err != nil {
			return cfg, fmt.Errorf("case %s: %w", cfg.CaseFile, err)
		}
		if err := cliconfig.ApplyEnvConfig(&cfg, l.changed); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func changedFlags(cmd *cobra.Command) map[string]bool {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}
