package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/brayton/pkg/cycle"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != FormatText {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
	if cfg.Regen != "none" {
		t.Errorf("Regen = %v, want none", cfg.Regen)
	}
	if cfg.Debounce != 200*time.Millisecond {
		t.Errorf("Debounce = %v, want 200ms", cfg.Debounce)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("ListenAddr = %v, want %v", cfg.ListenAddr, DefaultListenAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mod     func(*Config)
		wantErr bool
	}{
		{name: "defaults", mod: func(*Config) {}},
		{name: "json format", mod: func(c *Config) { c.Format = FormatJSON }},
		{name: "unknown format", mod: func(c *Config) { c.Format = "xml" }, wantErr: true},
		{name: "bad log level", mod: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "negative cp", mod: func(c *Config) { c.Cp = -1 }, wantErr: true},
		{name: "watch without case", mod: func(c *Config) { c.Watch = true }, wantErr: true},
		{name: "watch with case", mod: func(c *Config) { c.Watch = true; c.CaseFile = "case.toml" }},
		{name: "zero debounce", mod: func(c *Config) { c.Debounce = 0 }, wantErr: true},
		{name: "zero shutdown timeout", mod: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Gas(t *testing.T) {
	// Derived fields are computed at run time so they round the way NewGas does.
	cp, cv := 1.1, 0.8
	tests := []struct {
		name    string
		cp, cv  float64
		want    cycle.Gas
		wantErr bool
	}{
		{name: "air by default", want: cycle.Air},
		{name: "both overridden", cp: cp, cv: cv, want: cycle.Gas{Cp: cp, Cv: cv, K: cp / cv, R: cp - cv}},
		{name: "cv from air", cp: 1.2, want: cycle.Gas{Cp: 1.2, Cv: cycle.Air.Cv, K: 1.2 / cycle.Air.Cv, R: 1.2 - cycle.Air.Cv}},
		{name: "cp below cv", cp: 0.5, cv: 0.7, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Cp: tt.cp, Cv: tt.cv}
			got, err := cfg.Gas()
			if tt.wantErr {
				if !errors.Is(err, cycle.ErrInvalidInput) {
					t.Fatalf("Gas() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Gas() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Gas() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfig_Form(t *testing.T) {
	cfg := Config{P1: "100", T1: "288", RP: "8", Power: "50", Tmax: "1400", Regen: "0.5"}
	in, err := cycle.ParseForm(cfg.Form())
	if err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	if in.P1 != 100e3 || in.Power != 50e6 || in.Regen == nil || *in.Regen != 0.5 {
		t.Errorf("unexpected inputs %+v", in)
	}
}
