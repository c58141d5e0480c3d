package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies cycle inputs verbatim",
			envVars: map[string]string{
				"BRAYTON_P1":    "100",
				"BRAYTON_T1":    "288",
				"BRAYTON_RP":    "eight",
				"BRAYTON_POWER": "50",
				"BRAYTON_TMAX":  "1400",
				"BRAYTON_REGEN": "0.7",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				P1:    "100",
				T1:    "288",
				RP:    "eight",
				Power: "50",
				Tmax:  "1400",
				Regen: "0.7",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"BRAYTON_P1":     "90",
				"BRAYTON_FORMAT": "toml",
			},
			changed: map[string]bool{"p1": true},
			initial: Config{P1: "100"},
			expected: Config{
				P1:     "100",
				Format: "toml",
			},
		},
		{
			name: "applies typed settings",
			envVars: map[string]string{
				"BRAYTON_CP":               "1.1",
				"BRAYTON_CV":               "0.8",
				"BRAYTON_DEBOUNCE":         "50ms",
				"BRAYTON_SHUTDOWN_TIMEOUT": "2s",
				"BRAYTON_WATCH":            "1",
				"BRAYTON_CASE":             "/cases/a.toml",
				"BRAYTON_LISTEN":           "127.0.0.1:9000",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Cp:              1.1,
				Cv:              0.8,
				Debounce:        50 * time.Millisecond,
				ShutdownTimeout: 2 * time.Second,
				Watch:           true,
				CaseFile:        "/cases/a.toml",
				ListenAddr:      "127.0.0.1:9000",
			},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"BRAYTON_DEBOUNCE": "not-a-duration"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid float",
			envVars: map[string]string{"BRAYTON_CP": "not-a-float"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:     "handles bool 'false' as false",
			envVars:  map[string]string{"BRAYTON_WATCH": "false"},
			changed:  map[string]bool{},
			initial:  Config{Watch: true},
			expected: Config{Watch: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	fileConf := FileConfig{
		Cycle: FileCycle{P1: int64(80), T1: int64(300), RP: int64(10)},
		Gas:   FileGas{Cp: 1.2},
	}

	t.Setenv("BRAYTON_P1", "90")
	t.Setenv("BRAYTON_T1", "295")

	changed := map[string]bool{
		"p1": true,
	}

	cfg := Config{P1: "100"}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.P1 != "100" {
		t.Errorf("P1 = %v, want 100 (CLI should win)", cfg.P1)
	}
	if cfg.T1 != "295" {
		t.Errorf("T1 = %v, want 295 (env should override file)", cfg.T1)
	}
	if cfg.RP != "10" {
		t.Errorf("RP = %v, want 10 (file should set)", cfg.RP)
	}
	if cfg.Cp != 1.2 {
		t.Errorf("Cp = %v, want 1.2 (file should set)", cfg.Cp)
	}
}
