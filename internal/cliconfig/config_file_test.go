package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies cycle values of every TOML type",
			fileConfig: FileConfig{
				Cycle: FileCycle{
					P1:    int64(100),
					T1:    288.5,
					RP:    "8",
					Power: int64(50),
					Tmax:  float64(1400),
					Regen: "none",
				},
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				P1:    "100",
				T1:    "288.5",
				RP:    "8",
				Power: "50",
				Tmax:  "1400",
				Regen: "none",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Format: "json",
				Cycle:  FileCycle{P1: int64(200), RP: int64(12)},
			},
			changed: map[string]bool{"p1": true},
			initial: Config{P1: "101.325"},
			expected: Config{
				P1:     "101.325",
				RP:     "12",
				Format: "json",
			},
		},
		{
			name: "applies gas, watch and server sections",
			fileConfig: FileConfig{
				SVGDir:   "/tmp/svg",
				LogLevel: "debug",
				Gas:      FileGas{Cp: 1.1, Cv: 0.8},
				Watch:    FileWatch{Enabled: &trueVal, Debounce: "1s"},
				Server:   FileServer{Listen: ":9090", ShutdownTimeout: "3s"},
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				SVGDir:          "/tmp/svg",
				LogLevel:        "debug",
				Cp:              1.1,
				Cv:              0.8,
				Watch:           true,
				Debounce:        time.Second,
				ListenAddr:      ":9090",
				ShutdownTimeout: 3 * time.Second,
			},
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{Watch: FileWatch{Debounce: "soon"}},
			changed:    map[string]bool{},
			wantErr:    true,
		},
		{
			name:       "returns error for unsupported cycle value",
			fileConfig: FileConfig{Cycle: FileCycle{Tmax: true}},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "case.toml")

	tomlContent := `
format = "json"

[cycle]
p1_kpa = 100
t1_k = 288.15
pressure_ratio = 8
power_mw = 50
tmax_k = 1400
regen = 0.5

[gas]
cp = 1.005
cv = 0.718

[watch]
debounce = "500ms"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Format != "json" {
		t.Errorf("Format = %v, want json", fc.Format)
	}
	if fc.Cycle.P1 != int64(100) {
		t.Errorf("Cycle.P1 = %#v, want int64(100)", fc.Cycle.P1)
	}
	if fc.Cycle.T1 != 288.15 {
		t.Errorf("Cycle.T1 = %#v, want 288.15", fc.Cycle.T1)
	}
	if fc.Cycle.Regen != 0.5 {
		t.Errorf("Cycle.Regen = %#v, want 0.5", fc.Cycle.Regen)
	}
	if fc.Gas.Cp != 1.005 || fc.Gas.Cv != 0.718 {
		t.Errorf("Gas = %+v, want cp 1.005 cv 0.718", fc.Gas)
	}
	if fc.Watch.Debounce != "500ms" {
		t.Errorf("Watch.Debounce = %v, want 500ms", fc.Watch.Debounce)
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}
	if cfg.T1 != "288.15" || cfg.Regen != "0.5" || cfg.Debounce != 500*time.Millisecond {
		t.Errorf("applied config = %+v", cfg)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(tmpDir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}

	bad := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[cycle\np1_kpa = "), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() expected error for malformed TOML")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "config.toml")
	if FileExists(p) {
		t.Fatalf("FileExists(%s) = true before creation", p)
	}
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(p) {
		t.Fatalf("FileExists(%s) = false after creation", p)
	}
}
