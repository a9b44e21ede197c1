package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SkiConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultSkiConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSkiConfig():\nyaml: %+v\ngo:   %+v", cfg, DefaultSkiConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadSkiCustomPath(t *testing.T) {
	cfg := DefaultSkiConfig()
	cfg.World.BaseSpeed = 40
	cfg.Targets = cfg.Targets[:2]

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "ski.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := LoadSki(path)
	if err != nil {
		t.Fatalf("LoadSki() failed: %v", err)
	}
	if loaded.World.BaseSpeed != 40 {
		t.Errorf("BaseSpeed = %v, expected 40", loaded.World.BaseSpeed)
	}
	if len(loaded.Targets) != 2 {
		t.Errorf("expected 2 targets, got %d", len(loaded.Targets))
	}
}

func TestLoadSkiMissingCustomPath(t *testing.T) {
	_, err := LoadSki(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSkiRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "world:\n  lane_width: 2.5\n  start_lanes: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadSki(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "start_lanes") {
		t.Errorf("error should mention start_lanes: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SkiConfig)
		wantErr string
	}{
		{"defaults", func(*SkiConfig) {}, ""},
		{"even lanes", func(c *SkiConfig) { c.World.StartLanes = 2 }, "start_lanes"},
		{"max below start", func(c *SkiConfig) { c.World.MaxLanes = 1 }, "max_lanes"},
		{"zero weights", func(c *SkiConfig) {
			c.Spawn.ObstacleWeight, c.Spawn.RampWeight, c.Spawn.CashLineWeight = 0, 0, 0
		}, "weights"},
		{"no targets", func(c *SkiConfig) { c.Targets = nil }, "targets"},
		{"bad progression", func(c *SkiConfig) { c.Difficulty.Progression.Type = "laps" }, "progression.type"},
		{"no lives", func(c *SkiConfig) { c.Progression.Lives = 0 }, "lives"},
		{"bad cash line", func(c *SkiConfig) { c.Spawn.CashLineMax = 1 }, "cash_line"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSkiConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplySkiPreset(t *testing.T) {
	cfg := DefaultSkiConfig()
	ApplySkiPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}
	if cfg.Progression.Lives != 2 {
		t.Errorf("hard preset should reduce lives to 2, got %d", cfg.Progression.Lives)
	}

	cfg = DefaultSkiConfig()
	ApplySkiPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSkiConfig()
	ApplySkiPreset(&cfg, ParsePreset("bogus"))
	if !reflect.DeepEqual(cfg, DefaultSkiConfig()) {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "distance", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := dm.Speed(25, 0, 0); got != 25 {
		t.Errorf("Speed at start = %v, expected 25", got)
	}
	if got := dm.Speed(25, 500, 0); got != 37.5 {
		t.Errorf("Speed at half = %v, expected 37.5", got)
	}
	if got := dm.Speed(25, 5000, 0); got != 50 {
		t.Errorf("Speed past max should cap at 50, got %v", got)
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() {
		t.Error("SetEnabled(false) should disable progression")
	}
	if got := dm.Level(5000, 0); got != 0 {
		t.Errorf("disabled manager should stay at initial level, got %v", got)
	}

	dm.SetInitialLevel(2)
	if got := dm.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 2.0},
	})
	if got := dm.Level(99999, 50); got != 0.5 {
		t.Errorf("time progression should ignore distance, got level %v", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SKIRUN_DB", "/tmp/x.db")
	t.Setenv("SKIRUN_FPS", "30")
	t.Setenv("SKIRUN_IDLE_TIMEOUT", "5m")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if e.DBPath != "/tmp/x.db" || e.FPS != 30 || e.IdleTimeout != 5*time.Minute {
		t.Errorf("unexpected env: %+v", e)
	}
	if e.SSHAddr != ":23234" {
		t.Errorf("SSHAddr default = %q", e.SSHAddr)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("SKIRUN_FPS", "fast")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("expected parse error for non-numeric fps")
	}
}
