package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/hanoi/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hanoi.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Geometry.Width != 800 || cfg.Geometry.Height != 600 || cfg.Discs.Initial != 3 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.FrameInterval() != constants.FrameUpdateInterval {
		t.Errorf("frame interval %v", cfg.FrameInterval())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	if !errors.Is(err, ErrNoConfigFile) {
		t.Fatalf("expected ErrNoConfigFile, got %v", err)
	}
	if cfg != Default() {
		t.Error("missing file must yield defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
geometry: {
	width:          1000
	speed:          8.5
	discSeparation: 24
}
discs: {
	max:     8
	initial: 5
}
motion: "delta"
sound:  false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Geometry.Width != 1000 || cfg.Geometry.Speed != 8.5 {
		t.Errorf("geometry not applied: %+v", cfg.Geometry)
	}
	if cfg.Geometry.DiscSeparation != 24 {
		t.Errorf("discSeparation not applied: %v", cfg.Geometry.DiscSeparation)
	}
	if cfg.Geometry.Height != 600 || cfg.Geometry.DiscUnit != 25 {
		t.Errorf("unset geometry lost its defaults: %+v", cfg.Geometry)
	}
	if cfg.Discs.Min != 3 || cfg.Discs.Max != 8 || cfg.Discs.Initial != 5 {
		t.Errorf("discs %+v", cfg.Discs)
	}
	if cfg.Motion != constants.MotionDelta || cfg.Sound {
		t.Errorf("motion=%q sound=%v", cfg.Motion, cfg.Sound)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", `colour: "red"`},
		{"geometry typo", `geometry: {widht: 900}`},
		{"discs typo", `discs: {maximum: 9}`},
		{"terminal typo", `terminal: {cellWdith: 3}`},
		{"negative width", `geometry: width: -5`},
		{"bad motion", `motion: "warp"`},
		{"disc limit", `discs: max: 64`},
		{"wrong type", `sound: "yes"`},
		{"initial above max", `discs: {max: 4, initial: 5}`},
		{"syntax", `geometry: {`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min above max", func(c *Config) { c.Discs.Min, c.Discs.Max = 5, 4 }},
		{"zero min", func(c *Config) { c.Discs.Min = 0 }},
		{"cell size", func(c *Config) { c.Terminal.CellHeight = 0 }},
		{"frame", func(c *Config) { c.FrameMs = 0 }},
		{"motion", func(c *Config) { c.Motion = "" }},
		{"speed", func(c *Config) { c.Geometry.Speed = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
