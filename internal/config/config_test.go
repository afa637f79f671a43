package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SlidePrefix != "slide_" {
		t.Errorf("expected default slide_prefix %q, got %q", "slide_", cfg.SlidePrefix)
	}
	if cfg.OrderAttribute != "id" {
		t.Errorf("expected default order_attribute %q, got %q", "id", cfg.OrderAttribute)
	}
	if cfg.ZoomFactor != 1.25 {
		t.Errorf("expected default zoom_factor 1.25, got %v", cfg.ZoomFactor)
	}
	if cfg.MarginRatio != 0.01 {
		t.Errorf("expected default margin_ratio 0.01, got %v", cfg.MarginRatio)
	}
	if cfg.Transition != 400*time.Millisecond {
		t.Errorf("expected default transition 400ms, got %v", cfg.Transition)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := DefaultConfig()
	original.SlidePrefix = "page-"
	original.OrderAttribute = "inkscape:label"
	original.Bindings = map[string]string{"j": "next", "k": "previous"}
	original.ZoomFactor = 1.5
	original.Transition = 250 * time.Millisecond
	original.StateFile = filepath.Join(dir, "state.yaml")

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SlidePrefix != original.SlidePrefix {
		t.Errorf("slide_prefix: got %q, want %q", loaded.SlidePrefix, original.SlidePrefix)
	}
	if loaded.OrderAttribute != original.OrderAttribute {
		t.Errorf("order_attribute: got %q, want %q", loaded.OrderAttribute, original.OrderAttribute)
	}
	if loaded.ZoomFactor != original.ZoomFactor {
		t.Errorf("zoom_factor: got %v, want %v", loaded.ZoomFactor, original.ZoomFactor)
	}
	if loaded.Transition != original.Transition {
		t.Errorf("transition: got %v, want %v", loaded.Transition, original.Transition)
	}
	if loaded.StateFile != original.StateFile {
		t.Errorf("state_file: got %q, want %q", loaded.StateFile, original.StateFile)
	}
	if len(loaded.Bindings) != 2 || loaded.Bindings["j"] != "next" || loaded.Bindings["k"] != "previous" {
		t.Errorf("bindings: got %v", loaded.Bindings)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yaml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.SlidePrefix != "slide_" {
		t.Errorf("expected default slide_prefix, got %q", cfg.SlidePrefix)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("transition: 1s\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Transition != time.Second {
		t.Errorf("transition: got %v, want 1s", cfg.Transition)
	}
	if cfg.ZoomFactor != 1.25 || cfg.SlidePrefix != "slide_" {
		t.Errorf("expected untouched defaults, got %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SVGDECK_SLIDE_PREFIX", "frame_")
	t.Setenv("SVGDECK_ZOOM_FACTOR", "2")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SlidePrefix != "frame_" {
		t.Errorf("env override failed: got %q, want %q", cfg.SlidePrefix, "frame_")
	}
	if cfg.ZoomFactor != 2 {
		t.Errorf("env override failed: got %v, want 2", cfg.ZoomFactor)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("zoom_factor: [1,"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty prefix", func(c *Config) { c.SlidePrefix = " " }},
		{"empty order attribute", func(c *Config) { c.OrderAttribute = "" }},
		{"zoom factor one", func(c *Config) { c.ZoomFactor = 1 }},
		{"negative margin", func(c *Config) { c.MarginRatio = -0.1 }},
		{"huge margin", func(c *Config) { c.MarginRatio = 0.5 }},
		{"negative transition", func(c *Config) { c.Transition = -time.Second }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad binding", func(c *Config) { c.Bindings = map[string]string{"x": "jump"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestKeymapOverlay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bindings = map[string]string{
		"j":      "next",
		"Escape": "none",
		"Space":  "Previous",
	}
	km, err := cfg.Keymap()
	if err != nil {
		t.Fatalf("Keymap failed: %v", err)
	}
	if km["j"] != statepkg.ActionNext {
		t.Errorf("expected j -> next, got %q", km["j"])
	}
	if _, ok := km["Escape"]; ok {
		t.Errorf("expected Escape to be unbound")
	}
	if km["Space"] != statepkg.ActionPrevious {
		t.Errorf("expected Space -> previous, got %q", km["Space"])
	}
	if km["ArrowRight"] != statepkg.ActionNext {
		t.Errorf("expected default ArrowRight binding to survive, got %q", km["ArrowRight"])
	}
}
