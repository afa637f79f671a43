// Package config loads svgdeck settings from defaults, an optional YAML file
// and SVGDECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	"go.uber.org/zap/zapcore"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "SVGDECK_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SVGDECK_*). An empty path or a missing
// file leaves the defaults in place.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// SVGDECK_ZOOM_FACTOR -> zoom_factor, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SlidePrefix) == "" {
		return fmt.Errorf("%w: slide_prefix is required", ErrInvalid)
	}
	if c.OrderAttribute == "" {
		return fmt.Errorf("%w: order_attribute is required", ErrInvalid)
	}
	if !(c.ZoomFactor > 1) {
		return fmt.Errorf("%w: zoom_factor must be greater than 1, got %v", ErrInvalid, c.ZoomFactor)
	}
	if c.MarginRatio < 0 || c.MarginRatio >= 0.5 {
		return fmt.Errorf("%w: margin_ratio must be in [0, 0.5), got %v", ErrInvalid, c.MarginRatio)
	}
	if c.Transition < 0 {
		return fmt.Errorf("%w: transition must be non-negative", ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalid, c.LogLevel, err)
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	return nil
}

// Keymap overlays the configured bindings on the default key table. A
// binding to "none" removes the key.
func (c *Config) Keymap() (statepkg.Keymap, error) {
	km := statepkg.DefaultKeymap()
	for key, target := range c.Bindings {
		action, err := statepkg.ParseAction(strings.ToLower(strings.TrimSpace(target)))
		if err != nil {
			return nil, fmt.Errorf("%w: binding %q: %v", ErrInvalid, key, err)
		}
		if action == statepkg.ActionNone {
			delete(km, key)
			continue
		}
		km[key] = action
	}
	return km, nil
}
