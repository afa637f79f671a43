package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kk-code-lab/svgdeck/internal/geometry"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	"github.com/kk-code-lab/svgdeck/internal/svg"
)

// DefaultTransition is the duration of an animated viewport change.
const DefaultTransition = 400 * time.Millisecond

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SlidePrefix:    svg.DefaultPrefix,
		OrderAttribute: svg.DefaultOrderAttribute,
		ZoomFactor:     statepkg.DefaultZoomFactor,
		MarginRatio:    geometry.DefaultMarginRatio,
		Transition:     DefaultTransition,
		LogLevel:       "info",
	}
}

// DefaultPath returns the per-user config file location. It is empty when
// the platform reports no config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "svgdeck", "config.yaml")
}
