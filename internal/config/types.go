package config

import "time"

// Config is the svgdeck configuration, corresponding to config.yaml.
type Config struct {
	SlidePrefix    string            `yaml:"slide_prefix" koanf:"slide_prefix"`
	OrderAttribute string            `yaml:"order_attribute" koanf:"order_attribute"`
	Bindings       map[string]string `yaml:"bindings,omitempty" koanf:"bindings"`
	ZoomFactor     float64           `yaml:"zoom_factor" koanf:"zoom_factor"`
	MarginRatio    float64           `yaml:"margin_ratio" koanf:"margin_ratio"`
	Transition     time.Duration     `yaml:"transition" koanf:"transition"`
	StateFile      string            `yaml:"state_file,omitempty" koanf:"state_file"`
	LogFile        string            `yaml:"log_file,omitempty" koanf:"log_file"`
	LogLevel       string            `yaml:"log_level" koanf:"log_level"`
}
