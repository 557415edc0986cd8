// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads optional input tuning from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional conrod.yaml configuration.
type Config struct {
	Input Input `yaml:"input"`
}

// Input contains input synthesis tuning.
type Input struct {
	// DragThresholdDp is the minimum press-to-release distance, in
	// dp, for movement to classify as a drag rather than a click.
	DragThresholdDp float32 `yaml:"drag_threshold_dp,omitempty"`
	// NaturalScroll flips the sign of scroll deltas.
	NaturalScroll bool `yaml:"natural_scroll,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: Input{
			DragThresholdDp: 4,
		},
	}
}

// Load reads the configuration file at path, if present. An absent
// file yields the defaults; unset fields fall back to their default
// values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Input.DragThresholdDp <= 0 {
		cfg.Input.DragThresholdDp = Default().Input.DragThresholdDp
	}
	return cfg, nil
}
