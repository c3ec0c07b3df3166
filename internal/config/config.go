// Package config loads and validates the board's display configuration.
// Values are resolved defaults < yaml file < environment, validated once
// at startup, and passed into components explicitly; nothing in the core
// reads ambient global state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Display holds the board geometry and timing knobs. All consumers
// receive it by value at construction time.
type Display struct {
	DayWidth  float64 `yaml:"day_width"`
	DayMargin float64 `yaml:"day_margin"`
	// BufferDays widens the materialized day range on each side of the
	// literal viewport.
	BufferDays int     `yaml:"buffer_days"`
	RowHeight  float64 `yaml:"row_height"`
	RowMargin  float64 `yaml:"row_margin"`

	ScrollThrottleMs     int `yaml:"scroll_throttle_ms"`
	AutoScrollDebounceMs int `yaml:"auto_scroll_debounce_ms"`
	AnimationDurationMs  int `yaml:"animation_duration_ms"`
}

// DefaultDisplay returns the built-in geometry.
func DefaultDisplay() Display {
	return Display{
		DayWidth:             45,
		DayMargin:            5,
		BufferDays:           4,
		RowHeight:            28,
		RowMargin:            4,
		ScrollThrottleMs:     16,
		AutoScrollDebounceMs: 100,
		AnimationDurationMs:  300,
	}
}

// Load resolves the display configuration: defaults, then the yaml file
// at path (ignored when absent), then PLANBOARD_* env overrides, then
// validation. A malformed file is an error; out-of-range values are
// clamped back to sane bounds rather than rejected.
func Load(path string) (Display, error) {
	cfg := DefaultDisplay()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fine, defaults apply
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	cfg.Validate()
	return cfg, nil
}

func applyEnv(cfg *Display) {
	envFloat("PLANBOARD_DAY_WIDTH", &cfg.DayWidth)
	envFloat("PLANBOARD_DAY_MARGIN", &cfg.DayMargin)
	envInt("PLANBOARD_BUFFER_DAYS", &cfg.BufferDays)
	envFloat("PLANBOARD_ROW_HEIGHT", &cfg.RowHeight)
	envFloat("PLANBOARD_ROW_MARGIN", &cfg.RowMargin)
	envInt("PLANBOARD_SCROLL_THROTTLE_MS", &cfg.ScrollThrottleMs)
	envInt("PLANBOARD_AUTOSCROLL_DEBOUNCE_MS", &cfg.AutoScrollDebounceMs)
	envInt("PLANBOARD_ANIMATION_MS", &cfg.AnimationDurationMs)
}

func envFloat(name string, dst *float64) {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate clamps every field into its working range. The windowing math
// divides by DayWidth-DayMargin, so the margin is forced strictly below
// the width.
func (d *Display) Validate() {
	if d.DayWidth < 10 {
		d.DayWidth = 10
	}
	if d.DayMargin < 0 {
		d.DayMargin = 0
	}
	if d.DayMargin >= d.DayWidth {
		d.DayMargin = d.DayWidth - 1
	}
	if d.BufferDays < 0 {
		d.BufferDays = 0
	}
	if d.RowHeight < 1 {
		d.RowHeight = 1
	}
	if d.RowMargin < 0 {
		d.RowMargin = 0
	}
	if d.ScrollThrottleMs < 1 {
		d.ScrollThrottleMs = 1
	}
	if d.AutoScrollDebounceMs < 1 {
		d.AutoScrollDebounceMs = 1
	}
	if d.AnimationDurationMs < 0 {
		d.AnimationDurationMs = 0
	}
}

// DefaultPath returns ~/.planboard/display.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planboard", "display.yaml")
}
