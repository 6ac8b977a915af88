// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the pagerdemo program.
//
// Configuration is TOML with sensible defaults and validation. Missing files
// are not an error; defaults apply. File location:
//   - ~/.config/pagerdemo/config.toml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete pagerdemo configuration.
type Config struct {
	Pager     PagerConfig     `toml:"pager"`
	Indicator IndicatorConfig `toml:"indicator"`
	Keys      KeysConfig      `toml:"keys"`

	// Pages holds the demo page bodies. Empty means built-in sample pages.
	Pages []string `toml:"pages"`
}

// PagerConfig configures navigation behavior.
type PagerConfig struct {
	// Loop enables wraparound at the first and last page.
	Loop bool `toml:"loop"`
	// DefaultPage is the page shown on start: "first" or "last".
	DefaultPage string `toml:"default_page"`
	// Feedback is the pulse on page change: "none", "impact" or "success".
	Feedback string `toml:"feedback"`
	// InitialIndex is a host-supplied starting index; it wins over
	// DefaultPage when non-zero.
	InitialIndex int `toml:"initial_index"`
}

// IndicatorConfig configures the page indicator.
type IndicatorConfig struct {
	Visible bool `toml:"visible"`
	// Style is "dot" or "bar".
	Style    string `toml:"style"`
	BarWidth int    `toml:"bar_width"`
	Drag     bool   `toml:"drag"`
	// Size is "small", "regular" or "large".
	Size string `toml:"size"`
	// Spacing is "automatic", "narrow", "wide" or "custom".
	Spacing   string `toml:"spacing"`
	CustomGap int    `toml:"custom_gap"`
	// Offset is the vertical offset, in rows, from the bottom edge.
	Offset int `toml:"offset"`
}

// KeysConfig overrides individual navigation bindings. An empty list keeps
// the built-in binding.
type KeysConfig struct {
	Next  []string `toml:"next"`
	Prev  []string `toml:"prev"`
	First []string `toml:"first"`
	Last  []string `toml:"last"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pager: PagerConfig{
			Loop:        false,
			DefaultPage: "first",
			Feedback:    "impact",
		},
		Indicator: IndicatorConfig{
			Visible:  true,
			Style:    "dot",
			BarWidth: 20,
			Drag:     true,
			Size:     "regular",
			Spacing:  "automatic",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pagerdemo", "config.toml"), nil
}

// Load reads the config at path, applying defaults for anything unset. A
// missing file yields pure defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum-like fields.
func (c *Config) Validate() error {
	switch c.Pager.DefaultPage {
	case "", "first", "last":
	default:
		return fmt.Errorf("pager.default_page %q: want \"first\" or \"last\"", c.Pager.DefaultPage)
	}
	switch c.Pager.Feedback {
	case "", "none", "impact", "success":
	default:
		return fmt.Errorf("pager.feedback %q: want \"none\", \"impact\" or \"success\"", c.Pager.Feedback)
	}
	switch c.Indicator.Style {
	case "", "dot", "bar":
	default:
		return fmt.Errorf("indicator.style %q: want \"dot\" or \"bar\"", c.Indicator.Style)
	}
	switch c.Indicator.Size {
	case "", "small", "regular", "large":
	default:
		return fmt.Errorf("indicator.size %q: want \"small\", \"regular\" or \"large\"", c.Indicator.Size)
	}
	switch c.Indicator.Spacing {
	case "", "automatic", "narrow", "wide", "custom":
	default:
		return fmt.Errorf("indicator.spacing %q: want \"automatic\", \"narrow\", \"wide\" or \"custom\"", c.Indicator.Spacing)
	}
	if c.Indicator.BarWidth < 0 {
		return fmt.Errorf("indicator.bar_width %d: must be non-negative", c.Indicator.BarWidth)
	}
	if c.Indicator.Offset < 0 {
		return fmt.Errorf("indicator.offset %d: must be non-negative", c.Indicator.Offset)
	}
	return nil
}
