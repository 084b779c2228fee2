// Package config provides YAML-based configuration for chase8: color
// palettes, simulation speed bounds and audio settings, with embedded
// defaults.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is the root configuration document.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Speed   SpeedConfig   `yaml:"speed"`
	Audio   AudioConfig   `yaml:"audio"`
}

// DisplayConfig selects the two-color palette the framebuffer is drawn with.
type DisplayConfig struct {
	// Palette is the index into Palettes used at startup.
	Palette  int       `yaml:"palette"`
	Palettes []Palette `yaml:"palettes"`
}

// Palette is a foreground/background color pair. The whole screen only ever
// uses these two colors.
type Palette struct {
	Name string `yaml:"name"`
	FG   string `yaml:"fg"`
	BG   string `yaml:"bg"`
}

// SpeedConfig bounds the simulation tick rate. The player can retune the
// rate at runtime between Min and Max in increments of Step.
type SpeedConfig struct {
	TickRate int `yaml:"tick_rate"`
	Min      int `yaml:"min"`
	Max      int `yaml:"max"`
	Step     int `yaml:"step"`
}

// AudioConfig controls the buzzer.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	ToneHz  float64 `yaml:"tone_hz"`
}

// Validate checks the configuration for values the platform cannot work
// with and normalizes the palette index.
func (c *Config) Validate() error {
	if len(c.Display.Palettes) == 0 {
		return fmt.Errorf("config: at least one palette is required")
	}
	for i, p := range c.Display.Palettes {
		if _, err := ParseHexColor(p.FG); err != nil {
			return fmt.Errorf("config: palette %d (%s) fg: %w", i, p.Name, err)
		}
		if _, err := ParseHexColor(p.BG); err != nil {
			return fmt.Errorf("config: palette %d (%s) bg: %w", i, p.Name, err)
		}
	}
	if c.Display.Palette < 0 || c.Display.Palette >= len(c.Display.Palettes) {
		c.Display.Palette = 0
	}

	if c.Speed.Min < 1 || c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("config: invalid speed bounds [%d, %d]", c.Speed.Min, c.Speed.Max)
	}
	if c.Speed.Step < 1 {
		c.Speed.Step = 1
	}
	if c.Speed.TickRate < c.Speed.Min || c.Speed.TickRate > c.Speed.Max {
		return fmt.Errorf("config: tick_rate %d outside [%d, %d]", c.Speed.TickRate, c.Speed.Min, c.Speed.Max)
	}

	if c.Audio.ToneHz <= 0 {
		return fmt.Errorf("config: tone_hz must be positive, got %v", c.Audio.ToneHz)
	}
	return nil
}

// RGB is a parsed 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses #rgb and #rrggbb color strings.
func ParseHexColor(s string) (RGB, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return RGB{}, fmt.Errorf("color %q must start with '#'", s)
	}

	switch len(hex) {
	case 3:
		// #rgb expands each digit, e.g. #f0a -> #ff00aa.
		var out [3]uint8
		for i := range 3 {
			v, err := strconv.ParseUint(strings.Repeat(hex[i:i+1], 2), 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("color %q is not valid hex", s)
			}
			out[i] = uint8(v)
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	case 6:
		var out [3]uint8
		for i := range 3 {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("color %q is not valid hex", s)
			}
			out[i] = uint8(v)
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	default:
		return RGB{}, fmt.Errorf("color %q must be #rgb or #rrggbb", s)
	}
}
