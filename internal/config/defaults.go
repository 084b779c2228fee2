package config

import (
	_ "embed"
)

//go:embed defaults/default.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the stock palette list, a
// 60 Hz tick rate and audio on.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Palette:  0,
			Palettes: defaultPalettes(),
		},
		Speed: SpeedConfig{
			TickRate: 60,
			Min:      10,
			Max:      240,
			Step:     10,
		},
		Audio: AudioConfig{
			Enabled: true,
			ToneHz:  440,
		},
	}
}

// defaultPalettes returns the stock two-color palettes. Most come from
// lospec.com palette lists; feel free to add your own in the config file.
func defaultPalettes() []Palette {
	return []Palette{
		{Name: "classic", FG: "#dddddd", BG: "#000000"},
		{Name: "1-bit error 4", FG: "#d2b7ff", BG: "#060010"},
		{Name: "1bit monitor glow", FG: "#f0f6f0", BG: "#222323"},
		{Name: "vanilla milkshake", FG: "#d9c8bf", BG: "#28282e"},
		{Name: "dreamscape8", FG: "#c9cca1", BG: "#515262"},
		{Name: "cc-29", FG: "#b2b47e", BG: "#212123"},
		{Name: "18 bytes", FG: "#c8d0d8", BG: "#302828"},
		{Name: "chasm", FG: "#4593a5", BG: "#32313b"},
		{Name: "lcd drab 4", FG: "#a9a77f", BG: "#1a1b00"},
		{Name: "ammo-8", FG: "#bedc7f", BG: "#112318"},
		{Name: "fantasy 24", FG: "#efd8a1", BG: "#2a1d0d"},
		{Name: "slso8", FG: "#ffd4a3", BG: "#0d2b45"},
		{Name: "twilight-5", FG: "#ee8695", BG: "#292831"},
		{Name: "kirokaze gameboy", FG: "#e2f3e4", BG: "#332c50"},
		{Name: "blessing", FG: "#d8bfd8", BG: "#74569b"},
	}
}
