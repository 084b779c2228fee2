package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chase8/internal/audio"
	"chase8/internal/core"
	"chase8/internal/platform/tui"
	"chase8/internal/registry"
)

var (
	flagMute    bool
	flagPalette string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the chase in the current terminal.

Examples:
  chase8 play
  chase8 play --fps 120
  chase8 play --seed 42
  chase8 play --palette ocean
  chase8 play --mute
  chase8 play --config ./my-chase8.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with the buzzer muted")
	playCmd.Flags().StringVar(&flagPalette, "palette", "", "Start with the named palette")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app, err := loadAppConfig()
	if err != nil {
		return err
	}

	if flagPalette != "" {
		idx := -1
		for i, p := range app.Display.Palettes {
			if p.Name == flagPalette {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown palette %q, run 'chase8 palettes' to list them", flagPalette)
		}
		app.Display.Palette = idx
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: app.Speed.TickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create("chase")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var buzzer *audio.Buzzer
	if app.Audio.Enabled {
		buzzer = audio.NewBuzzer(app.Audio.ToneHz)
		if initErr := buzzer.Init(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", initErr)
		}
		buzzer.SetMuted(flagMute)
		defer buzzer.Close()
	}

	return tui.Run(game, cfg, &app, buzzer)
}
