// chase8 is a terminal chase game rendered on a 64x32 one-bit display.
//
// Usage:
//
//	chase8                  - Play the game
//	chase8 play             - Same as above
//	chase8 serve            - Start SSH server for remote play
//	chase8 palettes         - List available color palettes
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default from config)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chase8/internal/config"

	// Import the game to register it
	_ "chase8/internal/game/chase"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase8",
	Short: "chase8 - catch the ring in your terminal",
	Long: `chase8 is a terminal chase game: steer the player sprite across a
64x32 one-bit display and catch the ring. Every catch respawns the ring
somewhere else and sounds the buzzer. There is no score and no game over -
the chase never ends.

Controls:
  WASD/Arrows - Move (diagonals work, edges wrap around)
  P/Esc       - Pause
  R           - Restart
  M           - Mute
  [ / ]       - Cycle color palettes
  + / - / 0   - Adjust simulation speed
  Q/Ctrl+C    - Quit

Examples:
  chase8
  chase8 play --fps 120
  chase8 play --seed 42
  chase8 serve --ssh :2222
  chase8 palettes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(palettesCmd)
}

// loadAppConfig loads the YAML config and applies the global flag overrides.
func loadAppConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS > 0 {
		cfg.Speed.TickRate = min(max(flagFPS, cfg.Speed.Min), cfg.Speed.Max)
	}
	return cfg, nil
}
