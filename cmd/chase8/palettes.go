package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List available color palettes",
	Long:  `Shows the color palettes defined in the active configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runPalettes,
}

func runPalettes(_ *cobra.Command, _ []string) error {
	app, err := loadAppConfig()
	if err != nil {
		return err
	}

	maxNameLen := 4 // "Name" header
	for _, p := range app.Display.Palettes {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-8s %s\n", maxNameLen, "Name", "FG", "BG")
	fmt.Printf("  %-*s  %-8s %s\n", maxNameLen, "----", "--", "--")

	for i, p := range app.Display.Palettes {
		marker := " "
		if i == app.Display.Palette {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %-8s %s\n", marker, maxNameLen, p.Name, p.FG, p.BG)
	}

	fmt.Println()
	fmt.Println("Run 'chase8 play --palette <name>' to start with a palette,")
	fmt.Println("or cycle with [ and ] in game.")
	return nil
}
