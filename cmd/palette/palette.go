package main

import (
	"fmt"
	"log"
	"os"

	"boxes/config"

	"github.com/charmbracelet/lipgloss"
)

// usage: palette [config.toml]
//
// Prints the 256-colour palette, then the index each configured colour maps to.
func main() {
	log.SetFlags(0)
	for i := 0; i < 256; i++ {
		style := lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprint(i)))
		fmt.Print(style.Render(fmt.Sprintf("   %3v   ", i)))
		if i%6 == 3 {
			fmt.Println()
		}
	}
	fmt.Println()

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	show := func(name, value string) {
		idx, err := config.Color(value)
		if err != nil {
			log.Printf("%-8s %s", name, err)
			return
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprint(idx))).Render("      ")
		fmt.Printf("%-8s %-9s -> %3d %s\n", name, value, idx, swatch)
	}
	show("fg", cfg.Palette.FG)
	show("bg", cfg.Palette.BG)
	show("title", cfg.Palette.Title)
	show("accent", cfg.Palette.Accent)
	for _, name := range cfg.TileNames() {
		show(name, cfg.Tiles[name].Color)
	}
}
