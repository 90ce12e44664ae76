package config

import (
	"fmt"
	"os"
	"sort"

	"boxes/device"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Log     string          `toml:"log"`
	Palette Palette         `toml:"palette"`
	Tiles   map[string]Tile `toml:"tiles"`
}

// Palette colours are hex strings ("#rrggbb") or 256-colour indices ("17").
type Palette struct {
	FG     string `toml:"fg"`
	BG     string `toml:"bg"`
	Title  string `toml:"title"`
	Accent string `toml:"accent"`
}

type Tile struct {
	Glyph  string `toml:"glyph"`
	Color  string `toml:"color"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

func Default() Config {
	return Config{
		Log: "boxes.log",
		Palette: Palette{
			FG:     "#ffffcd",
			BG:     "#001040",
			Title:  "#7fff7f",
			Accent: "#1f1f9f",
		},
		Tiles: map[string]Tile{
			"wall":  {Glyph: "#", Color: "#a0a0a0", Width: 1, Height: 1},
			"floor": {Glyph: ".", Color: "#606060", Width: 1, Height: 1},
		},
	}
}

// Load reads a TOML file on top of Default. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	for _, name := range cfg.TileNames() {
		tile := cfg.Tiles[name]
		if tile.Glyph == "" {
			return fmt.Errorf("tile %q has no glyph", name)
		}
		if tile.Width <= 0 || tile.Height <= 0 {
			return fmt.Errorf("tile %q has size %dx%d", name, tile.Width, tile.Height)
		}
		if tile.Color != "" {
			if _, err := Color(tile.Color); err != nil {
				return fmt.Errorf("tile %q: %w", name, err)
			}
		}
	}
	for _, color := range []string{cfg.Palette.FG, cfg.Palette.BG, cfg.Palette.Title, cfg.Palette.Accent} {
		if _, err := Color(color); err != nil {
			return err
		}
	}
	return nil
}

// TileNames returns the configured tile ids in order.
func (cfg Config) TileNames() []string {
	names := make([]string, 0, len(cfg.Tiles))
	for name := range cfg.Tiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color converts a colour string to the nearest 256-colour palette index.
func Color(value string) (byte, error) {
	switch c := termenv.ANSI256.Color(value).(type) {
	case termenv.ANSI256Color:
		return byte(c), nil
	case termenv.ANSIColor:
		return byte(c), nil
	}
	return 0, fmt.Errorf("invalid colour %q", value)
}

// Style builds a device style from two colour specs. Invalid colours were
// rejected by Load, so they map to 0.
func Style(fg, bg string, flags device.Flags) device.Style {
	f, _ := Color(fg)
	b, _ := Color(bg)
	return device.Style{FG: f, BG: b, Flags: flags}
}
