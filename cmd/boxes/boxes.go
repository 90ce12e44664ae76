package main

import (
	"fmt"
	"log"
	"os"

	"boxes/config"
	"boxes/device"
	"boxes/device/mock_device"
	"boxes/device/raster"
	"boxes/device/tcell"
	"boxes/lifecycle"
	"boxes/widgets"

	"github.com/muesli/termenv"
)

// usage: boxes [-dump | -png file] [config.toml]
func main() {
	log.SetFlags(0)

	args := os.Args[1:]
	dump, png := false, ""
	switch {
	case len(args) > 0 && args[0] == "-dump":
		dump = true
		args = args[1:]
	case len(args) > 1 && args[0] == "-png":
		png = args[1]
		args = args[2:]
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("boxes: %v", err)
		os.Exit(1)
	}

	if dump {
		dumpScreens(cfg, 80, 24)
		return
	}
	if png != "" {
		if err := saveScreens(cfg, png, 80, 24); err != nil {
			log.Printf("boxes: %v", err)
			os.Exit(1)
		}
		return
	}

	logFile, err := os.Create(cfg.Log)
	if err != nil {
		log.Printf("boxes: cannot create log file: %v", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	defer func() {
		output.SetForegroundColor(fg)
		output.SetBackgroundColor(bg)
	}()

	dev, err := tcell.NewDevice(glyphs(cfg))
	if err != nil {
		log.Printf("Failed to open terminal: %#v", err)
		return
	}
	defer dev.Exit()

	run(widgets.NewRoot(dev), dev, cfg)
}

func run(root *widgets.Root, dev tcell.Device, cfg config.Config) {
	lc := lifecycle.New()
	lc.OnStop(dev.Interrupt)

	screen, depth := mainScreen(cfg)
	root.Push(screen)
	for !lc.ShouldStop() {
		event, ok := root.Pump().(device.KeyEvent)
		if !ok {
			continue
		}
		switch {
		case event.Name == "Enter" && root.Len() <= maxDialogs:
			root.Push(dialog(cfg, root.Len()))
		case event.Name == "Esc" && root.Len() > 1:
			root.Pop()
		case event.Name == "Ctrl+C" || event.Rune == 'q':
			lc.Stop()
		}
		depth.SetValue(float64(root.Len()-1) / maxDialogs)
	}
}

func glyphs(cfg config.Config) map[string]tcell.Glyph {
	result := map[string]tcell.Glyph{}
	for name, tile := range cfg.Tiles {
		result[name] = tcell.Glyph{
			Rune:  []rune(tile.Glyph)[0],
			Style: config.Style(tile.Color, cfg.Palette.BG, 0),
		}
	}
	return result
}

// dumpScreens lays the demo out on an in-memory device and prints it.
func dumpScreens(cfg config.Config, width, height int) {
	dev := mock_device.New(width, height)
	root := demo(dev, cfg)
	fmt.Println(dev.Screen())
	fmt.Println()
	fmt.Print(root.String())
}

func saveScreens(cfg config.Config, path string, cols, rows int) error {
	tiles := map[string]rune{}
	for name, glyph := range glyphs(cfg) {
		tiles[name] = glyph.Rune
	}
	dev := raster.New(cols, rows, tiles)
	demo(dev, cfg)
	if err := dev.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// demo renders the main screen with one dialog open.
func demo(dev device.Device, cfg config.Config) *widgets.Root {
	root := widgets.NewRoot(dev)
	screen, depth := mainScreen(cfg)
	root.Push(screen)
	root.Push(dialog(cfg, 1))
	depth.SetValue(1.0 / maxDialogs)
	root.Layout()
	root.Render()
	return root
}
