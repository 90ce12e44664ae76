package main

import (
	"fmt"

	"boxes/config"
	"boxes/device"
	"boxes/widgets"
)

const about = "Boxes negotiates sizes in two phases: widths first, then heights " +
	"for those widths. Resize the terminal to watch this paragraph rewrap."

// maxDialogs is how many dialogs the depth gauge in the status line can show.
const maxDialogs = 8

func mainScreen(cfg config.Config) (widgets.Widget, *widgets.ProgressBar) {
	palette := cfg.Palette
	title := widgets.NewStyled(config.Style(palette.BG, palette.Title, device.Bold),
		widgets.Row(widgets.NewText(" Boxes"), widgets.NewSpacer(true, false)))

	body := widgets.NewText(about).SetWrap(true)
	body.SetMargin(widgets.EdgeSymmetric(1, 2))

	legend := widgets.NewGrid().SetColumnFlex(1, 1)
	for i, name := range cfg.TileNames() {
		tile := cfg.Tiles[name]
		legend.Add(widgets.NewImage(device.Tile{ID: name, Width: tile.Width, Height: tile.Height}), 0, i, 1, 1)
		label := widgets.NewText(" " + name)
		legend.Add(label, 1, i, 1, 1)
	}
	legend.SetMargin(widgets.Edges{Left: 2})

	filler := widgets.NewSpacer(false, true)

	depth := widgets.NewProgressBar(0, maxDialogs)
	depth.SetMargin(widgets.Edges{Left: 1, Right: 1})
	status := widgets.NewStyled(config.Style(palette.FG, palette.Accent, 0),
		widgets.Row(widgets.NewText(" Enter: open  Esc: close  q: quit").SetEllipsize(true), widgets.NewSpacer(true, false), depth))

	screen := widgets.Column(title, body, legend, filler, status).SetAlignItems(widgets.AlignStretch)
	screen.SetExpand(true, true)
	return widgets.NewStyled(config.Style(palette.FG, palette.BG, 0), screen), depth
}

// dialog is a centred box drawn over the screens below it.
func dialog(cfg config.Config, depth int) widgets.Widget {
	palette := cfg.Palette
	message := widgets.NewText(fmt.Sprintf("Dialog %d. Press Esc to close it.", depth)).SetWrap(true)
	message.SetMargin(widgets.EdgeSymmetric(1, 2))

	frame := widgets.NewStyled(config.Style(palette.FG, palette.Accent, device.Bold), message)

	centred := widgets.Column(frame).SetJustify(widgets.JustifyCenter).SetAlignItems(widgets.AlignCenter)
	centred.SetExpand(true, true)
	return centred
}
