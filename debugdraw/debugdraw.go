// Package debugdraw renders a spatialgrid.World with Ebitengine vector
// strokes: the grid, each entity's shape, and optionally its bounding box.
// It is meant for development overlays, not for game art.
package debugdraw

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/spatialgrid"
)

// Options controls what DrawWorld renders. A nil *Options uses
// DefaultOptions.
type Options struct {
	// OffsetX and OffsetY translate world coordinates to screen coordinates.
	OffsetX, OffsetY float64

	ShowGrid bool
	ShowAABB bool

	StrokeWidth float32

	// GroupColors overrides the palette color for specific groups.
	GroupColors map[spatialgrid.GroupID]color.Color
}

// DefaultOptions draws the grid and shapes with 1px strokes.
func DefaultOptions() *Options {
	return &Options{ShowGrid: true, StrokeWidth: 1}
}

var (
	gridColor = color.RGBA{60, 60, 60, 255}
	aabbColor = color.RGBA{255, 255, 255, 96}
)

// palette cycles through distinguishable colors by group id.
var palette = []color.RGBA{
	{0x4c, 0xaf, 0x50, 0xff}, // green
	{0x21, 0x96, 0xf3, 0xff}, // blue
	{0xf4, 0x43, 0x36, 0xff}, // red
	{0xff, 0xc1, 0x07, 0xff}, // amber
	{0x9c, 0x27, 0xb0, 0xff}, // purple
	{0x00, 0xbc, 0xd4, 0xff}, // cyan
	{0xff, 0x57, 0x22, 0xff}, // deep orange
	{0xe0, 0xe0, 0xe0, 0xff}, // grey
}

// GroupColor returns the color used for gid.
func (o *Options) GroupColor(gid spatialgrid.GroupID) color.Color {
	if c, ok := o.GroupColors[gid]; ok {
		return c
	}
	return palette[int(gid)%len(palette)]
}

// DrawWorld strokes the grid and every active entity of w onto dst.
func DrawWorld(dst *ebiten.Image, w *spatialgrid.World, opts *Options) {
	if opts == nil {
		opts = DefaultOptions()
	}
	sw := opts.StrokeWidth
	if sw <= 0 {
		sw = 1
	}
	ox, oy := float32(opts.OffsetX), float32(opts.OffsetY)

	if opts.ShowGrid {
		drawGrid(dst, w, ox, oy, sw)
	}

	for e := range w.All() {
		clr := opts.GroupColor(e.GroupID())
		x, y := float32(e.X)+ox, float32(e.Y)+oy

		switch s := e.Shape().(type) {
		case spatialgrid.Circle:
			vector.StrokeCircle(dst, x, y, float32(s.Radius), sw, clr, true)
		case spatialgrid.Rectangle:
			vector.StrokeRect(dst,
				x+float32(s.LeftTop.X), y+float32(s.LeftTop.Y),
				float32(s.RightBottom.X-s.LeftTop.X), float32(s.RightBottom.Y-s.LeftTop.Y),
				sw, clr, true)
		case spatialgrid.Line:
			vector.StrokeLine(dst,
				x+float32(s.Start.X), y+float32(s.Start.Y),
				x+float32(s.End.X), y+float32(s.End.Y),
				sw, clr, true)
		default:
			// Shapeless entities are drawn as a small cross.
			vector.StrokeLine(dst, x-3, y, x+3, y, sw, clr, false)
			vector.StrokeLine(dst, x, y-3, x, y+3, sw, clr, false)
			continue
		}

		if opts.ShowAABB {
			b := e.Bounds()
			vector.StrokeRect(dst,
				float32(b.Left)+ox, float32(b.Top)+oy,
				float32(b.Width()), float32(b.Height()),
				1, aabbColor, false)
		}
	}
}

func drawGrid(dst *ebiten.Image, w *spatialgrid.World, ox, oy, sw float32) {
	width, height := w.WorldSize()
	cols, rows := w.GridSize()
	if cols <= 0 || rows <= 0 {
		return
	}
	fw, fh := float32(width), float32(height)
	for c := 0; c <= cols; c++ {
		x := ox + fw*float32(c)/float32(cols)
		vector.StrokeLine(dst, x, oy, x, oy+fh, sw, gridColor, false)
	}
	for r := 0; r <= rows; r++ {
		y := oy + fh*float32(r)/float32(rows)
		vector.StrokeLine(dst, ox, y, ox+fw, y, sw, gridColor, false)
	}
}

// StatsText formats the counters of the last Update for an overlay.
func StatsText(w *spatialgrid.World) string {
	s := w.Stats()
	return fmt.Sprintf("FPS: %.1f\nentities: %d\ncells: %d\npairs: %d\ntests: %d\nhits: %d",
		ebiten.ActualFPS(), s.Entities, s.OccupiedCells, s.CandidatePairs, s.NarrowPhaseTests, s.Collisions)
}

// DrawStats prints StatsText in the top-left corner of dst over a
// semi-transparent background.
func DrawStats(dst *ebiten.Image, w *spatialgrid.World) {
	vector.DrawFilledRect(dst, 0, 0, 130, 100, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrint(dst, StatsText(w))
}
