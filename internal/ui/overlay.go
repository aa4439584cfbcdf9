//go:build ebiten

package ui

import (
	"image/color"

	"sandfall/internal/core"
	"sandfall/internal/edit"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	paintOutline = color.RGBA{R: 255, G: 255, B: 255, A: 96}
	eraseOutline = color.RGBA{R: 255, G: 80, B: 80, A: 128}
)

// Overlay outlines the brush footprint under the cursor.
type Overlay struct {
	scale int
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for tiles of scale pixels.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// DrawBrush tints the edge tiles of the disc a brush of radius covers at
// center.
func (o *Overlay) DrawBrush(screen *ebiten.Image, center core.Point, radius int, erase bool) {
	clr := paintOutline
	if erase {
		clr = eraseOutline
	}
	disc := edit.Disc(center, radius)
	inside := make(map[core.Point]struct{}, len(disc))
	for _, p := range disc {
		inside[p] = struct{}{}
	}
	for _, p := range disc {
		if !onEdge(inside, p) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		op.GeoM.Translate(float64(p.X*o.scale), float64(p.Y*o.scale))
		op.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(o.pixel, op)
	}
}

func onEdge(inside map[core.Point]struct{}, p core.Point) bool {
	for _, off := range [4]core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
		if _, ok := inside[p.Add(off)]; !ok {
			return true
		}
	}
	return false
}
