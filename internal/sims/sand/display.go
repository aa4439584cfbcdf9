package sand

import "image/color"

var sandPalette = buildSandPalette()

// Palette exposes the color palette used for rendering the sand world. Entry
// PaletteIndex(c) holds the color of cell c.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

// PaletteIndex encodes a cell as its display value.
func PaletteIndex(c Cell) uint8 {
	v := c.Variant
	if v >= VariantCount {
		v = VariantCount - 1
	}
	m := c.Material
	if m >= materialCount {
		m = MaterialAir
	}
	return uint8(m)*VariantCount + v
}

// ColorOf returns the display color of a cell.
func ColorOf(c Cell) color.RGBA {
	return sandPalette[PaletteIndex(c)]
}

func buildSandPalette() []color.RGBA {
	palette := make([]color.RGBA, int(materialCount)*VariantCount)
	for m := Material(0); m < materialCount; m++ {
		base := baseColor(m)
		for v := 0; v < VariantCount; v++ {
			palette[int(m)*VariantCount+v] = shade(base, v)
		}
	}
	return palette
}

func baseColor(m Material) color.RGBA {
	switch m {
	case MaterialSand:
		return color.RGBA{R: 194, G: 178, B: 128, A: 255}
	case MaterialDirt:
		return color.RGBA{R: 110, G: 78, B: 46, A: 255}
	case MaterialStone:
		return color.RGBA{R: 48, G: 48, B: 52, A: 255}
	case MaterialWater:
		return color.RGBA{R: 3, G: 78, B: 162, A: 255}
	case MaterialLava:
		return color.RGBA{R: 255, G: 40, B: 0, A: 255}
	case MaterialWall:
		return color.RGBA{R: 100, G: 100, B: 100, A: 255}
	case MaterialFire:
		return color.RGBA{R: 238, G: 88, B: 34, A: 255}
	case MaterialAcid:
		return color.RGBA{R: 0, G: 255, B: 126, A: 255}
	default:
		return color.RGBA{}
	}
}

// shade brightens or darkens base around the middle variant. Transparent
// colors are left alone.
func shade(base color.RGBA, variant int) color.RGBA {
	if base.A == 0 {
		return base
	}
	factor := 1 + float64(variant-VariantCount/2)*0.04
	return color.RGBA{
		R: scaleChannel(base.R, factor),
		G: scaleChannel(base.G, factor),
		B: scaleChannel(base.B, factor),
		A: base.A,
	}
}

func scaleChannel(c uint8, factor float64) uint8 {
	v := float64(c)*factor + 0.5
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func (w *World) rebuildDisplay() {
	for i, c := range w.cur.Cells() {
		w.display[i] = PaletteIndex(c)
	}
	w.dirty = false
}
