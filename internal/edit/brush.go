// Package edit turns pointer input into grid edits and keeps the undo
// history of whole-grid snapshots.
package edit

import (
	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// Mode selects what a brush stroke does.
type Mode int

const (
	// ModePaint places the brush material.
	ModePaint Mode = iota
	// ModeErase turns every covered cell into air.
	ModeErase
)

func (m Mode) String() string {
	if m == ModeErase {
		return "erase"
	}
	return "paint"
}

// Surface is the grid a brush edits.
type Surface interface {
	Get(p core.Point) (sand.Cell, bool)
	Set(p core.Point, c sand.Cell)
}

// VariantSource picks cosmetic variants for painted cells.
type VariantSource interface {
	Uint8n(n uint8) uint8
}

// Disc lists the cells covered by a brush of the given radius centred on c:
// every offset with dx²+dy² < r². Radii below 2 cover only the centre.
func Disc(c core.Point, radius int) []core.Point {
	if radius < 1 {
		radius = 1
	}
	limit := radius*radius - 1
	pts := make([]core.Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > limit {
				continue
			}
			pts = append(pts, c.Offset(dx, dy))
		}
	}
	return pts
}

// Brush paints or erases discs of cells.
type Brush struct {
	Material sand.Material
	Radius   int
	Mode     Mode
	// Overwrite lets painting replace non-air cells.
	Overwrite bool
}

// Apply stamps the brush at center and reports how many cells changed.
// Painting only fills air unless Overwrite is set; erasing clears anything.
func (b Brush) Apply(s Surface, center core.Point, variants VariantSource) int {
	changed := 0
	for _, p := range Disc(center, b.Radius) {
		cur, ok := s.Get(p)
		if !ok {
			continue
		}
		switch b.Mode {
		case ModeErase:
			if cur.IsAir() {
				continue
			}
			s.Set(p, sand.Air)
		default:
			if b.Material == sand.MaterialAir {
				continue
			}
			if !cur.IsAir() && !b.Overwrite {
				continue
			}
			var v uint8
			if variants != nil {
				v = variants.Uint8n(sand.VariantCount)
			}
			s.Set(p, sand.Cell{Material: b.Material, Variant: v})
		}
		changed++
	}
	return changed
}
