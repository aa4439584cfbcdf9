package sand

import (
	"fmt"
	"strings"
)

// Material enumerates the substances a cell can hold.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialSand
	MaterialDirt
	MaterialStone
	MaterialWater
	MaterialLava
	MaterialWall
	MaterialFire
	MaterialAcid

	materialCount
)

// VariantCount is the number of cosmetic alternates per material.
const VariantCount = 9

var materialNames = [materialCount]string{
	MaterialAir:   "air",
	MaterialSand:  "sand",
	MaterialDirt:  "dirt",
	MaterialStone: "stone",
	MaterialWater: "water",
	MaterialLava:  "lava",
	MaterialWall:  "wall",
	MaterialFire:  "fire",
	MaterialAcid:  "acid",
}

// String returns the lower-case material name.
func (m Material) String() string {
	if m < materialCount {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// ParseMaterial resolves a material by name, ignoring case.
func ParseMaterial(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == key {
			return Material(i), nil
		}
	}
	return MaterialAir, fmt.Errorf("unknown material %q", name)
}

// Materials lists every material in declaration order.
func Materials() []Material {
	out := make([]Material, materialCount)
	for i := range out {
		out[i] = Material(i)
	}
	return out
}

// Paintable lists the materials a brush can place.
func Paintable() []Material {
	return Materials()[1:]
}

// Cell is the value stored in every grid slot. Variant only selects a color
// alternate; it carries over when water, lava or acid reactions turn a cell
// into stone.
type Cell struct {
	Material Material
	Variant  uint8
}

// Air is the empty cell and the zero value of Cell.
var Air = Cell{}

// IsAir reports whether the cell is empty.
func (c Cell) IsAir() bool { return c.Material == MaterialAir }
