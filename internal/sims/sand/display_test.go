package sand

import "testing"

func TestPaletteIndexUnique(t *testing.T) {
	seen := map[uint8]Cell{}
	for _, m := range Materials() {
		for v := uint8(0); v < VariantCount; v++ {
			c := Cell{Material: m, Variant: v}
			idx := PaletteIndex(c)
			if prev, dup := seen[idx]; dup {
				t.Fatalf("%v and %v share palette index %d", prev, c, idx)
			}
			seen[idx] = c
			if int(idx) >= len(sandPalette) {
				t.Fatalf("index %d outside palette of %d", idx, len(sandPalette))
			}
		}
	}
}

func TestPaletteColors(t *testing.T) {
	if ColorOf(Air).A != 0 {
		t.Fatal("air should be transparent")
	}
	mid := ColorOf(Cell{Material: MaterialSand, Variant: VariantCount / 2})
	if mid.R != 194 || mid.G != 178 || mid.B != 128 || mid.A != 255 {
		t.Fatalf("middle sand variant = %+v, want base color", mid)
	}
	dark := ColorOf(Cell{Material: MaterialSand, Variant: 0})
	light := ColorOf(Cell{Material: MaterialSand, Variant: VariantCount - 1})
	if !(dark.R < mid.R && mid.R < light.R) {
		t.Fatalf("variants should shade around the base: %d %d %d", dark.R, mid.R, light.R)
	}
}

func TestPaletteIndexClampsVariant(t *testing.T) {
	over := Cell{Material: MaterialWater, Variant: 200}
	top := Cell{Material: MaterialWater, Variant: VariantCount - 1}
	if PaletteIndex(over) != PaletteIndex(top) {
		t.Fatal("out-of-range variants should clamp to the last alternate")
	}
}
