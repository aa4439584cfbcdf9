package sand

import "testing"

func TestParseMaterial(t *testing.T) {
	for _, m := range Materials() {
		got, err := ParseMaterial(m.String())
		if err != nil {
			t.Fatalf("ParseMaterial(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMaterial(%q) = %v", m.String(), got)
		}
	}
	if got, err := ParseMaterial("  LaVa "); err != nil || got != MaterialLava {
		t.Fatalf("case-insensitive parse = %v, %v", got, err)
	}
	if _, err := ParseMaterial("plasma"); err == nil {
		t.Fatal("expected error for unknown material")
	}
}

func TestPaintableExcludesAir(t *testing.T) {
	for _, m := range Paintable() {
		if m == MaterialAir {
			t.Fatal("air must not be paintable")
		}
	}
	if len(Paintable()) != len(Materials())-1 {
		t.Fatalf("Paintable() has %d entries", len(Paintable()))
	}
}

func TestAirIsZeroValue(t *testing.T) {
	var c Cell
	if c != Air || !c.IsAir() {
		t.Fatal("zero Cell must be air")
	}
	if Material(200).String() == "" {
		t.Fatal("unknown materials still need a printable name")
	}
}
