package edit

import (
	"testing"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

type constVariant uint8

func (v constVariant) Uint8n(uint8) uint8 { return uint8(v) }

func TestDisc(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{0, 1},
		{1, 1},
		{2, 9},
		{3, 25},
	}
	for _, tt := range tests {
		got := Disc(core.Point{X: 10, Y: 10}, tt.radius)
		if len(got) != tt.want {
			t.Errorf("Disc radius %d covers %d cells, want %d", tt.radius, len(got), tt.want)
		}
	}
	for _, p := range Disc(core.Point{X: 5, Y: 5}, 3) {
		dx, dy := p.X-5, p.Y-5
		if dx*dx+dy*dy >= 9 {
			t.Fatalf("offset (%d,%d) outside radius", dx, dy)
		}
	}
}

func TestBrushPaintsOnlyAir(t *testing.T) {
	w := sand.New(5, 5)
	wall := sand.Cell{Material: sand.MaterialWall}
	w.Set(core.Point{X: 2, Y: 2}, wall)

	b := Brush{Material: sand.MaterialSand, Radius: 2}
	changed := b.Apply(w, core.Point{X: 2, Y: 2}, constVariant(4))
	if changed != 8 {
		t.Fatalf("changed %d cells, want 8", changed)
	}
	if got, _ := w.Get(core.Point{X: 2, Y: 2}); got != wall {
		t.Fatalf("brush overwrote wall with %v", got.Material)
	}
	if got, _ := w.Get(core.Point{X: 1, Y: 1}); got != (sand.Cell{Material: sand.MaterialSand, Variant: 4}) {
		t.Fatalf("painted cell = %+v", got)
	}

	b.Overwrite = true
	b.Material = sand.MaterialWater
	if changed := b.Apply(w, core.Point{X: 2, Y: 2}, nil); changed != 9 {
		t.Fatalf("overwrite changed %d cells, want 9", changed)
	}
}

func TestBrushEraseClearsAnything(t *testing.T) {
	w := sand.New(3, 3)
	for p := range w.Grid().All() {
		w.Set(p, sand.Cell{Material: sand.MaterialStone})
	}
	b := Brush{Mode: ModeErase, Radius: 2}
	if changed := b.Apply(w, core.Point{X: 1, Y: 1}, nil); changed != 9 {
		t.Fatalf("erase changed %d cells, want 9", changed)
	}
	if w.Census()[sand.MaterialAir] != 9 {
		t.Fatal("erase left material behind")
	}
	if changed := b.Apply(w, core.Point{X: 1, Y: 1}, nil); changed != 0 {
		t.Fatalf("erasing air reported %d changes", changed)
	}
}

func TestBrushClipsAtEdges(t *testing.T) {
	w := sand.New(3, 3)
	b := Brush{Material: sand.MaterialSand, Radius: 2}
	if changed := b.Apply(w, core.Point{X: 0, Y: 0}, nil); changed != 4 {
		t.Fatalf("corner stamp changed %d cells, want 4", changed)
	}
	if changed := b.Apply(w, core.Point{X: -5, Y: -5}, nil); changed != 0 {
		t.Fatalf("off-grid stamp changed %d cells", changed)
	}
}

func TestBrushAirMaterialPaintsNothing(t *testing.T) {
	w := sand.New(2, 2)
	b := Brush{Material: sand.MaterialAir, Radius: 2}
	if changed := b.Apply(w, core.Point{X: 0, Y: 0}, nil); changed != 0 {
		t.Fatalf("painting air changed %d cells", changed)
	}
}
