package sand

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const hourglass = `
name: hourglass
width: 8
height: 6
seed: 5
ticks: 12
fills:
  - {material: sand, x: 2, y: 0, w: 4, h: 2, variant: 3}
  - {material: wall, x: 0, y: 3, w: 3, h: 1}
  - {material: Wall, x: 5, y: 3, w: 3, h: 1}
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(hourglass))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if s.Name != "hourglass" || s.Width != 8 || s.Height != 6 || s.Seed != 5 || s.Ticks != 12 {
		t.Fatalf("unexpected header %+v", s)
	}
	w, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	census := w.Census()
	if census[MaterialSand] != 8 || census[MaterialWall] != 6 {
		t.Fatalf("unexpected census %v", census)
	}
	expectWorldCell(t, w, pt(2, 0), Cell{Material: MaterialSand, Variant: 3})
}

func TestParseScenarioDefaults(t *testing.T) {
	s, err := ParseScenario([]byte("name: empty\n"))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	def := DefaultConfig()
	if s.Config() != def {
		t.Fatalf("Config() = %+v, want %+v", s.Config(), def)
	}
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad yaml", "fills: [", "failed to parse"},
		{"unknown material", "width: 4\nheight: 4\nfills: [{material: plasma, w: 1, h: 1}]", "unknown material"},
		{"outside grid", "width: 4\nheight: 4\nfills: [{material: sand, x: 3, w: 2, h: 1}]", "outside"},
		{"empty rect", "width: 4\nheight: 4\nfills: [{material: sand, w: 0, h: 1}]", "empty rectangle"},
		{"bad variant", "width: 4\nheight: 4\nfills: [{material: sand, w: 1, h: 1, variant: 9}]", "variant"},
		{"negative ticks", "ticks: -1", "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(hourglass), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if len(s.Fills) != 3 {
		t.Fatalf("loaded %d fills", len(s.Fills))
	}
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
