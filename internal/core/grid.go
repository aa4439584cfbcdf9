package core

import (
	"fmt"
	"iter"
)

// Point addresses a grid cell. X grows to the right and Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Offset returns p shifted by (dx, dy).
func (p Point) Offset(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Grid stores a 2D grid of cells in row-major order. Coordinates outside
// [0,W)×[0,H) are never stored: reads report false and writes are dropped.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions, every cell holding the
// zero value of T.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0, false
	}
	return y*g.W + x, true
}

// InBounds reports whether p addresses a stored cell.
func (g *Grid[T]) InBounds(p Point) bool {
	_, ok := g.Index(p.X, p.Y)
	return ok
}

// Get returns the cell at p, or false when p lies outside the grid.
func (g *Grid[T]) Get(p Point) (T, bool) {
	idx, ok := g.Index(p.X, p.Y)
	if !ok {
		var zero T
		return zero, false
	}
	return g.data[idx], true
}

// Set overwrites the cell at p. Writes outside the grid are ignored.
func (g *Grid[T]) Set(p Point, v T) {
	if idx, ok := g.Index(p.X, p.Y); ok {
		g.data[idx] = v
	}
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	clear(g.data)
}

// Snapshot returns a copy of the backing buffer.
func (g *Grid[T]) Snapshot() []T {
	return append([]T(nil), g.data...)
}

// Restore copies a previously taken snapshot back into the grid. The
// snapshot must come from a grid of the same dimensions.
func (g *Grid[T]) Restore(cells []T) {
	if len(cells) != len(g.data) {
		panic(fmt.Sprintf("core: restore of %d cells into %dx%d grid", len(cells), g.W, g.H))
	}
	copy(g.data, cells)
}

// CopyFrom overwrites g with the contents of src, which must have the same
// dimensions.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	if src.W != g.W || src.H != g.H {
		panic(fmt.Sprintf("core: copy from %dx%d grid into %dx%d grid", src.W, src.H, g.W, g.H))
	}
	copy(g.data, src.data)
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{W: g.W, H: g.H, data: g.Snapshot()}
}

// All yields every cell with its position in row-major order, x varying
// fastest.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			if !yield(Point{X: i % g.W, Y: i / g.W}, v) {
				return
			}
		}
	}
}

// Resize changes the grid dimensions, keeping the overlapping top-left region
// and zeroing everything else.
func (g *Grid[T]) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w == g.W && h == g.H {
		return
	}
	data := make([]T, w*h)
	rows := min(h, g.H)
	cols := min(w, g.W)
	for y := 0; y < rows; y++ {
		copy(data[y*w:y*w+cols], g.data[y*g.W:y*g.W+cols])
	}
	g.W, g.H, g.data = w, h, data
}
