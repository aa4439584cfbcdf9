package sand

import (
	"fmt"

	"sandfall/internal/core"
	pcore "sandfall/pkg/core"
)

// World owns the active grid generation plus a spare buffer the stepping
// sweep writes into.
type World struct {
	cfg Config

	cur *core.Grid[Cell]
	nxt *core.Grid[Cell]

	rng  *pcore.RNG
	coin Coin

	display []uint8
	dirty   bool
	tick    uint64
}

// Snapshot is an opaque copy of a world's cells used for undo history.
type Snapshot struct {
	size  core.Size
	cells []Cell
}

// Size reports the dimensions of the world the snapshot was taken from.
func (s Snapshot) Size() core.Size { return s.size }

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-air world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	cur := core.NewGrid[Cell](cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	rng := pcore.NewRNG(cfg.Seed)
	return &World{
		cfg:     cfg,
		cur:     cur,
		nxt:     core.NewGrid[Cell](cur.W, cur.H),
		rng:     rng,
		coin:    rng,
		display: make([]uint8, cur.W*cur.H),
		dirty:   true,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cur.W, H: w.cur.H} }

// Tick reports how many generations have been stepped since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// SetCoin replaces the tie-break source. Passing nil restores the seeded
// default.
func (w *World) SetCoin(c Coin) {
	if c == nil {
		c = w.rng
	}
	w.coin = c
}

// Grid exposes the active generation for read-only traversal.
func (w *World) Grid() *core.Grid[Cell] { return w.cur }

// Get returns the cell at p, or false outside the world.
func (w *World) Get(p core.Point) (Cell, bool) { return w.cur.Get(p) }

// Set overwrites the cell at p. Positions outside the world are ignored.
func (w *World) Set(p core.Point, c Cell) {
	if !w.cur.InBounds(p) {
		return
	}
	w.cur.Set(p, c)
	w.dirty = true
}

// Clear empties the world in place.
func (w *World) Clear() {
	w.cur.Clear()
	w.dirty = true
}

// Reset clears the world and restarts the default tie-break stream. A zero
// seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.cur.Clear()
	w.tick = 0
	w.dirty = true
}

// Step advances every cell by one generation. The sweep reads the frozen
// active generation and writes into the spare buffer, which then becomes
// active. A cell whose slot was already rewritten earlier in the same sweep
// is not dispatched again.
func (w *World) Step() {
	w.nxt.CopyFrom(w.cur)
	prev, next := w.cur.Cells(), w.nxt.Cells()
	for pos, cell := range w.cur.All() {
		if !dispatched(cell.Material) {
			continue
		}
		idx := pos.Y*w.cur.W + pos.X
		if next[idx] != prev[idx] {
			continue
		}
		update(w.nxt, pos, cell, w.coin)
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.tick++
	w.dirty = true
}

// Snapshot copies the active generation.
func (w *World) Snapshot() Snapshot {
	return Snapshot{size: w.Size(), cells: w.cur.Snapshot()}
}

// Restore overwrites the active generation with s. The snapshot must come
// from a world of the same size; anything else means the caller's history is
// corrupt and Restore panics.
func (w *World) Restore(s Snapshot) {
	if s.size != w.Size() {
		panic(fmt.Sprintf("sand: restore %dx%d snapshot into %dx%d world", s.size.W, s.size.H, w.cur.W, w.cur.H))
	}
	w.cur.Restore(s.cells)
	w.dirty = true
}

// Resize changes the world dimensions, keeping the overlapping top-left
// region.
func (w *World) Resize(width, height int) {
	w.cur.Resize(width, height)
	w.nxt = core.NewGrid[Cell](w.cur.W, w.cur.H)
	w.cfg.Width, w.cfg.Height = w.cur.W, w.cur.H
	w.display = make([]uint8, w.cur.W*w.cur.H)
	w.dirty = true
}

// Census counts the cells of every material present.
func (w *World) Census() map[Material]int {
	counts := make(map[Material]int)
	for _, c := range w.cur.Cells() {
		counts[c.Material]++
	}
	return counts
}

// Cells exposes the display buffer: one palette index per cell.
func (w *World) Cells() []uint8 {
	if w.dirty {
		w.rebuildDisplay()
	}
	return w.display
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
