package sand

import "sandfall/internal/core"

// Coin supplies the fair left/right tie-breaks used by the movement rules.
// True selects the right-hand side.
type Coin interface {
	Bool() bool
}

var (
	offRight = core.Point{X: 1, Y: 0}
	offLeft  = core.Point{X: -1, Y: 0}
	offUp    = core.Point{X: 0, Y: -1}
	offDown  = core.Point{X: 0, Y: 1}
)

// orthogonal is the probe order shared by reactions and acid.
var orthogonal = [4]core.Point{offRight, offLeft, offUp, offDown}

// update applies the rule for cell's material. Rules read neighbors from next
// and write into next; cell is the acting value from the frozen generation.
func update(next *core.Grid[Cell], pos core.Point, cell Cell, coin Coin) {
	switch cell.Material {
	case MaterialSand, MaterialDirt, MaterialStone:
		updateFallingSolid(next, pos, cell, coin)
	case MaterialWater:
		updateWater(next, pos, cell, coin)
	case MaterialLava:
		updateLava(next, pos, cell, coin)
	case MaterialAcid:
		updateAcid(next, pos, cell, coin)
	case MaterialFire:
		updateFire(next, pos, cell, coin)
	}
}

// dispatched reports whether the stepping sweep visits cells of material m.
func dispatched(m Material) bool {
	return m != MaterialAir && m != MaterialWall
}

func side(coin Coin) int {
	if coin.Bool() {
		return 1
	}
	return -1
}

func move(next *core.Grid[Cell], from, to core.Point, cell Cell) {
	next.Set(to, cell)
	next.Set(from, Air)
}

// sinkable reports whether a falling solid can displace c.
func sinkable(c Cell) bool {
	return c.Material == MaterialAir || c.Material == MaterialWater
}

func updateFallingSolid(next *core.Grid[Cell], pos core.Point, cell Cell, coin Coin) {
	below := pos.Add(offDown)
	if c, ok := next.Get(below); ok && sinkable(c) {
		next.Set(below, cell)
		next.Set(pos, c)
		return
	}
	diag := pos.Offset(side(coin), 1)
	if c, ok := next.Get(diag); ok && sinkable(c) {
		move(next, pos, diag, cell)
	}
}

func updateFluid(next *core.Grid[Cell], pos core.Point, cell Cell, coin Coin) {
	below := pos.Add(offDown)
	if c, ok := next.Get(below); ok && c.IsAir() {
		move(next, pos, below, cell)
		return
	}
	dx := side(coin)
	diag := pos.Offset(dx, 1)
	if c, ok := next.Get(diag); ok && c.IsAir() {
		move(next, pos, diag, cell)
		return
	}
	lateral := pos.Offset(dx, 0)
	if c, ok := next.Get(lateral); ok && c.IsAir() {
		move(next, pos, lateral, cell)
	}
}

// react turns cell and the first orthogonal neighbor made of other into
// stone. Each keeps its own variant.
func react(next *core.Grid[Cell], pos core.Point, cell Cell, other Material) bool {
	for _, off := range orthogonal {
		n := pos.Add(off)
		c, ok := next.Get(n)
		if !ok || c.Material != other {
			continue
		}
		next.Set(pos, Cell{Material: MaterialStone, Variant: cell.Variant})
		next.Set(n, Cell{Material: MaterialStone, Variant: c.Variant})
		return true
	}
	return false
}

func updateWater(next *core.Grid[Cell], pos core.Point, cell Cell, coin Coin) {
	if react(next, pos, cell, MaterialLava) {
		return
	}
	updateFluid(next, pos, cell, coin)
}

func updateLava(next *core.Grid[Cell], pos core.Point, cell Cell, coin Coin) {
	if react(next, pos, cell, MaterialWater) {
		return
	}
	updateFluid(next, pos, cell, coin)
}

// dissolvable reports whether acid eats c.
func dissolvable(c Cell) bool {
	switch c.Material {
	case MaterialAir, MaterialAcid, MaterialWall:
		return false
	}
	return true
}

func updateAcid(next *core.Grid[Cell], pos core.Point, cell Cell, coin Coin) {
	for _, off := range orthogonal {
		n := pos.Add(off)
		if c, ok := next.Get(n); ok && dissolvable(c) {
			next.Set(n, Air)
			next.Set(pos, Air)
			return
		}
	}
	updateFluid(next, pos, cell, coin)
}

func updateFire(next *core.Grid[Cell], pos core.Point, cell Cell, coin Coin) {
	if _, ok := next.Get(pos.Add(offDown)); !ok {
		next.Set(pos, Air)
		return
	}
	target := pos.Offset(side(coin), 1)
	c, ok := next.Get(target)
	switch {
	case !ok, c.Material == MaterialFire:
	case c.IsAir():
		next.Set(target, cell)
		next.Set(pos, c)
	default:
		next.Set(pos, Air)
	}
}
