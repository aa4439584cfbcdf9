//go:build !ebiten

package ui

import "sandfall/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// DrawBrush is a no-op placeholder.
func (o *Overlay) DrawBrush(any, core.Point, int, bool) {}
