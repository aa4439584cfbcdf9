package app

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"sandfall/internal/core"
	"sandfall/internal/edit"
	"sandfall/internal/sims/sand"
	pcore "sandfall/pkg/core"
)

const (
	maxBrushRadius = 32
	maxTPS         = 240
)

// Session owns the world being edited and the state around it: brush,
// undo history, pacing and pause flags. Edits and ticks alternate on the
// caller's goroutine.
type Session struct {
	world    *sand.World
	brush    edit.Brush
	history  *edit.History[sand.Snapshot]
	pacer    *core.FixedStep
	variants *pcore.RNG
	log      logrus.FieldLogger

	paused   bool
	stepOnce bool
	stroking bool
}

// NewSession wraps world using the editor settings from cfg.
func NewSession(world *sand.World, cfg *Config, log logrus.FieldLogger) (*Session, error) {
	material, err := sand.ParseMaterial(cfg.Material)
	if err != nil {
		return nil, fmt.Errorf("brush material: %w", err)
	}
	if material == sand.MaterialAir {
		return nil, fmt.Errorf("brush material: air is not paintable")
	}
	return &Session{
		world:    world,
		brush:    edit.Brush{Material: material, Radius: cfg.Brush},
		history:  edit.NewHistory[sand.Snapshot](cfg.History),
		pacer:    core.NewFixedStep(cfg.TPS),
		variants: pcore.NewRNG(cfg.Seed),
		log:      log,
	}, nil
}

// World exposes the simulation being edited.
func (s *Session) World() *sand.World { return s.world }

// Brush returns the current brush settings.
func (s *Session) Brush() edit.Brush { return s.brush }

// TPS reports the automatic tick rate.
func (s *Session) TPS() int { return s.pacer.TPS() }

// Paused reports whether automatic ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

// BeginStroke records an undo point. Repeated calls during one stroke are
// ignored until EndStroke.
func (s *Session) BeginStroke() {
	if s.stroking {
		return
	}
	s.stroking = true
	s.history.Push(s.world.Snapshot())
}

// EndStroke closes the current stroke.
func (s *Session) EndStroke() { s.stroking = false }

// PaintAt stamps the brush material around p.
func (s *Session) PaintAt(p core.Point) int {
	b := s.brush
	b.Mode = edit.ModePaint
	return b.Apply(s.world, p, s.variants)
}

// EraseAt clears the brush disc around p.
func (s *Session) EraseAt(p core.Point) int {
	b := s.brush
	b.Mode = edit.ModeErase
	return b.Apply(s.world, p, s.variants)
}

// Undo restores the previous snapshot.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo(s.world.Snapshot())
	if !ok {
		return false
	}
	s.world.Restore(snap)
	s.log.WithField("depth", s.history.Len()).Debug("undo")
	return true
}

// Redo re-applies the most recently undone snapshot.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo(s.world.Snapshot())
	if !ok {
		return false
	}
	s.world.Restore(snap)
	s.log.WithField("depth", s.history.Len()).Debug("redo")
	return true
}

// Clear empties the world, keeping an undo point.
func (s *Session) Clear() {
	s.history.Push(s.world.Snapshot())
	s.world.Clear()
	s.log.Info("world cleared")
}

// Resize changes the world dimensions. Existing snapshots no longer fit and
// are dropped.
func (s *Session) Resize(w, h int) {
	s.history.Reset()
	s.world.Resize(w, h)
	size := s.world.Size()
	s.log.WithFields(logrus.Fields{"w": size.W, "h": size.H}).Info("world resized")
}

// SelectMaterial changes the brush material. Air cannot be selected.
func (s *Session) SelectMaterial(m sand.Material) bool {
	for _, p := range sand.Paintable() {
		if p == m {
			s.brush.Material = m
			return true
		}
	}
	return false
}

// TogglePause flips automatic ticking and reports the new state.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	s.log.WithField("paused", s.paused).Debug("pause toggled")
	return s.paused
}

// StepOnce queues a single tick, even while paused.
func (s *Session) StepOnce() { s.stepOnce = true }

// Advance runs at most one tick when one is due and reports whether it did.
func (s *Session) Advance() bool {
	if s.stepOnce {
		s.stepOnce = false
		s.world.Step()
		return true
	}
	if s.paused || !s.pacer.ShouldStep() {
		return false
	}
	s.world.Step()
	return true
}

// Parameters reports the world snapshot plus editor state for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.world.Parameters()
	editor := core.ParameterGroup{
		Name: "Editor",
		Params: []core.Parameter{
			{Key: "material", Label: "Material", Type: core.ParamTypeString, Value: s.brush.Material.String()},
			{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Value: strconv.Itoa(s.brush.Radius)},
			{Key: "tps", Label: "Ticks/sec", Type: core.ParamTypeInt, Value: strconv.Itoa(s.TPS())},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.paused)},
			{Key: "history", Label: "Undo depth", Type: core.ParamTypeInt, Value: strconv.Itoa(s.history.Len())},
		},
	}
	snap.Groups = append([]core.ParameterGroup{editor}, snap.Groups...)
	return snap
}

// ParameterControls lists the HUD-adjustable settings.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxBrushRadius, HasMin: true, HasMax: true},
		{Key: "tps", Label: "Ticks/sec", Type: core.ParamTypeInt, Step: 5, Min: 1, Max: maxTPS, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an editor setting. The "material" key takes an
// index into sand.Paintable().
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "material":
		paintable := sand.Paintable()
		if value < 0 || value >= len(paintable) {
			return false
		}
		return s.SelectMaterial(paintable[value])
	}
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "brush_radius":
			s.brush.Radius = value
		case "tps":
			s.pacer.SetTPS(value)
		}
		return true
	}
	return false
}
