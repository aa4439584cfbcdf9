//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the editor panel to the right of the simulation view: int
// controls with +/- buttons, the material picker and read-only values.
type HUD struct {
	source    core.ParameterProvider
	intSetter core.IntParameterSetter

	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	materials    []materialRow
	panelOffsetX int

	pixel *ebiten.Image
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

type materialRow struct {
	material sand.Material
	rect     image.Rectangle
}

// NewHUD constructs a HUD for the provided source and panel width. A zero
// width disables the panel.
func NewHUD(source core.ParameterProvider, width int) *HUD {
	if width <= 0 || source == nil {
		return nil
	}
	h := &HUD{source: source, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := source.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	h.layout()
	return h
}

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.source.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawMaterials()
	h.drawValues()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if h.intSetter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		step := state.control.Step
		if step <= 0 {
			step = 1
		}
		if pointInRect(px, my, state.minusRect) {
			h.intSetter.SetIntParameter(state.control.Key, state.control.Clamp(state.intValue-step))
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.intSetter.SetIntParameter(state.control.Key, state.control.Clamp(state.intValue+step))
			return
		}
	}
	for i, row := range h.materials {
		if pointInRect(px, my, row.rect) {
			h.intSetter.SetIntParameter("material", i)
			return
		}
	}
}

func (h *HUD) layout() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
	top := controlsTop + len(h.controls)*lineHeight + sectionGap
	for i, m := range sand.Paintable() {
		y := top + i*rowHeight
		h.materials = append(h.materials, materialRow{
			material: m,
			rect:     image.Rect(panelPadding, y, h.width-panelPadding, y+rowHeight-2),
		})
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Sandbox", face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)
		h.drawButton(state.minusRect, "-", state.hasValue)
		h.drawButton(state.plusRect, "+", state.hasValue)
	}
}

func (h *HUD) drawMaterials() {
	face := basicfont.Face7x13
	selected := ""
	if p, ok := h.snapshot.Lookup("material"); ok {
		selected = p.Value
	}
	for i, row := range h.materials {
		name := row.material.String()
		if name == selected {
			h.fillRect(row.rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})
		}
		swatch := image.Rect(row.rect.Min.X+2, row.rect.Min.Y+3, row.rect.Min.X+14, row.rect.Max.Y-3)
		h.fillRect(swatch, sand.ColorOf(sand.Cell{Material: row.material, Variant: sand.VariantCount / 2}))
		label := strconv.Itoa(i+1) + "  " + name
		text.Draw(h.panel, label, face, swatch.Max.X+8, row.rect.Min.Y+rowBaseline, labelColor)
	}
}

func (h *HUD) drawValues() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + sectionGap + len(h.materials)*rowHeight + sectionGap
	for _, group := range h.snapshot.Groups {
		if group.Name == "Editor" {
			continue
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += valueLine
		for _, p := range group.Params {
			if y > h.lastHeight-panelPadding {
				return
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, dimColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += valueLine
		}
		y += valueLine / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled || h.intSetter == nil {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	h.panel.DrawImage(h.pixel, op)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	rowHeight      = 20
	rowBaseline    = 14
	sectionGap     = 12
	valueLine      = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
