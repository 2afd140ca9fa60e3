package studio

import (
	"fmt"

	"github.com/Faultbox/asaro-studio/internal/engine/ui2d"
	"github.com/Faultbox/asaro-studio/internal/params"
	"github.com/Faultbox/asaro-studio/internal/widget"
)

// Intensity sliders run over [0,1]; the stored intensity is ten times that.
const intensityScale = 10

const panelID = "controls"

// Section ids.
const (
	sectionHead       = "head"
	sectionPrimary    = "primary"
	sectionSecondary  = "secondary"
	sectionMaterial   = "material"
	sectionBackground = "background"
)

// lightControls are the drag widgets of one light.
type lightControls struct {
	slot      params.Slot
	orbit     *widget.Dial
	height    *widget.Slider
	intensity *widget.Slider
}

func newLightControls(d *widget.Dispatcher, store *params.Store, slot params.Slot) *lightControls {
	light := func() params.Light { return store.Snapshot().Light(slot) }
	return &lightControls{
		slot: slot,
		orbit: widget.NewDial(d, "Orbit",
			func() float64 { return light().Orbit },
			func(v float64) { store.SetLightOrbit(slot, v) },
		),
		height: widget.NewSlider(d, "Height",
			func() float64 { return light().Height },
			func(v float64) { store.SetLightHeight(slot, v) },
		),
		intensity: widget.NewSlider(d, "Intensity",
			func() float64 { return light().Intensity / intensityScale },
			func(v float64) { store.SetLightIntensity(slot, v*intensityScale) },
		),
	}
}

func (lc *lightControls) hide() {
	lc.orbit.SetBounds(widget.Rect{})
	lc.height.SetBounds(widget.Rect{})
	lc.intensity.SetBounds(widget.Rect{})
}

func (lc *lightControls) close() {
	lc.orbit.Close()
	lc.height.Close()
	lc.intensity.Close()
}

// Panel is the control panel: collapsible sections holding the drag widgets,
// colour swatches and checkboxes, all bound to the store.
type Panel struct {
	store   *params.Store
	palette []params.RGB
	colors  []ui2d.Color

	dialSize     float32
	sliderWidth  float32
	sliderHeight float32

	head      *widget.Wheel
	roughness *widget.Slider
	lights    [2]*lightControls
}

// PanelOptions sizes the panel's widgets.
type PanelOptions struct {
	DialSize     int
	SliderWidth  int
	SliderHeight int
	Palette      []params.RGB
}

// NewPanel creates every widget and registers it with d. Widgets start
// hidden until the first layout pass places them.
func NewPanel(d *widget.Dispatcher, store *params.Store, opts PanelOptions) *Panel {
	p := &Panel{
		store:        store,
		palette:      opts.Palette,
		dialSize:     float32(opts.DialSize),
		sliderWidth:  float32(opts.SliderWidth),
		sliderHeight: float32(opts.SliderHeight),
	}
	for _, c := range opts.Palette {
		p.colors = append(p.colors, ui2d.FromRGB(c))
	}

	p.head = widget.NewWheel(d, "Rotation",
		func() float64 { return store.Snapshot().Scene.HeadRotation },
		store.SetHeadRotation,
	)
	p.roughness = widget.NewSlider(d, "Roughness",
		func() float64 { return store.Snapshot().Material.Roughness },
		store.SetMaterialRoughness,
	)
	p.lights[params.Primary] = newLightControls(d, store, params.Primary)
	p.lights[params.Secondary] = newLightControls(d, store, params.Secondary)
	return p
}

// Close tears down every widget, ending any drag in progress.
func (p *Panel) Close() {
	p.head.Close()
	p.roughness.Close()
	for _, lc := range p.lights {
		lc.close()
	}
}

// Layout draws the panel into ui and places the widgets for the next
// frame's hit testing. Widgets in collapsed sections get empty bounds.
func (p *Panel) Layout(ui *ui2d.Context, area ui2d.Rect) {
	s := p.store.Snapshot()
	b := ui.Batch()

	ui.BeginPanel(panelID, area.X, area.Y, area.W, area.H, "Lighting Controls")
	defer ui.EndPanel()

	// Head
	p.head.SetBounds(widget.Rect{})
	if ui.Section(sectionHead, "HEAD", ui2d.ColorHighlight) {
		ui.LabelValue("Rotation", formatTurns(s.Scene.HeadRotation))
		cell := ui.Reserve(p.dialSize + 20)
		r := centered(cell, p.dialSize+20, p.dialSize+20)
		p.head.SetBounds(rectOf(r))
		drawWheel(b, p.head, ui2d.ColorHighlight)
		ui.EndSection()
	}

	p.lightSection(ui, s, p.lights[params.Primary], sectionPrimary, "PRIMARY LIGHT")
	p.lightSection(ui, s, p.lights[params.Secondary], sectionSecondary, "SECONDARY LIGHT")

	// Material
	p.roughness.SetBounds(widget.Rect{})
	if ui.Section(sectionMaterial, "MATERIAL", ui2d.FromRGB(s.Material.BaseColor)) {
		if i, ok := ui.Swatches("base", "Base Color", ui2d.FromRGB(s.Material.BaseColor), p.colors); ok {
			p.store.SetMaterialBaseColor(p.palette[i])
		}
		cells := ui.Columns(3, p.sliderHeight+captionSpace)
		r := centered(cells[0], p.sliderWidth, p.sliderHeight)
		p.roughness.SetBounds(rectOf(r))
		drawSlider(b, p.roughness, ui2d.ColorHighlight)
		caption(b, cells[0], r.Y+r.H+4, fmt.Sprintf("Rough %.2f", s.Material.Roughness), ui2d.ColorTextDim)
		ui.EndSection()
	}

	// Background
	if ui.Section(sectionBackground, "BACKGROUND", ui2d.FromRGB(s.Scene.Background)) {
		if i, ok := ui.Swatches("bg", "Color", ui2d.FromRGB(s.Scene.Background), p.colors); ok {
			p.store.SetBackground(p.palette[i])
		}
		ui.EndSection()
	}
}

// captionSpace is the space left under a widget for its caption.
const captionSpace = 18

func (p *Panel) lightSection(ui *ui2d.Context, s params.State, lc *lightControls, id, title string) {
	lc.hide()
	l := s.Light(lc.slot)
	accent := ui2d.FromRGB(l.Color)
	if !ui.Section(id, title, accent) {
		return
	}
	defer ui.EndSection()

	if lc.slot == params.Secondary {
		if on := ui.Checkbox(id+"_enable", "Enable", l.Enabled); on != l.Enabled {
			p.store.SetLightEnabled(lc.slot, on)
			l = p.store.Snapshot().Light(lc.slot)
		}
		if !l.Enabled {
			return
		}
	}

	if i, ok := ui.Swatches(id+"_color", "Color", accent, p.colors); ok {
		p.store.SetLightColor(lc.slot, p.palette[i])
	}

	b := ui.Batch()
	cells := ui.Columns(3, max(p.dialSize, p.sliderHeight)+captionSpace)

	dial := centered(cells[0], p.dialSize, p.dialSize)
	lc.orbit.SetBounds(rectOf(dial))
	drawDial(b, lc.orbit, accent)
	caption(b, cells[0], dial.Y+dial.H+4, formatDegrees(l.Orbit), ui2d.ColorTextDim)

	height := centered(cells[1], p.sliderWidth, p.sliderHeight)
	lc.height.SetBounds(rectOf(height))
	drawSlider(b, lc.height, accent)
	caption(b, cells[1], height.Y+height.H+4, fmt.Sprintf("H %.2f", l.Height), ui2d.ColorTextDim)

	intensity := centered(cells[2], p.sliderWidth, p.sliderHeight)
	lc.intensity.SetBounds(rectOf(intensity))
	drawSlider(b, lc.intensity, accent)
	caption(b, cells[2], intensity.Y+intensity.H+4, fmt.Sprintf("I %.2f", l.Intensity), ui2d.ColorTextDim)

	if on := ui.Checkbox(id+"_helper", "Show Helper", l.Helper); on != l.Helper {
		p.store.SetLightHelper(lc.slot, on)
	}
}
