package ui2d

// Layout metrics.
const (
	TextScale     = float32(1)
	panelPadding  = float32(12)
	rowGap        = float32(6)
	headerHeight  = float32(26)
	checkboxSize  = float32(16)
	swatchSize    = float32(22)
	defaultRowH   = float32(22)
	sectionIndent = float32(4)
)

// Context is the immediate-mode UI state: one panel at a time, laid out top
// to bottom.
type Context struct {
	batch *Batch
	input *InputState

	// Active widget tracking for press-then-release interaction
	hotWidget    string
	activeWidget string

	// Collapsible section state; absent means collapsed
	sections map[string]bool

	panel    *panelState
	section  *sectionState
	occupied []Rect

	cursorX float32
	cursorY float32
}

type panelState struct {
	id   string
	rect Rect
}

type sectionState struct {
	id     string
	top    float32
	accent Color
}

// NewContext creates a UI context drawing into batch.
func NewContext(batch *Batch) *Context {
	return &Context{
		batch:    batch,
		input:    &InputState{},
		sections: make(map[string]bool),
	}
}

// Batch returns the geometry collected this frame.
func (c *Context) Batch() *Batch {
	return c.batch
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.batch.Reset()
	c.occupied = c.occupied[:0]
	c.hotWidget = ""
}

// End finishes the UI frame.
func (c *Context) End() {
	if !c.input.MouseLeftDown {
		c.activeWidget = ""
	}
	c.input.EndFrame()
}

// WantsPointer reports whether the pointer is over UI drawn this frame.
func (c *Context) WantsPointer() bool {
	return c.ContainsPoint(c.input.MouseX, c.input.MouseY)
}

// ContainsPoint reports whether (x, y) falls on UI drawn this frame.
func (c *Context) ContainsPoint(x, y float32) bool {
	for _, r := range c.occupied {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// BeginPanel starts a fixed panel with a title.
func (c *Context) BeginPanel(id string, x, y, w, h float32, title string) {
	c.panel = &panelState{id: id, rect: Rect{x, y, w, h}}
	c.occupied = append(c.occupied, c.panel.rect)

	c.batch.DrawRect(x, y, w, h, ColorPanelBg)
	c.batch.DrawRect(x, y, 1, h, ColorPanelBorder)

	c.cursorX = x + panelPadding
	c.cursorY = y + panelPadding
	if title != "" {
		c.batch.DrawText(c.cursorX, c.cursorY, title, TextScale*1.5, ColorText)
		_, th := c.batch.MeasureText(title, TextScale*1.5)
		c.cursorY += th + panelPadding
	}
}

// EndPanel ends the current panel.
func (c *Context) EndPanel() {
	c.panel = nil
}

// ContentWidth returns the usable width inside the current panel.
func (c *Context) ContentWidth() float32 {
	if c.panel == nil {
		return 0
	}
	w := c.panel.rect.W - panelPadding*2
	if c.section != nil {
		w -= sectionIndent * 2
	}
	return w
}

func (c *Context) left() float32 {
	x := c.panel.rect.X + panelPadding
	if c.section != nil {
		x += sectionIndent
	}
	return x
}

// Section draws a collapsible header and reports whether its body is open.
// When it returns true the caller draws the body and then calls EndSection.
func (c *Context) Section(id, title string, accent Color) bool {
	if c.panel == nil {
		return false
	}

	fullID := c.panel.id + "_" + id
	x := c.panel.rect.X + panelPadding
	w := c.panel.rect.W - panelPadding*2
	rect := Rect{x, c.cursorY, w, headerHeight}

	if c.clicked(fullID, rect) {
		c.sections[fullID] = !c.sections[fullID]
	}
	open := c.sections[fullID]

	bg := ColorSectionBg
	if c.hotWidget == fullID {
		bg = ColorButtonHover
	}
	c.batch.DrawRect(rect.X, rect.Y, rect.W, rect.H, bg)
	c.batch.DrawRectOutline(rect.X, rect.Y, rect.W, rect.H, 1, ColorPanelBorder)
	c.batch.DrawRect(rect.X, rect.Y, 3, rect.H, accent)

	_, th := c.batch.MeasureText(title, TextScale)
	ty := rect.Y + (rect.H-th)/2
	c.batch.DrawText(rect.X+10, ty, title, TextScale, ColorText)

	chevron := "+"
	if open {
		chevron = "-"
	}
	cw, _ := c.batch.MeasureText(chevron, TextScale)
	c.batch.DrawText(rect.X+rect.W-cw-10, ty, chevron, TextScale, ColorTextDim)

	c.cursorY += headerHeight
	if open {
		c.section = &sectionState{id: fullID, top: c.cursorY, accent: accent}
	}
	c.cursorY += rowGap
	c.cursorX = c.left()
	return open
}

// SetSectionOpen forces a section open or closed.
func (c *Context) SetSectionOpen(panelID, id string, open bool) {
	c.sections[panelID+"_"+id] = open
}

// EndSection closes the body of an open section.
func (c *Context) EndSection() {
	if c.section == nil {
		return
	}
	x := c.panel.rect.X + panelPadding
	c.batch.DrawRect(x, c.section.top, 1, c.cursorY-c.section.top, c.section.accent.WithAlpha(0.5))
	c.section = nil
	c.cursorX = c.left()
	c.cursorY += rowGap
}

// Label draws a text label on its own row.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a text label with a specific color on its own row.
func (c *Context) LabelColored(text string, color Color) {
	if c.panel == nil {
		return
	}
	c.batch.DrawText(c.left(), c.cursorY, text, TextScale, color)
	_, h := c.batch.MeasureText(text, TextScale)
	c.cursorY += h + rowGap
}

// LabelValue draws a label with a right-aligned value.
func (c *Context) LabelValue(label, value string) {
	if c.panel == nil {
		return
	}
	x := c.left()
	c.batch.DrawText(x, c.cursorY, label, TextScale, ColorTextDim)
	vw, h := c.batch.MeasureText(value, TextScale)
	c.batch.DrawText(x+c.ContentWidth()-vw, c.cursorY, value, TextScale, ColorText)
	c.cursorY += h + rowGap
}

// Button draws a button and returns true once it is pressed and released
// over it.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.panel == nil {
		return false
	}
	if width == 0 {
		width = c.ContentWidth()
	}

	fullID := c.panel.id + "_" + id
	rect := Rect{c.left(), c.cursorY, width, defaultRowH + 4}
	clicked := c.clicked(fullID, rect)

	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorHighlight.Darken(0.4)
	} else if c.hotWidget == fullID {
		color = ColorButtonHover
	}
	c.batch.DrawRect(rect.X, rect.Y, rect.W, rect.H, color)
	c.batch.DrawRectOutline(rect.X, rect.Y, rect.W, rect.H, 1, ColorPanelBorder)

	tw, th := c.batch.MeasureText(label, TextScale)
	c.batch.DrawText(rect.X+(rect.W-tw)/2, rect.Y+(rect.H-th)/2, label, TextScale, ColorText)

	c.cursorY += rect.H + rowGap
	return clicked
}

// Checkbox draws a checkbox and returns its new state.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.panel == nil {
		return checked
	}

	fullID := c.panel.id + "_" + id
	x := c.left()
	_, lh := c.batch.MeasureText(label, TextScale)
	rowH := max(checkboxSize, lh)
	rect := Rect{x, c.cursorY, c.ContentWidth(), rowH}

	if c.clicked(fullID, rect) {
		checked = !checked
	}

	bg := ColorInputBg
	if c.hotWidget == fullID {
		bg = ColorButtonHover
	}
	by := c.cursorY + (rowH-checkboxSize)/2
	c.batch.DrawRect(x, by, checkboxSize, checkboxSize, bg)
	c.batch.DrawRectOutline(x, by, checkboxSize, checkboxSize, 1, ColorPanelBorder)
	if checked {
		inner := float32(4)
		c.batch.DrawRect(x+inner, by+inner, checkboxSize-inner*2, checkboxSize-inner*2, ColorHighlight)
	}

	c.batch.DrawText(x+checkboxSize+8, c.cursorY+(rowH-lh)/2, label, TextScale, ColorText)

	c.cursorY += rowH + rowGap
	return checked
}

// Swatches draws a labelled row of colour chips with the current colour
// first. It returns the index into palette of a clicked chip.
func (c *Context) Swatches(id, label string, current Color, palette []Color) (int, bool) {
	if c.panel == nil {
		return 0, false
	}

	x := c.left()
	lw, lh := c.batch.MeasureText(label, TextScale)
	c.batch.DrawText(x, c.cursorY+(swatchSize-lh)/2, label, TextScale, ColorTextDim)

	// Current colour
	cx := x + max(lw+8, 80)
	c.batch.DrawRect(cx, c.cursorY, swatchSize*1.5, swatchSize, current)
	c.batch.DrawRectOutline(cx, c.cursorY, swatchSize*1.5, swatchSize, 1, ColorHighlight)

	picked, ok := 0, false
	sx := cx + swatchSize*1.5 + 8
	right := x + c.ContentWidth()
	for i, col := range palette {
		if sx+swatchSize > right {
			break
		}
		fullID := c.panel.id + "_" + id + "_" + string(rune('a'+i))
		rect := Rect{sx, c.cursorY + 3, swatchSize - 6, swatchSize - 6}
		if c.clicked(fullID, rect) {
			picked, ok = i, true
		}
		border := ColorPanelBorder
		if c.hotWidget == fullID {
			border = ColorText
		}
		c.batch.DrawRect(rect.X, rect.Y, rect.W, rect.H, col)
		c.batch.DrawRectOutline(rect.X, rect.Y, rect.W, rect.H, 1, border)
		sx += swatchSize - 2
	}

	c.cursorY += swatchSize + rowGap
	return picked, ok
}

// Columns reserves a row of n equal cells of height h for widgets drawn by
// the caller.
func (c *Context) Columns(n int, h float32) []Rect {
	if c.panel == nil || n <= 0 {
		return nil
	}
	gap := float32(8)
	w := (c.ContentWidth() - gap*float32(n-1)) / float32(n)
	cells := make([]Rect, n)
	x := c.left()
	for i := range cells {
		cells[i] = Rect{x, c.cursorY, w, h}
		x += w + gap
	}
	c.cursorY += h + rowGap
	return cells
}

// Reserve reserves a full-width area of height h.
func (c *Context) Reserve(h float32) Rect {
	if c.panel == nil {
		return Rect{}
	}
	r := Rect{c.left(), c.cursorY, c.ContentWidth(), h}
	c.cursorY += h + rowGap
	return r
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	c.cursorY += height
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.panel == nil {
		return
	}
	c.batch.DrawRect(c.left(), c.cursorY, c.ContentWidth(), 1, ColorPanelBorder)
	c.cursorY += rowGap * 2
}

// Overlay draws a free-standing box of text lines anchored by its
// bottom-right corner. It does not claim the pointer.
func (c *Context) Overlay(right, bottom float32, lines []string) Rect {
	var w, h float32
	for _, l := range lines {
		lw, lh := c.batch.MeasureText(l, TextScale)
		w = max(w, lw)
		h += lh + rowGap
	}
	w += panelPadding * 2
	h += panelPadding*2 - rowGap
	r := Rect{right - w, bottom - h, w, h}

	c.batch.DrawRect(r.X+2, r.Y+2, r.W, r.H, ColorShadow)
	c.batch.DrawPanel(r.X, r.Y, r.W, r.H, ColorOverlayBg, ColorPanelBorder)
	y := r.Y + panelPadding
	for _, l := range lines {
		c.batch.DrawText(r.X+panelPadding, y, l, TextScale, ColorTextDim)
		_, lh := c.batch.MeasureText(l, TextScale)
		y += lh + rowGap
	}
	return r
}

// Cursor returns the current layout position.
func (c *Context) Cursor() (float32, float32) {
	return c.cursorX, c.cursorY
}

// clicked runs press-then-release interaction for one widget.
func (c *Context) clicked(id string, rect Rect) bool {
	hovered := c.input.IsMouseInRect(rect)
	if hovered {
		c.hotWidget = id
		if c.input.MouseLeftPressed {
			c.activeWidget = id
		}
	}
	if c.activeWidget == id && c.input.MouseLeftReleased {
		c.activeWidget = ""
		return hovered
	}
	return false
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
