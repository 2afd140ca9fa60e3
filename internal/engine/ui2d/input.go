package ui2d

// InputState holds the pointer state the UI reads each frame.
type InputState struct {
	MouseX      float32
	MouseY      float32
	MouseDeltaX float32
	MouseDeltaY float32

	MouseLeftDown bool

	// Edges, valid for one frame
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// MouseLeftClicked latches a press that happened between frames, so a
	// press and release inside one frame still registers.
	MouseLeftClicked bool

	ScrollY float32

	prevMouseLeft bool
	prevMouseX    float32
	prevMouseY    float32
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	i.MouseDeltaX = i.MouseX - i.prevMouseX
	i.MouseDeltaY = i.MouseY - i.prevMouseY

	i.MouseLeftPressed = (i.MouseLeftDown && !i.prevMouseLeft) || i.MouseLeftClicked
	i.MouseLeftReleased = !i.MouseLeftDown && (i.prevMouseLeft || i.MouseLeftClicked)

	i.prevMouseLeft = i.MouseLeftDown
	i.prevMouseX = i.MouseX
	i.prevMouseY = i.MouseY
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.ScrollY = 0
	i.MouseLeftClicked = false
}

// IsMouseInRect checks if the mouse is within a rectangle.
func (i *InputState) IsMouseInRect(r Rect) bool {
	return r.Contains(i.MouseX, i.MouseY)
}
