package draw

// MouseButton selects a pointer button in the [Input] snapshot.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	mouseButtonCount
)

// Mod is a bitmask of modifier keys held during the frame.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModShift
	ModAlt
)

// Key identifies the few named keys the editor reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyBringToFront
)

// Input is the per-frame input snapshot the host fills before BeginGraph.
// The editor treats it as immutable: transitions (clicked, released) are
// relative to the previous frame and are the host's responsibility to
// compute.
type Input struct {
	MousePos   Vec2
	MouseDelta Vec2
	Wheel      float32

	down     [mouseButtonCount]bool
	clicked  [mouseButtonCount]bool
	released [mouseButtonCount]bool

	Mods Mod
	// DeltaTime is the seconds elapsed since the previous frame, used for
	// zoom smoothing.
	DeltaTime float32

	Pressed Key

	// WindowFocused gates all pointer interaction, mirroring the host
	// toolkit's focus model.
	WindowFocused bool
}

// SetButton records the state transition of b for this frame.
func (in *Input) SetButton(b MouseButton, down, clicked, released bool) {
	in.down[b] = down
	in.clicked[b] = clicked
	in.released[b] = released
}

// Down reports whether b is held.
func (in *Input) Down(b MouseButton) bool { return in.down[b] }

// Clicked reports whether b transitioned to down this frame.
func (in *Input) Clicked(b MouseButton) bool { return in.clicked[b] }

// Released reports whether b transitioned to up this frame.
func (in *Input) Released(b MouseButton) bool { return in.released[b] }

// AnyMod reports whether any modifier key is held.
func (in *Input) AnyMod() bool { return in.Mods != 0 }

// Dragging reports whether b is held while the pointer moved this frame or a
// drag was already in progress. The editor tracks drag spans itself; this is
// the frame-local signal.
func (in *Input) Dragging(b MouseButton) bool {
	return in.down[b] && !in.clicked[b]
}
