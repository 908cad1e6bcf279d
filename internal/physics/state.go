package physics

import "github.com/go-gl/mathgl/mgl32"

// Phase represents which rule set governed the last update
type Phase int

const (
	// PhaseFalling means the window moved freely without touching a bound
	PhaseFalling Phase = iota
	// PhaseBouncing means at least one bound clamped the window this frame
	PhaseBouncing
	// PhaseDragging means the mouse holds the window
	PhaseDragging
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseBouncing:
		return "bouncing"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DragState tracks a mouse grab across frames.
type DragState struct {
	Dragging bool
	// GrabOffset is the cursor position at grab time.
	GrabOffset mgl32.Vec2
	// Baseline is frame position + cursor, refreshed every drag frame, used
	// to estimate the throw velocity on release.
	Baseline mgl32.Vec2
}

// Reset clears the grab.
func (d *DragState) Reset() {
	d.Dragging = false
	d.GrabOffset = mgl32.Vec2{}
	d.Baseline = mgl32.Vec2{}
}

// Contacts reports the bounds hit during one update. Impact values are the
// absolute velocity component before attenuation.
type Contacts struct {
	Floor bool
	Right bool
	Left  bool

	FloorImpact float32
	WallImpact  float32
}

// Any reports whether any bound was hit.
func (c Contacts) Any() bool {
	return c.Floor || c.Right || c.Left
}

// Controls is the input a Loop consumes for one frame.
type Controls struct {
	// Grab is true while the drag button is held.
	Grab   bool
	Cursor mgl32.Vec2

	Jump  bool
	Right bool
	Left  bool
	Halt  bool
}
