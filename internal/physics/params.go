package physics

import "github.com/go-gl/mathgl/mgl32"

const (
	DefaultJumpHeight   float32 = 50
	DefaultArrowKeysAdd float32 = 20
)

// Params holds the tuning and geometry for a Loop. Velocities are in pixels
// per frame; integration is fixed-step.
type Params struct {
	ScreenWidth   float32
	ScreenHeight  float32
	MonitorsRight float32
	MonitorsLeft  float32

	// Size is the outer window size used for collision bounds.
	Size mgl32.Vec2

	// Drag multiplies horizontal velocity on floor contact.
	Drag float32
	// HorizontalBounce and VerticalBounce multiply the velocity component
	// that hit a bound. Negative values reverse direction.
	HorizontalBounce float32
	VerticalBounce   float32

	TerminalVelocity float32
	Gravity          float32

	JumpHeight   float32
	ArrowKeysAdd float32

	InitialVelocity mgl32.Vec2
}

// DefaultParams returns the stock tuning for a 1920x1080 screen and a
// 400x400 window.
func DefaultParams() Params {
	return Params{
		ScreenWidth:      1920,
		ScreenHeight:     1080,
		Size:             mgl32.Vec2{400, 400},
		Drag:             0.99,
		HorizontalBounce: -0.99,
		VerticalBounce:   -0.95,
		TerminalVelocity: 50,
		Gravity:          2,
		JumpHeight:       DefaultJumpHeight,
		ArrowKeysAdd:     DefaultArrowKeysAdd,
		InitialVelocity:  mgl32.Vec2{20, 20},
	}
}

// Bounds describes the collision box for the window's top-left corner.
type Bounds struct {
	Left   float32
	Right  float32
	Bottom float32
}

// Bounds returns the left, right and bottom limits of the virtual screen span.
func (p Params) Bounds() Bounds {
	return Bounds{
		Left:   -(p.MonitorsLeft * p.ScreenWidth),
		Right:  p.ScreenWidth * (p.MonitorsRight + 1),
		Bottom: p.ScreenHeight,
	}
}
