package physics

import (
	"log/slog"

	"github.com/1broseidon/windowfun/internal/window"
	"github.com/go-gl/mathgl/mgl32"
)

// Body is the window surface a Loop reads input from and moves.
type Body interface {
	Position() mgl32.Vec2
	SetPosition(pos mgl32.Vec2)
	CursorPosition() mgl32.Vec2
	KeyPressed(key window.Key) bool
	KeyHeld(key window.Key) bool
	MouseButtonHeld(button window.MouseButton) bool
}

var _ Body = (*window.State)(nil)

// ControlsFrom reads the latched input of b.
func ControlsFrom(b Body) Controls {
	return Controls{
		Grab:   b.MouseButtonHeld(window.MouseButton1),
		Cursor: b.CursorPosition(),
		Jump:   b.KeyPressed(window.KeySpace),
		Right:  b.KeyHeld(window.KeyRight),
		Left:   b.KeyHeld(window.KeyLeft),
		Halt:   b.KeyHeld(window.KeyQ),
	}
}

// Loop moves a window as a free body: gravity, bounces off the screen span,
// mouse drag and throw.
type Loop struct {
	params   Params
	velocity mgl32.Vec2
	drag     DragState
	phase    Phase
	logger   *slog.Logger
}

// New creates a Loop starting at params.InitialVelocity.
func New(params Params, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		params:   params,
		velocity: params.InitialVelocity,
		phase:    PhaseFalling,
		logger:   logger,
	}
}

// Params returns the loop's tuning.
func (l *Loop) Params() Params {
	return l.params
}

// Velocity returns the current velocity in pixels per frame.
func (l *Loop) Velocity() mgl32.Vec2 {
	return l.velocity
}

// SetVelocity overrides the current velocity.
func (l *Loop) SetVelocity(v mgl32.Vec2) {
	l.velocity = v
}

// Phase returns the phase of the last update.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Drag returns a copy of the drag state.
func (l *Loop) Drag() DragState {
	return l.drag
}

// Update runs one frame against b and writes the new position back.
func (l *Loop) Update(b Body) Contacts {
	pos, contacts := l.Step(b.Position(), ControlsFrom(b))
	b.SetPosition(pos)
	return contacts
}

// Step advances one frame from pos and returns the new position.
func (l *Loop) Step(pos mgl32.Vec2, in Controls) (mgl32.Vec2, Contacts) {
	if in.Grab {
		if !l.drag.Dragging {
			l.drag.Dragging = true
			l.drag.GrabOffset = in.Cursor
			l.velocity = mgl32.Vec2{}
		}
		next := pos.Add(in.Cursor.Sub(l.drag.GrabOffset))
		l.drag.Baseline = pos.Add(in.Cursor)
		l.setPhase(PhaseDragging)
		return next, Contacts{}
	}

	if l.drag.Dragging {
		l.velocity = l.drag.ReleaseVelocity(pos, in.Cursor)
		l.drag.Reset()
		l.logger.Debug("window thrown", "vx", l.velocity.X(), "vy", l.velocity.Y())
	}

	pos = pos.Add(l.velocity)
	pos, contacts := l.collide(pos)
	l.accelerate(in)

	if contacts.Any() {
		l.setPhase(PhaseBouncing)
	} else {
		l.setPhase(PhaseFalling)
	}
	return pos, contacts
}

// ReleaseVelocity estimates the throw velocity from the last drag frame.
func (d DragState) ReleaseVelocity(pos, cursor mgl32.Vec2) mgl32.Vec2 {
	return pos.Add(cursor).Sub(d.Baseline).Mul(0.5)
}

// collide clamps pos to the screen span. Bottom, right and left are checked
// in that order and independently, so a corner applies two clamps.
func (l *Loop) collide(pos mgl32.Vec2) (mgl32.Vec2, Contacts) {
	var c Contacts
	b := l.params.Bounds()
	size := l.params.Size

	if pos.Y()+size.Y() >= b.Bottom {
		pos[1] = b.Bottom - size.Y()
		c.Floor = true
		c.FloorImpact = abs(l.velocity.Y())
		l.velocity[1] *= l.params.VerticalBounce
		l.velocity[0] *= l.params.Drag
	}
	if pos.X()+size.X() >= b.Right {
		pos[0] = b.Right - size.X()
		c.Right = true
		c.WallImpact = abs(l.velocity.X())
		l.velocity[0] *= l.params.HorizontalBounce
	}
	if pos.X() <= b.Left {
		pos[0] = b.Left
		c.Left = true
		c.WallImpact = abs(l.velocity.X())
		l.velocity[0] *= l.params.HorizontalBounce
	}
	return pos, c
}

// accelerate applies gravity then key input. Later rules override earlier
// ones: halt wins over everything.
func (l *Loop) accelerate(in Controls) {
	if l.velocity.Y() < l.params.TerminalVelocity {
		l.velocity[1] += l.params.Gravity
	}

	if in.Jump {
		l.velocity[1] = -l.params.JumpHeight
	}
	if in.Right {
		l.velocity[0] += l.params.ArrowKeysAdd
	}
	if in.Left {
		l.velocity[0] -= l.params.ArrowKeysAdd
	}
	if in.Halt {
		l.velocity = mgl32.Vec2{}
	}
}

func (l *Loop) setPhase(p Phase) {
	if p == l.phase {
		return
	}
	l.logger.Debug("phase changed", "from", l.phase.String(), "to", p.String())
	l.phase = p
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
