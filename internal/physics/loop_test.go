package physics

import (
	"math"
	"testing"

	"github.com/1broseidon/windowfun/internal/window"
	"github.com/1broseidon/windowfun/internal/window/windowtest"
	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func approxVec(a, b mgl32.Vec2) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y())
}

// openSkyParams keeps every bound far away from the test positions.
func openSkyParams() Params {
	p := DefaultParams()
	p.ScreenWidth = 100000
	p.ScreenHeight = 100000
	p.MonitorsLeft = 1
	return p
}

func TestStep_GravityBelowTerminalVelocity(t *testing.T) {
	tests := []struct {
		name string
		vy   float32
		want float32
	}{
		{"at rest", 0, 2},
		{"rising", -30, -28},
		{"just below terminal", 49, 51},
		{"at terminal", 50, 50},
		{"above terminal", 75, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(openSkyParams(), nil)
			l.SetVelocity(mgl32.Vec2{3, tt.vy})

			pos, contacts := l.Step(mgl32.Vec2{500, 500}, Controls{})

			if contacts.Any() {
				t.Fatalf("unexpected contacts %+v", contacts)
			}
			if got := l.Velocity().Y(); got != tt.want {
				t.Fatalf("vy = %v, want %v", got, tt.want)
			}
			if got := l.Velocity().X(); got != 3 {
				t.Fatalf("vx = %v, want 3 (no bound hit)", got)
			}
			if want := (mgl32.Vec2{503, 500 + tt.vy}); pos != want {
				t.Fatalf("pos = %v, want %v", pos, want)
			}
			if l.Phase() != PhaseFalling {
				t.Fatalf("phase = %v, want falling", l.Phase())
			}
		})
	}
}

func TestCollide_BottomClampIsIdempotent(t *testing.T) {
	l := New(DefaultParams(), nil)
	l.SetVelocity(mgl32.Vec2{})

	first, c1 := l.collide(mgl32.Vec2{100, 900})
	second, c2 := l.collide(first)

	if want := (mgl32.Vec2{100, 680}); first != want {
		t.Fatalf("first clamp = %v, want %v", first, want)
	}
	if first != second {
		t.Fatalf("clamp not idempotent: %v then %v", first, second)
	}
	if !c1.Floor || !c2.Floor {
		t.Fatalf("expected floor contact both times")
	}
}

func TestStep_BottomBounceAttenuatesAndDrags(t *testing.T) {
	l := New(DefaultParams(), nil)
	l.SetVelocity(mgl32.Vec2{10, 40})

	pos, contacts := l.Step(mgl32.Vec2{500, 660}, Controls{})

	if !contacts.Floor || contacts.Right || contacts.Left {
		t.Fatalf("contacts = %+v, want floor only", contacts)
	}
	if contacts.FloorImpact != 40 {
		t.Fatalf("floor impact = %v, want 40", contacts.FloorImpact)
	}
	if want := (mgl32.Vec2{510, 680}); pos != want {
		t.Fatalf("pos = %v, want %v", pos, want)
	}
	// vy: 40 * -0.95 + gravity; vx: 10 * drag
	if want := (mgl32.Vec2{9.9, -36}); !approxVec(l.Velocity(), want) {
		t.Fatalf("velocity = %v, want %v", l.Velocity(), want)
	}
	if l.Phase() != PhaseBouncing {
		t.Fatalf("phase = %v, want bouncing", l.Phase())
	}
}

func TestStep_CornerAppliesBottomThenRight(t *testing.T) {
	l := New(DefaultParams(), nil)
	l.SetVelocity(mgl32.Vec2{20, 20})

	pos, contacts := l.Step(mgl32.Vec2{1510, 670}, Controls{})

	if !contacts.Floor || !contacts.Right {
		t.Fatalf("contacts = %+v, want floor and right", contacts)
	}
	if want := (mgl32.Vec2{1520, 680}); pos != want {
		t.Fatalf("pos = %v, want %v", pos, want)
	}
	// vx: 20 * drag(0.99) * bounce(-0.99); vy: 20 * -0.95 + 2
	want := mgl32.Vec2{20 * 0.99 * -0.99, -17}
	if !approxVec(l.Velocity(), want) {
		t.Fatalf("velocity = %v, want %v", l.Velocity(), want)
	}
}

func TestStep_LeftBoundHonoursMonitorsLeft(t *testing.T) {
	p := DefaultParams()
	p.MonitorsLeft = 1
	l := New(p, nil)
	l.SetVelocity(mgl32.Vec2{-30, 0})

	pos, contacts := l.Step(mgl32.Vec2{-1900, 100}, Controls{})

	if !contacts.Left || contacts.Right || contacts.Floor {
		t.Fatalf("contacts = %+v, want left only", contacts)
	}
	if pos.X() != -1920 {
		t.Fatalf("x = %v, want -1920", pos.X())
	}
	if !approx(l.Velocity().X(), 29.7) {
		t.Fatalf("vx = %v, want 29.7", l.Velocity().X())
	}
}

func TestStep_RightBoundHonoursMonitorsRight(t *testing.T) {
	p := DefaultParams()
	p.MonitorsRight = 2
	l := New(p, nil)
	l.SetVelocity(mgl32.Vec2{30, 0})

	_, contacts := l.Step(mgl32.Vec2{2000, 100}, Controls{})
	if contacts.Right {
		t.Fatalf("x=2030 must be inside a three-monitor span")
	}

	l.SetVelocity(mgl32.Vec2{30, 0})
	pos, contacts := l.Step(mgl32.Vec2{5340, 100}, Controls{})
	if !contacts.Right {
		t.Fatalf("expected right contact")
	}
	if pos.X() != 5760-400 {
		t.Fatalf("x = %v, want %v", pos.X(), 5760-400)
	}
}

func TestStep_InputOverridesAfterGravity(t *testing.T) {
	tests := []struct {
		name string
		in   Controls
		want mgl32.Vec2
	}{
		{"jump overwrites vy", Controls{Jump: true}, mgl32.Vec2{5, -50}},
		{"right adds", Controls{Right: true}, mgl32.Vec2{25, 7}},
		{"left subtracts", Controls{Left: true}, mgl32.Vec2{-15, 7}},
		{"right and left cancel", Controls{Right: true, Left: true}, mgl32.Vec2{5, 7}},
		{"halt wins over everything", Controls{Jump: true, Right: true, Left: true, Halt: true}, mgl32.Vec2{}},
		{"halt alone", Controls{Halt: true}, mgl32.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(openSkyParams(), nil)
			l.SetVelocity(mgl32.Vec2{5, 5})
			l.Step(mgl32.Vec2{500, 500}, tt.in)
			if got := l.Velocity(); got != tt.want {
				t.Fatalf("velocity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReleaseVelocity_LiteralVectors(t *testing.T) {
	d := DragState{Dragging: true, Baseline: mgl32.Vec2{100, 100}.Add(mgl32.Vec2{10, 10})}

	got := d.ReleaseVelocity(mgl32.Vec2{120, 90}, mgl32.Vec2{30, 5})
	if want := (mgl32.Vec2{20, -7.5}); got != want {
		t.Fatalf("release velocity = %v, want %v", got, want)
	}
}

func TestStep_DragAndThrow(t *testing.T) {
	p := openSkyParams()
	p.Gravity = 0
	l := New(p, nil)
	l.SetVelocity(mgl32.Vec2{40, 40})

	// Grab at cursor c0 = (10,10) with the window at p0 = (100,100).
	pos, contacts := l.Step(mgl32.Vec2{100, 100}, Controls{Grab: true, Cursor: mgl32.Vec2{10, 10}})
	if contacts.Any() {
		t.Fatalf("no contacts expected while dragging")
	}
	if want := (mgl32.Vec2{100, 100}); pos != want {
		t.Fatalf("grab frame pos = %v, want %v", pos, want)
	}
	if l.Velocity() != (mgl32.Vec2{}) {
		t.Fatalf("velocity must be zero on grab, got %v", l.Velocity())
	}
	if l.Phase() != PhaseDragging {
		t.Fatalf("phase = %v, want dragging", l.Phase())
	}
	if d := l.Drag(); !d.Dragging || d.GrabOffset != (mgl32.Vec2{10, 10}) || d.Baseline != (mgl32.Vec2{110, 110}) {
		t.Fatalf("drag state = %+v", d)
	}

	// Release at p1 = (120,90), c1 = (30,5).
	pos, _ = l.Step(mgl32.Vec2{120, 90}, Controls{Cursor: mgl32.Vec2{30, 5}})
	if want := (mgl32.Vec2{20, -7.5}); l.Velocity() != want {
		t.Fatalf("thrown velocity = %v, want %v", l.Velocity(), want)
	}
	if want := (mgl32.Vec2{140, 82.5}); pos != want {
		t.Fatalf("release frame pos = %v, want %v (integrated with the throw)", pos, want)
	}
	if l.Drag().Dragging {
		t.Fatalf("drag flag must be cleared on release")
	}
}

func TestStep_WhileDraggingFollowsCursor(t *testing.T) {
	l := New(DefaultParams(), nil)

	l.Step(mgl32.Vec2{300, 300}, Controls{Grab: true, Cursor: mgl32.Vec2{50, 60}})
	pos, _ := l.Step(mgl32.Vec2{300, 300}, Controls{Grab: true, Cursor: mgl32.Vec2{70, 55}})

	if want := (mgl32.Vec2{320, 295}); pos != want {
		t.Fatalf("pos = %v, want %v", pos, want)
	}
	if want := (mgl32.Vec2{370, 355}); l.Drag().Baseline != want {
		t.Fatalf("baseline = %v, want %v", l.Drag().Baseline, want)
	}
	if l.Velocity() != (mgl32.Vec2{}) {
		t.Fatalf("velocity = %v, want zero while dragging", l.Velocity())
	}
}

func TestUpdate_DrivesWindowState(t *testing.T) {
	native := windowtest.New(400, 400)
	native.X, native.Y = 100, 100
	state := window.New(native, window.Options{})
	l := New(DefaultParams(), nil)

	state.AdvanceFrame()
	l.Update(state)
	if native.X != 120 || native.Y != 120 {
		t.Fatalf("native pos = (%d,%d), want (120,120)", native.X, native.Y)
	}

	native.CursorX, native.CursorY = 40, 40
	native.Button(window.MouseButton1, window.Press)
	state.AdvanceFrame()
	l.Update(state)
	if l.Phase() != PhaseDragging {
		t.Fatalf("phase = %v, want dragging", l.Phase())
	}

	native.CursorX, native.CursorY = 60, 30
	state.AdvanceFrame()
	l.Update(state)
	if native.X != 140 || native.Y != 110 {
		t.Fatalf("dragged pos = (%d,%d), want (140,110)", native.X, native.Y)
	}

	native.Key(window.KeyQ, window.Press)
	native.Button(window.MouseButton1, window.Release)
	state.AdvanceFrame()
	l.Update(state)
	if l.Velocity() != (mgl32.Vec2{}) {
		t.Fatalf("halt must zero the thrown velocity, got %v", l.Velocity())
	}
}

func TestPhase_String(t *testing.T) {
	tests := map[Phase]string{
		PhaseFalling:  "falling",
		PhaseBouncing: "bouncing",
		PhaseDragging: "dragging",
		Phase(42):     "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
