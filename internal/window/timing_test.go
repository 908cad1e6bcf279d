package window_test

import (
	"testing"

	"github.com/1broseidon/windowfun/internal/window"
	"github.com/1broseidon/windowfun/internal/window/windowtest"
)

func TestDeltaTime_FirstFrameIsGuarded(t *testing.T) {
	native := windowtest.New(100, 100)
	native.Clock = 12345.0
	s := window.New(native, window.Options{})

	dt := s.DeltaTime()
	if dt <= 0 || dt > 0.01 {
		t.Fatalf("first delta = %v, want a small positive epsilon", dt)
	}

	native.Clock += 0.016
	dt = s.DeltaTime()
	if dt < 0.0159 || dt > 0.0161 {
		t.Fatalf("second delta = %v, want ~0.016", dt)
	}
	if s.LastDeltaTime() != dt {
		t.Fatalf("LastDeltaTime = %v, want %v", s.LastDeltaTime(), dt)
	}
}

func TestDeltaTime_SecondCallShiftsBaseline(t *testing.T) {
	native := windowtest.New(100, 100)
	s := window.New(native, window.Options{})

	s.DeltaTime()
	native.Clock = 1
	if dt := s.DeltaTime(); dt != 1 {
		t.Fatalf("delta = %v, want 1", dt)
	}
	// Same instant: the clock did not advance, so the guard applies.
	dt := s.DeltaTime()
	if dt <= 0 || dt > 0.01 {
		t.Fatalf("repeated call delta = %v, want epsilon", dt)
	}
}

func TestSwapBuffers_FPSUpdatesOncePerSecond(t *testing.T) {
	native := windowtest.New(100, 100)
	s := window.New(native, window.Options{})

	tests := []struct {
		clock   float64
		wantFPS int
	}{
		{0.25, 0},
		{0.50, 0},
		{0.75, 0},
		{1.00, 4},
		{1.50, 4},
		{1.99, 4},
		{2.00, 3},
	}
	for _, tt := range tests {
		native.Clock = tt.clock
		s.SwapBuffers()
		if got := s.FPS(); got != tt.wantFPS {
			t.Fatalf("at t=%v FPS = %d, want %d", tt.clock, got, tt.wantFPS)
		}
	}
	if native.Swaps != len(tests) {
		t.Fatalf("swaps = %d, want %d", native.Swaps, len(tests))
	}
}
