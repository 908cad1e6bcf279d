package audio

import (
	"math"
	"testing"
)

func TestPlayerGracefulWithoutInitialize(t *testing.T) {
	p := NewPlayer(Options{Volume: 1, MinImpact: 1})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("player panicked without initialization: %v", r)
		}
	}()

	p.Impact(Floor, 40)
	p.Impact(Wall, 40)
	p.Close()
	if p.Played() != 0 {
		t.Fatalf("played = %d, want 0 without a speaker", p.Played())
	}
}

func TestPlayerGain(t *testing.T) {
	p := NewPlayer(Options{Volume: 0.5, MinImpact: 8})

	tests := []struct {
		speed float64
		want  float64
	}{
		{0, 0},
		{7.9, 0},
		{-7.9, 0},
		{10, 0.1},
		{-25, 0.25},
		{50, 0.5},
		{500, 0.5},
	}
	for _, tt := range tests {
		if got := p.gain(tt.speed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("gain(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestThumpGeneratorEnvelope(t *testing.T) {
	const gain = 0.4
	g := NewThumpGenerator(sampleRate, 70, gain)

	buf := make([][2]float64, sampleRate.N(thumpDuration))
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}
	if err := g.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}

	peak := func(s [][2]float64) float64 {
		m := 0.0
		for _, v := range s {
			if v[0] != v[1] {
				t.Fatalf("channels differ: %v", v)
			}
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}

	if p := peak(buf); p > gain {
		t.Fatalf("peak %v exceeds gain %v", p, gain)
	}
	quarter := len(buf) / 4
	if head, tail := peak(buf[:quarter]), peak(buf[len(buf)-quarter:]); tail >= head {
		t.Fatalf("expected decay: head peak %v, tail peak %v", head, tail)
	}
}

func TestSurfaceString(t *testing.T) {
	if Floor.String() != "floor" || Wall.String() != "wall" || Surface(9).String() != "unknown" {
		t.Fatalf("unexpected surface names")
	}
}
