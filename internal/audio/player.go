// Package audio plays short impact sounds when the window hits a bound.
package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	thumpDuration = 120 * time.Millisecond

	// Impacts at or above this speed (px/frame) play at full volume.
	fullScaleImpact = 50.0
)

// Surface identifies what the window hit.
type Surface int

const (
	Floor Surface = iota
	Wall
)

func (s Surface) String() string {
	switch s {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

func (s Surface) frequency() float64 {
	if s == Wall {
		return 140
	}
	return 70
}

// Options configures the player.
type Options struct {
	Volume    float64 // 0-1
	MinImpact float64 // px/frame; slower impacts are silent
	Logger    *slog.Logger
}

// Player mixes impact sounds into the speaker. All methods are safe to call
// before Initialize or after a failed Initialize; they do nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	opts        Options
	initialized bool
	played      int
}

// NewPlayer creates a player. Call Initialize to open the audio device.
func NewPlayer(opts Options) *Player {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Player{
		mixer: &beep.Mixer{},
		opts:  opts,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Impact plays a thump for a hit at the given speed.
func (p *Player) Impact(surface Surface, speed float32) {
	gain := p.gain(float64(speed))
	if gain == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	// The playback goroutine reads the mixer under the speaker lock.
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(thumpDuration), NewThumpGenerator(sampleRate, surface.frequency(), gain)))
	speaker.Unlock()
	p.played++
	p.opts.Logger.Debug("impact sound", "surface", surface, "speed", speed, "gain", gain)
}

// gain maps an impact speed to an amplitude in [0, Volume].
func (p *Player) gain(speed float64) float64 {
	speed = math.Abs(speed)
	if speed < p.opts.MinImpact || speed == 0 {
		return 0
	}
	return p.opts.Volume * math.Min(speed/fullScaleImpact, 1)
}

// Played reports how many sounds have been queued.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences the mixer and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// ThumpGenerator is a decaying low sine with a short noise transient.
type ThumpGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
	seed int64
}

// NewThumpGenerator creates a thump at freq Hz scaled by gain.
func NewThumpGenerator(sr beep.SampleRate, freq, gain float64) *ThumpGenerator {
	return &ThumpGenerator{
		sr:   sr,
		freq: freq,
		gain: gain,
		seed: 1,
	}
}

func (g *ThumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 30)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		click := noise * math.Exp(-t*400)

		sample := g.gain * envelope * (0.8*math.Sin(2*math.Pi*g.freq*t) + 0.2*click)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThumpGenerator) Err() error {
	return nil
}
