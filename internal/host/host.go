// Package host runs the frame loop that drives the window physics.
package host

import (
	"context"
	"log/slog"

	"github.com/1broseidon/windowfun/internal/audio"
	"github.com/1broseidon/windowfun/internal/physics"
	"github.com/1broseidon/windowfun/internal/window"
)

// Renderer draws the window contents for the next frame.
type Renderer interface {
	Clear()
}

// ImpactPlayer is notified of every bound the window hits.
type ImpactPlayer interface {
	Impact(surface audio.Surface, speed float32)
}

// Options configures a Host.
type Options struct {
	Logger *slog.Logger
	// MaxFrames stops the loop after this many frames; zero runs until the
	// window is closed.
	MaxFrames int
}

// Host owns the window state for the duration of Run.
type Host struct {
	state    *window.State
	loop     *physics.Loop
	renderer Renderer
	sound    ImpactPlayer
	logger   *slog.Logger
	opts     Options

	frames  int
	lastFPS int
}

// New assembles a host. renderer and sound may be nil.
func New(state *window.State, loop *physics.Loop, renderer Renderer, sound ImpactPlayer, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		state:    state,
		loop:     loop,
		renderer: renderer,
		sound:    sound,
		logger:   logger,
		opts:     opts,
	}
}

// Run loops until the window's close flag is set, ctx is cancelled or
// MaxFrames is reached. Cancellation is turned into a close request so the
// loop ends on its own thread. The window is released before Run returns.
func (h *Host) Run(ctx context.Context) error {
	defer h.state.Close()

	h.logger.Info("window loop started",
		"screen", []float32{h.loop.Params().ScreenWidth, h.loop.Params().ScreenHeight},
		"monitors_right", h.loop.Params().MonitorsRight,
		"monitors_left", h.loop.Params().MonitorsLeft,
	)

	for !h.state.ShouldClose() {
		if ctx.Err() != nil {
			h.logger.Info("shutdown requested", "reason", context.Cause(ctx))
			h.state.RequestClose()
			continue
		}
		h.Frame()
		if h.opts.MaxFrames > 0 && h.frames >= h.opts.MaxFrames {
			break
		}
	}

	h.logger.Info("window loop stopped", "frames", h.frames, "dropped_events", h.state.DroppedEvents())
	return nil
}

// Frame runs a single iteration of the loop.
func (h *Host) Frame() {
	h.state.AdvanceFrame()
	h.state.DeltaTime()

	contacts := h.loop.Update(h.state)
	h.playImpacts(contacts)

	h.state.SwapBuffers()
	if h.renderer != nil {
		h.renderer.Clear()
	}

	h.frames++
	if fps := h.state.FPS(); fps != h.lastFPS {
		h.lastFPS = fps
		h.logger.Debug("fps", "fps", fps, "phase", h.loop.Phase().String())
	}
}

// Frames returns the number of completed frames.
func (h *Host) Frames() int {
	return h.frames
}

func (h *Host) playImpacts(c physics.Contacts) {
	if h.sound == nil || !c.Any() {
		return
	}
	if c.Floor {
		h.sound.Impact(audio.Floor, c.FloorImpact)
	}
	if c.Right || c.Left {
		h.sound.Impact(audio.Wall, c.WallImpact)
	}
}
