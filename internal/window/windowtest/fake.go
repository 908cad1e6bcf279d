// Package windowtest provides an in-memory window.Native for tests.
package windowtest

import "github.com/1broseidon/windowfun/internal/window"

// Native is a scripted window.Native. Events queued with Queue are delivered
// on the next PollEvents call.
type Native struct {
	Sink window.EventSink

	X, Y          int
	Width, Height int
	FBWidth       int
	FBHeight      int

	CursorX, CursorY float64
	CursorHidden     bool
	CursorSets       int

	Clock float64
	// Step advances Clock on every PollEvents call.
	Step float64

	Close     bool
	Polls     int
	Swaps     int
	Destroyed int

	// OnPoll runs after queued events are delivered.
	OnPoll func(n *Native)

	pending []func(window.EventSink)
}

var _ window.Native = (*Native)(nil)

// New returns a fake window of the given size at the origin.
func New(width, height int) *Native {
	return &Native{
		Width:    width,
		Height:   height,
		FBWidth:  width,
		FBHeight: height,
	}
}

// Queue schedules an event for the next poll.
func (n *Native) Queue(ev func(window.EventSink)) {
	n.pending = append(n.pending, ev)
}

// Key queues a key event.
func (n *Native) Key(key window.Key, action window.Action) {
	n.Queue(func(s window.EventSink) { s.HandleKey(key, action) })
}

// Button queues a mouse button event.
func (n *Native) Button(button window.MouseButton, action window.Action) {
	n.Queue(func(s window.EventSink) { s.HandleMouseButton(button, action) })
}

// Scroll queues a scroll event.
func (n *Native) Scroll(x, y float64) {
	n.Queue(func(s window.EventSink) { s.HandleScroll(x, y) })
}

func (n *Native) Bind(sink window.EventSink) { n.Sink = sink }

func (n *Native) PollEvents() {
	n.Polls++
	n.Clock += n.Step
	pending := n.pending
	n.pending = nil
	for _, ev := range pending {
		if n.Sink != nil {
			ev(n.Sink)
		}
	}
	if n.OnPoll != nil {
		n.OnPoll(n)
	}
}

func (n *Native) Pos() (int, int) { return n.X, n.Y }
func (n *Native) SetPos(x, y int) { n.X, n.Y = x, y }
func (n *Native) Size() (int, int) { return n.Width, n.Height }
func (n *Native) FramebufferSize() (int, int) {
	return n.FBWidth, n.FBHeight
}

func (n *Native) CursorPos() (float64, float64) { return n.CursorX, n.CursorY }

func (n *Native) SetCursorPos(x, y float64) {
	n.CursorX, n.CursorY = x, y
	n.CursorSets++
}

func (n *Native) SetCursorHidden(hidden bool) { n.CursorHidden = hidden }

func (n *Native) Time() float64 { return n.Clock }

func (n *Native) SwapBuffers() { n.Swaps++ }

func (n *Native) ShouldClose() bool { return n.Close }
func (n *Native) SetShouldClose(v bool) { n.Close = v }
func (n *Native) Destroy() { n.Destroyed++ }
