package window

import (
	"log/slog"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// firstFrameDelta is reported by the first DeltaTime call and whenever the
// clock fails to advance.
const firstFrameDelta float32 = 0.001

// Options configures a State.
type Options struct {
	// Sensitivity scales the cursor offset.
	Sensitivity float32
	Logger      *slog.Logger
}

// State owns a native window and latches its input once per frame.
//
// All methods must be called from the thread that owns the native window.
// Input events only arrive during AdvanceFrame.
type State struct {
	native Native
	logger *slog.Logger

	// frame timing
	started       bool
	lastTime      float64
	deltaTime     float32
	lastFrameTime float64
	countFrames   int
	fps           int

	size      mgl32.Vec2
	frameSize mgl32.Vec2

	cursorLocked bool
	sensitivity  float32

	keys              [MaxKeys]bool
	holdKeys          [MaxKeys]bool
	mouseButtons      [MaxMouseButtons]bool
	holdMouseButtons  [MaxMouseButtons]bool
	cursorPos         mgl32.Vec2
	cursorOffset      mgl32.Vec2
	scroll            mgl32.Vec2
	droppedEventCount int

	closeOnce sync.Once
}

var _ EventSink = (*State)(nil)

// New binds a State to native. The State takes ownership of native and
// releases it on Close.
func New(native Native, opts Options) *State {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sensitivity := opts.Sensitivity
	if sensitivity == 0 {
		sensitivity = 1
	}

	w, h := native.Size()
	fw, fh := native.FramebufferSize()

	s := &State{
		native:        native,
		logger:        logger,
		size:          mgl32.Vec2{float32(w), float32(h)},
		frameSize:     mgl32.Vec2{float32(fw), float32(fh)},
		sensitivity:   sensitivity,
		lastFrameTime: native.Time(),
	}
	native.Bind(s)
	return s
}

// AdvanceFrame clears the per-frame input, polls native events and re-reads
// the cursor.
func (s *State) AdvanceFrame() {
	s.cursorOffset = mgl32.Vec2{}
	s.keys = [MaxKeys]bool{}
	s.mouseButtons = [MaxMouseButtons]bool{}
	s.scroll = mgl32.Vec2{}

	s.native.PollEvents()

	x, y := s.native.CursorPos()
	s.cursorPos = mgl32.Vec2{float32(x), float32(y)}

	center := s.center()
	s.cursorOffset = mgl32.Vec2{
		float32(x) - center.X(),
		center.Y() - float32(y),
	}.Mul(s.sensitivity * s.deltaTime)

	if s.cursorLocked {
		s.native.SetCursorPos(float64(center.X()), float64(center.Y()))
	}
}

func (s *State) center() mgl32.Vec2 {
	return s.size.Mul(0.5)
}

// HandleKey records a key event. Escape presses request window close.
func (s *State) HandleKey(key Key, action Action) {
	if key == KeyEscape && action == Press {
		s.native.SetShouldClose(true)
	}
	if !key.valid() {
		s.dropped("key", int(key))
		return
	}
	switch action {
	case Press:
		s.keys[key] = true
		s.holdKeys[key] = true
	case Release:
		s.holdKeys[key] = false
	}
}

// HandleMouseButton records a mouse button event.
func (s *State) HandleMouseButton(button MouseButton, action Action) {
	if !button.valid() {
		s.dropped("mouse_button", int(button))
		return
	}
	switch action {
	case Press:
		s.mouseButtons[button] = true
		s.holdMouseButtons[button] = true
	case Release:
		s.holdMouseButtons[button] = false
	}
}

// HandleScroll records the scroll offsets for the current poll.
func (s *State) HandleScroll(xoff, yoff float64) {
	s.scroll = mgl32.Vec2{float32(xoff), float32(yoff)}
}

func (s *State) dropped(kind string, code int) {
	s.droppedEventCount++
	s.logger.Debug("dropped out-of-range input event", "kind", kind, "code", code)
}

// KeyPressed reports whether key went down during the last poll.
func (s *State) KeyPressed(key Key) bool {
	return key.valid() && s.keys[key]
}

// KeyHeld reports whether key is currently down.
func (s *State) KeyHeld(key Key) bool {
	return key.valid() && s.holdKeys[key]
}

// MouseButtonPressed reports whether button went down during the last poll.
func (s *State) MouseButtonPressed(button MouseButton) bool {
	return button.valid() && s.mouseButtons[button]
}

// MouseButtonHeld reports whether button is currently down.
func (s *State) MouseButtonHeld(button MouseButton) bool {
	return button.valid() && s.holdMouseButtons[button]
}

// CursorPosition returns the raw cursor position relative to the window's
// top-left corner.
func (s *State) CursorPosition() mgl32.Vec2 {
	return s.cursorPos
}

// CursorPositionFramebuffer returns the cursor in framebuffer coordinates
// with a bottom-left origin.
func (s *State) CursorPositionFramebuffer() mgl32.Vec2 {
	return mgl32.Vec2{
		s.cursorPos.X() - (s.size.X() - s.frameSize.X()),
		(s.size.Y() - s.cursorPos.Y()) - (s.size.Y() - s.frameSize.Y()),
	}
}

// CursorOffset returns the scaled cursor movement since the last re-centre.
// Only meaningful while the cursor is locked.
func (s *State) CursorOffset() mgl32.Vec2 {
	return s.cursorOffset
}

// Scroll returns the scroll offsets delivered during the last poll.
func (s *State) Scroll() mgl32.Vec2 {
	return s.scroll
}

// CursorLocked reports whether the cursor is re-centred every poll.
func (s *State) CursorLocked() bool {
	return s.cursorLocked
}

// SetCursorLocked hides the cursor and re-centres it every poll.
func (s *State) SetCursorLocked(locked bool) {
	s.native.SetCursorHidden(locked)
	s.cursorLocked = locked
}

// Size returns the outer window size.
func (s *State) Size() mgl32.Vec2 {
	return s.size
}

// Position returns the window's top-left corner in screen coordinates.
func (s *State) Position() mgl32.Vec2 {
	x, y := s.native.Pos()
	return mgl32.Vec2{float32(x), float32(y)}
}

// SetPosition moves the window. Coordinates are truncated to whole pixels.
func (s *State) SetPosition(pos mgl32.Vec2) {
	s.native.SetPos(int(pos.X()), int(pos.Y()))
}

// ShouldClose reports whether a close was requested.
func (s *State) ShouldClose() bool {
	return s.native.ShouldClose()
}

// RequestClose sets the close flag.
func (s *State) RequestClose() {
	s.native.SetShouldClose(true)
}

// DroppedEvents returns how many out-of-range events were discarded.
func (s *State) DroppedEvents() int {
	return s.droppedEventCount
}

// Close releases the native window. Safe to call more than once.
func (s *State) Close() {
	s.closeOnce.Do(func() {
		s.native.Destroy()
	})
}
