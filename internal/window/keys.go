package window

// Key is a keyboard key code. Values match the GLFW key table so native
// callbacks can forward codes without translation.
type Key int

const (
	KeySpace  Key = 32
	KeyQ      Key = 81
	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265
)

// MaxKeys bounds the key table. Codes outside [0, MaxKeys) are dropped.
const MaxKeys = 1024

// MouseButton is a mouse button index.
type MouseButton int

const (
	MouseButton1 MouseButton = 0
	MouseButton2 MouseButton = 1
	MouseButton3 MouseButton = 2

	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
)

// MaxMouseButtons bounds the mouse button table.
const MaxMouseButtons = 12

// Action is the transition carried by a key or button event.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

func (k Key) valid() bool {
	return k >= 0 && k < MaxKeys
}

func (b MouseButton) valid() bool {
	return b >= 0 && b < MaxMouseButtons
}
