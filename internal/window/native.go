package window

// EventSink receives input events from a native window. Implementations are
// only called from inside Native.PollEvents.
type EventSink interface {
	HandleKey(key Key, action Action)
	HandleMouseButton(button MouseButton, action Action)
	HandleScroll(xoff, yoff float64)
}

// Native abstracts the window-system operations the input state needs.
type Native interface {
	// Bind routes input callbacks to sink.
	Bind(sink EventSink)
	PollEvents()

	Pos() (x, y int)
	SetPos(x, y int)
	Size() (width, height int)
	FramebufferSize() (width, height int)

	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
	SetCursorHidden(hidden bool)

	// Time returns seconds on a monotonic clock.
	Time() float64
	SwapBuffers()

	ShouldClose() bool
	SetShouldClose(value bool)

	// Destroy releases the window and the window-system connection.
	Destroy()
}
