package platform

import "fmt"

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Display describes a physical display and its usable work area.
type Display struct {
	ID      int
	Name    string
	Bounds  Rect
	Usable  Rect
	Primary bool
}

// Backend abstracts display queries across platforms.
type Backend interface {
	Displays() ([]Display, error)
	Disconnect()
}

// Span is the virtual screen the animated window bounces inside: the
// primary display's size plus the number of displays entirely to its right
// and left.
type Span struct {
	Width         int
	Height        int
	MonitorsRight int
	MonitorsLeft  int
}

// ComputeSpan derives the span from a display list. With useWorkArea the
// height is measured to the bottom of the primary's usable area so panels
// act as the floor.
func ComputeSpan(displays []Display, useWorkArea bool) (Span, error) {
	if len(displays) == 0 {
		return Span{}, fmt.Errorf("no displays found")
	}

	primary := displays[0]
	for _, d := range displays {
		if d.Primary {
			primary = d
			break
		}
	}

	span := Span{
		Width:  primary.Bounds.Width,
		Height: primary.Bounds.Height,
	}
	if useWorkArea && primary.Usable.Height > 0 {
		span.Height = primary.Usable.Bottom() - primary.Bounds.Y
	}

	for _, d := range displays {
		if d.ID == primary.ID {
			continue
		}
		switch {
		case d.Bounds.X >= primary.Bounds.Right():
			span.MonitorsRight++
		case d.Bounds.Right() <= primary.Bounds.X:
			span.MonitorsLeft++
		}
	}
	return span, nil
}

// DetectSpan opens the platform backend, computes the span and disconnects.
func DetectSpan(useWorkArea bool) (Span, error) {
	b, err := NewBackend()
	if err != nil {
		return Span{}, err
	}
	defer b.Disconnect()

	displays, err := b.Displays()
	if err != nil {
		return Span{}, fmt.Errorf("failed to list displays: %w", err)
	}
	return ComputeSpan(displays, useWorkArea)
}
