package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents an active RandR output.
type Monitor struct {
	ID      int
	Name    string
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
}

// GetMonitors retrieves all active monitors using XRandR. The primary output
// is flagged; when the server reports none, the monitor at the origin (or the
// first one) is marked primary.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		isPrimary := false
		for _, out := range crtcInfo.Outputs {
			if primary != 0 && out == primary {
				isPrimary = true
			}
		}

		monitors = append(monitors, Monitor{
			ID:      i,
			Name:    outputName,
			X:       int(crtcInfo.X),
			Y:       int(crtcInfo.Y),
			Width:   int(crtcInfo.Width),
			Height:  int(crtcInfo.Height),
			Primary: isPrimary,
		})
	}

	markFallbackPrimary(monitors)
	return monitors, nil
}

func markFallbackPrimary(monitors []Monitor) {
	if len(monitors) == 0 {
		return
	}
	for _, m := range monitors {
		if m.Primary {
			return
		}
	}
	for i := range monitors {
		if monitors[i].X == 0 && monitors[i].Y == 0 {
			monitors[i].Primary = true
			return
		}
	}
	monitors[0].Primary = true
}

// WorkArea returns the part of mon not covered by docks and panels. Dock
// struts are preferred; the EWMH work area of the current desktop is the
// fallback. When neither is available mon is returned unchanged.
func (c *Connection) WorkArea(mon Monitor) Monitor {
	if adjusted, ok := c.applyDockStruts(mon); ok {
		return adjusted
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return mon
	}
	desktopIndex := 0
	if currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		if int(currentDesktop) < len(workArea) {
			desktopIndex = int(currentDesktop)
		}
	}
	wa := workArea[desktopIndex]
	return clipToWorkArea(mon, int(wa.X), int(wa.Y), int(wa.Width), int(wa.Height))
}

// clipToWorkArea intersects mon with the work area rectangle. An empty
// intersection leaves mon unchanged.
func clipToWorkArea(mon Monitor, waX, waY, waW, waH int) Monitor {
	x1 := max(mon.X, waX)
	y1 := max(mon.Y, waY)
	x2 := min(mon.X+mon.Width, waX+waW)
	y2 := min(mon.Y+mon.Height, waY+waH)
	if x2 <= x1 || y2 <= y1 {
		return mon
	}
	mon.X, mon.Y = x1, y1
	mon.Width, mon.Height = x2-x1, y2-y1
	return mon
}

type dockStruts struct {
	left   int
	right  int
	top    int
	bottom int
}

func (s dockStruts) empty() bool {
	return s.left == 0 && s.right == 0 && s.top == 0 && s.bottom == 0
}

// shrink removes the strut margins from mon, keeping at least one pixel.
func (s dockStruts) shrink(mon Monitor) Monitor {
	mon.X += s.left
	mon.Y += s.top
	mon.Width = max(mon.Width-(s.left+s.right), 1)
	mon.Height = max(mon.Height-(s.top+s.bottom), 1)
	return mon
}

func (c *Connection) applyDockStruts(mon Monitor) (Monitor, bool) {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return mon, false
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return mon, false
	}

	var struts dockStruts
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil || !isDock(types) {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			struts.add(mon, rootWidth, rootHeight, sp)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			struts.add(mon, rootWidth, rootHeight, fullStrut(s, rootWidth, rootHeight))
		}
	}

	if struts.empty() {
		return mon, false
	}
	return struts.shrink(mon), true
}

func isDock(types []string) bool {
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" {
			return true
		}
	}
	return false
}

func fullStrut(s *ewmh.WmStrut, rootWidth, rootHeight int) *ewmh.WmStrutPartial {
	return &ewmh.WmStrutPartial{
		Left:       s.Left,
		Right:      s.Right,
		Top:        s.Top,
		Bottom:     s.Bottom,
		LeftEndY:   uint(rootHeight - 1),
		RightEndY:  uint(rootHeight - 1),
		TopEndX:    uint(rootWidth - 1),
		BottomEndX: uint(rootWidth - 1),
	}
}

// add accumulates the part of each strut edge that overlaps mon.
func (s *dockStruts) add(mon Monitor, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial) {
	m := rect{mon.X, mon.Y, mon.X + mon.Width, mon.Y + mon.Height}

	if sp.Top > 0 {
		r := rect{int(sp.TopStartX), 0, int(sp.TopEndX) + 1, int(sp.Top)}
		s.top = max(s.top, m.intersect(r).h())
	}
	if sp.Bottom > 0 {
		r := rect{int(sp.BottomStartX), rootHeight - int(sp.Bottom), int(sp.BottomEndX) + 1, rootHeight}
		s.bottom = max(s.bottom, m.intersect(r).h())
	}
	if sp.Left > 0 {
		r := rect{0, int(sp.LeftStartY), int(sp.Left), int(sp.LeftEndY) + 1}
		s.left = max(s.left, m.intersect(r).w())
	}
	if sp.Right > 0 {
		r := rect{rootWidth - int(sp.Right), int(sp.RightStartY), rootWidth, int(sp.RightEndY) + 1}
		s.right = max(s.right, m.intersect(r).w())
	}
}

// rect is a half-open box [x1,x2) x [y1,y2).
type rect struct {
	x1, y1, x2, y2 int
}

func (a rect) intersect(b rect) rect {
	out := rect{max(a.x1, b.x1), max(a.y1, b.y1), min(a.x2, b.x2), min(a.y2, b.y2)}
	if out.x2 <= out.x1 || out.y2 <= out.y1 {
		return rect{}
	}
	return out
}

func (a rect) w() int { return a.x2 - a.x1 }
func (a rect) h() int { return a.y2 - a.y1 }
