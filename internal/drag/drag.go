// Package drag implements DragController (spec.md §4.6): the
// sub-state-machine for pointer-driven move/resize of floating clients.
//
// Grounded on the teacher's internal/input/mouse.go drag/resize handling
// (handleMouseMotion's Dragging/Resizing branches, corner-relative resize
// math against a PreResizeState snapshot), generalized from terminal-cell
// coordinates to X11 pixel coordinates and an XGetGeometry snapshot taken
// at drag start.
package drag

import (
	"github.com/xtile-wm/xtile/internal/client"
	"github.com/xtile-wm/xtile/internal/config"
	"github.com/xtile-wm/xtile/internal/layout"
	"github.com/xtile-wm/xtile/internal/workspace"
	"github.com/xtile-wm/xtile/internal/xconn"
)

// Button identifies which pointer button is driving the current drag:
// Button1 moves, Button3 resizes, per spec.md §4.6.
type Button uint8

const (
	NoButton Button = 0
	Button1  Button = 1
	Button3  Button = 3
)

// State is the DragController's substate: which client is being dragged,
// which button started the drag, and the cursor/frame geometry snapshot
// taken at ButtonPress.
type State struct {
	Client  int // client.NoClient if nothing is being dragged
	Button  Button
	CursorX0, CursorY0                 int
	WinX0, WinY0, WinWidth0, WinHeight0 int
}

// Controller runs the move/resize sub-state-machine against a Conn.
type Controller struct {
	conn  xconn.Conn
	state State
}

// New returns a Controller with no active drag.
func New(conn xconn.Conn) *Controller {
	return &Controller{conn: conn, state: State{Client: client.NoClient}}
}

// Active reports whether a drag is currently in progress.
func (d *Controller) Active() bool { return d.state.Client != client.NoClient }

// Client returns the handle of the client being dragged, or
// client.NoClient if none.
func (d *Controller) Client() int { return d.state.Client }

// ClearIfDragged clears drag state if it currently targets idx, used by
// unframe (spec.md §4.3 step 2) when the dragged client is destroyed.
func (d *Controller) ClearIfDragged(idx int) {
	if d.state.Client == idx {
		d.state = State{Client: client.NoClient}
	}
}

// Begin implements the ButtonPress transition: snapshot cursor and frame
// geometry, raise the frame, and mark c as floating if it was tiled.
// Returns whether c's floating flag flipped, so the caller knows to
// re-tile ws (spec.md §4.6: "re-tile the workspace, which removes c from
// the tile flow") — Begin itself has no screen dimensions to tile with.
func (d *Controller) Begin(ws *workspace.Workspace, idx int, button Button, cursorX, cursorY int) bool {
	c := ws.Clients.Get(idx)
	if c == nil {
		return false
	}

	geom, err := d.conn.GetGeometry(c.Frame)
	if err != nil {
		return false
	}
	_ = d.conn.RaiseWindow(c.Frame)

	d.state = State{
		Client:     idx,
		Button:     button,
		CursorX0:   cursorX,
		CursorY0:   cursorY,
		WinX0:      geom.X,
		WinY0:      geom.Y,
		WinWidth0:  geom.Width,
		WinHeight0: geom.Height,
	}

	if !c.IsFloating {
		c.IsFloating = true
		return true
	}
	return false
}

// Motion implements the MotionNotify transition: if a drag is active,
// translate (Button1) or resize (Button3) the dragged client's frame to
// follow the cursor delta, clamped per spec.md §4.6. Returns the new
// geometry and whether one was applied.
func (d *Controller) Motion(ws *workspace.Workspace, rootX, rootY, screenW, screenH int) (layout.Geometry, bool) {
	if !d.Active() {
		return layout.Geometry{}, false
	}
	c := ws.Clients.Get(d.state.Client)
	if c == nil {
		d.state = State{Client: client.NoClient}
		return layout.Geometry{}, false
	}

	dx := rootX - d.state.CursorX0
	dy := rootY - d.state.CursorY0

	var geom layout.Geometry
	switch d.state.Button {
	case Button1:
		geom = layout.Geometry{
			X: d.state.WinX0 + dx, Y: d.state.WinY0 + dy,
			Width: d.state.WinWidth0, Height: d.state.WinHeight0,
		}
	case Button3:
		w := c.ClampWidth(d.state.WinWidth0+dx, config.MinDragSize)
		h := c.ClampHeight(d.state.WinHeight0+dy, config.MinDragSize)
		geom = layout.Geometry{X: d.state.WinX0, Y: d.state.WinY0, Width: w, Height: h}
	default:
		return layout.Geometry{}, false
	}

	_ = d.conn.ConfigureWindow(c.Frame, xconn.Geometry{
		X: geom.X, Y: geom.Y, Width: geom.Width, Height: geom.Height,
	}, xconn.ConfigMaskGeometry)
	return geom, true
}

// End implements the ButtonRelease transition: the drag simply stops.
func (d *Controller) End() {
	d.state = State{Client: client.NoClient}
}
