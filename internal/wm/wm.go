// Package wm assembles the window manager's aggregate root state and the
// single-threaded event loop that drives it: WMContext plus
// EventDispatcher (spec.md §4.7) and the binding-action dispatch switch
// (spec.md §4.8).
//
// Grounded on the teacher's internal/app.OS aggregate (internal/app/*.go):
// one struct holding every piece of mutable state the program needs,
// methods on it for each state transition, and a single top-level
// Update/dispatch switch (internal/app/update.go) routing input to those
// methods.
package wm

import (
	"github.com/xtile-wm/xtile/internal/atoms"
	"github.com/xtile-wm/xtile/internal/bindings"
	"github.com/xtile-wm/xtile/internal/client"
	"github.com/xtile-wm/xtile/internal/config"
	"github.com/xtile-wm/xtile/internal/drag"
	"github.com/xtile-wm/xtile/internal/focus"
	"github.com/xtile-wm/xtile/internal/layout"
	"github.com/xtile-wm/xtile/internal/workspace"
	"github.com/xtile-wm/xtile/internal/x11window"
	"github.com/xtile-wm/xtile/internal/xconn"
	"github.com/xtile-wm/xtile/internal/xlog"
)

// Context is the aggregate root: every piece of state a running xtile
// process needs, plus the controllers that act on it. It has no
// goroutines of its own; Run drives it from the calling goroutine.
type Context struct {
	Conn     xconn.Conn
	Atoms    *atoms.Cache
	Bindings bindings.Table

	Windows *x11window.WindowMap
	Focus   *focus.Controller
	Drag    *drag.Controller

	Workspaces [config.TotalWorkspaces]*workspace.Workspace
	Active     int

	ScreenWidth, ScreenHeight int
	Gap                       int

	// HasMovedCursor latches true on the first MotionNotify after a tile,
	// per spec.md §4.7's EnterNotify row: EnterNotify is only honored once
	// the cursor has actually moved, so a retile that happens to leave the
	// cursor sitting over a different window doesn't steal focus.
	HasMovedCursor bool

	running bool
}

// New interns atoms, allocates border colors, takes WM ownership of the
// root window, grabs every Table binding plus the dedicated kill-client
// key, and returns a Context ready for Run. Fails fast per spec.md §7
// kind 1 on any setup error.
func New(conn xconn.Conn, table bindings.Table) (*Context, error) {
	cache, err := atoms.Intern(conn)
	if err != nil {
		return nil, err
	}
	if err := conn.AllocBorderColors(config.NormalBorderColorName, config.FocusedBorderColorName); err != nil {
		return nil, err
	}
	if err := conn.SelectWMEvents(); err != nil {
		return nil, err
	}

	for _, b := range table {
		if err := conn.GrabKey(b.Key.Modifiers, b.Key.Keysym); err != nil {
			return nil, err
		}
	}
	if err := conn.GrabKey(config.KillClientModifiers, config.KillClientKeysym); err != nil {
		return nil, err
	}

	w, h := conn.ScreenSize()

	ctx := &Context{
		Conn:         conn,
		Atoms:        cache,
		Bindings:     table,
		Windows:      x11window.New(conn, cache),
		Focus:        focus.New(conn, cache),
		Drag:         drag.New(conn),
		Workspaces:   workspace.NewSet(),
		ScreenWidth:  w,
		ScreenHeight: h,
		Gap:          config.InitialGap,
		running:      true,
	}
	return ctx, nil
}

// ActiveWorkspace returns the workspace currently displayed on screen.
func (c *Context) ActiveWorkspace() *workspace.Workspace {
	return c.Workspaces[c.Active]
}

// Retile re-tiles the active workspace and clears HasMovedCursor, per
// spec.md §4.2/§4.7's "tile() clears the latch before returning" rule.
func (c *Context) Retile() {
	c.TileWorkspace(c.ActiveWorkspace())
}

// TileWorkspace applies layout.Tile's placements to ws's frames via
// ConfigureWindow and clears HasMovedCursor. Used directly (rather than
// through Retile) by send_to_workspace (spec.md §4.8), which must
// re-tile a workspace that is not necessarily the active one.
func (c *Context) TileWorkspace(ws *workspace.Workspace) {
	for _, p := range layout.Tile(ws, c.ScreenWidth, c.ScreenHeight, c.Gap) {
		cl := ws.Clients.Get(p.Client)
		if cl == nil {
			continue
		}
		_ = c.Conn.ConfigureWindow(cl.Frame, xconn.Geometry{
			X: p.Geometry.X, Y: p.Geometry.Y,
			Width: p.Geometry.Width, Height: p.Geometry.Height,
		}, xconn.ConfigMaskGeometry)
	}
	c.HasMovedCursor = false
}

// Stop marks the loop to exit after the current iteration, used by
// ActionQuit (spec.md §4.8).
func (c *Context) Stop() { c.running = false }

// Running reports whether Run's loop should keep going.
func (c *Context) Running() bool { return c.running }

// Run is the EventDispatcher (spec.md §4.7): pull one event at a time
// from Conn and route it by kind, until Stop is called or a non-silenced
// X error is judged fatal (spec.md §7 kind 2). The loop itself never
// recovers from a panic or wraps Dispatch in error handling beyond that
// one check — a fatal condition simply ends Run.
func (c *Context) Run() error {
	for c.running {
		ev, err := c.Conn.NextEvent()
		if err != nil {
			if c.Conn.ErrorsSilenced() {
				xlog.WithField("error", err).Debug("ignored X error during teardown")
				continue
			}
			xlog.WithField("error", err).Error("fatal X error")
			return err
		}
		c.Dispatch(ev)
	}
	return nil
}

// Dispatch routes one decoded event to its handler per spec.md §4.7's
// table.
func (c *Context) Dispatch(ev xconn.Ev) {
	switch ev.Kind {
	case xconn.EventKeyPress:
		c.handleKeyPress(ev)
	case xconn.EventButtonPress:
		c.handleButtonPress(ev)
	case xconn.EventButtonRelease:
		c.handleButtonRelease(ev)
	case xconn.EventMotionNotify:
		c.handleMotionNotify(ev)
	case xconn.EventConfigureRequest:
		c.handleConfigureRequest(ev)
	case xconn.EventMapRequest:
		c.handleMapRequest(ev)
	case xconn.EventUnmapNotify:
		c.handleUnmapNotify(ev)
	case xconn.EventEnterNotify:
		c.handleEnterNotify(ev)
	}
}

// handleKeyPress implements spec.md §4.3 step 8 / §4.9: the dedicated
// kill-client key acts on the active workspace's focused client,
// regardless of the Table; every other key is matched against Bindings.
func (c *Context) handleKeyPress(ev xconn.Ev) {
	if ev.Modifiers == config.KillClientModifiers && ev.Keysym == config.KillClientKeysym {
		c.killFocused()
		return
	}

	b, ok := c.Bindings.Match(ev.Modifiers, ev.Keysym)
	if !ok {
		return
	}
	c.dispatchAction(b.Action, b.Argument)
}

func (c *Context) killFocused() {
	ws := c.ActiveWorkspace()
	idx, ok := ws.Clients.Focused()
	if !ok {
		return
	}
	cl := ws.Clients.Get(idx)
	if cl == nil {
		return
	}
	_ = c.Atoms.Kill(c.Conn, cl.Window, 0)
}

// handleButtonPress implements spec.md §4.6's ButtonPress transition:
// locate the client the grab fired on and start a drag.
func (c *Context) handleButtonPress(ev xconn.Ev) {
	ws := c.ActiveWorkspace()
	idx, ok := ws.Clients.FindByWindow(uint32(ev.Window), client.KindWindow)
	if !ok {
		return
	}
	if c.Drag.Begin(ws, idx, drag.Button(ev.Button), ev.RootX, ev.RootY) {
		c.Retile()
	}
}

// handleButtonRelease implements spec.md §4.6's ButtonRelease transition.
func (c *Context) handleButtonRelease(ev xconn.Ev) {
	c.Drag.End()
}

// handleMotionNotify applies an in-progress drag's geometry and latches
// HasMovedCursor so the next EnterNotify is honored (spec.md §4.7).
func (c *Context) handleMotionNotify(ev xconn.Ev) {
	c.HasMovedCursor = true
	c.Drag.Motion(c.ActiveWorkspace(), ev.RootX, ev.RootY, c.ScreenWidth, c.ScreenHeight)
}

// handleConfigureRequest forwards the client's requested geometry
// unchanged (spec.md §4.7): xtile never fights a client over its own
// size request before it's managed, or while it's floating. Only the
// fields the client's XConfigureWindow call actually named (ev.ValueMask)
// are applied, matching original_source's on_configure_request building
// XWindowChanges from the event's own value_mask.
func (c *Context) handleConfigureRequest(ev xconn.Ev) {
	_ = c.Conn.ConfigureWindow(ev.Window, ev.Geometry, ev.ValueMask)
}

// handleMapRequest implements spec.md §4.3's frame-then-map sequence:
// frame the new window into the active workspace, sync so the server has
// applied the reparent before anything else touches it, focus it, and
// re-tile.
func (c *Context) handleMapRequest(ev xconn.Ev) {
	ws := c.ActiveWorkspace()
	idx, err := c.Windows.Frame(ws, ev.Window)
	if err != nil {
		xlog.WithField("error", err).Warn("failed to frame mapped window")
		return
	}
	_ = c.Conn.Sync()
	c.Focus.Focus(ws, idx)
	c.Retile()
}

// handleUnmapNotify implements spec.md §4.3's unframe-then-tile
// sequence. SwitchToWorkspace hides/shows workspaces by
// unmapping/mapping FRAME windows, not application windows, so the
// UnmapNotify it generates carries a frame id in ev.Window; FindByWindow
// matches on KindWindow (the application window), which a frame id can
// never equal, so a workspace switch's own unmaps never mis-dispatch
// here.
func (c *Context) handleUnmapNotify(ev xconn.Ev) {
	ws := c.ActiveWorkspace()
	idx, ok := ws.Clients.FindByWindow(uint32(ev.Window), client.KindWindow)
	if !ok {
		return
	}
	c.Windows.Unframe(ws, idx, c.Focus, c.Drag)
	c.Retile()
}

// handleEnterNotify implements spec.md §4.7/§9's deliberate asymmetry:
// every other lookup keys off the application window, but EnterNotify
// reports the frame the pointer entered, so this one keys off Frame.
// Only honored once HasMovedCursor is set, so a retile that happens to
// leave the pointer over a different frame doesn't steal focus on its
// own.
func (c *Context) handleEnterNotify(ev xconn.Ev) {
	if !c.HasMovedCursor {
		return
	}
	ws := c.ActiveWorkspace()
	idx, ok := ws.Clients.FindByWindow(uint32(ev.Frame), client.KindFrame)
	if !ok {
		return
	}
	c.Focus.Focus(ws, idx)
}
