// Package x11window implements WindowMap (spec.md §4.3): framing and
// unframing managed windows, the save-set dance, size-hint queries, and
// the should-float policy (spec.md §4.4).
//
// Grounded on funkycode-marwind's wm/frame.go reparenting flow
// (createParent + reparent + doMap) for the general shape, and on
// original_source/src/window_manager.c's frame_window/unframe_window
// functions for the exact reparent-then-map-then-sync ordering and the
// teardown error-silencing window spec.md §4.3/§7 describes.
package x11window

import (
	"fmt"

	"github.com/xtile-wm/xtile/internal/atoms"
	"github.com/xtile-wm/xtile/internal/client"
	"github.com/xtile-wm/xtile/internal/config"
	"github.com/xtile-wm/xtile/internal/drag"
	"github.com/xtile-wm/xtile/internal/focus"
	"github.com/xtile-wm/xtile/internal/workspace"
	"github.com/xtile-wm/xtile/internal/xconn"
)

// WindowMap creates and destroys frame windows around managed clients.
type WindowMap struct {
	conn  xconn.Conn
	atoms *atoms.Cache
}

// New returns a WindowMap bound to conn and the process's atom cache.
func New(conn xconn.Conn, cache *atoms.Cache) *WindowMap {
	return &WindowMap{conn: conn, atoms: cache}
}

// Frame implements spec.md §4.3's frame(window) sequence: query
// attributes, create and configure a frame window, subscribe it to
// SubstructureNotify|EnterWindow, add window to the save-set, reparent,
// map the frame, map the client's own window (a MapRequest means the
// client's own XMapWindow call was intercepted by substructure
// redirection, so the WM must reissue it explicitly, per
// original_source/src/window_manager.c's on_map_request doing
// frame_window then a separate XMapWindow(wm->conn, event->window)), and
// insert a new Client into ws with its should-float policy already
// applied. Returns the new Client's handle in ws.
func (wm *WindowMap) Frame(ws *workspace.Workspace, win xconn.Window) (int, error) {
	geom, err := wm.conn.GetGeometry(win)
	if err != nil {
		return client.NoClient, fmt.Errorf("query attributes of %d: %w", win, err)
	}

	frame, err := wm.conn.CreateFrame(geom, config.BorderWidth)
	if err != nil {
		return client.NoClient, fmt.Errorf("create frame for %d: %w", win, err)
	}

	_ = wm.conn.ChangeSaveSet(win, true)
	if err := wm.conn.ReparentWindow(win, frame, 0, 0); err != nil {
		return client.NoClient, fmt.Errorf("reparent %d into frame %d: %w", win, frame, err)
	}
	if err := wm.conn.MapWindow(frame); err != nil {
		return client.NoClient, fmt.Errorf("map frame %d: %w", frame, err)
	}
	if err := wm.conn.MapWindow(win); err != nil {
		return client.NoClient, fmt.Errorf("map window %d: %w", win, err)
	}

	hints := wm.conn.QuerySizeHints(win)
	c := client.Client{
		Window:    win,
		Frame:     frame,
		MinWidth:  hints.MinWidth,
		MinHeight: hints.MinHeight,
		MaxWidth:  hints.MaxWidth,
		MaxHeight: hints.MaxHeight,
	}
	c.IsFloating = wm.shouldFloat(win, c)

	idx := ws.Clients.Insert(c)

	// Button grabs are per-window (spec.md §4.6); the dedicated kill-client
	// key and every Table binding are grabbed once on the root at startup
	// (internal/wm), since Conn.GrabKey always targets the root.
	_ = wm.conn.GrabButtons(win, config.ModMask)

	return idx, nil
}

// shouldFloat implements spec.md §4.4: a freshly managed client floats
// if it has a fixed size on both axes, or its _NET_WM_WINDOW_TYPE is
// _NET_WM_WINDOW_TYPE_DIALOG, or it has no window type set but does
// carry a WM_TRANSIENT_FOR hint.
func (wm *WindowMap) shouldFloat(win xconn.Window, c client.Client) bool {
	if c.HasFixedSize() {
		return true
	}

	wt := wm.conn.QueryWindowType(win)
	if wt.HasNetWMType {
		return wt.IsDialog
	}
	return wt.HasTransientFor
}

// Unframe implements spec.md §4.3's unframe(client): with X errors
// silenced (the client may already be gone mid-teardown), unmap and
// destroy the frame, reparent window back to root, drop it from the
// save-set, clear it from any active drag, transfer focus to a
// neighbor, remove it from ws, then sync and restore normal error
// handling.
func (wm *WindowMap) Unframe(ws *workspace.Workspace, idx int, fc *focus.Controller, dc *drag.Controller) {
	c := ws.Clients.Get(idx)
	if c == nil {
		return
	}

	xconn.WithSilencedErrors(wm.conn, func() {
		_ = wm.conn.UnmapWindow(c.Frame)
		_ = wm.conn.ReparentWindow(c.Window, wm.conn.RootWindow(), 0, 0)
		_ = wm.conn.ChangeSaveSet(c.Window, false)
		_ = wm.conn.DestroyWindow(c.Frame)

		dc.ClearIfDragged(idx)
		fc.FocusNeighborOf(ws, idx)

		ws.Clients.Destroy(idx)
	})
}
