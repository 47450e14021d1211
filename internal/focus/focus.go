// Package focus implements FocusController (spec.md §4.5): applying
// focus transitions to the X server and maintaining the per-workspace
// FocusStack invariant that focusing a client promotes it to MRU-top.
//
// Grounded on the teacher's focus bookkeeping in internal/app/tiling.go
// (OS.FocusedWindow plus FocusWindow/SwapWindow*), generalized from
// in-process terminal-window state to border repaint, _NET_ACTIVE_WINDOW,
// SetInputFocus and WM_TAKE_FOCUS against a real X server.
package focus

import (
	"github.com/xtile-wm/xtile/internal/atoms"
	"github.com/xtile-wm/xtile/internal/client"
	"github.com/xtile-wm/xtile/internal/workspace"
	"github.com/xtile-wm/xtile/internal/xconn"
)

// Controller applies focus transitions to the X server.
type Controller struct {
	conn  xconn.Conn
	atoms *atoms.Cache
}

// New returns a Controller bound to conn and the process's interned atoms.
func New(conn xconn.Conn, cache *atoms.Cache) *Controller {
	return &Controller{conn: conn, atoms: cache}
}

// Focus applies spec.md §4.5's focus transition within ws: repaints the
// previously focused client's border back to normal, then either clears
// focus (idx == client.NoClient), emptying ws's FocusStack, or assigns it
// to idx, pushing idx to the top of ws's FocusStack.
//
// Focusing the already-focused client is a no-op: the border repaint is
// skipped entirely, matching the idempotence requirement in spec.md §4.5.
func (fc *Controller) Focus(ws *workspace.Workspace, idx int) {
	cur, hasCur := ws.Clients.Focused()
	if idx != client.NoClient && hasCur && cur == idx {
		return
	}

	if hasCur {
		if c := ws.Clients.Get(cur); c != nil {
			_ = fc.conn.SetBorderColor(c.Frame, false)
		}
	}

	if idx == client.NoClient {
		for top, ok := ws.Clients.Focused(); ok; top, ok = ws.Clients.Focused() {
			ws.Clients.FocusRemove(top)
		}
		_ = fc.conn.ClearInputFocus()
		_ = fc.conn.ClearActiveWindow()
		return
	}

	c := ws.Clients.Get(idx)
	if c == nil {
		return
	}

	_ = fc.conn.SetBorderColor(c.Frame, true)
	_ = fc.conn.SetActiveWindow(c.Window)
	_ = fc.conn.SetInputFocus(c.Window)
	fc.atoms.SendTakeFocus(fc.conn, c.Window, 0)
	ws.Clients.FocusPush(idx)
}

// Reassert unconditionally reapplies idx's focused X state — border
// color, _NET_ACTIVE_WINDOW, input focus, WM_TAKE_FOCUS — without
// Focus's idempotence shortcut or touching the FocusStack. Used by
// switch_to_workspace (spec.md §4.8/§9): the workspace's MRU head
// doesn't change across a switch, but its frame was just unmapped and
// remapped, so the X-side focus state needs reapplying even though
// ws.Clients.Focused() already reports idx.
func (fc *Controller) Reassert(ws *workspace.Workspace, idx int) {
	c := ws.Clients.Get(idx)
	if c == nil {
		return
	}
	_ = fc.conn.SetBorderColor(c.Frame, true)
	_ = fc.conn.SetActiveWindow(c.Window)
	_ = fc.conn.SetInputFocus(c.Window)
	fc.atoms.SendTakeFocus(fc.conn, c.Window, 0)
}

// FocusNeighborOf implements the transfer-on-destroy rule of spec.md
// §4.3 step 3 / §4.6 P5: if idx is currently focused in ws, focus its
// prev neighbor, else its next, else none.
func (fc *Controller) FocusNeighborOf(ws *workspace.Workspace, idx int) {
	cur, hasCur := ws.Clients.Focused()
	if !hasCur || cur != idx {
		return
	}

	if prev, ok := ws.Clients.Prev(idx); ok {
		fc.Focus(ws, prev)
		return
	}
	if next, ok := ws.Clients.Next(idx); ok {
		fc.Focus(ws, next)
		return
	}
	fc.Focus(ws, client.NoClient)
}
