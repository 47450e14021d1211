package wm

import (
	"github.com/xtile-wm/xtile/internal/bindings"
	"github.com/xtile-wm/xtile/internal/config"
	"github.com/xtile-wm/xtile/internal/layout"
	"github.com/xtile-wm/xtile/internal/spawn"
	"github.com/xtile-wm/xtile/internal/workspace"
	"github.com/xtile-wm/xtile/internal/xlog"
)

// dispatchAction implements spec.md §4.8's central action switch: every
// Action a Binding can name, applied against the active workspace.
func (c *Context) dispatchAction(action bindings.Action, arg bindings.Argument) {
	switch action {
	case bindings.ActionSpawn:
		if err := spawn.Spawn(arg.Command); err != nil {
			xlog.WithField("error", err).Warn("spawn failed")
		}
	case bindings.ActionQuit:
		c.Stop()
	case bindings.ActionAdjustSpecialWidth:
		c.adjustSpecialWidth(arg.Amount)
	case bindings.ActionAdjustGap:
		c.adjustGap(arg.Amount)
	case bindings.ActionFocusNext:
		c.focusNeighbor(true)
	case bindings.ActionFocusPrev:
		c.focusNeighbor(false)
	case bindings.ActionMakeFocusedSpecial:
		c.makeFocusedSpecial()
	case bindings.ActionToggleFloat:
		c.toggleFloat()
	case bindings.ActionSwitchWorkspace:
		c.SwitchToWorkspace(arg.Amount)
	case bindings.ActionSendToWorkspace:
		c.SendToWorkspace(arg.Amount)
	}
}

// adjustSpecialWidth implements spec.md §4.8's adjust_special_width(dx):
// clamp the active workspace's special pane width by dx, then re-tile.
func (c *Context) adjustSpecialWidth(dx int) {
	ws := c.ActiveWorkspace()
	ws.SpecialWidth = layout.ClampSpecialWidth(ws.SpecialWidth+dx, c.ScreenWidth, c.Gap, config.SpecialWidthPadding)
	c.Retile()
}

// adjustGap implements spec.md §4.8's adjust_gap(dx): the gap may never
// go negative. Gap is global, but only the active workspace is re-tiled
// here; the others take the new gap when SwitchToWorkspace re-tiles them.
func (c *Context) adjustGap(dx int) {
	g := c.Gap + dx
	if g < 0 {
		g = 0
	}
	c.Gap = g
	c.Retile()
}

// focusNeighbor implements spec.md §4.8's focus_next/focus_prev: move
// along the active workspace's main-list order (not the focus stack),
// wrapping around at either end, and apply the new focus.
func (c *Context) focusNeighbor(forward bool) {
	ws := c.ActiveWorkspace()
	cur, ok := ws.Clients.Focused()
	if !ok {
		return
	}

	var next int
	var found bool
	if forward {
		next, found = ws.Clients.Next(cur)
		if !found {
			next, found = ws.Clients.Head()
		}
	} else {
		next, found = ws.Clients.Prev(cur)
		if !found {
			next, found = ws.Clients.Tail()
		}
	}
	if !found {
		return
	}
	c.Focus.Focus(ws, next)
}

// makeFocusedSpecial implements spec.md §4.8's make_focused_special:
// promote the focused client to the head of the main list (the special
// slot Tile assigns to the first non-floating client), then re-tile.
func (c *Context) makeFocusedSpecial() {
	ws := c.ActiveWorkspace()
	idx, ok := ws.Clients.Focused()
	if !ok {
		return
	}
	if head, hasHead := ws.Clients.Head(); hasHead && head == idx {
		return
	}

	cl := ws.Clients.Get(idx)
	if cl == nil {
		return
	}
	snapshot := *cl
	ws.Clients.Destroy(idx)
	newIdx := ws.Clients.Insert(snapshot)
	ws.Clients.FocusPush(newIdx)
	c.Retile()
}

// toggleFloat implements spec.md §4.8's toggle_float: flip the focused
// client's floating flag and re-tile, so toggling it off drops it back
// into the tile flow at its current list position.
func (c *Context) toggleFloat() {
	ws := c.ActiveWorkspace()
	idx, ok := ws.Clients.Focused()
	if !ok {
		return
	}
	cl := ws.Clients.Get(idx)
	if cl == nil {
		return
	}
	cl.IsFloating = !cl.IsFloating
	c.Retile()
}

// SwitchToWorkspace implements spec.md §4.8's switch_workspace(n): no-op
// if n is already active or out of range, otherwise hide every frame in
// the current workspace, show every frame in the target, and make it
// active.
func (c *Context) SwitchToWorkspace(target int) {
	if target == c.Active || target < 0 || target >= config.TotalWorkspaces {
		return
	}

	setVisible(c, c.ActiveWorkspace(), false)
	c.Active = target
	setVisible(c, c.ActiveWorkspace(), true)
	c.Retile()

	if head, ok := c.ActiveWorkspace().Clients.Focused(); ok {
		c.Focus.Reassert(c.ActiveWorkspace(), head)
	}
}

func setVisible(c *Context, ws *workspace.Workspace, visible bool) {
	for _, idx := range ws.Clients.Indices() {
		cl := ws.Clients.Get(idx)
		if cl == nil {
			continue
		}
		if visible {
			_ = c.Conn.MapWindow(cl.Frame)
		} else {
			_ = c.Conn.UnmapWindow(cl.Frame)
		}
	}
}

// SendToWorkspace implements spec.md §4.8's send_to_workspace(n): no-op
// if n is already active or out of range or nothing is focused.
// Otherwise move the focused client's entry to workspace n's list head,
// mark it focused there directly (spec.md §9: never the full focus
// routine, since its frame is unmapped and touching X state on it would
// error), reassert focus in the source workspace, unmap its frame, and
// re-tile both workspaces.
func (c *Context) SendToWorkspace(target int) {
	if target == c.Active || target < 0 || target >= config.TotalWorkspaces {
		return
	}

	src := c.ActiveWorkspace()
	dst := c.Workspaces[target]

	idx, ok := src.Clients.Focused()
	if !ok {
		return
	}
	cl := src.Clients.Get(idx)
	if cl == nil {
		return
	}
	snapshot := *cl

	// FocusNeighborOf reads idx's Prev/Next in src, so it must run before
	// Destroy unlinks it (spec.md §4.3 step 3 / §4.6 P5's ordering).
	c.Focus.FocusNeighborOf(src, idx)
	src.Clients.Destroy(idx)

	newIdx := dst.Clients.Insert(snapshot)
	dst.Clients.FocusPush(newIdx)

	_ = c.Conn.UnmapWindow(snapshot.Frame)

	c.TileWorkspace(src)
	c.TileWorkspace(dst)
}
