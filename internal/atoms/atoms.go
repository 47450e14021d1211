// Package atoms interns and caches the six X11 atoms the core needs
// (spec.md §6) and implements the WM_PROTOCOLS client-message pattern
// used by FocusController's WM_TAKE_FOCUS send and by Kill's
// WM_DELETE_WINDOW send (spec.md §4.9), grounded on the xgbutil/icccm
// and xgbutil/ewmh conventions exercised in the cortile example
// (store/client.go's icccm.WmProtocolsGet / ewmh.WmWindowTypeGet calls).
package atoms

import (
	"fmt"

	"github.com/xtile-wm/xtile/internal/xconn"
)

// Cache holds the atoms interned once at startup.
type Cache struct {
	WMProtocols           xconn.Atom
	WMDeleteWindow        xconn.Atom
	WMTakeFocus           xconn.Atom
	NetActiveWindow       xconn.Atom
	NetWMWindowType       xconn.Atom
	NetWMWindowTypeDialog xconn.Atom
}

// Intern queries the X server for the six atoms the core names in
// spec.md §6, failing fast (spec.md §7 kind 1) if the connection drops
// mid-setup.
func Intern(conn xconn.Conn) (*Cache, error) {
	c := &Cache{}
	for _, n := range []struct {
		name string
		dest *xconn.Atom
	}{
		{"WM_PROTOCOLS", &c.WMProtocols},
		{"WM_DELETE_WINDOW", &c.WMDeleteWindow},
		{"WM_TAKE_FOCUS", &c.WMTakeFocus},
		{"_NET_ACTIVE_WINDOW", &c.NetActiveWindow},
		{"_NET_WM_WINDOW_TYPE", &c.NetWMWindowType},
		{"_NET_WM_WINDOW_TYPE_DIALOG", &c.NetWMWindowTypeDialog},
	} {
		a, err := conn.InternAtom(n.name)
		if err != nil {
			return nil, fmt.Errorf("intern atom %s: %w", n.name, err)
		}
		*n.dest = a
	}
	return c, nil
}

// SendTakeFocus sends a WM_TAKE_FOCUS client message to win if it
// supports the protocol (spec.md §4.5). No-op, not an error, if the
// client doesn't advertise it.
func (c *Cache) SendTakeFocus(conn xconn.Conn, win xconn.Window, t xconn.Timestamp) {
	if !conn.SupportsProtocol(win, c.WMTakeFocus) {
		return
	}
	_ = conn.SendProtocolMessage(win, c.WMTakeFocus, t)
}

// Kill implements spec.md §4.9: send WM_DELETE_WINDOW if win advertises
// WM_PROTOCOLS support for it, otherwise XKillClient. Giving a
// well-behaved app the chance to save state is not an error path either
// way, per spec.md §7 kind 4.
func (c *Cache) Kill(conn xconn.Conn, win xconn.Window, t xconn.Timestamp) error {
	if conn.SupportsProtocol(win, c.WMDeleteWindow) {
		return conn.SendProtocolMessage(win, c.WMDeleteWindow, t)
	}
	return conn.KillClient(win)
}
