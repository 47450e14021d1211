// Package client implements the managed-window data model: a doubly-linked
// ordered collection of top-level X11 windows plus an MRU focus stack.
//
// Both the main list and the focus stack are expressed as an arena of nodes
// addressed by stable integer handles, which sidesteps the lifetime
// questions a pointer-linked list raises for weakly-held focus-stack
// entries while keeping the same O(n) scan complexity as a linked list of
// client structs.
package client

import "github.com/xtile-wm/xtile/internal/xconn"

// Kind selects which window id field FindByWindow compares against.
type Kind int

const (
	// KindFrame matches on the WM-created frame window id.
	KindFrame Kind = iota
	// KindWindow matches on the managed application window id.
	KindWindow
)

// NoClient is the sentinel handle meaning "no client" everywhere a client
// index is expected (head/tail/focused/next/prev).
const NoClient = -1

// SizeHintDisabled is the sentinel value for a disabled min/max size hint.
const SizeHintDisabled = -1

// Client represents one managed top-level application window.
type Client struct {
	Window     xconn.Window
	Frame      xconn.Window
	IsFloating bool

	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
}

// HasFixedSize reports whether both axes have matching, enabled min/max
// hints, meaning the window cannot be resized and should float rather than
// be forced into a tiled slot.
func (c Client) HasFixedSize() bool {
	return c.MaxWidth == c.MinWidth && c.MaxWidth != SizeHintDisabled &&
		c.MaxHeight == c.MinHeight && c.MaxHeight != SizeHintDisabled
}

// ClampWidth clamps w to [MinWidth, MaxWidth] where those hints are set,
// and to at least floor regardless.
func (c Client) ClampWidth(w, floor int) int {
	return clampHint(w, c.MinWidth, c.MaxWidth, floor)
}

// ClampHeight clamps h to [MinHeight, MaxHeight] where those hints are set,
// and to at least floor regardless.
func (c Client) ClampHeight(h, floor int) int {
	return clampHint(h, c.MinHeight, c.MaxHeight, floor)
}

func clampHint(v, min, max, floor int) int {
	if min != SizeHintDisabled && v < min {
		v = min
	}
	if max != SizeHintDisabled && v > max {
		v = max
	}
	if v < floor {
		v = floor
	}
	return v
}
