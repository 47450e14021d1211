// Package layout computes a deterministic geometry assignment for one
// workspace given its client order and layout parameters. One non-floating
// client occupies the "special" pane; the rest split the remaining column
// in equal-height shares.
//
// Tile is a pure function from window count and screen size to a slice of
// geometries, independent of any rendering or X11 concern, so it can be
// exercised without a display connection.
package layout

import (
	"github.com/xtile-wm/xtile/internal/workspace"
)

// Geometry is the position and size assigned to one client.
type Geometry struct {
	X, Y, Width, Height int
}

// Placement pairs a client handle (as returned by client.List.Indices) with
// the geometry the Tiler assigned it.
type Placement struct {
	Client   int
	Geometry Geometry
}

// Tile computes geometries for every non-floating client in ws, in list
// order. Floating clients are skipped entirely and retain whatever
// geometry they already have. Returns nil if there are no non-floating
// clients.
func Tile(ws *workspace.Workspace, screenWidth, screenHeight, gap int) []Placement {
	var nonFloating []int
	for _, idx := range ws.Clients.Indices() {
		c := ws.Clients.Get(idx)
		if c == nil || c.IsFloating {
			continue
		}
		nonFloating = append(nonFloating, idx)
	}

	n := len(nonFloating)
	if n == 0 {
		return nil
	}

	wMax := screenWidth - 2*gap
	hMax := screenHeight - 2*gap

	if n == 1 {
		return []Placement{
			{Client: nonFloating[0], Geometry: Geometry{X: gap, Y: gap, Width: wMax, Height: hMax}},
		}
	}

	placements := make([]Placement, 0, n)

	special := nonFloating[0]
	placements = append(placements, Placement{
		Client:   special,
		Geometry: Geometry{X: gap, Y: gap, Width: ws.SpecialWidth, Height: hMax},
	})

	stackCount := n - 1
	remWidth := wMax - ws.SpecialWidth - gap
	stackX := ws.SpecialWidth + 2*gap
	otherHeight := (hMax - gap*(stackCount-1)) / stackCount

	for i := 0; i < stackCount; i++ {
		idx := nonFloating[i+1]
		y := gap + i*(gap+otherHeight)
		placements = append(placements, Placement{
			Client:   idx,
			Geometry: Geometry{X: stackX, Y: y, Width: remWidth, Height: otherHeight},
		})
	}

	return placements
}

// ClampSpecialWidth bounds a candidate special-pane width to
// [padding, screenWidth-2*gap-padding], keeping the stack column from being
// squeezed to nothing or the special pane from swallowing the screen.
func ClampSpecialWidth(width, screenWidth, gap, padding int) int {
	min := padding
	max := screenWidth - 2*gap - padding
	if width < min {
		return min
	}
	if width > max {
		return max
	}
	return width
}

// Floating reports the clients in ws that Tile skips, for callers that need
// to leave their geometry untouched.
func Floating(ws *workspace.Workspace) []int {
	var out []int
	for _, idx := range ws.Clients.Indices() {
		c := ws.Clients.Get(idx)
		if c != nil && c.IsFloating {
			out = append(out, idx)
		}
	}
	return out
}
