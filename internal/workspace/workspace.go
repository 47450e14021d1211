// Package workspace groups one client.List with the per-workspace layout
// parameters the tiler needs. A fixed set of config.TotalWorkspaces
// workspaces exists for the lifetime of the process.
package workspace

import (
	"github.com/xtile-wm/xtile/internal/client"
	"github.com/xtile-wm/xtile/internal/config"
)

// Workspace holds one ClientList and the special-pane width used by the
// Tiler when laying it out.
type Workspace struct {
	Clients      *client.List
	SpecialWidth int
}

// New returns a Workspace with an empty ClientList and the given initial
// special-pane width.
func New(specialWidth int) *Workspace {
	return &Workspace{
		Clients:      client.NewList(),
		SpecialWidth: specialWidth,
	}
}

// NewSet allocates the fixed set of config.TotalWorkspaces workspaces that
// exist for the process lifetime.
func NewSet() [config.TotalWorkspaces]*Workspace {
	var set [config.TotalWorkspaces]*Workspace
	for i := range set {
		set[i] = New(config.InitialSpecialWidth)
	}
	return set
}
