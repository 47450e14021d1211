// Package config holds the compile-time constants and binding table that
// configure xtile. There is no runtime configuration file: every value here
// is fixed in the source, following the same pattern dwm and its
// descendants use for a config.h. Most are Go constants; ModMask and
// KillClientModifiers are package variables that --mod-key may override
// once at startup.
package config

// =============================================================================
// Window Geometry
// =============================================================================

const (
	// BorderWidth is the pixel width of the frame border drawn around every
	// managed client.
	BorderWidth = 1

	// InitialGap is the outer/inner pixel spacing applied between tiled
	// windows and the screen edge at startup. Adjustable at runtime via
	// AdjustGap.
	InitialGap = 10

	// InitialSpecialWidth is the starting pixel width of the special
	// (primary) pane in each workspace's tiling layout.
	InitialSpecialWidth = 960

	// SpecialWidthPadding is the minimum distance the special pane must
	// keep from either screen edge when resized via AdjustSpecialWidth.
	SpecialWidthPadding = 40

	// MinDragSize is the absolute floor, in pixels, below which a
	// pointer-driven resize may not shrink a floating window on either
	// axis, even when no WM_NORMAL_HINTS minimum is set.
	MinDragSize = 5
)

// =============================================================================
// Workspaces
// =============================================================================

const (
	// TotalWorkspaces is the fixed number of virtual workspaces that exist
	// for the lifetime of the process.
	TotalWorkspaces = 9
)

// =============================================================================
// Colors
// =============================================================================

const (
	// NormalBorderColorName is the X11 color name allocated against the
	// default colormap for unfocused client frames.
	NormalBorderColorName = "gray20"

	// FocusedBorderColorName is the X11 color name allocated against the
	// default colormap for the currently focused client's frame.
	FocusedBorderColorName = "royalblue"
)

// =============================================================================
// Modifiers and Keys
// =============================================================================

// ModMask is the modifier held down for every window-management keybinding
// and for the move/resize mouse grabs. Mod4Mask ("super"/"windows" key) is
// the default; --mod-key lets the CLI override it at startup, so this is a
// var rather than a const. SetModKey is the only supported way to change
// it, since KillClientModifiers must be recomputed alongside it.
var ModMask uint16 = Mod4Mask

// X11 modifier bit values (X11/X.h), duplicated here so this package has no
// transitive dependency on the X11 client package for plain constants.
const (
	ShiftMask   = 1 << 0
	ControlMask = 1 << 2
	Mod1Mask    = 1 << 3
	Mod4Mask    = 1 << 6
)

// KillClientModifiers and KillClientKeysym identify the dedicated
// kill-client binding (§4.9): ModMask+Shift, 'q'. XK_q from keysymdef.h.
// KillClientModifiers tracks ModMask, so it is recomputed by SetModKey
// rather than declared const.
var KillClientModifiers uint16 = ModMask | ShiftMask

const KillClientKeysym = 0x0071 // XK_q

// SetModKey overrides ModMask (and the dependent KillClientModifiers) at
// startup, before DefaultBindings is called. Used by --mod-key (spec §6:
// "Additional flags... override the compile-time modifier for quick
// testing").
func SetModKey(mods uint16) {
	ModMask = mods
	KillClientModifiers = ModMask | ShiftMask
}

// ParseModKey maps a --mod-key flag value to its modifier bit, accepting
// both the X11 modifier name and a couple of common aliases.
func ParseModKey(name string) (uint16, bool) {
	switch name {
	case "mod1", "alt":
		return Mod1Mask, true
	case "mod4", "super", "win":
		return Mod4Mask, true
	case "control", "ctrl":
		return ControlMask, true
	case "shift":
		return ShiftMask, true
	default:
		return 0, false
	}
}

// =============================================================================
// Spawned Programs
// =============================================================================

// Terminal and Launcher are the argv vectors spawned by the default
// binding table below. Each is executed directly as an argv vector by
// spawn.Spawn; no shell is involved.
var (
	Terminal = []string{"xterm"}
	Launcher = []string{"dmenu_run"}
)
