package config

import (
	"github.com/xtile-wm/xtile/internal/bindings"
)

// Keysyms used by the default binding table below (X11/keysymdef.h values).
const (
	xkReturn = 0xff0d
	xkE      = 0x0065
	xkJ      = 0x006a
	xkK      = 0x006b
	xkH      = 0x0068
	xkL      = 0x006c
	xkSpace  = 0x0020
	xk1      = 0x0031
)

// DefaultBindings returns the compile-time keybinding table, grouped by
// concern (window management / workspaces / layout). Each entry is
// directly executable: a (modifiers, keysym) key plus an Action and
// Argument the window manager's central dispatch switch understands.
func DefaultBindings() bindings.Table {
	table := bindings.Table{
		// Spawning
		{
			Key:      bindings.Key{Modifiers: ModMask | ShiftMask, Keysym: xkReturn},
			Action:   bindings.ActionSpawn,
			Argument: bindings.Command(Terminal...),
		},
		{
			Key:      bindings.Key{Modifiers: ModMask, Keysym: xkSpace},
			Action:   bindings.ActionSpawn,
			Argument: bindings.Command(Launcher...),
		},

		// Lifecycle. The kill-client key (config.KillClientModifiers,
		// config.KillClientKeysym) is deliberately absent from this table:
		// Conn.GrabKey only ever grabs on the root window, so it's grabbed
		// once at startup alongside every Table binding, and
		// EventDispatcher acts on it directly against the focused client
		// before ever consulting Table.Match (spec.md §4.3 step 8/§4.9).
		{
			Key:    bindings.Key{Modifiers: ModMask | ShiftMask, Keysym: xkE},
			Action: bindings.ActionQuit,
		},

		// Layout
		{
			Key:      bindings.Key{Modifiers: ModMask, Keysym: xkL},
			Action:   bindings.ActionAdjustSpecialWidth,
			Argument: bindings.Amount(20),
		},
		{
			Key:      bindings.Key{Modifiers: ModMask, Keysym: xkH},
			Action:   bindings.ActionAdjustSpecialWidth,
			Argument: bindings.Amount(-20),
		},
		{
			Key:      bindings.Key{Modifiers: ModMask | ShiftMask, Keysym: xkL},
			Action:   bindings.ActionAdjustGap,
			Argument: bindings.Amount(2),
		},
		{
			Key:      bindings.Key{Modifiers: ModMask | ShiftMask, Keysym: xkH},
			Action:   bindings.ActionAdjustGap,
			Argument: bindings.Amount(-2),
		},

		// Focus
		{
			Key:    bindings.Key{Modifiers: ModMask, Keysym: xkJ},
			Action: bindings.ActionFocusNext,
		},
		{
			Key:    bindings.Key{Modifiers: ModMask, Keysym: xkK},
			Action: bindings.ActionFocusPrev,
		},
		{
			Key:    bindings.Key{Modifiers: ModMask, Keysym: xkReturn},
			Action: bindings.ActionMakeFocusedSpecial,
		},
		{
			Key:    bindings.Key{Modifiers: ModMask | ShiftMask, Keysym: xkSpace},
			Action: bindings.ActionToggleFloat,
		},
	}

	// Workspaces 1-9: ModMask+<digit> switches, ModMask+Shift+<digit> sends
	// the focused client there.
	for i := 0; i < TotalWorkspaces; i++ {
		ws := i
		table = append(table,
			bindings.Binding{
				Key:      bindings.Key{Modifiers: ModMask, Keysym: uint32(xk1 + ws)},
				Action:   bindings.ActionSwitchWorkspace,
				Argument: bindings.Amount(ws),
			},
			bindings.Binding{
				Key:      bindings.Key{Modifiers: ModMask | ShiftMask, Keysym: uint32(xk1 + ws)},
				Action:   bindings.ActionSendToWorkspace,
				Argument: bindings.Amount(ws),
			},
		)
	}

	return table
}
