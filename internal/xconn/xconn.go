// Package xconn abstracts the X11 calls the window manager core depends
// on behind a small interface, per spec.md §8: "implementations should
// abstract the X calls behind a trait/interface so a mock can record
// requests and inject events." internal/wm, internal/focus, internal/drag
// and internal/x11window are written against Conn, not against
// github.com/jezek/xgb directly, so P1-P6 can be exercised with the
// recording Mock in this package instead of a live display.
package xconn

// Window is an X11 window id (application window or WM-created frame).
type Window uint32

// NoWindow is the sentinel meaning "no window" for the handful of Conn
// operations that take an optional window.
const NoWindow Window = 0

// Atom is an X11 interned-atom handle.
type Atom uint32

// Timestamp is an X11 server time value, as carried by events and used in
// SetInputFocus/client-message calls.
type Timestamp uint32

// Geometry is a window's position and size in root-relative pixels.
type Geometry struct {
	X, Y          int
	Width, Height int
}

// SizeHints mirrors the ICCCM WM_NORMAL_HINTS fields spec.md §3 needs,
// using client.SizeHintDisabled (-1) for an unset bound.
type SizeHints struct {
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
}

// WindowType carries the _NET_WM_WINDOW_TYPE / WM_TRANSIENT_FOR facts the
// should-float policy (spec.md §4.4) needs.
type WindowType struct {
	HasNetWMType    bool
	IsDialog        bool
	HasTransientFor bool
}

// EventKind classifies the events EventDispatcher (spec.md §4.7) routes.
type EventKind int

const (
	EventNone EventKind = iota
	EventKeyPress
	EventButtonPress
	EventButtonRelease
	EventMotionNotify
	EventConfigureRequest
	EventMapRequest
	EventUnmapNotify
	EventEnterNotify
)

// ConfigMask bits select which Geometry fields a ConfigureWindow call
// applies, mirroring the X11 ConfigureWindow request's value-mask (ICCCM
// CWX/CWY/CWWidth/CWHeight) so a ConfigureRequest can be forwarded with
// only the fields the client actually asked to change.
const (
	ConfigMaskX      uint16 = 1 << 0
	ConfigMaskY      uint16 = 1 << 1
	ConfigMaskWidth  uint16 = 1 << 2
	ConfigMaskHeight uint16 = 1 << 3

	// ConfigMaskGeometry applies all four fields, for callers (the tiler,
	// drag) that always compute a complete geometry rather than forwarding
	// a client's partial request.
	ConfigMaskGeometry = ConfigMaskX | ConfigMaskY | ConfigMaskWidth | ConfigMaskHeight
)

// Ev is the decoded, WM-relevant subset of an X11 event. Not every field
// is populated for every Kind; see EventDispatcher for which fields each
// handler reads.
type Ev struct {
	Kind      EventKind
	Window    Window    // MapRequest/UnmapNotify target, ConfigureRequest target
	Frame     Window    // EnterNotify's frame (lookup key per spec.md §9)
	Modifiers uint16
	Keysym    uint32
	Button    uint8
	RootX     int
	RootY     int
	Geometry  Geometry // ConfigureRequest's requested geometry
	ValueMask uint16   // ConfigureRequest's value-mask: which Geometry fields to apply
	Time      Timestamp
}

// Conn is every X11 operation the core calls. Implementations: Real
// (github.com/jezek/xgb + xgbutil, for production) and Mock (for tests).
type Conn interface {
	RootWindow() Window
	ScreenSize() (width, height int)

	// SelectWMEvents subscribes the root window to
	// SubstructureRedirect|SubstructureNotify|PointerMotion and returns an
	// error (BadAccess) if another WM already holds redirection.
	SelectWMEvents() error

	InternAtom(name string) (Atom, error)

	CreateFrame(geom Geometry, borderWidth int) (Window, error)
	DestroyWindow(win Window) error
	ReparentWindow(win, parent Window, x, y int) error
	ChangeSaveSet(win Window, insert bool) error
	MapWindow(win Window) error
	UnmapWindow(win Window) error
	// ConfigureWindow applies only the Geometry fields selected by mask
	// (a bitwise-OR of ConfigMask*), per ICCCM ConfigureRequest semantics.
	ConfigureWindow(win Window, geom Geometry, mask uint16) error
	RaiseWindow(win Window) error
	GetGeometry(win Window) (Geometry, error)

	QuerySizeHints(win Window) SizeHints
	QueryWindowType(win Window) WindowType

	AllocBorderColors(normalName, focusedName string) error
	SetBorderColor(win Window, focused bool) error

	SetInputFocus(win Window) error
	ClearInputFocus() error
	SetActiveWindow(win Window) error
	ClearActiveWindow() error

	SupportsProtocol(win Window, protocol Atom) bool
	SendProtocolMessage(win Window, protocol Atom, t Timestamp) error
	KillClient(win Window) error

	GrabKey(mods uint16, keysym uint32) error
	GrabButtons(win Window, modifiers uint16) error

	QueryPointer() (rootX, rootY int, buttonMask uint16, err error)

	Sync() error
	NextEvent() (Ev, error)

	// SetErrorSilenced toggles the process-wide slot checked by the event
	// loop's error path (spec.md §7 kind 3 / §9 "Error-handler scope").
	SetErrorSilenced(silenced bool)
	ErrorsSilenced() bool

	Close()
}

// WithSilencedErrors models the "swap silencer, do destructive work,
// restore" idiom of spec.md §4.3/§7 kind 3/§9 ("Error-handler scope") as
// a scoped acquisition with guaranteed release on every exit path,
// including a panic inside fn.
func WithSilencedErrors(conn Conn, fn func()) {
	conn.SetErrorSilenced(true)
	defer func() {
		_ = conn.Sync()
		conn.SetErrorSilenced(false)
	}()
	fn()
}
