package xconn

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/mousebind"
	"github.com/jezek/xgbutil/xwindow"
)

// Real is the production Conn, backed by github.com/jezek/xgb and
// github.com/jezek/xgbutil (ewmh/icccm/keybind/mousebind), grounded on
// the connection and atom handling in the cortile and dewm examples.
type Real struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	normalColor, focusedColor uint32

	silenced bool
}

// Dial opens the X11 display named by $DISPLAY (xgbutil's default), fails
// fast on any error per spec.md §7 kind 1, and initializes keybind and
// mousebind (required once per process per their own docs).
func Dial() (*Real, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("open X display: %w", err)
	}
	keybind.Initialize(xu)
	mousebind.Initialize(xu)

	return &Real{xu: xu, root: xu.RootWin()}, nil
}

func (r *Real) RootWindow() Window { return Window(r.root) }

func (r *Real) ScreenSize() (int, int) {
	screen := r.xu.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// SelectWMEvents acquires substructure redirection on the root window.
// A BadAccess reply here means another WM already owns it (spec.md §6).
func (r *Real) SelectWMEvents() error {
	err := xproto.ChangeWindowAttributesChecked(r.xu.Conn(), r.root, xproto.CwEventMask,
		[]uint32{
			xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskPointerMotion,
		}).Check()
	if err != nil {
		return fmt.Errorf("take WM ownership (is another WM running?): %w", err)
	}
	return nil
}

func (r *Real) InternAtom(name string) (Atom, error) {
	a, err := xprop_atom(r.xu, name)
	if err != nil {
		return 0, err
	}
	return Atom(a), nil
}

func xprop_atom(xu *xgbutil.XUtil, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(xu.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	if reply == nil {
		return 0, fmt.Errorf("intern atom %q: empty reply", name)
	}
	return reply.Atom, nil
}

func (r *Real) CreateFrame(geom Geometry, borderWidth int) (Window, error) {
	win, err := xwindow.Generate(r.xu)
	if err != nil {
		return 0, fmt.Errorf("allocate frame id: %w", err)
	}
	err = win.CreateChecked(r.root, int(geom.X), int(geom.Y), geom.Width, geom.Height,
		xproto.CwBackPixel|xproto.CwEventMask,
		0, // black background
		uint32(xproto.EventMaskSubstructureNotify|xproto.EventMaskEnterWindow))
	if err != nil {
		return 0, fmt.Errorf("create frame: %w", err)
	}
	if borderWidth > 0 {
		_ = xproto.ConfigureWindowChecked(r.xu.Conn(), win.Id, xproto.ConfigWindowBorderWidth,
			[]uint32{uint32(borderWidth)}).Check()
	}
	return Window(win.Id), nil
}

func (r *Real) DestroyWindow(win Window) error {
	return xproto.DestroyWindowChecked(r.xu.Conn(), xproto.Window(win)).Check()
}

func (r *Real) ReparentWindow(win, parent Window, x, y int) error {
	return xproto.ReparentWindowChecked(r.xu.Conn(), xproto.Window(win), xproto.Window(parent),
		int16(x), int16(y)).Check()
}

func (r *Real) ChangeSaveSet(win Window, insert bool) error {
	mode := byte(xproto.SetModeInsert)
	if !insert {
		mode = xproto.SetModeDelete
	}
	return xproto.ChangeSaveSetChecked(r.xu.Conn(), mode, xproto.Window(win)).Check()
}

func (r *Real) MapWindow(win Window) error {
	return xproto.MapWindowChecked(r.xu.Conn(), xproto.Window(win)).Check()
}

func (r *Real) UnmapWindow(win Window) error {
	return xproto.UnmapWindowChecked(r.xu.Conn(), xproto.Window(win)).Check()
}

// ConfigureWindow applies only the fields mask selects, in the fixed
// X/Y/Width/Height value-list order the ConfigureWindow request requires.
func (r *Real) ConfigureWindow(win Window, geom Geometry, mask uint16) error {
	var xproMask uint16
	var values []uint32

	if mask&ConfigMaskX != 0 {
		xproMask |= xproto.ConfigWindowX
		values = append(values, uint32(int32(geom.X)))
	}
	if mask&ConfigMaskY != 0 {
		xproMask |= xproto.ConfigWindowY
		values = append(values, uint32(int32(geom.Y)))
	}
	if mask&ConfigMaskWidth != 0 {
		xproMask |= xproto.ConfigWindowWidth
		values = append(values, uint32(geom.Width))
	}
	if mask&ConfigMaskHeight != 0 {
		xproMask |= xproto.ConfigWindowHeight
		values = append(values, uint32(geom.Height))
	}
	if xproMask == 0 {
		return nil
	}
	return xproto.ConfigureWindowChecked(r.xu.Conn(), xproto.Window(win), xproMask, values).Check()
}

func (r *Real) RaiseWindow(win Window) error {
	return xproto.ConfigureWindowChecked(r.xu.Conn(), xproto.Window(win),
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
}

func (r *Real) GetGeometry(win Window) (Geometry, error) {
	reply, err := xproto.GetGeometry(r.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil || reply == nil {
		return Geometry{}, fmt.Errorf("get geometry: %w", err)
	}
	return Geometry{
		X: int(reply.X), Y: int(reply.Y),
		Width: int(reply.Width), Height: int(reply.Height),
	}, nil
}

func (r *Real) QuerySizeHints(win Window) SizeHints {
	nh, err := icccm.WmNormalHintsGet(r.xu, xproto.Window(win))
	if err != nil || nh == nil {
		return SizeHints{MinWidth: -1, MinHeight: -1, MaxWidth: -1, MaxHeight: -1}
	}
	hints := SizeHints{MinWidth: -1, MinHeight: -1, MaxWidth: -1, MaxHeight: -1}
	if nh.Flags&icccm.SizeHintPMinSize != 0 {
		hints.MinWidth, hints.MinHeight = int(nh.MinWidth), int(nh.MinHeight)
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		hints.MaxWidth, hints.MaxHeight = int(nh.MaxWidth), int(nh.MaxHeight)
	}
	return hints
}

func (r *Real) QueryWindowType(win Window) WindowType {
	var wt WindowType
	types, err := ewmh.WmWindowTypeGet(r.xu, xproto.Window(win))
	if err == nil && len(types) > 0 {
		wt.HasNetWMType = true
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DIALOG" {
				wt.IsDialog = true
			}
		}
	}
	if _, err := icccm.WmTransientForGet(r.xu, xproto.Window(win)); err == nil {
		wt.HasTransientFor = true
	}
	return wt
}

func (r *Real) AllocBorderColors(normalName, focusedName string) error {
	normal, err := allocNamedColor(r.xu, normalName)
	if err != nil {
		return fmt.Errorf("allocate color %q: %w", normalName, err)
	}
	focused, err := allocNamedColor(r.xu, focusedName)
	if err != nil {
		return fmt.Errorf("allocate color %q: %w", focusedName, err)
	}
	r.normalColor, r.focusedColor = normal, focused
	return nil
}

func allocNamedColor(xu *xgbutil.XUtil, name string) (uint32, error) {
	cmap := xu.Screen().DefaultColormap
	reply, err := xproto.AllocNamedColor(xu.Conn(), cmap, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Pixel, nil
}

func (r *Real) SetBorderColor(win Window, focused bool) error {
	pixel := r.normalColor
	if focused {
		pixel = r.focusedColor
	}
	return xproto.ChangeWindowAttributesChecked(r.xu.Conn(), xproto.Window(win),
		xproto.CwBorderPixel, []uint32{pixel}).Check()
}

func (r *Real) SetInputFocus(win Window) error {
	return xproto.SetInputFocusChecked(r.xu.Conn(), xproto.InputFocusPointerRoot,
		xproto.Window(win), xproto.TimeCurrentTime).Check()
}

func (r *Real) ClearInputFocus() error {
	return xproto.SetInputFocusChecked(r.xu.Conn(), xproto.InputFocusPointerRoot,
		r.root, xproto.TimeCurrentTime).Check()
}

func (r *Real) SetActiveWindow(win Window) error {
	return ewmh.ActiveWindowSet(r.xu, xproto.Window(win))
}

func (r *Real) ClearActiveWindow() error {
	return xproto.DeletePropertyChecked(r.xu.Conn(), r.root, r.xu.Atom("_NET_ACTIVE_WINDOW", false)).Check()
}

func (r *Real) SupportsProtocol(win Window, protocol Atom) bool {
	protocols, err := icccm.WmProtocolsGet(r.xu, xproto.Window(win))
	if err != nil {
		return false
	}
	name, err := xprop_atomName(r.xu, xproto.Atom(protocol))
	if err != nil {
		return false
	}
	for _, p := range protocols {
		if p == name {
			return true
		}
	}
	return false
}

func xprop_atomName(xu *xgbutil.XUtil, atom xproto.Atom) (string, error) {
	reply, err := xproto.GetAtomName(xu.Conn(), atom).Reply()
	if err != nil || reply == nil {
		return "", fmt.Errorf("get atom name: %w", err)
	}
	return reply.Name, nil
}

func (r *Real) SendProtocolMessage(win Window, protocol Atom, t Timestamp) error {
	wmProtocols := r.xu.Atom("WM_PROTOCOLS", false)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(win),
		Type:   wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(protocol), uint32(t), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(r.xu.Conn(), false, xproto.Window(win),
		xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

func (r *Real) KillClient(win Window) error {
	return xproto.KillClientChecked(r.xu.Conn(), uint32(win)).Check()
}

func (r *Real) GrabKey(mods uint16, keysym uint32) error {
	codes := keybind.KeysymToKeycodes(r.xu, xproto.Keysym(keysym))
	for _, code := range codes {
		if err := xproto.GrabKeyChecked(r.xu.Conn(), true, r.root, mods, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check(); err != nil {
			return fmt.Errorf("grab key %#x mods %#x: %w", keysym, mods, err)
		}
	}
	return nil
}

func (r *Real) GrabButtons(win Window, modifiers uint16) error {
	for _, button := range []xproto.Button{1, 3} {
		err := xproto.GrabButtonChecked(r.xu.Conn(), false, xproto.Window(win),
			xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
			xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0, button, modifiers).Check()
		if err != nil {
			return fmt.Errorf("grab button %d on %d: %w", button, win, err)
		}
	}
	return nil
}

func (r *Real) QueryPointer() (int, int, uint16, error) {
	reply, err := xproto.QueryPointer(r.xu.Conn(), r.root).Reply()
	if err != nil || reply == nil {
		return 0, 0, 0, fmt.Errorf("query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), reply.Mask, nil
}

func (r *Real) Sync() error {
	_, err := xproto.GetInputFocus(r.xu.Conn()).Reply()
	return err
}

func (r *Real) SetErrorSilenced(silenced bool) { r.silenced = silenced }

// ErrorsSilenced reports whether the teardown silencer (spec.md §4.3,
// §7 kind 3) is currently active, for the event loop's error path.
func (r *Real) ErrorsSilenced() bool { return r.silenced }

func (r *Real) Close() { r.xu.Conn().Close() }

// NextEvent blocks in xgb's WaitForEvent, the loop's sole blocking point
// (spec.md §5 "Blocking"), and classifies the result into an Ev. Protocol
// errors surface as a Go error, which the dispatcher treats per spec.md
// §7 kinds 2/3 depending on whether errors are currently silenced.
func (r *Real) NextEvent() (Ev, error) {
	xev, xerr := r.xu.Conn().WaitForEvent()
	if xerr != nil {
		return Ev{}, xgbError{xerr}
	}
	if xev == nil {
		return Ev{Kind: EventNone}, nil
	}

	switch e := xev.(type) {
	case xproto.KeyPressEvent:
		return Ev{Kind: EventKeyPress, Window: Window(e.Event), Modifiers: e.State,
			Keysym: uint32(keybind.KeysymGet(r.xu, e.Detail, e.State)), Time: Timestamp(e.Time)}, nil
	case xproto.ButtonPressEvent:
		return Ev{Kind: EventButtonPress, Window: Window(e.Event), Modifiers: e.State,
			Button: uint8(e.Detail), RootX: int(e.RootX), RootY: int(e.RootY), Time: Timestamp(e.Time)}, nil
	case xproto.ButtonReleaseEvent:
		return Ev{Kind: EventButtonRelease, Window: Window(e.Event), Modifiers: e.State,
			Button: uint8(e.Detail), RootX: int(e.RootX), RootY: int(e.RootY), Time: Timestamp(e.Time)}, nil
	case xproto.MotionNotifyEvent:
		return Ev{Kind: EventMotionNotify, Window: Window(e.Event), Modifiers: e.State,
			RootX: int(e.RootX), RootY: int(e.RootY), Time: Timestamp(e.Time)}, nil
	case xproto.ConfigureRequestEvent:
		var mask uint16
		if e.ValueMask&xproto.ConfigWindowX != 0 {
			mask |= ConfigMaskX
		}
		if e.ValueMask&xproto.ConfigWindowY != 0 {
			mask |= ConfigMaskY
		}
		if e.ValueMask&xproto.ConfigWindowWidth != 0 {
			mask |= ConfigMaskWidth
		}
		if e.ValueMask&xproto.ConfigWindowHeight != 0 {
			mask |= ConfigMaskHeight
		}
		return Ev{Kind: EventConfigureRequest, Window: Window(e.Window), Geometry: Geometry{
			X: int(e.X), Y: int(e.Y), Width: int(e.Width), Height: int(e.Height),
		}, ValueMask: mask}, nil
	case xproto.MapRequestEvent:
		return Ev{Kind: EventMapRequest, Window: Window(e.Window)}, nil
	case xproto.UnmapNotifyEvent:
		return Ev{Kind: EventUnmapNotify, Window: Window(e.Window)}, nil
	case xproto.EnterNotifyEvent:
		return Ev{Kind: EventEnterNotify, Frame: Window(e.Event), Time: Timestamp(e.Time)}, nil
	default:
		return Ev{Kind: EventNone}, nil
	}
}

// xgbError wraps a decoded xgb.Error so it satisfies Go's error interface
// with a readable message; xgb.Error already does, but xlog call sites
// want a plain error value regardless of xgb's internal type.
type xgbError struct{ err xgb.Error }

func (e xgbError) Error() string { return e.err.Error() }
