package xconn

// Mock is an in-memory Conn that records every call it receives and
// replays a queue of injected events from NextEvent. It lets
// internal/wm, internal/focus, internal/drag and internal/x11window be
// exercised without a display connection, per spec.md §8.
type Mock struct {
	ScreenW, ScreenH int

	Calls []string

	nextWindowID Window
	Geometries   map[Window]Geometry
	Hints        map[Window]SizeHints
	Types        map[Window]WindowType
	Protocols    map[Window]map[Atom]bool
	Destroyed    map[Window]bool
	Mapped       map[Window]bool
	Parent       map[Window]Window
	BorderState  map[Window]bool // true == focused color

	Focused      Window
	ActiveWindow Window
	Killed       []Window
	SentProtocol []struct {
		Window   Window
		Protocol Atom
	}

	Atoms map[string]Atom

	ErrorSilenced bool

	events []Ev
}

// NewMock returns a ready-to-use Mock with the given screen size.
func NewMock(screenW, screenH int) *Mock {
	return &Mock{
		ScreenW:      screenW,
		ScreenH:      screenH,
		nextWindowID: 1000,
		Geometries:   map[Window]Geometry{},
		Hints:        map[Window]SizeHints{},
		Types:        map[Window]WindowType{},
		Protocols:    map[Window]map[Atom]bool{},
		Destroyed:    map[Window]bool{},
		Mapped:       map[Window]bool{},
		Parent:       map[Window]Window{},
		BorderState:  map[Window]bool{},
		Atoms:        map[string]Atom{},
	}
}

func (m *Mock) record(call string) { m.Calls = append(m.Calls, call) }

func (m *Mock) RootWindow() Window             { return 1 }
func (m *Mock) ScreenSize() (int, int)         { return m.ScreenW, m.ScreenH }
func (m *Mock) SelectWMEvents() error          { m.record("SelectWMEvents"); return nil }
func (m *Mock) AllocBorderColors(_, _ string) error {
	m.record("AllocBorderColors")
	return nil
}

func (m *Mock) InternAtom(name string) (Atom, error) {
	if a, ok := m.Atoms[name]; ok {
		return a, nil
	}
	a := Atom(len(m.Atoms) + 1)
	m.Atoms[name] = a
	return a, nil
}

func (m *Mock) CreateFrame(geom Geometry, _ int) (Window, error) {
	id := m.nextWindowID
	m.nextWindowID++
	m.Geometries[id] = geom
	m.record("CreateFrame")
	return id, nil
}

func (m *Mock) DestroyWindow(win Window) error {
	m.Destroyed[win] = true
	delete(m.Mapped, win)
	m.record("DestroyWindow")
	return nil
}

func (m *Mock) ReparentWindow(win, parent Window, x, y int) error {
	m.Parent[win] = parent
	g := m.Geometries[win]
	g.X, g.Y = x, y
	m.Geometries[win] = g
	m.record("ReparentWindow")
	return nil
}

func (m *Mock) ChangeSaveSet(_ Window, _ bool) error { m.record("ChangeSaveSet"); return nil }

func (m *Mock) MapWindow(win Window) error {
	m.Mapped[win] = true
	m.record("MapWindow")
	return nil
}

func (m *Mock) UnmapWindow(win Window) error {
	m.Mapped[win] = false
	m.record("UnmapWindow")
	return nil
}

func (m *Mock) ConfigureWindow(win Window, geom Geometry, mask uint16) error {
	cur := m.Geometries[win]
	if mask&ConfigMaskX != 0 {
		cur.X = geom.X
	}
	if mask&ConfigMaskY != 0 {
		cur.Y = geom.Y
	}
	if mask&ConfigMaskWidth != 0 {
		cur.Width = geom.Width
	}
	if mask&ConfigMaskHeight != 0 {
		cur.Height = geom.Height
	}
	m.Geometries[win] = cur
	m.record("ConfigureWindow")
	return nil
}

func (m *Mock) RaiseWindow(_ Window) error { m.record("RaiseWindow"); return nil }

func (m *Mock) GetGeometry(win Window) (Geometry, error) {
	return m.Geometries[win], nil
}

func (m *Mock) QuerySizeHints(win Window) SizeHints {
	if h, ok := m.Hints[win]; ok {
		return h
	}
	return SizeHints{MinWidth: -1, MinHeight: -1, MaxWidth: -1, MaxHeight: -1}
}
func (m *Mock) QueryWindowType(win Window) WindowType { return m.Types[win] }

func (m *Mock) SetBorderColor(win Window, focused bool) error {
	m.BorderState[win] = focused
	m.record("SetBorderColor")
	return nil
}

func (m *Mock) SetInputFocus(win Window) error {
	m.Focused = win
	m.record("SetInputFocus")
	return nil
}

func (m *Mock) ClearInputFocus() error {
	m.Focused = NoWindow
	m.record("ClearInputFocus")
	return nil
}

func (m *Mock) SetActiveWindow(win Window) error {
	m.ActiveWindow = win
	m.record("SetActiveWindow")
	return nil
}

func (m *Mock) ClearActiveWindow() error {
	m.ActiveWindow = NoWindow
	m.record("ClearActiveWindow")
	return nil
}

func (m *Mock) SupportsProtocol(win Window, protocol Atom) bool {
	return m.Protocols[win] != nil && m.Protocols[win][protocol]
}

func (m *Mock) SendProtocolMessage(win Window, protocol Atom, _ Timestamp) error {
	m.SentProtocol = append(m.SentProtocol, struct {
		Window   Window
		Protocol Atom
	}{win, protocol})
	m.record("SendProtocolMessage")
	return nil
}

func (m *Mock) KillClient(win Window) error {
	m.Killed = append(m.Killed, win)
	m.record("KillClient")
	return nil
}

func (m *Mock) GrabKey(_ uint16, _ uint32) error       { m.record("GrabKey"); return nil }
func (m *Mock) GrabButtons(_ Window, _ uint16) error   { m.record("GrabButtons"); return nil }
func (m *Mock) QueryPointer() (int, int, uint16, error) { return 0, 0, 0, nil }
func (m *Mock) Sync() error                            { m.record("Sync"); return nil }
func (m *Mock) Close()                                 { m.record("Close") }

func (m *Mock) SetErrorSilenced(silenced bool) {
	m.ErrorSilenced = silenced
	m.record("SetErrorSilenced")
}

func (m *Mock) ErrorsSilenced() bool { return m.ErrorSilenced }

// QueueEvent appends ev to the event queue NextEvent drains in FIFO order.
func (m *Mock) QueueEvent(ev Ev) { m.events = append(m.events, ev) }

// NextEvent pops the oldest queued event. Returns EventNone with no error
// once the queue is drained, rather than blocking, since a mock has no
// real transport to wait on.
func (m *Mock) NextEvent() (Ev, error) {
	if len(m.events) == 0 {
		return Ev{Kind: EventNone}, nil
	}
	ev := m.events[0]
	m.events = m.events[1:]
	return ev, nil
}
