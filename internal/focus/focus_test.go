package focus_test

import (
	"testing"

	"github.com/xtile-wm/xtile/internal/atoms"
	"github.com/xtile-wm/xtile/internal/client"
	"github.com/xtile-wm/xtile/internal/focus"
	"github.com/xtile-wm/xtile/internal/workspace"
	"github.com/xtile-wm/xtile/internal/xconn"
)

func newFixture(t *testing.T) (*xconn.Mock, *focus.Controller, *workspace.Workspace) {
	t.Helper()
	conn := xconn.NewMock(1920, 1080)
	cache, err := atoms.Intern(conn)
	if err != nil {
		t.Fatalf("Intern: %v", err)
	}
	return conn, focus.New(conn, cache), workspace.New(960)
}

func TestFocusSetsBorderAndActiveWindow(t *testing.T) {
	conn, fc, ws := newFixture(t)
	idx := ws.Clients.Insert(client.Client{Window: 10, Frame: 11})

	fc.Focus(ws, idx)

	if conn.Focused != 10 {
		t.Errorf("expected SetInputFocus(10), got %d", conn.Focused)
	}
	if conn.ActiveWindow != 10 {
		t.Errorf("expected _NET_ACTIVE_WINDOW=10, got %d", conn.ActiveWindow)
	}
	if !conn.BorderState[11] {
		t.Errorf("expected frame 11 painted focused")
	}
	if got, ok := ws.Clients.Focused(); !ok || got != idx {
		t.Errorf("expected FocusStack top to be %d, got %d (ok=%v)", idx, got, ok)
	}
}

func TestFocusIsIdempotentOnAlreadyFocused(t *testing.T) {
	conn, fc, ws := newFixture(t)
	idx := ws.Clients.Insert(client.Client{Window: 10, Frame: 11})

	fc.Focus(ws, idx)
	callsAfterFirst := len(conn.Calls)
	fc.Focus(ws, idx)

	if len(conn.Calls) != callsAfterFirst {
		t.Errorf("expected no additional X calls on repeat focus, got %d new calls",
			len(conn.Calls)-callsAfterFirst)
	}
}

func TestFocusNoneClearsInputAndActiveWindow(t *testing.T) {
	conn, fc, ws := newFixture(t)
	idx := ws.Clients.Insert(client.Client{Window: 10, Frame: 11})
	fc.Focus(ws, idx)

	fc.Focus(ws, client.NoClient)

	if conn.Focused != xconn.NoWindow {
		t.Errorf("expected input focus cleared, got %d", conn.Focused)
	}
	if conn.ActiveWindow != xconn.NoWindow {
		t.Errorf("expected active window cleared, got %d", conn.ActiveWindow)
	}
	if conn.BorderState[11] {
		t.Errorf("expected frame 11 repainted normal")
	}
}

// Covers P5: destroying the focused client transfers focus to its prev,
// else its next, else none.
func TestFocusNeighborOfPrefersPrev(t *testing.T) {
	_, fc, ws := newFixture(t)
	a := ws.Clients.Insert(client.Client{Window: 1, Frame: 2}) // tail
	b := ws.Clients.Insert(client.Client{Window: 3, Frame: 4}) // head, inserted after a
	fc.Focus(ws, a)

	fc.FocusNeighborOf(ws, a)

	if got, ok := ws.Clients.Focused(); !ok || got != b {
		t.Errorf("expected focus to transfer to prev (%d), got %d (ok=%v)", b, got, ok)
	}
}

func TestFocusNeighborOfClearsFocusWithoutNeighbors(t *testing.T) {
	_, fc, ws := newFixture(t)
	a := ws.Clients.Insert(client.Client{Window: 1, Frame: 2})
	fc.Focus(ws, a)

	fc.FocusNeighborOf(ws, a)

	if _, ok := ws.Clients.Focused(); ok {
		t.Errorf("expected no focus when the focused client has no neighbor")
	}
}

func TestReassertReappliesXStateWithoutFocusStackChurn(t *testing.T) {
	conn, fc, ws := newFixture(t)
	idx := ws.Clients.Insert(client.Client{Window: 10, Frame: 11})
	fc.Focus(ws, idx)
	conn.Focused = xconn.NoWindow // simulate the frame having been unmapped/remapped

	fc.Reassert(ws, idx)

	if conn.Focused != 10 {
		t.Errorf("expected Reassert to reapply SetInputFocus(10), got %d", conn.Focused)
	}
	if got, ok := ws.Clients.Focused(); !ok || got != idx {
		t.Errorf("expected FocusStack top unchanged at %d, got %d (ok=%v)", idx, got, ok)
	}
}

func TestFocusNeighborOfIgnoresNonFocusedClient(t *testing.T) {
	_, fc, ws := newFixture(t)
	a := ws.Clients.Insert(client.Client{Window: 1, Frame: 2})
	b := ws.Clients.Insert(client.Client{Window: 3, Frame: 4})
	fc.Focus(ws, b)

	fc.FocusNeighborOf(ws, a)

	if got, ok := ws.Clients.Focused(); !ok || got != b {
		t.Errorf("expected focus to remain on %d, got %d (ok=%v)", b, got, ok)
	}
}
