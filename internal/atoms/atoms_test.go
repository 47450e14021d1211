package atoms_test

import (
	"testing"

	"github.com/xtile-wm/xtile/internal/atoms"
	"github.com/xtile-wm/xtile/internal/xconn"
)

func TestInternCachesSixDistinctAtoms(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	c, err := atoms.Intern(conn)
	if err != nil {
		t.Fatalf("Intern: %v", err)
	}

	all := []xconn.Atom{
		c.WMProtocols, c.WMDeleteWindow, c.WMTakeFocus,
		c.NetActiveWindow, c.NetWMWindowType, c.NetWMWindowTypeDialog,
	}
	seen := make(map[xconn.Atom]bool)
	for _, a := range all {
		if a == 0 {
			t.Fatalf("atom left uninterned (zero value)")
		}
		if seen[a] {
			t.Fatalf("two cache fields share atom %d", a)
		}
		seen[a] = true
	}
}

func TestKillSendsDeleteWindowWhenSupported(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	c, err := atoms.Intern(conn)
	if err != nil {
		t.Fatalf("Intern: %v", err)
	}

	win := xconn.Window(42)
	conn.Protocols[win] = map[xconn.Atom]bool{c.WMDeleteWindow: true}

	if err := c.Kill(conn, win, 0); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	if len(conn.Killed) != 0 {
		t.Errorf("expected XKillClient not to be called, got %v", conn.Killed)
	}
	if len(conn.SentProtocol) != 1 || conn.SentProtocol[0].Protocol != c.WMDeleteWindow {
		t.Errorf("expected a WM_DELETE_WINDOW client message, got %+v", conn.SentProtocol)
	}
}

func TestKillFallsBackToXKillClient(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	c, err := atoms.Intern(conn)
	if err != nil {
		t.Fatalf("Intern: %v", err)
	}

	win := xconn.Window(7)
	if err := c.Kill(conn, win, 0); err != nil {
		t.Fatalf("Kill: %v", err)
	}
	if len(conn.Killed) != 1 || conn.Killed[0] != win {
		t.Errorf("expected XKillClient(%d), got %v", win, conn.Killed)
	}
	if len(conn.SentProtocol) != 0 {
		t.Errorf("expected no client message sent, got %v", conn.SentProtocol)
	}
}
