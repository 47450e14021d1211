package drag_test

import (
	"testing"

	"github.com/xtile-wm/xtile/internal/client"
	"github.com/xtile-wm/xtile/internal/drag"
	"github.com/xtile-wm/xtile/internal/workspace"
	"github.com/xtile-wm/xtile/internal/xconn"
)

func TestBeginFloatsATiledClientAndSnapshotsGeometry(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	ws := workspace.New(960)
	idx := ws.Clients.Insert(client.Client{Window: 1, Frame: 2})
	conn.Geometries[2] = xconn.Geometry{X: 10, Y: 10, Width: 960, Height: 1060}

	d := drag.New(conn)
	floated := d.Begin(ws, idx, drag.Button1, 100, 100)

	if !floated {
		t.Fatalf("expected Begin to report a floating transition for a tiled client")
	}
	if !ws.Clients.Get(idx).IsFloating {
		t.Fatalf("expected client to become floating")
	}
	if !d.Active() || d.Client() != idx {
		t.Fatalf("expected drag to be active on %d", idx)
	}

	// A zero cursor delta reproduces the frame geometry snapshot.
	geom, ok := d.Motion(ws, 100, 100, 1920, 1080)
	if !ok || geom.X != 10 || geom.Y != 10 || geom.Width != 960 || geom.Height != 1060 {
		t.Errorf("expected snapshot (10,10,960,1060) with no cursor delta, got %+v ok=%v", geom, ok)
	}
}

func TestBeginOnAlreadyFloatingDoesNotReportTransition(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	ws := workspace.New(960)
	idx := ws.Clients.Insert(client.Client{Window: 1, Frame: 2, IsFloating: true})
	conn.Geometries[2] = xconn.Geometry{X: 10, Y: 10, Width: 300, Height: 200}

	d := drag.New(conn)
	if d.Begin(ws, idx, drag.Button1, 0, 0) {
		t.Errorf("expected no floating transition; client was already floating")
	}
}

func TestMotionButton1TranslatesByCursorDelta(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	ws := workspace.New(960)
	idx := ws.Clients.Insert(client.Client{Window: 1, Frame: 2, MinWidth: -1, MinHeight: -1, MaxWidth: -1, MaxHeight: -1})
	conn.Geometries[2] = xconn.Geometry{X: 100, Y: 100, Width: 300, Height: 200}

	d := drag.New(conn)
	d.Begin(ws, idx, drag.Button1, 50, 50)

	geom, ok := d.Motion(ws, 70, 40, 1920, 1080)
	if !ok {
		t.Fatalf("expected Motion to apply while dragging")
	}
	// dx=20, dy=-10
	if geom.X != 120 || geom.Y != 90 {
		t.Errorf("expected translated position (120,90), got (%d,%d)", geom.X, geom.Y)
	}
	if geom.Width != 300 || geom.Height != 200 {
		t.Errorf("expected size unchanged on a move, got (%d,%d)", geom.Width, geom.Height)
	}
}

func TestMotionButton3ResizesAndClampsToFloor(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	ws := workspace.New(960)
	idx := ws.Clients.Insert(client.Client{Window: 1, Frame: 2, MinWidth: -1, MinHeight: -1, MaxWidth: -1, MaxHeight: -1})
	conn.Geometries[2] = xconn.Geometry{X: 100, Y: 100, Width: 300, Height: 200}

	d := drag.New(conn)
	d.Begin(ws, idx, drag.Button3, 50, 50)

	geom, ok := d.Motion(ws, -500, -500, 1920, 1080)
	if !ok {
		t.Fatalf("expected Motion to apply while dragging")
	}
	if geom.Width != 5 || geom.Height != 5 {
		t.Errorf("expected resize clamped to the 5px floor, got (%d,%d)", geom.Width, geom.Height)
	}
}

func TestMotionNoopWhenNotDragging(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	ws := workspace.New(960)
	d := drag.New(conn)

	if _, ok := d.Motion(ws, 10, 10, 1920, 1080); ok {
		t.Errorf("expected Motion to be a no-op with no active drag")
	}
}

func TestEndClearsDragState(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	ws := workspace.New(960)
	idx := ws.Clients.Insert(client.Client{Window: 1, Frame: 2})
	conn.Geometries[2] = xconn.Geometry{X: 0, Y: 0, Width: 100, Height: 100}

	d := drag.New(conn)
	d.Begin(ws, idx, drag.Button1, 0, 0)
	d.End()

	if d.Active() {
		t.Errorf("expected drag inactive after End")
	}
}

func TestClearIfDraggedOnlyClearsMatchingClient(t *testing.T) {
	conn := xconn.NewMock(1920, 1080)
	ws := workspace.New(960)
	a := ws.Clients.Insert(client.Client{Window: 1, Frame: 2})
	b := ws.Clients.Insert(client.Client{Window: 3, Frame: 4})
	conn.Geometries[2] = xconn.Geometry{X: 0, Y: 0, Width: 100, Height: 100}

	d := drag.New(conn)
	d.Begin(ws, a, drag.Button1, 0, 0)

	d.ClearIfDragged(b)
	if !d.Active() {
		t.Fatalf("expected drag to remain active; cleared the wrong client")
	}

	d.ClearIfDragged(a)
	if d.Active() {
		t.Errorf("expected drag cleared for the dragged client")
	}
}
