package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/satindergrewal/joystick"
	"github.com/satindergrewal/joystick/internal/logging"
)

func newSimHost(t *testing.T, cols, rows int) (*termHost, tcell.SimulationScreen, *[]joystick.StickStatus) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	host := newTermHost(screen, logging.Discard())
	var got []joystick.StickStatus
	cfg := joystick.Config{
		Callback: func(st joystick.StickStatus) {
			got = append(got, st)
			host.onStatus(st)
		},
	}
	js, err := joystick.New(host, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	host.bind(js)
	return host, screen, &got
}

func mouse(x, y int, held bool) *tcell.EventMouse {
	btn := tcell.ButtonNone
	if held {
		btn = tcell.Button1
	}
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func TestTermHostSize(t *testing.T) {
	host, _, _ := newSimHost(t, 60, 21)

	if host.js.Width() != 40 || host.js.Height() != 40 {
		t.Fatalf("surface = %dx%d, want 40x40", host.js.Width(), host.js.Height())
	}
	if host.originX != 10 || host.originY != 0 {
		t.Errorf("origin = (%d,%d), want (10,0)", host.originX, host.originY)
	}
}

func TestTermHostDrag(t *testing.T) {
	host, _, got := newSimHost(t, 60, 21)

	host.handleMouse(mouse(30, 10, true))
	if !host.js.Pressed() {
		t.Fatal("press on the surface should press the joystick")
	}
	if len(*got) != 0 {
		t.Fatalf("press reported %d statuses", len(*got))
	}

	host.handleMouse(mouse(40, 10, true))
	st := (*got)[len(*got)-1]
	if st.CardinalDirection != joystick.East {
		t.Errorf("drag right = %v, want E", st)
	}
	if host.lastDir != joystick.East {
		t.Errorf("lastDir = %s", host.lastDir)
	}

	host.handleMouse(mouse(40, 10, false))
	st = (*got)[len(*got)-1]
	if host.js.Pressed() || st.CardinalDirection != joystick.Center {
		t.Errorf("after release: pressed=%v status=%v", host.js.Pressed(), st)
	}
}

func TestTermHostPressOutside(t *testing.T) {
	host, _, got := newSimHost(t, 60, 21)

	host.handleMouse(mouse(2, 2, true))
	host.handleMouse(mouse(40, 10, true))
	if host.js.Pressed() || len(*got) != 0 {
		t.Fatalf("press outside the surface started a drag: %v", *got)
	}

	// Releases are forwarded from anywhere.
	host.handleMouse(mouse(2, 2, false))
	if len(*got) != 1 {
		t.Fatalf("expected the release to be reported, got %d", len(*got))
	}
}

func TestTermHostTurnCallback(t *testing.T) {
	host, _, _ := newSimHost(t, 60, 21)
	var turns []joystick.Direction
	host.onTurn = func(d joystick.Direction) { turns = append(turns, d) }

	host.handleMouse(mouse(30, 10, true))
	host.handleMouse(mouse(30, 2, true))
	host.handleMouse(mouse(30, 3, true))
	host.handleMouse(mouse(30, 3, false))

	want := []joystick.Direction{joystick.North, joystick.Center}
	if len(turns) != len(want) {
		t.Fatalf("turns = %v, want %v", turns, want)
	}
	for i := range want {
		if turns[i] != want[i] {
			t.Errorf("turn %d = %s, want %s", i, turns[i], want[i])
		}
	}
}

func TestTermHostBlit(t *testing.T) {
	host, screen, _ := newSimHost(t, 60, 21)

	r, _, _, _ := screen.GetContent(host.originX+20, host.originY+10)
	if r != '▀' {
		t.Errorf("surface cell = %q, want half block", r)
	}
	r, _, _, _ = screen.GetContent(0, 20)
	if r != ' ' {
		t.Errorf("status line start = %q", r)
	}
}

func TestToLocal(t *testing.T) {
	h := &termHost{originX: 10, originY: 3}
	x, y := h.toLocal(10, 3)
	if x != 0.5 || y != 1 {
		t.Errorf("toLocal(origin) = (%v,%v), want (0.5,1)", x, y)
	}
	x, y = h.toLocal(15, 5)
	if x != 5.5 || y != 5 {
		t.Errorf("toLocal(15,5) = (%v,%v), want (5.5,5)", x, y)
	}
}
