package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/satindergrewal/joystick"
	"github.com/satindergrewal/joystick/internal/pointer"
)

// game hosts one joystick in an ebiten window. It is also the joystick's
// container: the window is the surface.
type game struct {
	width, height int
	logger        *slog.Logger

	js      *joystick.Joystick
	surface *joystick.ImageSurface
	frame   *ebiten.Image
	dirty   bool
	status  joystick.StickStatus

	tracker     pointer.Tracker
	touchID     ebiten.TouchID
	touchActive bool
	touchIDs    []ebiten.TouchID
}

func newGame(width, height int, logger *slog.Logger) *game {
	return &game{width: width, height: height, logger: logger}
}

func (g *game) Size() (int, int) {
	return g.width, g.height
}

func (g *game) Attach(title string, width, height int) (joystick.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window %q: cannot create %dx%d surface", title, width, height)
	}
	g.width, g.height = width, height
	g.surface = joystick.NewImageSurface(width, height)
	g.dirty = true
	return g.surface, nil
}

func (g *game) bind(js *joystick.Joystick) {
	g.js = js
	g.status = js.Status()
}

// onStatus is the joystick callback; the next Draw uploads the surface.
func (g *game) onStatus(st joystick.StickStatus) {
	g.logger.Debug("status", "x", st.X, "y", st.Y, "dir", st.CardinalDirection)
	g.status = st
	g.dirty = true
}

func (g *game) inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// touch is one active touch point in window coordinates.
type touch struct {
	id   ebiten.TouchID
	x, y int
}

// input is the pointer state sampled for one frame.
type input struct {
	touches        []touch
	mouseX, mouseY int
	mouseDown      bool
}

// Update samples the pointer state and applies it.
func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	in := input{touches: make([]touch, 0, len(g.touchIDs))}
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, touch{id: id, x: x, y: y})
	}
	in.mouseX, in.mouseY = ebiten.CursorPosition()
	in.mouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	g.apply(in)
	return nil
}

// apply drives the stick from one contact. A touch that is already being
// tracked wins; other touches are ignored until it lifts. Without touches
// the left mouse button drives the stick.
func (g *game) apply(in input) {
	if g.touchActive {
		for _, t := range in.touches {
			if t.id == g.touchID {
				g.tracker.Update(g.js, true, g.inside(t.x, t.y), float64(t.x), float64(t.y))
				return
			}
		}
		g.touchActive = false
		g.tracker.Update(g.js, false, false, 0, 0)
		return
	}

	if len(in.touches) > 0 && !g.tracker.Down() {
		t := in.touches[0]
		g.touchID = t.id
		g.touchActive = true
		g.tracker.Update(g.js, true, g.inside(t.x, t.y), float64(t.x), float64(t.y))
		return
	}

	g.tracker.Update(g.js, in.mouseDown, g.inside(in.mouseX, in.mouseY), float64(in.mouseX), float64(in.mouseY))
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	if g.dirty {
		g.frame.WritePixels(g.surface.Image().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("x=%d y=%d dir=%s", g.status.X, g.status.Y, g.status.CardinalDirection))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
