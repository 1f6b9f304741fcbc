package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/satindergrewal/joystick"
	"github.com/satindergrewal/joystick/internal/pointer"
)

// Rows reserved below the joystick for the status line.
const statusRows = 1

// termHost shows a joystick in a terminal. Each cell holds two vertically
// stacked pixels drawn with an upper half block, so the surface is one
// pixel per column and two pixels per row.
type termHost struct {
	screen tcell.Screen
	logger *slog.Logger

	surface          *joystick.ImageSurface
	originX, originY int
	js               *joystick.Joystick

	tracker pointer.Tracker
	lastDir joystick.Direction
	onTurn  func(joystick.Direction)
}

func newTermHost(screen tcell.Screen, logger *slog.Logger) *termHost {
	return &termHost{
		screen:  screen,
		logger:  logger,
		lastDir: joystick.Center,
		onTurn:  func(joystick.Direction) {},
	}
}

// Size reports the largest square that fits above the status line.
func (h *termHost) Size() (int, int) {
	cols, rows := h.screen.Size()
	side := min(cols, (rows-statusRows)*2)
	return side, side
}

// Attach creates the pixel surface and centers it on screen.
func (h *termHost) Attach(title string, width, height int) (joystick.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terminal too small for %q (%dx%d pixels)", title, width, height)
	}
	cols, rows := h.screen.Size()
	h.originX = max(0, (cols-width)/2)
	h.originY = max(0, (rows-statusRows-cellRows(height))/2)
	h.surface = joystick.NewImageSurface(width, height)
	h.logger.Debug("surface attached", "title", title, "width", width, "height", height,
		"origin_x", h.originX, "origin_y", h.originY)
	return h.surface, nil
}

func cellRows(height int) int {
	return (height + 1) / 2
}

// bind connects the host to the joystick created on it.
func (h *termHost) bind(js *joystick.Joystick) {
	h.js = js
	h.draw(js.Status())
}

// toLocal maps a cell to the surface pixel at its center.
func (h *termHost) toLocal(cx, cy int) (float64, float64) {
	return float64(cx-h.originX) + 0.5, float64(cy-h.originY)*2 + 1
}

// inside reports whether a cell lies on the joystick surface.
func (h *termHost) inside(cx, cy int) bool {
	if h.surface == nil {
		return false
	}
	b := h.surface.Image().Bounds()
	x, y := cx-h.originX, cy-h.originY
	return x >= 0 && x < b.Dx() && y >= 0 && y < cellRows(b.Dy())
}

// handleMouse feeds button-1 state to the pointer tracker.
func (h *termHost) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	x, y := h.toLocal(cx, cy)
	h.tracker.Update(h.js, held, h.inside(cx, cy), x, y)
}

// onStatus is the joystick callback. The surface has just been redrawn.
func (h *termHost) onStatus(st joystick.StickStatus) {
	h.logger.Debug("status", "x", st.X, "y", st.Y, "dir", st.CardinalDirection)
	if st.CardinalDirection != h.lastDir {
		h.lastDir = st.CardinalDirection
		h.onTurn(st.CardinalDirection)
	}
	h.draw(st)
}

func (h *termHost) draw(st joystick.StickStatus) {
	h.blit()

	cols, rows := h.screen.Size()
	line := fmt.Sprintf(" x=%4d  y=%4d  dir=%-2s  drag the stick, q to quit", st.X, st.Y, st.CardinalDirection)
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	y := rows - 1
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		h.screen.SetContent(x, y, r, nil, style)
	}
	h.screen.Show()
}

// blit copies the surface to the screen.
func (h *termHost) blit() {
	if h.surface == nil {
		return
	}
	img := h.surface.Image()
	b := img.Bounds()
	for row := 0; row < cellRows(b.Dy()); row++ {
		for col := 0; col < b.Dx(); col++ {
			top := img.RGBAAt(col, 2*row)
			bottom := img.RGBAAt(col, 2*row+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			h.screen.SetContent(h.originX+col, h.originY+row, '▀', nil, style)
		}
	}
}

// cellColor composites a premultiplied pixel over black.
func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
