package joystick

import (
	"fmt"
	"math"
)

// StickStatus is the state reported to the host after every update.
// Each report is a new value; holding on to one is safe.
type StickStatus struct {
	XPosition         float64   // Clamped stick center, surface pixels
	YPosition         float64   // Clamped stick center, surface pixels
	X                 int       // Normalized horizontal offset, right positive
	Y                 int       // Normalized vertical offset, up positive
	CardinalDirection Direction // One of the 9 directions
}

// String formats the status for logs and command output.
func (s StickStatus) String() string {
	return fmt.Sprintf("pos=(%.1f,%.1f) x=%d y=%d dir=%s",
		s.XPosition, s.YPosition, s.X, s.Y, s.CardinalDirection)
}

// statusAt builds the status for a stick centered at (x, y).
func statusAt(g Geometry, x, y float64) StickStatus {
	nx, ny := g.Normalize(x, y)
	return StickStatus{
		XPosition:         x,
		YPosition:         y,
		X:                 nx,
		Y:                 ny,
		CardinalDirection: Classify(x-g.CenterX, y-g.CenterY, g),
	}
}

// roundInt rounds half away from zero. A zero travel envelope produces
// NaN or infinities; those map to 0 and the int32 range.
func roundInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(math.Round(v))
}

// Status returns the current stick status without invoking the callback.
func (j *Joystick) Status() StickStatus {
	return statusAt(j.geom, j.movedX, j.movedY)
}

// Width returns the surface width in pixels.
func (j *Joystick) Width() int {
	return j.settings.width
}

// Height returns the surface height in pixels.
func (j *Joystick) Height() int {
	return j.settings.height
}

// PosX returns the stick X position relative to the surface.
func (j *Joystick) PosX() float64 {
	return j.movedX
}

// PosY returns the stick Y position relative to the surface.
func (j *Joystick) PosY() float64 {
	return j.movedY
}

// X returns the normalized horizontal offset, from -100 to +100.
func (j *Joystick) X() int {
	x, _ := j.geom.Normalize(j.movedX, j.movedY)
	return x
}

// Y returns the normalized vertical offset, from -100 to +100, up positive.
func (j *Joystick) Y() int {
	_, y := j.geom.Normalize(j.movedX, j.movedY)
	return y
}

// Direction returns the cardinal direction of the stick.
func (j *Joystick) Direction() Direction {
	return Classify(j.movedX-j.geom.CenterX, j.movedY-j.geom.CenterY, j.geom)
}
