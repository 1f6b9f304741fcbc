// Package pointer turns sampled button state into joystick input edges.
//
// Hosts that poll their input (a game loop) or receive combined
// button+position events (a terminal) feed one sample per event or frame.
// The tracker emits Press only for presses that start on the surface,
// forwards moves while the button is held, and forwards every release.
package pointer

// Target receives input edges. *joystick.Joystick implements it.
type Target interface {
	Press()
	MoveTo(x, y float64)
	Release()
}

// Tracker follows one button of one contact.
type Tracker struct {
	down         bool
	lastX, lastY float64
}

// Update feeds one sample. x and y are surface coordinates and inside
// reports whether they fall on the surface. Repeated samples at the same
// position while held are dropped.
func (t *Tracker) Update(target Target, held, inside bool, x, y float64) {
	switch {
	case held && !t.down:
		t.down = true
		t.lastX, t.lastY = x, y
		if inside {
			target.Press()
		}
	case held && t.down:
		if x == t.lastX && y == t.lastY {
			return
		}
		t.lastX, t.lastY = x, y
		target.MoveTo(x, y)
	case !held && t.down:
		t.down = false
		target.Release()
	}
}

// Down reports whether the button is currently held.
func (t *Tracker) Down() bool {
	return t.down
}
