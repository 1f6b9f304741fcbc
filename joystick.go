// Package joystick implements an on-screen virtual joystick.
//
// A Joystick draws a fixed reference ring and a draggable stick onto a
// Surface. The host forwards press, move and release input; every move and
// release clamps the stick, redraws the surface and reports a StickStatus
// with the normalized offset and a cardinal direction.
//
// A Joystick is driven from a single goroutine and is not safe for
// concurrent use. The callback must not feed input back into the same
// Joystick.
package joystick

import (
	"errors"
	"fmt"
)

// ErrNoSurface is returned by New when no drawing surface can be created.
var ErrNoSurface = errors.New("joystick: no drawing surface")

// Event is a device-independent input event. Pressed and Released mark
// edges; an event with neither is a move to (X, Y) in surface coordinates.
type Event struct {
	X, Y     float64
	Pressed  bool
	Released bool
}

// Joystick is a virtual joystick bound to one drawing surface.
type Joystick struct {
	settings settings
	geom     Geometry
	surface  Surface

	pressed        bool
	movedX, movedY float64

	reporting bool
}

// New creates a joystick in container. Unset configuration fields take
// their defaults and unset sizes come from the container. The surface is
// drawn once before New returns.
func New(container Container, cfg Config) (*Joystick, error) {
	if container == nil {
		return nil, fmt.Errorf("%w: nil container", ErrNoSurface)
	}

	s := resolve(cfg, container)

	surface, err := container.Attach(s.title, s.width, s.height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSurface, err)
	}
	if surface == nil {
		return nil, fmt.Errorf("%w: container returned nil surface", ErrNoSurface)
	}

	g := NewGeometry(s.width, s.height)
	j := &Joystick{
		settings: s,
		geom:     g,
		surface:  surface,
	}
	j.place(g.CenterX, g.CenterY)

	s.logger.Debug("joystick created",
		"title", s.title,
		"width", s.width,
		"height", s.height,
		"internal_radius", g.InternalRadius,
		"external_radius", g.ExternalRadius,
		"max_move", g.MaxMoveStick,
		"auto_return", s.autoReturnToCenter)

	j.redraw()
	return j, nil
}

// Press marks the start of a drag. The stick does not move and nothing
// is reported until the next MoveTo or Release.
func (j *Joystick) Press() {
	j.pressed = true
}

// MoveTo moves the stick to (x, y) in surface coordinates, then redraws
// and reports. It is ignored unless the joystick is pressed.
func (j *Joystick) MoveTo(x, y float64) {
	if !j.pressed {
		return
	}
	j.place(x, y)
	j.update()
}

// Release ends a drag. With auto-return the stick snaps back to the
// center; otherwise it stays at its last position. The surface is redrawn
// and the status reported even if no press preceded the release, since
// hosts forward releases from anywhere on screen.
func (j *Joystick) Release() {
	j.pressed = false
	if j.settings.autoReturnToCenter {
		j.place(j.geom.CenterX, j.geom.CenterY)
	}
	j.update()
}

// Handle dispatches a normalized input event.
func (j *Joystick) Handle(ev Event) {
	switch {
	case ev.Pressed:
		j.Press()
	case ev.Released:
		j.Release()
	default:
		j.MoveTo(ev.X, ev.Y)
	}
}

// Pressed reports whether a drag is in progress.
func (j *Joystick) Pressed() bool {
	return j.pressed
}

// Title returns the title given to the drawing surface.
func (j *Joystick) Title() string {
	return j.settings.title
}

// Geometry returns the constants derived from the surface size.
func (j *Joystick) Geometry() Geometry {
	return j.geom
}

// place sets the stick position. Every position is clamped, the center
// included: on a surface shorter than about half its width the center lies
// outside the clamp envelope and the stick rests off center.
func (j *Joystick) place(x, y float64) {
	j.movedX, j.movedY = j.geom.Clamp(x, y)
}

// update redraws and reports the current position.
func (j *Joystick) update() {
	if j.reporting {
		panic("joystick: input delivered from inside the status callback")
	}
	j.redraw()

	st := j.Status()
	j.reporting = true
	defer func() { j.reporting = false }()
	j.settings.callback(st)
}
