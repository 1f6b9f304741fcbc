package joystick

// Stick gradient radii, in pixels from the stick center.
const (
	gradientInnerRadius = 5
	gradientOuterRadius = 200
)

// redraw clears the surface and draws the reference ring and the stick.
// The position must already be clamped.
func (j *Joystick) redraw() {
	s := j.settings
	g := j.geom

	j.surface.Clear()

	j.surface.DrawArc(g.CenterX, g.CenterY, g.ExternalRadius)
	j.surface.Stroke(s.externalLineWidth, s.externalStrokeColor)

	j.surface.DrawArc(j.movedX, j.movedY, g.InternalRadius)
	j.surface.SetGradientFill(RadialGradient{
		X:    j.movedX,
		Y:    j.movedY,
		R0:   gradientInnerRadius,
		R1:   gradientOuterRadius,
		From: s.internalFillColor,
		To:   s.internalStrokeColor,
	})
	j.surface.Stroke(s.internalLineWidth, s.internalStrokeColor)
}
