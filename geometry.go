package joystick

// Ratios of the internal radius. The other radii are never set directly.
const (
	externalRadiusFactor = 1.5
	maxMoveStickFactor   = 1.1
)

// Geometry holds the constants derived from the surface size.
// It is computed once per joystick and never changes.
type Geometry struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64

	// InternalRadius is the stick radius. It depends on the width only.
	InternalRadius float64

	// ExternalRadius is the reference ring radius.
	ExternalRadius float64

	// MaxMoveStick is the travel envelope: the offset that maps to ±100.
	MaxMoveStick float64

	// Direction thresholds, applied symmetrically around the center.
	HorizontalLimit float64
	VerticalLimit   float64
}

// NewGeometry computes the geometry for a width x height surface.
// Widths of about 20 pixels or less yield a non-positive internal radius;
// this is allowed and simply draws nothing.
func NewGeometry(width, height int) Geometry {
	w := float64(width)
	h := float64(height)

	internal := (w - (w/2 + 10)) / 2

	return Geometry{
		Width:           w,
		Height:          h,
		CenterX:         w / 2,
		CenterY:         h / 2,
		InternalRadius:  internal,
		ExternalRadius:  internal * externalRadiusFactor,
		MaxMoveStick:    internal * maxMoveStickFactor,
		HorizontalLimit: w / 10,
		VerticalLimit:   h / 10,
	}
}

// Clamp keeps a stick position inside the surface.
//
// The lower bound compares against InternalRadius while the upper bound
// compares position+InternalRadius; both snap to MaxMoveStick from the
// edge. The two checks are not symmetric and the stick can end slightly
// beyond MaxMoveStick from the center on either axis. This matches the
// reference behavior and is kept on purpose.
func (g Geometry) Clamp(x, y float64) (float64, float64) {
	if x < g.InternalRadius {
		x = g.MaxMoveStick
	}
	if x+g.InternalRadius > g.Width {
		x = g.Width - g.MaxMoveStick
	}
	if y < g.InternalRadius {
		y = g.MaxMoveStick
	}
	if y+g.InternalRadius > g.Height {
		y = g.Height - g.MaxMoveStick
	}
	return x, y
}

// Normalize maps a stick position to integer offsets in about [-100,100].
// Y is inverted so that up is positive. Halves round away from zero.
func (g Geometry) Normalize(x, y float64) (int, int) {
	nx := roundInt(100 * ((x - g.CenterX) / g.MaxMoveStick))
	ny := roundInt(100 * ((y - g.CenterY) / g.MaxMoveStick) * -1)
	return nx, ny
}
