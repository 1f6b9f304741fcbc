package joystick

// Direction is the 9-way classification of the stick offset.
type Direction string

const (
	Center    Direction = "C"
	North     Direction = "N"
	South     Direction = "S"
	East      Direction = "E"
	West      Direction = "W"
	NorthEast Direction = "NE"
	NorthWest Direction = "NW"
	SouthEast Direction = "SE"
	SouthWest Direction = "SW"
)

// Directions lists every value Classify can return.
var Directions = [9]Direction{
	Center, North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

// String returns the direction symbol.
func (d Direction) String() string {
	return string(d)
}

// Classify maps an offset from the center (screen axes, y grows downward)
// to a direction. The vertical band picks C, N or S first, and a horizontal
// offset past its limit then turns C into W/E or appends W/E to N/S.
func Classify(dx, dy float64, g Geometry) Direction {
	base := Center
	if dy < -g.VerticalLimit {
		base = North
	}
	if dy > g.VerticalLimit {
		base = South
	}

	if dx < -g.HorizontalLimit {
		if base == Center {
			return West
		}
		return base + West
	}
	if dx > g.HorizontalLimit {
		if base == Center {
			return East
		}
		return base + East
	}
	return base
}
