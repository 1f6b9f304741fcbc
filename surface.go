package joystick

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Surface is the immediate-mode drawing target a joystick renders onto.
// DrawArc starts a new full-circle path; SetGradientFill and Stroke paint
// the current path.
type Surface interface {
	Clear()
	DrawArc(x, y, radius float64)
	SetGradientFill(g RadialGradient)
	Stroke(width float64, c Color)
}

// Container hosts the joystick surface. Size is only read at construction
// when the configuration leaves a dimension unset.
type Container interface {
	Size() (width, height int)
	Attach(title string, width, height int) (Surface, error)
}

// RadialGradient blends From at radius R0 to To at radius R1, both circles
// centered at (X, Y). Inside R0 the color is From, past R1 it is To.
type RadialGradient struct {
	X, Y   float64
	R0, R1 float64
	From   Color
	To     Color
}

// At returns the gradient color at a point.
func (g RadialGradient) At(x, y float64) Color {
	if g.R1 <= g.R0 {
		return g.To
	}
	d := math.Hypot(x-g.X, y-g.Y)
	return g.From.lerp(g.To, (d-g.R0)/(g.R1-g.R0))
}

// gradientImage adapts a RadialGradient to image.Image, sampling pixel centers.
type gradientImage struct {
	g RadialGradient
}

func (gi gradientImage) ColorModel() color.Model { return color.RGBAModel }

func (gi gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)
}

func (gi gradientImage) At(x, y int) color.Color {
	return gi.g.At(float64(x)+0.5, float64(y)+0.5).RGBA()
}

// Bezier control distance for a quarter circle.
const kappa = 0.5522847498

// ImageSurface is a Surface backed by an RGBA image and rasterized with
// golang.org/x/image/vector. Arcs with a non-positive radius draw nothing.
type ImageSurface struct {
	// Background is the color Clear fills with (default: transparent).
	Background color.RGBA

	img *image.RGBA
	ras *vector.Rasterizer

	x, y, r float64
	hasPath bool
}

// NewImageSurface creates a width x height surface.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. It is updated in place by every draw.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear fills the whole surface with the background color.
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
	s.hasPath = false
}

// DrawArc sets the current path to the circle at (x, y).
func (s *ImageSurface) DrawArc(x, y, radius float64) {
	s.x, s.y, s.r = x, y, radius
	s.hasPath = radius > 0 && !math.IsNaN(x) && !math.IsNaN(y)
}

// SetGradientFill fills the current circle with g.
func (s *ImageSurface) SetGradientFill(g RadialGradient) {
	if !s.hasPath {
		return
	}
	s.reset()
	s.addCircle(s.x, s.y, s.r, false)
	s.ras.Draw(s.img, s.img.Bounds(), gradientImage{g: g}, image.Point{})
}

// Stroke outlines the current circle with a line of the given width,
// centered on the circle.
func (s *ImageSurface) Stroke(width float64, c Color) {
	if !s.hasPath || width <= 0 {
		return
	}
	s.reset()
	s.addCircle(s.x, s.y, s.r+width/2, false)
	if inner := s.r - width/2; inner > 0 {
		// Opposite winding cuts the hole.
		s.addCircle(s.x, s.y, inner, true)
	}
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{})
}

func (s *ImageSurface) reset() {
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over
}

// addCircle appends a closed circle made of four cubic segments.
func (s *ImageSurface) addCircle(cx, cy, r float64, reverse bool) {
	k := r * kappa
	f := func(v float64) float32 { return float32(v) }

	s.ras.MoveTo(f(cx+r), f(cy))
	if !reverse {
		s.ras.CubeTo(f(cx+r), f(cy+k), f(cx+k), f(cy+r), f(cx), f(cy+r))
		s.ras.CubeTo(f(cx-k), f(cy+r), f(cx-r), f(cy+k), f(cx-r), f(cy))
		s.ras.CubeTo(f(cx-r), f(cy-k), f(cx-k), f(cy-r), f(cx), f(cy-r))
		s.ras.CubeTo(f(cx+k), f(cy-r), f(cx+r), f(cy-k), f(cx+r), f(cy))
	} else {
		s.ras.CubeTo(f(cx+r), f(cy-k), f(cx+k), f(cy-r), f(cx), f(cy-r))
		s.ras.CubeTo(f(cx-k), f(cy-r), f(cx-r), f(cy-k), f(cx-r), f(cy))
		s.ras.CubeTo(f(cx-r), f(cy+k), f(cx-k), f(cy+r), f(cx), f(cy+r))
		s.ras.CubeTo(f(cx+k), f(cy+r), f(cx+r), f(cy+k), f(cx+r), f(cy))
	}
	s.ras.ClosePath()
}

// Canvas is a Container that creates an in-memory ImageSurface.
type Canvas struct {
	Width  int
	Height int

	// Background is applied to the surface created by Attach.
	Background color.RGBA

	title   string
	surface *ImageSurface
}

// NewCanvas returns a canvas container of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

// Size reports the container size.
func (c *Canvas) Size() (int, int) {
	return c.Width, c.Height
}

// Attach creates the drawing surface. Both dimensions must be positive.
func (c *Canvas) Attach(title string, width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas %q: cannot create %dx%d surface", title, width, height)
	}
	s := NewImageSurface(width, height)
	s.Background = c.Background
	c.title = title
	c.surface = s
	return s, nil
}

// Title returns the title of the attached surface.
func (c *Canvas) Title() string {
	return c.title
}

// Surface returns the attached surface, or nil before Attach.
func (c *Canvas) Surface() *ImageSurface {
	return c.surface
}

// Image returns the attached surface image, or nil before Attach.
func (c *Canvas) Image() *image.RGBA {
	if c.surface == nil {
		return nil
	}
	return c.surface.Image()
}
