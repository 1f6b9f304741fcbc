package joystick

import (
	"fmt"
	"image/color"
	"math"
	"testing"
)

// traceSurface records draw calls as strings.
type traceSurface struct {
	calls []string
}

func (s *traceSurface) Clear() { s.calls = append(s.calls, "clear") }

func (s *traceSurface) DrawArc(x, y, r float64) {
	s.calls = append(s.calls, fmt.Sprintf("arc %.1f %.1f %.1f", x, y, r))
}

func (s *traceSurface) SetGradientFill(g RadialGradient) {
	s.calls = append(s.calls, fmt.Sprintf("gradient %.1f %.1f %s %s", g.X, g.Y, g.From.Hex(), g.To.Hex()))
}

func (s *traceSurface) Stroke(w float64, c Color) {
	s.calls = append(s.calls, fmt.Sprintf("stroke %.1f %s", w, c.Hex()))
}

type traceContainer struct {
	w, h    int
	surface *traceSurface
	err     error
}

func (c *traceContainer) Size() (int, int) { return c.w, c.h }

func (c *traceContainer) Attach(string, int, int) (Surface, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.surface = &traceSurface{}
	return c.surface, nil
}

func TestRedrawSequence(t *testing.T) {
	c := &traceContainer{w: 300, h: 300}
	j, err := New(c, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{
		"clear",
		"arc 150.0 150.0 105.0",
		"stroke 2.0 #008000",
		"arc 150.0 150.0 70.0",
		"gradient 150.0 150.0 #00aa00 #003300",
		"stroke 2.0 #003300",
	}
	assertCalls(t, "construction", c.surface.calls, want)

	c.surface.calls = nil
	j.Press()
	if len(c.surface.calls) != 0 {
		t.Fatalf("press drew: %v", c.surface.calls)
	}

	j.MoveTo(5000, 100)
	want = []string{
		"clear",
		"arc 150.0 150.0 105.0",
		"stroke 2.0 #008000",
		"arc 223.0 100.0 70.0",
		"gradient 223.0 100.0 #00aa00 #003300",
		"stroke 2.0 #003300",
	}
	assertCalls(t, "move", c.surface.calls, want)
}

func TestRedrawCustomStyle(t *testing.T) {
	c := &traceContainer{w: 100, h: 100}
	_, err := New(c, Config{
		InternalFillColor:   "#ffffff",
		InternalLineWidth:   3,
		InternalStrokeColor: "#000080",
		ExternalLineWidth:   5,
		ExternalStrokeColor: "#ff0000",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []string{
		"clear",
		"arc 50.0 50.0 30.0",
		"stroke 5.0 #ff0000",
		"arc 50.0 50.0 20.0",
		"gradient 50.0 50.0 #ffffff #000080",
		"stroke 3.0 #000080",
	}
	assertCalls(t, "custom", c.surface.calls, want)
}

func TestAttachFailure(t *testing.T) {
	c := &traceContainer{w: 100, h: 100, err: fmt.Errorf("no context")}
	if _, err := New(c, Config{}); err == nil {
		t.Fatal("expected error when the container cannot create a surface")
	}
}

func assertCalls(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: %d calls %v, want %d %v", name, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: call %d = %q, want %q", name, i, got[i], want[i])
		}
	}
}

// --- Raster tests ---

func TestRadialGradient(t *testing.T) {
	g := RadialGradient{X: 10, Y: 10, R0: 5, R1: 105, From: Color{0, 200, 0}, To: Color{0, 0, 100}}

	if got := g.At(10, 10); got != g.From {
		t.Errorf("center = %+v, want From", got)
	}
	if got := g.At(10, 300); got != g.To {
		t.Errorf("outside = %+v, want To", got)
	}
	mid := g.At(10+55, 10)
	if mid != (Color{0, 100, 50}) {
		t.Errorf("midpoint = %+v, want {0 100 50}", mid)
	}
}

func TestRenderInitial(t *testing.T) {
	c := NewCanvas(300, 300)
	if _, err := New(c, Config{}); err != nil {
		t.Fatalf("New: %v", err)
	}
	img := c.Image()

	// Stick center: solid fill color inside the gradient's inner radius.
	if got := img.RGBAAt(150, 150); got != (color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}) {
		t.Errorf("stick center = %v, want fill color", got)
	}

	// Between stick and ring: untouched.
	if got := img.RGBAAt(240, 150); got.A != 0 {
		t.Errorf("gap pixel = %v, want transparent", got)
	}

	// Reference ring at radius 105.
	ring := img.RGBAAt(255, 150)
	if ring.A < 0xc0 || ring.G < 0x60 {
		t.Errorf("ring pixel = %v, want ring color", ring)
	}

	// Corner: outside everything.
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestRenderFollowsStick(t *testing.T) {
	c := NewCanvas(300, 300)
	j, err := New(c, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img := c.Image()

	j.Press()
	j.MoveTo(227, 150)

	if got := img.RGBAAt(227, 150); got != (color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}) {
		t.Errorf("moved stick center = %v, want fill color", got)
	}
	if got := img.RGBAAt(150, 150); got.A != 0 {
		t.Errorf("old center = %v, want cleared", got)
	}

	j.Release()
	if got := img.RGBAAt(227, 150); got.A != 0 && got.G > 0x80 {
		t.Errorf("released stick still drawn at old position: %v", got)
	}
	if got := img.RGBAAt(150, 150); got.A != 0xff {
		t.Errorf("stick not back at center: %v", got)
	}
}

func TestRenderGradientDarkensOutward(t *testing.T) {
	c := NewCanvas(300, 300)
	if _, err := New(c, Config{}); err != nil {
		t.Fatalf("New: %v", err)
	}
	img := c.Image()

	inner := img.RGBAAt(150, 150)
	outer := img.RGBAAt(150+60, 150)
	if outer.G >= inner.G {
		t.Errorf("gradient should darken outward: inner %v, outer %v", inner, outer)
	}
}

func TestRenderBackground(t *testing.T) {
	c := NewCanvas(120, 120)
	c.Background = color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}
	if _, err := New(c, Config{}); err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Image().RGBAAt(0, 0); got != c.Background {
		t.Errorf("corner = %v, want background %v", got, c.Background)
	}
}

func TestRenderWideSurface(t *testing.T) {
	// The ring overflows a short surface; drawing must clip, not fail.
	c := NewCanvas(400, 60)
	j, err := New(c, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	j.Press()
	j.MoveTo(-100, 900)
	j.Release()

	if got := c.Image().RGBAAt(200, 30); got.A == 0 {
		t.Errorf("center pixel empty on wide surface")
	}
}

func TestStrokeSkipsDegenerate(t *testing.T) {
	s := NewImageSurface(20, 20)
	s.Clear()
	s.DrawArc(10, 10, -3)
	s.Stroke(2, Color{R: 0xff})
	s.SetGradientFill(RadialGradient{From: Color{R: 0xff}, To: Color{R: 0xff}})
	s.DrawArc(math.NaN(), 10, 5)
	s.Stroke(2, Color{R: 0xff})

	b := s.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.Image().RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) drawn for degenerate arc", x, y)
			}
		}
	}
}
