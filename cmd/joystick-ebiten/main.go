// Command joystick-ebiten shows a virtual joystick in a window. It works
// with a mouse and on touch screens; one contact drives the stick.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/satindergrewal/joystick"
	"github.com/satindergrewal/joystick/internal/logging"
)

func main() {
	size := flag.Int("size", 300, "Window size in pixels (square)")
	fill := flag.String("fill", joystick.DefaultInternalFillColor, "Stick fill color")
	stroke := flag.String("stroke", joystick.DefaultInternalStrokeColor, "Stick outline color")
	ring := flag.String("ring", joystick.DefaultExternalStrokeColor, "Reference ring color")
	autoReturn := flag.Bool("return", true, "Return the stick to center on release")
	logLevel := flag.String("log-level", "info", "Log level: error, warn, info, debug")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, level)

	g := newGame(*size, *size, logger)
	js, err := joystick.New(g, joystick.Config{
		Title:               "joystick",
		InternalFillColor:   *fill,
		InternalStrokeColor: *stroke,
		ExternalStrokeColor: *ring,
		AutoReturnToCenter:  joystick.Bool(*autoReturn),
		Callback:            g.onStatus,
		Logger:              logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.bind(js)

	ebiten.SetWindowSize(js.Width(), js.Height())
	ebiten.SetWindowTitle(js.Title())
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
