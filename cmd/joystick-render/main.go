// Command joystick-render replays a script of press/move/release steps
// against a virtual joystick and writes a PNG for every reported status.
// Optionally stitches them into an animated GIF using ffmpeg.
//
// Usage:
//
//	joystick-render -script moves.yaml -out frames/ -gif output.gif
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/satindergrewal/joystick"
	"github.com/satindergrewal/joystick/internal/logging"
)

func main() {
	scriptPath := flag.String("script", "", "YAML script to replay (default: built-in demo)")
	outDir := flag.String("out", "frames", "Output directory for PNG frames")
	gifPath := flag.String("gif", "", "Output GIF path (requires ffmpeg)")
	fps := flag.Int("fps", 4, "GIF frame rate")
	logLevel := flag.String("log-level", "warn", "Log level: error, warn, info, debug")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, level)

	script := DefaultScript()
	if *scriptPath != "" {
		script, err = LoadScript(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	events, err := script.Events()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}

	canvas := joystick.NewCanvas(script.Width, script.Height)
	if script.Background != "" {
		bg, err := joystick.ParseHex(script.Background)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		canvas.Background = bg.RGBA()
	}

	// Frames are written from the callback, which runs right after each redraw.
	frame := 0
	var writeErr error
	cfg := script.Config()
	cfg.Logger = logger
	cfg.Callback = func(st joystick.StickStatus) {
		if writeErr != nil {
			return
		}
		fmt.Printf("  %3d  %s\n", frame, st)
		writeErr = writeFrame(canvas, *outDir, frame)
		frame++
	}

	js, err := joystick.New(canvas, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	g := js.Geometry()
	fmt.Printf("Replaying %d steps on %dx%d (stick radius %.1f, travel %.1f)\n",
		len(script.Steps), js.Width(), js.Height(), g.InternalRadius, g.MaxMoveStick)

	for i, ev := range events {
		step := script.Steps[i]
		logger.Debug("step", "index", i+1, "action", step.Action, "x", step.X, "y", step.Y)
		js.Handle(ev)
		if writeErr != nil {
			fmt.Fprintf(os.Stderr, "error writing frame: %v\n", writeErr)
			os.Exit(1)
		}
	}

	if frame == 0 {
		fmt.Fprintln(os.Stderr, "warning: script produced no frames")
	}

	if *gifPath != "" && frame > 0 {
		if err := makeGIF(*outDir, *gifPath, *fps); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Done.")
}

func writeFrame(canvas *joystick.Canvas, dir string, index int) error {
	filename := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", index))
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return f.Close()
}

// makeGIF stitches the frames with ffmpeg, two-pass for a better palette.
func makeGIF(dir, gifPath string, fps int) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: ffmpeg not found, skipping GIF generation")
		return nil
	}

	inputPattern := filepath.Join(dir, "frame_%03d.png")
	rate := fmt.Sprintf("%d", fps)
	palettePath := filepath.Join(dir, "palette.png")

	cmd1 := exec.Command("ffmpeg", "-y",
		"-framerate", rate,
		"-i", inputPattern,
		"-vf", "palettegen=max_colors=64",
		palettePath,
	)
	cmd1.Stderr = os.Stderr
	if err := cmd1.Run(); err != nil {
		return fmt.Errorf("ffmpeg palette error: %w", err)
	}

	cmd2 := exec.Command("ffmpeg", "-y",
		"-framerate", rate,
		"-i", inputPattern,
		"-i", palettePath,
		"-lavfi", "paletteuse",
		"-loop", "0",
		gifPath,
	)
	cmd2.Stderr = os.Stderr
	if err := cmd2.Run(); err != nil {
		return fmt.Errorf("ffmpeg GIF error: %w", err)
	}

	os.Remove(palettePath)
	fmt.Printf("  GIF → %s (%d FPS, loop forever)\n", gifPath, fps)
	return nil
}
