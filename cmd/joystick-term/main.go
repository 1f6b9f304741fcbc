// Command joystick-term shows a virtual joystick in the terminal. Drag the
// stick with the mouse; the normalized position and direction are shown on
// the status line.
//
// Appearance is read from $XDG_CONFIG_HOME/joystick/config.toml when present.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/satindergrewal/joystick"
	"github.com/satindergrewal/joystick/internal/logging"
)

func main() {
	confPath := flag.String("config", configPath(), "TOML config file")
	logPath := flag.String("log", "", "Write logs to this file (default: discard)")
	logLevel := flag.String("log-level", "info", "Log level: error, warn, info, debug")
	sound := flag.Bool("sound", false, "Click when the direction changes (overrides config)")
	flag.Parse()

	logger, closeLog, err := openLog(*logPath, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	conf, err := readConfig(logger, *confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(logger, conf, conf.Sound || *sound); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openLog(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return logging.Discard(), func() {}, nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, lvl), func() { f.Close() }, nil
}

func run(logger *slog.Logger, conf config, sound bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	screen.Clear()

	host := newTermHost(screen, logger)

	if sound {
		c, err := newClicker()
		if err != nil {
			// Non-fatal, the joystick works without sound
			logger.Warn("audio initialization failed", "error", err)
		} else {
			defer c.Close()
			host.onTurn = c.click
		}
	}

	cfg := conf.joystickConfig()
	cfg.Logger = logger
	cfg.Callback = host.onStatus

	js, err := joystick.New(host, cfg)
	if err != nil {
		return err
	}
	host.bind(js)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventMouse:
			host.handleMouse(ev)
		case *tcell.EventResize:
			// Geometry is fixed at construction; just repaint.
			screen.Clear()
			host.draw(js.Status())
			screen.Sync()
		}
	}
}
