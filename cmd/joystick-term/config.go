package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/satindergrewal/joystick"
)

// config is the optional TOML file of the terminal host. It is only read;
// the program never writes it back.
type config struct {
	Title               string  `toml:"title"`
	Width               int     `toml:"width"`
	Height              int     `toml:"height"`
	InternalFillColor   string  `toml:"internal_fill_color"`
	InternalLineWidth   float64 `toml:"internal_line_width"`
	InternalStrokeColor string  `toml:"internal_stroke_color"`
	ExternalLineWidth   float64 `toml:"external_line_width"`
	ExternalStrokeColor string  `toml:"external_stroke_color"`
	AutoReturnToCenter  *bool   `toml:"auto_return_to_center"`
	Sound               bool    `toml:"sound"`
}

const configFile = "config.toml"

// readConfig loads path. A missing file yields the zero config, which
// leaves every joystick parameter at its default.
func readConfig(logger *slog.Logger, path string) (config, error) {
	var conf config

	ok, err := exists(path)
	if err != nil {
		return conf, fmt.Errorf("couldn't check config file: %w", err)
	}
	if !ok {
		logger.Info("no config file, using defaults", "path", path)
		return conf, nil
	}

	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return config{}, fmt.Errorf("couldn't read config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	logger.Info("loaded config", "path", path)
	return conf, nil
}

// joystickConfig converts the file settings to a joystick configuration.
func (c config) joystickConfig() joystick.Config {
	return joystick.Config{
		Title:               c.Title,
		Width:               c.Width,
		Height:              c.Height,
		InternalFillColor:   c.InternalFillColor,
		InternalLineWidth:   c.InternalLineWidth,
		InternalStrokeColor: c.InternalStrokeColor,
		ExternalLineWidth:   c.ExternalLineWidth,
		ExternalStrokeColor: c.ExternalStrokeColor,
		AutoReturnToCenter:  c.AutoReturnToCenter,
	}
}

func configPath() string {
	return filepath.Join(configDir(), configFile)
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "joystick")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	return fallback
}
