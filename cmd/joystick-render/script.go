package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/satindergrewal/joystick"
	"gopkg.in/yaml.v3"
)

// Script describes a joystick and the input to replay against it.
type Script struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Background string        `yaml:"background,omitempty"`
	Joystick   JoystickStyle `yaml:"joystick"`
	Steps      []Step        `yaml:"steps"`
}

// JoystickStyle mirrors joystick.Config in file form.
type JoystickStyle struct {
	Title               string  `yaml:"title,omitempty"`
	InternalFillColor   string  `yaml:"internal_fill_color,omitempty"`
	InternalLineWidth   float64 `yaml:"internal_line_width,omitempty"`
	InternalStrokeColor string  `yaml:"internal_stroke_color,omitempty"`
	ExternalLineWidth   float64 `yaml:"external_line_width,omitempty"`
	ExternalStrokeColor string  `yaml:"external_stroke_color,omitempty"`
	AutoReturnToCenter  *bool   `yaml:"auto_return_to_center,omitempty"`
}

// Step is one input event: "press", "release" or "move" with X/Y.
type Step struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
}

// DefaultScript is replayed when no script file is given.
func DefaultScript() Script {
	return Script{
		Width:  300,
		Height: 300,
		Steps: []Step{
			{Action: "press"},
			{Action: "move", X: 150, Y: 150},
			{Action: "move", X: 227, Y: 150},
			{Action: "move", X: 150, Y: 73},
			{Action: "move", X: 220, Y: 80},
			{Action: "move", X: -1000, Y: 5000},
			{Action: "release"},
		},
	}
}

// LoadScript reads a YAML script. Unknown keys are rejected.
func LoadScript(path string) (Script, error) {
	if path == "" {
		return Script{}, errors.New("script path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(b)
}

// ParseScript decodes and checks a YAML script.
func ParseScript(b []byte) (Script, error) {
	var s Script

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decode script yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Script{}, errors.New("decode script yaml: unexpected trailing document")
	}

	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks the surface size and step actions.
func (s Script) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := joystick.ParseHex(s.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	_, err := s.Events()
	return err
}

// Events converts the steps to joystick input, in order.
func (s Script) Events() ([]joystick.Event, error) {
	events := make([]joystick.Event, 0, len(s.Steps))
	for i, st := range s.Steps {
		ev, err := st.Event()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Config converts the style section to a joystick configuration.
func (s Script) Config() joystick.Config {
	return joystick.Config{
		Title:               s.Joystick.Title,
		Width:               s.Width,
		Height:              s.Height,
		InternalFillColor:   s.Joystick.InternalFillColor,
		InternalLineWidth:   s.Joystick.InternalLineWidth,
		InternalStrokeColor: s.Joystick.InternalStrokeColor,
		ExternalLineWidth:   s.Joystick.ExternalLineWidth,
		ExternalStrokeColor: s.Joystick.ExternalStrokeColor,
		AutoReturnToCenter:  s.Joystick.AutoReturnToCenter,
	}
}

// Event converts the step to a joystick event.
func (st Step) Event() (joystick.Event, error) {
	switch strings.ToLower(st.Action) {
	case "press", "down":
		return joystick.Event{Pressed: true}, nil
	case "release", "up":
		return joystick.Event{Released: true}, nil
	case "move":
		return joystick.Event{X: st.X, Y: st.Y}, nil
	default:
		return joystick.Event{}, fmt.Errorf("unknown action %q", st.Action)
	}
}
