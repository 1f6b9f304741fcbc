package joystick

import (
	"io"
	"log/slog"
)

// Default parameter values applied to every unset Config field.
const (
	DefaultTitle               = "joystick"
	DefaultInternalFillColor   = "#00AA00"
	DefaultInternalLineWidth   = 2
	DefaultInternalStrokeColor = "#003300"
	DefaultExternalLineWidth   = 2
	DefaultExternalStrokeColor = "#008000"
	DefaultAutoReturnToCenter  = true
)

// Config controls the appearance and behavior of a joystick.
// The zero value is valid: every unset field takes its default.
type Config struct {
	// Title names the drawing surface created in the container (default: "joystick").
	Title string

	// Width and Height are the surface size in pixels. Values <= 0 fall back
	// to the container's size at construction time.
	Width  int
	Height int

	// InternalFillColor is the gradient start color of the stick (default: "#00AA00").
	InternalFillColor string

	// InternalLineWidth is the stick outline width (default: 2).
	InternalLineWidth float64

	// InternalStrokeColor is the stick outline color and gradient end (default: "#003300").
	InternalStrokeColor string

	// ExternalLineWidth is the reference ring width (default: 2).
	ExternalLineWidth float64

	// ExternalStrokeColor is the reference ring color (default: "#008000").
	ExternalStrokeColor string

	// AutoReturnToCenter snaps the stick back to center on release
	// (default: true). Use Bool to set it.
	AutoReturnToCenter *bool

	// Callback receives the stick status after every move and release.
	// Nil disables reporting.
	Callback func(StickStatus)

	// Logger receives construction diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Title:               DefaultTitle,
		InternalFillColor:   DefaultInternalFillColor,
		InternalLineWidth:   DefaultInternalLineWidth,
		InternalStrokeColor: DefaultInternalStrokeColor,
		ExternalLineWidth:   DefaultExternalLineWidth,
		ExternalStrokeColor: DefaultExternalStrokeColor,
		AutoReturnToCenter:  Bool(DefaultAutoReturnToCenter),
	}
}

// Bool returns a pointer to v, for Config.AutoReturnToCenter.
func Bool(v bool) *bool {
	return &v
}

// settings is the fully resolved form of Config.
type settings struct {
	title               string
	width, height       int
	internalFillColor   Color
	internalLineWidth   float64
	internalStrokeColor Color
	externalLineWidth   float64
	externalStrokeColor Color
	autoReturnToCenter  bool
	callback            func(StickStatus)
	logger              *slog.Logger
}

// resolve merges cfg over the defaults. Sizes <= 0 are taken from the
// container. Nothing is validated; an unparsable color keeps its default.
func resolve(cfg Config, container Container) settings {
	s := settings{
		title:              cfg.Title,
		width:              cfg.Width,
		height:             cfg.Height,
		internalLineWidth:  cfg.InternalLineWidth,
		externalLineWidth:  cfg.ExternalLineWidth,
		autoReturnToCenter: DefaultAutoReturnToCenter,
		callback:           cfg.Callback,
		logger:             cfg.Logger,
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.title == "" {
		s.title = DefaultTitle
	}
	if s.internalLineWidth <= 0 {
		s.internalLineWidth = DefaultInternalLineWidth
	}
	if s.externalLineWidth <= 0 {
		s.externalLineWidth = DefaultExternalLineWidth
	}
	if cfg.AutoReturnToCenter != nil {
		s.autoReturnToCenter = *cfg.AutoReturnToCenter
	}
	if s.callback == nil {
		s.callback = func(StickStatus) {}
	}

	if s.width <= 0 || s.height <= 0 {
		cw, ch := container.Size()
		if s.width <= 0 {
			s.width = cw
		}
		if s.height <= 0 {
			s.height = ch
		}
	}

	s.internalFillColor = resolveColor(s.logger, "internal fill", cfg.InternalFillColor, DefaultInternalFillColor)
	s.internalStrokeColor = resolveColor(s.logger, "internal stroke", cfg.InternalStrokeColor, DefaultInternalStrokeColor)
	s.externalStrokeColor = resolveColor(s.logger, "external stroke", cfg.ExternalStrokeColor, DefaultExternalStrokeColor)

	return s
}

func resolveColor(logger *slog.Logger, slot, value, fallback string) Color {
	def, _ := ParseHex(fallback)
	if value == "" {
		return def
	}
	c, err := ParseHex(value)
	if err != nil {
		logger.Warn("ignoring color", "slot", slot, "value", value, "error", err)
		return def
	}
	return c
}
