// Package config handles loading, validating and saving bren settings.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/bren/internal/logger"
	"github.com/taigrr/bren/pkg/render"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all bren settings.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Camera    CameraConfig    `yaml:"camera"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`

	// Path is the file the config was read from, empty for defaults only.
	Path string `yaml:"-"`
}

// RenderConfig holds rasterizer settings.
type RenderConfig struct {
	Mode        string `yaml:"mode"`         // wireframe or filled
	Color       bool   `yaml:"color"`        // Per-glyph foreground color
	WireColor   string `yaml:"wire_color"`   // Hex color of wireframe edges
	ClearScreen bool   `yaml:"clear_screen"` // Erase the terminal before each frame
}

// CameraConfig holds projection settings.
type CameraConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	Near       float64 `yaml:"near"`
	Far        float64 `yaml:"far"`
	Distance   float64 `yaml:"distance"` // How far in front of the camera models are placed
}

// ViewportConfig holds the terminal area drawn into. Zero columns or rows
// mean the whole terminal.
type ViewportConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	X       int `yaml:"x"`
	Y       int `yaml:"y"`
}

// AnimationConfig holds frame rate and spin settings.
type AnimationConfig struct {
	FPS             int     `yaml:"fps"`
	SpinSpeed       float64 `yaml:"spin_speed"` // Degrees per second
	SpringFrequency float64 `yaml:"spring_frequency"`
	SpringDamping   float64 `yaml:"spring_damping"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Mode:      render.ModeWireframe.String(),
			Color:     true,
			WireColor: "#ffffff",
		},
		Camera: CameraConfig{
			FOVDegrees: 90,
			Near:       1,
			Far:        1000,
			Distance:   5,
		},
		Animation: AnimationConfig{
			FPS:             30,
			SpinSpeed:       60,
			SpringFrequency: 4,
			SpringDamping:   1,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Validate returns the first invalid setting, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	if _, err := render.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("%w: render.mode: %w", ErrInvalid, err)
	}
	if _, err := c.WireRGBA(); err != nil {
		return fmt.Errorf("%w: render.wire_color: %w", ErrInvalid, err)
	}

	switch {
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("%w: camera.fov_degrees %v must be in (0, 180)", ErrInvalid, c.Camera.FOVDegrees)
	case c.Camera.Near <= 0:
		return fmt.Errorf("%w: camera.near %v must be positive", ErrInvalid, c.Camera.Near)
	case c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera.far %v must be greater than near", ErrInvalid, c.Camera.Far)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera.distance %v must be positive", ErrInvalid, c.Camera.Distance)
	case c.Viewport.Columns < 0 || c.Viewport.Rows < 0:
		return fmt.Errorf("%w: viewport size %dx%d is negative", ErrInvalid, c.Viewport.Columns, c.Viewport.Rows)
	case c.Viewport.X < 0 || c.Viewport.Y < 0:
		return fmt.Errorf("%w: viewport origin (%d, %d) is negative", ErrInvalid, c.Viewport.X, c.Viewport.Y)
	case c.Animation.FPS < 1 || c.Animation.FPS > 240:
		return fmt.Errorf("%w: animation.fps %d must be in [1, 240]", ErrInvalid, c.Animation.FPS)
	case c.Animation.SpringFrequency <= 0:
		return fmt.Errorf("%w: animation.spring_frequency must be positive", ErrInvalid)
	case c.Animation.SpringDamping < 0:
		return fmt.Errorf("%w: animation.spring_damping must not be negative", ErrInvalid)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}
	return nil
}

// Mode returns the parsed render mode.
func (c *Config) Mode() (render.Mode, error) {
	return render.ParseMode(c.Render.Mode)
}

// WireRGBA parses Render.WireColor, a hex color such as "#00ff00".
func (c *Config) WireRGBA() (color.RGBA, error) {
	col, err := colorful.Hex(c.Render.WireColor)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
