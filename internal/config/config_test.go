package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/taigrr/bren/pkg/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Mode != "wireframe" {
		t.Errorf("expected mode wireframe, got %s", cfg.Render.Mode)
	}
	if !cfg.Render.Color {
		t.Error("expected color to be on by default")
	}
	if cfg.Camera.FOVDegrees != 90 || cfg.Camera.Near != 1 || cfg.Camera.Far != 1000 {
		t.Errorf("unexpected camera defaults %+v", cfg.Camera)
	}
	if cfg.Animation.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Animation.FPS)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bren.yaml")
	yamlContent := `
render:
  mode: filled
  wire_color: "#00ff00"
camera:
  fov_degrees: 60
viewport:
  columns: 40
  rows: 12
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Path != path {
		t.Errorf("expected path %s, got %s", path, cfg.Path)
	}
	if cfg.Render.Mode != "filled" {
		t.Errorf("expected mode filled, got %s", cfg.Render.Mode)
	}
	if cfg.Camera.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Camera.FOVDegrees)
	}
	if cfg.Viewport.Columns != 40 || cfg.Viewport.Rows != 12 {
		t.Errorf("expected viewport 40x12, got %dx%d", cfg.Viewport.Columns, cfg.Viewport.Rows)
	}
	// Values missing from the file keep their defaults.
	if cfg.Camera.Far != 1000 || !cfg.Render.Color || cfg.Animation.FPS != 30 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", write("bad.yaml", "render: [unclosed")},
		{"unknown key", write("unknown.yaml", "render:\n  shading: phong\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Errorf("Load(%s) should fail", tt.path)
			}
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Mode != Default().Render.Mode {
		t.Errorf("expected defaults, got mode %s", cfg.Render.Mode)
	}
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := os.WriteFile("bren.yaml", []byte("animation:\n  fps: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Animation.FPS != 12 {
		t.Errorf("expected fps 12 from ./bren.yaml, got %d", cfg.Animation.FPS)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("expected no config path, got %s", cfg.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Render.Mode = "points" }},
		{"bad wire color", func(c *Config) { c.Render.WireColor = "green" }},
		{"zero fov", func(c *Config) { c.Camera.FOVDegrees = 0 }},
		{"straight fov", func(c *Config) { c.Camera.FOVDegrees = 180 }},
		{"zero near", func(c *Config) { c.Camera.Near = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.5 }},
		{"zero distance", func(c *Config) { c.Camera.Distance = 0 }},
		{"negative columns", func(c *Config) { c.Viewport.Columns = -1 }},
		{"negative origin", func(c *Config) { c.Viewport.Y = -3 }},
		{"zero fps", func(c *Config) { c.Animation.FPS = 0 }},
		{"zero spring frequency", func(c *Config) { c.Animation.SpringFrequency = 0 }},
		{"negative damping", func(c *Config) { c.Animation.SpringDamping = -1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateModeError(t *testing.T) {
	cfg := Default()
	cfg.Render.Mode = "points"
	if err := cfg.Validate(); !errors.Is(err, render.ErrUnknownMode) {
		t.Errorf("Validate() = %v, want ErrUnknownMode", err)
	}
}

func TestWireRGBA(t *testing.T) {
	cfg := Default()
	cfg.Render.WireColor = "#ff8000"

	got, err := cfg.WireRGBA()
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGBA{255, 128, 0, 255}); got != want {
		t.Errorf("WireRGBA() = %v, want %v", got, want)
	}
}

func TestFlagsApplyOnlyChanged(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)

	if err := fs.Parse([]string{"--mode", "filled", "--cols", "20"}); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Animation.FPS = 15 // from a file, untouched by the --fps default
	f.Apply(cfg, fs)

	if cfg.Render.Mode != "filled" {
		t.Errorf("expected mode filled, got %s", cfg.Render.Mode)
	}
	if cfg.Viewport.Columns != 20 {
		t.Errorf("expected 20 columns, got %d", cfg.Viewport.Columns)
	}
	if cfg.Animation.FPS != 15 {
		t.Errorf("expected fps 15 to survive, got %d", cfg.Animation.FPS)
	}
}

func TestFlagsLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse([]string{"--fov", "200"}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.Load(fs); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, want ErrInvalid", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Render.Mode = "filled"
	cfg.Viewport.X = 4
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Render.Mode != "filled" || loaded.Viewport.X != 4 {
		t.Errorf("saved config not restored: %+v", loaded)
	}
}

func TestConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies on unix")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got, want := DefaultPath(), filepath.Join("/tmp/xdg", "bren", "config.yaml"); got != want {
		t.Errorf("DefaultPath() = %s, want %s", got, want)
	}
}
