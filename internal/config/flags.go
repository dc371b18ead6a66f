package config

import "github.com/spf13/pflag"

// Flags are the command line overrides shared by every command. Only flags
// the user actually set replace file values.
type Flags struct {
	Config   string
	Mode     string
	Color    bool
	FPS      int
	FOV      float64
	Cols     int
	Rows     int
	LogLevel string
	LogFile  string
}

// Register adds the flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	d := Default()
	fs.StringVar(&f.Config, "config", "", "path to config file")
	fs.StringVarP(&f.Mode, "mode", "m", d.Render.Mode, "render mode (wireframe, filled)")
	fs.BoolVar(&f.Color, "color", d.Render.Color, "color glyphs by their dots")
	fs.IntVar(&f.FPS, "fps", d.Animation.FPS, "target frames per second")
	fs.Float64Var(&f.FOV, "fov", d.Camera.FOVDegrees, "vertical field of view in degrees")
	fs.IntVar(&f.Cols, "cols", 0, "viewport columns (0 = terminal width)")
	fs.IntVar(&f.Rows, "rows", 0, "viewport rows (0 = terminal height)")
	fs.StringVar(&f.LogLevel, "log-level", d.Logging.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "write JSON logs to this file")
}

// Apply copies the flags the user set in fs over cfg.
func (f *Flags) Apply(cfg *Config, fs *pflag.FlagSet) {
	if fs.Changed("mode") {
		cfg.Render.Mode = f.Mode
	}
	if fs.Changed("color") {
		cfg.Render.Color = f.Color
	}
	if fs.Changed("fps") {
		cfg.Animation.FPS = f.FPS
	}
	if fs.Changed("fov") {
		cfg.Camera.FOVDegrees = f.FOV
	}
	if fs.Changed("cols") {
		cfg.Viewport.Columns = f.Cols
	}
	if fs.Changed("rows") {
		cfg.Viewport.Rows = f.Rows
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = f.LogLevel
	}
	if fs.Changed("log-file") {
		cfg.Logging.LogFile = f.LogFile
	}
}

// Load reads the config named by the --config flag (or the standard
// locations), applies the changed flags and validates the result.
func (f *Flags) Load(fs *pflag.FlagSet) (*Config, error) {
	cfg, err := Load(f.Config)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg, fs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
