// Command bren draws 3D models and 2D shapes in the terminal using Braille
// characters, eight pixels per cell.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/bren/internal/config"
	"github.com/taigrr/bren/internal/logger"
	"go.uber.org/zap"
)

// interactive marks commands that take over the terminal. Console logging
// is off for them so log lines do not land on the frame.
var interactive = map[string]string{"interactive": "true"}

// app holds state shared by every command.
type app struct {
	flags config.Flags
	cfg   *config.Config
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bren",
		Short: "Braille terminal renderer",
		Long: `bren rasterizes OBJ and glTF models, procedural meshes and 2D shapes
into Braille characters. Every terminal cell holds a 2x4 block of pixels.

Settings are read from ./bren.yaml or the user config directory; flags
override the file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
	}
	a.flags.Register(root.PersistentFlags())

	root.AddCommand(
		newViewCmd(a),
		newFrameCmd(a),
		newPlaneCmd(a),
		newCirclesCmd(a),
		newInfoCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the config and starts the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.flags.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	var console io.Writer = cmd.ErrOrStderr()
	if cmd.Annotations["interactive"] == "true" {
		console = nil
	}
	if err := logger.Init(cfg.Logging.Level, console, cfg.Logging.LogFile); err != nil {
		return err
	}

	if cfg.Path != "" {
		logger.Info("config loaded", zap.String("path", cfg.Path))
	}
	logger.Sugar.Debugf("effective config: %+v", *cfg)
	return nil
}
