package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/taigrr/bren/internal/logger"
	"github.com/taigrr/bren/pkg/math3d"
	"github.com/taigrr/bren/pkg/render"
	"go.uber.org/zap"
)

func newFrameCmd(a *app) *cobra.Command {
	var (
		pngPath string
		rotate  []float64
		stats   bool
	)

	cmd := &cobra.Command{
		Use:   "frame [model.obj|model.glb]",
		Short: "Render one frame of a model to stdout",
		Long:  `Render one frame of a model to stdout. Without a model a cube is drawn.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rotate) != 3 {
				return fmt.Errorf("--rotate needs x,y,z, got %d values", len(rotate))
			}
			rot := math3d.V3(rotate[0], rotate[1], rotate[2])
			var statsOut io.Writer
			if stats {
				statsOut = cmd.ErrOrStderr()
			}
			return a.runFrame(cmd.OutOrStdout(), statsOut, modelArg(args), rot, pngPath)
		},
	}

	cmd.Flags().StringVar(&pngPath, "png", "", "also save the framebuffer as a PNG image")
	cmd.Flags().Float64SliceVar(&rotate, "rotate", []float64{0, 0, 0}, "rotation in degrees as x,y,z")
	cmd.Flags().BoolVar(&stats, "stats", false, "print face counts to stderr")
	return cmd
}

// modelArg returns the optional model path argument.
func modelArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// runFrame draws one frame to out. Face counts go to statsOut when it is not
// nil.
func (a *app) runFrame(out, statsOut io.Writer, path string, rot math3d.Vec3, pngPath string) error {
	model, err := loadModel(path)
	if err != nil {
		return err
	}
	mode, err := a.cfg.Mode()
	if err != nil {
		return err
	}

	cols, rows := a.cfg.Viewport.Columns, a.cfg.Viewport.Rows
	if cols == 0 || rows == 0 {
		cols, rows = terminalSize()
	}

	vp, err := a.newViewport(render.NewStreamSink(out), cols, rows)
	if err != nil {
		return err
	}
	r, err := a.newRenderer(vp, mode, true)
	if err != nil {
		return err
	}

	t := a.placeModel(model)
	t.Rotation = rot
	model.SetTransform(t)

	r.DrawObject(model)
	if err := r.Render(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	st := r.Stats()
	logger.Debug("frame drawn",
		zap.Int("faces", st.Faces),
		zap.Int("drawn", st.Drawn),
		zap.Int("unlit", st.Unlit),
		zap.Int("rejected", st.Rejected),
	)
	if statsOut != nil {
		fmt.Fprintf(statsOut, "faces=%d drawn=%d unlit=%d rejected=%d\n", st.Faces, st.Drawn, st.Unlit, st.Rejected)
	}

	if pngPath != "" {
		if err := r.Framebuffer().SavePNG(pngPath); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		logger.Info("png saved", zap.String("path", pngPath))
	}
	return nil
}
