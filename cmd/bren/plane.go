package main

import (
	"context"
	"fmt"
	"os"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/bren/pkg/models"
	"github.com/taigrr/bren/pkg/render"
)

// waveStep is how far the wave phase moves per frame at full speed.
const waveStep = 0.1

func newPlaneCmd(a *app) *cobra.Command {
	var (
		div      int
		width    float64
		tilt     float64
		distance float64
		flat     bool
	)

	cmd := &cobra.Command{
		Use:   "plane",
		Short: "Animate a rippling height field",
		Long: `Animate a subdivided plane whose heights follow a moving sine wave.

Controls:
  Space       - Pause or resume the wave
  X           - Toggle wireframe and filled
  Q/Esc       - Quit`,
		Args:        cobra.NoArgs,
		Annotations: interactive,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if div < 1 {
				return fmt.Errorf("--div must be at least 1, got %d", div)
			}
			return a.runPlane(cmd.Context(), div, width, tilt, distance, flat)
		},
	}

	cmd.Flags().IntVar(&div, "div", 16, "subdivisions per side")
	cmd.Flags().Float64Var(&width, "width", 5, "side length in world units")
	cmd.Flags().Float64Var(&tilt, "tilt", -20, "rotation about x in degrees")
	cmd.Flags().Float64Var(&distance, "distance", 10, "distance from the camera")
	cmd.Flags().BoolVar(&flat, "flat", false, "draw a still, flat plane")
	return cmd
}

func (a *app) runPlane(ctx context.Context, div int, width, tilt, distance float64, flat bool) error {
	mode, err := a.cfg.Mode()
	if err != nil {
		return err
	}

	sess, err := startSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	sink := render.NewStreamSink(os.Stdout)
	var r *render.Renderer
	build := func(cols, rows int) error {
		vp, err := a.newViewport(sink, cols, rows)
		if err != nil {
			return err
		}
		r, err = a.newRenderer(vp, mode, true)
		sink.Clear()
		return err
	}
	if err := build(sess.width, sess.height); err != nil {
		return err
	}

	anim := a.cfg.Animation
	speed := newEasedSpeed(anim.FPS, waveStep, anim.SpringFrequency, anim.SpringDamping)
	phase := 0.0

	return sess.loop(ctx, anim.FPS, handlers{
		key: func(ev uv.KeyPressEvent) error {
			switch {
			case ev.MatchString("space"):
				speed.Toggle()
			case ev.MatchString("x"):
				if mode == render.ModeFilled {
					mode = render.ModeWireframe
				} else {
					mode = render.ModeFilled
				}
				return build(sess.width, sess.height)
			}
			return nil
		},
		resize: build,
		frame: func() error {
			var (
				plane *models.Model
				err   error
			)
			if flat {
				plane, err = models.NewPlane(div, width)
			} else {
				plane, err = models.NewHeightField(div, width, models.Wave(phase))
			}
			if err != nil {
				return err
			}
			phase += speed.Step()

			plane.Translate(0, 0, -distance)
			plane.Rotate(tilt, 0, 0)

			r.Clear()
			r.DrawObject(plane)
			return r.Render()
		},
	})
}
