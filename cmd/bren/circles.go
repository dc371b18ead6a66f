package main

import (
	"context"
	"fmt"
	"os"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/bren/pkg/render"
)

func newCirclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "circles",
		Short: "Draw growing circles, lines and labels",
		Long: `Draw a growing circle outline, a filled circle, two diagonals and a
frame on the 2D canvas.

Controls:
  Space       - Pause or resume
  Q/Esc       - Quit`,
		Args:        cobra.NoArgs,
		Annotations: interactive,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCircles(cmd.Context())
		},
	}
}

func (a *app) runCircles(ctx context.Context) error {
	sess, err := startSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	sink := render.NewStreamSink(os.Stdout)
	var c *render.Canvas
	build := func(cols, rows int) error {
		vp, err := a.newViewport(sink, cols, rows)
		if err != nil {
			return err
		}
		c = render.NewCanvas(vp)
		sink.Clear()
		return nil
	}
	if err := build(sess.width, sess.height); err != nil {
		return err
	}

	anim := a.cfg.Animation
	speed := newEasedSpeed(anim.FPS, 1, anim.SpringFrequency, anim.SpringDamping)
	grow := 0.0

	return sess.loop(ctx, anim.FPS, handlers{
		key: func(ev uv.KeyPressEvent) error {
			if ev.MatchString("space") {
				speed.Toggle()
			}
			return nil
		},
		resize: build,
		frame: func() error {
			w, h := c.Size()
			cx, cy := w/2, h/2
			maxR := max(min(cx, cy)-1, 1)

			grow += speed.Step()
			r := int(grow) % maxR

			c.Clear()
			c.DrawRectOutline(0, 0, w, h, render.ColorWhite)
			c.DrawRect(w-6, 0, 6, 6, render.RGB(255, 128, 0))
			c.DrawLine(0, 0, w-1, h-1, render.ColorYellow)
			c.DrawLine(0, h-1, w-1, 0, render.ColorYellow)
			c.DrawFilledCircle(cx, cy, maxR/4, render.ColorMagenta)
			c.DrawCircle(cx, cy, r, render.ColorCyan)
			// Punch out the center dot.
			c.DrawPixel(cx, cy, render.ColorBlack)
			c.WriteLabel(0, 0, fmt.Sprintf(" r=%d ", r))
			return c.Render()
		},
	})
}
