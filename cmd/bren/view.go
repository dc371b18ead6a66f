package main

import (
	"context"
	"fmt"
	"os"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/bren/pkg/math3d"
	"github.com/taigrr/bren/pkg/models"
	"github.com/taigrr/bren/pkg/render"
)

// nudge is the pitch or yaw added by one arrow key press, in degrees.
const nudge = 5

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view [model.obj|model.glb]",
		Short: "Spin a model in the terminal",
		Long: `Spin a model in the terminal.

Controls:
  Space       - Pause or resume the spin
  X           - Toggle wireframe and filled
  C           - Toggle glyph color
  R           - Reset rotation
  Arrows      - Nudge pitch and yaw
  Q/Esc       - Quit

Without a model a cube is shown.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: interactive,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runView(cmd.Context(), modelArg(args))
		},
	}
}

// viewer is the state of the view command.
type viewer struct {
	app   *app
	model *models.Model
	base  math3d.Transform
	mode  render.Mode
	sink  *render.StreamSink
	r     *render.Renderer
	spin  *easedSpeed

	pitch, yaw float64
	cols, rows int
}

func (a *app) runView(ctx context.Context, path string) error {
	model, err := loadModel(path)
	if err != nil {
		return err
	}
	mode, err := a.cfg.Mode()
	if err != nil {
		return err
	}

	anim := a.cfg.Animation
	v := &viewer{
		app:   a,
		model: model,
		base:  a.placeModel(model),
		mode:  mode,
		sink:  render.NewStreamSink(os.Stdout),
		spin:  newEasedSpeed(anim.FPS, anim.SpinSpeed/float64(anim.FPS), anim.SpringFrequency, anim.SpringDamping),
	}

	sess, err := startSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := v.resize(sess.width, sess.height); err != nil {
		return err
	}
	return sess.loop(ctx, anim.FPS, handlers{
		key:    v.key,
		resize: v.resize,
		frame:  v.frame,
	})
}

// resize rebuilds the viewport, camera and renderer for a terminal of
// cols x rows cells.
func (v *viewer) resize(cols, rows int) error {
	vp, err := v.app.newViewport(v.sink, cols, rows)
	if err != nil {
		return err
	}
	if v.r != nil {
		vp.Color = v.r.Viewport().Color
	}
	r, err := v.app.newRenderer(vp, v.mode, true)
	if err != nil {
		return err
	}
	v.r = r
	v.cols, v.rows = cols, rows
	v.sink.Clear()
	return nil
}

func (v *viewer) key(ev uv.KeyPressEvent) error {
	switch {
	case ev.MatchString("space"):
		v.spin.Toggle()
	case ev.MatchString("x"):
		if v.mode == render.ModeFilled {
			v.mode = render.ModeWireframe
		} else {
			v.mode = render.ModeFilled
		}
		return v.resize(v.cols, v.rows)
	case ev.MatchString("c"):
		vp := v.r.Viewport()
		vp.Color = !vp.Color
	case ev.MatchString("r"):
		v.pitch, v.yaw = 0, 0
		v.spin.Reset()
	case ev.MatchString("up"):
		v.pitch = wrapDegrees(v.pitch - nudge)
	case ev.MatchString("down"):
		v.pitch = wrapDegrees(v.pitch + nudge)
	case ev.MatchString("left"):
		v.yaw = wrapDegrees(v.yaw - nudge)
	case ev.MatchString("right"):
		v.yaw = wrapDegrees(v.yaw + nudge)
	}
	return nil
}

func (v *viewer) frame() error {
	v.yaw = wrapDegrees(v.yaw + v.spin.Step())

	t := v.base
	t.Rotation = math3d.V3(v.pitch, v.yaw, 0)
	v.model.SetTransform(t)

	v.r.Clear()
	v.r.DrawObject(v.model)
	v.r.WriteLabel(0, 0, v.status())
	return v.r.Render()
}

func (v *viewer) status() string {
	state := "spinning"
	if !v.spin.Running() {
		state = "paused"
	}
	return fmt.Sprintf(" %s | %d faces | %s | %s ", v.model.Name, v.model.FaceCount(), v.mode, state)
}
