package render

import (
	"image/color"

	"github.com/taigrr/bren/internal/logger"
	"go.uber.org/zap"
)

// Canvas is a 2D drawing surface the size of a viewport. Each frame is
// Clear, any number of draw calls and labels, then Render.
type Canvas struct {
	vp     *Viewport
	fb     *Framebuffer
	labels []Label
}

// NewCanvas creates a canvas with a framebuffer that exactly covers vp.
func NewCanvas(vp *Viewport) *Canvas {
	w, h := vp.Size()
	return &Canvas{vp: vp, fb: NewFramebuffer(w, h)}
}

// Viewport returns the viewport the canvas renders to.
func (c *Canvas) Viewport() *Viewport {
	return c.vp
}

// Framebuffer returns the pixel buffer.
func (c *Canvas) Framebuffer() *Framebuffer {
	return c.fb
}

// Size returns the drawable area in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.fb.Width, c.fb.Height
}

// Clear turns every pixel off and drops all labels.
func (c *Canvas) Clear() {
	c.fb.Reset()
	c.labels = c.labels[:0]
}

// DrawPixel lights (x, y). Off-canvas pixels are ignored.
func (c *Canvas) DrawPixel(x, y int, col color.RGBA) {
	c.fb.SetPixel(x, y, col)
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	c.fb.DrawLine(x0, y0, x1, y1, col)
}

// DrawCircle draws a circle outline.
func (c *Canvas) DrawCircle(cx, cy, r int, col color.RGBA) {
	c.fb.DrawCircle(cx, cy, r, col)
}

// DrawFilledCircle draws a filled circle.
func (c *Canvas) DrawFilledCircle(cx, cy, r int, col color.RGBA) {
	c.fb.DrawFilledCircle(cx, cy, r, col)
}

// DrawRect fills a w x h rectangle whose lower left corner is (x, y).
func (c *Canvas) DrawRect(x, y, w, h int, col color.RGBA) {
	c.fb.DrawRect(x, y, w, h, col)
}

// DrawRectOutline draws the border of a w x h rectangle.
func (c *Canvas) DrawRectOutline(x, y, w, h int, col color.RGBA) {
	c.fb.DrawRectOutline(x, y, w, h, col)
}

// WriteLabel queues text at a cell position relative to the viewport. Labels
// are drawn over the glyphs on the next Render.
func (c *Canvas) WriteLabel(col, row int, text string) {
	c.labels = append(c.labels, Label{Col: col, Row: row, Text: text})
}

// Render encodes the framebuffer and writes it through the viewport.
func (c *Canvas) Render() error {
	if err := c.vp.Draw(c.fb.Glyphs(), c.labels); err != nil {
		logger.Error("render frame", zap.Error(err))
		return err
	}
	return nil
}
