package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/taigrr/bren/pkg/braille"
)

// ErrEmptyViewport is returned for a viewport without any cells.
var ErrEmptyViewport = errors.New("viewport has no cells")

// Label is text drawn on top of a frame, after the glyphs.
type Label struct {
	Col, Row int
	Text     string
}

// Viewport is a rectangle of terminal cells, Cols x Rows, whose top left
// cell is (X0, Y0). It owns the sink frames are written to.
type Viewport struct {
	Cols, Rows int
	X0, Y0     int

	// Color sends each glyph with the mean color of its dots. When false the
	// terminal's default foreground is used.
	Color bool

	// ClearScreen erases the whole terminal before each frame.
	ClearScreen bool

	sink Sink
}

// NewViewport creates a viewport of cols x rows cells at (x0, y0).
func NewViewport(sink Sink, cols, rows, x0, y0 int) (*Viewport, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyViewport, cols, rows)
	}
	return &Viewport{
		Cols:  cols,
		Rows:  rows,
		X0:    max(x0, 0),
		Y0:    max(y0, 0),
		Color: true,
		sink:  sink,
	}, nil
}

// Size returns the framebuffer dimensions in pixels that fill the viewport.
func (v *Viewport) Size() (width, height int) {
	return v.Cols * braille.BlockWidth, v.Rows * braille.BlockHeight
}

// Aspect returns the pixel aspect ratio width/height of the viewport.
func (v *Viewport) Aspect() float64 {
	w, h := v.Size()
	return float64(w) / float64(h)
}

// Draw writes glyphs at the viewport origin offset by their column and row,
// then the labels, then flushes the sink once. Glyphs and labels outside the
// viewport are skipped.
func (v *Viewport) Draw(glyphs []Glyph, labels []Label) error {
	if v.ClearScreen {
		v.sink.Clear()
	}

	for _, g := range glyphs {
		if g.Col < 0 || g.Col >= v.Cols || g.Row < 0 || g.Row >= v.Rows {
			continue
		}
		var fg color.Color
		if v.Color {
			fg = g.Color
		}
		v.sink.Put(v.X0+g.Col, v.Y0+g.Row, string(g.Rune), fg)
	}

	for _, l := range labels {
		if l.Row < 0 || l.Row >= v.Rows || l.Col < 0 || l.Col >= v.Cols {
			continue
		}
		text := []rune(l.Text)
		if n := v.Cols - l.Col; len(text) > n {
			text = text[:n]
		}
		v.sink.Put(v.X0+l.Col, v.Y0+l.Row, string(text), nil)
	}

	if err := v.sink.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
