// Package render rasterizes models and 2D primitives into a pixel grid and
// encodes that grid as Braille glyphs for a character-cell terminal.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/bren/pkg/braille"
)

// Framebuffer is a grid of pixels addressed (x, y) with y growing upward:
// row y = Height-1 is the top of the output. A pixel is lit when any of its
// RGB channels is non-zero.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major, index y*Width + x
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Reset turns every pixel off.
func (fb *Framebuffer) Reset() {
	clear(fb.Pixels)
}

// SetPixel sets a pixel at (x, y) to the given color.
// Writes outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Lit reports whether the pixel at (x, y) is on.
func (fb *Framebuffer) Lit(x, y int) bool {
	return lit(fb.GetPixel(x, y))
}

func lit(c color.RGBA) bool {
	return c.R != 0 || c.G != 0 || c.B != 0
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	Line(x0, y0, x1, y1, func(x, y int) { fb.SetPixel(x, y, c) })
}

// DrawCircle draws a circle outline centered on (cx, cy).
func (fb *Framebuffer) DrawCircle(cx, cy, r int, c color.RGBA) {
	Circle(cx, cy, r, func(x, y int) { fb.SetPixel(x, y, c) })
}

// DrawFilledCircle fills a circle by drawing spokes from the rim to the
// center.
func (fb *Framebuffer) DrawFilledCircle(cx, cy, r int, c color.RGBA) {
	FilledCircle(cx, cy, r, func(x0, y0, x1, y1 int) { fb.DrawLine(x0, y0, x1, y1, c) })
}

// DrawRect draws a filled rectangle with (x, y) as its lower left corner.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// DrawRectOutline draws a rectangle outline.
func (fb *Framebuffer) DrawRectOutline(x, y, w, h int, c color.RGBA) {
	// Top and bottom
	for px := x; px < x+w; px++ {
		fb.SetPixel(px, y, c)
		fb.SetPixel(px, y+h-1, c)
	}
	// Left and right
	for py := y; py < y+h; py++ {
		fb.SetPixel(x, py, c)
		fb.SetPixel(x+w-1, py, c)
	}
}

// Bitmap returns the lit state of every pixel as a screen-oriented grid
// indexed [x][row], where row 0 is the top of the output (y = Height-1).
func (fb *Framebuffer) Bitmap() [][]bool {
	grid := make([][]bool, fb.Width)
	for x := range grid {
		grid[x] = make([]bool, fb.Height)
		for row := range fb.Height {
			grid[x][row] = fb.Lit(x, fb.Height-1-row)
		}
	}
	return grid
}

// Glyph is one encoded terminal cell.
type Glyph struct {
	Col, Row int
	Rune     rune
	Color    color.RGBA // Mean of the eight dot colors
}

// Glyphs encodes the framebuffer as Braille glyphs. Block rows are scanned
// from the highest y downward in steps of four and columns left to right in
// steps of two, so Row 0 is the top line of output.
func (fb *Framebuffer) Glyphs() []Glyph {
	runes := braille.Encode(fb.Bitmap())
	cols, _ := braille.Dims(fb.Width, fb.Height)

	glyphs := make([]Glyph, len(runes))
	for i, r := range runes {
		col, row := i%cols, i/cols
		glyphs[i] = Glyph{Col: col, Row: row, Rune: r, Color: fb.blockColor(col, row)}
	}
	return glyphs
}

// blockColor averages the eight pixels under glyph (col, row).
func (fb *Framebuffer) blockColor(col, row int) color.RGBA {
	var dots [braille.BlockWidth * braille.BlockHeight]color.RGBA
	top := fb.Height - 1 - row*braille.BlockHeight
	for dx := range braille.BlockWidth {
		for dy := range braille.BlockHeight {
			dots[dx*braille.BlockHeight+dy] = fb.GetPixel(col*braille.BlockWidth+dx, top-dy)
		}
	}
	return braille.Average(dots)
}

// ToImage converts the framebuffer to a standard Go image.RGBA with y flipped
// so the image reads the same way as the terminal output.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.Pixels[y*fb.Width+x]
			c.A = 255
			img.SetRGBA(x, fb.Height-1-y, c)
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
