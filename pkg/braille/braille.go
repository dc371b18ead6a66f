// Package braille packs 2x4 pixel blocks into Unicode Braille Patterns
// (U+2800 to U+28FF), giving each terminal cell eight addressable dots.
package braille

import "image/color"

const (
	// Blank is the empty Braille pattern.
	Blank rune = 0x2800

	// BlockWidth and BlockHeight are the dot dimensions of one glyph.
	BlockWidth  = 2
	BlockHeight = 4
)

// dotBits maps [column][row] to the bit of the dot in the pattern byte.
// Bit order is left0, left1, left2, right0, right1, right2, left3, right3.
var dotBits = [BlockWidth][BlockHeight]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Block is one glyph worth of dots, indexed [column][row] with row 0 at the
// top of the glyph.
type Block [BlockWidth][BlockHeight]bool

// Set lights the dot at (col, row). Out of range dots are ignored.
func (b *Block) Set(col, row int) {
	if col < 0 || col >= BlockWidth || row < 0 || row >= BlockHeight {
		return
	}
	b[col][row] = true
}

// Pattern returns the 8-bit dot pattern.
func (b Block) Pattern() uint8 {
	var p uint8
	for col := range BlockWidth {
		for row := range BlockHeight {
			if b[col][row] {
				p |= dotBits[col][row]
			}
		}
	}
	return p
}

// Rune returns the Braille character for the block.
func (b Block) Rune() rune {
	return Blank + rune(b.Pattern())
}

// Dims returns the number of glyph columns and rows needed to cover a
// width x height dot grid.
func Dims(width, height int) (cols, rows int) {
	return (width + BlockWidth - 1) / BlockWidth, (height + BlockHeight - 1) / BlockHeight
}

// Encode packs a dot grid into glyphs. grid is indexed [x][y] with y = 0 at
// the top. Glyphs are returned row by row from the top, left to right within a
// row. Columns may be ragged; missing dots are unlit.
func Encode(grid [][]bool) []rune {
	height := 0
	for _, col := range grid {
		height = max(height, len(col))
	}
	cols, rows := Dims(len(grid), height)

	out := make([]rune, 0, cols*rows)
	for by := range rows {
		for bx := range cols {
			var b Block
			for dx := range BlockWidth {
				x := bx*BlockWidth + dx
				if x >= len(grid) {
					continue
				}
				for dy := range BlockHeight {
					y := by*BlockHeight + dy
					if y < len(grid[x]) && grid[x][y] {
						b[dx][dy] = true
					}
				}
			}
			out = append(out, b.Rune())
		}
	}
	return out
}

// Average returns the per-channel mean of the eight dot colors, truncated.
// Unlit dots count as black, so sparse blocks come out darker.
func Average(dots [BlockWidth * BlockHeight]color.RGBA) color.RGBA {
	var r, g, b int
	for _, c := range dots {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(dots)
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}
