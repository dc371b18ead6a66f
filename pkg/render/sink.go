package render

import (
	"bufio"
	"image/color"
	"io"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-runewidth"
)

// Sink receives positioned text for one frame. Cells are 0-based terminal
// columns and rows. Nothing has to reach the terminal before Flush.
type Sink interface {
	// Clear erases the whole terminal.
	Clear()
	// Put writes text starting at (col, row). A nil fg keeps the terminal's
	// default foreground.
	Put(col, row int, text string, fg color.Color)
	// Flush pushes the frame out.
	Flush() error
}

// StreamSink writes ANSI escape sequences to a byte stream such as os.Stdout.
// Cursor moves and color changes are only emitted when they change
// something.
type StreamSink struct {
	w *bufio.Writer

	col, row int // cursor position after the last write, -1 if unknown
	fg       color.Color
}

// NewStreamSink creates a sink that buffers a frame and writes it to w on
// Flush.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: bufio.NewWriterSize(w, 64*1024), col: -1, row: -1}
}

// Clear queues an erase of the entire screen.
func (s *StreamSink) Clear() {
	s.w.WriteString(ansi.EraseEntireScreen)
}

// Put queues text at (col, row).
func (s *StreamSink) Put(col, row int, text string, fg color.Color) {
	if col != s.col || row != s.row {
		s.w.WriteString(ansi.CursorPosition(col+1, row+1))
	}
	if !sameColor(fg, s.fg) {
		if fg == nil {
			s.w.WriteString(ansi.ResetStyle)
		} else {
			s.w.WriteString(ansi.Style{}.ForegroundColor(fg).String())
		}
		s.fg = fg
	}
	s.w.WriteString(text)
	s.col, s.row = col+runewidth.StringWidth(text), row
}

// Flush resets any active color and writes the buffered frame. The cursor
// position is forgotten, since other writers may move it between frames.
func (s *StreamSink) Flush() error {
	if s.fg != nil {
		s.w.WriteString(ansi.ResetStyle)
		s.fg = nil
	}
	s.col, s.row = -1, -1
	return s.w.Flush()
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// CellSetter is the part of an ultraviolet screen a ScreenSink draws into.
// Any uv.Screen satisfies it.
type CellSetter interface {
	SetCell(x, y int, c *uv.Cell)
}

// ScreenSink writes glyphs as cells into an ultraviolet screen. The screen
// decides how and when cells reach the terminal; Flush only calls the
// optional flush hook.
type ScreenSink struct {
	scr   CellSetter
	erase func()
	flush func() error
}

// NewScreenSink wraps scr. erase and flush may be nil.
func NewScreenSink(scr CellSetter, erase func(), flush func() error) *ScreenSink {
	return &ScreenSink{scr: scr, erase: erase, flush: flush}
}

// Clear calls the erase hook.
func (s *ScreenSink) Clear() {
	if s.erase != nil {
		s.erase()
	}
}

// Put sets one cell per rune of text, starting at (col, row).
func (s *ScreenSink) Put(col, row int, text string, fg color.Color) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.scr.SetCell(col, row, &uv.Cell{
			Content: string(r),
			Width:   w,
			Style:   uv.Style{Fg: fg},
		})
		col += w
	}
}

// Flush calls the flush hook.
func (s *ScreenSink) Flush() error {
	if s.flush == nil {
		return nil
	}
	return s.flush()
}

// TerminalSize reports the size in cells of the terminal behind fd.
func TerminalSize(fd uintptr) (cols, rows int, err error) {
	return term.GetSize(fd)
}
