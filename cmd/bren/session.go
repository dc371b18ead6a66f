package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/bren/internal/logger"
	"go.uber.org/zap"
)

// session owns the terminal while an interactive command runs: raw input,
// the alternate screen and a hidden cursor. Frames are written to stdout by
// a StreamSink; the terminal supplies the lifecycle and input events.
type session struct {
	term          *uv.Terminal
	width, height int
}

// handlers are the callbacks of session.loop. Any of them may be nil.
type handlers struct {
	key    func(uv.KeyPressEvent) error
	resize func(width, height int) error
	frame  func() error
}

func startSession() (*session, error) {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	return &session{term: term, width: width, height: height}, nil
}

// Close restores the terminal.
func (s *session) Close() {
	s.term.ExitAltScreen()
	s.term.ShowCursor()
	s.term.Shutdown(context.Background())
}

// loop draws a frame immediately and then fps times a second until ctx is
// done, a signal arrives or q, esc or ctrl+c is pressed.
func (s *session) loop(ctx context.Context, fps int, h handlers) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	if err := s.draw(h); err != nil {
		return err
	}

	events := s.term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				s.width, s.height = ev.Width, ev.Height
				s.term.Erase()
				s.term.Resize(ev.Width, ev.Height)
				logger.Debug("terminal resized", zap.Int("cols", ev.Width), zap.Int("rows", ev.Height))
				if h.resize != nil {
					if err := h.resize(ev.Width, ev.Height); err != nil {
						return err
					}
				}
			case uv.KeyPressEvent:
				if ev.MatchString("q", "escape", "ctrl+c") {
					return nil
				}
				if h.key != nil {
					if err := h.key(ev); err != nil {
						return err
					}
				}
			}

		case <-ticker.C:
			if err := s.draw(h); err != nil {
				return err
			}
		}
	}
}

func (s *session) draw(h handlers) error {
	if h.frame == nil {
		return nil
	}
	return h.frame()
}
