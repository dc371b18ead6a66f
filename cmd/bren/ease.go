package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// easedSpeed is a speed that springs toward its cruise value while running
// and toward zero while paused, so animations start and stop smoothly.
type easedSpeed struct {
	spring harmonica.Spring
	cruise float64

	speed    float64
	velocity float64 // spring velocity of speed
	running  bool
}

// newEasedSpeed creates a running speed that eases up from zero to cruise
// units per frame.
func newEasedSpeed(fps int, cruise, frequency, damping float64) *easedSpeed {
	return &easedSpeed{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		cruise:  cruise,
		running: true,
	}
}

// Step advances the spring by one frame and returns the current speed.
func (e *easedSpeed) Step() float64 {
	target := 0.0
	if e.running {
		target = e.cruise
	}
	e.speed, e.velocity = e.spring.Update(e.speed, e.velocity, target)
	return e.speed
}

// Toggle pauses or resumes and reports whether it is now running.
func (e *easedSpeed) Toggle() bool {
	e.running = !e.running
	return e.running
}

// Running reports whether the speed is heading for cruise.
func (e *easedSpeed) Running() bool {
	return e.running
}

// Reset stops dead and starts easing up again.
func (e *easedSpeed) Reset() {
	e.speed, e.velocity = 0, 0
	e.running = true
}

// wrapDegrees maps an angle to [0, 360).
func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
