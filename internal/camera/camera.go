// Package camera tracks the viewport over a scrolling map.
package camera

import (
	"image"
	"time"
)

// Camera tracks the viewport position for scrolling large levels.
type Camera struct {
	X, Y float64 // top-left corner of the viewport in world coords

	ViewWidth, ViewHeight float64

	bounds    image.Rectangle
	hasBounds bool

	fadeTotal   float64
	fadeElapsed float64
}

// New creates a camera with a viewport of the given size.
func New(viewWidth, viewHeight int) *Camera {
	return &Camera{ViewWidth: float64(viewWidth), ViewHeight: float64(viewHeight)}
}

// SetBounds limits scrolling to the world rectangle, normally the map size.
func (c *Camera) SetBounds(r image.Rectangle) {
	c.bounds = r
	c.hasBounds = true
	c.clamp()
}

// Bounds returns the scroll limits and whether any are set.
func (c *Camera) Bounds() (image.Rectangle, bool) {
	return c.bounds, c.hasBounds
}

// Follow centers the viewport on (x, y), then clamps to the bounds.
func (c *Camera) Follow(x, y float64) {
	c.X = x - c.ViewWidth/2
	c.Y = y - c.ViewHeight/2
	c.clamp()
}

// clamp keeps the viewport inside the bounds. An axis where the bounds are
// smaller than the viewport is centered instead.
func (c *Camera) clamp() {
	if !c.hasBounds {
		return
	}
	c.X = clampAxis(c.X, float64(c.bounds.Min.X), float64(c.bounds.Max.X), c.ViewWidth)
	c.Y = clampAxis(c.Y, float64(c.bounds.Min.Y), float64(c.bounds.Max.Y), c.ViewHeight)
}

func clampAxis(pos, lo, hi, view float64) float64 {
	if hi-lo <= view {
		return lo + (hi-lo-view)/2
	}
	if pos < lo {
		return lo
	}
	if pos > hi-view {
		return hi - view
	}
	return pos
}

// WorldToScreen converts world coordinates to viewport coordinates.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// FadeIn starts a fade from black lasting d. A non-positive duration
// shows the scene at once.
func (c *Camera) FadeIn(d time.Duration) {
	c.fadeTotal = d.Seconds()
	c.fadeElapsed = 0
}

// Update advances the fade by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.fadeElapsed < c.fadeTotal {
		c.fadeElapsed += dt
	}
}

// Alpha is the scene visibility, rising from 0 to 1 during a fade-in.
func (c *Camera) Alpha() float64 {
	if c.fadeTotal <= 0 || c.fadeElapsed >= c.fadeTotal {
		return 1
	}
	return c.fadeElapsed / c.fadeTotal
}

// Fading reports whether a fade is in progress.
func (c *Camera) Fading() bool {
	return c.Alpha() < 1
}
