package camera

import (
	"image"
	"math"
	"testing"
	"time"
)

func TestFollowCenters(t *testing.T) {
	c := New(400, 300)
	c.Follow(1000, 1000)
	if c.X != 800 || c.Y != 850 {
		t.Errorf("Expected camera at (800, 850), got (%f, %f)", c.X, c.Y)
	}
}

func TestFollowClampsToBounds(t *testing.T) {
	c := New(400, 300)
	c.SetBounds(image.Rect(0, 0, 1600, 1280))

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"top left", 10, 10, 0, 0},
		{"middle", 800, 640, 600, 490},
		{"bottom right", 1590, 1270, 1200, 980},
		{"spawn", 272, 1220, 72, 980},
	}
	for _, tt := range tests {
		c.Follow(tt.x, tt.y)
		if c.X != tt.wantX || c.Y != tt.wantY {
			t.Errorf("%s: Expected (%f, %f), got (%f, %f)", tt.name, tt.wantX, tt.wantY, c.X, c.Y)
		}
	}
}

func TestSmallMapIsCentered(t *testing.T) {
	c := New(400, 300)
	c.SetBounds(image.Rect(0, 0, 200, 600))
	c.Follow(100, 0)
	if c.X != -100 {
		t.Errorf("Expected narrow map centered at x -100, got %f", c.X)
	}
	if c.Y != 0 {
		t.Errorf("Expected y clamped to 0, got %f", c.Y)
	}
}

func TestWorldToScreen(t *testing.T) {
	c := New(400, 300)
	c.X, c.Y = 72, 980
	x, y := c.WorldToScreen(272, 1220)
	if x != 200 || y != 240 {
		t.Errorf("Expected (200, 240), got (%f, %f)", x, y)
	}
}

func TestFadeIn(t *testing.T) {
	c := New(400, 300)
	if c.Alpha() != 1 || c.Fading() {
		t.Fatal("Expected fully visible before any fade")
	}

	c.FadeIn(3 * time.Second)
	if c.Alpha() != 0 {
		t.Errorf("Expected alpha 0 at fade start, got %f", c.Alpha())
	}
	c.Update(1.5)
	if math.Abs(c.Alpha()-0.5) > 1e-9 {
		t.Errorf("Expected alpha 0.5 halfway, got %f", c.Alpha())
	}
	c.Update(2)
	if c.Alpha() != 1 || c.Fading() {
		t.Errorf("Expected fade finished, got alpha %f", c.Alpha())
	}

	c.FadeIn(0)
	if c.Alpha() != 1 {
		t.Errorf("Expected zero-length fade to be visible, got %f", c.Alpha())
	}
}
