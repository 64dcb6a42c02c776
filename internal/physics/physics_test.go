package physics

import (
	"image"
	"testing"

	"chosenoffset.com/tilewalk/internal/movement"
)

const dt = 1.0 / 60.0

func TestBodyMovesFreely(t *testing.T) {
	w := NewWorld(320, 320, 32, nil)
	b := w.NewBody(100, 100, 14, 14)
	b.SetVelocity(movement.Velocity{X: 60, Y: -60})
	b.Step(1)

	if b.X != 160 || b.Y != 40 {
		t.Fatalf("position = (%f, %f), want (160, 40)", b.X, b.Y)
	}
	if v := b.Velocity(); v.X != 60 || v.Y != -60 {
		t.Fatalf("velocity = %+v, want unchanged", v)
	}
	if b.Blocked != (Blocked{}) {
		t.Fatalf("blocked = %+v, want none", b.Blocked)
	}
}

func TestBodyStopsAtWall(t *testing.T) {
	w := NewWorld(320, 320, 32, []image.Rectangle{image.Rect(128, 64, 160, 192)})
	b := w.NewBody(100, 100, 14, 14)
	b.SetVelocity(movement.Velocity{X: 80})

	hit := false
	for i := 0; i < 60; i++ {
		b.Step(dt)
		hit = hit || b.Blocked.Right
	}
	if b.X != 128-14 {
		t.Fatalf("x = %f, want %d", b.X, 128-14)
	}
	if !hit {
		t.Fatal("expected right side blocked")
	}
	if b.Velocity().X != 0 {
		t.Fatalf("velocity x = %f, want 0 after hitting the wall", b.Velocity().X)
	}
}

func TestBodySlidesAlongWall(t *testing.T) {
	// Wall below the body; moving down-right slides along its top edge.
	w := NewWorld(320, 320, 32, []image.Rectangle{image.Rect(0, 128, 320, 160)})
	b := w.NewBody(50, 110, 14, 14)
	b.SetVelocity(movement.Velocity{X: 60, Y: 60})
	b.Step(0.5)

	if b.Y != 128-14 {
		t.Fatalf("y = %f, want %d", b.Y, 128-14)
	}
	if b.X != 80 {
		t.Fatalf("x = %f, want 80", b.X)
	}
	if !b.Blocked.Down || b.Blocked.Right {
		t.Fatalf("blocked = %+v, want down only", b.Blocked)
	}
	if v := b.Velocity(); v.X != 60 || v.Y != 0 {
		t.Fatalf("velocity = %+v, want (60, 0)", v)
	}

	// Touching the wall's edge does not block horizontal movement.
	b.SetVelocity(movement.Velocity{X: -60})
	b.Step(0.5)
	if b.X != 50 || b.Blocked.Left {
		t.Fatalf("x = %f blocked = %+v, want free slide back to 50", b.X, b.Blocked)
	}
}

func TestBodyMovingUpAndLeft(t *testing.T) {
	w := NewWorld(320, 320, 32, []image.Rectangle{
		image.Rect(0, 0, 32, 320),
		image.Rect(0, 0, 320, 32),
	})
	b := w.NewBody(40, 40, 14, 14)
	b.SetVelocity(movement.Velocity{X: -100, Y: -100})

	var left, up bool
	for i := 0; i < 30; i++ {
		b.Step(dt)
		left = left || b.Blocked.Left
		up = up || b.Blocked.Up
	}
	if b.X != 32 || b.Y != 32 {
		t.Fatalf("position = (%f, %f), want (32, 32)", b.X, b.Y)
	}
	if !left || !up {
		t.Fatalf("blocked left=%v up=%v, want both", left, up)
	}
}

func TestBodyPicksNearestOfSeveralWalls(t *testing.T) {
	w := NewWorld(320, 320, 32, []image.Rectangle{
		image.Rect(64, 96, 96, 128),
		image.Rect(72, 100, 200, 110),
	})
	b := w.NewBody(40, 100, 14, 14)
	b.SetVelocity(movement.Velocity{X: 100})
	b.Step(0.5)
	if b.X != 64-14 {
		t.Fatalf("x = %f, want %d", b.X, 64-14)
	}
}

func TestFastBodyDoesNotTunnel(t *testing.T) {
	w := NewWorld(320, 320, 32, []image.Rectangle{image.Rect(32, 0, 64, 320)})
	b := w.NewBody(10, 100, 14, 14)
	b.SetVelocity(movement.Velocity{X: 80})
	b.Step(1)

	if b.X != 32-14 {
		t.Fatalf("x = %f, want %d", b.X, 32-14)
	}
	if !b.Blocked.Right || b.Velocity().X != 0 {
		t.Fatalf("blocked = %+v velocity = %+v, want right contact and zero x", b.Blocked, b.Velocity())
	}
}

func TestBodyInsideSolidIsPushedOut(t *testing.T) {
	w := NewWorld(320, 320, 32, []image.Rectangle{image.Rect(0, 128, 320, 160)})
	b := w.NewBody(50, 130, 14, 14)
	b.SetVelocity(movement.Velocity{Y: 20})
	b.Step(0.5)

	if b.Y != 128-14 {
		t.Fatalf("y = %f, want %d", b.Y, 128-14)
	}
	if !b.Blocked.Down || b.Velocity().Y != 0 {
		t.Fatalf("blocked = %+v velocity = %+v, want down contact and zero y", b.Blocked, b.Velocity())
	}
}

func TestBodyShallowOverlapIsResolved(t *testing.T) {
	w := NewWorld(320, 320, 32, []image.Rectangle{image.Rect(192, 0, 224, 320)})
	b := w.NewBody(163, 100, 14, 14)
	b.SetVelocity(movement.Velocity{X: 80})

	for i := 0; i < 30; i++ {
		b.Step(dt)
		if b.X > 192-14 {
			t.Fatalf("step %d: x = %f, body entered the wall", i, b.X)
		}
	}
	if b.X != 192-14 || b.Velocity().X != 0 {
		t.Fatalf("x = %f velocity = %+v, want 178 and stopped", b.X, b.Velocity())
	}
}

func TestWorldBounds(t *testing.T) {
	w := NewWorld(200, 100, 32, nil)
	b := w.NewBody(10, 10, 14, 14)
	b.CollideWorldBounds = true

	b.SetVelocity(movement.Velocity{X: -80, Y: 500})
	b.Step(1)
	if b.X != 0 || b.Y != 100-14 {
		t.Fatalf("position = (%f, %f), want (0, 86)", b.X, b.Y)
	}
	if !b.Blocked.Left || !b.Blocked.Down {
		t.Fatalf("blocked = %+v, want left and down", b.Blocked)
	}
	if !b.Velocity().IsZero() {
		t.Fatalf("velocity = %+v, want zero", b.Velocity())
	}

	b.SetVelocity(movement.Velocity{X: 1000, Y: -1000})
	b.Step(1)
	if b.X != 200-14 || b.Y != 0 {
		t.Fatalf("position = (%f, %f), want (186, 0)", b.X, b.Y)
	}
}

func TestWorldBoundsDisabled(t *testing.T) {
	w := NewWorld(200, 100, 32, nil)
	b := w.NewBody(10, 10, 14, 14)
	b.SetVelocity(movement.Velocity{X: -80})
	b.Step(1)
	if b.X != -70 {
		t.Fatalf("x = %f, want -70", b.X)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{Rect{X: -5, Y: -5, W: 6, H: 6}, true},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.o); got != tt.want {
			t.Errorf("Overlaps(%+v) = %v, want %v", tt.o, got, tt.want)
		}
	}
}

func TestSolidCount(t *testing.T) {
	w := NewWorld(64, 64, 32, []image.Rectangle{image.Rect(0, 0, 32, 32)})
	w.AddSolid(image.Rect(32, 32, 64, 64))
	if w.SolidCount() != 2 {
		t.Fatalf("SolidCount = %d, want 2", w.SolidCount())
	}
}
