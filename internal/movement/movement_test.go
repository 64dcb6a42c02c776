package movement

import (
	"math"
	"testing"
)

const speed = 80.0

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// allIntents enumerates every combination of the four flags.
func allIntents() []Intent {
	var out []Intent
	for mask := 0; mask < 16; mask++ {
		out = append(out, Intent{
			Left:  mask&1 != 0,
			Right: mask&2 != 0,
			Up:    mask&4 != 0,
			Down:  mask&8 != 0,
		})
	}
	return out
}

func TestSingleAxisMagnitudeEqualsSpeed(t *testing.T) {
	for _, in := range []Intent{{Left: true}, {Right: true}, {Up: true}, {Down: true}} {
		res := Compute(in, Velocity{}, speed)
		if !almostEqual(res.Velocity.Magnitude(), speed) {
			t.Errorf("Compute(%+v) magnitude = %f, want %f", in, res.Velocity.Magnitude(), speed)
		}
	}
}

func TestDiagonalMagnitudeEqualsSpeed(t *testing.T) {
	diagonals := []Intent{
		{Left: true, Up: true},
		{Left: true, Down: true},
		{Right: true, Up: true},
		{Right: true, Down: true},
	}
	for _, in := range diagonals {
		res := Compute(in, Velocity{}, speed)
		if !almostEqual(res.Velocity.Magnitude(), speed) {
			t.Errorf("Compute(%+v) magnitude = %f, want %f", in, res.Velocity.Magnitude(), speed)
		}
		if res.Velocity.X == 0 || res.Velocity.Y == 0 {
			t.Errorf("Compute(%+v) = %+v, want both axes nonzero", in, res.Velocity)
		}
	}
}

func TestMagnitudeIsSpeedOrZero(t *testing.T) {
	for _, in := range allIntents() {
		res := Compute(in, Velocity{X: 3, Y: -7}, speed)
		mag := res.Velocity.Magnitude()
		if in.Any() && !almostEqual(mag, speed) {
			t.Errorf("Compute(%+v) magnitude = %f, want %f", in, mag, speed)
		}
		if !in.Any() && !res.Velocity.IsZero() {
			t.Errorf("Compute(%+v) = %+v, want zero velocity", in, res.Velocity)
		}
	}
}

func TestLeftWinsOverRight(t *testing.T) {
	res := Compute(Intent{Left: true, Right: true}, Velocity{X: 50}, speed)
	if res.Velocity.X >= 0 {
		t.Fatalf("x velocity = %f, want negative", res.Velocity.X)
	}
	if res.Velocity.Y != 0 {
		t.Fatalf("y velocity = %f, want 0", res.Velocity.Y)
	}
	if res.Facing != FacingLeft {
		t.Fatalf("facing = %v, want left", res.Facing)
	}
}

func TestUpWinsOverDown(t *testing.T) {
	res := Compute(Intent{Up: true, Down: true}, Velocity{}, speed)
	if res.Velocity.Y >= 0 {
		t.Fatalf("y velocity = %f, want negative", res.Velocity.Y)
	}
	if res.Velocity.X != 0 {
		t.Fatalf("x velocity = %f, want 0", res.Velocity.X)
	}
	if res.Facing != FacingUp || res.Animation != AnimWalkUp {
		t.Fatalf("facing = %v anim = %q, want up/%q", res.Facing, res.Animation, AnimWalkUp)
	}
}

func TestAllDirectionsHeld(t *testing.T) {
	res := Compute(Intent{Left: true, Right: true, Up: true, Down: true}, Velocity{}, speed)
	if res.Velocity.X >= 0 || res.Velocity.Y >= 0 {
		t.Fatalf("velocity = %+v, want up-left", res.Velocity)
	}
	if res.Facing != FacingLeft {
		t.Fatalf("facing = %v, want left", res.Facing)
	}
}

func TestLeftAlwaysFacesLeft(t *testing.T) {
	for _, in := range allIntents() {
		if !in.Left {
			continue
		}
		res := Compute(in, Velocity{X: 10, Y: 10}, speed)
		if res.Facing != FacingLeft || res.Animation != AnimWalkLeft || !res.Playing {
			t.Errorf("Compute(%+v) = %+v, want playing walk-left", in, res)
		}
	}
}

func TestFacingPriority(t *testing.T) {
	tests := []struct {
		in   Intent
		want Facing
		anim string
	}{
		{Intent{Right: true, Up: true}, FacingRight, AnimWalkRight},
		{Intent{Right: true, Down: true}, FacingRight, AnimWalkRight},
		{Intent{Up: true, Down: true}, FacingUp, AnimWalkUp},
		{Intent{Down: true}, FacingDown, AnimWalkDown},
	}
	for _, tt := range tests {
		res := Compute(tt.in, Velocity{}, speed)
		if res.Facing != tt.want || res.Animation != tt.anim {
			t.Errorf("Compute(%+v) facing = %v anim = %q, want %v %q", tt.in, res.Facing, res.Animation, tt.want, tt.anim)
		}
	}
}

func TestIdleFrameFromPreviousVelocity(t *testing.T) {
	tests := []struct {
		prev Velocity
		want IdleFrame
	}{
		{Velocity{X: -5}, IdleLeft},
		{Velocity{X: 5}, IdleRight},
		{Velocity{Y: -5}, IdleUp},
		{Velocity{Y: 5}, IdleDown},
		// x is checked before y
		{Velocity{X: -5, Y: 5}, IdleLeft},
		{Velocity{X: 5, Y: -5}, IdleRight},
		{Velocity{}, IdleKeep},
	}
	for _, tt := range tests {
		res := Compute(Intent{}, tt.prev, speed)
		if !res.Velocity.IsZero() {
			t.Errorf("prev %+v: velocity = %+v, want zero", tt.prev, res.Velocity)
		}
		if res.Facing != FacingIdle || res.Playing || res.Animation != "" {
			t.Errorf("prev %+v: result = %+v, want stopped idle", tt.prev, res)
		}
		if res.Idle != tt.want {
			t.Errorf("prev %+v: idle = %v, want %v", tt.prev, res.Idle, tt.want)
		}
	}
}

func TestVelocityNotCarriedOver(t *testing.T) {
	res := Compute(Intent{Down: true}, Velocity{X: -80, Y: 0}, speed)
	if res.Velocity.X != 0 || !almostEqual(res.Velocity.Y, speed) {
		t.Fatalf("velocity = %+v, want (0, %f)", res.Velocity, speed)
	}
}
