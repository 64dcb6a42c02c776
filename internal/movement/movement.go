// Package movement turns a frame's directional input into a velocity and
// the facing/animation the character should show for that frame.
package movement

import "math"

// Intent is the merged directional input for a single frame. Opposing
// directions may both be set.
type Intent struct {
	Left, Right, Up, Down bool
}

// Any reports whether at least one direction is active.
func (i Intent) Any() bool {
	return i.Left || i.Right || i.Up || i.Down
}

// Velocity is a 2D velocity in world units per second. Screen space: negative
// Y points up.
type Velocity struct {
	X, Y float64
}

// Magnitude returns the Euclidean length of the velocity.
func (v Velocity) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Facing is the direction the character is shown walking in.
type Facing int

const (
	FacingIdle Facing = iota
	FacingLeft
	FacingRight
	FacingUp
	FacingDown
)

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	default:
		return "idle"
	}
}

// IdleFrame selects the standing sprite once the character stops.
type IdleFrame int

const (
	// IdleKeep leaves whatever frame is currently shown.
	IdleKeep IdleFrame = iota
	IdleLeft
	IdleRight
	IdleUp
	IdleDown
)

func (f IdleFrame) String() string {
	switch f {
	case IdleLeft:
		return "idle-left"
	case IdleRight:
		return "idle-right"
	case IdleUp:
		return "idle-up"
	case IdleDown:
		return "idle-down"
	default:
		return "idle-keep"
	}
}

// Animation keys reported in Result.Animation.
const (
	AnimWalkLeft  = "walk-left"
	AnimWalkRight = "walk-right"
	AnimWalkUp    = "walk-up"
	AnimWalkDown  = "walk-down"
)

// Result is the controller output for one frame.
type Result struct {
	Velocity  Velocity
	Facing    Facing
	Animation string // empty when idle
	Playing   bool
	Idle      IdleFrame // only meaningful when Facing == FacingIdle
}

// Compute resolves intent into a velocity of magnitude speed (or zero) and
// the facing for this frame. prev is the previous frame's velocity and is
// only read to pick the idle frame. Left beats right and up beats down, and
// the facing uses the same order, so a held left key always shows the
// left-walk animation.
func Compute(intent Intent, prev Velocity, speed float64) Result {
	var v Velocity

	if intent.Left {
		v.X = -1
	} else if intent.Right {
		v.X = 1
	}

	if intent.Up {
		v.Y = -1
	} else if intent.Down {
		v.Y = 1
	}

	if mag := v.Magnitude(); mag > 0 {
		v.X = v.X / mag * speed
		v.Y = v.Y / mag * speed
	}

	res := Result{Velocity: v}
	switch {
	case intent.Left:
		res.Facing, res.Animation, res.Playing = FacingLeft, AnimWalkLeft, true
	case intent.Right:
		res.Facing, res.Animation, res.Playing = FacingRight, AnimWalkRight, true
	case intent.Up:
		res.Facing, res.Animation, res.Playing = FacingUp, AnimWalkUp, true
	case intent.Down:
		res.Facing, res.Animation, res.Playing = FacingDown, AnimWalkDown, true
	default:
		res.Facing = FacingIdle
		res.Idle = idleFrom(prev)
	}
	return res
}

// idleFrom checks x before y; a zero previous velocity keeps the current frame.
func idleFrom(prev Velocity) IdleFrame {
	switch {
	case prev.X < 0:
		return IdleLeft
	case prev.X > 0:
		return IdleRight
	case prev.Y < 0:
		return IdleUp
	case prev.Y > 0:
		return IdleDown
	default:
		return IdleKeep
	}
}
