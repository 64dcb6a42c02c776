package input

import (
	"fmt"
	"math"

	"chosenoffset.com/tilewalk/internal/movement"
	"chosenoffset.com/tilewalk/internal/render"
)

// DirMode restricts which directions the joystick reports.
type DirMode int

const (
	DirUpDown DirMode = iota
	DirLeftRight
	Dir4
	Dir8
)

// ParseDirMode accepts the names used in the config file.
func ParseDirMode(s string) (DirMode, error) {
	switch s {
	case "up&down":
		return DirUpDown, nil
	case "left&right":
		return DirLeftRight, nil
	case "4dir":
		return Dir4, nil
	case "8dir", "":
		return Dir8, nil
	default:
		return Dir8, fmt.Errorf("unknown joystick direction mode %q", s)
	}
}

func (m DirMode) String() string {
	switch m {
	case DirUpDown:
		return "up&down"
	case DirLeftRight:
		return "left&right"
	case Dir4:
		return "4dir"
	default:
		return "8dir"
	}
}

// JoystickConfig describes an on-screen virtual joystick.
type JoystickConfig struct {
	X, Y        float64 // base center in screen pixels
	Radius      float64 // max thumb travel
	BaseRadius  float64 // drawn base size; pointer must start inside it
	ThumbRadius float64
	ForceMin    float64 // below this distance no direction is reported
	Mode        DirMode
}

// Joystick is a virtual stick driven by a touch or the mouse. It follows
// whichever pointer captured it until that pointer is released.
type Joystick struct {
	cfg JoystickConfig

	active   bool
	touch    bool // captured by touchID rather than the mouse
	touchID  render.TouchID
	dx, dy   float64 // pointer offset from base, unclamped
	thumbX   float64
	thumbY   float64
	wasDown  bool
	seen     map[render.TouchID]bool // touches present on the previous tick
	disabled bool
}

// NewJoystick creates a joystick at rest.
func NewJoystick(cfg JoystickConfig) *Joystick {
	j := &Joystick{cfg: cfg, seen: make(map[render.TouchID]bool)}
	j.recenter()
	return j
}

// Config returns the joystick configuration.
func (j *Joystick) Config() JoystickConfig {
	return j.cfg
}

// SetEnabled toggles the joystick. A disabled joystick reports no intent.
func (j *Joystick) SetEnabled(enabled bool) {
	j.disabled = !enabled
	if !enabled {
		j.release()
	}
}

// Update samples the pointers. Positions are in the same space as the base
// position (logical screen pixels).
func (j *Joystick) Update(in render.InputManager) {
	if j.disabled {
		return
	}
	touches := in.Touches()
	down := in.IsMouseButtonPressed(render.MouseButtonLeft)
	cx, cy := in.GetCursorPosition()

	switch {
	case j.active && j.touch:
		if t, ok := findTouch(touches, j.touchID); ok {
			j.move(float64(t.X), float64(t.Y))
		} else {
			j.release()
		}
	case j.active:
		if down {
			j.move(float64(cx), float64(cy))
		} else {
			j.release()
		}
	default:
		j.capture(touches, down && !j.wasDown, cx, cy)
	}

	j.wasDown = down
	clear(j.seen)
	for _, t := range touches {
		j.seen[t.ID] = true
	}
}

// capture takes the stick with a touch that started this tick on the base,
// or else with a fresh mouse press on the base.
func (j *Joystick) capture(touches []render.Touch, pressed bool, cx, cy int) {
	var (
		best  render.Touch
		found bool
	)
	for _, t := range touches {
		if j.seen[t.ID] || !j.onBase(t.X, t.Y) {
			continue
		}
		if !found || t.ID < best.ID {
			best, found = t, true
		}
	}
	if found {
		j.active, j.touch, j.touchID = true, true, best.ID
		j.move(float64(best.X), float64(best.Y))
		return
	}
	if pressed && j.onBase(cx, cy) {
		j.active, j.touch = true, false
		j.move(float64(cx), float64(cy))
	}
}

func (j *Joystick) onBase(x, y int) bool {
	return math.Hypot(float64(x)-j.cfg.X, float64(y)-j.cfg.Y) <= j.cfg.BaseRadius
}

func findTouch(touches []render.Touch, id render.TouchID) (render.Touch, bool) {
	for _, t := range touches {
		if t.ID == id {
			return t, true
		}
	}
	return render.Touch{}, false
}

// Active reports whether the stick is currently held.
func (j *Joystick) Active() bool {
	return j.active
}

// Force is the pointer distance from the base center.
func (j *Joystick) Force() float64 {
	return math.Hypot(j.dx, j.dy)
}

// Thumb returns the thumb center, clamped to Radius.
func (j *Joystick) Thumb() (x, y float64) {
	return j.thumbX, j.thumbY
}

// Intent implements Source.
func (j *Joystick) Intent() movement.Intent {
	if !j.active || j.Force() < j.cfg.ForceMin || (j.dx == 0 && j.dy == 0) {
		return movement.Intent{}
	}
	return quantize(math.Atan2(j.dy, j.dx)*180/math.Pi, j.dx, j.dy, j.cfg.Mode)
}

func (j *Joystick) move(px, py float64) {
	j.dx, j.dy = px-j.cfg.X, py-j.cfg.Y
	tx, ty := j.dx, j.dy
	if d := math.Hypot(tx, ty); d > j.cfg.Radius && d > 0 {
		tx, ty = tx/d*j.cfg.Radius, ty/d*j.cfg.Radius
	}
	j.thumbX, j.thumbY = j.cfg.X+tx, j.cfg.Y+ty
}

func (j *Joystick) release() {
	j.active, j.touch = false, false
	j.recenter()
}

func (j *Joystick) recenter() {
	j.dx, j.dy = 0, 0
	j.thumbX, j.thumbY = j.cfg.X, j.cfg.Y
}

// quantize maps an angle in degrees (screen space, 0 = right, 90 = down)
// to directional flags for the given mode.
func quantize(angle, dx, dy float64, mode DirMode) movement.Intent {
	var in movement.Intent
	switch mode {
	case DirUpDown:
		in.Up, in.Down = dy < 0, dy > 0
	case DirLeftRight:
		in.Left, in.Right = dx < 0, dx > 0
	case Dir4:
		switch sector(angle, 90) {
		case 0:
			in.Right = true
		case 1:
			in.Down = true
		case 2, -2:
			in.Left = true
		case -1:
			in.Up = true
		}
	default:
		switch sector(angle, 45) {
		case 0:
			in.Right = true
		case 1:
			in.Right, in.Down = true, true
		case 2:
			in.Down = true
		case 3:
			in.Left, in.Down = true, true
		case 4, -4:
			in.Left = true
		case -3:
			in.Left, in.Up = true, true
		case -2:
			in.Up = true
		case -1:
			in.Right, in.Up = true, true
		}
	}
	return in
}

func sector(angle, width float64) int {
	return int(math.Round(angle / width))
}
