// Package input adapts input devices to a uniform directional intent.
//
// Each device exposes the same left/right/up/down capability through Source;
// Merge OR-combines them into the single movement.Intent the movement
// controller consumes.
package input

import (
	"chosenoffset.com/tilewalk/internal/movement"
	"chosenoffset.com/tilewalk/internal/render"
)

// Source is anything that can report directional intent for the current frame.
type Source interface {
	Intent() movement.Intent
}

// Merge OR-combines the intents of all sources. Nil sources are skipped.
func Merge(sources ...Source) movement.Intent {
	var merged movement.Intent
	for _, src := range sources {
		if src == nil {
			continue
		}
		in := src.Intent()
		merged.Left = merged.Left || in.Left
		merged.Right = merged.Right || in.Right
		merged.Up = merged.Up || in.Up
		merged.Down = merged.Down || in.Down
	}
	return merged
}

// Bindings maps each direction to the keys that activate it.
type Bindings struct {
	Left, Right, Up, Down []render.Key
}

// CursorBindings are the arrow keys.
func CursorBindings() Bindings {
	return Bindings{
		Left:  []render.Key{render.KeyLeft},
		Right: []render.Key{render.KeyRight},
		Up:    []render.Key{render.KeyUp},
		Down:  []render.Key{render.KeyDown},
	}
}

// WithWASD returns a copy of b that also accepts WASD.
func (b Bindings) WithWASD() Bindings {
	return Bindings{
		Left:  append(append([]render.Key(nil), b.Left...), render.KeyA),
		Right: append(append([]render.Key(nil), b.Right...), render.KeyD),
		Up:    append(append([]render.Key(nil), b.Up...), render.KeyW),
		Down:  append(append([]render.Key(nil), b.Down...), render.KeyS),
	}
}

// Keyboard reports intent from held keys.
type Keyboard struct {
	input    render.InputManager
	bindings Bindings
}

// NewKeyboard creates a keyboard source reading from input.
func NewKeyboard(input render.InputManager, bindings Bindings) *Keyboard {
	return &Keyboard{input: input, bindings: bindings}
}

// Intent implements Source.
func (k *Keyboard) Intent() movement.Intent {
	return movement.Intent{
		Left:  k.anyDown(k.bindings.Left),
		Right: k.anyDown(k.bindings.Right),
		Up:    k.anyDown(k.bindings.Up),
		Down:  k.anyDown(k.bindings.Down),
	}
}

func (k *Keyboard) anyDown(keys []render.Key) bool {
	for _, key := range keys {
		if k.input.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
