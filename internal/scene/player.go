package scene

import (
	"fmt"

	"chosenoffset.com/tilewalk/internal/anim"
	"chosenoffset.com/tilewalk/internal/movement"
	"chosenoffset.com/tilewalk/internal/physics"
	"chosenoffset.com/tilewalk/internal/world/atlas"
)

// walk clip suffixes per movement animation; "back" faces up the screen
var walkClips = map[string]string{
	movement.AnimWalkLeft:  "left-walk",
	movement.AnimWalkRight: "right-walk",
	movement.AnimWalkUp:    "back-walk",
	movement.AnimWalkDown:  "front-walk",
}

var idleFrames = map[movement.IdleFrame]string{
	movement.IdleLeft:  "left",
	movement.IdleRight: "right",
	movement.IdleUp:    "back",
	movement.IdleDown:  "front",
}

// Player is the walking character: a physics body plus the sprite
// animation drawn around it.
type Player struct {
	Body *physics.Body
	Anim *anim.Player

	prefix         string
	frameW, frameH float64 // sprite size; the sprite is centered on its position
	offX, offY     float64 // body offset from the sprite's top-left corner
}

// Position returns the sprite center in world pixels.
func (p *Player) Position() (float64, float64) {
	return p.Body.X - p.offX + p.frameW/2, p.Body.Y - p.offY + p.frameH/2
}

// Frame returns the atlas frame currently shown.
func (p *Player) Frame() string {
	return p.Anim.Frame()
}

// Apply shows the controller's result: walking plays the matching clip
// without restarting it, stopping freezes the clip and switches to the idle
// frame for the last direction of travel.
func (p *Player) Apply(res movement.Result) error {
	if res.Playing {
		suffix, ok := walkClips[res.Animation]
		if !ok {
			return fmt.Errorf("no walk clip for animation %q", res.Animation)
		}
		return p.Anim.Play(p.name(suffix), true)
	}

	p.Anim.Stop()
	if suffix, ok := idleFrames[res.Idle]; ok {
		p.Anim.SetFrame(p.name(suffix))
	}
	return nil
}

// name builds clip keys and frame names, e.g. misa-left-walk or misa-back.
func (p *Player) name(suffix string) string {
	return p.prefix + "-" + suffix
}

// registerWalkClips adds the four looping walk clips for prefix, checking
// every frame exists in the atlas.
func registerWalkClips(lib *anim.Library, a *atlas.Atlas, prefix string, frames int, frameRate float64) error {
	for _, suffix := range []string{"left-walk", "right-walk", "back-walk", "front-walk"} {
		key := prefix + "-" + suffix
		names := anim.GenerateFrameNames(key+".", 0, frames-1, 3)
		for _, name := range names {
			if !a.HasFrame(name) {
				return fmt.Errorf("clip %s: %w: %s", key, atlas.ErrFrameNotFound, name)
			}
		}
		err := lib.Add(anim.Clip{
			Key:       key,
			Frames:    names,
			FrameRate: frameRate,
			Repeat:    anim.RepeatForever,
		})
		if err != nil {
			return fmt.Errorf("failed to add clip %s: %w", key, err)
		}
	}
	return nil
}

// checkIdleFrames makes sure every idle frame Apply may switch to exists.
func checkIdleFrames(a *atlas.Atlas, prefix string) error {
	for _, suffix := range idleFrames {
		if name := prefix + "-" + suffix; !a.HasFrame(name) {
			return fmt.Errorf("idle frame: %w: %s", atlas.ErrFrameNotFound, name)
		}
	}
	return nil
}
