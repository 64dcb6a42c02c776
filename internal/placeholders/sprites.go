package placeholders

import (
	"fmt"
	"image"

	"chosenoffset.com/tilewalk/internal/world/atlas"
)

// WalkFrames is the number of frames in each walk cycle.
const WalkFrames = 4

// facings in atlas row order
var facings = []string{"left", "right", "back", "front"}

// leg swing per walk frame: pass, stride, pass, stride back
var stride = [WalkFrames]int{0, 2, 0, -2}

// CharacterAtlas paints a character sheet with one row per facing: the idle
// frame <prefix>-<facing> followed by <prefix>-<facing>-walk.000 to .003.
func CharacterAtlas(prefix string) (*image.RGBA, *atlas.AtlasConfig) {
	columns := WalkFrames + 1
	cells := make([]*image.RGBA, 0, len(facings)*columns)
	frames := make(map[string]atlas.Frame, len(facings)*columns)

	for row, facing := range facings {
		cells = append(cells, drawCharacter(facing, 0, false))
		frames[fmt.Sprintf("%s-%s", prefix, facing)] = cellFrame(row, 0)

		for i := 0; i < WalkFrames; i++ {
			cells = append(cells, drawCharacter(facing, stride[i], i%2 == 1))
			frames[fmt.Sprintf("%s-%s-walk.%03d", prefix, facing, i)] = cellFrame(row, i+1)
		}
	}

	config := &atlas.AtlasConfig{
		Name:      prefix,
		ImagePath: "player.png",
		Frames:    frames,
	}
	return CreateAtlas(cells, columns), config
}

func cellFrame(row, col int) atlas.Frame {
	return atlas.Frame{X: col * TileSize, Y: row * TileSize, W: TileSize, H: TileSize}
}

// drawCharacter draws the figure with its feet at the bottom of the cell,
// inside the 14x14 collision box at (9, 18).
func drawCharacter(facing string, swing int, bob bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	p := ColorPalette

	lift := 0
	if bob {
		lift = 1
	}

	// legs
	switch facing {
	case "left", "right":
		dir := 1
		if facing == "left" {
			dir = -1
		}
		fillRect(img, image.Rect(13+dir*swing, 24, 17+dir*swing, 30), p.Boot)
		fillRect(img, image.Rect(15-dir*swing, 24, 19-dir*swing, 30), Darken(p.Boot, 0.8))
	default:
		fillRect(img, image.Rect(11, 24-max(swing, 0), 15, 30-max(swing, 0)), p.Boot)
		fillRect(img, image.Rect(17, 24+min(swing, 0), 21, 30+min(swing, 0)), p.Boot)
	}

	// torso and arms
	fillRect(img, image.Rect(10, 14+lift, 22, 25), p.Coat)
	fillRect(img, image.Rect(8, 15+lift, 10, 22+lift), Darken(p.Coat, 0.8))
	fillRect(img, image.Rect(22, 15+lift, 24, 22+lift), Darken(p.Coat, 0.8))

	// head
	fillEllipse(img, 16, 9+lift, 6, 6, p.Skin)
	switch facing {
	case "back":
		fillEllipse(img, 16, 9+lift, 6, 6, p.Hair)
	case "front":
		fillRect(img, image.Rect(10, 3+lift, 23, 7+lift), p.Hair)
		img.Set(13, 10+lift, p.Eye)
		img.Set(19, 10+lift, p.Eye)
	case "left":
		fillRect(img, image.Rect(16, 3+lift, 23, 12+lift), p.Hair)
		img.Set(12, 10+lift, p.Eye)
	case "right":
		fillRect(img, image.Rect(10, 3+lift, 16, 12+lift), p.Hair)
		img.Set(20, 10+lift, p.Eye)
	}

	return img
}
