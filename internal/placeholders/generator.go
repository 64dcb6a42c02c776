// Package placeholders draws stand-in art for the town demo: a tileset, a
// walking character atlas and the map that uses them.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/colornames"
)

// TileSize is the standard size for placeholder tiles and frames
const TileSize = 32

// ColorPalette defines colors for the town theme
var ColorPalette = struct {
	// Ground
	Grass     color.RGBA
	GrassDark color.RGBA
	Path      color.RGBA
	Water     color.RGBA
	Flower    color.RGBA

	// Structures
	Wall   color.RGBA
	Roof   color.RGBA
	Trunk  color.RGBA
	Canopy color.RGBA

	// Character
	Coat color.RGBA
	Skin color.RGBA
	Hair color.RGBA
	Boot color.RGBA
	Eye  color.RGBA
}{
	Grass:     colornames.Olivedrab,
	GrassDark: colornames.Darkolivegreen,
	Path:      colornames.Burlywood,
	Water:     colornames.Steelblue,
	Flower:    colornames.Gold,

	Wall:   colornames.Slategray,
	Roof:   colornames.Firebrick,
	Trunk:  colornames.Saddlebrown,
	Canopy: colornames.Darkgreen,

	Coat: colornames.Mediumorchid,
	Skin: colornames.Peachpuff,
	Hair: colornames.Sienna,
	Boot: colornames.Dimgray,
	Eye:  colornames.Black,
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(fillColor)
	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, TileSize-1-i, borderColor)
		}
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(TileSize-1-i, y, borderColor)
		}
	}
	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "bricks":
		// courses of 8px, alternate rows offset by half a brick
		for y := 0; y < TileSize; y += 8 {
			for x := 0; x < TileSize; x++ {
				img.Set(x, y, patternColor)
			}
			offset := 0
			if (y/8)%2 == 1 {
				offset = 8
			}
			for x := offset; x < TileSize; x += 16 {
				for dy := 0; dy < 8; dy++ {
					img.Set(x, y+dy, patternColor)
				}
			}
		}
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			fillRect(img, image.Rect(p.X, p.Y, p.X+2, p.Y+2), patternColor)
		}
	case "waves":
		for y := 6; y < TileSize; y += 10 {
			for x := 0; x < TileSize; x++ {
				if (x/4)%2 == 0 {
					img.Set(x, y, patternColor)
				} else {
					img.Set(x, y+1, patternColor)
				}
			}
		}
	case "shingles":
		for y := 0; y < TileSize; y += 6 {
			for x := 0; x < TileSize; x++ {
				img.Set(x, y, patternColor)
			}
		}
	case "diagonal":
		for i := 0; i < TileSize; i++ {
			img.Set(i, i, patternColor)
			img.Set(i, TileSize-1-i, patternColor)
		}
	}

	return img
}

// CreateCircle creates a circular tile on a transparent background
func CreateCircle(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	fillEllipse(img, TileSize/2, TileSize/2, TileSize/2-2, TileSize/2-2, outlineColor)
	fillEllipse(img, TileSize/2, TileSize/2, TileSize/2-3, TileSize/2-3, fillColor)
	return img
}

// CreateAtlas packs equally sized cells into a grid, row-major. Nil cells
// stay transparent.
func CreateAtlas(cells []*image.RGBA, columns int) *image.RGBA {
	rows := (len(cells) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))

	for i, cell := range cells {
		if cell == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		draw.Draw(atlas, image.Rect(x, y, x+TileSize, y+TileSize), cell, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
}
