package placeholders

import (
	"image"

	"chosenoffset.com/tilewalk/internal/world/atlas"
)

// Tileset indices of the town tiles.
const (
	TileGrass = iota
	TileGrassDark
	TileFlowers
	TilePath
	TileWater
	TileWall
	TileRoof
	TileTrunk
	TileCanopy
)

const tilesetColumns = 4

type tileSpec struct {
	name     string
	collides bool
	paint    func() *image.RGBA
}

var townTiles = []tileSpec{
	TileGrass:     {"grass", false, func() *image.RGBA { return CreateSolidTile(ColorPalette.Grass) }},
	TileGrassDark: {"grass_dark", false, func() *image.RGBA { return CreatePatternedTile(ColorPalette.Grass, ColorPalette.GrassDark, "dots") }},
	TileFlowers:   {"flowers", false, func() *image.RGBA { return CreatePatternedTile(ColorPalette.Grass, ColorPalette.Flower, "dots") }},
	TilePath:      {"path", false, func() *image.RGBA { return CreateBorderedTile(ColorPalette.Path, Darken(ColorPalette.Path, 0.9), 1) }},
	TileWater:     {"water", true, func() *image.RGBA { return CreatePatternedTile(ColorPalette.Water, Lighten(ColorPalette.Water, 0.4), "waves") }},
	TileWall:      {"wall", true, func() *image.RGBA { return CreatePatternedTile(ColorPalette.Wall, Darken(ColorPalette.Wall, 0.7), "bricks") }},
	TileRoof:      {"roof", true, func() *image.RGBA { return CreatePatternedTile(ColorPalette.Roof, Darken(ColorPalette.Roof, 0.7), "shingles") }},
	TileTrunk:     {"trunk", true, createTrunk},
	TileCanopy:    {"canopy", false, func() *image.RGBA { return CreateCircle(ColorPalette.Canopy, Darken(ColorPalette.Canopy, 0.6)) }},
}

// createTrunk draws a trunk on grass so it sits under a canopy tile.
func createTrunk() *image.RGBA {
	img := CreateSolidTile(ColorPalette.Grass)
	fillEllipse(img, TileSize/2, TileSize-6, 10, 4, Darken(ColorPalette.Grass, 0.7))
	fillRect(img, image.Rect(12, 0, 20, TileSize-4), ColorPalette.Trunk)
	return img
}

// TownTileset paints the tileset image and describes it.
func TownTileset() (*image.RGBA, *atlas.TilesetConfig) {
	cells := make([]*image.RGBA, len(townTiles))
	defs := make([]atlas.TileDefinition, len(townTiles))
	for i, spec := range townTiles {
		cells[i] = spec.paint()
		defs[i] = atlas.TileDefinition{
			Index: i,
			Name:  spec.name,
			Properties: map[string]interface{}{
				"type":     spec.name,
				"collides": spec.collides,
			},
		}
	}
	config := &atlas.TilesetConfig{
		Name:       "town",
		ImagePath:  "tileset.png",
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Tiles:      defs,
	}
	return CreateAtlas(cells, tilesetColumns), config
}
