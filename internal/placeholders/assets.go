package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/tilewalk/internal/world/atlas"
	"chosenoffset.com/tilewalk/internal/world/maploader"
)

// File names written by Save; the map and atlas reference the others
// relative to themselves.
const (
	MapFile          = "town.json"
	TilesetFile      = "tileset.json"
	TilesetImageFile = "tileset.png"
	AtlasFile        = "atlas.json"
	AtlasImageFile   = "player.png"
)

// Assets is a complete generated asset set.
type Assets struct {
	Map          *maploader.MapData
	Tileset      *atlas.TilesetConfig
	TilesetImage *image.RGBA
	Atlas        *atlas.AtlasConfig
	AtlasImage   *image.RGBA
}

// Generate paints every asset in memory.
func Generate(prefix string, opts TownOptions) *Assets {
	tilesetImg, tileset := TownTileset()
	atlasImg, atlasConfig := CharacterAtlas(prefix)

	m := Town(opts)
	m.TilesetPath = TilesetFile
	tileset.ImagePath = TilesetImageFile
	atlasConfig.ImagePath = AtlasImageFile

	return &Assets{
		Map:          m,
		Tileset:      tileset,
		TilesetImage: tilesetImg,
		Atlas:        atlasConfig,
		AtlasImage:   atlasImg,
	}
}

// Save writes the assets into dir, creating it if needed.
func (a *Assets) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	images := map[string]image.Image{
		TilesetImageFile: a.TilesetImage,
		AtlasImageFile:   a.AtlasImage,
	}
	for name, img := range images {
		if err := SavePNG(img, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
	}

	docs := map[string]interface{}{
		MapFile:     a.Map,
		TilesetFile: a.Tileset,
		AtlasFile:   a.Atlas,
	}
	for name, doc := range docs {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// GenerateAndSave writes the default town and a character sheet for prefix.
func GenerateAndSave(dir, prefix string) error {
	return Generate(prefix, DefaultTownOptions()).Save(dir)
}
