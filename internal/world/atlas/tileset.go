package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"chosenoffset.com/tilewalk/internal/render"
)

// TileDefinition carries per-tile properties for a tileset index.
type TileDefinition struct {
	Index      int                    `json:"index"`
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties"` // collides, type, ...
}

// TilesetConfig describes a grid tileset image.
type TilesetConfig struct {
	Name       string           `json:"name"`
	ImagePath  string           `json:"image_path"`
	TileWidth  int              `json:"tile_width"`
	TileHeight int              `json:"tile_height"`
	Margin     int              `json:"margin"`
	Spacing    int              `json:"spacing"`
	Tiles      []TileDefinition `json:"tiles"`
}

// Tileset is a loaded grid tileset. Tile indices are zero-based, row-major.
type Tileset struct {
	Config  *TilesetConfig
	Image   render.Image
	Columns int
	Count   int

	tilesByIndex map[int]*TileDefinition
	subImages    map[int]render.Image
}

// ParseTilesetConfig decodes and validates a tileset description.
func ParseTilesetConfig(data []byte) (*TilesetConfig, error) {
	var config TilesetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tileset config: %w", err)
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}

	if config.Margin < 0 || config.Spacing < 0 {
		return nil, fmt.Errorf("invalid margin/spacing: %d/%d", config.Margin, config.Spacing)
	}

	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in tileset config")
	}

	return &config, nil
}

// LoadTileset loads a tileset description and its image.
func LoadTileset(configPath string, loader render.ResourceLoader) (*Tileset, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tileset config %s: %w", configPath, err)
	}

	config, err := ParseTilesetConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	imagePath := resolvePath(configPath, config.ImagePath)
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset image %s: %w", imagePath, err)
	}

	return NewTileset(config, img)
}

// NewTileset builds a tileset from an already loaded image.
func NewTileset(config *TilesetConfig, img render.Image) (*Tileset, error) {
	w, h := img.Size()
	cols := gridCount(w, config.TileWidth, config.Margin, config.Spacing)
	rows := gridCount(h, config.TileHeight, config.Margin, config.Spacing)
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("tileset image %dx%d holds no %dx%d tiles", w, h, config.TileWidth, config.TileHeight)
	}

	ts := &Tileset{
		Config:       config,
		Image:        img,
		Columns:      cols,
		Count:        cols * rows,
		tilesByIndex: make(map[int]*TileDefinition),
		subImages:    make(map[int]render.Image),
	}
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		if tile.Index < 0 || tile.Index >= ts.Count {
			return nil, fmt.Errorf("tile definition index %d out of range [0, %d)", tile.Index, ts.Count)
		}
		ts.tilesByIndex[tile.Index] = tile
	}
	return ts, nil
}

func gridCount(size, tile, margin, spacing int) int {
	return (size - 2*margin + spacing) / (tile + spacing)
}

// TileRect returns the source rectangle of a tile index.
func (t *Tileset) TileRect(index int) image.Rectangle {
	c := t.Config
	col := index % t.Columns
	row := index / t.Columns
	x := c.Margin + col*(c.TileWidth+c.Spacing)
	y := c.Margin + row*(c.TileHeight+c.Spacing)
	return image.Rect(x, y, x+c.TileWidth, y+c.TileHeight)
}

// GetTile returns the definition for a tile index, if any properties were declared.
func (t *Tileset) GetTile(index int) (*TileDefinition, bool) {
	tile, ok := t.tilesByIndex[index]
	return tile, ok
}

// Collides reports whether tiles with this index block movement.
func (t *Tileset) Collides(index int) bool {
	tile, ok := t.GetTile(index)
	if !ok {
		return false
	}
	return tile.GetTilePropertyBool("collides", false)
}

// SubImage returns the image for a tile index.
func (t *Tileset) SubImage(index int) (render.Image, error) {
	if index < 0 || index >= t.Count {
		return nil, fmt.Errorf("tile index %d out of range [0, %d)", index, t.Count)
	}
	if img, ok := t.subImages[index]; ok {
		return img, nil
	}
	img := t.Image.SubImage(t.TileRect(index))
	t.subImages[index] = img
	return img, nil
}

// DrawTile draws a tile with its top-left corner at (x, y).
func (t *Tileset) DrawTile(screen render.Image, index int, x, y float64) error {
	img, err := t.SubImage(index)
	if err != nil {
		return err
	}
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(x, y)
	screen.DrawImage(img, opts)
	return nil
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (interface{}, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyBool retrieves a boolean property
func (td *TileDefinition) GetTilePropertyBool(key string, defaultVal bool) bool {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetTilePropertyString retrieves a string property
func (td *TileDefinition) GetTilePropertyString(key string, defaultVal string) string {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}

// GetTilePropertyInt retrieves an integer property
func (td *TileDefinition) GetTilePropertyInt(key string, defaultVal int) int {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	// JSON numbers are float64
	if floatVal, ok := val.(float64); ok {
		return int(floatVal)
	}
	return defaultVal
}
