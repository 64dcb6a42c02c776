package maploader

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/world/atlas"
)

// SpawnPoint defines the player spawn location in pixels
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layer is one grid of tile IDs. 0 is empty; n > 0 is tileset index n-1.
type Layer struct {
	Name     string  `json:"name"`
	Depth    int     `json:"depth"`    // draw order; layers at or above the player depth draw over it
	Collides bool    `json:"collides"` // collision is taken from tile properties on this layer
	Tiles    [][]int `json:"tiles"`    // [y][x]
}

// MapData represents the loaded map configuration
type MapData struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`     // in tiles
	Height      int        `json:"height"`    // in tiles
	TileSize    int        `json:"tile_size"` // pixels
	TilesetPath string     `json:"tileset"`
	PlayerSpawn SpawnPoint `json:"player_spawn"`
	Layers      []Layer    `json:"layers"`
}

// Map represents a loaded map with its tileset
type Map struct {
	Data    *MapData
	Tileset *atlas.Tileset
}

// ParseMapData decodes and validates a map description.
func ParseMapData(data []byte) (*MapData, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}

	return &mapData, nil
}

// LoadMap loads a map from a JSON file and its tileset
func LoadMap(mapPath string, loader render.ResourceLoader) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	mapData, err := ParseMapData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mapPath, err)
	}

	tilesetPath := mapData.TilesetPath
	if !filepath.IsAbs(tilesetPath) {
		tilesetPath = filepath.Join(filepath.Dir(mapPath), tilesetPath)
	}
	tileset, err := atlas.LoadTileset(tilesetPath, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset %s: %w", tilesetPath, err)
	}

	return New(mapData, tileset)
}

// New pairs map data with a tileset, checking every tile ID exists in it.
func New(data *MapData, tileset *atlas.Tileset) (*Map, error) {
	if tileset.Config.TileWidth != data.TileSize || tileset.Config.TileHeight != data.TileSize {
		return nil, fmt.Errorf("tileset tile size %dx%d does not match map tile size %d",
			tileset.Config.TileWidth, tileset.Config.TileHeight, data.TileSize)
	}
	for _, layer := range data.Layers {
		for y, row := range layer.Tiles {
			for x, id := range row {
				if id > tileset.Count {
					return nil, fmt.Errorf("layer %s tile (%d, %d) has id %d, tileset holds %d", layer.Name, x, y, id, tileset.Count)
				}
			}
		}
	}
	return &Map{Data: data, Tileset: tileset}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	if data.TilesetPath == "" {
		return fmt.Errorf("tileset path is required")
	}

	if len(data.Layers) == 0 {
		return fmt.Errorf("map has no layers")
	}

	seen := make(map[string]bool, len(data.Layers))
	for _, layer := range data.Layers {
		if layer.Name == "" {
			return fmt.Errorf("layer name is required")
		}
		if seen[layer.Name] {
			return fmt.Errorf("duplicate layer %s", layer.Name)
		}
		seen[layer.Name] = true

		if len(layer.Tiles) != data.Height {
			return fmt.Errorf("layer %s height mismatch: expected %d, got %d", layer.Name, data.Height, len(layer.Tiles))
		}
		for y, row := range layer.Tiles {
			if len(row) != data.Width {
				return fmt.Errorf("layer %s width mismatch at row %d: expected %d, got %d", layer.Name, y, data.Width, len(row))
			}
			for x, id := range row {
				if id < 0 {
					return fmt.Errorf("layer %s has negative tile id at (%d, %d)", layer.Name, x, y)
				}
			}
		}
	}

	return nil
}

// WidthInPixels returns the map width in pixels.
func (m *Map) WidthInPixels() int {
	return m.Data.Width * m.Data.TileSize
}

// HeightInPixels returns the map height in pixels.
func (m *Map) HeightInPixels() int {
	return m.Data.Height * m.Data.TileSize
}

// Layer returns a layer by name.
func (m *Map) Layer(name string) (*Layer, bool) {
	for i := range m.Data.Layers {
		if m.Data.Layers[i].Name == name {
			return &m.Data.Layers[i], true
		}
	}
	return nil, false
}

// GetTileAt returns the tile ID on a layer at the given grid coordinates
func (m *Map) GetTileAt(layer string, x, y int) (int, error) {
	l, ok := m.Layer(layer)
	if !ok {
		return 0, fmt.Errorf("no such layer: %s", layer)
	}
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return 0, fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	return l.Tiles[y][x], nil
}

// IsSolid reports whether any colliding layer has a colliding tile at (x, y).
func (m *Map) IsSolid(x, y int) bool {
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return false
	}
	for _, l := range m.Data.Layers {
		if !l.Collides {
			continue
		}
		if id := l.Tiles[y][x]; id > 0 && m.Tileset.Collides(id-1) {
			return true
		}
	}
	return false
}

// SolidRects returns pixel rectangles for every solid tile. Runs of solid
// tiles in a row are merged into one rectangle.
func (m *Map) SolidRects() []image.Rectangle {
	ts := m.Data.TileSize
	var rects []image.Rectangle
	for y := 0; y < m.Data.Height; y++ {
		start := -1
		for x := 0; x <= m.Data.Width; x++ {
			solid := x < m.Data.Width && m.IsSolid(x, y)
			if solid && start < 0 {
				start = x
			}
			if !solid && start >= 0 {
				rects = append(rects, image.Rect(start*ts, y*ts, x*ts, (y+1)*ts))
				start = -1
			}
		}
	}
	return rects
}

// LayersBelow returns layers with depth below the given depth, in draw order.
func (m *Map) LayersBelow(depth int) []*Layer {
	return m.layersWhere(func(l *Layer) bool { return l.Depth < depth })
}

// LayersAbove returns layers with depth at or above the given depth, in draw order.
func (m *Map) LayersAbove(depth int) []*Layer {
	return m.layersWhere(func(l *Layer) bool { return l.Depth >= depth })
}

func (m *Map) layersWhere(keep func(*Layer) bool) []*Layer {
	var out []*Layer
	for i := range m.Data.Layers {
		if keep(&m.Data.Layers[i]) {
			out = append(out, &m.Data.Layers[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// DrawLayer draws the visible part of a layer offset by the camera.
func (m *Map) DrawLayer(screen render.Image, layer *Layer, camX, camY float64) {
	ts := m.Data.TileSize
	w, h := screen.Size()

	x0 := clamp(int(camX)/ts, 0, m.Data.Width)
	y0 := clamp(int(camY)/ts, 0, m.Data.Height)
	x1 := clamp(int(camX+float64(w))/ts+1, 0, m.Data.Width)
	y1 := clamp(int(camY+float64(h))/ts+1, 0, m.Data.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			id := layer.Tiles[y][x]
			if id == 0 {
				continue
			}
			screenX := float64(x*ts) - camX
			screenY := float64(y*ts) - camY
			// ids are range-checked in New
			_ = m.Tileset.DrawTile(screen, id-1, screenX, screenY)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
