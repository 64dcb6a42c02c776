package atlas

import (
	"image"
	"testing"

	"chosenoffset.com/tilewalk/internal/render/rendertest"
)

const tilesetJSON = `{
	"name": "tiles",
	"image_path": "tileset.png",
	"tile_width": 32,
	"tile_height": 32,
	"margin": 1,
	"spacing": 2,
	"tiles": [
		{"index": 0, "name": "grass", "properties": {"type": "floor"}},
		{"index": 5, "name": "wall", "properties": {"collides": true, "type": "wall", "height": 2}}
	]
}`

func TestTilesetGrid(t *testing.T) {
	config, err := ParseTilesetConfig([]byte(tilesetJSON))
	if err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	// 4 columns: 1 + 4*32 + 3*2 + 1 = 136
	ts, err := NewTileset(config, rendertest.NewImage(136, 70))
	if err != nil {
		t.Fatalf("NewTileset: %v", err)
	}
	if ts.Columns != 4 {
		t.Errorf("Expected 4 columns, got %d", ts.Columns)
	}
	if ts.Count != 8 {
		t.Errorf("Expected 8 tiles, got %d", ts.Count)
	}

	if got := ts.TileRect(0); got != image.Rect(1, 1, 33, 33) {
		t.Errorf("TileRect(0) = %v", got)
	}
	if got := ts.TileRect(5); got != image.Rect(35, 35, 67, 67) {
		t.Errorf("TileRect(5) = %v", got)
	}
}

func TestTilesetCollides(t *testing.T) {
	config, _ := ParseTilesetConfig([]byte(tilesetJSON))
	ts, err := NewTileset(config, rendertest.NewImage(136, 70))
	if err != nil {
		t.Fatalf("NewTileset: %v", err)
	}

	if !ts.Collides(5) {
		t.Error("Expected tile 5 to collide")
	}
	if ts.Collides(0) {
		t.Error("Expected tile 0 not to collide")
	}
	if ts.Collides(3) {
		t.Error("Expected undeclared tile not to collide")
	}
}

func TestTilesetRejectsOutOfRangeDefinition(t *testing.T) {
	config, _ := ParseTilesetConfig([]byte(tilesetJSON))
	// one column, two rows: indices 0 and 1 only
	if _, err := NewTileset(config, rendertest.NewImage(34, 68)); err == nil {
		t.Fatal("Expected error for tile index 5 outside a 2-tile image")
	}
}

func TestTilesetConfigValidation(t *testing.T) {
	bad := []string{
		`{"image_path": "a.png", "tile_width": 0, "tile_height": 32}`,
		`{"image_path": "a.png", "tile_width": 32, "tile_height": 32, "margin": -1}`,
		`{"tile_width": 32, "tile_height": 32}`,
	}
	for _, data := range bad {
		if _, err := ParseTilesetConfig([]byte(data)); err == nil {
			t.Errorf("Expected error for %s", data)
		}
	}
}

func TestTilesetSubImageRange(t *testing.T) {
	config, _ := ParseTilesetConfig([]byte(tilesetJSON))
	ts, _ := NewTileset(config, rendertest.NewImage(136, 70))
	if _, err := ts.SubImage(8); err == nil {
		t.Error("Expected error for index past the end")
	}
	if _, err := ts.SubImage(-1); err == nil {
		t.Error("Expected error for negative index")
	}
	img, err := ts.SubImage(1)
	if err != nil {
		t.Fatalf("SubImage(1): %v", err)
	}
	if img.Bounds() != image.Rect(35, 1, 67, 33) {
		t.Errorf("SubImage(1) bounds = %v", img.Bounds())
	}
}

func TestTileDefinitionProperties(t *testing.T) {
	config, _ := ParseTilesetConfig([]byte(tilesetJSON))
	ts, _ := NewTileset(config, rendertest.NewImage(136, 70))
	tile, ok := ts.GetTile(5)
	if !ok {
		t.Fatal("Expected tile 5")
	}

	if v := tile.GetTilePropertyString("type", ""); v != "wall" {
		t.Errorf("Expected type 'wall', got '%s'", v)
	}
	if v := tile.GetTilePropertyInt("height", 0); v != 2 {
		t.Errorf("Expected height 2, got %d", v)
	}
	if v := tile.GetTilePropertyBool("missing", true); !v {
		t.Error("Expected default value true for missing property")
	}
	if v := tile.GetTilePropertyInt("type", 7); v != 7 {
		t.Errorf("Expected default 7 for non-numeric property, got %d", v)
	}
}
