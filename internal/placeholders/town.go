package placeholders

import (
	"image"
	"math/rand"

	"chosenoffset.com/tilewalk/internal/world/maploader"
)

// TownOptions shapes the generated town map.
type TownOptions struct {
	Width, Height int // in tiles
	Seed          int64
	Trees         int
	Spawn         maploader.SpawnPoint
}

// DefaultTownOptions gives a 50x40 town with the player near the bottom
// left, on the main path.
func DefaultTownOptions() TownOptions {
	return TownOptions{
		Width:  50,
		Height: 40,
		Seed:   9,
		Trees:  60,
		Spawn:  maploader.SpawnPoint{X: 272, Y: 1220},
	}
}

type grid [][]int

func newGrid(w, h int) grid {
	g := make(grid, h)
	for y := range g {
		g[y] = make([]int, w)
	}
	return g
}

// set stores a tileset index; map ids are index+1.
func (g grid) set(x, y, index int) {
	if y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) {
		g[y][x] = index + 1
	}
}

func (g grid) is(x, y, index int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) && g[y][x] == index+1
}

func (g grid) empty(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) && g[y][x] == 0
}

// Town lays out the demo map: grass and paths with a pond on "bund", a
// border wall, houses and tree trunks on "verden", canopies on "over".
func Town(opts TownOptions) *maploader.MapData {
	w, h := opts.Width, opts.Height
	rng := rand.New(rand.NewSource(opts.Seed))

	ground := newGrid(w, h)
	world := newGrid(w, h)
	over := newGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch n := rng.Intn(10); {
			case n == 0:
				ground.set(x, y, TileFlowers)
			case n < 3:
				ground.set(x, y, TileGrassDark)
			default:
				ground.set(x, y, TileGrass)
			}
		}
	}

	spawnX := int(opts.Spawn.X) / TileSize
	spawnY := int(opts.Spawn.Y) / TileSize

	// main road across the town and a lane up from the spawn
	roadY := h * 3 / 4
	for x := 1; x < w-1; x++ {
		ground.set(x, roadY, TilePath)
		ground.set(x, roadY+1, TilePath)
	}
	for y := h / 4; y < h-1; y++ {
		ground.set(spawnX, y, TilePath)
		ground.set(spawnX+1, y, TilePath)
	}

	// pond
	pond := image.Pt(w*7/10, h*3/10)
	rx, ry := max(w/10, 2), max(h/13, 2)
	for y := pond.Y - ry; y <= pond.Y+ry; y++ {
		for x := pond.X - rx; x <= pond.X+rx; x++ {
			dx := float64(x-pond.X) / float64(rx)
			dy := float64(y-pond.Y) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				ground.set(x, y, TileWater)
			}
		}
	}

	// border wall
	for x := 0; x < w; x++ {
		world.set(x, 0, TileWall)
		world.set(x, h-1, TileWall)
	}
	for y := 0; y < h; y++ {
		world.set(0, y, TileWall)
		world.set(w-1, y, TileWall)
	}

	// houses sit above the road: roof rows with a wall row in front
	houses := []image.Rectangle{
		image.Rect(w*3/10, roadY-5, w*3/10+6, roadY-1),
		image.Rect(w*5/10, roadY-6, w*5/10+7, roadY-1),
		image.Rect(w*3/10, h/5, w*3/10+5, h/5+4),
	}
	for _, r := range houses {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if y == r.Max.Y-1 {
					world.set(x, y, TileWall)
				} else {
					world.set(x, y, TileRoof)
				}
			}
		}
	}

	// trees keep clear of paths, water, buildings and the spawn
	placed := 0
	for tries := 0; placed < opts.Trees && tries < opts.Trees*50; tries++ {
		x := 1 + rng.Intn(w-2)
		y := 2 + rng.Intn(h-3)
		if abs(x-spawnX) <= 2 && abs(y-spawnY) <= 2 {
			continue
		}
		if !world.empty(x, y) || !world.empty(x, y-1) || !over.empty(x, y-1) {
			continue
		}
		if ground.is(x, y, TilePath) || ground.is(x, y, TileWater) || ground.is(x, y-1, TileWater) {
			continue
		}
		// keep a free tile beside each trunk so forests stay walkable
		if !world.empty(x-1, y) || !world.empty(x+1, y) {
			continue
		}
		world.set(x, y, TileTrunk)
		over.set(x, y-1, TileCanopy)
		placed++
	}

	return &maploader.MapData{
		Name:        "town",
		Width:       w,
		Height:      h,
		TileSize:    TileSize,
		TilesetPath: "tileset.json",
		PlayerSpawn: opts.Spawn,
		Layers: []maploader.Layer{
			{Name: "bund", Depth: 0, Collides: true, Tiles: ground},
			{Name: "verden", Depth: 1, Collides: true, Tiles: world},
			{Name: "over", Depth: 10, Tiles: over},
		},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
