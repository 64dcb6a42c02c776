// Package physics moves axis-aligned bodies through a tile world.
//
// Static geometry lives in a resolv.Space which serves as the broad phase;
// overlap resolution is done per axis on the rectangles themselves so a body
// slides along walls instead of sticking to them.
package physics

import (
	"image"
	"math"

	"github.com/solarlune/resolv"

	"chosenoffset.com/tilewalk/internal/movement"
)

// tags help resolv filter which shapes to test against
var tagSolid = resolv.NewTag("solid")

// maxSubSteps bounds the work done by a single Step.
const maxSubSteps = 1024

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

func rectFrom(r image.Rectangle) Rect {
	return Rect{X: float64(r.Min.X), Y: float64(r.Min.Y), W: float64(r.Dx()), H: float64(r.Dy())}
}

// Overlaps reports strict overlap; rectangles that share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// World holds static solids and the world bounds.
type World struct {
	Width, Height float64

	space  *resolv.Space
	solids map[resolv.IShape]Rect
}

// NewWorld creates a world of the given pixel size. cellSize is the resolv
// grid cell size, normally the map tile size.
func NewWorld(width, height, cellSize int, solids []image.Rectangle) *World {
	w := &World{
		Width:  float64(width),
		Height: float64(height),
		space:  resolv.NewSpace(width, height, cellSize, cellSize),
		solids: make(map[resolv.IShape]Rect, len(solids)),
	}
	for _, r := range solids {
		w.AddSolid(r)
	}
	return w
}

// AddSolid registers a static blocking rectangle.
func (w *World) AddSolid(r image.Rectangle) {
	rect := rectFrom(r)
	sh := resolv.NewRectangleFromTopLeft(rect.X, rect.Y, rect.W, rect.H)
	sh.Tags().Set(tagSolid)
	w.space.Add(sh)
	w.solids[sh] = rect
}

// SolidCount returns the number of registered solids.
func (w *World) SolidCount() int {
	return len(w.solids)
}

// Body is a moving rectangle with a velocity in pixels per second.
type Body struct {
	// X, Y is the top-left corner of the collision box.
	X, Y float64
	W, H float64

	// CollideWorldBounds keeps the body inside the world rectangle.
	CollideWorldBounds bool

	// Blocked reports which sides hit something during the last Step.
	Blocked Blocked

	world    *World
	shape    *resolv.ConvexPolygon
	velocity movement.Velocity
}

// Blocked records contact on each side.
type Blocked struct {
	Left, Right, Up, Down bool
}

// NewBody adds a body with its top-left corner at (x, y).
func (w *World) NewBody(x, y, width, height float64) *Body {
	b := &Body{
		X: x, Y: y, W: width, H: height,
		world: w,
		shape: resolv.NewRectangleFromTopLeft(x, y, width, height),
	}
	w.space.Add(b.shape)
	return b
}

// Rect returns the body's collision box.
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// SetVelocity replaces the velocity.
func (b *Body) SetVelocity(v movement.Velocity) {
	b.velocity = v
}

// Velocity returns the velocity after the last Step. An axis that was
// blocked reports zero.
func (b *Body) Velocity() movement.Velocity {
	return b.velocity
}

// Step integrates the velocity over dt seconds. Movement is split into
// sub-steps no longer than the body so fast bodies cannot skip over solids;
// each sub-step resolves x before y.
func (b *Body) Step(dt float64) {
	b.Blocked = Blocked{}

	remX, remY := b.velocity.X*dt, b.velocity.Y*dt
	limit := math.Min(b.W, b.H)
	for i := 0; (remX != 0 || remY != 0) && i < maxSubSteps; i++ {
		dx, dy := remX, remY
		if limit > 0 {
			dx, dy = clampAbs(remX, limit), clampAbs(remY, limit)
		}
		remX -= dx
		remY -= dy

		if dx != 0 {
			b.X += dx
			if b.resolveX(dx) {
				b.velocity.X = 0
				remX = 0
			}
		}
		if dy != 0 {
			b.Y += dy
			if b.resolveY(dy) {
				b.velocity.Y = 0
				remY = 0
			}
		}
	}

	if b.CollideWorldBounds {
		b.clampToWorld()
	}
	b.shape.SetPosition(b.X, b.Y)
}

func clampAbs(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}

func (b *Body) resolveX(dx float64) bool {
	hits := b.overlapping()
	for _, r := range hits {
		if dx > 0 {
			b.X = math.Min(b.X, r.X-b.W)
			b.Blocked.Right = true
		} else {
			b.X = math.Max(b.X, r.X+r.W)
			b.Blocked.Left = true
		}
	}
	return len(hits) > 0
}

func (b *Body) resolveY(dy float64) bool {
	hits := b.overlapping()
	for _, r := range hits {
		if dy > 0 {
			b.Y = math.Min(b.Y, r.Y-b.H)
			b.Blocked.Down = true
		} else {
			b.Y = math.Max(b.Y, r.Y+r.H)
			b.Blocked.Up = true
		}
	}
	return len(hits) > 0
}

// overlapping returns solids that strictly overlap the body at its current
// position. resolv narrows the candidates to nearby cells; the overlap test
// itself runs on the rectangles.
func (b *Body) overlapping() []Rect {
	b.shape.SetPosition(b.X, b.Y)
	self := b.Rect()

	var hits []Rect
	b.shape.SelectTouchingCells(1).FilterShapes().ByTags(tagSolid).ForEach(func(o resolv.IShape) bool {
		if r, ok := b.world.solids[o]; ok && self.Overlaps(r) {
			hits = append(hits, r)
		}
		return true
	})
	return hits
}

func (b *Body) clampToWorld() {
	if b.X < 0 {
		b.X = 0
		b.Blocked.Left = true
		b.velocity.X = 0
	}
	if b.Y < 0 {
		b.Y = 0
		b.Blocked.Up = true
		b.velocity.Y = 0
	}
	if maxX := b.world.Width - b.W; b.X > maxX {
		b.X = maxX
		b.Blocked.Right = true
		b.velocity.X = 0
	}
	if maxY := b.world.Height - b.H; b.Y > maxY {
		b.Y = maxY
		b.Blocked.Down = true
		b.velocity.Y = 0
	}
}
