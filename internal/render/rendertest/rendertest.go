// Package rendertest provides in-memory render implementations for tests.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/tilewalk/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// GeoM records translation and scale only.
type GeoM struct {
	TX, TY float64
	SX, SY float64
}

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	if g.SX == 0 {
		g.SX, g.SY = 1, 1
	}
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

func (g *GeoM) Reset() {
	*g = GeoM{}
}

// Draw is a recorded DrawImage call.
type Draw struct {
	Src   *Image
	X, Y  float64
	Alpha float32
}

// Image is a render.Image that records draw calls.
type Image struct {
	Rect     image.Rectangle
	Name     string
	Draws    []Draw
	Disposed bool
}

// NewImage returns an image of the given size.
func NewImage(w, h int) *Image {
	return &Image{Rect: image.Rect(0, 0, w, h)}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }

func (i *Image) Size() (int, int) { return i.Rect.Dx(), i.Rect.Dy() }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Rect: r.Intersect(i.Rect), Name: i.Name}
}

func (i *Image) Fill(color.Color) {}

func (i *Image) Clear() { i.Draws = nil }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	d := Draw{Src: src.(*Image)}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			d.X, d.Y = g.TX, g.TY
		}
		d.Alpha = opts.Alpha
	}
	i.Draws = append(i.Draws, d)
}

func (i *Image) Dispose() { i.Disposed = true }

// Loader serves images by path.
type Loader struct {
	Images map[string]*Image
	Loaded []string
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{Images: make(map[string]*Image)}
}

// Add registers an image of the given size under path.
func (l *Loader) Add(path string, w, h int) *Image {
	img := NewImage(w, h)
	img.Name = path
	l.Images[path] = img
	return img
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("no such image: %s", path)
	}
	l.Loaded = append(l.Loaded, path)
	return img, nil
}

// Renderer records shape draws.
type Renderer struct {
	Circles int
	Rects   int
	Texts   []string
}

func (r *Renderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.Circles++
}

func (r *Renderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.Rects++
}

func (r *Renderer) DrawText(_ render.Image, text string, _, _ int) {
	r.Texts = append(r.Texts, text)
}

// Input is a scriptable render.InputManager.
type Input struct {
	Keys        map[render.Key]bool
	Just        map[render.Key]bool
	Cursor      image.Point
	Mouse       bool
	TouchPoints []render.Touch
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{Keys: make(map[render.Key]bool), Just: make(map[render.Key]bool)}
}

func (in *Input) IsKeyPressed(key render.Key) bool     { return in.Keys[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }
func (in *Input) GetCursorPosition() (int, int)        { return in.Cursor.X, in.Cursor.Y }
func (in *Input) IsMouseButtonPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && in.Mouse
}
func (in *Input) Touches() []render.Touch { return in.TouchPoints }
