package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/tilewalk/internal/render"
)

// ErrFrameNotFound is returned when a named frame is not in the atlas.
var ErrFrameNotFound = errors.New("frame not found")

// Frame is a named sub-rectangle of the atlas image.
type Frame struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Rect returns the frame as an image rectangle.
func (f Frame) Rect() image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
}

// AtlasConfig is the JSON description of a texture atlas.
type AtlasConfig struct {
	Name      string           `json:"name"`
	ImagePath string           `json:"image_path"` // relative to the config file
	Frames    map[string]Frame `json:"frames"`
}

// Atlas is a loaded texture atlas: one image plus a frame lookup table.
type Atlas struct {
	Config *AtlasConfig
	Image  render.Image

	subImages map[string]render.Image
}

// ParseAtlasConfig decodes and validates an atlas description.
func ParseAtlasConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}

	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}

	if len(config.Frames) == 0 {
		return nil, fmt.Errorf("atlas %q defines no frames", config.Name)
	}

	for name, f := range config.Frames {
		if f.W <= 0 || f.H <= 0 {
			return nil, fmt.Errorf("frame %s has invalid size %dx%d", name, f.W, f.H)
		}
		if f.X < 0 || f.Y < 0 {
			return nil, fmt.Errorf("frame %s has negative position (%d, %d)", name, f.X, f.Y)
		}
	}

	return &config, nil
}

// LoadAtlas loads an atlas description and its image.
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseAtlasConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	imagePath := resolvePath(configPath, config.ImagePath)
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	return New(config, img)
}

// New builds an atlas from an already loaded image. Every frame must fit
// inside the image.
func New(config *AtlasConfig, img render.Image) (*Atlas, error) {
	bounds := img.Bounds()
	for name, f := range config.Frames {
		if !f.Rect().In(bounds) {
			return nil, fmt.Errorf("frame %s %v lies outside atlas image %v", name, f.Rect(), bounds)
		}
	}
	return &Atlas{
		Config:    config,
		Image:     img,
		subImages: make(map[string]render.Image, len(config.Frames)),
	}, nil
}

// HasFrame reports whether the atlas defines a frame with this name.
func (a *Atlas) HasFrame(name string) bool {
	_, ok := a.Config.Frames[name]
	return ok
}

// Frame returns the frame rectangle by name.
func (a *Atlas) Frame(name string) (Frame, bool) {
	f, ok := a.Config.Frames[name]
	return f, ok
}

// SubImage returns the image for a named frame. Sub-images are cached.
func (a *Atlas) SubImage(name string) (render.Image, error) {
	if img, ok := a.subImages[name]; ok {
		return img, nil
	}
	f, ok := a.Config.Frames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFrameNotFound, name)
	}
	img := a.Image.SubImage(f.Rect())
	a.subImages[name] = img
	return img, nil
}

// DrawFrame draws a named frame with its top-left corner at (x, y).
func (a *Atlas) DrawFrame(screen render.Image, name string, x, y float64) error {
	img, err := a.SubImage(name)
	if err != nil {
		return err
	}
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(x, y)
	screen.DrawImage(img, opts)
	return nil
}

func resolvePath(configPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}
