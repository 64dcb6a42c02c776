package render

import (
	"image"
	"image/color"
)

// Renderer abstracts the drawing primitives the scene needs so the game
// logic does not depend on a specific graphics backend.
type Renderer interface {
	// Vector operations (joystick overlay, fade)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
}

// Image is a drawable surface.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	SubImage(r image.Rectangle) Image

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
	// Alpha scales the source alpha. Zero means fully opaque so the zero
	// value keeps the default behaviour.
	Alpha float32
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	Translate(tx, ty float64)
	Scale(sx, sy float64)
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// Set by the backend package on init.
var NewGeoM func() GeoM

// InputManager reports keyboard, mouse and touch state for the current tick.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	// Touches returns all active touches in no particular order.
	Touches() []Touch
}

// TouchID identifies a touch for as long as it stays on the screen.
type TouchID int

// Touch is an active touch point in logical screen pixels.
type Touch struct {
	ID   TouchID
	X, Y int
}

// Key represents a keyboard key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ResourceLoader loads images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game is driven by the Engine once per tick.
type Game interface {
	// Update is called every tick (60 times per second by default).
	Update() error

	// Draw is called every frame.
	Draw(screen Image)

	// Layout returns the logical screen size for the given outside size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	// SetTPS sets the fixed update rate.
	SetTPS(tps int)

	// RunGame blocks until the game ends.
	RunGame(game Game) error
}
