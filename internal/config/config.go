// Package config loads the game settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/tilewalk/internal/logger"
)

// Config holds every tunable of the game.
type Config struct {
	Window  WindowConfig        `yaml:"window"`
	Assets  AssetsConfig        `yaml:"assets"`
	Player  PlayerConfig        `yaml:"player"`
	Input   InputConfig         `yaml:"input"`
	Camera  CameraConfig        `yaml:"camera"`
	Logging logger.LoggerConfig `yaml:"logging"`

	// Debug draws the player's collision box and a status line.
	Debug bool `yaml:"debug"`
}

// WindowConfig is the logical screen and how it is scaled on the desktop.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`  // logical pixels
	Height int    `yaml:"height"` // logical pixels
	Zoom   int    `yaml:"zoom"`   // window = logical size * zoom
	TPS    int    `yaml:"tps"`    // updates per second
}

// AssetsConfig points at the map and the character atlas.
type AssetsConfig struct {
	Map   string `yaml:"map"`
	Atlas string `yaml:"atlas"`
}

// Point is a world position in pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BodyConfig is the collision box relative to the sprite's top-left corner.
type BodyConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// PlayerConfig controls the walking character.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // pixels per second

	// Spawn overrides the map's player_spawn when set.
	Spawn *Point `yaml:"spawn"`

	// FramePrefix names the atlas frames: <prefix>-back for the idle
	// frame and <prefix>-left-walk.000 for walk frames.
	FramePrefix string     `yaml:"frame_prefix"`
	WalkFrames  int        `yaml:"walk_frames"`
	FrameRate   float64    `yaml:"frame_rate"`
	Body        BodyConfig `yaml:"body"`

	// Depth of the player sprite; map layers at or above it draw on top.
	Depth int `yaml:"depth"`
}

// JoystickConfig places the on-screen stick.
type JoystickConfig struct {
	Enabled     bool    `yaml:"enabled"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Radius      float64 `yaml:"radius"`
	BaseRadius  float64 `yaml:"base_radius"`
	ThumbRadius float64 `yaml:"thumb_radius"`
	ForceMin    float64 `yaml:"force_min"`
	Dir         string  `yaml:"dir"` // up&down, left&right, 4dir or 8dir
	Alpha       float64 `yaml:"alpha"`
}

// InputConfig selects the input devices.
type InputConfig struct {
	WASD     bool           `yaml:"wasd"`
	Joystick JoystickConfig `yaml:"joystick"`
}

// CameraConfig controls scrolling effects.
type CameraConfig struct {
	FadeIn time.Duration `yaml:"fade_in"`
}

// DefaultConfig returns the settings of the town demo
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "tilewalk",
			Width:  400,
			Height: 300,
			Zoom:   2,
			TPS:    60,
		},
		Assets: AssetsConfig{
			Map:   "assets/town.json",
			Atlas: "assets/atlas.json",
		},
		Player: PlayerConfig{
			Speed:       80,
			FramePrefix: "misa",
			WalkFrames:  4,
			FrameRate:   10,
			Body: BodyConfig{
				Width:   14,
				Height:  14,
				OffsetX: 9,
				OffsetY: 18,
			},
			Depth: 10,
		},
		Input: InputConfig{
			Joystick: JoystickConfig{
				Enabled:     true,
				X:           60,
				Y:           240,
				Radius:      24,
				BaseRadius:  40,
				ThumbRadius: 20,
				ForceMin:    16,
				Dir:         "8dir",
				Alpha:       0.5,
			},
		},
		Camera: CameraConfig{
			FadeIn: 3 * time.Second,
		},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads config from a YAML file on top of DefaultConfig. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Zoom <= 0 {
		return fmt.Errorf("window zoom must be positive: %d", c.Window.Zoom)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive: %d", c.Window.TPS)
	}
	if c.Assets.Map == "" || c.Assets.Atlas == "" {
		return fmt.Errorf("map and atlas paths are required")
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive: %v", c.Player.Speed)
	}
	if c.Player.FramePrefix == "" {
		return fmt.Errorf("player frame prefix is required")
	}
	if c.Player.WalkFrames <= 0 || c.Player.FrameRate <= 0 {
		return fmt.Errorf("walk animation needs frames and a frame rate: %d at %v fps", c.Player.WalkFrames, c.Player.FrameRate)
	}
	if c.Player.Body.Width <= 0 || c.Player.Body.Height <= 0 {
		return fmt.Errorf("player body size must be positive: %vx%v", c.Player.Body.Width, c.Player.Body.Height)
	}
	if c.Camera.FadeIn < 0 {
		return fmt.Errorf("fade-in must not be negative: %v", c.Camera.FadeIn)
	}
	if js := c.Input.Joystick; js.Enabled {
		if js.Radius <= 0 || js.BaseRadius <= 0 || js.ThumbRadius <= 0 {
			return fmt.Errorf("joystick radii must be positive")
		}
		if js.ForceMin < 0 {
			return fmt.Errorf("joystick force_min must not be negative: %v", js.ForceMin)
		}
		if js.Alpha < 0 || js.Alpha > 1 {
			return fmt.Errorf("joystick alpha must be within [0, 1]: %v", js.Alpha)
		}
		switch js.Dir {
		case "", "up&down", "left&right", "4dir", "8dir":
		default:
			return fmt.Errorf("unknown joystick dir %q", js.Dir)
		}
	}
	return nil
}

// WindowSize returns the desktop window size in pixels.
func (c *Config) WindowSize() (int, int) {
	return c.Window.Width * c.Window.Zoom, c.Window.Height * c.Window.Zoom
}

// TickSeconds is the duration of one update in seconds.
func (c *Config) TickSeconds() float64 {
	return 1 / float64(c.Window.TPS)
}
