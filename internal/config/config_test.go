package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if w, h := cfg.WindowSize(); w != 800 || h != 600 {
		t.Errorf("WindowSize = %dx%d, expected 800x600", w, h)
	}
	if cfg.Player.Speed != 80 {
		t.Errorf("Player.Speed = %v, expected 80", cfg.Player.Speed)
	}
	if cfg.Player.Spawn != nil {
		t.Errorf("Player.Spawn = %+v, expected nil so the map spawn is used", cfg.Player.Spawn)
	}
	if cfg.Camera.FadeIn != 3*time.Second {
		t.Errorf("Camera.FadeIn = %v, expected 3s", cfg.Camera.FadeIn)
	}
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds = %v, expected 1/60", got)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:       "overrides on top of defaults",
			createFile: true,
			content: `window:
  zoom: 3
player:
  speed: 120
  spawn:
    x: 10
    y: 20
input:
  wasd: true
  joystick:
    dir: 4dir
camera:
  fade_in: 500ms
logging:
  level: debug
`,
			validate: func(t *testing.T, cfg *Config, err error) {
				if cfg.Window.Zoom != 3 || cfg.Window.Width != 400 {
					t.Errorf("Window = %+v, expected zoom 3 with default width", cfg.Window)
				}
				if cfg.Player.Speed != 120 {
					t.Errorf("Player.Speed = %v, expected 120", cfg.Player.Speed)
				}
				if cfg.Player.Spawn == nil || cfg.Player.Spawn.X != 10 || cfg.Player.Spawn.Y != 20 {
					t.Errorf("Player.Spawn = %+v, expected (10, 20)", cfg.Player.Spawn)
				}
				if cfg.Player.Body.OffsetY != 18 {
					t.Errorf("Player.Body.OffsetY = %v, expected default 18", cfg.Player.Body.OffsetY)
				}
				if !cfg.Input.WASD || cfg.Input.Joystick.Dir != "4dir" {
					t.Errorf("Input = %+v", cfg.Input)
				}
				if cfg.Input.Joystick.Radius != 24 {
					t.Errorf("Joystick.Radius = %v, expected default 24", cfg.Input.Joystick.Radius)
				}
				if cfg.Camera.FadeIn != 500*time.Millisecond {
					t.Errorf("Camera.FadeIn = %v, expected 500ms", cfg.Camera.FadeIn)
				}
				if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
					t.Errorf("Logging = %+v", cfg.Logging)
				}
			},
		},
		{
			name:       "missing file gives defaults",
			createFile: false,
			validate: func(t *testing.T, cfg *Config, err error) {
				if cfg.Window.Width != 400 || cfg.Assets.Map != "assets/town.json" {
					t.Errorf("expected defaults, got %+v", cfg)
				}
			},
		},
		{
			name:       "empty file gives defaults",
			createFile: true,
			content:    "",
			validate: func(t *testing.T, cfg *Config, err error) {
				if cfg.Player.FramePrefix != "misa" {
					t.Errorf("Player.FramePrefix = %q, expected misa", cfg.Player.FramePrefix)
				}
			},
		},
		{
			name:       "malformed yaml",
			createFile: true,
			content:    "window:\n  width: [400\n",
			wantErr:    true,
			validate: func(t *testing.T, cfg *Config, err error) {
				if !strings.Contains(err.Error(), "failed to parse config") {
					t.Errorf("expected parse error, got %v", err)
				}
			},
		},
		{
			name:       "invalid values",
			createFile: true,
			content:    "player:\n  speed: -5\n",
			wantErr:    true,
			validate: func(t *testing.T, cfg *Config, err error) {
				if !strings.Contains(err.Error(), "speed") {
					t.Errorf("expected speed error, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if tt.createFile {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}

			cfg, err := Load(configPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg == nil {
				t.Fatal("Load() returned nil config")
			}
			if tt.validate != nil {
				tt.validate(t, cfg, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"zero width":     func(c *Config) { c.Window.Width = 0 },
		"zero zoom":      func(c *Config) { c.Window.Zoom = 0 },
		"zero tps":       func(c *Config) { c.Window.TPS = 0 },
		"no map":         func(c *Config) { c.Assets.Map = "" },
		"no prefix":      func(c *Config) { c.Player.FramePrefix = "" },
		"no frames":      func(c *Config) { c.Player.WalkFrames = 0 },
		"flat body":      func(c *Config) { c.Player.Body.Height = 0 },
		"negative fade":  func(c *Config) { c.Camera.FadeIn = -time.Second },
		"joystick dir":   func(c *Config) { c.Input.Joystick.Dir = "diagonal" },
		"joystick alpha": func(c *Config) { c.Input.Joystick.Alpha = 2 },
		"joystick size":  func(c *Config) { c.Input.Joystick.Radius = 0 },
	}
	for name, mutate := range tests {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	cfg := DefaultConfig()
	cfg.Input.Joystick.Enabled = false
	cfg.Input.Joystick.Radius = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled joystick should not be validated: %v", err)
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("config.yaml drifted from DefaultConfig:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}
