// Package scene runs the walking scene: input, movement, physics,
// animation and camera, drawn over a layered tilemap.
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"chosenoffset.com/tilewalk/internal/anim"
	"chosenoffset.com/tilewalk/internal/camera"
	"chosenoffset.com/tilewalk/internal/config"
	"chosenoffset.com/tilewalk/internal/input"
	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/movement"
	"chosenoffset.com/tilewalk/internal/physics"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/world/atlas"
	"chosenoffset.com/tilewalk/internal/world/maploader"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit requested")

var (
	joystickBase  = color.RGBA{0x77, 0x77, 0x77, 0xff}
	joystickThumb = color.RGBA{0x99, 0x99, 0x99, 0xff}
)

// Deps are the backend services a scene draws and reads input with.
type Deps struct {
	Loader   render.ResourceLoader
	Renderer render.Renderer
	Input    render.InputManager
	Logger   *zap.Logger
}

// Scene implements render.Game.
type Scene struct {
	cfg      *config.Config
	log      *zap.Logger
	renderer render.Renderer
	input    render.InputManager

	Map      *maploader.Map
	Atlas    *atlas.Atlas
	World    *physics.World
	Player   *Player
	Camera   *camera.Camera
	Keyboard *input.Keyboard
	Joystick *input.Joystick

	facing movement.Facing
	ticks  uint64
}

// New loads the map and character atlas named in cfg and builds the scene.
func New(cfg *config.Config, deps Deps) (*Scene, error) {
	log := logger.OrNop(deps.Logger)

	m, err := maploader.LoadMap(cfg.Assets.Map, deps.Loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	log.Info("map loaded",
		zap.String("path", cfg.Assets.Map),
		zap.String("name", m.Data.Name),
		zap.Int("width", m.WidthInPixels()),
		zap.Int("height", m.HeightInPixels()),
	)

	a, err := atlas.LoadAtlas(cfg.Assets.Atlas, deps.Loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas: %w", err)
	}
	log.Info("atlas loaded", zap.String("path", cfg.Assets.Atlas), zap.Int("frames", len(a.Config.Frames)))

	deps.Logger = log
	return NewFromAssets(cfg, deps, m, a)
}

// NewFromAssets builds the scene around an already loaded map and atlas.
func NewFromAssets(cfg *config.Config, deps Deps, m *maploader.Map, a *atlas.Atlas) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.OrNop(deps.Logger)
	pc := cfg.Player

	lib := anim.NewLibrary()
	if err := registerWalkClips(lib, a, pc.FramePrefix, pc.WalkFrames, pc.FrameRate); err != nil {
		return nil, err
	}
	if err := checkIdleFrames(a, pc.FramePrefix); err != nil {
		return nil, err
	}

	// the character starts facing up the screen
	startFrame := pc.FramePrefix + "-back"
	frame, _ := a.Frame(startFrame)

	world := physics.NewWorld(m.WidthInPixels(), m.HeightInPixels(), m.Data.TileSize, m.SolidRects())

	spawnX, spawnY := m.Data.PlayerSpawn.X, m.Data.PlayerSpawn.Y
	if pc.Spawn != nil {
		spawnX, spawnY = pc.Spawn.X, pc.Spawn.Y
	}

	player := &Player{
		Anim:   anim.NewPlayer(lib, startFrame),
		prefix: pc.FramePrefix,
		frameW: float64(frame.W),
		frameH: float64(frame.H),
		offX:   pc.Body.OffsetX,
		offY:   pc.Body.OffsetY,
	}
	player.Body = world.NewBody(
		spawnX-player.frameW/2+player.offX,
		spawnY-player.frameH/2+player.offY,
		pc.Body.Width, pc.Body.Height,
	)
	player.Body.CollideWorldBounds = true

	cam := camera.New(cfg.Window.Width, cfg.Window.Height)
	cam.SetBounds(image.Rect(0, 0, m.WidthInPixels(), m.HeightInPixels()))
	cam.Follow(player.Position())
	cam.FadeIn(cfg.Camera.FadeIn)

	bindings := input.CursorBindings()
	if cfg.Input.WASD {
		bindings = bindings.WithWASD()
	}

	js := cfg.Input.Joystick
	mode, err := input.ParseDirMode(js.Dir)
	if err != nil {
		return nil, err
	}
	joystick := input.NewJoystick(input.JoystickConfig{
		X:           js.X,
		Y:           js.Y,
		Radius:      js.Radius,
		BaseRadius:  js.BaseRadius,
		ThumbRadius: js.ThumbRadius,
		ForceMin:    js.ForceMin,
		Mode:        mode,
	})
	joystick.SetEnabled(js.Enabled)

	log.Info("scene ready",
		zap.Float64("spawn_x", spawnX),
		zap.Float64("spawn_y", spawnY),
		zap.Int("solids", world.SolidCount()),
		zap.Int("clips", lib.Len()),
		zap.Bool("joystick", js.Enabled),
		zap.Stringer("joystick_dir", mode),
	)

	return &Scene{
		cfg:      cfg,
		log:      log,
		renderer: deps.Renderer,
		input:    deps.Input,
		Map:      m,
		Atlas:    a,
		World:    world,
		Player:   player,
		Camera:   cam,
		Keyboard: input.NewKeyboard(deps.Input, bindings),
		Joystick: joystick,
	}, nil
}

// Update advances the scene by one tick.
func (s *Scene) Update() error {
	if s.input.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}

	dt := s.cfg.TickSeconds()
	body := s.Player.Body

	// velocity after last tick's collisions picks the idle frame
	prev := body.Velocity()

	s.Joystick.Update(s.input)
	intent := input.Merge(s.Keyboard, s.Joystick)

	res := movement.Compute(intent, prev, s.cfg.Player.Speed)
	body.SetVelocity(res.Velocity)
	body.Step(dt)

	if err := s.Player.Apply(res); err != nil {
		return fmt.Errorf("failed to animate player: %w", err)
	}
	s.Player.Anim.Update(dt)

	if res.Facing != s.facing {
		s.log.Debug("facing changed",
			zap.Stringer("from", s.facing),
			zap.Stringer("to", res.Facing),
			zap.Stringer("idle", res.Idle),
			zap.String("frame", s.Player.Frame()),
		)
		s.facing = res.Facing
	}

	s.Camera.Follow(s.Player.Position())
	s.Camera.Update(dt)
	s.ticks++
	return nil
}

// Draw renders map layers below the player, the player, layers above it,
// then the screen-space overlays.
func (s *Scene) Draw(screen render.Image) {
	screen.Fill(colornames.Black)

	depth := s.cfg.Player.Depth
	for _, l := range s.Map.LayersBelow(depth) {
		s.Map.DrawLayer(screen, l, s.Camera.X, s.Camera.Y)
	}
	s.drawPlayer(screen)
	for _, l := range s.Map.LayersAbove(depth) {
		s.Map.DrawLayer(screen, l, s.Camera.X, s.Camera.Y)
	}

	if s.cfg.Debug {
		s.drawDebug(screen)
	}
	if s.cfg.Input.Joystick.Enabled {
		s.drawJoystick(screen)
	}
	s.drawFade(screen)
}

func (s *Scene) drawPlayer(screen render.Image) {
	name := s.Player.Frame()
	f, ok := s.Atlas.Frame(name)
	if !ok {
		return
	}
	x, y := s.Player.Position()
	sx, sy := s.Camera.WorldToScreen(x-float64(f.W)/2, y-float64(f.H)/2)
	if err := s.Atlas.DrawFrame(screen, name, sx, sy); err != nil {
		s.log.Warn("failed to draw player", zap.String("frame", name), zap.Error(err))
	}
}

func (s *Scene) drawJoystick(screen render.Image) {
	js := s.cfg.Input.Joystick
	cfg := s.Joystick.Config()
	tx, ty := s.Joystick.Thumb()

	s.renderer.FillCircle(screen, float32(cfg.X), float32(cfg.Y), float32(cfg.BaseRadius), withAlpha(joystickBase, js.Alpha))
	s.renderer.FillCircle(screen, float32(tx), float32(ty), float32(cfg.ThumbRadius), withAlpha(joystickThumb, js.Alpha))
}

func (s *Scene) drawFade(screen render.Image) {
	a := s.Camera.Alpha()
	if a >= 1 {
		return
	}
	w, h := screen.Size()
	s.renderer.FillRect(screen, 0, 0, float32(w), float32(h), withAlpha(colornames.Black, 1-a))
}

func (s *Scene) drawDebug(screen render.Image) {
	r := s.Player.Body.Rect()
	x, y := s.Camera.WorldToScreen(r.X, r.Y)
	s.renderer.FillRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), withAlpha(colornames.Magenta, 0.4))

	px, py := s.Player.Position()
	v := s.Player.Body.Velocity()
	status := fmt.Sprintf("pos %.0f,%.0f vel %.0f,%.0f %s %s", px, py, v.X, v.Y, s.facing, s.Player.Frame())
	s.renderer.DrawText(screen, status, 4, 4)
}

// Layout returns the fixed logical screen size; the window zoom scales it.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.Window.Width, s.cfg.Window.Height
}

// Ticks returns the number of updates run so far.
func (s *Scene) Ticks() uint64 {
	return s.ticks
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}
