package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/tilewalk/internal/config"
	"chosenoffset.com/tilewalk/internal/logger"
	ebitenrender "chosenoffset.com/tilewalk/internal/render/ebiten"
	"chosenoffset.com/tilewalk/internal/scene"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilewalk: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilewalk: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("game exited with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	s, err := scene.New(cfg, scene.Deps{
		Loader:   loader,
		Renderer: renderer,
		Input:    inputMgr,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	width, height := cfg.WindowSize()
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	log.Info("starting game",
		zap.Int("window_width", width),
		zap.Int("window_height", height),
		zap.Int("tps", cfg.Window.TPS),
	)
	if err := engine.RunGame(s); err != nil && !errors.Is(err, scene.ErrQuit) {
		return err
	}
	log.Info("game closed", zap.Uint64("ticks", s.Ticks()))
	return nil
}
