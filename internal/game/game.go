// Package game wires the rules, renderers, and input into the main loop.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubewell/internal/config"
	"github.com/Faultbox/cubewell/internal/engine/audio"
	"github.com/Faultbox/cubewell/internal/engine/camera"
	"github.com/Faultbox/cubewell/internal/engine/canvas"
	"github.com/Faultbox/cubewell/internal/engine/input"
	"github.com/Faultbox/cubewell/internal/engine/render"
	"github.com/Faultbox/cubewell/internal/engine/window"
	"github.com/Faultbox/cubewell/internal/game/hud"
	"github.com/Faultbox/cubewell/internal/game/states"
	"github.com/Faultbox/cubewell/internal/logger"
)

var backgroundColor = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF}

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window *window.Window
	canvas *canvas.Canvas
	input  *input.Input
	audio  *audio.Manager

	cam     *camera.Camera
	well    *render.WellRenderer
	blocks  *render.BlockRenderer
	preview *render.NextPieceRenderer
	overlay *hud.HUD

	session *Session
	states  *states.Manager

	winW, winH int
	showHints  bool
	fps        int
}

// New creates a game instance from the loaded configuration.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("well_width", cfg.Well.Width),
		zap.Int("well_height", cfg.Well.Height),
		zap.Int("well_depth", cfg.Well.Depth),
	)

	g := &Game{
		cfg:       cfg,
		winW:      cfg.Graphics.Width,
		winH:      cfg.Graphics.Height,
		showHints: cfg.Game.ShowHints,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Cubewell",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.canvas = canvas.New(g.window.Renderer())
	g.input = input.New()

	g.audio = audio.New()
	if err := g.audio.Init(); err != nil {
		// Audio is optional on headless hosts.
		logger.Warn("audio unavailable", zap.Error(err))
	}
	g.audio.SetMasterVolume(cfg.Audio.MasterVolume)
	g.audio.SetSFXVolume(cfg.Audio.SFXVolume)
	g.audio.SetMuted(cfg.Audio.Muted)

	g.cam = camera.New()

	style := render.CubeStyle{
		StrokeColor:  cfg.Well.StrokeRGBA(),
		StrokeWidth:  cfg.Well.StrokeWidth,
		Sticker:      cfg.Well.Sticker,
		StickerInset: cfg.Well.StickerInset,
		StickerBase:  cfg.Well.StrokeRGBA(),
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session = NewSession(cfg.Well.Width, cfg.Well.Height, cfg.Well.Depth, seed)

	dims := g.session.Grid().Dims()
	g.well = render.NewWellRenderer(g.cam, dims, cfg.Well.LineRGBA(), cfg.Well.LineWidth)
	g.well.UpdateSize(cfg.Well.CubeSize, cfg.Well.CubeGap)
	g.blocks = render.NewBlockRenderer(g.cam, dims, cfg.Well.CubeSize, cfg.Well.CubeGap, cfg.Well.GhostAlpha, style)
	g.preview = render.NewNextPieceRenderer(cfg.Well.CubeSize, cfg.Well.CubeGap, style)
	g.overlay = hud.New()

	g.states = states.NewManager()
	g.states.Change(newPlayingState(g))

	logger.Info("game initialized", zap.Int64("seed", seed))
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}

		for _, ev := range g.input.Events() {
			switch ev.Type {
			case input.EventWindowResize:
				g.winW = ev.Width
				g.winH = ev.Height
			case input.EventKeyDown:
				if ev.Key == sdl.SCANCODE_ESCAPE {
					g.running = false
				}
			}
			if err := g.states.HandleInput(ev); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
		}

		// 2. Update game state
		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		g.canvas.Clear(backgroundColor)
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.canvas.Present()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.fps = frameCount
			logger.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// wellCenter returns the screen position the well projects around.
func (g *Game) wellCenter() (float32, float32) {
	return float32(g.winW) / 2, float32(g.winH) / 2
}

// previewCenter returns the screen position of the next-piece preview.
func (g *Game) previewCenter() (float32, float32) {
	return float32(g.winW) - 110, 110
}
