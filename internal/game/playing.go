package game

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubewell/internal/engine/input"
	"github.com/Faultbox/cubewell/internal/engine/render"
	"github.com/Faultbox/cubewell/internal/game/hint"
	"github.com/Faultbox/cubewell/internal/grid"
	"github.com/Faultbox/cubewell/internal/logger"
)

// playingState runs a live game: it feeds input to the session, drains
// gameplay events into audio and renderer updates, and draws the scene.
type playingState struct {
	g *Game

	lastMouseX int
	lastMouseY int
}

func newPlayingState(g *Game) *playingState {
	return &playingState{g: g}
}

func (s *playingState) Enter() error {
	logger.Info("entering playing state", zap.Int("level", s.g.session.Level()))
	s.g.syncGrid(nil)
	s.g.syncPiece()
	s.g.syncNext()
	s.g.syncHint()
	return nil
}

func (s *playingState) Exit() error {
	return nil
}

func (s *playingState) Update(dt float64) error {
	g := s.g
	g.session.Update(dt)

	var moved, hardDropped, locked, gameOver bool
	var clearedLayers int
	for _, e := range g.session.DrainEvents() {
		switch e.Kind {
		case EventMoved:
			moved = true
		case EventHardDropped:
			hardDropped = true
		case EventLocked:
			locked = true
		case EventLayersCleared:
			clearedLayers = e.Layers
		case EventGameOver:
			gameOver = true
		}
	}

	if moved {
		g.audio.PlayMove()
	}
	if hardDropped {
		g.audio.PlayHardDrop()
	}
	if locked {
		if clearedLayers > 0 {
			g.audio.PlayClear(clearedLayers)
			logger.Info("layers cleared",
				zap.Int("layers", clearedLayers),
				zap.Int("score", g.session.Score()),
				zap.Int("level", g.session.Level()),
			)
		} else {
			g.audio.PlayLock()
		}
		g.syncGrid(g.session.LastLocked())
		g.syncNext()
		g.syncHint()
	}

	// The piece moves under gravity without raising events, so its view is
	// rebuilt every tick.
	g.syncPiece()

	if gameOver {
		g.audio.PlayGameOver()
		g.states.Change(newGameOverState(g))
	}

	g.blocks.Tick(dt)
	return nil
}

func (s *playingState) Render() error {
	s.g.renderScene()
	return nil
}

func (s *playingState) HandleInput(ev input.Event) error {
	g := s.g

	switch ev.Type {
	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_LEFT:
			g.session.Move(-1, 0)
		case sdl.SCANCODE_RIGHT:
			g.session.Move(1, 0)
		case sdl.SCANCODE_UP:
			g.session.Move(0, -1)
		case sdl.SCANCODE_DOWN:
			g.session.Move(0, 1)
		case sdl.SCANCODE_R:
			g.session.Rotate()
		case sdl.SCANCODE_SPACE:
			g.session.HardDrop()
		case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_S:
			g.session.SoftDrop()
		case sdl.SCANCODE_H:
			g.showHints = !g.showHints
			g.cfg.Game.ShowHints = g.showHints
			g.syncHint()
		case sdl.SCANCODE_M:
			g.cfg.Audio.Muted = !g.cfg.Audio.Muted
			g.audio.SetMuted(g.cfg.Audio.Muted)
		}

	case input.EventMouseDown:
		s.lastMouseX = ev.MouseX
		s.lastMouseY = ev.MouseY

	case input.EventMouseMove:
		if g.input.IsDragging() {
			dx := ev.MouseX - s.lastMouseX
			dy := ev.MouseY - s.lastMouseY
			g.cam.HandleDrag(float32(dx), float32(dy))
		}
		s.lastMouseX = ev.MouseX
		s.lastMouseY = ev.MouseY

	case input.EventMouseWheel:
		g.cam.HandleZoom(float32(ev.WheelY))
	}

	return nil
}

// renderScene draws the well, cubes, next-piece preview, and HUD. The
// game-over state reuses it under its overlay.
func (g *Game) renderScene() {
	cx, cy := g.wellCenter()
	g.well.Render(g.canvas, cx, cy)
	g.blocks.Render(g.canvas, cx, cy)

	px, py := g.previewCenter()
	g.canvas.DrawRect(px-80, py-80, 160, 160, g.cfg.Well.LineRGBA())
	g.preview.Render(g.canvas, px, py)

	g.overlay.Render(g.canvas, float32(g.winW),
		g.session.Score(), g.session.Level(), g.session.LayersCleared(),
		g.fps, g.cfg.Game.ShowFPS)
}

// syncPiece rebuilds the active piece and ghost views from the session.
func (g *Game) syncPiece() {
	p := g.session.Current()
	if p == nil {
		g.blocks.UpdatePiece(nil)
		g.blocks.UpdateGhost(nil, 0)
		return
	}
	view := &render.PieceView{
		Positions: p.WorldPositions(),
		Y:         p.Y,
		Color:     p.Color,
	}
	g.blocks.UpdatePiece(view)
	g.blocks.UpdateGhost(view, g.session.LandingY())
}

// syncGrid rebuilds the locked-cell cubes from a fresh grid snapshot.
// newlyLocked cells get a drop bounce.
func (g *Game) syncGrid(newlyLocked []grid.Pos) {
	g.blocks.UpdateGrid(g.session.Grid().GetFilledCells(), newlyLocked)
}

// syncNext pushes the upcoming shape into the preview renderer.
func (g *Game) syncNext() {
	n := g.session.Next()
	g.preview.Update(n.Type, n.Color, n.Matrix)
}

// syncHint recomputes the suggested placement for the active piece, or
// clears it when hints are off.
func (g *Game) syncHint() {
	p := g.session.Current()
	if !g.showHints || p == nil {
		g.blocks.UpdateHint(nil)
		return
	}
	if best := hint.Best(g.session.Grid(), p); best != nil {
		g.blocks.UpdateHint(best.Positions)
	} else {
		g.blocks.UpdateHint(nil)
	}
}
