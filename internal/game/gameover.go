package game

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubewell/internal/engine/input"
	"github.com/Faultbox/cubewell/internal/logger"
)

// gameOverState dims the final board and waits for a restart.
type gameOverState struct {
	g *Game
}

func newGameOverState(g *Game) *gameOverState {
	return &gameOverState{g: g}
}

func (s *gameOverState) Enter() error {
	logger.Info("game over",
		zap.Int("score", s.g.session.Score()),
		zap.Int("level", s.g.session.Level()),
		zap.Int("layers", s.g.session.LayersCleared()),
	)
	return nil
}

func (s *gameOverState) Exit() error {
	return nil
}

func (s *gameOverState) Update(dt float64) error {
	// Let the last drop bounce settle behind the overlay.
	s.g.blocks.Tick(dt)
	return nil
}

func (s *gameOverState) Render() error {
	g := s.g
	g.renderScene()
	g.overlay.RenderGameOver(g.canvas, float32(g.winW), float32(g.winH), g.session.Score())
	return nil
}

func (s *gameOverState) HandleInput(ev input.Event) error {
	if ev.Type != input.EventKeyDown {
		return nil
	}
	switch ev.Key {
	case sdl.SCANCODE_N, sdl.SCANCODE_RETURN:
		s.g.session.Restart()
		s.g.preview.Clear()
		s.g.states.Change(newPlayingState(s.g))
	}
	return nil
}
