package game

import (
	"github.com/Faultbox/cubewell/internal/game/piece"
	"github.com/Faultbox/cubewell/internal/grid"
)

// EventKind identifies a gameplay event raised during a session tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventSpawned
	EventMoved
	EventLocked
	EventHardDropped
	EventLayersCleared
	EventGameOver
)

// Event is a gameplay event with an optional payload.
type Event struct {
	Kind   EventKind
	Layers int // for EventLayersCleared
}

// Session holds the rules side of a single game: the well, the active and
// upcoming pieces, scoring, and gravity. It knows nothing about rendering
// or input devices, which keeps it testable headless.
type Session struct {
	grid *grid.Grid
	bag  *piece.Bag

	current *piece.Piece
	next    piece.Shape

	score         int
	level         int
	layersCleared int

	dropTimer  float64
	over       bool
	lastLocked []grid.Pos

	events []Event
}

// NewSession creates a session over a fresh well and deals the first piece.
func NewSession(width, height, depth int, seed int64) *Session {
	s := &Session{
		grid:  grid.New(width, height, depth),
		bag:   piece.NewBag(seed),
		level: 1,
	}
	s.next = s.bag.Next()
	s.spawn()
	return s
}

// Grid returns the session's well.
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// Current returns the active piece, or nil after game over.
func (s *Session) Current() *piece.Piece {
	return s.current
}

// Next returns the upcoming shape.
func (s *Session) Next() piece.Shape {
	return s.next
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// LayersCleared returns the total number of layers cleared.
func (s *Session) LayersCleared() int { return s.layersCleared }

// IsOver reports whether the game has ended.
func (s *Session) IsOver() bool { return s.over }

// LastLocked returns the cells of the most recently locked piece.
func (s *Session) LastLocked() []grid.Pos {
	return s.lastLocked
}

// DrainEvents returns the events raised since the last drain and clears
// them.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Update advances gravity by dt seconds, descending or locking the active
// piece when the drop timer elapses.
func (s *Session) Update(dt float64) {
	if s.over || s.current == nil {
		return
	}

	s.dropTimer += dt
	interval := s.dropInterval()
	for s.dropTimer >= interval {
		s.dropTimer -= interval
		if !s.descend() {
			s.lock()
			return
		}
	}
}

// dropInterval is the gravity period in seconds at the current level.
func (s *Session) dropInterval() float64 {
	iv := 0.9 - 0.07*float64(s.level-1)
	if iv < 0.12 {
		iv = 0.12
	}
	return iv
}

// Move shifts the active piece horizontally if the target cells are free.
func (s *Session) Move(dx, dz int) bool {
	if s.over || s.current == nil {
		return false
	}
	p := s.current
	if !s.grid.CanPlace(p.PositionsAt(p.X+dx, p.Y, p.Z+dz)) {
		return false
	}
	p.X += dx
	p.Z += dz
	s.emit(Event{Kind: EventMoved})
	return true
}

// rotationNudges are the origin offsets tried when a raw rotation collides.
var rotationNudges = [5][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Rotate turns the active piece a quarter turn around the vertical axis,
// nudging it one cell sideways when the raw rotation collides. Returns
// false if no nudge fits.
func (s *Session) Rotate() bool {
	if s.over || s.current == nil {
		return false
	}
	p := s.current
	rotated := p.RotatedMatrix()

	probe := piece.New(piece.Shape{Matrix: rotated})
	for _, n := range rotationNudges {
		if s.grid.CanPlace(probe.PositionsAt(p.X+n[0], p.Y, p.Z+n[1])) {
			p.SetMatrix(rotated)
			p.X += n[0]
			p.Z += n[1]
			s.emit(Event{Kind: EventMoved})
			return true
		}
	}
	return false
}

// SoftDrop descends the active piece one layer, locking it if it is
// already resting. A successful descent scores one point per cell.
func (s *Session) SoftDrop() {
	if s.over || s.current == nil {
		return
	}
	if s.descend() {
		s.score++
		s.dropTimer = 0
		return
	}
	s.lock()
}

// HardDrop slams the active piece to its landing height and locks it,
// scoring two points per layer fallen.
func (s *Session) HardDrop() {
	if s.over || s.current == nil {
		return
	}
	p := s.current
	landing := s.grid.CalculateLandingY(p.WorldPositions(), p.Y)
	if landing > p.Y {
		s.score += 2 * (landing - p.Y)
		p.Y = landing
	}
	s.emit(Event{Kind: EventHardDropped})
	s.lock()
}

// LandingY returns the active piece's landing origin height.
func (s *Session) LandingY() int {
	if s.current == nil {
		return 0
	}
	return s.grid.CalculateLandingY(s.current.WorldPositions(), s.current.Y)
}

// descend moves the piece down one layer, returning false if it is
// resting.
func (s *Session) descend() bool {
	p := s.current
	if !s.grid.CanPlace(p.PositionsAt(p.X, p.Y+1, p.Z)) {
		return false
	}
	p.Y++
	return true
}

// layerPoints is the base score for clearing n layers at once.
func layerPoints(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	default:
		return 800
	}
}

// lock commits the active piece to the well, resolves layer clears and
// scoring, and spawns the next piece unless the game is over.
func (s *Session) lock() {
	p := s.current
	positions := p.WorldPositions()
	s.grid.PlacePiece(positions, p.Color)
	s.lastLocked = positions
	s.current = nil
	s.emit(Event{Kind: EventLocked})

	if res := s.grid.CheckAndClearLayers(); res.ClearedCount > 0 {
		s.score += layerPoints(res.ClearedCount) * s.level
		s.layersCleared += res.ClearedCount
		s.level = 1 + s.layersCleared/5
		s.emit(Event{Kind: EventLayersCleared, Layers: res.ClearedCount})
	}

	if s.grid.IsGameOver() {
		s.over = true
		s.emit(Event{Kind: EventGameOver})
		return
	}

	s.spawn()
}

// spawn activates the upcoming shape centered at the top of the well and
// deals the next one. A blocked spawn ends the game.
func (s *Session) spawn() {
	shape := s.next
	s.next = s.bag.Next()

	p := piece.New(shape)
	rows := len(shape.Matrix)
	cols := 0
	if rows > 0 {
		cols = len(shape.Matrix[0])
	}
	p.X = (s.grid.Width() - cols) / 2
	p.Y = 0
	p.Z = (s.grid.Depth() - rows) / 2

	if !s.grid.CanPlace(p.WorldPositions()) {
		s.over = true
		s.emit(Event{Kind: EventGameOver})
		return
	}

	s.current = p
	s.dropTimer = 0
	s.emit(Event{Kind: EventSpawned})
}

// Restart resets the session to a fresh well, keeping the bag's RNG
// sequence going.
func (s *Session) Restart() {
	s.grid.Clear()
	s.score = 0
	s.level = 1
	s.layersCleared = 0
	s.over = false
	s.lastLocked = nil
	s.events = nil
	s.next = s.bag.Next()
	s.spawn()
}
