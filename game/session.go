package game

import (
	"errors"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/google/uuid"
)

// Session-related errors.
var (
	ErrNilMaze             = errors.New("session requires a maze")
	ErrInvalidGoalPosition = errors.New("goal is out of the maze")
)

// Session represents one run of one level by one player: the maze, the
// player and goal positions, and the completion timer. Blocked moves are
// no-ops; reaching the goal finishes the run and freezes the elapsed time.
type Session struct {
	id           uuid.UUID
	playerID     uuid.UUID
	level        int
	maze         Maze
	playerPos    maze.CellPosition
	goalPos      maze.CellPosition
	startedAt    time.Time
	finishedAt   time.Time
	won          bool
	sync.RWMutex // Lock for thread safety.
}

// Config holds parameters for creating a Session.
type Config struct {
	PlayerID uuid.UUID
	Level    int
	Maze     Maze
	Goal     maze.CellPosition
}

// NewSession creates a session for the given player and maze. The player
// always starts at (0,0); the clock starts immediately.
func NewSession(c *Config) (*Session, error) {
	if c.Maze == nil {
		return nil, ErrNilMaze
	}

	if c.Level < minLevel {
		return nil, ErrInvalidLevel
	}

	if !c.Maze.InBound(c.Goal.Row, c.Goal.Col) {
		return nil, ErrInvalidGoalPosition
	}

	return &Session{
		id:        uuid.New(),
		playerID:  c.PlayerID,
		level:     c.Level,
		maze:      c.Maze,
		playerPos: maze.CellPosition{Row: 0, Col: 0},
		goalPos:   c.Goal,
		startedAt: time.Now().UTC(),
	}, nil
}

// Move attempts to shift the player one cell in the given compass direction.
// A move blocked by a wall, the grid edge, or an unknown direction leaves the
// position unchanged and reports moved=false. Reaching the goal marks the
// session won and records the finish time.
func (s *Session) Move(direction string) (moved bool, won bool) {
	s.Lock()
	defer s.Unlock()

	if s.won {
		return false, true
	}

	move, err := s.maze.NewValidMove(s.playerPos, direction)
	if err != nil {
		return false, false
	}

	s.playerPos = move.To
	if s.playerPos == s.goalPos {
		s.won = true
		s.finishedAt = time.Now().UTC()
	}
	return true, s.won
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// PlayerID returns the owning player's identifier.
func (s *Session) PlayerID() uuid.UUID {
	return s.playerID
}

// Level returns the level number this session plays.
func (s *Session) Level() int {
	return s.level
}

// Maze returns the maze this session plays on.
func (s *Session) Maze() Maze {
	return s.maze
}

// PlayerPos returns the player's current position.
func (s *Session) PlayerPos() maze.CellPosition {
	s.RLock()
	defer s.RUnlock()
	return s.playerPos
}

// GoalPos returns the goal position.
func (s *Session) GoalPos() maze.CellPosition {
	return s.goalPos
}

// Won reports whether the player has reached the goal.
func (s *Session) Won() bool {
	s.RLock()
	defer s.RUnlock()
	return s.won
}

// ElapsedSeconds returns the whole seconds since the session started. Once
// the session is won the value freezes at the completion time.
func (s *Session) ElapsedSeconds() int64 {
	s.RLock()
	defer s.RUnlock()

	end := time.Now().UTC()
	if s.won {
		end = s.finishedAt
	}
	return int64(end.Sub(s.startedAt).Seconds())
}
