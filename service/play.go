package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/google/uuid"
)

const recordTimeout = 2 * time.Second

// Play-related errors.
var (
	ErrSessionNotFound = errors.New("game session not found")
)

// MazeFactory builds a maze for the given dimensions.
type MazeFactory func(width, height int) (game.Maze, error)

// Play manages the active game sessions of all players. Each player has at
// most one active session; starting a level replaces the previous one. When
// a session is won the completion time is persisted and submitted to the
// leaderboard.
type Play struct {
	bestTimes    i.BestTimeRepo
	leaderboard  i.Leaderboard
	mazeFactory  MazeFactory
	logger       i.Logger
	sessions     map[uuid.UUID]*game.Session
	sync.RWMutex // Lock for session map access.
}

// PlayConfig holds dependencies for creating a Play service.
type PlayConfig struct {
	BestTimes   i.BestTimeRepo
	Leaderboard i.Leaderboard
	MazeFactory MazeFactory
	Logger      i.Logger
}

// NewPlayService creates a Play service from the given configuration.
func NewPlayService(c *PlayConfig) (*Play, error) {
	if c.BestTimes == nil || c.Leaderboard == nil || c.MazeFactory == nil || c.Logger == nil {
		return nil, errors.New("play service configuration is incomplete")
	}

	return &Play{
		bestTimes:   c.BestTimes,
		leaderboard: c.Leaderboard,
		mazeFactory: c.MazeFactory,
		logger:      c.Logger,
		sessions:    make(map[uuid.UUID]*game.Session),
	}, nil
}

// StartLevel generates a fresh maze for the level and opens a session for
// the player. The goal is the corner opposite the start.
func (p *Play) StartLevel(playerID uuid.UUID, level int) (*game.Session, error) {
	width, height, err := game.DimensionsForLevel(level)
	if err != nil {
		return nil, err
	}

	m, err := p.mazeFactory(width, height)
	if err != nil {
		p.logger.Error(fmt.Sprintf("Creating maze for level %d: %s", level, err))
		return nil, err
	}

	session, err := game.NewSession(&game.Config{
		PlayerID: playerID,
		Level:    level,
		Maze:     m,
		Goal:     maze.CellPosition{Row: height - 1, Col: width - 1},
	})
	if err != nil {
		return nil, err
	}

	p.Lock()
	p.dropSessionsOf(playerID)
	p.sessions[session.ID()] = session
	p.Unlock()

	p.logger.Info(fmt.Sprintf("Started level %d for player %s: session %s", level, playerID, session.ID()))
	return session, nil
}

// Move applies a directional move to the player's session. A win persists
// the completion time and submits it to the leaderboard; persistence
// failures are logged but never undo the win.
func (p *Play) Move(playerID, sessionID uuid.UUID, direction string) (*game.Session, error) {
	session, err := p.Session(playerID, sessionID)
	if err != nil {
		return nil, err
	}

	alreadyWon := session.Won()
	_, won := session.Move(direction)
	if won && !alreadyWon {
		p.recordWin(session)

		p.Lock()
		delete(p.sessions, sessionID)
		p.Unlock()
	}

	return session, nil
}

// Session returns the player's session by ID.
func (p *Play) Session(playerID, sessionID uuid.UUID) (*game.Session, error) {
	p.RLock()
	defer p.RUnlock()

	session, ok := p.sessions[sessionID]
	if !ok || session.PlayerID() != playerID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// dropSessionsOf removes any session owned by the player. Callers must hold
// the write lock.
func (p *Play) dropSessionsOf(playerID uuid.UUID) {
	for id, session := range p.sessions {
		if session.PlayerID() == playerID {
			delete(p.sessions, id)
		}
	}
}

// recordWin persists the completion time and submits it to the leaderboard.
func (p *Play) recordWin(session *game.Session) {
	seconds := session.ElapsedSeconds()
	playerID := session.PlayerID()
	level := session.Level()

	bt, err := dmn.NewBestTime(playerID, level, seconds)
	if err != nil {
		p.logger.Error(fmt.Sprintf("Building best-time record: %s", err))
		return
	}

	improved, err := p.bestTimes.SaveIfBetter(bt)
	if err != nil {
		p.logger.Error(fmt.Sprintf("Saving best time for player %s level %d: %s", playerID, level, err))
	} else if improved {
		p.logger.Info(fmt.Sprintf("New best time for player %s level %d: %ds", playerID, level, seconds))
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := p.leaderboard.Submit(ctx, level, playerID.String(), seconds); err != nil {
		p.logger.Error(fmt.Sprintf("Submitting leaderboard entry for player %s level %d: %s", playerID, level, err))
	}
}
