package domain

import (
	"errors"

	"github.com/google/uuid"
)

// BestTime records a player's fastest completion of a level, in whole
// seconds. One record exists per player per level; the absence of a record
// means the player has not finished that level yet.
type BestTime struct {
	PlayerID uuid.UUID `bson:"playerId"`
	Level    int       `bson:"level"`
	Seconds  int64     `bson:"seconds"`
}

// NewBestTime creates a best-time record after validating its fields.
func NewBestTime(playerID uuid.UUID, level int, seconds int64) (*BestTime, error) {
	if playerID == uuid.Nil {
		return nil, errors.New("best time requires a player")
	}
	if level < 1 {
		return nil, errors.New("invalid level number")
	}
	if seconds < 0 {
		return nil, errors.New("negative completion time")
	}

	return &BestTime{
		PlayerID: playerID,
		Level:    level,
		Seconds:  seconds,
	}, nil
}
