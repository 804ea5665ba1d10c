package i

import (
	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// BestTimeRepo defines the interface for best-time persistence operations.
type BestTimeRepo interface {
	// SaveIfBetter stores the record unless the player already holds an
	// equal or faster time for the level. Reports whether the stored best
	// improved.
	SaveIfBetter(bt *dmn.BestTime) (bool, error)

	// ByPlayer retrieves all best-time records for a player. A player
	// with no finished levels gets an empty slice, not an error.
	ByPlayer(playerID uuid.UUID) ([]*dmn.BestTime, error)

	// ByPlayerAndLevel retrieves one record, or nil when the player has
	// no best time for the level yet.
	ByPlayerAndLevel(playerID uuid.UUID, level int) (*dmn.BestTime, error)
}
