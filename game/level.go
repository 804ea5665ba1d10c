package game

import "errors"

const (
	minLevel = 1

	baseDimension     = 4  // added to the level number for the grid size
	maxLevelDimension = 20 // sizes cap here to stay playable in a browser
)

var ErrInvalidLevel = errors.New("invalid level number")

// DimensionsForLevel maps a level number to a square grid size. Level 1 is a
// 5x5 maze and each level adds one cell per side until the cap.
func DimensionsForLevel(level int) (int, int, error) {
	if level < minLevel {
		return 0, 0, ErrInvalidLevel
	}

	size := baseDimension + level
	if size > maxLevelDimension {
		size = maxLevelDimension
	}
	return size, size, nil
}
