package cellgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNormalized is returned by Validate when a union is not in
	// canonical form.
	ErrNotNormalized = errors.New("cell union is not normalized")
)

// ErrInvalidLevel indicates a level outside [0, MaxLevel].
type ErrInvalidLevel struct {
	Level int
}

func (e *ErrInvalidLevel) Error() string {
	return fmt.Sprintf("invalid level: %d (must be in [0, %d])", e.Level, MaxLevel)
}

// ErrInvalidLevelMod indicates a level stride outside [1, 3].
type ErrInvalidLevelMod struct {
	LevelMod int
}

func (e *ErrInvalidLevelMod) Error() string {
	return fmt.Sprintf("invalid level mod: %d (must be in [1, 3])", e.LevelMod)
}

// ErrInvalidCellID indicates a malformed cell ID, i.e. one whose face number
// or level-marker bit is out of range.
type ErrInvalidCellID struct {
	ID CellID
}

func (e *ErrInvalidCellID) Error() string {
	return fmt.Sprintf("invalid cell ID: %#016x", uint64(e.ID))
}
