package players

import (
	"errors"
	"fmt"
)

// ErrUnknownPosition is returned when a source position is not one of the four basic positions.
var ErrUnknownPosition = errors.New("unknown position")

// Position is the coarse role classification used for ordering and keeper-specific stats.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

var positionOrdinals = map[Position]int{
	PositionGoalkeeper: 1,
	PositionDefender:   2,
	PositionMidfielder: 3,
	PositionForward:    4,
}

// ParsePosition maps a source position string onto a Position.
// The set is closed: anything else is an input error.
func ParsePosition(raw string) (Position, error) {
	pos := Position(raw)
	if _, ok := positionOrdinals[pos]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, raw)
	}
	return pos, nil
}

// Ordinal is the sort key for the position (Goalkeeper=1 ... Forward=4), or 0 when unknown.
func (p Position) Ordinal() int {
	return positionOrdinals[p]
}

// Valid reports whether p is one of the four basic positions.
func (p Position) Valid() bool {
	return p.Ordinal() > 0
}
