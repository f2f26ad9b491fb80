package leaders

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/squad"
)

var (
	// ErrEmptySquad is returned when a leader is requested from a squad with no players.
	ErrEmptySquad = errors.New("leaders: empty squad")
	// ErrUnknownStat is returned for a statistic that players do not carry.
	ErrUnknownStat = errors.New("leaders: unknown statistic")
)

// Leader identifies the player holding the maximum value of one statistic.
type Leader struct {
	Index    int
	PlayerID string
	Value    int
}

// FindLeader scans the squad in order and returns the holder of the maximum value.
// When several players share the maximum, the first one in squad order wins:
// squads are sorted by position then number, so that is the lowest (position, number) pair.
func FindLeader(sq squad.Squad, id players.StatID) (Leader, error) {
	if sq.Len() == 0 {
		return Leader{}, ErrEmptySquad
	}

	best := Leader{Index: -1}
	for i, p := range sq.Players {
		v, ok := p.Stats.Value(id)
		if !ok {
			return Leader{}, fmt.Errorf("%w: %s", ErrUnknownStat, id)
		}
		if best.Index < 0 || v > best.Value {
			best = Leader{Index: i, PlayerID: p.ID, Value: v}
		}
	}
	return best, nil
}
