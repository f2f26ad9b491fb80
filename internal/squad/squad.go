package squad

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/logging"
)

var (
	// ErrUnknownPosition is returned when a player's position cannot be ordered.
	ErrUnknownPosition = fmt.Errorf("squad: %w", players.ErrUnknownPosition)
	// ErrNoMinutes is returned by MinutesThreshold when no player has played.
	ErrNoMinutes = errors.New("squad: no player has minutes")
)

// Squad is the ordered, de-duplicated set of players for one team season.
// Players are ordered by position ordinal, then squad number; entries may be
// mutated in place (sentence accumulation) but membership is fixed.
type Squad struct {
	Players []players.Player
}

// Assemble de-duplicates raw players by id (first occurrence wins) and sorts
// them by position then number. The sort is stable so equal keys keep source order.
func Assemble(raw []players.Player, logger *slog.Logger) (Squad, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]players.Player, 0, len(raw))
	for _, p := range raw {
		if !p.Position.Valid() {
			return Squad{}, fmt.Errorf("%w: player %s has %q", ErrUnknownPosition, p.ID, p.Position)
		}
		if _, dup := seen[p.ID]; dup {
			logging.Warn(logger, "duplicate player dropped", logging.FieldPlayerID, p.ID)
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := out[i].Position.Ordinal(), out[j].Position.Ordinal()
		if oi != oj {
			return oi < oj
		}
		return out[i].Number < out[j].Number
	})

	logging.Debug(logger, "squad assembled", logging.FieldCount, len(out))
	return Squad{Players: out}, nil
}

// Len returns the number of players in the squad.
func (s Squad) Len() int {
	return len(s.Players)
}

// Find returns a pointer into the squad for the player id.
func (s Squad) Find(id string) (*players.Player, bool) {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i], true
		}
	}
	return nil, false
}
