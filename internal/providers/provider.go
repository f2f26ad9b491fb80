package providers

import (
	"context"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
)

// Season is one team's season as delivered by a provider: the team context and
// one aggregated Player per raw player entry, in source order.
type Season struct {
	Team    teams.Team
	Players []players.Player
}

// SquadProvider loads and aggregates a season for one team.
type SquadProvider interface {
	FetchSeason(ctx context.Context) (Season, error)
}
