package testutil

import (
	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
)

// SamplePlayer returns a minimal player fixture with the given id, position and squad number.
// Goalkeepers get a zeroed Goalkeeper role; everyone else is Outfield.
func SamplePlayer(id string, pos players.Position, number int) players.Player {
	p := players.Player{
		ID:        id,
		FirstName: "Player",
		Surname:   id,
		Number:    number,
		Position:  pos,
		Role:      players.Outfield{},
		Sentences: []string{},
	}
	if pos == players.PositionGoalkeeper {
		p.Role = players.Goalkeeper{}
	}
	return p
}

// WithStat sets one counting statistic on a copy of p.
func WithStat(p players.Player, id players.StatID, value int) players.Player {
	if field := p.Stats.Field(id); field != nil {
		*field = value
	}
	return p
}

// SampleTeam returns the team context used across tests.
func SampleTeam() teams.Team {
	return teams.Team{ID: "13", Name: "Foxes", Season: "2020-2021", Competition: "Premier League"}
}
