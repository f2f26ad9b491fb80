package opta

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
	"github.com/preston-bernstein/pen-pictures/internal/logging"
	"github.com/preston-bernstein/pen-pictures/internal/providers"
)

// MapSeason builds the team context and one Player per raw player entry of the first team.
func MapSeason(ctx context.Context, doc *SeasonDocument, roster *Roster, aliases map[string]string, logger *slog.Logger) (providers.Season, error) {
	if doc == nil || len(doc.Teams) == 0 {
		return providers.Season{}, fmt.Errorf("%w: empty season document", ErrMalformedDocument)
	}
	team := mapTeam(doc, aliases)
	raw := doc.Teams[0].Players

	out := make([]players.Player, 0, len(raw))
	for _, rp := range raw {
		if err := ctx.Err(); err != nil {
			return providers.Season{}, err
		}
		p, err := mapPlayer(rp, roster)
		if err != nil {
			return providers.Season{}, err
		}
		if !roster.Has(p.ID) {
			providers.LogWithProvider(ctx, logger, slog.LevelDebug, providerName, "player missing from squad document",
				logging.FieldPlayerID, p.ID)
		}
		out = append(out, p)
	}

	return providers.Season{Team: team, Players: out}, nil
}

func mapTeam(doc *SeasonDocument, aliases map[string]string) teams.Team {
	t := doc.Teams[0]
	return teams.Team{
		ID:          t.ID,
		Name:        t.Name,
		Season:      teams.SeasonLabel(doc.SeasonName),
		Competition: teams.CompetitionName(doc.CompetitionName, aliases),
	}
}

func mapPlayer(rp SeasonPlayer, roster *Roster) (players.Player, error) {
	id := strings.TrimSpace(rp.PlayerID)
	if id == "" {
		return players.Player{}, fmt.Errorf("%w: Player element missing player_id", ErrMalformedDocument)
	}
	number, err := strconv.Atoi(strings.TrimSpace(rp.ShirtNumber))
	if err != nil {
		return players.Player{}, fmt.Errorf("%w: player %s shirtNumber %q", ErrMalformedDocument, id, rp.ShirtNumber)
	}
	position, err := players.ParsePosition(strings.TrimSpace(rp.Position))
	if err != nil {
		return players.Player{}, fmt.Errorf("player %s: %w", id, err)
	}
	sheet, err := NewStatSheet(rp.Stats)
	if err != nil {
		return players.Player{}, fmt.Errorf("player %s: %w", id, err)
	}

	p := players.Player{
		ID:        id,
		FirstName: rp.FirstName,
		Surname:   rp.LastName,
		KnownName: strings.TrimSpace(rp.KnownName),
		Number:    number,
		Position:  position,
		Nation:    roster.Nation(id),
		Stats:     mapStats(sheet),
		Role:      mapRole(position, sheet),
		Sentences: []string{},
	}
	if foot, ok := roster.Lookup(id, AttrPreferredFoot); ok {
		p.PreferredFoot = foot
	}
	if jersey, ok := roster.Lookup(id, AttrJerseyNumber); ok {
		p.ShirtNumber = jersey
	}
	if detailed, ok := roster.Lookup(id, AttrRealPosition); ok {
		p.DetailedPosition = detailed
	}
	p.Height = players.ParseHeight(roster.Lookup(id, AttrHeight))

	return p, nil
}

func mapStats(sheet StatSheet) players.Stats {
	var stats players.Stats
	for _, id := range players.CountingStats {
		if field := stats.Field(id); field != nil {
			*field = sheet.Value(id)
		}
	}
	return stats
}

func mapRole(position players.Position, sheet StatSheet) players.Role {
	if position != players.PositionGoalkeeper {
		return players.Outfield{}
	}
	return players.Goalkeeper{
		CleanSheets:    sheet.Value(players.StatCleanSheets),
		PenaltiesFaced: sheet.Value(players.StatPenaltiesFaced),
		PenaltiesSaved: sheet.Value(players.StatPenaltiesSaved),
	}
}
