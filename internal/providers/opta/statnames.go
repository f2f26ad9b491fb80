package opta

import (
	"strings"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
)

// statSourceNames maps each canonical statistic to the name(s) it carries in season feeds.
var statSourceNames = map[players.StatID][]string{
	players.StatAppearances:      {"Appearances"},
	players.StatStarts:           {"Starts"},
	players.StatSubOn:            {"Substitute On"},
	players.StatSubOff:           {"Substitute Off"},
	players.StatMinutes:          {"Time Played"},
	players.StatGoals:            {"Goals"},
	players.StatAssists:          {"Goal Assists"},
	players.StatChancesCreated:   {"Key Passes (Attempt Assists)", "Key Passes"},
	players.StatAerialsWon:       {"Aerial Duels won"},
	players.StatShotsOnTarget:    {"Shots On Target ( inc goals )"},
	players.StatBlocks:           {"Blocks"},
	players.StatRecoveries:       {"Recoveries"},
	players.StatPassesOppHalf:    {"Successful Passes Opposition Half"},
	players.StatDribbles:         {"Successful Dribbles"},
	players.StatInterceptions:    {"Interceptions"},
	players.StatSuccessfulPasses: {"Total Successful Passes ( Excl Crosses & Corners )"},
	players.StatLongPasses:       {"Successful Long Passes"},
	players.StatGroundDuels:      {"Ground Duels won"},
	players.StatClearances:       {"Total Clearances"},
	players.StatTackles:          {"Total Tackles"},
	players.StatThroughBalls:     {"Through balls"},
	players.StatWinningGoals:     {"Winning Goal"},
	players.StatCleanSheets:      {"Clean Sheets"},
	players.StatPenaltiesFaced:   {"Penalties Faced"},
	players.StatPenaltiesSaved:   {"Penalties Saved"},
}

// statIDsBySourceName is the reverse index, keyed by normalized source name.
var statIDsBySourceName = buildStatIndex(statSourceNames)

func buildStatIndex(names map[players.StatID][]string) map[string]players.StatID {
	index := make(map[string]players.StatID)
	for id, sourceNames := range names {
		for _, name := range sourceNames {
			index[normalizeStatName(name)] = id
		}
	}
	return index
}

// Feeds carry stray padding inside some names ("... Corners ) ").
func normalizeStatName(name string) string {
	return strings.TrimSpace(name)
}

// SourceNames returns the season-feed names for a statistic.
func SourceNames(id players.StatID) []string {
	return append([]string(nil), statSourceNames[id]...)
}
