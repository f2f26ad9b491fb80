package leaders

import (
	"fmt"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
)

// Template selects the sentence shape used for a tracked statistic.
type Template int

const (
	// TemplateMost is the generic "Most {desc} ({value}) for {team} this season".
	TemplateMost Template = iota
	// TemplateSubbedOff narrates the most-substituted-off player.
	TemplateSubbedOff
	// TemplateTopScorer narrates the top scorer.
	TemplateTopScorer
)

// Stat is one entry in the leadership registry.
type Stat struct {
	ID          players.StatID
	Description string
	Template    Template
}

// Registry lists the tracked statistics in the order sentences are attached.
// Simple stats come first, then the two bespoke narratives.
var Registry = []Stat{
	{ID: players.StatAppearances, Description: "appearances"},
	{ID: players.StatStarts, Description: "starts"},
	{ID: players.StatSubOn, Description: "sub appearances"},
	{ID: players.StatMinutes, Description: "minutes played"},
	{ID: players.StatAssists, Description: "assists"},
	{ID: players.StatInvolvements, Description: "goal involvements"},
	{ID: players.StatChancesCreated, Description: "chances created"},
	{ID: players.StatAerialsWon, Description: "aerial duels won"},
	{ID: players.StatShotsOnTarget, Description: "shots on target"},
	{ID: players.StatBlocks, Description: "blocks"},
	{ID: players.StatRecoveries, Description: "possession won"},
	{ID: players.StatPassesOppHalf, Description: "successful passes in opp. half"},
	{ID: players.StatDribbles, Description: "successful dribbles"},
	{ID: players.StatInterceptions, Description: "interceptions"},
	{ID: players.StatSuccessfulPasses, Description: "successful passes"},
	{ID: players.StatLongPasses, Description: "successful long passes"},
	{ID: players.StatGroundDuels, Description: "ground duels won"},
	{ID: players.StatClearances, Description: "clearances"},
	{ID: players.StatTackles, Description: "tackles"},
	{ID: players.StatThroughBalls, Description: "through balls"},
	{ID: players.StatWinningGoals, Description: "winning goals"},
	{ID: players.StatSubOff, Description: "times subbed off", Template: TemplateSubbedOff},
	{ID: players.StatGoals, Description: "goals", Template: TemplateTopScorer},
}

// Lookup returns the registry entry for id.
func Lookup(id players.StatID) (Stat, bool) {
	for _, s := range Registry {
		if s.ID == id {
			return s, true
		}
	}
	return Stat{}, false
}

// Sentence renders the leadership sentence for value and team.
func (s Stat) Sentence(value int, team string) string {
	switch s.Template {
	case TemplateSubbedOff:
		return fmt.Sprintf("Subbed off most times for %s this season (%d times)", team, value)
	case TemplateTopScorer:
		return fmt.Sprintf("%s's top scorer this season with %d goals", team, value)
	default:
		return fmt.Sprintf("Most %s (%d) for %s this season", s.Description, value, team)
	}
}
