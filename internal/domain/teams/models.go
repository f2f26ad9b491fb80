package teams

import (
	"fmt"
	"strings"
)

// seasonPrefix is the leading label on source season names ("Season 2020/2021").
const seasonPrefix = "Season "

// DefaultCompetitionAliases normalizes source competition names for display.
var DefaultCompetitionAliases = map[string]string{
	"English Premier League": "Premier League",
}

// Team is the team/season context for one report run.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Season      string `json:"season"`
	Competition string `json:"competition"`
}

// Header describes the report scope, e.g. "Foxes in 2020-2021 Premier League".
func (t Team) Header() string {
	return fmt.Sprintf("%s in %s %s", t.Name, t.Season, t.Competition)
}

// SeasonLabel strips the "Season " prefix and replaces slashes with dashes.
func SeasonLabel(raw string) string {
	label := strings.TrimSpace(raw)
	label = strings.TrimPrefix(label, seasonPrefix)
	return strings.ReplaceAll(strings.TrimSpace(label), "/", "-")
}

// CompetitionName returns the alias for raw when one exists, otherwise raw unchanged.
func CompetitionName(raw string, aliases map[string]string) string {
	if alias, ok := aliases[raw]; ok && alias != "" {
		return alias
	}
	return raw
}
