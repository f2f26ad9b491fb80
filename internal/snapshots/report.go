package snapshots

import (
	"time"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
)

// Report is the exported form of one finished run.
type Report struct {
	RunID            string         `json:"runId"`
	GeneratedAt      time.Time      `json:"generatedAt"`
	Team             teams.Team     `json:"team"`
	MinutesThreshold int            `json:"minutesThreshold"`
	Players          []PlayerRecord `json:"players"`
	Leaders          []LeaderRecord `json:"leaders"`
}

// PlayerRecord is a player plus the role-specific statistics the domain type keeps out of JSON.
type PlayerRecord struct {
	players.Player
	Keeper *players.Goalkeeper `json:"keeper,omitempty"`
}

// LeaderRecord is one attached leadership sentence.
type LeaderRecord struct {
	Stat     string `json:"stat"`
	PlayerID string `json:"playerId"`
	Value    int    `json:"value"`
	Sentence string `json:"sentence"`
}

// NewPlayerRecords converts squad players into export records.
func NewPlayerRecords(ps []players.Player) []PlayerRecord {
	out := make([]PlayerRecord, 0, len(ps))
	for _, p := range ps {
		rec := PlayerRecord{Player: p}
		if gk, ok := p.Keeper(); ok {
			rec.Keeper = &gk
		}
		out = append(out, rec)
	}
	return out
}

// Key returns the report's storage key.
func (r Report) Key() string {
	return ReportKey(r.Team.ID, r.Team.Season)
}
