package leaders

import (
	"log/slog"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/logging"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
	"github.com/preston-bernstein/pen-pictures/internal/squad"
)

// Options tune the leadership pass.
type Options struct {
	// SkipZero suppresses sentences for statistics whose maximum is zero.
	SkipZero bool
}

// Result records one attached sentence.
type Result struct {
	Stat     players.StatID `json:"stat"`
	PlayerID string         `json:"playerId"`
	Value    int            `json:"value"`
	Sentence string         `json:"sentence"`
}

// Engine runs the leadership pass over a squad.
type Engine struct {
	opts    Options
	stats   []Stat
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewEngine builds an engine over the default Registry.
func NewEngine(opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Engine {
	return &Engine{
		opts:    opts,
		stats:   Registry,
		logger:  logger,
		metrics: recorder,
	}
}

// Apply finds the leader of every registered statistic in registry order and
// appends the rendered sentence to that player in place. A player leading
// several statistics therefore receives sentences in registry order.
func (e *Engine) Apply(sq squad.Squad, team string) ([]Result, error) {
	if sq.Len() == 0 {
		return nil, ErrEmptySquad
	}

	results := make([]Result, 0, len(e.stats))
	for _, stat := range e.stats {
		leader, err := FindLeader(sq, stat.ID)
		if err != nil {
			return nil, err
		}
		if e.opts.SkipZero && leader.Value == 0 {
			logging.Debug(e.logger, "zero-value leader skipped", logging.FieldStat, string(stat.ID))
			continue
		}

		sentence := stat.Sentence(leader.Value, team)
		sq.Players[leader.Index].AddSentence(sentence)
		e.metrics.RecordLeaderSentence(string(stat.ID))
		logging.Debug(e.logger, "leader sentence attached",
			logging.FieldStat, string(stat.ID),
			logging.FieldPlayerID, leader.PlayerID,
		)
		results = append(results, Result{
			Stat:     stat.ID,
			PlayerID: leader.PlayerID,
			Value:    leader.Value,
			Sentence: sentence,
		})
	}
	return results, nil
}
