package penpics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
	"github.com/preston-bernstein/pen-pictures/internal/leaders"
	"github.com/preston-bernstein/pen-pictures/internal/logging"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
	"github.com/preston-bernstein/pen-pictures/internal/providers"
	"github.com/preston-bernstein/pen-pictures/internal/report"
	"github.com/preston-bernstein/pen-pictures/internal/snapshots"
	"github.com/preston-bernstein/pen-pictures/internal/squad"
)

// Options control the outputs of a run.
type Options struct {
	XLSXPath          string
	BadgePath         string
	Console           bool
	ConsoleOut        io.Writer
	MinutesPercentile float64
	Leaders           leaders.Options
}

// Result summarizes a finished run.
type Result struct {
	RunID            string
	Team             teams.Team
	Squad            squad.Squad
	Leaders          []leaders.Result
	MinutesThreshold int
	XLSXPath         string
	SnapshotPath     string
}

// Service runs the report pipeline: load, assemble, attach leaders, render.
type Service struct {
	provider providers.SquadProvider
	engine   *leaders.Engine
	writer   *snapshots.Writer
	opts     Options
	logger   *slog.Logger
	metrics  *metrics.Recorder
	newRunID func() string
	now      func() time.Time
}

// NewService wires a pipeline. A nil writer disables snapshot export.
func NewService(provider providers.SquadProvider, writer *snapshots.Writer, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if opts.ConsoleOut == nil {
		opts.ConsoleOut = os.Stdout
	}
	return &Service{
		provider: provider,
		engine:   leaders.NewEngine(opts.Leaders, logger, recorder),
		writer:   writer,
		opts:     opts,
		logger:   logger,
		metrics:  recorder,
		newRunID: uuid.NewString,
		now:      time.Now,
	}
}

// Run produces one squad report.
func (s *Service) Run(ctx context.Context) (res Result, err error) {
	start := s.now()
	res.RunID = s.newRunID()
	logger := s.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, res.RunID))
	}
	defer func() {
		elapsed := s.now().Sub(start)
		s.metrics.RecordRun(elapsed, err)
		if err != nil {
			logging.Error(logger, "report run failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
			return
		}
		logging.Info(logger, "report run finished", logging.FieldDurationMS, elapsed.Milliseconds())
	}()

	if s.provider == nil {
		return res, errors.New("no squad provider configured")
	}
	season, err := s.provider.FetchSeason(ctx)
	if err != nil {
		return res, fmt.Errorf("load season: %w", err)
	}
	res.Team = season.Team
	s.metrics.RecordPlayers(len(season.Players))
	logging.Info(logger, season.Team.Header(),
		logging.FieldTeam, season.Team.Name,
		logging.FieldSeason, season.Team.Season,
		logging.FieldCount, len(season.Players),
	)

	sq, err := squad.Assemble(season.Players, logger)
	if err != nil {
		return res, fmt.Errorf("assemble squad: %w", err)
	}
	res.Squad = sq

	threshold, err := sq.MinutesThreshold(s.opts.MinutesPercentile)
	switch {
	case errors.Is(err, squad.ErrNoMinutes):
		logging.Warn(logger, "no player has minutes; threshold unset")
	case err != nil:
		return res, fmt.Errorf("minutes threshold: %w", err)
	default:
		res.MinutesThreshold = threshold
		logging.Debug(logger, "minutes threshold computed", "threshold", threshold)
	}

	res.Leaders, err = s.engine.Apply(sq, season.Team.Name)
	if err != nil {
		return res, fmt.Errorf("stat leaders: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := s.render(logger, sq, season.Team, &res); err != nil {
		return res, err
	}
	return res, nil
}

func (s *Service) render(logger *slog.Logger, sq squad.Squad, team teams.Team, res *Result) error {
	if s.opts.Console {
		if err := report.WriteConsole(s.opts.ConsoleOut, sq); err != nil {
			return fmt.Errorf("console report: %w", err)
		}
	}

	if s.opts.XLSXPath != "" {
		if err := report.WriteXLSX(s.opts.XLSXPath, team, sq, report.XLSXOptions{BadgePath: s.opts.BadgePath}); err != nil {
			return fmt.Errorf("xlsx report: %w", err)
		}
		res.XLSXPath = s.opts.XLSXPath
		logging.Info(logger, "spreadsheet written", logging.FieldPath, s.opts.XLSXPath)
	}

	if s.writer != nil {
		path, err := s.writer.WriteReport(snapshots.Report{
			RunID:            res.RunID,
			GeneratedAt:      s.now().UTC(),
			Team:             team,
			MinutesThreshold: res.MinutesThreshold,
			Players:          snapshots.NewPlayerRecords(sq.Players),
			Leaders:          leaderRecords(res.Leaders),
		})
		if err != nil {
			return fmt.Errorf("snapshot export: %w", err)
		}
		res.SnapshotPath = path
		logging.Info(logger, "report snapshot written", logging.FieldPath, path)
	}
	return nil
}

func leaderRecords(results []leaders.Result) []snapshots.LeaderRecord {
	out := make([]snapshots.LeaderRecord, 0, len(results))
	for _, r := range results {
		out = append(out, snapshots.LeaderRecord{
			Stat:     string(r.Stat),
			PlayerID: r.PlayerID,
			Value:    r.Value,
			Sentence: r.Sentence,
		})
	}
	return out
}
