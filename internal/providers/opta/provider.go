package opta

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/preston-bernstein/pen-pictures/internal/logging"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
	"github.com/preston-bernstein/pen-pictures/internal/providers"
)

// Config names the two feed files for a run.
type Config struct {
	SeasonPath string
	SquadPath  string
	Aliases    map[string]string
}

// Provider reads a season feed and a squad feed from disk and aggregates them.
type Provider struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	open    func(path string) (io.ReadCloser, error)
}

// New creates a file-backed provider.
func New(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Provider {
	return &Provider{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// FetchSeason loads both documents and maps them into a Season.
func (p *Provider) FetchSeason(ctx context.Context) (providers.Season, error) {
	if err := ctx.Err(); err != nil {
		return providers.Season{}, err
	}

	var season *SeasonDocument
	err := p.load(ctx, DocumentSeason, p.cfg.SeasonPath, func(r io.Reader) error {
		doc, err := DecodeSeason(r)
		season = doc
		return err
	})
	if err != nil {
		return providers.Season{}, err
	}

	var roster *Roster
	err = p.load(ctx, DocumentSquad, p.cfg.SquadPath, func(r io.Reader) error {
		doc, err := DecodeRoster(r)
		roster = doc
		return err
	})
	if err != nil {
		return providers.Season{}, err
	}

	out, err := MapSeason(ctx, season, roster, p.cfg.Aliases, p.logger)
	if err != nil {
		return providers.Season{}, &providers.DocumentError{
			Provider: providerName,
			Document: DocumentSeason,
			Path:     p.cfg.SeasonPath,
			Err:      err,
		}
	}
	providers.LogWithProvider(ctx, p.logger, slog.LevelInfo, providerName, "season aggregated",
		logging.FieldTeam, out.Team.Name,
		logging.FieldSeason, out.Team.Season,
		logging.FieldCount, len(out.Players),
	)
	return out, nil
}

func (p *Provider) load(ctx context.Context, document, path string, decode func(io.Reader) error) (err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		p.metrics.RecordDocumentLoad(document, elapsed, err)
		providers.LogWithProvider(ctx, p.logger, slog.LevelDebug, providerName, "document load finished",
			logging.FieldDocument, document,
			logging.FieldPath, path,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
	}()

	f, err := p.open(path)
	if err != nil {
		return &providers.DocumentError{Provider: providerName, Document: document, Path: path, Err: err}
	}
	defer f.Close()

	if err := decode(f); err != nil {
		return &providers.DocumentError{Provider: providerName, Document: document, Path: path, Err: err}
	}
	return nil
}
