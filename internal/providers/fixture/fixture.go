package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"time"

	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
	"github.com/preston-bernstein/pen-pictures/internal/providers"
	"github.com/preston-bernstein/pen-pictures/internal/providers/opta"
)

const providerName = "fixture"

//go:embed data/season.xml
var seasonXML []byte

//go:embed data/squad.xml
var squadXML []byte

// Provider serves a deterministic season built from embedded sample documents.
// Useful for local runs and bootstrapping without feed files on disk.
type Provider struct {
	aliases map[string]string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New creates a fixture provider. A nil alias table uses the built-in aliases.
func New(aliases map[string]string, logger *slog.Logger, recorder *metrics.Recorder) *Provider {
	if aliases == nil {
		aliases = teams.DefaultCompetitionAliases
	}
	return &Provider{aliases: aliases, logger: logger, metrics: recorder}
}

// FetchSeason decodes the embedded documents through the opta adapter.
func (p *Provider) FetchSeason(ctx context.Context) (providers.Season, error) {
	if err := ctx.Err(); err != nil {
		return providers.Season{}, err
	}

	start := time.Now()
	doc, err := opta.DecodeSeason(bytes.NewReader(seasonXML))
	p.metrics.RecordDocumentLoad(opta.DocumentSeason, time.Since(start), err)
	if err != nil {
		return providers.Season{}, &providers.DocumentError{Provider: providerName, Document: opta.DocumentSeason, Err: err}
	}

	start = time.Now()
	roster, err := opta.DecodeRoster(bytes.NewReader(squadXML))
	p.metrics.RecordDocumentLoad(opta.DocumentSquad, time.Since(start), err)
	if err != nil {
		return providers.Season{}, &providers.DocumentError{Provider: providerName, Document: opta.DocumentSquad, Err: err}
	}

	season, err := opta.MapSeason(ctx, doc, roster, p.aliases, p.logger)
	if err != nil {
		return providers.Season{}, err
	}
	providers.LogWithProvider(ctx, p.logger, slog.LevelInfo, providerName, "fixture season loaded")
	return season, nil
}
