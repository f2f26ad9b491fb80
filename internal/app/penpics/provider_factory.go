package penpics

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/pen-pictures/internal/config"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
	"github.com/preston-bernstein/pen-pictures/internal/providers"
	"github.com/preston-bernstein/pen-pictures/internal/providers/fixture"
	"github.com/preston-bernstein/pen-pictures/internal/providers/opta"
)

const (
	providerOpta    = "opta"
	providerFixture = "fixture"
)

// ErrUnknownProvider is returned for a provider name that is not registered.
var ErrUnknownProvider = errors.New("unknown provider")

// NewProvider selects the squad provider named in cfg.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.SquadProvider, error) {
	switch normalizeProviderName(cfg.Provider) {
	case providerOpta:
		return opta.New(opta.Config{
			SeasonPath: cfg.Inputs.SeasonPath,
			SquadPath:  cfg.Inputs.SquadPath,
			Aliases:    cfg.Competition.Aliases,
		}, logger, recorder), nil
	case providerFixture:
		return fixture.New(cfg.Competition.Aliases, logger, recorder), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// normalizeProviderName lower-cases the configured name, defaulting to opta.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerOpta
	}
	return name
}
