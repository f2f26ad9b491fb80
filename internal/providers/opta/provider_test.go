package opta

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
	"github.com/preston-bernstein/pen-pictures/internal/providers"
	"github.com/preston-bernstein/pen-pictures/internal/testutil"
)

func testdataConfig() Config {
	return Config{
		SeasonPath: filepath.Join("testdata", "season.xml"),
		SquadPath:  filepath.Join("testdata", "squad.xml"),
		Aliases:    teams.DefaultCompetitionAliases,
	}
}

func TestProviderFetchSeasonJoinsDocuments(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	p := New(testdataConfig(), logger, rec)

	season, err := p.FetchSeason(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if season.Team.Name != "Foxes" || season.Team.Season != "2020-2021" || season.Team.Competition != "Premier League" {
		t.Fatalf("unexpected team %+v", season.Team)
	}
	if len(season.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(season.Players))
	}

	vardy := season.Players[0]
	if vardy.Nation != "England" || vardy.DetailedPosition != "Striker" || vardy.Height.Display() != "5 ft 10 in" {
		t.Fatalf("unexpected roster join for vardy %+v", vardy)
	}
	if vardy.Stats.SuccessfulPasses != 310 || vardy.Stats.Involvements() != 24 {
		t.Fatalf("unexpected vardy stats %+v", vardy.Stats)
	}

	keeper := season.Players[1]
	if keeper.Nation != "Denmark" || keeper.Height.Display() != "6 ft" {
		t.Fatalf("expected country fallback and 6 ft, got %+v", keeper)
	}

	tielemans := season.Players[2]
	if tielemans.Nation != "" || tielemans.Shirt() != "xx" || tielemans.DisplayName() != "Tielemans" {
		t.Fatalf("expected missing roster entry sentinels, got %+v", tielemans)
	}
	if !strings.Contains(buf.String(), "player missing from squad document") {
		t.Fatalf("expected debug log for missing roster player, got %s", buf.String())
	}

	snap := rec.Snapshot()
	if snap.DocumentLoads[DocumentSeason] != 1 || snap.DocumentLoads[DocumentSquad] != 1 {
		t.Fatalf("expected both documents recorded, got %+v", snap)
	}
}

func TestProviderMissingFileIsDocumentError(t *testing.T) {
	cfg := testdataConfig()
	cfg.SquadPath = filepath.Join(t.TempDir(), "missing.xml")
	rec := metrics.NewRecorder()

	_, err := New(cfg, nil, rec).FetchSeason(context.Background())
	docErr, ok := providers.AsDocumentError(err)
	if !ok {
		t.Fatalf("expected document error, got %v", err)
	}
	if docErr.Document != DocumentSquad || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("unexpected document error %+v", docErr)
	}
	if rec.Snapshot().DocumentErrors[DocumentSquad] != 1 {
		t.Fatalf("expected squad load error recorded")
	}
}

func TestProviderMalformedSeason(t *testing.T) {
	cfg := testdataConfig()
	cfg.SeasonPath = filepath.Join("testdata", "squad.xml")

	_, err := New(cfg, nil, nil).FetchSeason(context.Background())
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected malformed document, got %v", err)
	}
}

func TestProviderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(testdataConfig(), nil, nil).FetchSeason(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
