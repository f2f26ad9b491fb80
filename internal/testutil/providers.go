package testutil

import (
	"context"

	"github.com/preston-bernstein/pen-pictures/internal/providers"
)

// StubProvider returns the provided season, or Err when set.
type StubProvider struct {
	Season providers.Season
	Err    error
	Calls  int
}

func (p *StubProvider) FetchSeason(_ context.Context) (providers.Season, error) {
	p.Calls++
	if p.Err != nil {
		return providers.Season{}, p.Err
	}
	return p.Season, nil
}
