package report

import (
	"fmt"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
)

// unknownFoot is printed when the roster has no preferred foot.
const unknownFoot = "Unknown"

// PenPicture is the per-player text a renderer lays out.
type PenPicture struct {
	Header           string
	TopLine          string
	DetailLine       string
	AppearanceLine   string
	ContributionLine string
	Sentences        []string
}

// NewPenPicture builds the pen-picture lines for one player.
func NewPenPicture(p players.Player) PenPicture {
	name := p.DisplayName()

	top := fmt.Sprintf("%d. %s", p.Number, name)
	if p.Nation != "" {
		top = fmt.Sprintf("%s. %s        %s", p.Shirt(), name, p.Nation)
	}

	foot := p.PreferredFoot
	if foot == "" {
		foot = unknownFoot
	}

	s := p.Stats
	return PenPicture{
		Header:           fmt.Sprintf("%d. %s      %s", p.Number, name, p.Nation),
		TopLine:          top,
		DetailLine:       fmt.Sprintf("Position: %s    Preferred foot: %s    Height: %s", p.PositionLabel(), foot, p.Height.Display()),
		AppearanceLine:   fmt.Sprintf("Apps: %d   Starts: %d   Sub on: %d   Sub off: %d   Minutes: %d", s.Appearances, s.Starts, s.SubOn, s.SubOff, s.Minutes),
		ContributionLine: contributionLine(p),
		Sentences:        p.Sentences,
	}
}

func contributionLine(p players.Player) string {
	if gk, ok := p.Keeper(); ok {
		return fmt.Sprintf("Clean sheets: %d       Penalties faced: %d       Penalties saved: %d", gk.CleanSheets, gk.PenaltiesFaced, gk.PenaltiesSaved)
	}
	return fmt.Sprintf("Goals: %d      Assists: %d      Goal involvements: %d", p.Stats.Goals, p.Stats.Assists, p.Stats.Involvements())
}
