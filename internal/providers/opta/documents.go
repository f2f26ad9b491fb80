package opta

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
)

// ErrMalformedDocument marks unparseable input or missing required elements.
var ErrMalformedDocument = errors.New("malformed document")

// Roster attribute types read from the squad feed.
const (
	AttrFirstNationality = "first_nationality"
	AttrCountry          = "country"
	AttrPreferredFoot    = "preferred_foot"
	AttrJerseyNumber     = "jersey_num"
	AttrHeight           = "height"
	AttrRealPosition     = "real_position"
)

// newDecoder honours the encoding declared in the XML prolog (ISO-8859-1, windows-1252, ...).
func newDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

// DecodeSeason parses a season statistics feed and checks its required root attributes and team element.
func DecodeSeason(r io.Reader) (*SeasonDocument, error) {
	var doc SeasonDocument
	if err := newDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if strings.TrimSpace(doc.CompetitionName) == "" {
		return nil, fmt.Errorf("%w: missing competition_name", ErrMalformedDocument)
	}
	if strings.TrimSpace(doc.SeasonName) == "" {
		return nil, fmt.Errorf("%w: missing season_name", ErrMalformedDocument)
	}
	if len(doc.Teams) == 0 {
		return nil, fmt.Errorf("%w: missing Team element", ErrMalformedDocument)
	}
	team := doc.Teams[0]
	if team.ID == "" || team.Name == "" {
		return nil, fmt.Errorf("%w: Team element needs id and name", ErrMalformedDocument)
	}
	return &doc, nil
}

// Roster indexes the squad feed's biographical attributes by uID.
type Roster struct {
	players map[string]map[string]string
}

// DecodeRoster parses a squad feed. Only the first SoccerDocument is read; a feed without one
// yields an empty roster so every lookup misses.
func DecodeRoster(r io.Reader) (*Roster, error) {
	var feed squadFeed
	if err := newDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	roster := &Roster{players: make(map[string]map[string]string)}
	if len(feed.Documents) == 0 {
		return roster, nil
	}
	for _, team := range feed.Documents[0].Teams {
		for _, p := range team.Players {
			if p.UID == "" {
				continue
			}
			if _, seen := roster.players[p.UID]; seen {
				continue
			}
			attrs := make(map[string]string, len(p.Attributes))
			for _, a := range p.Attributes {
				if a.Type == "" {
					continue
				}
				if _, dup := attrs[a.Type]; dup {
					continue
				}
				attrs[a.Type] = a.Value
			}
			roster.players[p.UID] = attrs
		}
	}
	return roster, nil
}

// Len returns the number of players in the roster.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.players)
}

// Has reports whether the roster lists the season-feed player id.
func (r *Roster) Has(playerID string) bool {
	if r == nil {
		return false
	}
	_, ok := r.players[RosterKey(playerID)]
	return ok
}

// Lookup returns the attribute text for a season-feed player id. Missing players, missing
// attributes and blank values all report ok=false.
func (r *Roster) Lookup(playerID, attribute string) (string, bool) {
	if r == nil {
		return "", false
	}
	attrs, ok := r.players[RosterKey(playerID)]
	if !ok {
		return "", false
	}
	value := strings.TrimSpace(attrs[attribute])
	if value == "" {
		return "", false
	}
	return value, true
}

// Nation resolves nationality: first_nationality, then country, then "".
func (r *Roster) Nation(playerID string) string {
	if nation, ok := r.Lookup(playerID, AttrFirstNationality); ok {
		return nation
	}
	if country, ok := r.Lookup(playerID, AttrCountry); ok {
		return country
	}
	return ""
}

// StatSheet holds one player's statistics resolved to canonical ids.
type StatSheet struct {
	values map[players.StatID]int
}

// NewStatSheet resolves the player's stat entries through the source-name registry.
// Unknown names are ignored; the first entry for a statistic wins.
func NewStatSheet(entries []StatEntry) (StatSheet, error) {
	values := make(map[players.StatID]int, len(entries))
	for _, e := range entries {
		id, ok := statIDsBySourceName[normalizeStatName(e.Name)]
		if !ok {
			continue
		}
		if _, seen := values[id]; seen {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(e.Value))
		if err != nil {
			return StatSheet{}, fmt.Errorf("%w: stat %q value %q is not an integer", ErrMalformedDocument, e.Name, e.Value)
		}
		values[id] = v
	}
	return StatSheet{values: values}, nil
}

// Value returns the statistic, or 0 when the player has no entry for it.
func (s StatSheet) Value(id players.StatID) int {
	return s.values[id]
}

// Has reports whether the feed carried an entry for the statistic.
func (s StatSheet) Has(id players.StatID) bool {
	_, ok := s.values[id]
	return ok
}
