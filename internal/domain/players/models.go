package players

import "strings"

// UnknownShirt is shown in place of a roster jersey number that is missing.
const UnknownShirt = "xx"

// Player is one squad member normalized from the season and roster documents.
type Player struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"firstName"`
	Surname          string   `json:"surname"`
	KnownName        string   `json:"knownName,omitempty"`
	Number           int      `json:"number"`
	ShirtNumber      string   `json:"shirtNumber,omitempty"`
	Position         Position `json:"position"`
	DetailedPosition string   `json:"detailedPosition,omitempty"`
	Nation           string   `json:"nation"`
	PreferredFoot    string   `json:"preferredFoot,omitempty"`
	Height           Height   `json:"height"`
	Stats            Stats    `json:"stats"`
	Role             Role     `json:"-"`
	Sentences        []string `json:"sentences"`
}

// Role carries the position-specific part of a Player. It is either Goalkeeper or Outfield.
type Role interface {
	role()
}

// Goalkeeper holds the keeper-only season statistics.
type Goalkeeper struct {
	CleanSheets    int `json:"cleanSheets"`
	PenaltiesFaced int `json:"penaltiesFaced"`
	PenaltiesSaved int `json:"penaltiesSaved"`
}

// Outfield marks a non-goalkeeper; its contribution line is derived from Stats.
type Outfield struct{}

func (Goalkeeper) role() {}
func (Outfield) role()   {}

// DisplayName prefers the known name over first name and surname.
func (p Player) DisplayName() string {
	if p.KnownName != "" {
		return p.KnownName
	}
	return strings.TrimSpace(p.FirstName + " " + p.Surname)
}

// PositionLabel returns the detailed position, falling back to the basic position.
func (p Player) PositionLabel() string {
	if p.DetailedPosition != "" {
		return p.DetailedPosition
	}
	return string(p.Position)
}

// Shirt returns the roster jersey number or UnknownShirt.
func (p Player) Shirt() string {
	if p.ShirtNumber == "" {
		return UnknownShirt
	}
	return p.ShirtNumber
}

// Keeper returns the goalkeeper statistics when the player is a goalkeeper.
func (p Player) Keeper() (Goalkeeper, bool) {
	gk, ok := p.Role.(Goalkeeper)
	return gk, ok
}

// AddSentence appends a leadership sentence.
func (p *Player) AddSentence(sentence string) {
	p.Sentences = append(p.Sentences, sentence)
}
