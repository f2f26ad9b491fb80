package opta

const providerName = "opta"

// Document names used in errors, logs and metrics.
const (
	DocumentSeason = "season"
	DocumentSquad  = "squad"
)

// SeasonDocument is the root of a season statistics feed.
type SeasonDocument struct {
	CompetitionName string       `xml:"competition_name,attr"`
	SeasonName      string       `xml:"season_name,attr"`
	Teams           []SeasonTeam `xml:"Team"`
}

// SeasonTeam is the team element of a season feed.
type SeasonTeam struct {
	ID      string         `xml:"id,attr"`
	Name    string         `xml:"name,attr"`
	Players []SeasonPlayer `xml:"Player"`
}

// SeasonPlayer is one raw player entry with its season statistics.
type SeasonPlayer struct {
	PlayerID    string      `xml:"player_id,attr"`
	FirstName   string      `xml:"first_name,attr"`
	LastName    string      `xml:"last_name,attr"`
	KnownName   string      `xml:"known_name,attr"`
	ShirtNumber string      `xml:"shirtNumber,attr"`
	Position    string      `xml:"position,attr"`
	Stats       []StatEntry `xml:"Stat"`
}

// StatEntry is a (name, integer-as-text) statistic pair.
type StatEntry struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// squadFeed is the root of a squad roster feed.
type squadFeed struct {
	Documents []squadDocument `xml:"SoccerDocument"`
}

type squadDocument struct {
	Teams []squadTeam `xml:"Team"`
}

type squadTeam struct {
	UID     string        `xml:"uID,attr"`
	Players []squadPlayer `xml:"Player"`
}

type squadPlayer struct {
	UID        string           `xml:"uID,attr"`
	Attributes []squadAttribute `xml:"Stat"`
}

// squadAttribute is a (Type, text) biographical pair.
type squadAttribute struct {
	Type  string `xml:"Type,attr"`
	Value string `xml:",chardata"`
}
