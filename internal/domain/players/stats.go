package players

// StatID is the canonical identifier of a per-player season statistic.
type StatID string

const (
	StatAppearances      StatID = "apps"
	StatStarts           StatID = "starts"
	StatSubOn            StatID = "sub_on"
	StatSubOff           StatID = "sub_off"
	StatMinutes          StatID = "minutes"
	StatGoals            StatID = "goals"
	StatAssists          StatID = "assists"
	StatInvolvements     StatID = "involvements"
	StatChancesCreated   StatID = "chances_created"
	StatAerialsWon       StatID = "aerials_won"
	StatShotsOnTarget    StatID = "shots_on_target"
	StatBlocks           StatID = "blocks"
	StatRecoveries       StatID = "recoveries"
	StatPassesOppHalf    StatID = "passes_opp_half"
	StatDribbles         StatID = "dribbles"
	StatInterceptions    StatID = "interceptions"
	StatSuccessfulPasses StatID = "successful_passes"
	StatLongPasses       StatID = "long_passes"
	StatGroundDuels      StatID = "ground_duels"
	StatClearances       StatID = "clearances"
	StatTackles          StatID = "tackles"
	StatThroughBalls     StatID = "through_balls"
	StatWinningGoals     StatID = "winners"
	StatCleanSheets      StatID = "clean_sheets"
	StatPenaltiesFaced   StatID = "pens_faced"
	StatPenaltiesSaved   StatID = "pens_saved"
)

// Stats holds the counting statistics for one player. Absent source entries are zero.
// Involvements is derived and never stored.
type Stats struct {
	Appearances      int `json:"appearances"`
	Starts           int `json:"starts"`
	SubOn            int `json:"subOn"`
	SubOff           int `json:"subOff"`
	Minutes          int `json:"minutes"`
	Goals            int `json:"goals"`
	Assists          int `json:"assists"`
	ChancesCreated   int `json:"chancesCreated"`
	AerialsWon       int `json:"aerialsWon"`
	ShotsOnTarget    int `json:"shotsOnTarget"`
	Blocks           int `json:"blocks"`
	Recoveries       int `json:"recoveries"`
	PassesOppHalf    int `json:"passesOppHalf"`
	Dribbles         int `json:"dribbles"`
	Interceptions    int `json:"interceptions"`
	SuccessfulPasses int `json:"successfulPasses"`
	LongPasses       int `json:"longPasses"`
	GroundDuels      int `json:"groundDuels"`
	Clearances       int `json:"clearances"`
	Tackles          int `json:"tackles"`
	ThroughBalls     int `json:"throughBalls"`
	WinningGoals     int `json:"winningGoals"`
}

// Involvements is goals plus assists.
func (s Stats) Involvements() int {
	return s.Goals + s.Assists
}

// CountingStats lists the statistics resolved directly from the season document for every player,
// in the order the aggregator fills them.
var CountingStats = []StatID{
	StatAppearances,
	StatStarts,
	StatSubOn,
	StatSubOff,
	StatMinutes,
	StatGoals,
	StatAssists,
	StatChancesCreated,
	StatAerialsWon,
	StatShotsOnTarget,
	StatBlocks,
	StatRecoveries,
	StatPassesOppHalf,
	StatDribbles,
	StatInterceptions,
	StatSuccessfulPasses,
	StatLongPasses,
	StatGroundDuels,
	StatClearances,
	StatTackles,
	StatThroughBalls,
	StatWinningGoals,
}

// KeeperStats lists the goalkeeper-only statistics.
var KeeperStats = []StatID{
	StatCleanSheets,
	StatPenaltiesFaced,
	StatPenaltiesSaved,
}

// Field returns a pointer to the counting field for id, or nil when id is not a stored counting stat.
func (s *Stats) Field(id StatID) *int {
	switch id {
	case StatAppearances:
		return &s.Appearances
	case StatStarts:
		return &s.Starts
	case StatSubOn:
		return &s.SubOn
	case StatSubOff:
		return &s.SubOff
	case StatMinutes:
		return &s.Minutes
	case StatGoals:
		return &s.Goals
	case StatAssists:
		return &s.Assists
	case StatChancesCreated:
		return &s.ChancesCreated
	case StatAerialsWon:
		return &s.AerialsWon
	case StatShotsOnTarget:
		return &s.ShotsOnTarget
	case StatBlocks:
		return &s.Blocks
	case StatRecoveries:
		return &s.Recoveries
	case StatPassesOppHalf:
		return &s.PassesOppHalf
	case StatDribbles:
		return &s.Dribbles
	case StatInterceptions:
		return &s.Interceptions
	case StatSuccessfulPasses:
		return &s.SuccessfulPasses
	case StatLongPasses:
		return &s.LongPasses
	case StatGroundDuels:
		return &s.GroundDuels
	case StatClearances:
		return &s.Clearances
	case StatTackles:
		return &s.Tackles
	case StatThroughBalls:
		return &s.ThroughBalls
	case StatWinningGoals:
		return &s.WinningGoals
	default:
		return nil
	}
}

// Value returns the value of a counting or derived statistic.
func (s Stats) Value(id StatID) (int, bool) {
	if id == StatInvolvements {
		return s.Involvements(), true
	}
	field := s.Field(id)
	if field == nil {
		return 0, false
	}
	return *field, true
}
