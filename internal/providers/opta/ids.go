package opta

import "strings"

// rosterKeyPrefix is prepended to season-feed player ids by the squad feed.
const rosterKeyPrefix = "p"

// RosterKey converts a season-feed player id into the squad-feed uID form ("123" -> "p123").
func RosterKey(playerID string) string {
	return rosterKeyPrefix + strings.TrimSpace(playerID)
}
