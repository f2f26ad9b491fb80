package squad

import (
	"fmt"
	"math"
	"sort"
)

// MinutesThreshold returns the integer part of the given percentile (0-100) of
// minutes played, taken over players who played at all. Values between ranks
// are linearly interpolated.
func (s Squad) MinutesThreshold(percentile float64) (int, error) {
	if percentile < 0 || percentile > 100 || math.IsNaN(percentile) {
		return 0, fmt.Errorf("squad: percentile %v out of range", percentile)
	}

	minutes := make([]int, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Stats.Minutes > 0 {
			minutes = append(minutes, p.Stats.Minutes)
		}
	}
	if len(minutes) == 0 {
		return 0, ErrNoMinutes
	}
	sort.Ints(minutes)

	rank := percentile / 100 * float64(len(minutes)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	value := float64(minutes[lower]) + (rank-float64(lower))*float64(minutes[upper]-minutes[lower])
	return int(value), nil
}
