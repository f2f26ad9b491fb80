package players

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// HeightUnknown is displayed when no valid height is available.
const HeightUnknown = "Unknown"

var (
	cmPerInch     = decimal.RequireFromString("2.54")
	inchesPerFoot = decimal.NewFromInt(12)
)

// Height is an optional height in centimetres.
type Height struct {
	Centimetres int  `json:"centimetres,omitempty"`
	Known       bool `json:"known"`
}

// ParseHeight reads a roster height value. Missing, non-integer and non-positive values yield an unknown height.
func ParseHeight(raw string, ok bool) Height {
	if !ok {
		return Height{}
	}
	cm, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || cm <= 0 {
		return Height{}
	}
	return Height{Centimetres: cm, Known: true}
}

// FeetInches splits the height into whole feet and whole remaining inches.
func (h Height) FeetInches() (feet, inches int, ok bool) {
	if !h.Known {
		return 0, 0, false
	}
	total := decimal.NewFromInt(int64(h.Centimetres)).Div(cmPerInch)
	wholeFeet := total.Div(inchesPerFoot).Floor()
	remainder := total.Sub(wholeFeet.Mul(inchesPerFoot)).Floor()
	return int(wholeFeet.IntPart()), int(remainder.IntPart()), true
}

// Display renders the height as "5 ft 10 in", "6 ft" or HeightUnknown.
func (h Height) Display() string {
	feet, inches, ok := h.FeetInches()
	if !ok {
		return HeightUnknown
	}
	if inches >= 1 {
		return fmt.Sprintf("%d ft %d in", feet, inches)
	}
	return fmt.Sprintf("%d ft", feet)
}
