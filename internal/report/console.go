package report

import (
	"bufio"
	"io"

	"github.com/preston-bernstein/pen-pictures/internal/squad"
)

// WriteConsole prints the plain-text pen picture of every squad member in squad order.
func WriteConsole(w io.Writer, sq squad.Squad) error {
	bw := bufio.NewWriter(w)
	for _, p := range sq.Players {
		pic := NewPenPicture(p)
		lines := []string{pic.TopLine, "", pic.DetailLine, pic.AppearanceLine, pic.ContributionLine, ""}
		lines = append(lines, pic.Sentences...)
		lines = append(lines, "", "")
		for _, line := range lines {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
