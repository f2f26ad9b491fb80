package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/squad"
	"github.com/preston-bernstein/pen-pictures/internal/testutil"
)

func vardy() players.Player {
	p := testutil.SamplePlayer("101", players.PositionForward, 9)
	p.FirstName, p.Surname = "Jamie", "Vardy"
	p.Nation = "England"
	p.ShirtNumber = "9"
	p.PreferredFoot = "Right"
	p.DetailedPosition = "Striker"
	p.Height = players.ParseHeight("180", true)
	p.Stats = players.Stats{Appearances: 34, Starts: 31, SubOn: 3, SubOff: 12, Minutes: 2800, Goals: 15, Assists: 9}
	p.Sentences = []string{"Foxes's top scorer this season with 15 goals"}
	return p
}

func TestNewPenPictureOutfield(t *testing.T) {
	pic := NewPenPicture(vardy())

	cases := map[string][2]string{
		"header":       {pic.Header, "9. Jamie Vardy      England"},
		"top":          {pic.TopLine, "9. Jamie Vardy        England"},
		"detail":       {pic.DetailLine, "Position: Striker    Preferred foot: Right    Height: 5 ft 10 in"},
		"appearances":  {pic.AppearanceLine, "Apps: 34   Starts: 31   Sub on: 3   Sub off: 12   Minutes: 2800"},
		"contribution": {pic.ContributionLine, "Goals: 15      Assists: 9      Goal involvements: 24"},
	}
	for name, c := range cases {
		if c[0] != c[1] {
			t.Fatalf("%s: expected %q, got %q", name, c[1], c[0])
		}
	}
	if len(pic.Sentences) != 1 {
		t.Fatalf("expected sentences carried over")
	}
}

func TestNewPenPictureSentinels(t *testing.T) {
	p := testutil.SamplePlayer("108", players.PositionGoalkeeper, 20)
	p.KnownName = "Hamza"
	p.Role = players.Goalkeeper{CleanSheets: 2, PenaltiesFaced: 1}

	pic := NewPenPicture(p)
	if pic.TopLine != "20. Hamza" {
		t.Fatalf("expected squad number top line without nation, got %q", pic.TopLine)
	}
	if pic.DetailLine != "Position: Goalkeeper    Preferred foot: Unknown    Height: Unknown" {
		t.Fatalf("unexpected detail line %q", pic.DetailLine)
	}
	if pic.ContributionLine != "Clean sheets: 2       Penalties faced: 1       Penalties saved: 0" {
		t.Fatalf("unexpected keeper line %q", pic.ContributionLine)
	}

	p.Nation = "England"
	if got := NewPenPicture(p).TopLine; got != "xx. Hamza        England" {
		t.Fatalf("expected unknown shirt marker, got %q", got)
	}
}

func TestWriteConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteConsole(&buf, squad.Squad{Players: []players.Player{vardy()}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"9. Jamie Vardy        England",
		"",
		"Position: Striker    Preferred foot: Right    Height: 5 ft 10 in",
		"Apps: 34   Starts: 31   Sub on: 3   Sub off: 12   Minutes: 2800",
		"Goals: 15      Assists: 9      Goal involvements: 24",
		"",
		"Foxes's top scorer this season with 15 goals",
		"",
		"",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected console output:\n%q\nwant:\n%q", buf.String(), want)
	}
}
