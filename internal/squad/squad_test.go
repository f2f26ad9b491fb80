package squad

import (
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/testutil"
)

func ids(s Squad) []string {
	out := make([]string, 0, s.Len())
	for _, p := range s.Players {
		out = append(out, p.ID)
	}
	return out
}

func TestAssembleOrdersByPositionThenNumber(t *testing.T) {
	raw := []players.Player{
		testutil.SamplePlayer("fwd", players.PositionForward, 9),
		testutil.SamplePlayer("gk", players.PositionGoalkeeper, 1),
		testutil.SamplePlayer("mid", players.PositionMidfielder, 8),
	}

	sq, err := Assemble(raw, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(ids(sq), ","); got != "gk,mid,fwd" {
		t.Fatalf("expected gk,mid,fwd, got %s", got)
	}
}

func TestAssembleIsStableAndDeduplicates(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	first := testutil.SamplePlayer("a", players.PositionDefender, 5)
	dup := testutil.SamplePlayer("a", players.PositionDefender, 5)
	dup.FirstName = "Duplicate"
	raw := []players.Player{
		testutil.SamplePlayer("d2", players.PositionDefender, 3),
		first,
		testutil.SamplePlayer("b", players.PositionDefender, 3),
		dup,
		testutil.SamplePlayer("k", players.PositionGoalkeeper, 13),
	}

	sq, err := Assemble(raw, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(ids(sq), ","); got != "k,d2,b,a" {
		t.Fatalf("expected k,d2,b,a, got %s", got)
	}
	if p, ok := sq.Find("a"); !ok || p.FirstName != "Player" {
		t.Fatalf("expected first occurrence to win, got %+v", p)
	}
	if !strings.Contains(buf.String(), "duplicate player dropped") {
		t.Fatalf("expected duplicate warning, got %s", buf.String())
	}
}

func TestAssembleRejectsUnknownPosition(t *testing.T) {
	raw := []players.Player{testutil.SamplePlayer("x", players.Position("Sweeper"), 5)}
	_, err := Assemble(raw, nil)
	if !errors.Is(err, ErrUnknownPosition) || !errors.Is(err, players.ErrUnknownPosition) {
		t.Fatalf("expected unknown position error, got %v", err)
	}
}

func TestAssembleEmpty(t *testing.T) {
	sq, err := Assemble(nil, nil)
	if err != nil || sq.Len() != 0 {
		t.Fatalf("expected empty squad, got %d players err=%v", sq.Len(), err)
	}
	if _, ok := sq.Find("missing"); ok {
		t.Fatalf("expected no player in empty squad")
	}
}

func TestFindReturnsPointerIntoSquad(t *testing.T) {
	sq, _ := Assemble([]players.Player{testutil.SamplePlayer("a", players.PositionForward, 9)}, nil)
	p, _ := sq.Find("a")
	p.AddSentence("hello")
	if len(sq.Players[0].Sentences) != 1 {
		t.Fatalf("expected mutation through pointer to be visible")
	}
}
