package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksDocumentLoadsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDocumentLoad("season", 10*time.Millisecond, nil)
	rec.RecordDocumentLoad("season", 15*time.Millisecond, errors.New("boom"))
	rec.RecordDocumentLoad("squad", 5*time.Millisecond, nil)

	snap := rec.Snapshot()
	if snap.DocumentLoads["season"] != 2 || snap.DocumentErrors["season"] != 1 {
		t.Fatalf("unexpected season counters %+v", snap)
	}
	if snap.DocumentLoads["squad"] != 1 || snap.DocumentErrors["squad"] != 0 {
		t.Fatalf("unexpected squad counters %+v", snap)
	}
	if got := rec.LastDocumentLatency("season"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}
}

func TestRecorderTracksPlayersSentencesAndRuns(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPlayers(25)
	rec.RecordPlayers(0)
	rec.RecordLeaderSentence("assists")
	rec.RecordLeaderSentence("assists")
	rec.RecordLeaderSentence("goals")
	rec.RecordRun(time.Second, nil)
	rec.RecordRun(time.Second, errors.New("boom"))

	snap := rec.Snapshot()
	if snap.Players != 25 {
		t.Fatalf("expected 25 players, got %d", snap.Players)
	}
	if snap.Sentences != 3 || rec.SentencesFor("assists") != 2 {
		t.Fatalf("unexpected sentence counters %+v", snap)
	}
	if snap.Runs != 2 || snap.RunErrors != 1 {
		t.Fatalf("unexpected run counters %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordDocumentLoad("season", time.Millisecond, nil)
	rec.RecordPlayers(1)
	rec.RecordLeaderSentence("goals")
	rec.RecordRun(time.Millisecond, nil)
	if snap := rec.Snapshot(); snap.Runs != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}
