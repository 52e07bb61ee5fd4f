package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/standings"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEmitWritesHeaderOnceAndFixedWidthLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	day := time.Date(2017, 3, 9, 0, 0, 0, 0, time.UTC)

	if err := w.WriteHeader(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Emit(domaingames.Elimination{Team: "Brooklyn Nets", Date: day}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Emit(domaingames.Elimination{Team: "Phoenix Suns", Date: day.AddDate(0, 0, 1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 lines, got %q", buf.String())
	}
	if lines[0] != "    Team               Elimination Date" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "Brooklyn Nets             03-09-2017" {
		t.Fatalf("unexpected line %q", lines[1])
	}
	if lines[2] != "Phoenix Suns              03-10-2017" {
		t.Fatalf("unexpected line %q", lines[2])
	}
}

func TestEmitWritesHeaderWhenMissing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Emit(domaingames.Elimination{Team: "X", Date: time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "    Team") {
		t.Fatalf("expected header first, got %q", buf.String())
	}
}

func TestWriteStandings(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	rows := []standings.Standing{
		{Rank: 1, Team: "Golden State Warriors", Wins: 67, Losses: 15},
		{Rank: 2, Team: "San Antonio Spurs", Wins: 61, Losses: 21},
	}
	if err := w.WriteStandings("West", rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\nWest\n1 Golden State Warriors 67 15\n2 San Antonio Spurs 61 21\n"
	if buf.String() != want {
		t.Fatalf("unexpected standings output %q", buf.String())
	}
}

func TestWriterPropagatesErrors(t *testing.T) {
	w := NewWriter(failingWriter{})
	if err := w.Emit(domaingames.Elimination{Team: "X"}); err == nil {
		t.Fatalf("expected write error")
	}
	if err := w.WriteStandings("East", nil); err == nil {
		t.Fatalf("expected write error")
	}
}
