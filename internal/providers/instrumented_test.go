package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings/internal/metrics"
	"github.com/preston-bernstein/nba-standings/internal/testutil"
)

type stubProvider struct {
	roster    []teams.Team
	games     []domaingames.Game
	rosterErr error
	gamesErr  error
}

func (s stubProvider) FetchRoster(context.Context) ([]teams.Team, error) {
	return s.roster, s.rosterErr
}

func (s stubProvider) FetchGames(context.Context) ([]domaingames.Game, error) {
	return s.games, s.gamesErr
}

func TestInstrumentedProviderRecordsLoads(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := metrics.NewRecorder()
	inner := stubProvider{
		roster: []teams.Team{{Name: "Utah Jazz", Conference: "West"}},
		games:  []domaingames.Game{{Home: "A", Away: "B", Winner: domaingames.SideHome}},
	}

	p := NewInstrumentedProvider(inner, logger, rec, "csv")
	roster, err := p.FetchRoster(context.Background())
	if err != nil || len(roster) != 1 {
		t.Fatalf("unexpected roster %v %v", roster, err)
	}
	gs, err := p.FetchGames(context.Background())
	if err != nil || len(gs) != 1 {
		t.Fatalf("unexpected games %v %v", gs, err)
	}

	snap := rec.Snapshot()
	if snap.SourceLoads["csv/roster"] != 1 || snap.SourceLoads["csv/results"] != 1 {
		t.Fatalf("expected loads recorded, got %+v", snap.SourceLoads)
	}
	if !strings.Contains(buf.String(), "source=csv") {
		t.Fatalf("expected source field in logs, got %s", buf.String())
	}
}

func TestInstrumentedProviderPassesErrorsThrough(t *testing.T) {
	rec := metrics.NewRecorder()
	boom := errors.New("boom")
	p := NewInstrumentedProvider(stubProvider{gamesErr: boom}, nil, rec, "")

	if _, err := p.FetchGames(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if rec.Snapshot().SourceErrors["unknown/results"] != 1 {
		t.Fatalf("expected error recorded under default name")
	}
}

func TestInstrumentedProviderLogsDuration(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedProvider(stubProvider{}, logger, nil, "fixture").(*instrumentedProvider)
	p.now = testutil.NowAt(testutil.Day(2017, 4, 1))

	if _, err := p.FetchRoster(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "roster loaded") || !strings.Contains(out, "duration_ms=0") || !strings.Contains(out, "count=0") {
		t.Fatalf("expected load summary, got %s", out)
	}
}
