package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings/internal/logging"
	"github.com/preston-bernstein/nba-standings/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with load timing, metrics and logging.
// It never retries: a malformed file does not heal on a second read.
type instrumentedProvider struct {
	inner   DataProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner so each fetch is logged and recorded under name.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	if name == "" {
		name = "unknown"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchRoster(ctx context.Context) ([]teams.Team, error) {
	start := p.now()
	roster, err := p.inner.FetchRoster(ctx)
	p.observe(ctx, "roster", start, len(roster), err)
	return roster, err
}

func (p *instrumentedProvider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	start := p.now()
	gs, err := p.inner.FetchGames(ctx)
	p.observe(ctx, "results", start, len(gs), err)
	return gs, err
}

func (p *instrumentedProvider) observe(ctx context.Context, kind string, start time.Time, count int, err error) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordSourceLoad(p.name+"/"+kind, elapsed, err)
	if err != nil {
		logWithSource(ctx, p.logger, slog.LevelError, p.name, kind+" load failed", "error", err)
		return
	}
	logWithSource(ctx, p.logger, slog.LevelInfo, p.name, kind+" loaded",
		slog.Int(logging.FieldCount, count),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}
