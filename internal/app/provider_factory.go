package app

import (
	"log/slog"

	"github.com/preston-bernstein/nba-standings/internal/config"
	"github.com/preston-bernstein/nba-standings/internal/metrics"
	"github.com/preston-bernstein/nba-standings/internal/providers"
	"github.com/preston-bernstein/nba-standings/internal/providers/csvfile"
	"github.com/preston-bernstein/nba-standings/internal/providers/fixture"
)

const (
	providerCSV     = "csv"
	providerFixture = "fixture"
)

// providerFactory assembles the data provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base, name := selectProvider(cfg)
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
}

func selectProvider(cfg config.Config) (providers.DataProvider, string) {
	if cfg.UseFixture() {
		return fixture.New(), providerFixture
	}
	return csvfile.New(cfg.RosterFile, cfg.ResultsFile), providerCSV
}
