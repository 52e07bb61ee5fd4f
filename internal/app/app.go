package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/preston-bernstein/nba-standings/internal/config"
	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/logging"
	"github.com/preston-bernstein/nba-standings/internal/metrics"
	"github.com/preston-bernstein/nba-standings/internal/providers"
	"github.com/preston-bernstein/nba-standings/internal/report"
	"github.com/preston-bernstein/nba-standings/internal/season"
	"github.com/preston-bernstein/nba-standings/internal/standings"
	"github.com/preston-bernstein/nba-standings/internal/store"
	"github.com/preston-bernstein/nba-standings/internal/tracing"
)

var (
	metricsSetup = metrics.Setup
	tracingSetup = tracing.Setup
	newRunID     = uuid.NewString
)

// App wires sources, the season driver, the report and telemetry for one run.
type App struct {
	cfg           config.Config
	logger        *slog.Logger
	out           io.Writer
	metrics       *metrics.Recorder
	metricsServer httpServer
	metricsStop   func(context.Context) error
	tracingStop   func(context.Context) error
	runID         string
	provider      providers.DataProvider
	snapshots     *store.MemoryStore
}

// New constructs an App that reads from the configured source and reports to out.
func New(cfg config.Config, logger *slog.Logger, out io.Writer) *App {
	return newAppWithProvider(cfg, logger, out, nil)
}

func newAppWithProvider(cfg config.Config, logger *slog.Logger, out io.Writer, provider providers.DataProvider) *App {
	runID := newRunID()
	logger = logging.WithRunID(logger, runID)
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	tracingShutdown := buildTracing(cfg, logger)
	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}
	return &App{
		cfg:           cfg,
		logger:        logger,
		out:           out,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		tracingStop:   tracingShutdown,
		runID:         runID,
		provider:      provider,
		snapshots:     store.NewMemoryStore(),
	}
}

// Run replays the season and writes the elimination report. Malformed input aborts
// the run before any game is applied.
func (a *App) Run(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.startMetrics()
	defer a.shutdown()

	roster, err := a.provider.FetchRoster(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	rows, err := a.provider.FetchGames(ctx)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}
	results, err := domaingames.Results(rows)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	tables, err := season.BuildTables(roster, a.cfg.Conferences,
		standings.WithSeasonGames(a.cfg.SeasonGames),
		standings.WithPlayoffSeeds(a.cfg.PlayoffSeeds),
	)
	if err != nil {
		return err
	}
	a.warnAdjusted(tables[0])

	rep := report.NewWriter(a.out)
	if err := rep.WriteHeader(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	driver := season.New(tables,
		season.WithLogger(a.logger),
		season.WithRecorder(a.metrics),
		season.WithSnapshots(a.snapshots),
		season.WithSink(rep),
	)
	start := time.Now()
	elim, err := driver.Run(ctx, results)
	if err != nil {
		return fmt.Errorf("replay season: %w", err)
	}

	if a.cfg.ReportStandings {
		if err := a.writeStandings(rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	logging.Info(a.logger, "season replayed",
		logging.FieldCount, len(elim),
		"games", len(results),
		"days", len(a.snapshots.ListDates()),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// warnAdjusted logs season settings the tables rejected in favour of defaults.
func (a *App) warnAdjusted(table *standings.Table) {
	if a.cfg.SeasonGames != table.SeasonGames() {
		logging.Warn(a.logger, "season games out of range, using default",
			"requested", a.cfg.SeasonGames, "applied", table.SeasonGames())
	}
	if a.cfg.PlayoffSeeds != table.PlayoffSeeds() {
		logging.Warn(a.logger, "playoff seeds out of range, using default",
			"requested", a.cfg.PlayoffSeeds, "applied", table.PlayoffSeeds())
	}
}

// Snapshots exposes the per-day standings kept during the last run.
func (a *App) Snapshots() *store.MemoryStore {
	return a.snapshots
}

func (a *App) writeStandings(rep *report.Writer) error {
	latest, ok := a.snapshots.Latest()
	if !ok {
		return nil
	}
	for _, conf := range latest.Conferences {
		if err := rep.WriteStandings(conf.Conference, conf.Standings); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) startMetrics() {
	if a.metricsServer == nil {
		return
	}
	launchServer("metrics", a.metricsServer, a.logger)
}

func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if a.tracingStop != nil {
		if err := a.tracingStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "tracing shutdown failed", "error", err)
		}
	}
	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", "error", err)
		}
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics server shutdown failed", "error", err)
		}
	}
}

// RunID identifies this run in logs.
func (a *App) RunID() string {
	return a.runID
}

func buildTracing(cfg config.Config, logger *slog.Logger) func(context.Context) error {
	shutdown, err := tracingSetup(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.OtlpEndpoint,
		Insecure:    cfg.Tracing.OtlpInsecure,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logging.Warn(logger, "tracing setup failed, continuing without spans", "error", err)
		return nil
	}
	return shutdown
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}
