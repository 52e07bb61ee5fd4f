package config

import (
	"errors"
	"time"
)

// ErrPartialSources is returned when only one of the roster and results files is set.
var ErrPartialSources = errors.New("ROSTER_FILE and RESULTS_FILE must be set together")

// Config holds runtime configuration for a season run.
type Config struct {
	RosterFile      string
	ResultsFile     string
	SeasonGames     int
	PlayoffSeeds    int
	Conferences     []string
	ReportStandings bool
	ShutdownTimeout time.Duration
	Log             LogConfig
	Metrics         MetricsConfig
	Tracing         TracingConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// UseFixture reports whether no input files were configured, in which case the
// built-in fixture season is replayed.
func (c Config) UseFixture() bool {
	return c.RosterFile == "" && c.ResultsFile == ""
}

// Validate rejects a half-configured file source.
func (c Config) Validate() error {
	if (c.RosterFile == "") != (c.ResultsFile == "") {
		return ErrPartialSources
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		RosterFile:      envOrDefault(envRosterFile, ""),
		ResultsFile:     envOrDefault(envResultsFile, ""),
		SeasonGames:     intEnvOrDefault(envSeasonGames, defaultSeasonGames),
		PlayoffSeeds:    intEnvOrDefault(envPlayoffSeeds, defaultPlayoffSeeds),
		Conferences:     listEnvOrDefault(envConferenceOrder, defaultConferences),
		ReportStandings: boolEnvOrDefault(envReportStandings, false),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
		Tracing: loadTracing(),
	}
}
