package config

import "time"

const (
	envFile            = "ENV_FILE"
	envRosterFile      = "ROSTER_FILE"
	envResultsFile     = "RESULTS_FILE"
	envSeasonGames     = "SEASON_GAMES"
	envPlayoffSeeds    = "PLAYOFF_SEEDS"
	envConferenceOrder = "CONFERENCE_ORDER"
	envReportStandings = "REPORT_STANDINGS"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envTracingOn       = "TRACING_ENABLED"

	defaultEnvFile         = ".env"
	defaultSeasonGames     = 82
	defaultPlayoffSeeds    = 8
	defaultShutdownTimeout = 5 * time.Second
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsOn       = false
	defaultTracingOn       = false
	defaultMetricsPort     = "9090"
	defaultServiceName     = "nba-standings"
)

var defaultConferences = []string{"West", "East"}
