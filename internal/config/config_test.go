package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.SeasonGames != defaultSeasonGames {
		t.Fatalf("expected default season games %d, got %d", defaultSeasonGames, cfg.SeasonGames)
	}
	if cfg.PlayoffSeeds != defaultPlayoffSeeds {
		t.Fatalf("expected default playoff seeds %d, got %d", defaultPlayoffSeeds, cfg.PlayoffSeeds)
	}
	if len(cfg.Conferences) != 2 || cfg.Conferences[0] != "West" || cfg.Conferences[1] != "East" {
		t.Fatalf("expected west then east, got %v", cfg.Conferences)
	}
	if !cfg.UseFixture() {
		t.Fatalf("expected fixture when no files configured")
	}
	if cfg.ReportStandings {
		t.Fatalf("expected standings report off by default")
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if cfg.Tracing.Enabled || cfg.Tracing.ServiceName != defaultServiceName {
		t.Fatalf("unexpected tracing defaults %+v", cfg.Tracing)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envRosterFile, "data/roster.csv")
	t.Setenv(envResultsFile, "data/results.csv")
	t.Setenv(envSeasonGames, "72")
	t.Setenv(envPlayoffSeeds, "6")
	t.Setenv(envConferenceOrder, " east , ,west")
	t.Setenv(envReportStandings, "yes")
	t.Setenv(envShutdownTimeout, "2s")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envMetricsPort, "9100")
	t.Setenv(envOtelEndpoint, "collector:4318")
	t.Setenv(envTracingOn, "true")
	t.Setenv(envOtelInsecure, "false")

	cfg := Load()

	if cfg.RosterFile != "data/roster.csv" || cfg.ResultsFile != "data/results.csv" || cfg.UseFixture() {
		t.Fatalf("expected file sources, got %+v", cfg)
	}
	if cfg.SeasonGames != 72 || cfg.PlayoffSeeds != 6 {
		t.Fatalf("unexpected season settings %d/%d", cfg.SeasonGames, cfg.PlayoffSeeds)
	}
	if len(cfg.Conferences) != 2 || cfg.Conferences[0] != "east" || cfg.Conferences[1] != "west" {
		t.Fatalf("unexpected conference order %v", cfg.Conferences)
	}
	if !cfg.ReportStandings || cfg.ShutdownTimeout != 2*time.Second {
		t.Fatalf("unexpected report settings %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log settings %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9100" || cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("unexpected metrics settings %+v", cfg.Metrics)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.OtlpEndpoint != "collector:4318" || cfg.Tracing.OtlpInsecure {
		t.Fatalf("unexpected tracing settings %+v", cfg.Tracing)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv(envSeasonGames, "lots")
	t.Setenv(envPlayoffSeeds, "-2")
	t.Setenv(envShutdownTimeout, "0s")

	cfg := Load()

	if cfg.SeasonGames != defaultSeasonGames || cfg.PlayoffSeeds != defaultPlayoffSeeds {
		t.Fatalf("expected defaults on invalid values, got %d/%d", cfg.SeasonGames, cfg.PlayoffSeeds)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvFileFillsUnsetKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "ROSTER_FILE=from-file.csv\nSEASON_GAMES=60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envFile, path)
	// Register cleanup for keys the file sets, then clear them.
	t.Setenv(envRosterFile, "")
	os.Unsetenv(envRosterFile)
	t.Setenv(envSeasonGames, "70")

	if err := LoadEnvFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := Load()
	if cfg.RosterFile != "from-file.csv" {
		t.Fatalf("expected roster from env file, got %q", cfg.RosterFile)
	}
	if cfg.SeasonGames != 70 {
		t.Fatalf("expected existing env to win over file, got %d", cfg.SeasonGames)
	}
}

func TestLoadEnvFileMissingIsIgnored(t *testing.T) {
	t.Setenv(envFile, filepath.Join(t.TempDir(), "absent.env"))
	if err := LoadEnvFile(); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestValidateSources(t *testing.T) {
	cases := []struct {
		name    string
		roster  string
		results string
		fixture bool
		wantErr bool
	}{
		{name: "none", fixture: true},
		{name: "both", roster: "r.csv", results: "g.csv"},
		{name: "roster only", roster: "r.csv", wantErr: true},
		{name: "results only", results: "g.csv", wantErr: true},
	}
	for _, tc := range cases {
		cfg := Config{RosterFile: tc.roster, ResultsFile: tc.results}
		if cfg.UseFixture() != tc.fixture {
			t.Fatalf("%s: expected UseFixture %v", tc.name, tc.fixture)
		}
		err := cfg.Validate()
		if tc.wantErr && !errors.Is(err, ErrPartialSources) {
			t.Fatalf("%s: expected ErrPartialSources, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}
