package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_RUN", "1")
	main()
}

func TestRunFailsOnMissingInput(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("ROSTER_FILE", filepath.Join(dir, "roster.csv"))
	t.Setenv("RESULTS_FILE", filepath.Join(dir, "results.csv"))
	t.Setenv("LOG_LEVEL", "error")

	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunSucceedsOnFixtureSeason(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("ROSTER_FILE", "")
	t.Setenv("RESULTS_FILE", "")
	t.Setenv("LOG_LEVEL", "error")

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()
	stdout := os.Stdout
	os.Stdout = devNull
	defer func() { os.Stdout = stdout }()

	if code := run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunFailsWhenOnlyRosterConfigured(t *testing.T) {
	dir := t.TempDir()
	roster := filepath.Join(dir, "roster.csv")
	if err := os.WriteFile(roster, []byte("W01,West\n"), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("ROSTER_FILE", roster)
	t.Setenv("RESULTS_FILE", "")
	t.Setenv("LOG_LEVEL", "error")

	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1 for a half-configured source, got %d", code)
	}
}
