package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Smoke test to ensure main honors SKIP_PENPICS_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_PENPICS_RUN", "1")
	main()
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DOTENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SNAPSHOT_DIR", "")
	t.Setenv("METRICS_ENABLED", "false")
}

func TestRunFixtureProvider(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "squad.xlsx")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-provider", "fixture", "-out", out, "-snapshot-dir", filepath.Join(dir, "snaps")}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Foxes's top scorer this season with 15 goals") {
		t.Fatalf("expected console report on stdout, got %s", stdout.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected spreadsheet, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "snaps", "manifest.json")); err != nil {
		t.Fatalf("expected snapshot manifest, got %v", err)
	}
}

func TestRunFailsOnMissingInput(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-season", filepath.Join(t.TempDir(), "nope.xml"), "-out", ""}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "report run failed") {
		t.Fatalf("expected failure logged to stderr, got %s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %s", stdout.String())
	}
}

func TestRunRejectsBadFlagsAndProvider(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for bad flag, got %d", code)
	}
	if code := run(context.Background(), []string{"-provider", "statsbomb"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1 for unknown provider, got %d", code)
	}
}
