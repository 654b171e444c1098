package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestRun_SourceFailureReturnsError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	storePath := filepath.Join(dir, "filters.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, `
data:
  source: fixture
  fixture_path: `+filepath.Join(dir, "missing.yaml")+`
store:
  backend: sqlite
  path: `+storePath+`
`)

	err := run([]string{"-config", cfgPath})
	if err == nil {
		t.Fatal("expected an error for a missing fixture")
	}
	if !strings.Contains(err.Error(), "fixture source") {
		t.Errorf("expected source error, got %v", err)
	}
	if _, statErr := os.Stat(storePath); statErr != nil {
		t.Errorf("store should have been opened before the source: %v", statErr)
	}
}

func TestRun_SavePasswordNeedsPGPASSWORD(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PGPASSWORD", "")
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, "database:\n  host: db\n  user: owner\n")

	err := run([]string{"-config", cfgPath, "-save-password"})
	if err == nil || !strings.Contains(err.Error(), "PGPASSWORD is empty") {
		t.Errorf("expected empty PGPASSWORD error, got %v", err)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	if err := run([]string{"-nope"}); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}
