package config

import (
	"os"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "cloudsweep-config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Remove(tmpfile.Name())
	})

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpfile.Name()
}

func TestLoadConfig(t *testing.T) {
	content := `
version: v1
project: playground-project

rules:
  skip_label: please-do-not-kill-me
  max_age: 48h
  dry_run: true
`
	cfg, err := LoadConfig(writeTempConfig(t, content))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Version != "v1" {
		t.Errorf("Version = %v, want v1", cfg.Version)
	}
	if cfg.Project != "playground-project" {
		t.Errorf("Project = %v, want playground-project", cfg.Project)
	}
	if cfg.Rules.SkipLabel != "please-do-not-kill-me" {
		t.Errorf("SkipLabel = %v", cfg.Rules.SkipLabel)
	}
	if time.Duration(cfg.Rules.MaxAge) != 48*time.Hour {
		t.Errorf("MaxAge = %v, want 48h", time.Duration(cfg.Rules.MaxAge))
	}
	if !cfg.Rules.DryRun {
		t.Error("DryRun = false, want true")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, "version: v1\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Rules.SkipLabel != DefaultSkipLabel {
		t.Errorf("SkipLabel = %v, want default %v", cfg.Rules.SkipLabel, DefaultSkipLabel)
	}
	if time.Duration(cfg.Rules.MaxAge) != DefaultMaxAge {
		t.Errorf("MaxAge = %v, want default %v", time.Duration(cfg.Rules.MaxAge), DefaultMaxAge)
	}
}

func TestLoadConfigMissingVersion(t *testing.T) {
	if _, err := LoadConfig(writeTempConfig(t, "project: p\n")); err == nil {
		t.Error("expected error for missing version")
	}
}

func TestLoadConfigBadDuration(t *testing.T) {
	if _, err := LoadConfig(writeTempConfig(t, "version: v1\nrules:\n  max_age: soon\n")); err == nil {
		t.Error("expected error for bad duration")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() config invalid: %v", err)
	}
	if cfg.Rules.SkipLabel != DefaultSkipLabel {
		t.Errorf("SkipLabel = %v, want %v", cfg.Rules.SkipLabel, DefaultSkipLabel)
	}
}
