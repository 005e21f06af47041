package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	sub := c.Submission()
	if sub.FormID != FormID {
		t.Fatalf("expected built-in form id %q, got %q", FormID, sub.FormID)
	}
	if sub.Endpoint != defaultEndpoint {
		t.Fatalf("expected default endpoint, got %s", sub.Endpoint)
	}
	if sub.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout, got %s", sub.Timeout)
	}
}

func TestInitIntakeDirWritesParseableDefaults(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitIntakeDir(projectDir); err != nil {
		t.Fatalf("InitIntakeDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, IntakeDir, "logs")); err != nil {
		t.Fatalf("expected logs dir: %v", err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig after init: %v", err)
	}
	if c.Submission().DryRun {
		t.Fatalf("default config must not enable dry run")
	}
	if err := InitIntakeDir(projectDir); err != nil {
		t.Fatalf("second InitIntakeDir: %v", err)
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, `
version: 1
submission:
  form_id: "  custom-form "
  endpoint: http://localhost:9000/f/
  timeout: 3s
  dry_run: true
ui:
  show_log: true
`)
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	sub := c.Submission()
	if sub.FormID != "custom-form" {
		t.Fatalf("wrong form id: %q", sub.FormID)
	}
	if sub.Endpoint != "http://localhost:9000/f" {
		t.Fatalf("expected trailing slash trimmed, got %s", sub.Endpoint)
	}
	if sub.Timeout != 3*time.Second {
		t.Fatalf("wrong timeout: %s", sub.Timeout)
	}
	if !sub.DryRun || !c.Project.UI.ShowLog {
		t.Fatalf("expected dry_run and show_log from yaml")
	}
}

func TestEnvOverridesWin(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, `
submission:
  form_id: from-file
`)
	t.Setenv("INTAKE_FORM_ID", "from-env")
	t.Setenv("INTAKE_TIMEOUT", "750ms")
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if got := c.Submission().FormID; got != "from-env" {
		t.Fatalf("expected env form id, got %s", got)
	}
	if got := c.Submission().Timeout; got != 750*time.Millisecond {
		t.Fatalf("expected env timeout, got %s", got)
	}
}

func TestDotEnvFileIsLoaded(t *testing.T) {
	projectDir := t.TempDir()
	// t.Setenv restores the original state; unset so godotenv may export it.
	t.Setenv("INTAKE_DRY_RUN", "")
	os.Unsetenv("INTAKE_DRY_RUN")
	if err := os.WriteFile(filepath.Join(projectDir, ".env"), []byte("INTAKE_DRY_RUN=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if !c.Submission().DryRun {
		t.Fatalf("expected dry run from .env")
	}
}

func TestConfigValidation(t *testing.T) {
	cases := map[string]string{
		"bad endpoint": "submission:\n  endpoint: formspree.io/f\n",
		"bad version":  "version: -1\n",
		"bad timeout":  "submission:\n  timeout: -1s\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			projectDir := t.TempDir()
			writeConfig(t, projectDir, doc)
			if _, err := NewConfig(projectDir); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}

func TestMissingFormIDAllowedOnlyForDryRun(t *testing.T) {
	prev := FormID
	FormID = ""
	t.Cleanup(func() { FormID = prev })

	projectDir := t.TempDir()
	if _, err := NewConfig(projectDir); err == nil || !strings.Contains(err.Error(), "form_id") {
		t.Fatalf("expected form_id error, got %v", err)
	}
	writeConfig(t, projectDir, "submission:\n  dry_run: true\n")
	if _, err := NewConfig(projectDir); err != nil {
		t.Fatalf("dry run without form id should load: %v", err)
	}
}

func TestSetFormID(t *testing.T) {
	c := &Config{Project: defaultProjectConfig()}
	if err := c.SetFormID(" "); err == nil {
		t.Fatalf("expected error for blank id")
	}
	if err := c.SetFormID("flag-id"); err != nil {
		t.Fatalf("SetFormID: %v", err)
	}
	if c.Submission().FormID != "flag-id" {
		t.Fatalf("flag id not applied")
	}
}

func writeConfig(t *testing.T, projectDir, body string) {
	t.Helper()
	dir := filepath.Join(projectDir, IntakeDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(strings.TrimSpace(body)+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}
