// internal/config/config.go
//
// This package handles configuration and the .intake directory structure.
// Every project directory that runs the intake form gets a .intake/ folder
// holding config.yaml and the session logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// IntakeDir is the name of the directory we create in each project
	IntakeDir = ".intake"

	// EnvPrefix namespaces every environment override.
	EnvPrefix = "INTAKE_"

	defaultEndpoint = "https://formspree.io/f"
	defaultTimeout  = 15 * time.Second
)

// FormID is the hosted form identifier compiled into the binary. Override it
// at build time:
//
//	go build -ldflags "-X github.com/kingrea/project-intake/internal/config.FormID=xyz" ./cmd/intake
var FormID = "mzzdklon"

const defaultProjectConfigYAML = `# intake project configuration
version: 1

submission:
  # Hosted form identifier. Leave empty to use the one built into the binary.
  form_id: ""
  endpoint: https://formspree.io/f
  timeout: 15s
  # Write payloads to .intake/logs/dry-run.jsonl instead of sending them.
  dry_run: false

ui:
  show_log: false
`

// SubmissionConfig describes where the finished form goes. The env tags are
// applied after the YAML file, so environment values win.
type SubmissionConfig struct {
	FormID   string        `yaml:"form_id" env:"FORM_ID"`
	Endpoint string        `yaml:"endpoint" env:"ENDPOINT"`
	Timeout  time.Duration `yaml:"timeout" env:"TIMEOUT"`
	DryRun   bool          `yaml:"dry_run" env:"DRY_RUN"`
}

// UIConfig captures terminal preferences.
type UIConfig struct {
	ShowLog bool `yaml:"show_log" env:"SHOW_LOG"`
}

// ProjectConfig models .intake/config.yaml.
type ProjectConfig struct {
	Version    int              `yaml:"version"`
	Submission SubmissionConfig `yaml:"submission"`
	UI         UIConfig         `yaml:"ui"`
}

// Config holds the runtime configuration for a session.
type Config struct {
	// ProjectDir is the directory the form was launched from
	ProjectDir string

	// IntakeProjectDir is ProjectDir/.intake
	IntakeProjectDir string

	Project ProjectConfig
}

// InitIntakeDir creates the .intake directory structure in the given project
// directory and writes a default config.yaml when none exists.
//
// Structure created:
// .intake/
// ├── config.yaml
// └── logs/
func InitIntakeDir(projectDir string) error {
	intakeDir := filepath.Join(projectDir, IntakeDir)
	if err := os.MkdirAll(filepath.Join(intakeDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: ensure %s: %w", intakeDir, err)
	}
	return ensureProjectConfig(filepath.Join(intakeDir, "config.yaml"))
}

// NewConfig layers defaults, .intake/config.yaml, the project's .env file and
// INTAKE_* environment variables, in that order.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		IntakeProjectDir: filepath.Join(projectDir, IntakeDir),
		Project:          defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if err := loadDotEnv(filepath.Join(projectDir, ".env")); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.Project.normalize()
	if err := cfg.Project.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.IntakeProjectDir, "logs")
}

// LogPath returns the session log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), "intake.log")
}

// DryRunPath returns where dry-run payloads are appended.
func (c *Config) DryRunPath() string {
	return filepath.Join(c.LogsDir(), "dry-run.jsonl")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.IntakeProjectDir, "config.yaml")
}

// Submission returns the resolved submission settings.
func (c *Config) Submission() SubmissionConfig {
	return c.Project.Submission
}

// SetFormID overrides the form identifier for this run (command-line flag).
func (c *Config) SetFormID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("config: form id is required")
	}
	c.Project.Submission.FormID = id
	return nil
}

// SetDryRun switches the run to the dry-run submitter.
func (c *Config) SetDryRun(enabled bool) {
	c.Project.Submission.DryRun = enabled
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	c.Project = parsed
	return nil
}

func (c *Config) applyEnvOverrides() error {
	opts := env.Options{Prefix: EnvPrefix}
	if err := env.ParseWithOptions(&c.Project.Submission, opts); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	if err := env.ParseWithOptions(&c.Project.UI, opts); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// loadDotEnv exports the variables of path without overriding ones already
// set in the process environment. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Submission: SubmissionConfig{
			Endpoint: defaultEndpoint,
			Timeout:  defaultTimeout,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Submission.Endpoint) == "" {
		pc.Submission.Endpoint = defaultEndpoint
	}
	if pc.Submission.Timeout == 0 {
		pc.Submission.Timeout = defaultTimeout
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Submission.FormID = strings.TrimSpace(pc.Submission.FormID)
	if pc.Submission.FormID == "" {
		pc.Submission.FormID = strings.TrimSpace(FormID)
	}
	pc.Submission.Endpoint = strings.TrimRight(strings.TrimSpace(pc.Submission.Endpoint), "/")
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if err := pc.Submission.validate(); err != nil {
		return fmt.Errorf("submission: %w", err)
	}
	return nil
}

func (s SubmissionConfig) validate() error {
	u, err := url.Parse(s.Endpoint)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL, got %q", s.Endpoint)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if s.FormID == "" && !s.DryRun {
		return fmt.Errorf("form_id is required unless dry_run is enabled")
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}
