package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kingrea/project-intake/internal/config"
	"github.com/kingrea/project-intake/internal/intake"
	"github.com/kingrea/project-intake/internal/submission"
)

const checkUsage = "Usage: intake check [-dir DIR] [-submit] answers.yaml"

// submitterFactory builds the adapter used by `check -submit`.
type submitterFactory func(cfg *config.Config) submission.Submitter

func configSubmitter(cfg *config.Config) submission.Submitter {
	sub := cfg.Submission()
	return submission.New(submission.Settings{
		FormID:     sub.FormID,
		Endpoint:   sub.Endpoint,
		Timeout:    sub.Timeout,
		DryRun:     sub.DryRun,
		DryRunPath: cfg.DryRunPath(),
	}, nil)
}

func handleCheckCommand() bool {
	if len(os.Args) < 2 || os.Args[1] != "check" {
		return false
	}
	os.Exit(runCheck(os.Args[2:], os.Stdout, os.Stderr, configSubmitter))
	return true
}

// runCheck validates an answers file and returns the process exit code.
func runCheck(args []string, stdout, stderr io.Writer, newSubmitter submitterFactory) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "", "project directory holding .intake (defaults to the working directory)")
	submit := fs.Bool("submit", false, "send the payload when every step is valid")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, checkUsage)
		return 2
	}

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "Validation failed: %v\n", err)
		return 1
	}
	form, err := intake.LoadAnswers(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(stderr, "Validation failed: %v\n", err)
		return 1
	}

	rules := intake.DefaultRules()
	valid := true
	for _, step := range intake.Steps() {
		if rules.Valid(step, form) {
			fmt.Fprintf(stdout, "✓ %d %s\n", int(step), step.Title())
			continue
		}
		valid = false
		fmt.Fprintf(stdout, "✗ %d %s (missing: %s)\n", int(step), step.Title(), strings.Join(intake.Missing(step, form), ", "))
	}

	encoded, err := json.MarshalIndent(form.Payload(), "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Encoding failed: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(encoded))

	if !valid {
		fmt.Fprintf(stdout, "Invalid: %s\n", path)
		return 1
	}
	if !*submit {
		fmt.Fprintf(stdout, "OK: %s\n", path)
		return 0
	}

	projectDir, err := resolveDir(*dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error getting working directory: %v\n", err)
		return 1
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Submission().Timeout)
	defer cancel()
	result, err := newSubmitter(cfg).Submit(ctx, form.Payload())
	if err != nil {
		fmt.Fprintf(stderr, "Submission failed: %v\n", err)
		return 1
	}
	if !result.OK {
		fmt.Fprintf(stderr, "Submission failed: %s\n", result.Summary())
		return 1
	}
	fmt.Fprintf(stdout, "Submitted: %s\n", path)
	return 0
}
