// cmd/intake/main.go
//
// This is the entry point for the intake CLI.
// Running `intake` opens the five-step project request form in the terminal.
//
// Flow:
// 1. `intake check ...` is handled on its own and exits
// 2. Otherwise the .intake folder is initialized and the config loaded
// 3. Command-line flags override the config, then the TUI starts

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/project-intake/internal/config"
	"github.com/kingrea/project-intake/internal/tui"
)

func main() {
	if handleCheckCommand() {
		return
	}

	dir := flag.String("dir", "", "project directory holding .intake (defaults to the working directory)")
	dryRun := flag.Bool("dry-run", false, "write the payload to .intake/logs/dry-run.jsonl instead of sending it")
	formID := flag.String("form-id", "", "override the hosted form identifier")
	flag.Parse()

	projectDir, err := resolveDir(*dir)
	if err != nil {
		die("Error getting working directory: %v", err)
	}

	if err := config.InitIntakeDir(projectDir); err != nil {
		die("Error initializing .intake directory: %v", err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		die("Error loading config: %v", err)
	}
	if *dryRun {
		cfg.SetDryRun(true)
	}
	if *formID != "" {
		if err := cfg.SetFormID(*formID); err != nil {
			die("Error: %v", err)
		}
	}

	app, err := tui.NewApp(cfg)
	if err != nil {
		die("Error creating TUI: %v", err)
	}
	defer app.Close()

	// Run blocks until the user quits
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_ = app.Close()
		die("Error running TUI: %v", err)
	}
}

func resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
