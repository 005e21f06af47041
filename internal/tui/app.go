// internal/tui/app.go
//
// This is the terminal front end of the intake form. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: the form values, the step progress and the widgets
// 2. Update: key presses mutate the form or move between steps
// 3. View: stepper, current step, controls and the outcome of a submission
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/kingrea/project-intake/internal/config"
	"github.com/kingrea/project-intake/internal/intake"
	"github.com/kingrea/project-intake/internal/logbook"
	"github.com/kingrea/project-intake/internal/submission"
)

const (
	confirmationText = "Formunuz başarıyla gönderildi! En kısa sürede size geri dönüş yapacağım."
	failureText      = "Form gönderilemedi. Lütfen tekrar deneyin."
	missingText      = "Lütfen zorunlu alanları doldurun: %s"

	logTailLines = 8
	defaultWidth = 80
)

// submitState tracks the lifecycle of the single allowed submission.
type submitState int

const (
	submitIdle submitState = iota
	submitInFlight
	submitSucceeded
	submitFailed
)

// submitResultMsg carries the adapter's answer back into the event loop.
type submitResultMsg struct {
	result submission.Result
	err    error
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithSubmitter replaces the submitter derived from the configuration.
func WithSubmitter(s submission.Submitter) AppOption {
	return func(a *App) {
		if s != nil {
			a.submitter = s
		}
	}
}

// WithForm pre-fills the form.
func WithForm(form intake.FormState) AppOption {
	return func(a *App) {
		a.form = form.Clone()
	}
}

// WithRules swaps the step predicates.
func WithRules(rules intake.Rules) AppOption {
	return func(a *App) {
		if rules != nil {
			a.rules = rules
		}
	}
}

// WithLogbook writes session events to lb instead of the configured log file.
// The caller keeps ownership of lb.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		if lb != nil {
			a.logbook = lb
			a.ownsLogbook = false
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config    *config.Config
	form      intake.FormState
	rules     intake.Rules
	progress  intake.Progress
	submitter submission.Submitter
	timeout   time.Duration

	logbook     *logbook.Logbook
	ownsLogbook bool

	widgets map[intake.Step][]widget
	focus   int

	submit    submitState
	statusMsg string
	showLog   bool

	keys keyMap
	help help.Model

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates the form UI for cfg.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, errors.New("tui: config is required")
	}
	sub := cfg.Submission()
	app := &App{
		config:  cfg,
		timeout: sub.Timeout,
		showLog: cfg.Project.UI.ShowLog,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.timeout <= 0 {
		app.timeout = submission.DefaultTimeout
	}
	if app.logbook == nil {
		lb, err := logbook.New(cfg.LogPath(), logbook.WithSession(uuid.NewString()))
		if err != nil {
			return nil, fmt.Errorf("tui: open session log: %w", err)
		}
		app.logbook = lb
		app.ownsLogbook = true
	}
	if app.submitter == nil {
		var logger submission.Logger
		if app.logbook != nil {
			logger = app.logbook
		}
		app.submitter = submission.New(submission.Settings{
			FormID:     sub.FormID,
			Endpoint:   sub.Endpoint,
			Timeout:    app.timeout,
			DryRun:     sub.DryRun,
			DryRunPath: cfg.DryRunPath(),
		}, logger)
	}
	app.progress = intake.NewProgress(app.rules)
	app.widgets = make(map[intake.Step][]widget, len(intake.Steps()))
	for _, step := range intake.Steps() {
		for _, f := range intake.Fields(step) {
			app.widgets[step] = append(app.widgets[step], newWidget(f, app.form))
		}
	}
	app.focusField(0)
	mode := "formspree"
	if sub.DryRun {
		mode = "dry-run"
	}
	app.logInfo("Session opened · step %d · %s", int(app.progress.Current()), mode)
	return app, nil
}

// Close flushes the session log when the App opened it.
func (a *App) Close() error {
	if a == nil || !a.ownsLogbook {
		return nil
	}
	a.logInfo("Session closed")
	return a.logbook.Close()
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil
	case submitResultMsg:
		return a.handleSubmitResult(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.ToggleLog):
		a.showLog = !a.showLog
		return a, nil
	}
	// The form is locked after a successful send and while one is pending.
	if a.submit == submitSucceeded || a.submit == submitInFlight {
		return a, nil
	}

	current, hasWidget := a.focused()
	switch {
	case key.Matches(msg, a.keys.Next):
		return a.next()
	case key.Matches(msg, a.keys.Back):
		return a.back()
	case key.Matches(msg, a.keys.Submit):
		return a.startSubmit()
	case key.Matches(msg, a.keys.Jump):
		if target, ok := jumpTarget(msg.String()); ok {
			return a.jump(intake.Step(target))
		}
		return a, nil
	case key.Matches(msg, a.keys.NextField):
		return a, a.moveFocus(1)
	case key.Matches(msg, a.keys.PrevField):
		return a, a.moveFocus(-1)
	}
	if hasWidget && !current.multiline() {
		switch {
		case key.Matches(msg, a.keys.Down), msg.String() == "enter":
			return a, a.moveFocus(1)
		case key.Matches(msg, a.keys.Up):
			return a, a.moveFocus(-1)
		}
	}
	if !hasWidget {
		return a, nil
	}
	cmd := current.update(msg, &a.form)
	if a.submit == submitFailed {
		a.statusMsg = ""
	}
	return a, cmd
}

func (a *App) stepWidgets() []widget {
	return a.widgets[a.progress.Current()]
}

func (a *App) focused() (widget, bool) {
	widgets := a.stepWidgets()
	if a.focus < 0 || a.focus >= len(widgets) {
		return nil, false
	}
	return widgets[a.focus], true
}

func (a *App) focusField(idx int) tea.Cmd {
	if w, ok := a.focused(); ok {
		w.blur()
	}
	widgets := a.stepWidgets()
	if len(widgets) == 0 {
		a.focus = 0
		return nil
	}
	a.focus = (idx%len(widgets) + len(widgets)) % len(widgets)
	return widgets[a.focus].focus()
}

func (a *App) moveFocus(delta int) tea.Cmd {
	return a.focusField(a.focus + delta)
}

// moveTo installs a progress returned by a successful transition.
func (a *App) moveTo(next intake.Progress) (tea.Model, tea.Cmd) {
	from := a.progress.Current()
	if w, ok := a.focused(); ok {
		w.blur()
	}
	a.progress = next
	a.focus = 0
	a.statusMsg = ""
	a.logInfo("Step %d → %d", int(from), int(next.Current()))
	return a, a.focusField(0)
}

func (a *App) next() (tea.Model, tea.Cmd) {
	next, ok := a.progress.Next(a.form)
	if !ok {
		a.blocked()
		return a, nil
	}
	return a.moveTo(next)
}

func (a *App) back() (tea.Model, tea.Cmd) {
	prev, ok := a.progress.Prev()
	if !ok {
		return a, nil
	}
	return a.moveTo(prev)
}

func (a *App) jump(target intake.Step) (tea.Model, tea.Cmd) {
	if target == a.progress.Current() {
		return a, nil
	}
	if !a.progress.Navigable(target, a.form) {
		a.logWarn("Jump to step %d blocked on step %d", int(target), int(a.progress.Current()))
		if target > a.progress.Current() && !a.progress.CurrentValid(a.form) {
			a.blocked()
		}
		return a, nil
	}
	next, ok := a.progress.GoTo(target, a.form)
	if !ok {
		return a, nil
	}
	return a.moveTo(next)
}

// blocked explains why the current step cannot be left.
func (a *App) blocked() {
	step := a.progress.Current()
	missing := intake.Missing(step, a.form)
	if len(missing) == 0 {
		return
	}
	a.logWarn("Next blocked on step %d · missing %s", int(step), strings.Join(missing, ", "))
	labels := make([]string, len(missing))
	for i, name := range missing {
		labels[i] = name
		if f, ok := intake.FieldByName(name); ok {
			labels[i] = f.Label
		}
	}
	a.statusMsg = fmt.Sprintf(missingText, strings.Join(labels, ", "))
}

func (a *App) canSubmit() bool {
	return a.submit != submitInFlight && a.submit != submitSucceeded && a.progress.CanSubmit(a.form)
}

// startSubmit returns the submission command on its own so exactly one
// request leaves per accepted key press.
func (a *App) startSubmit() (tea.Model, tea.Cmd) {
	if a.progress.Current() != intake.LastStep {
		return a, nil
	}
	if !a.canSubmit() {
		if !a.progress.Rules().AllValid(a.form) {
			a.blocked()
		}
		return a, nil
	}
	a.submit = submitInFlight
	a.statusMsg = ""
	a.logInfo("Submission started")

	payload := a.form.Payload()
	submitter := a.submitter
	timeout := a.timeout
	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := submitter.Submit(ctx, payload)
		return submitResultMsg{result: result, err: err}
	}
}

func (a *App) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil && msg.result.OK {
		a.submit = submitSucceeded
		if w, ok := a.focused(); ok {
			w.blur()
		}
		a.statusMsg = ""
		a.logInfo("Submission succeeded")
		return a, nil
	}
	a.submit = submitFailed
	a.statusMsg = failureText
	if msg.err != nil {
		a.logError("Submission failed: %v", msg.err)
	} else {
		a.logError("Submission failed: %s", msg.result.Summary())
	}
	return a, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}
	header := headerStyle.Render("⬡ PROJE TALEP FORMU")
	sections := []string{header, a.renderStepper()}

	if a.submit == submitSucceeded {
		sections = append(sections, confirmationStyle.Render(confirmationText))
	} else {
		sections = append(sections,
			a.renderStep(width),
			a.renderControls(),
		)
		if a.submit == submitFailed && a.statusMsg != "" {
			sections = append(sections, failureStyle.Render(a.statusMsg))
		}
	}
	if a.showLog {
		if logPanel := a.renderLogPanel(); logPanel != "" {
			sections = append(sections, logPanel)
		}
	}
	sections = append(sections, a.help.View(a.keys))
	if a.submit != submitFailed && a.statusMsg != "" {
		footer := lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1).
			Render(a.statusMsg)
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n")
}

func (a *App) renderStepper() string {
	current := a.progress.Current()
	var parts []string
	for _, step := range intake.Steps() {
		if step > intake.FirstStep {
			sep := dimStyle
			if step <= current {
				sep = lipgloss.NewStyle().Foreground(colorPrimary)
			}
			parts = append(parts, sep.Render(" ── "))
		}
		label := fmt.Sprintf("%d %s", int(step), step.Title())
		switch {
		case step == current:
			parts = append(parts, lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorPrimary).Render(label))
		case a.progress.ShowCompleted(step):
			parts = append(parts, lipgloss.NewStyle().Foreground(colorDone).Render("✓ "+step.Title()))
		case a.progress.Navigable(step, a.form):
			parts = append(parts, lipgloss.NewStyle().Foreground(colorText).Render(label))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(colorDisabled).Render(label))
		}
	}
	return strings.Join(parts, "")
}

func (a *App) renderStep(width int) string {
	step := a.progress.Current()
	inner := width - 4
	blocks := []string{headingStyle.Render(step.Heading())}
	for i, w := range a.stepWidgets() {
		blocks = append(blocks, w.view(a.form, i == a.focus, inner))
	}
	return panelStyle.Width(inner).Render(strings.Join(blocks, "\n\n"))
}

func (a *App) renderControls() string {
	current := a.progress.Current()
	var buttons []string
	if current > intake.FirstStep {
		buttons = append(buttons, buttonStyle.Render("‹ Geri"))
	}
	if current < intake.LastStep {
		style := disabledButtonStyle
		if a.progress.CurrentValid(a.form) {
			style = primaryButtonStyle
		}
		buttons = append(buttons, style.Render("İleri ›"))
	} else {
		label := "Gönder"
		if a.submit == submitInFlight {
			label = "Gönderiliyor…"
		}
		style := disabledButtonStyle
		if a.canSubmit() {
			style = primaryButtonStyle
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logTailLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Render(fmt.Sprintf("LOG · %s · %d", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}
