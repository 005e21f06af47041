package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent   = lipgloss.Color("#FF6B6B")
	colorPrimary  = lipgloss.Color("#5B8DEF")
	colorDone     = lipgloss.Color("#6BCB77")
	colorText     = lipgloss.Color("#DDDDDD")
	colorMuted    = lipgloss.Color("#888888")
	colorDisabled = lipgloss.Color("#555555")
	colorBorder   = lipgloss.Color("#444444")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	requiredStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	dimStyle          = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorDone)
	cursorStyle       = lipgloss.NewStyle().Foreground(colorPrimary)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText)

	primaryButtonStyle = buttonStyle.
				BorderForeground(colorPrimary).
				Bold(true)

	disabledButtonStyle = buttonStyle.
				Foreground(colorDisabled).
				BorderForeground(colorDisabled)

	confirmationStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDone).
				Foreground(colorDone).
				Padding(0, 1).
				MarginTop(1)

	failureStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
