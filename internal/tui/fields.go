package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/project-intake/internal/intake"
)

const choicePlaceholder = "Seçiniz"

// widget edits one field of the form. Widgets write straight into the
// FormState they are handed; the App owns that state.
type widget interface {
	field() intake.Field
	focus() tea.Cmd
	blur()
	// multiline widgets keep up/down and enter for themselves.
	multiline() bool
	update(msg tea.KeyMsg, form *intake.FormState) tea.Cmd
	view(form intake.FormState, focused bool, width int) string
}

func newWidget(f intake.Field, form intake.FormState) widget {
	switch f.Kind {
	case intake.KindMultiline:
		return newNoteWidget(f, form)
	case intake.KindChoice, intake.KindYesNo:
		return &choiceWidget{f: f}
	case intake.KindChecklist:
		return &checklistWidget{f: f}
	default:
		return newTextWidget(f, form)
	}
}

func fieldLabel(f intake.Field, focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	label := style.Render(f.Label)
	if f.Required {
		label += requiredStyle.Render(" *")
	}
	return label
}

type textWidget struct {
	f     intake.Field
	input textinput.Model
}

func newTextWidget(f intake.Field, form intake.FormState) *textWidget {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = f.Placeholder
	in.CharLimit = 256
	in.SetValue(f.Text(form))
	return &textWidget{f: f, input: in}
}

func (w *textWidget) field() intake.Field { return w.f }
func (w *textWidget) focus() tea.Cmd      { return w.input.Focus() }
func (w *textWidget) blur()               { w.input.Blur() }
func (w *textWidget) multiline() bool     { return false }

func (w *textWidget) update(msg tea.KeyMsg, form *intake.FormState) tea.Cmd {
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	w.f.SetText(form, w.input.Value())
	return cmd
}

func (w *textWidget) view(_ intake.FormState, focused bool, width int) string {
	w.input.Width = max(width-4, 10)
	return fieldLabel(w.f, focused) + "\n" + w.input.View()
}

type noteWidget struct {
	f    intake.Field
	area textarea.Model
}

func newNoteWidget(f intake.Field, form intake.FormState) *noteWidget {
	area := textarea.New()
	area.Placeholder = f.Placeholder
	area.ShowLineNumbers = false
	area.SetHeight(3)
	area.SetValue(f.Text(form))
	return &noteWidget{f: f, area: area}
}

func (w *noteWidget) field() intake.Field { return w.f }
func (w *noteWidget) focus() tea.Cmd      { return w.area.Focus() }
func (w *noteWidget) blur()               { w.area.Blur() }
func (w *noteWidget) multiline() bool     { return true }

func (w *noteWidget) update(msg tea.KeyMsg, form *intake.FormState) tea.Cmd {
	var cmd tea.Cmd
	w.area, cmd = w.area.Update(msg)
	w.f.SetText(form, w.area.Value())
	return cmd
}

func (w *noteWidget) view(_ intake.FormState, focused bool, width int) string {
	w.area.SetWidth(max(width-2, 20))
	return fieldLabel(w.f, focused) + "\n" + w.area.View()
}

// choiceWidget covers select boxes and yes/no radios. An empty value means
// nothing is chosen yet.
type choiceWidget struct {
	f intake.Field
}

func (w *choiceWidget) field() intake.Field { return w.f }
func (w *choiceWidget) focus() tea.Cmd      { return nil }
func (w *choiceWidget) blur()               {}
func (w *choiceWidget) multiline() bool     { return false }

func (w *choiceWidget) index(form intake.FormState) int {
	value := w.f.Text(form)
	for i, opt := range w.f.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func (w *choiceWidget) update(msg tea.KeyMsg, form *intake.FormState) tea.Cmd {
	n := len(w.f.Options)
	if n == 0 {
		return nil
	}
	idx := w.index(*form)
	switch msg.String() {
	case "right", "l":
		idx = (idx + 1) % n
	case "left", "h":
		if idx <= 0 {
			idx = n - 1
		} else {
			idx--
		}
	case "backspace", "delete":
		w.f.SetText(form, "")
		return nil
	case "y":
		if w.f.Kind != intake.KindYesNo {
			return nil
		}
		w.f.SetText(form, intake.Yes)
		return nil
	case "n":
		if w.f.Kind != intake.KindYesNo {
			return nil
		}
		w.f.SetText(form, intake.No)
		return nil
	default:
		return nil
	}
	w.f.SetText(form, w.f.Options[idx].Value)
	return nil
}

func (w *choiceWidget) view(form intake.FormState, focused bool, _ int) string {
	idx := w.index(form)
	var body string
	if w.f.Kind == intake.KindYesNo {
		parts := make([]string, len(w.f.Options))
		for i, opt := range w.f.Options {
			if i == idx {
				parts[i] = selectedStyle.Render("(•) " + opt.Label)
			} else {
				parts[i] = "( ) " + opt.Label
			}
		}
		body = strings.Join(parts, "   ")
	} else {
		label := dimStyle.Render(choicePlaceholder)
		if idx >= 0 {
			label = selectedStyle.Render(w.f.Options[idx].Label)
		}
		body = "‹ " + label + " ›"
	}
	if focused {
		body = cursorStyle.Render("› ") + body
	} else {
		body = "  " + body
	}
	return fieldLabel(w.f, focused) + "\n" + body
}

type checklistWidget struct {
	f      intake.Field
	cursor int
}

func (w *checklistWidget) field() intake.Field { return w.f }
func (w *checklistWidget) focus() tea.Cmd      { return nil }
func (w *checklistWidget) blur()               {}
func (w *checklistWidget) multiline() bool     { return false }

func (w *checklistWidget) update(msg tea.KeyMsg, form *intake.FormState) tea.Cmd {
	n := len(w.f.Options)
	if n == 0 {
		return nil
	}
	switch msg.String() {
	case "right", "l":
		w.cursor = (w.cursor + 1) % n
	case "left", "h":
		w.cursor = (w.cursor - 1 + n) % n
	case " ", "space", "x":
		w.f.Toggle(form, w.f.Options[w.cursor].Value)
	}
	return nil
}

// view lays the options out in two columns.
func (w *checklistWidget) view(form intake.FormState, focused bool, width int) string {
	cells := make([]string, len(w.f.Options))
	for i, opt := range w.f.Options {
		box := "[ ] "
		style := lipgloss.NewStyle()
		if w.f.Has(form, opt.Value) {
			box = "[x] "
			style = selectedStyle
		}
		pointer := "  "
		if focused && i == w.cursor {
			pointer = cursorStyle.Render("› ")
		}
		cells[i] = pointer + style.Render(box+opt.Label)
	}
	half := (len(cells) + 1) / 2
	colWidth := max(width/2-2, 16)
	column := lipgloss.NewStyle().Width(colWidth)
	var rows []string
	for i := 0; i < half; i++ {
		left := column.Render(cells[i])
		right := ""
		if i+half < len(cells) {
			right = cells[i+half]
		}
		rows = append(rows, left+right)
	}
	return fieldLabel(w.f, focused) + "\n" + strings.Join(rows, "\n")
}
