package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Back      key.Binding
	Submit    key.Binding
	Jump      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Down      key.Binding
	Up        key.Binding
	ToggleLog key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "ileri"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b", "pgup"),
			key.WithHelp("ctrl+b", "geri"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "gönder"),
		),
		Jump: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5"),
			key.WithHelp("alt+1…5", "adıma git"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sonraki alan"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "önceki alan"),
		),
		Down: key.NewBinding(key.WithKeys("down")),
		Up:   key.NewBinding(key.WithKeys("up")),
		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "günlük"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "çıkış"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Next, k.Back, k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.Next, k.Back, k.Jump},
		{k.Submit, k.ToggleLog, k.Quit},
	}
}

// jumpTarget maps alt+N to step N.
func jumpTarget(keyName string) (int, bool) {
	if len(keyName) != len("alt+1") {
		return 0, false
	}
	digit := keyName[len(keyName)-1]
	if digit < '1' || digit > '9' {
		return 0, false
	}
	return int(digit - '0'), true
}
