package explore

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease},
		{k.Reset, k.Help, k.Quit},
	}
}

var defaultKeys = keyMap{
	Increase: key.NewBinding(
		key.WithKeys("+", "right", "l", "up", "k"),
		key.WithHelp("+/→", "n + 2"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("-", "left", "h", "down", "j"),
		key.WithHelp("-/←", "n - 2"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Hilfe"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "Beenden"),
	),
}
