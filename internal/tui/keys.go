package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Submit      key.Binding
	Up          key.Binding
	Down        key.Binding
	Delete      key.Binding
	FocusFilter key.Binding
	FocusForm   key.Binding
	Dismiss     key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add contact")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:      key.NewBinding(key.WithKeys("d", "x", "delete", "backspace"), key.WithHelp("d", "delete")),
		FocusFilter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		FocusForm:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new contact")),
		Dismiss:     key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// formKeys is the footer while a text field has focus.
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.PrevField, k.ForceQuit}
}

func (k formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// listKeys is the footer while the contact list has focus.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.FocusFilter, k.FocusForm, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete},
		{k.FocusFilter, k.FocusForm, k.NextField, k.PrevField},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// alertKeys is the footer while the duplicate-name alert is open.
type alertKeys struct{ keyMap }

func (k alertKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Dismiss} }
func (k alertKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
