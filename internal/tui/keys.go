package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Earning   key.Binding
	Expense   key.Binding
	Odometer  key.Binding
	EndDay    key.Binding
	Edit      key.Binding
	Delete    key.Binding
	DeleteDay key.Binding
	Tab1      key.Binding
	Tab2      key.Binding
	Tab3      key.Binding
	Tab       key.Binding
	Help      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Earning: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add earning"),
	),
	Expense: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "add expense"),
	),
	Odometer: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "odometer/fuel"),
	),
	EndDay: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "end day"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete item"),
	),
	DeleteDay: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete day"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "today"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "history"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Earning, k.Expense, k.Odometer, k.EndDay, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Earning, k.Expense, k.Odometer, k.EndDay},
		{k.Edit, k.Delete, k.DeleteDay},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
