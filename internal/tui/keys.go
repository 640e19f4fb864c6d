package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus    key.Binding
	PrevFocus    key.Binding
	Left         key.Binding
	Right        key.Binding
	ToggleBrand  key.Binding
	Sort         key.Binding
	MultiSort    key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	FirstPage    key.Binding
	LastPage     key.Binding
	LargerPages  key.Binding
	SmallerPages key.Binding
	Refresh      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Sort, k.NextPage, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Left, k.Right},
		{k.ToggleBrand, k.Sort, k.MultiSort},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage, k.LargerPages, k.SmallerPages},
		{k.Refresh, k.Help, k.Quit},
	}
}

var keys = keyMap{
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	ToggleBrand: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle brand"),
	),
	Sort: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter/s", "sort"),
	),
	MultiSort: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "add to sort"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "n"),
		key.WithHelp("pgdn/n", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "p"),
		key.WithHelp("pgup/p", "previous page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last page"),
	),
	LargerPages: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more rows"),
	),
	SmallerPages: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer rows"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}
