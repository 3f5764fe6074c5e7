package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the listing screen and the review form
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	Escape    key.Binding
	Theme     key.Binding
	RatingUp  key.Binding
	RatingDn  key.Binding
	Language  key.Binding
	Compact   key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Popular   key.Binding
	New       key.Binding
	AI        key.Binding
	AddReview key.Binding
	Help      key.Binding
	Quit      key.Binding

	// Review form
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Theme: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark/light"),
		),
		RatingUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "min rating up"),
		),
		RatingDn: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "min rating down"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
		Compact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compact"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Popular: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "popular"),
		),
		New: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "new"),
		),
		AI: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "ai"),
		),
		AddReview: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add review"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "fewer stars"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "more stars"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "submit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
	}
}

// ShortHelp is shown in the footer of the listing screen
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Theme, k.NextTab, k.AddReview, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Escape},
		{k.RatingUp, k.RatingDn, k.Language, k.Compact, k.Theme},
		{k.NextTab, k.PrevTab, k.Popular, k.New, k.AI},
		{k.AddReview, k.Help, k.Quit},
	}
}

// formKeys adapts the review form bindings to help.KeyMap
type formKeys struct {
	KeyMap
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Left, k.Right, k.Toggle, k.Submit, k.Escape}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
