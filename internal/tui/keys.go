package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the three decisions plus navigation.
type KeyMap struct {
	Fold key.Binding
	Call key.Binding
	Bet  key.Binding
	Up   key.Binding
	Down key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fold: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fold")),
		Call: key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "call/check")),
		Bet:  key.NewBinding(key.WithKeys("b", "r"), key.WithHelp("b", "bet")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fold, k.Call, k.Bet, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fold, k.Call, k.Bet},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
