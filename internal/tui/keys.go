package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/lox/janken/internal/janken"
)

type keyMap struct {
	Rock      key.Binding
	Scissors  key.Binding
	Paper     key.Binding
	PlayAgain key.Binding
	Results   key.Binding
	Quit      key.Binding
}

func newKeyMap(labels Labels) keyMap {
	return keyMap{
		Rock: key.NewBinding(
			key.WithKeys("1", "r"),
			key.WithHelp("1/r", labels.Hands[janken.Rock]),
		),
		Scissors: key.NewBinding(
			key.WithKeys("2", "s"),
			key.WithHelp("2/s", labels.Hands[janken.Scissors]),
		),
		Paper: key.NewBinding(
			key.WithKeys("3", "p"),
			key.WithHelp("3/p", labels.Hands[janken.Paper]),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("enter", labels.PlayAgain),
		),
		Results: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", labels.ShowResults),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", labels.Quit),
		),
	}
}

// sync enables the bindings that apply to the current round. Hand keys only
// work while the opponent is cycling; play again and results only after a
// result is shown.
func (k *keyMap) sync(e *janken.Engine) {
	_, shown := e.Opponent()
	selecting := shown && !e.Finished()

	k.Rock.SetEnabled(selecting)
	k.Scissors.SetEnabled(selecting)
	k.Paper.SetEnabled(selecting)
	k.PlayAgain.SetEnabled(e.Finished())
	k.Results.SetEnabled(e.Finished())
}

type handBinding struct {
	binding key.Binding
	hand    janken.Hand
}

func (k keyMap) hands() []handBinding {
	return []handBinding{
		{k.Rock, janken.Rock},
		{k.Scissors, janken.Scissors},
		{k.Paper, janken.Paper},
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rock, k.Scissors, k.Paper, k.PlayAgain, k.Results, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rock, k.Scissors, k.Paper},
		{k.PlayAgain, k.Results, k.Quit},
	}
}
