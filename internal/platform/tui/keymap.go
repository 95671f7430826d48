package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Flap       key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Select, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Flap, k.Restart, k.Back},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action for the given phase.
// Flap and menu-up share keys, so the phase decides which one applies.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase flappy.Phase) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	switch phase {
	case flappy.PhaseMenu:
		switch {
		case key.Matches(msg, k.Up):
			return core.ActionUp
		case key.Matches(msg, k.Down):
			return core.ActionDown
		case key.Matches(msg, k.Select):
			return core.ActionConfirm
		}

	case flappy.PhasePlaying:
		if key.Matches(msg, k.Flap) {
			return core.ActionFlap
		}

	case flappy.PhaseGameOver:
		switch {
		case key.Matches(msg, k.Flap):
			return core.ActionFlap
		case key.Matches(msg, k.Restart):
			return core.ActionRestart
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}
	}

	return core.ActionNone
}
