package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the story view bindings
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Restore  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "Previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "Activate"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Restore dismissed"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Stories"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("Q", "Quit"),
		),
	}
}

// helpLine renders bindings as "Key: Desc • Key: Desc"
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
