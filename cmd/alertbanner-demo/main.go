package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/alert-banner/internal/stories"
	"github.com/ngmaloney/alert-banner/internal/ui"
)

// This demo opens the gallery on one story without reading any config
func main() {
	story := flag.String("story", "complete-variant-matrix", "Story to open (see `alertbanner stories`)")
	flag.Parse()

	m := ui.NewModel(stories.All())
	if err := m.OpenStory(*story); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
