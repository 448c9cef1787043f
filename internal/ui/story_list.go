package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/alert-banner/internal/stories"
)

// storyItem wraps a Story for use in a list
type storyItem struct {
	story stories.Story
}

// FilterValue implements list.Item
func (s storyItem) FilterValue() string {
	return s.story.ID + " " + s.story.Name
}

// Title implements list.DefaultItem
func (s storyItem) Title() string {
	return s.story.Name
}

// Description implements list.DefaultItem
func (s storyItem) Description() string {
	n := len(s.story.Entries(nil))
	if n == 1 {
		return s.story.Description
	}
	return fmt.Sprintf("%d banners • %s", n, s.story.Description)
}

// createStoryList creates a list.Model from the catalog
func createStoryList(catalog []stories.Story, width, height int) list.Model {
	items := make([]list.Item, len(catalog))
	for i, story := range catalog {
		items[i] = storyItem{story: story}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Components/AlertBanner"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
