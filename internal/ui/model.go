package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/ngmaloney/alert-banner/internal/banner"
	"github.com/ngmaloney/alert-banner/internal/stories"
)

// AppState represents the current state of the gallery
type AppState int

const (
	StateStoryList AppState = iota // Pick a story from the catalog
	StateStory                     // Display and interact with one story
)

// chrome lines around the story viewport: title, description, blank,
// status, help (with its padding)
const storyChromeHeight = 7

// target is one focusable control of a displayed story
type target struct {
	entry   int
	control banner.Control
}

// Model represents the gallery's state
type Model struct {
	state  AppState
	width  int
	height int

	catalog   []stories.Story
	storyList list.Model
	viewport  viewport.Model
	keys      keyMap

	// Current story
	story     *stories.Story
	entries   []stories.Entry
	dismissed map[int]bool
	focus     int
	inbox     *inbox
	status    string
}

// NewModel creates a gallery over a story catalog
func NewModel(catalog []stories.Story) Model {
	return Model{
		state:     StateStoryList,
		catalog:   catalog,
		storyList: createStoryList(catalog, 0, 0),
		viewport:  viewport.New(0, 0),
		keys:      defaultKeyMap(),
		inbox:     &inbox{},
	}
}

// OpenStory switches the gallery straight to the story with the given id
func (m *Model) OpenStory(id string) error {
	for _, s := range m.catalog {
		if s.ID == id {
			m.open(s)
			return nil
		}
	}
	return errors.Wrapf(stories.ErrUnknownStory, "open story %q", id)
}

func (m *Model) open(s stories.Story) {
	m.story = &s
	m.inbox = &inbox{}
	m.entries = s.Entries(m.inbox.notify)
	m.dismissed = make(map[int]bool)
	m.focus = 0
	m.status = ""
	m.state = StateStory
	m.viewport.GotoTop()
	m.refresh()
}

// Init initializes the gallery
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.storyList.SetSize(msg.Width, msg.Height-2)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-storyChromeHeight, 1)
		m.refresh()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateStoryList:
			return m.handleStoryList(keyMsg)
		case StateStory:
			return m.handleStory(keyMsg)
		}
	}

	switch m.state {
	case StateStoryList:
		m.storyList, cmd = m.storyList.Update(msg)
	case StateStory:
		m.viewport, cmd = m.viewport.Update(msg)
	}

	return m, cmd
}

// handleStoryList handles keyboard input in the story list
func (m Model) handleStoryList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// While filtering every key belongs to the list
	if m.storyList.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			if item, ok := m.storyList.SelectedItem().(storyItem); ok {
				m.open(item.story)
			}
			return m, nil
		}
	}

	m.storyList, cmd = m.storyList.Update(msg)
	return m, cmd
}

// handleStory handles keyboard input while a story is displayed
func (m Model) handleStory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.state = StateStoryList
		m.story = nil
		m.entries = nil
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if n := len(m.targets()); n > 0 {
			m.focus = (m.focus + 1) % n
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if n := len(m.targets()); n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		m.activateFocused()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		m.dismissed = make(map[int]bool)
		m.status = ""
		m.refresh()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// activateFocused forwards the focused control to its banner. Closing is
// handled here: the banner only reports it, the gallery stops showing it.
func (m *Model) activateFocused() {
	targets := m.targets()
	if len(targets) == 0 {
		return
	}
	t := targets[m.focus%len(targets)]

	if !m.bannerAt(t.entry).Activate(t.control) {
		return
	}
	m.status = strings.Join(m.inbox.drain(), " ")

	if t.control == banner.ControlClose {
		dismissed := make(map[int]bool, len(m.dismissed)+1)
		for k, v := range m.dismissed {
			dismissed[k] = v
		}
		dismissed[t.entry] = true
		m.dismissed = dismissed

		if n := len(m.targets()); n == 0 {
			m.focus = 0
		} else if m.focus >= n {
			m.focus = n - 1
		}
	}
}

// targets lists the focusable controls of the visible banners in order
func (m Model) targets() []target {
	var out []target
	for i := range m.entries {
		if m.dismissed[i] {
			continue
		}
		for _, c := range m.bannerAt(i).Controls() {
			out = append(out, target{entry: i, control: c})
		}
	}
	return out
}

// bannerAt builds entry i for the current terminal width. Banners are
// rebuilt on every pass; they hold no state of their own.
func (m Model) bannerAt(i int) *banner.Banner {
	return banner.FromProps(m.entries[i].Props, banner.WithViewport(m.width*CellWidth))
}

// bannerWidth returns the columns given to entry i
func (m Model) bannerWidth(i int) int {
	w := m.width
	if limit := cols(m.story.Width(m.entries[i])); limit > 0 && limit < w {
		w = limit
	}
	return w
}

func (m *Model) refresh() {
	if m.state != StateStory || m.story == nil {
		return
	}
	m.viewport.SetContent(m.renderStory())
}

// renderStory renders the banners of the current story
func (m Model) renderStory() string {
	var sections []string

	if m.story.Heading != "" {
		sections = append(sections, headingStyle.Render(m.story.Heading))
	}

	var focused target
	if targets := m.targets(); len(targets) > 0 {
		focused = targets[m.focus%len(targets)]
	}

	section := ""
	shown := 0
	for i, e := range m.entries {
		if m.dismissed[i] {
			continue
		}
		if e.Section != "" && e.Section != section {
			section = e.Section
			sections = append(sections, sectionHeaderStyle.Render(section))
		}

		opts := RenderOptions{Width: m.bannerWidth(i)}
		if focused.entry == i {
			opts.Focus = focused.control
		}
		sections = append(sections, RenderBanner(m.bannerAt(i), opts), "")
		shown++
	}

	if shown == 0 {
		sections = append(sections, mutedStyle.Render("All banners dismissed"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateStoryList:
		return m.storyList.View()
	case StateStory:
		return m.viewStory()
	}

	return ""
}

// viewStory renders the story screen
func (m Model) viewStory() string {
	title := titleStyle.Render(m.story.Name)
	subtitle := mutedStyle.Render(m.story.Description)

	status := m.status
	if status != "" {
		status = statusStyle.Render("› " + status)
	}

	help := helpStyle.Render(helpLine(
		m.keys.Next, m.keys.Activate, m.keys.Restore, m.keys.Back, m.keys.Quit,
	))

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)
	sections = append(sections, "")
	sections = append(sections, m.viewport.View())
	sections = append(sections, status)
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
