package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/alert-banner/internal/banner"
	"github.com/ngmaloney/alert-banner/internal/stories"
)

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(stories.All())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return updated.(Model)
}

func openModel(t *testing.T, id string) Model {
	t.Helper()
	m := sizedModel(t)
	if err := m.OpenStory(id); err != nil {
		t.Fatalf("OpenStory(%q) error = %v", id, err)
	}
	return m
}

func press(m Model, msg tea.KeyMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := NewModel(stories.All())

	if m.state != StateStoryList {
		t.Errorf("NewModel() state = %v, want StateStoryList", m.state)
	}

	if got := len(m.storyList.Items()); got != len(stories.All()) {
		t.Errorf("NewModel() list items = %d, want %d", got, len(stories.All()))
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := sizedModel(t)

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}

	if m.height != 60 {
		t.Errorf("After WindowSizeMsg, height = %d, want 60", m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(stories.All())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Error("Expected Ctrl+C to return quit command")
	}
}

func TestModel_EnterOpensSelectedStory(t *testing.T) {
	m := sizedModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != StateStory {
		t.Fatalf("After enter, state = %v, want StateStory", m.state)
	}
	if m.story == nil || m.story.ID != stories.All()[0].ID {
		t.Errorf("After enter, story = %v, want %q", m.story, stories.All()[0].ID)
	}
}

func TestModel_OpenStory_Unknown(t *testing.T) {
	m := sizedModel(t)

	if err := m.OpenStory("missing"); err == nil {
		t.Error("OpenStory(missing) should fail")
	}
	if m.state != StateStoryList {
		t.Errorf("state = %v, want StateStoryList", m.state)
	}
}

func TestModel_EscReturnsToList(t *testing.T) {
	m := openModel(t, "default")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.state != StateStoryList {
		t.Errorf("After esc, state = %v, want StateStoryList", m.state)
	}
	if m.story != nil {
		t.Error("After esc, story should be cleared")
	}
}

func TestModel_TabCyclesControls(t *testing.T) {
	m := openModel(t, "with-both-close-and-action")

	targets := m.targets()
	if len(targets) != 4 {
		t.Fatalf("targets = %d, want 4", len(targets))
	}
	if targets[0].control != banner.ControlAction || targets[1].control != banner.ControlClose {
		t.Errorf("targets[0:2] = %v, want action then close", targets[:2])
	}

	for i := 1; i <= 4; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyTab})
		if want := i % 4; m.focus != want {
			t.Errorf("after %d tabs focus = %d, want %d", i, m.focus, want)
		}
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != 3 {
		t.Errorf("after shift+tab focus = %d, want 3", m.focus)
	}
}

func TestModel_ActivateAction(t *testing.T) {
	m := openModel(t, "with-action-button")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.status != "Undo action clicked!" {
		t.Errorf("status = %q, want %q", m.status, "Undo action clicked!")
	}
	if len(m.dismissed) != 0 {
		t.Error("action should not dismiss the banner")
	}
}

func TestModel_CloseDismissesAndRestores(t *testing.T) {
	m := openModel(t, "with-close-button")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.status != "Alert closed!" {
		t.Errorf("status = %q, want %q", m.status, "Alert closed!")
	}
	if !m.dismissed[0] {
		t.Fatal("first banner should be dismissed")
	}
	if got := len(m.targets()); got != 2 {
		t.Errorf("targets after close = %d, want 2", got)
	}
	if strings.Contains(m.renderStory(), "Dismissible Warning") {
		t.Error("dismissed banner is still rendered")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	if len(m.dismissed) != 0 {
		t.Error("restore should bring back dismissed banners")
	}
	if !strings.Contains(m.renderStory(), "Dismissible Warning") {
		t.Error("restored banner is not rendered")
	}
}

func TestModel_CloseAll(t *testing.T) {
	m := openModel(t, "with-close-button")

	for i := 0; i < 3; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	if got := len(m.targets()); got != 0 {
		t.Errorf("targets = %d, want 0", got)
	}
	if !strings.Contains(m.renderStory(), "All banners dismissed") {
		t.Error("expected empty story notice")
	}

	// Nothing left to activate
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != 0 {
		t.Errorf("focus = %d, want 0", m.focus)
	}
}

func TestModel_ActivateWithoutControls(t *testing.T) {
	m := openModel(t, "title-only")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.status != "" {
		t.Errorf("status = %q, want empty", m.status)
	}
}

func TestModel_View_States(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) Model
		contains string
	}{
		{
			name:     "story list",
			setup:    sizedModel,
			contains: "Components/AlertBanner",
		},
		{
			name:     "story",
			setup:    func(t *testing.T) Model { return openModel(t, "complete-variant-matrix") },
			contains: "Complete Variant Matrix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := tt.setup(t).View()
			if !strings.Contains(view, tt.contains) {
				t.Errorf("View() should contain %q", tt.contains)
			}
		})
	}
}

func TestModel_View_InitialLoading(t *testing.T) {
	m := NewModel(stories.All())

	if view := m.View(); view != "Loading..." {
		t.Errorf("View() = %q, want Loading...", view)
	}
}

func TestModel_RenderStory_Sections(t *testing.T) {
	m := openModel(t, "complete-variant-matrix")

	content := m.renderStory()
	for _, section := range []string{"Filled Variant", "Outlined Variant", "Standard Variant"} {
		if !strings.Contains(content, section) {
			t.Errorf("renderStory() missing section %q", section)
		}
	}
}

func TestAppState_Constants(t *testing.T) {
	if StateStoryList != 0 {
		t.Errorf("StateStoryList = %d, want 0", StateStoryList)
	}
	if StateStory != 1 {
		t.Errorf("StateStory = %d, want 1", StateStory)
	}
}
