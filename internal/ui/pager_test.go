package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPagerView(t *testing.T) {
	m := pagerModel{
		content: "Line 1\nLine 2\nLine 3",
		theme:   ResolveTheme(DefaultPreset),
	}
	if m.View() != "Loading..." {
		t.Errorf("expected loading view before sizing, got %q", m.View())
	}

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = sized.(pagerModel)

	view := stripANSI(m.View())
	if !strings.Contains(view, "Line 1") || !strings.Contains(view, "q quit") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestPagerQuit(t *testing.T) {
	m := pagerModel{content: "x"}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
