package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmRequest describes a yes/no question. Details are listed under the
// prompt, e.g. the reminders about to be removed.
type ConfirmRequest struct {
	Prompt  string
	Details []string
	// DefaultYes makes enter answer yes.
	DefaultYes bool
}

var confirmKeys = struct {
	Yes, No, Accept, Abort key.Binding
}{
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N")),
	Accept: key.NewBinding(key.WithKeys("enter")),
	Abort:  key.NewBinding(key.WithKeys("esc", "ctrl+c", "q")),
}

type confirmModel struct {
	req       ConfirmRequest
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.confirmed = true
	case key.Matches(keyMsg, confirmKeys.No), key.Matches(keyMsg, confirmKeys.Abort):
		m.confirmed = false
	case key.Matches(keyMsg, confirmKeys.Accept):
		m.confirmed = m.req.DefaultYes
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	for _, d := range m.req.Details {
		b.WriteString(m.theme.HelpStyle().Render("  " + d))
		b.WriteString("\n")
	}
	hint := "[y/N]"
	if m.req.DefaultYes {
		hint = "[Y/n]"
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(m.req.Prompt))
	b.WriteString(" ")
	b.WriteString(m.theme.DangerStyle().Render(hint))
	b.WriteString(" ")
	return b.String()
}

// Confirm asks req on the terminal and reports the answer.
func Confirm(req ConfirmRequest, theme Theme) (bool, error) {
	result, err := tea.NewProgram(confirmModel{req: req, theme: theme}).Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
