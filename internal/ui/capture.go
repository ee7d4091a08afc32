package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/export"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/workflow"
)

// PhotoSource is implemented by cameras that import an existing image file.
type PhotoSource interface {
	SetSource(path string)
}

// CaptureConfig holds what the capture TUI needs.
type CaptureConfig struct {
	Workflow *workflow.Capture
	// Source is set when photos are imported from a path typed by the user.
	Source PhotoSource
	Store  export.Lister
	Theme  Theme
}

type captureKeyMap struct {
	Camera key.Binding
	Mood   key.Binding
	Left   key.Binding
	Right  key.Binding
	Save   key.Binding
	Export key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k captureKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Camera, k.Mood, k.Save, k.Export, k.Help, k.Quit}
}

func (k captureKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Camera, k.Save, k.Export},
		{k.Mood, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}

var captureKeys = captureKeyMap{
	Camera: key.NewBinding(key.WithKeys("c", "p"), key.WithHelp("c", "camera")),
	Mood:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "mood")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "lower")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "higher")),
	Save:   key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "save")),
	Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type cameraOpenedMsg struct{ err error }

type photoTakenMsg struct {
	uri string
	err error
}

type savedMsg struct {
	entry mood.Entry
	err   error
}

type exportedMsg struct {
	out string
	err error
}

type captureModel struct {
	cfg      CaptureConfig
	keys     captureKeyMap
	help     help.Model
	input    textinput.Model
	status   string
	failed   bool
	exported string
}

func newCaptureModel(cfg CaptureConfig) captureModel {
	ti := textinput.New()
	ti.Placeholder = "path/to/photo.jpg"
	ti.Prompt = "Photo file: "
	ti.CharLimit = 4096

	return captureModel{
		cfg:   cfg,
		keys:  captureKeys,
		help:  help.New(),
		input: ti,
	}
}

func (m captureModel) Init() tea.Cmd {
	return nil
}

func (m captureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	wf := m.cfg.Workflow

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case cameraOpenedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus("Camera ready.")
		if m.cfg.Source != nil {
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		return m, nil

	case photoTakenMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.input.Blur()
		m.setStatus("Photo captured. Pick a mood and save.")
		return m, nil

	case savedMsg:
		if errors.Is(msg.err, storage.ErrStorage) {
			m.status = "Save failed: " + msg.err.Error() + ". Your photo and mood are kept, press s to retry."
			m.failed = true
			return m, nil
		}
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Saved entry %d. This moment is recorded %s", msg.entry.ID, msg.entry.Mood.Level().Emoji))
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.exported = ""
			m.setError(fmt.Errorf("reading entries failed: %w", msg.err))
			return m, nil
		}
		m.exported = msg.out
		m.setStatus("Exported entries.")
		return m, nil

	case tea.KeyMsg:
		if wf.State() == workflow.CameraOpen {
			return m.updateCamera(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Camera):
			return m, m.openCamera
		case key.Matches(msg, m.keys.Mood):
			score, _ := mood.ParseScore(msg.String())
			m.selectMood(score)
		case key.Matches(msg, m.keys.Left):
			m.selectMood(wf.Draft().Mood - 1)
		case key.Matches(msg, m.keys.Right):
			m.selectMood(wf.Draft().Mood + 1)
		case key.Matches(msg, m.keys.Save):
			if wf.State() == workflow.Saving {
				return m, nil
			}
			m.setStatus("Saving...")
			return m, m.save
		case key.Matches(msg, m.keys.Export):
			return m, m.export
		}
	}

	return m, nil
}

func (m captureModel) updateCamera(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.cfg.Workflow.CancelCamera()
		m.input.Blur()
		m.setStatus("Camera closed.")
		return m, nil
	case "enter":
		if m.cfg.Source != nil {
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				return m, nil
			}
			m.cfg.Source.SetSource(path)
		}
		return m, m.takePhoto
	case " ":
		if m.cfg.Source == nil {
			return m, m.takePhoto
		}
	}

	if m.cfg.Source == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *captureModel) selectMood(s mood.Score) {
	if !s.Valid() {
		return
	}
	if err := m.cfg.Workflow.SelectMood(s); err != nil {
		m.setError(err)
	}
}

func (m *captureModel) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *captureModel) setError(err error) {
	m.status = describeError(err)
	m.failed = true
}

func (m captureModel) openCamera() tea.Msg {
	return cameraOpenedMsg{err: m.cfg.Workflow.OpenCamera(context.Background())}
}

func (m captureModel) takePhoto() tea.Msg {
	uri, err := m.cfg.Workflow.TakePhoto(context.Background())
	return photoTakenMsg{uri: uri, err: err}
}

func (m captureModel) save() tea.Msg {
	e, err := m.cfg.Workflow.Save(context.Background())
	return savedMsg{entry: e, err: err}
}

func (m captureModel) export() tea.Msg {
	out, err := export.ExportAll(context.Background(), m.cfg.Store)
	return exportedMsg{out: out, err: err}
}

func (m captureModel) View() string {
	t := m.cfg.Theme
	draft := m.cfg.Workflow.Draft()
	var b strings.Builder

	b.WriteString(t.HeaderStyle().Render("Log this moment"))
	b.WriteString("\n\n")

	if draft.PhotoURI != "" {
		b.WriteString(t.BorderStyle().Render("Photo: " + draft.PhotoURI))
	} else {
		b.WriteString(t.BorderStyle().Foreground(t.Muted).Render("No photo yet, take one first!"))
	}
	b.WriteString("\n\n")

	for _, l := range mood.Levels {
		face := " " + l.Emoji + " "
		if l.Score == draft.Mood {
			face = lipgloss.NewStyle().Reverse(true).Render(face)
		}
		b.WriteString(face)
	}
	b.WriteString("  ")
	b.WriteString(MoodStyle(draft.Mood).Render(draft.Mood.Level().Label))
	b.WriteString("\n")
	b.WriteString(t.MoodBar(draft.Mood, 4))
	b.WriteString("\n\n")

	if m.cfg.Workflow.State() == workflow.CameraOpen {
		if m.cfg.Source != nil {
			b.WriteString(m.input.View())
			b.WriteString("\n")
			b.WriteString(t.HelpStyle().Render("enter capture • esc cancel"))
		} else {
			b.WriteString(t.HelpStyle().Render("space/enter capture • esc cancel"))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		style := t.AccentStyle()
		if m.failed {
			style = t.DangerStyle()
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.exported != "" {
		b.WriteString("\n")
		b.WriteString(m.exported)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// describeError turns workflow failures into the message shown to the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, capability.ErrPermissionDenied):
		return "Camera permission required. Allow access and try again."
	case errors.Is(err, workflow.ErrMissingPhoto):
		return "Take a photo before saving your mood."
	default:
		return "Error: " + err.Error()
	}
}

// RunCaptureTUI launches the interactive capture screen.
func RunCaptureTUI(cfg CaptureConfig) error {
	p := tea.NewProgram(newCaptureModel(cfg))
	_, err := p.Run()
	return err
}
