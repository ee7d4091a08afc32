package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodctl/internal/mood"
)

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Danger    lipgloss.Color
	// Empty is the color of unselected mood bar segments.
	Empty lipgloss.Color
}

// DefaultPreset is used when no or an unknown preset is configured.
const DefaultPreset = "default-dark"

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:   lipgloss.Color("15"),
		Secondary: lipgloss.Color("243"),
		Accent:    lipgloss.Color("33"),
		Muted:     lipgloss.Color("241"),
		Danger:    lipgloss.Color("9"),
		Empty:     lipgloss.Color("238"),
	},
	"default-light": {
		Primary:   lipgloss.Color("0"),
		Secondary: lipgloss.Color("240"),
		Accent:    lipgloss.Color("27"),
		Muted:     lipgloss.Color("245"),
		Danger:    lipgloss.Color("1"),
		Empty:     lipgloss.Color("#dddddd"),
	},
	"dracula": {
		Primary:   lipgloss.Color("#F8F8F2"),
		Secondary: lipgloss.Color("#6272A4"),
		Accent:    lipgloss.Color("#BD93F9"),
		Muted:     lipgloss.Color("#6272A4"),
		Danger:    lipgloss.Color("#FF5555"),
		Empty:     lipgloss.Color("#44475A"),
	},
	"gruvbox-dark": {
		Primary:   lipgloss.Color("#EBDBB2"),
		Secondary: lipgloss.Color("#665C54"),
		Accent:    lipgloss.Color("#FABD2F"),
		Muted:     lipgloss.Color("#928374"),
		Danger:    lipgloss.Color("#FB4934"),
		Empty:     lipgloss.Color("#3C3836"),
	},
}

// ResolveTheme returns the named preset, falling back to DefaultPreset.
func ResolveTheme(preset string) Theme {
	if theme, ok := presets[preset]; ok {
		return theme
	}
	return presets[DefaultPreset]
}

// PresetNames returns the available theme names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// AccentStyle returns a lipgloss style for accented/focused elements.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

// DangerStyle returns a lipgloss style for warnings and failures.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}

// BorderStyle returns a lipgloss style with a rounded border using secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		Padding(0, 1)
}

// MoodStyle colors text with the mood's own color.
func MoodStyle(s mood.Score) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Level().Color))
}

// MoodBar renders one segment per scale level, lowest first. Segments at or
// below the selected score take their level's color.
func (t Theme) MoodBar(selected mood.Score, segmentWidth int) string {
	var b strings.Builder
	for s := mood.MinScore; s <= mood.MaxScore; s++ {
		color := t.Empty
		if selected >= s {
			color = lipgloss.Color(s.Level().Color)
		}
		b.WriteString(lipgloss.NewStyle().Background(color).Render(strings.Repeat(" ", segmentWidth)))
	}
	return b.String()
}
