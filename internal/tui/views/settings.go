package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/tamprogen/internal/clipboard"
	"github.com/f3rmion/tamprogen/internal/config"
	"github.com/f3rmion/tamprogen/internal/voice"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	settingsTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	settingsHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				MarginTop(1)
)

var settingsTabs = []string{"Service", "Voice", "Web"}

// SettingsModel is a read-only view of the active configuration.
type SettingsModel struct {
	config     *config.Config
	configDir  string
	recognizer string // Describes the speech backend, "" when disabled

	tab int

	width  int
	height int
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(cfg *config.Config, configDir, recognizer string) SettingsModel {
	if cfg == nil {
		cfg = config.Default()
	}
	return SettingsModel{
		config:     cfg,
		configDir:  configDir,
		recognizer: recognizer,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l":
			m.tab = (m.tab + 1) % len(settingsTabs)
			return m, nil
		case "left", "h":
			m.tab--
			if m.tab < 0 {
				m.tab = len(settingsTabs) - 1
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("tamprogen Configuration"))
	b.WriteString("\n")
	b.WriteString(settingsPathStyle.Render("Config: " + m.configDir + "/" + config.FileName))
	b.WriteString("\n\n")

	var tabViews []string
	for i, t := range settingsTabs {
		style := settingsTabStyle
		if i == m.tab {
			style = settingsTabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#3d5a80")).Render(strings.Repeat("─", max(min(m.width-4, 60), 10))))
	b.WriteString("\n\n")

	switch m.tab {
	case 0:
		b.WriteString(m.renderService())
	case 1:
		b.WriteString(m.renderVoice())
	case 2:
		b.WriteString(m.renderWeb())
	}

	b.WriteString("\n")
	b.WriteString(settingsHelpStyle.Render("←→: switch tabs • edit " + config.FileName + " to change"))

	return b.String()
}

func (m SettingsModel) renderService() string {
	var b strings.Builder
	b.WriteString(settingsHeaderStyle.Render("Proverb service"))
	b.WriteString("\n\n")
	b.WriteString(m.row("Base URL", m.config.APIBase))
	b.WriteString(m.row("Endpoints", "POST /search/  POST /filter/"))

	clip := "unavailable"
	if clipboard.Available() {
		clip = "available"
	}
	b.WriteString(m.row("Clipboard", clip))
	return b.String()
}

func (m SettingsModel) renderVoice() string {
	var b strings.Builder
	b.WriteString(settingsHeaderStyle.Render("Speech recognition"))
	b.WriteString("\n\n")

	if m.recognizer == "" {
		b.WriteString(settingsMutedStyle.Render("Voice input disabled"))
		b.WriteString("\n")
		b.WriteString(settingsMutedStyle.Render("Set GROQ_API_KEY to enable the microphone"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.row("Recognizer", m.recognizer))
	}

	v := m.config.Voice
	b.WriteString(m.row("Locale", voice.Locale))
	b.WriteString(m.row("Endpoint", orDefault(v.Endpoint)))
	b.WriteString(m.row("Model", orDefault(v.Model)))
	b.WriteString(m.row("Recorder", orDefault(strings.Join(v.RecordCommand, " "))))
	return b.String()
}

func (m SettingsModel) renderWeb() string {
	var b strings.Builder
	b.WriteString(settingsHeaderStyle.Render("Browser front end"))
	b.WriteString("\n\n")
	b.WriteString(m.row("Address", m.config.Serve.Addr))
	b.WriteString(settingsMutedStyle.Render("Run 'tamprogen serve' to start it"))
	b.WriteString("\n")
	return b.String()
}

func (m SettingsModel) row(label, value string) string {
	return settingsRowStyle.Render(fmt.Sprintf("%-12s %s", label, value)) + "\n"
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
