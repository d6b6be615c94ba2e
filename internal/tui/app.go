package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/tamprogen/internal/config"
	"github.com/f3rmion/tamprogen/internal/pipeline"
	"github.com/f3rmion/tamprogen/internal/render"
	"github.com/f3rmion/tamprogen/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewSearch ViewType = iota
	ViewFilter
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	Icon     string
	View     ViewType
	Shortcut string
}

// Options carries the wired pipelines into the TUI. Voice may be nil.
type Options struct {
	Config     *config.Config
	ConfigDir  string
	Recognizer string

	Board  *render.Board
	Fields *pipeline.Fields
	Search *pipeline.Search
	Filter *pipeline.Filter
	Voice  *pipeline.VoiceSearch
}

// AppModel is the main unified TUI model
type AppModel struct {
	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	searchView   views.SearchModel
	filterView   views.FilterModel
	settingsView views.SettingsModel

	// Help overlay
	showHelp bool
}

// NewApp creates a new unified TUI application. Pipeline requests run under ctx.
func NewApp(ctx context.Context, opts Options) AppModel {
	menuItems := []MenuItem{
		{Label: "Search", Icon: "தே", View: ViewSearch, Shortcut: "1"},
		{Label: "Filter", Icon: "வ", View: ViewFilter, Shortcut: "2"},
		{Label: "Settings", Icon: "அ", View: ViewSettings, Shortcut: "3"},
	}

	return AppModel{
		sidebarWidth: 18,
		currentView:  ViewSearch,
		menuItems:    menuItems,

		searchView:   views.NewSearchModel(ctx, opts.Board, opts.Fields, opts.Search, opts.Voice),
		filterView:   views.NewFilterModel(ctx, opts.Board, opts.Fields, opts.Filter),
		settingsView: views.NewSettingsModel(opts.Config, opts.ConfigDir, opts.Recognizer),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Digits and letters are typed into inputs, so global keys are
		// limited to control keys unless the sidebar has focus.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3":
				m.selectedMenu = int(msg.String()[0] - '1')
				m.currentView = m.menuItems[m.selectedMenu].View
				m.sidebarActive = false
				return m, nil
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				m.currentView = m.menuItems[m.selectedMenu].View
				m.sidebarActive = false
				return m, nil
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.searchView.SetSize(contentWidth, contentHeight)
		m.filterView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case views.CommittedMsg:
		// Both pipelines run independently; route results regardless of
		// which view is showing.
		var cmd tea.Cmd
		m.searchView, cmd = m.searchView.Update(msg)
		cmds = append(cmds, cmd)
		m.filterView, cmd = m.filterView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Non-key messages (spinner ticks, voice results, timers) reach both
	// pipeline views; keys go to the active view only.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmd tea.Cmd
		m.searchView, cmd = m.searchView.Update(msg)
		cmds = append(cmds, cmd)
		m.filterView, cmd = m.filterView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewSearch:
		m.searchView, cmd = m.searchView.Update(msg)
	case ViewFilter:
		m.filterView, cmd = m.filterView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewSearch:
		content = m.searchView.View()
	case ViewFilter:
		content = m.filterView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	title := SidebarTitleStyle.Render(" பழமொழி ")
	items = append(items, title)
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	help := SidebarHelpStyle.Render("tab Menu  ^c Quit")
	items = append(items, help)

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	key := HelpKeyStyle.Render
	desc := HelpDescStyle.Render

	helpText := HelpTitleStyle.Render("tamprogen - Tamil Proverb Generator") + "\n\n"

	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += key("tab/esc") + desc("Focus sidebar") + "\n"
	helpText += key("1-3") + desc("Switch views (sidebar)") + "\n"
	helpText += key("?") + desc("Show this help (sidebar)") + "\n"
	helpText += key("ctrl+c") + desc("Quit") + "\n"

	helpText += HelpSectionStyle.Render("Search View") + "\n"
	helpText += key("enter") + desc("Search for the proverb") + "\n"
	helpText += key("ctrl+v") + desc("Speak the proverb (ta-IN)") + "\n"
	helpText += key("ctrl+r") + desc("Retry after a failure") + "\n"
	helpText += key("ctrl+y") + desc("Copy the result") + "\n"

	helpText += HelpSectionStyle.Render("Filter View") + "\n"
	helpText += key("enter") + desc("Filter proverbs") + "\n"
	helpText += key("ctrl+t") + desc("Cycle All/Literal/Figurative") + "\n"
	helpText += key("ctrl+r") + desc("Retry") + "\n"
	helpText += key("pgup/pgdn") + desc("Scroll results") + "\n"

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
