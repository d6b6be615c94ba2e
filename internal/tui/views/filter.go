package views

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/tamprogen/internal/clipboard"
	"github.com/f3rmion/tamprogen/internal/pipeline"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/f3rmion/tamprogen/internal/render"
)

// Filter view styles
var (
	typeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 2)

	typeTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	keywordBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffe66d")).
			Padding(0, 1)
)

// FilterModel is the proverb filter view model.
type FilterModel struct {
	ctx    context.Context
	fields *pipeline.Fields
	filter *pipeline.Filter

	category int // index into proverb.Categories
	keyword  textinput.Model
	result   region

	copied bool

	width  int
	height int
}

// NewFilterModel creates a new filter view model.
func NewFilterModel(ctx context.Context, board *render.Board, fields *pipeline.Fields, filter *pipeline.Filter) FilterModel {
	ki := textinput.New()
	ki.Placeholder = "Keyword (optional)..."
	ki.Focus()
	ki.CharLimit = 0
	ki.Width = 30

	return FilterModel{
		ctx:     ctx,
		fields:  fields,
		filter:  filter,
		keyword: ki,
		result:  newRegion(board, proverb.PipelineFilter),
	}
}

// SetSize updates the view dimensions.
func (m *FilterModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.result.setSize(width-2, height-10)
}

// Category returns the selected type filter.
func (m FilterModel) Category() proverb.Category {
	return proverb.Categories[m.category]
}

// Update handles messages.
func (m FilterModel) Update(msg tea.Msg) (FilterModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.runFilter()
		case "ctrl+t":
			m.category = (m.category + 1) % len(proverb.Categories)
			return m, nil
		case "ctrl+r":
			if m.result.view.Retry == proverb.ActionFilter {
				return m, m.runFilter()
			}
			return m, nil
		case "ctrl+y":
			if m.result.copyable() && clipboard.Write(m.result.text) == nil {
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.result, cmd = m.result.update(msg)
			return m, cmd
		}

	case CommittedMsg:
		if msg.Pipeline == proverb.PipelineFilter {
			m.result.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		if m.result.loading() {
			var cmd tea.Cmd
			m.result, cmd = m.result.tick(msg)
			return m, cmd
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.keyword, cmd = m.keyword.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *FilterModel) runFilter() tea.Cmd {
	m.fields.SetFilter(m.Category(), m.keyword.Value())
	a := m.filter.Begin()
	m.result.refresh()
	return tea.Batch(m.result.spinner.Tick, complete(m.ctx, m.filter, proverb.PipelineFilter, a))
}

// View renders the filter view.
func (m FilterModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("பழமொழி Filter"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Type:"))
	b.WriteString(" ")
	b.WriteString(m.renderTypeTabs())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Keyword:"))
	b.WriteString(" ")
	b.WriteString(keywordBoxStyle.Render(m.keyword.View()))
	b.WriteString("\n")

	if out := m.result.View(); out != "" {
		b.WriteString("\n")
		b.WriteString(out)
		b.WriteString("\n")
	}

	if m.copied {
		b.WriteString(copiedStyle.Render("Copied!"))
		b.WriteString("\n")
	}

	parts := []string{"enter: filter", "ctrl+t: type"}
	if m.result.view.Retry == proverb.ActionFilter {
		parts = append(parts, "ctrl+r: retry")
	}
	if m.result.copyable() {
		parts = append(parts, "ctrl+y: copy")
	}
	if m.result.vp.TotalLineCount() > m.result.vp.Height {
		parts = append(parts, "pgup/pgdn: scroll")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join(parts, " • ")))

	return b.String()
}

func (m FilterModel) renderTypeTabs() string {
	var tabs []string
	for i, c := range proverb.Categories {
		if i == m.category {
			tabs = append(tabs, typeTabActiveStyle.Render(string(c)))
		} else {
			tabs = append(tabs, typeTabStyle.Render(string(c)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
