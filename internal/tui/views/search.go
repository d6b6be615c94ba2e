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
	"github.com/f3rmion/tamprogen/internal/voice"
)

var (
	micStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	micListeningStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1a1a2e")).
				Background(lipgloss.Color("#ff6b6b")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ff6b6b")).
				Padding(0, 1)
)

type voiceResultMsg struct {
	res voice.Result
}

// SearchModel is the proverb search view model.
type SearchModel struct {
	ctx    context.Context
	fields *pipeline.Fields
	search *pipeline.Search
	voice  *pipeline.VoiceSearch // nil when no recognizer is configured

	input  textinput.Model
	result region

	copied  bool
	copyErr error

	width  int
	height int
}

// NewSearchModel creates a new search view model.
func NewSearchModel(ctx context.Context, board *render.Board, fields *pipeline.Fields, search *pipeline.Search, vs *pipeline.VoiceSearch) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a Tamil proverb..."
	ti.Focus()
	ti.CharLimit = 0 // no limit: pasted text is dispatched whole
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return SearchModel{
		ctx:    ctx,
		fields: fields,
		search: search,
		voice:  vs,
		input:  ti,
		result: newRegion(board, proverb.PipelineSearch),
	}
}

// SetSize updates the view dimensions.
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 20
	m.result.setSize(width-2, height-8)
}

// Update handles messages.
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.runSearch()
		case "ctrl+r":
			return m, m.retry()
		case "ctrl+v":
			return m, m.listen()
		case "ctrl+y":
			return m, m.copyResult()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.result, cmd = m.result.update(msg)
			return m, cmd
		}

	case CommittedMsg:
		if msg.Pipeline == proverb.PipelineSearch {
			m.result.refresh()
		}
		return m, nil

	case voiceResultMsg:
		return m, m.handleVoice(msg.res)

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.result, cmd = m.result.tick(msg)
			return m, cmd
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		m.copyErr = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runSearch copies the live input into the shared fields and starts a new
// search attempt. Loading is on the board before the request goes out.
func (m *SearchModel) runSearch() tea.Cmd {
	m.fields.SetSearchText(m.input.Value())
	a, ok := m.search.Begin()
	m.result.refresh()
	if !ok {
		return nil
	}
	return tea.Batch(m.result.spinner.Tick, complete(m.ctx, m.search, proverb.PipelineSearch, a))
}

func (m *SearchModel) retry() tea.Cmd {
	switch m.result.view.Retry {
	case proverb.ActionSearch:
		return m.runSearch()
	case proverb.ActionVoice:
		return m.listen()
	}
	return nil
}

func (m *SearchModel) listen() tea.Cmd {
	if m.voice == nil {
		return nil
	}

	sess, err := m.voice.Adapter().Start()
	if err != nil {
		m.voice.Handle(voice.Result{Code: voice.CodeBusy, Err: err})
		m.result.refresh()
		return nil
	}

	ctx := m.ctx
	return tea.Batch(m.result.spinner.Tick, func() tea.Msg {
		return voiceResultMsg{res: sess.Wait(ctx)}
	})
}

func (m *SearchModel) handleVoice(res voice.Result) tea.Cmd {
	a, ok := m.voice.Handle(res)
	if ok {
		m.input.SetValue(res.Transcript)
		m.input.CursorEnd()
	}
	m.result.refresh()
	if !ok {
		return nil
	}
	return complete(m.ctx, m.search, proverb.PipelineSearch, a)
}

func (m *SearchModel) copyResult() tea.Cmd {
	if !m.result.copyable() {
		return nil
	}
	if err := clipboard.Write(m.result.text); err != nil {
		m.copyErr = err
	} else {
		m.copied = true
	}
	return clearCopiedAfter(2 * time.Second)
}

func (m SearchModel) listening() bool {
	return m.voice != nil && m.voice.Adapter().Status() == voice.StatusListening
}

func (m SearchModel) busy() bool {
	return m.result.loading() || m.listening()
}

// View renders the search view.
func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("பழமொழி Search"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", m.renderMic()))
	b.WriteString("\n")

	if m.listening() {
		b.WriteString(m.result.spinner.View() + " " + loadingStyle.Render("Listening ("+m.voice.Adapter().Locale()+")..."))
		b.WriteString("\n")
	}

	if out := m.result.View(); out != "" {
		b.WriteString("\n")
		b.WriteString(out)
		b.WriteString("\n")
	}

	if m.copied {
		b.WriteString(copiedStyle.Render("Copied!"))
		b.WriteString("\n")
	} else if m.copyErr != nil {
		b.WriteString(errorStyle.Render("Copy failed: " + m.copyErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join(m.helpParts(), " • ")))

	return b.String()
}

func (m SearchModel) renderMic() string {
	switch {
	case m.voice == nil:
		return helpStyle.Render("🎤 off")
	case m.listening():
		return micListeningStyle.Render("🎤 listening")
	default:
		return micStyle.Render("🎤")
	}
}

func (m SearchModel) helpParts() []string {
	parts := []string{"enter: search"}
	if m.voice != nil {
		parts = append(parts, "ctrl+v: speak")
	}
	if m.result.view.Retry != proverb.ActionNone {
		parts = append(parts, "ctrl+r: retry")
	}
	if m.result.copyable() {
		parts = append(parts, "ctrl+y: copy")
	}
	if m.result.vp.TotalLineCount() > m.result.vp.Height {
		parts = append(parts, "pgup/pgdn: scroll")
	}
	return parts
}
