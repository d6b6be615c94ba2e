// Package views provides the individual views for the unified TUI.
package views

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/tamprogen/internal/pipeline"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/f3rmion/tamprogen/internal/render"
	"github.com/mattn/go-runewidth"
)

// Styles shared by the search and filter views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(12)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	failedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff6b6b")).
			Padding(0, 1)
)

// CommittedMsg reports that a pipeline attempt has finished and its region
// should be redrawn from the board.
type CommittedMsg struct {
	Pipeline proverb.PipelineID
	State    proverb.State
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

type completer interface {
	Complete(ctx context.Context, a pipeline.Attempt) proverb.State
}

// complete runs the network half of an attempt off the UI loop.
func complete(ctx context.Context, p completer, id proverb.PipelineID, a pipeline.Attempt) tea.Cmd {
	return func() tea.Msg {
		return CommittedMsg{Pipeline: id, State: p.Complete(ctx, a)}
	}
}

// region shows the committed view of one pipeline as terminal text.
type region struct {
	board *render.Board
	id    proverb.PipelineID

	view render.View
	text string
	err  error

	vp      viewport.Model
	spinner spinner.Model
}

func newRegion(board *render.Board, id proverb.PipelineID) region {
	vp := viewport.New(60, 12)
	// Only paging keys scroll; everything else belongs to the inputs.
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	r := region{board: board, id: id, vp: vp, spinner: sp}
	r.refresh()
	return r
}

func (r *region) setSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	r.vp.Width = width
	r.vp.Height = height
	r.vp.SetContent(wrapText(r.text, width-4))
}

// refresh pulls the latest view from the board.
func (r *region) refresh() {
	r.view = r.board.View(r.id)
	r.text, r.err = render.Text(r.view)
	r.vp.SetContent(wrapText(r.text, r.vp.Width-4))
	r.vp.GotoTop()
}

func (r region) loading() bool {
	return r.view.Kind == render.KindLoading
}

// copyable reports whether the region holds a result worth copying.
func (r region) copyable() bool {
	switch r.view.Kind {
	case render.KindFound, render.KindGenerated, render.KindRows:
		return r.text != ""
	}
	return false
}

func (r region) update(msg tea.Msg) (region, tea.Cmd) {
	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return r, cmd
}

func (r region) tick(msg spinner.TickMsg) (region, tea.Cmd) {
	var cmd tea.Cmd
	r.spinner, cmd = r.spinner.Update(msg)
	return r, cmd
}

func (r region) View() string {
	if r.err != nil {
		return errorStyle.Render("Render error: " + r.err.Error())
	}

	switch r.view.Kind {
	case render.KindIdle:
		return ""
	case render.KindLoading:
		return r.spinner.View() + " " + loadingStyle.Render(r.text)
	case render.KindFailed:
		return failedBoxStyle.Render(r.vp.View())
	}
	return resultBoxStyle.Render(r.vp.View())
}

// wrapText wraps each line to width display cells. Table rows are left
// alone so their columns stay aligned.
func wrapText(s string, width int) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			out = append(out, line)
			continue
		}
		out = append(out, wordWrap(line, width))
	}
	return strings.Join(out, "\n")
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	words := strings.Fields(s)
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
