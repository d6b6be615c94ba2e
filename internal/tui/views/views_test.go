package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/tamprogen/internal/api"
	"github.com/f3rmion/tamprogen/internal/pipeline"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/f3rmion/tamprogen/internal/render"
	"github.com/f3rmion/tamprogen/internal/voice"
	"github.com/rs/zerolog"
)

type stubDispatcher struct {
	body string
	err  error

	searched []string
	filtered []proverb.FilterQuery
}

func (s *stubDispatcher) DispatchSearch(_ context.Context, q proverb.SearchQuery) (*api.RawResponse, error) {
	s.searched = append(s.searched, q.Text)
	if s.err != nil {
		return nil, s.err
	}
	return &api.RawResponse{StatusCode: 200, Body: []byte(s.body)}, nil
}

func (s *stubDispatcher) DispatchFilter(_ context.Context, q proverb.FilterQuery) (*api.RawResponse, error) {
	s.filtered = append(s.filtered, q)
	if s.err != nil {
		return nil, s.err
	}
	return &api.RawResponse{StatusCode: 200, Body: []byte(s.body)}, nil
}

// drain runs cmd and returns every message it yields, expanding batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func committed(msgs []tea.Msg) (CommittedMsg, bool) {
	for _, m := range msgs {
		if c, ok := m.(CommittedMsg); ok {
			return c, true
		}
	}
	return CommittedMsg{}, false
}

func newSearchView(d pipeline.Dispatcher, rec voice.Recognizer) (SearchModel, *render.Board) {
	board := render.NewBoard()
	fields := pipeline.NewFields()
	search := pipeline.NewSearch(d, fields, board, zerolog.Nop())
	var vs *pipeline.VoiceSearch
	if rec != nil {
		vs = pipeline.NewVoiceSearch(voice.NewAdapter(rec, zerolog.Nop()), fields, search)
	}
	m := NewSearchModel(context.Background(), board, fields, search, vs)
	m.SetSize(80, 30)
	return m, board
}

func TestSearchEnterShowsLoadingThenResult(t *testing.T) {
	d := &stubDispatcher{body: `{"found":true,"result":{"Proverb_Tamil":"யானைக்கும் அடி சறுக்கும்","Type":"Figurative"}}`}
	m, board := newSearchView(d, nil)
	m.input.SetValue("  yaanai  ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.result.view.Kind != render.KindLoading {
		t.Fatalf("kind after enter = %s", m.result.view.Kind)
	}
	if !strings.Contains(m.View(), `Searching for "yaanai"...`) {
		t.Errorf("loading text missing from view:\n%s", m.View())
	}

	msg, ok := committed(drain(cmd))
	if !ok {
		t.Fatal("no commit message")
	}
	m, _ = m.Update(msg)

	if len(d.searched) != 1 || d.searched[0] != "yaanai" {
		t.Errorf("searched %v", d.searched)
	}
	if board.View(proverb.PipelineSearch).Kind != render.KindFound {
		t.Errorf("board kind = %s", board.View(proverb.PipelineSearch).Kind)
	}
	if !strings.Contains(m.View(), "யானைக்கும் அடி சறுக்கும்") {
		t.Errorf("result missing from view:\n%s", m.View())
	}
	if !m.result.copyable() {
		t.Error("found result should be copyable")
	}
}

func TestSearchEmptyInputFailsWithoutDispatch(t *testing.T) {
	d := &stubDispatcher{}
	m, _ := newSearchView(d, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("empty input should not schedule a request")
	}
	if len(d.searched) != 0 {
		t.Error("dispatched on empty input")
	}
	if m.result.view.Kind != render.KindFailed || m.result.view.Retry != proverb.ActionSearch {
		t.Errorf("view = %+v", m.result.view)
	}
}

func TestSearchRetryRereadsInput(t *testing.T) {
	d := &stubDispatcher{err: errors.New("connection refused")}
	m, _ := newSearchView(d, nil)
	m.input.SetValue("first")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, _ := committed(drain(cmd))
	m, _ = m.Update(msg)

	if !strings.Contains(m.result.text, "connection refused") {
		t.Errorf("failure text = %q", m.result.text)
	}

	m.input.SetValue("second")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	msg, _ = committed(drain(cmd))
	m, _ = m.Update(msg)

	if len(d.searched) != 2 || d.searched[1] != "second" {
		t.Errorf("searched %v", d.searched)
	}
	if m.result.view.Kind != render.KindFailed {
		t.Errorf("kind = %s", m.result.view.Kind)
	}
}

func TestSearchVoiceFillsInputAndSearches(t *testing.T) {
	d := &stubDispatcher{body: `{"found":false,"generated":"\\*AI*\\ text"}`}
	m, _ := newSearchView(d, voice.NewFake("ஆழம் அறியாமல் காலை விடாதே", nil))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if !m.listening() {
		t.Fatal("adapter should be listening")
	}
	if !strings.Contains(m.View(), "listening") {
		t.Error("mic affordance should show listening")
	}

	var res voiceResultMsg
	for _, msg := range drain(cmd) {
		if r, ok := msg.(voiceResultMsg); ok {
			res = r
		}
	}
	m, cmd = m.Update(res)

	if m.input.Value() != "ஆழம் அறியாமல் காலை விடாதே" {
		t.Errorf("input = %q", m.input.Value())
	}
	msg, ok := committed(drain(cmd))
	if !ok {
		t.Fatal("voice transcript did not start a search")
	}
	m, _ = m.Update(msg)

	if m.result.view.Kind != render.KindGenerated {
		t.Errorf("kind = %s", m.result.view.Kind)
	}
	if !strings.Contains(m.result.text, "**AI**") {
		t.Errorf("text = %q", m.result.text)
	}
}

func TestSearchVoiceFailureOffersVoiceRetry(t *testing.T) {
	d := &stubDispatcher{}
	m, _ := newSearchView(d, voice.NewFake("", &voice.CodeError{Code: voice.CodeNoSpeech}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	for _, msg := range drain(cmd) {
		if r, ok := msg.(voiceResultMsg); ok {
			m, _ = m.Update(r)
		}
	}

	if m.result.view.Kind != render.KindFailed || m.result.view.Retry != proverb.ActionVoice {
		t.Errorf("view = %+v", m.result.view)
	}
	if !strings.Contains(m.result.text, "no-speech") {
		t.Errorf("text = %q", m.result.text)
	}
	if len(d.searched) != 0 {
		t.Error("failed recognition dispatched a search")
	}
}

func TestSearchIgnoresSpinnerWhenIdle(t *testing.T) {
	m, _ := newSearchView(&stubDispatcher{}, nil)
	_, cmd := m.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Error("idle view kept the spinner ticking")
	}
}

func TestFilterCycleAndRun(t *testing.T) {
	d := &stubDispatcher{body: `{"results":[]}`}
	board := render.NewBoard()
	fields := pipeline.NewFields()
	filter := pipeline.NewFilter(d, fields, board, zerolog.Nop())
	m := NewFilterModel(context.Background(), board, fields, filter)
	m.SetSize(80, 30)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.Category() != proverb.CategoryLiteral {
		t.Fatalf("category = %s", m.Category())
	}
	m.keyword.SetValue(" kaal ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.result.view.Kind != render.KindLoading {
		t.Errorf("kind after enter = %s", m.result.view.Kind)
	}
	msg, _ := committed(drain(cmd))
	m, _ = m.Update(msg)

	if len(d.filtered) != 1 || d.filtered[0] != (proverb.FilterQuery{Type: proverb.CategoryLiteral, Keyword: "kaal"}) {
		t.Errorf("filtered %+v", d.filtered)
	}
	if m.result.view.Kind != render.KindEmpty || m.result.view.Retry != proverb.ActionFilter {
		t.Errorf("view = %+v", m.result.view)
	}

	d.body = `{"results":[{"Proverb (Tamil)":"அ","Meaning (English)":"a","Literal/Figurative":"Literal"}]}`
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	msg, _ = committed(drain(cmd))
	m, _ = m.Update(msg)

	if m.result.view.Kind != render.KindRows {
		t.Errorf("kind after retry = %s", m.result.view.Kind)
	}
	if !strings.Contains(m.result.text, "| அ") {
		t.Errorf("table text = %q", m.result.text)
	}
}

func TestWrapTextKeepsTables(t *testing.T) {
	in := "one two three four\n| a | b |"
	got := wrapText(in, 8)
	want := "one two\nthree\nfour\n| a | b |"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestSearchLongInputIsDispatchedWhole(t *testing.T) {
	d := &stubDispatcher{body: `{"found":false,"generated":"x"}`}
	m, _ := newSearchView(d, nil)
	long := strings.Repeat("பழமொழி ", 80) + "end"

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(long), Paste: true})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(cmd)

	if len(d.searched) != 1 {
		t.Fatalf("searched %d times", len(d.searched))
	}
	if d.searched[0] != long {
		t.Errorf("dispatched %d runes, want %d", len([]rune(d.searched[0])), len([]rune(long)))
	}
}

func TestSearchWithoutVoice(t *testing.T) {
	d := &stubDispatcher{}
	m, _ := newSearchView(d, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd != nil {
		t.Error("ctrl+v scheduled work with voice off")
	}
	view := m.View()
	if strings.Contains(view, "ctrl+v") {
		t.Error("help offers ctrl+v with voice off")
	}
	if !strings.Contains(view, "🎤 off") {
		t.Error("mic affordance should show off")
	}
}

func TestSettingsVoiceTab(t *testing.T) {
	m := NewSettingsModel(nil, t.TempDir(), "")
	m.SetSize(100, 40)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	view := m.View()
	if !strings.Contains(view, "Voice input disabled") {
		t.Errorf("disabled notice missing:\n%s", view)
	}
	if !strings.Contains(view, voice.Locale) {
		t.Errorf("locale missing:\n%s", view)
	}

	m = NewSettingsModel(nil, t.TempDir(), "Whisper (whisper-large-v3-turbo)")
	m.SetSize(100, 40)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if view := m.View(); strings.Contains(view, "disabled") || !strings.Contains(view, "Whisper (whisper-large-v3-turbo)") {
		t.Errorf("recognizer not shown:\n%s", view)
	}
}
