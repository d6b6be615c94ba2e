package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f3rmion/tamprogen/internal/api"
	"github.com/f3rmion/tamprogen/internal/config"
	"github.com/f3rmion/tamprogen/internal/logging"
	"github.com/f3rmion/tamprogen/internal/pipeline"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/f3rmion/tamprogen/internal/render"
	"github.com/f3rmion/tamprogen/internal/tui"
	"github.com/f3rmion/tamprogen/internal/voice"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// stack is one fully wired client: config, service client, both pipelines
// and the voice adapter, all publishing to a single board.
type stack struct {
	cfg       *config.Config
	configDir string
	log       zerolog.Logger

	client *api.Client
	board  *render.Board
	fields *pipeline.Fields
	search *pipeline.Search
	filter *pipeline.Filter
	voice  *pipeline.VoiceSearch // nil when voice input is off

	recognizer string
}

// loadConfig reads the config file and applies flag and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, err
	}
	if base := strings.TrimSpace(viper.GetString("api_base")); base != "" {
		cfg.APIBase = base
	}
	return cfg, nil
}

func newStack(log zerolog.Logger) (*stack, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &stack{
		cfg:       cfg,
		configDir: getConfigDir(),
		log:       log,
		client:    api.NewClient(cfg.APIBase, nil, log),
		board:     render.NewBoard(),
		fields:    pipeline.NewFields(),
	}
	s.search = pipeline.NewSearch(s.client, s.fields, s.board, log)
	s.filter = pipeline.NewFilter(s.client, s.fields, s.board, log)

	s.board.OnCommit(func(v render.View) {
		log.Debug().Str("pipeline", string(v.Pipeline)).Str("kind", string(v.Kind)).Msg("view committed")
	})

	rec, desc := newRecognizer(cfg, viper.GetString("groq_api_key"))
	if rec != nil {
		s.voice = pipeline.NewVoiceSearch(voice.NewAdapter(rec, log), s.fields, s.search)
		s.recognizer = desc
	}

	log.Debug().Str("api_base", s.client.BaseURL()).Bool("voice", s.voice != nil).Msg("client ready")
	return s, nil
}

// newRecognizer returns the speech backend and a description of it for the
// settings view. Without an API key there is no backend and voice input is off.
func newRecognizer(cfg *config.Config, apiKey string) (voice.Recognizer, string) {
	if apiKey == "" {
		return nil, ""
	}
	rec := voice.NewWhisper(voice.WhisperOptions{
		Endpoint:      cfg.Voice.Endpoint,
		Model:         cfg.Voice.Model,
		APIKey:        apiKey,
		RecordCommand: cfg.Voice.RecordCommand,
	})

	model := cfg.Voice.Model
	if model == "" {
		model = voice.DefaultModel
	}
	return rec, "Whisper (" + model + ")"
}

func (s *stack) tuiOptions() tui.Options {
	return tui.Options{
		Config:     s.cfg,
		ConfigDir:  s.configDir,
		Recognizer: s.recognizer,
		Board:      s.board,
		Fields:     s.fields,
		Search:     s.search,
		Filter:     s.filter,
		Voice:      s.voice,
	}
}

// stderrLogger is the logger for one-shot commands.
func stderrLogger() zerolog.Logger {
	return logging.New(os.Stderr, viper.GetBool("verbose"))
}

// printView writes the committed view of id to w, as markup or terminal text.
// A failed view is also returned as an error so the exit status reflects it.
func printView(w io.Writer, b *render.Board, id proverb.PipelineID, state proverb.State, asHTML bool) error {
	v := b.View(id)
	if asHTML {
		fmt.Fprintln(w, v.HTML)
	} else {
		text, err := render.Text(v)
		if err != nil {
			return fmt.Errorf("converting view: %w", err)
		}
		fmt.Fprintln(w, text)
	}

	if state.Phase == proverb.PhaseFailed {
		return fmt.Errorf("%s failed: %w", id, state.Err)
	}
	return nil
}
