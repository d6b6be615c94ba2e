package cmd

import (
	"errors"
	"fmt"

	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/spf13/cobra"
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Speak a proverb and search for it",
	Long: `Record one clip from the microphone, transcribe it as Tamil (ta-IN)
and search for the transcript.

Recording uses voice.record_command from the config (arecord by default).
Transcription needs GROQ_API_KEY.`,
	Args: cobra.NoArgs,
	RunE: runVoice,
}

func init() {
	rootCmd.AddCommand(voiceCmd)
}

func runVoice(cmd *cobra.Command, args []string) error {
	s, err := newStack(stderrLogger())
	if err != nil {
		return err
	}
	if s.voice == nil {
		return errors.New("voice input is off: set GROQ_API_KEY to enable it")
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "🎤 Listening (%s)...\n", s.voice.Adapter().Locale())
	state := s.voice.Run(cmd.Context())
	if text := s.fields.SearchText(); text != "" && state.Err == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Heard: %s\n\n", text)
	}
	return printView(cmd.OutOrStdout(), s.board, proverb.PipelineSearch, state, false)
}
