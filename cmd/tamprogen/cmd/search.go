package cmd

import (
	"strings"

	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/spf13/cobra"
)

var searchHTML bool

var searchCmd = &cobra.Command{
	Use:   "search <proverb...>",
	Short: "Search for a proverb",
	Long: `Search the proverb service for a Tamil proverb and print the result.

A match shows the proverb card. When there is no match the service's
AI-generated explanation is shown instead.

Example:
  tamprogen search யானைக்கும் அடி சறுக்கும்
  tamprogen search --html "ஆழம் அறியாமல் காலை விடாதே"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchHTML, "html", false, "print the rendered HTML fragment")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := newStack(stderrLogger())
	if err != nil {
		return err
	}

	s.fields.SetSearchText(strings.Join(args, " "))
	state := s.search.Run(cmd.Context())
	return printView(cmd.OutOrStdout(), s.board, proverb.PipelineSearch, state, searchHTML)
}
